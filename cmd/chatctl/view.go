package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Japjeet07/ChefMaker-sub000/internal/api"
	"github.com/Japjeet07/ChefMaker-sub000/internal/timeline"
	"github.com/Japjeet07/ChefMaker-sub000/internal/view"
)

// runView opens chatID as userID and sends every stdin line as a message.
// "/older" loads the previous page, "/quit" or EOF leaves.
func runView(ctx context.Context, c *api.Client, userID, userName, chatID string) error {
	v := view.New(c, userID, userName, 0, nil)
	if err := v.Open(ctx, chatID); err != nil {
		return err
	}
	defer v.Close(context.Background())

	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			lines <- sc.Text()
		}
	}()

	printed := map[string]bool{}
	redraw(v, printed)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-v.RefreshCh():
			redraw(v, printed)
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			line = strings.TrimSpace(line)
			switch line {
			case "":
			case "/quit":
				return nil
			case "/older":
				n, err := v.LoadOlder(ctx)
				if err != nil {
					fmt.Fprintf(os.Stderr, "error: %v\n", err)
					continue
				}
				// Older pages go above what is already on screen, so start over.
				clear(printed)
				fmt.Printf("-- loaded %d older --\n", n)
				redraw(v, printed)
			default:
				if err := v.Send(ctx, line); err != nil {
					fmt.Fprintf(os.Stderr, "error: %v\n", err)
				}
			}
		}
	}
}

// redraw prints confirmed entries that have not been printed yet.
func redraw(v *view.ChatView, printed map[string]bool) {
	for _, e := range v.Entries() {
		if e.Pending || timeline.IsTemp(e.ID) || printed[e.ID] {
			continue
		}
		printed[e.ID] = true
		printMessage(e.Message)
	}
}
