package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/Japjeet07/ChefMaker-sub000/internal/api"
	"github.com/Japjeet07/ChefMaker-sub000/internal/lock"
	"github.com/Japjeet07/ChefMaker-sub000/internal/outbox"
	"github.com/Japjeet07/ChefMaker-sub000/internal/session"
	"github.com/Japjeet07/ChefMaker-sub000/internal/store"
	"google.golang.org/protobuf/encoding/protojson"
)

const requestTimeout = 10 * time.Second

func main() {
	sessionFlag := flag.String("session", "", "session name (overrides config default)")
	jsonFlag := flag.Bool("json", false, "output in JSON format")
	flag.Parse()

	sessionName := session.Resolve(*sessionFlag)
	if err := session.ValidateName(sessionName); err != nil {
		fatal(err)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	c, err := api.Dial(session.SocketPath(sessionName))
	if err != nil {
		fatal(fmt.Errorf("cannot connect to daemon for session %q: %w", sessionName, err))
	}
	defer func() { _ = c.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := command{client: c, session: sessionName, json: *jsonFlag}
	if err := cmd.run(ctx, args[0], args[1:]); err != nil {
		fatal(err)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: chatctl [--session <name>] [--json] <command>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  status                                Show daemon status")
	fmt.Fprintln(os.Stderr, "  chats <user>                          List a user's chats, most recent first")
	fmt.Fprintln(os.Stderr, "  open <userA> <userB> [nameA nameB]    Find or create the chat between two users")
	fmt.Fprintln(os.Stderr, "  history [--limit n] [--before ts:id] <chat>")
	fmt.Fprintln(os.Stderr, "                                        Show a page of messages")
	fmt.Fprintln(os.Stderr, "  send <chat> <user> <name> <text...>   Send a message")
	fmt.Fprintln(os.Stderr, "  read <chat> <user>                    Mark a chat read")
	fmt.Fprintln(os.Stderr, "  watch <chat>                          Print new messages as they arrive")
	fmt.Fprintln(os.Stderr, "  badge [--open chat] <user>            Total unread count")
	fmt.Fprintln(os.Stderr, "  view <user> <name> <chat>             Interactive chat view")
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

type command struct {
	client  *api.Client
	session string
	json    bool
}

var errUsage = errors.New("wrong arguments, see chatctl without arguments for usage")

func (c command) run(ctx context.Context, name string, args []string) error {
	switch name {
	case "status":
		return c.status(ctx)
	case "chats":
		if len(args) != 1 {
			return errUsage
		}
		return c.chats(ctx, args[0])
	case "open":
		if len(args) != 2 && len(args) != 4 {
			return errUsage
		}
		names := []string{"", ""}
		if len(args) == 4 {
			names = args[2:]
		}
		return c.open(ctx, args[0], args[1], names[0], names[1])
	case "history":
		return c.history(ctx, args)
	case "send":
		if len(args) < 4 {
			return errUsage
		}
		return c.send(ctx, args[0], args[1], args[2], strings.Join(args[3:], " "))
	case "read":
		if len(args) != 2 {
			return errUsage
		}
		return c.read(ctx, args[0], args[1])
	case "watch":
		if len(args) != 1 {
			return errUsage
		}
		return c.watch(ctx, args[0])
	case "badge":
		return c.badge(ctx, args)
	case "view":
		if len(args) != 3 {
			return errUsage
		}
		return runView(ctx, c.client, args[0], args[1], args[2])
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", name)
	}
}

func (c command) status(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	resp, err := c.client.GetStatus(ctx)
	if err != nil {
		dir := session.Dir(c.session)
		if lock.Held(dir) {
			if info, ierr := lock.Inspect(dir); ierr == nil {
				return fmt.Errorf("daemon (PID %d, %s backend) holds the session but is not answering: %w", info.PID, info.Backend, err)
			}
		}
		return fmt.Errorf("daemon for session %q not running: %w", c.session, err)
	}
	if c.json {
		out, err := protojson.MarshalOptions{Multiline: true, Indent: "  ", EmitUnpopulated: true}.Marshal(resp)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
	fmt.Printf("Session:  %s (PID %d)\n", resp.Session, resp.Pid)
	fmt.Printf("Status:   %s\n", resp.State)
	if resp.Reason != "" {
		fmt.Printf("Reason:   %s\n", resp.Reason)
	}
	fmt.Printf("Since:    %s\n", time.UnixMilli(resp.SinceUnixMs).Format(time.RFC3339))
	fmt.Printf("Store:    %s\n", resp.Backend)
	fmt.Printf("Presence: %s\n", resp.Presence)
	if resp.EventsReason != "" {
		fmt.Printf("Events:   %s (%s)\n", resp.Events, resp.EventsReason)
	} else {
		fmt.Printf("Events:   %s\n", resp.Events)
	}
	fmt.Printf("Watchers: %d\n", resp.Subscriptions)
	return nil
}

func (c command) chats(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	chats, err := c.client.ListChats(ctx, userID)
	if err != nil {
		return err
	}
	if c.json {
		return outputJSON(chats)
	}
	if len(chats) == 0 {
		fmt.Println("No chats.")
		return nil
	}
	for _, ch := range chats {
		other := ch.Other(userID)
		name := ch.ParticipantNames[other]
		if name == "" {
			name = other
		}
		preview := ""
		if ch.LastMessage != nil {
			preview = ch.LastMessage.Content
		}
		fmt.Printf("%-36s %-20s %3d  %s\n", ch.ID, name, ch.UnreadCount[userID], preview)
	}
	return nil
}

func (c command) open(ctx context.Context, userA, userB, nameA, nameB string) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	id, err := c.client.FindOrCreateChat(ctx, userA, userB, nameA, nameB)
	if err != nil {
		return err
	}
	if c.json {
		return outputJSON(map[string]string{"chatId": id})
	}
	fmt.Println(id)
	return nil
}

func (c command) history(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	limit := fs.Int("limit", 0, "page size (default 20, max 100)")
	before := fs.String("before", "", "cursor ts:id from a previous page")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errUsage
	}
	chatID := fs.Arg(0)

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var (
		msgs    []store.Message
		cursor  *store.Cursor
		hasMore bool
	)
	if *before == "" {
		page, err := c.client.LoadLatestMessages(ctx, chatID, *limit)
		if err != nil {
			return err
		}
		msgs, cursor, hasMore = page.Messages, page.Cursor, page.HasMore
	} else {
		cur, err := parseCursor(*before)
		if err != nil {
			return err
		}
		page, err := c.client.LoadOlderMessages(ctx, chatID, *limit, cur)
		if err != nil {
			return err
		}
		msgs, cursor, hasMore = page.Messages, page.Cursor, page.HasMore
	}

	if c.json {
		return outputJSON(map[string]any{"messages": msgs, "cursor": cursor, "hasMore": hasMore})
	}
	for _, m := range msgs {
		printMessage(m)
	}
	if hasMore && cursor != nil {
		fmt.Printf("-- older: --before %s\n", formatCursor(*cursor))
	}
	return nil
}

func (c command) send(ctx context.Context, chatID, userID, name, text string) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	msg, err := c.client.SendMessage(ctx, outbox.SendRequest{
		ChatID:     chatID,
		SenderID:   userID,
		SenderName: name,
		Content:    text,
	})
	if err != nil {
		return err
	}
	if c.json {
		return outputJSON(msg)
	}
	fmt.Println(msg.ID)
	return nil
}

func (c command) read(ctx context.Context, chatID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	return c.client.MarkRead(ctx, chatID, userID)
}

func (c command) watch(ctx context.Context, chatID string) error {
	feed, err := c.client.WatchMessages(ctx, "", chatID)
	if err != nil {
		return err
	}
	defer feed.Close()
	for m := range feed.Messages() {
		if c.json {
			if err := outputJSON(m); err != nil {
				return err
			}
			continue
		}
		printMessage(m)
	}
	return nil
}

func (c command) badge(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("badge", flag.ContinueOnError)
	open := fs.String("open", "", "chat to leave out of the count")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errUsage
	}
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	n, err := c.client.Badge(ctx, fs.Arg(0), *open)
	if err != nil {
		return err
	}
	if c.json {
		return outputJSON(map[string]int{"count": n})
	}
	fmt.Println(n)
	return nil
}

func printMessage(m store.Message) {
	name := m.SenderName
	if name == "" {
		name = m.SenderID
	}
	fmt.Printf("[%s] %s: %s\n", m.Timestamp.Local().Format("2006-01-02 15:04:05"), name, m.Content)
}

func formatCursor(c store.Cursor) string {
	return strconv.FormatInt(c.Timestamp.UnixMilli(), 10) + ":" + c.ID
}

func parseCursor(s string) (store.Cursor, error) {
	ts, id, ok := strings.Cut(s, ":")
	if !ok || id == "" {
		return store.Cursor{}, fmt.Errorf("cursor %q: want <unix-ms>:<message-id>", s)
	}
	ms, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return store.Cursor{}, fmt.Errorf("cursor %q: %w", s, err)
	}
	return store.Cursor{Timestamp: time.UnixMilli(ms).UTC(), ID: id}, nil
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
