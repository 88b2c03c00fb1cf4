// Package unread maintains per-user unread counters on chats.
package unread

import (
	"context"
	"fmt"
	"time"

	"github.com/Japjeet07/ChefMaker-sub000/internal/bus"
	"github.com/Japjeet07/ChefMaker-sub000/internal/store"
	"github.com/samber/lo"
)

// Next is the counter rule for a recipient when a message arrives: reset while
// they are looking at the chat, otherwise one more.
func Next(current int, recipientViewing bool) int {
	if recipientViewing {
		return 0
	}
	return max(current, 0) + 1
}

// ApplyRecipient adds the recipient's counter change for one new message to u,
// following Next. The sender's counter is never touched.
func ApplyRecipient(u *store.ChatUpdate, recipient string, recipientViewing bool) {
	if recipientViewing {
		u.ResetUnread = append(u.ResetUnread, recipient)
		return
	}
	u.IncrementUnread = append(u.IncrementUnread, recipient)
}

// Badge sums userID's unread counters over chats, skipping the chat that is
// currently open.
func Badge(chats []store.Chat, userID, openChatID string) int {
	return lo.SumBy(chats, func(c store.Chat) int {
		if c.ID == openChatID {
			return 0
		}
		return max(c.UnreadCount[userID], 0)
	})
}

// Tracker resets counters when a user reads a chat.
type Tracker struct {
	store store.Store
	bus   *bus.Bus
}

// NewTracker creates a Tracker. b may be nil.
func NewTracker(s store.Store, b *bus.Bus) *Tracker {
	return &Tracker{store: s, bus: b}
}

// MarkRead sets userID's counter in chatID to zero. Reading an already read
// chat is a no-op that still succeeds.
func (t *Tracker) MarkRead(ctx context.Context, chatID, userID string) error {
	if chatID == "" || userID == "" {
		return fmt.Errorf("%w: chat and user ids are required", store.ErrInvalid)
	}
	if err := t.store.ApplyChatUpdate(ctx, chatID, store.ChatUpdate{ResetUnread: []string{userID}}); err != nil {
		return fmt.Errorf("mark %q read for %q: %w", chatID, userID, err)
	}
	if t.bus != nil {
		t.bus.Publish(bus.Event{
			Kind:      bus.KindChatRead,
			Timestamp: time.Now(),
			Payload:   bus.ChatEvent{ChatID: chatID, UserID: userID},
		})
	}
	return nil
}
