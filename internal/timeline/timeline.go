// Package timeline keeps the message list of one open chat, mixing confirmed
// messages with optimistic placeholders for sends still in flight.
//
// A placeholder's temporary id doubles as the ClientID sent with the message,
// so the server copy can be matched back to it whichever arrives first: the
// send acknowledgement (Confirm) or the live echo (Receive).
package timeline

import (
	"strings"
	"time"

	"github.com/Japjeet07/ChefMaker-sub000/internal/store"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// TempPrefix marks ids that were generated locally and never stored.
const TempPrefix = "tmp-"

// Entry is a message as displayed. Pending entries are optimistic placeholders.
type Entry struct {
	store.Message
	Pending bool
}

// IsTemp reports whether id is a local placeholder id.
func IsTemp(id string) bool { return strings.HasPrefix(id, TempPrefix) }

// Timeline is the ordered list for one chat. It is not safe for concurrent use;
// the owning view serialises access.
type Timeline struct {
	chatID  string
	entries []Entry
	now     func() time.Time
}

// New creates a timeline seeded with msgs (oldest first).
func New(chatID string, msgs []store.Message) *Timeline {
	t := &Timeline{chatID: chatID, now: time.Now}
	t.Prepend(msgs)
	return t
}

// ChatID returns the chat this timeline belongs to.
func (t *Timeline) ChatID() string { return t.chatID }

// Len returns the number of entries.
func (t *Timeline) Len() int { return len(t.entries) }

// Entries returns a copy of the list, oldest first.
func (t *Timeline) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Messages returns the list without the pending flag.
func (t *Timeline) Messages() []store.Message {
	return lo.Map(t.entries, func(e Entry, _ int) store.Message { return e.Message })
}

// Oldest returns the cursor of the oldest confirmed message, for loading older pages.
func (t *Timeline) Oldest() (store.Cursor, bool) {
	e, ok := lo.Find(t.entries, func(e Entry) bool { return !e.Pending })
	if !ok {
		return store.Cursor{}, false
	}
	return store.CursorOf(e.Message), true
}

// AddOptimistic appends a pending placeholder and returns it. Its ID is the
// ClientID to send with the message.
func (t *Timeline) AddOptimistic(senderID, senderName, content string) Entry {
	id := TempPrefix + uuid.NewString()
	e := Entry{
		Message: store.Message{
			ID:         id,
			ChatID:     t.chatID,
			SenderID:   senderID,
			SenderName: senderName,
			Content:    content,
			Timestamp:  t.now(),
			Type:       store.TypeText,
			ClientID:   id,
		},
		Pending: true,
	}
	t.entries = append(t.entries, e)
	return e
}

// Receive merges a server message from the live feed. A pending placeholder
// with the same ClientID is replaced in place; for messages without a ClientID
// the first pending placeholder from the same sender with the same content is.
// Messages already in the list are ignored. It reports whether the list changed.
func (t *Timeline) Receive(m store.Message) bool {
	if t.indexOf(m.ID) >= 0 {
		return false
	}
	if i := t.pendingFor(m); i >= 0 {
		t.entries[i] = Entry{Message: m}
		return true
	}
	t.entries = append(t.entries, Entry{Message: m})
	return true
}

// Confirm replaces the placeholder tempID with the stored message. If the live
// echo already added m, the placeholder is dropped instead.
func (t *Timeline) Confirm(tempID string, m store.Message) {
	if t.indexOf(m.ID) >= 0 {
		t.remove(tempID)
		return
	}
	if i := t.indexOf(tempID); i >= 0 {
		t.entries[i] = Entry{Message: m}
		return
	}
	t.entries = append(t.entries, Entry{Message: m})
}

// Fail removes the placeholder tempID. It reports whether one was removed.
func (t *Timeline) Fail(tempID string) bool {
	return t.remove(tempID)
}

// Prepend inserts an older page (oldest first) before the current entries,
// skipping messages already present. It returns how many were added.
func (t *Timeline) Prepend(older []store.Message) int {
	seen := make(map[string]bool, len(t.entries)+len(older))
	for _, e := range t.entries {
		seen[e.ID] = true
	}
	fresh := make([]Entry, 0, len(older))
	for _, m := range older {
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		fresh = append(fresh, Entry{Message: m})
	}
	t.entries = append(fresh, t.entries...)
	return len(fresh)
}

func (t *Timeline) indexOf(id string) int {
	_, i, ok := lo.FindIndexOf(t.entries, func(e Entry) bool { return e.ID == id })
	if !ok {
		return -1
	}
	return i
}

func (t *Timeline) pendingFor(m store.Message) int {
	_, i, ok := lo.FindIndexOf(t.entries, func(e Entry) bool {
		if !e.Pending {
			return false
		}
		if m.ClientID != "" {
			return e.ClientID == m.ClientID
		}
		return e.SenderID == m.SenderID && e.Content == m.Content
	})
	if !ok {
		return -1
	}
	return i
}

func (t *Timeline) remove(id string) bool {
	i := t.indexOf(id)
	if i < 0 {
		return false
	}
	t.entries = append(t.entries[:i], t.entries[i+1:]...)
	return true
}
