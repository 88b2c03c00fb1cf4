// Package storetest opens migrated throwaway SQLite stores for tests.
package storetest

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Japjeet07/ChefMaker-sub000/internal/store"
)

// Open returns a migrated store in t.TempDir(), closed on cleanup.
func Open(t testing.TB, opts ...store.Option) *store.DB {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"), opts...)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// Clock is a manually advanced clock for store.WithClock.
type Clock struct {
	mu sync.Mutex
	t  time.Time
}

// NewClock starts a clock at start.
func NewClock(start time.Time) *Clock { return &Clock{t: start} }

// Now returns the current fake time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

// Chat creates a chat between a and b, failing the test on error.
func Chat(t testing.TB, s store.Store, a, b string) *store.Chat {
	t.Helper()
	c, err := s.CreateChat(context.Background(), store.NewChat{
		Participants:     [2]string{a, b},
		ParticipantNames: map[string]string{a: a, b: b},
	})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// Append appends a text message, failing the test on error.
func Append(t testing.TB, s store.Store, chatID, sender, content string) *store.Message {
	t.Helper()
	m, err := s.AppendMessage(context.Background(), chatID, store.NewMessage{
		SenderID:   sender,
		SenderName: sender,
		Content:    content,
	})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

// Unordered wraps a Store so that ordered chat list queries fail with
// store.ErrQueryUnsupported, as on a backend without the composite index.
type Unordered struct {
	store.Store
}

func (u Unordered) ListChatsByParticipant(ctx context.Context, userID string, order store.Order) ([]store.Chat, error) {
	if order != store.OrderNone {
		return nil, store.ErrQueryUnsupported
	}
	return u.Store.ListChatsByParticipant(ctx, userID, order)
}
