// Package view holds the client-side state of the chat a user has open: the
// reconciled message timeline, its live feed and older-page loading.
package view

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Japjeet07/ChefMaker-sub000/internal/live"
	"github.com/Japjeet07/ChefMaker-sub000/internal/outbox"
	"github.com/Japjeet07/ChefMaker-sub000/internal/pager"
	"github.com/Japjeet07/ChefMaker-sub000/internal/store"
	"github.com/Japjeet07/ChefMaker-sub000/internal/timeline"
	"go.uber.org/zap"
)

const flashDuration = 3 * time.Second

// ErrNoChat is returned by operations that need an open chat.
var ErrNoChat = errors.New("no chat open")

// Backend is what a ChatView needs from the chat core, in process or over the
// daemon socket.
type Backend interface {
	LoadLatestMessages(ctx context.Context, chatID string, pageSize int) (pager.Page, error)
	LoadOlderMessages(ctx context.Context, chatID string, pageSize int, before store.Cursor) (pager.Page, error)
	SendMessage(ctx context.Context, req outbox.SendRequest) (*store.Message, error)
	// WatchMessages opens chatID's live feed on behalf of userID.
	WatchMessages(ctx context.Context, userID, chatID string) (live.Feed, error)
	SetViewing(ctx context.Context, userID, chatID string) error
}

// ChatView owns the buffer of the chat one user has open. Live messages are
// merged by a goroutine per opened chat; every mutation checks the generation
// it was started under, so nothing from a chat that was switched away from
// reaches the current buffer.
type ChatView struct {
	backend  Backend
	userID   string
	userName string
	pageSize int
	logger   *zap.Logger

	mu      sync.RWMutex
	gen     uint64
	tl      *timeline.Timeline
	feed    live.Feed
	hasMore bool

	Flash Flash

	refreshCh chan struct{}
}

// New creates a view for userID. pageSize <= 0 uses the pager default.
func New(b Backend, userID, userName string, pageSize int, logger *zap.Logger) *ChatView {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatView{
		backend:   b,
		userID:    userID,
		userName:  userName,
		pageSize:  pageSize,
		logger:    logger,
		refreshCh: make(chan struct{}, 1),
	}
}

// RefreshCh signals that the entries changed. Signals coalesce.
func (v *ChatView) RefreshCh() <-chan struct{} {
	return v.refreshCh
}

func (v *ChatView) signalRefresh() {
	select {
	case v.refreshCh <- struct{}{}:
	default:
	}
}

// Open switches to chatID. The previous chat's feed is closed before the new
// one is opened. An empty chatID just closes the current chat.
func (v *ChatView) Open(ctx context.Context, chatID string) error {
	gen := v.teardown()
	defer v.signalRefresh()

	if chatID == "" {
		v.setViewing(ctx, "")
		return nil
	}

	// Subscribe before loading the page; the timeline drops anything the
	// feed delivers that the page already holds. Without change streams the
	// chat still opens, it just shows no live updates.
	feed, err := v.backend.WatchMessages(ctx, v.userID, chatID)
	switch {
	case errors.Is(err, store.ErrQueryUnsupported), errors.Is(err, store.ErrUnavailable):
		v.logger.Warn("live updates unavailable", zap.String("chat_id", chatID), zap.Error(err))
		feed = nil
	case err != nil:
		return fmt.Errorf("watch %q: %w", chatID, err)
	}
	page, err := v.backend.LoadLatestMessages(ctx, chatID, v.pageSize)
	if err != nil {
		closeFeed(feed)
		return fmt.Errorf("load %q: %w", chatID, err)
	}

	v.mu.Lock()
	if v.gen != gen {
		v.mu.Unlock()
		closeFeed(feed)
		return nil
	}
	v.tl = timeline.New(chatID, page.Messages)
	v.hasMore = page.HasMore
	v.feed = feed
	v.mu.Unlock()

	if feed != nil {
		go v.pump(gen, feed)
	}
	v.setViewing(ctx, chatID)
	v.logger.Debug("chat opened", zap.String("chat_id", chatID), zap.Int("messages", len(page.Messages)))
	return nil
}

// Close closes the open chat and clears the viewing mark.
func (v *ChatView) Close(ctx context.Context) {
	v.teardown()
	v.setViewing(ctx, "")
}

// teardown invalidates the current chat and returns the new generation.
func (v *ChatView) teardown() uint64 {
	v.mu.Lock()
	v.gen++
	gen := v.gen
	prev := v.feed
	v.feed = nil
	v.tl = nil
	v.hasMore = false
	v.mu.Unlock()

	closeFeed(prev)
	return gen
}

func closeFeed(f live.Feed) {
	if f != nil {
		f.Close()
	}
}

func (v *ChatView) pump(gen uint64, feed live.Feed) {
	for m := range feed.Messages() {
		v.mu.Lock()
		if v.gen != gen {
			v.mu.Unlock()
			return
		}
		changed := v.tl.Receive(m)
		v.mu.Unlock()
		if changed {
			v.signalRefresh()
		}
	}
}

func (v *ChatView) setViewing(ctx context.Context, chatID string) {
	if err := v.backend.SetViewing(ctx, v.userID, chatID); err != nil {
		v.logger.Warn("set viewing failed", zap.String("chat_id", chatID), zap.Error(err))
	}
}

// Send shows content immediately as pending, then replaces it with the stored
// message or removes it if the send failed.
func (v *ChatView) Send(ctx context.Context, content string) error {
	v.mu.Lock()
	if v.tl == nil {
		v.mu.Unlock()
		return ErrNoChat
	}
	gen := v.gen
	chatID := v.tl.ChatID()
	pending := v.tl.AddOptimistic(v.userID, v.userName, content)
	v.mu.Unlock()
	v.signalRefresh()

	msg, err := v.backend.SendMessage(ctx, outbox.SendRequest{
		ChatID:     chatID,
		SenderID:   v.userID,
		SenderName: v.userName,
		Content:    content,
		ClientID:   pending.ID,
	})

	v.mu.Lock()
	if v.gen == gen {
		if err != nil {
			v.tl.Fail(pending.ID)
		} else {
			v.tl.Confirm(pending.ID, *msg)
		}
	}
	v.mu.Unlock()
	v.signalRefresh()

	if err != nil {
		v.Flash.Error("Send failed: "+err.Error(), flashDuration)
		return fmt.Errorf("send to %q: %w", chatID, err)
	}
	return nil
}

// LoadOlder prepends the page before the oldest loaded message and returns
// how many messages were added.
func (v *ChatView) LoadOlder(ctx context.Context) (int, error) {
	v.mu.RLock()
	if v.tl == nil {
		v.mu.RUnlock()
		return 0, ErrNoChat
	}
	gen := v.gen
	chatID := v.tl.ChatID()
	before, ok := v.tl.Oldest()
	more := v.hasMore
	v.mu.RUnlock()
	if !ok || !more {
		return 0, nil
	}

	page, err := v.backend.LoadOlderMessages(ctx, chatID, v.pageSize, before)
	if err != nil {
		return 0, fmt.Errorf("load older in %q: %w", chatID, err)
	}

	v.mu.Lock()
	if v.gen != gen {
		v.mu.Unlock()
		return 0, nil
	}
	n := v.tl.Prepend(page.Messages)
	v.hasMore = page.HasMore
	v.mu.Unlock()
	if n > 0 {
		v.signalRefresh()
	}
	return n, nil
}

// ChatID returns the open chat, or "".
func (v *ChatView) ChatID() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.tl == nil {
		return ""
	}
	return v.tl.ChatID()
}

// Entries returns a snapshot of the open chat's timeline, oldest first.
func (v *ChatView) Entries() []timeline.Entry {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.tl == nil {
		return nil
	}
	return v.tl.Entries()
}

// HasMore reports whether older messages remain to be loaded.
func (v *ChatView) HasMore() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.hasMore
}
