// Package pager reads a chat's history in fixed-size pages, newest page first.
package pager

import (
	"context"
	"fmt"
	"slices"

	"github.com/Japjeet07/ChefMaker-sub000/internal/store"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is one window of history in display order (oldest first).
type Page struct {
	Messages []store.Message
	// Cursor is the position of the oldest message in the page; pass it to
	// LoadOlder to continue. Nil when the page is empty.
	Cursor  *store.Cursor
	HasMore bool
}

// Pager loads history from a store.
type Pager struct {
	store store.Store
}

func New(s store.Store) *Pager {
	return &Pager{store: s}
}

// LoadLatest returns the newest pageSize messages of a chat.
func (p *Pager) LoadLatest(ctx context.Context, chatID string, pageSize int) (Page, error) {
	return p.load(ctx, chatID, pageSize, nil)
}

// LoadOlder returns up to pageSize messages strictly older than before.
func (p *Pager) LoadOlder(ctx context.Context, chatID string, pageSize int, before store.Cursor) (Page, error) {
	return p.load(ctx, chatID, pageSize, &before)
}

func (p *Pager) load(ctx context.Context, chatID string, pageSize int, before *store.Cursor) (Page, error) {
	if chatID == "" {
		return emptyPage(), fmt.Errorf("%w: empty chat id", store.ErrInvalid)
	}
	size := clamp(pageSize)

	// One extra row tells us whether anything older exists.
	msgs, err := p.store.ListMessages(ctx, chatID, store.MessageQuery{
		Before:    before,
		Direction: store.NewestFirst,
		Limit:     size + 1,
	})
	if err != nil {
		return emptyPage(), fmt.Errorf("load messages of %q: %w", chatID, err)
	}

	hasMore := len(msgs) > size
	if hasMore {
		msgs = msgs[:size]
	}
	slices.Reverse(msgs)

	page := Page{Messages: msgs, HasMore: hasMore}
	if page.Messages == nil {
		page.Messages = []store.Message{}
	}
	if len(msgs) > 0 {
		c := store.CursorOf(msgs[0])
		page.Cursor = &c
	}
	return page, nil
}

func clamp(pageSize int) int {
	switch {
	case pageSize <= 0:
		return DefaultPageSize
	case pageSize > MaxPageSize:
		return MaxPageSize
	}
	return pageSize
}

func emptyPage() Page {
	return Page{Messages: []store.Message{}}
}
