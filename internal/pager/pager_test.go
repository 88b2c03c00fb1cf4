package pager

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Japjeet07/ChefMaker-sub000/internal/store"
	"github.com/Japjeet07/ChefMaker-sub000/internal/store/storetest"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, db *store.DB, chatID string, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		storetest.Append(t, db, chatID, "alice", fmt.Sprintf("m%d", i))
	}
}

func contents(p Page) []string {
	return lo.Map(p.Messages, func(m store.Message, _ int) string { return m.Content })
}

func rangeOf(from, to int) []string {
	out := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, fmt.Sprintf("m%d", i))
	}
	return out
}

func TestFortyFiveMessagesInPagesOfTwenty(t *testing.T) {
	db := storetest.Open(t)
	c := storetest.Chat(t, db, "alice", "bob")
	seed(t, db, c.ID, 45)
	p := New(db)
	ctx := context.Background()

	first, err := p.LoadLatest(ctx, c.ID, 20)
	require.NoError(t, err)
	assert.Equal(t, rangeOf(26, 45), contents(first))
	assert.True(t, first.HasMore)

	second, err := p.LoadOlder(ctx, c.ID, 20, *first.Cursor)
	require.NoError(t, err)
	assert.Equal(t, rangeOf(6, 25), contents(second))
	assert.True(t, second.HasMore)

	third, err := p.LoadOlder(ctx, c.ID, 20, *second.Cursor)
	require.NoError(t, err)
	assert.Equal(t, rangeOf(1, 5), contents(third))
	assert.False(t, third.HasMore)
}

func TestPaginationIsComplete(t *testing.T) {
	for _, n := range []int{0, 1, 19, 20, 21, 40, 57} {
		for _, size := range []int{1, 7, 20} {
			t.Run(fmt.Sprintf("n=%d/size=%d", n, size), func(t *testing.T) {
				db := storetest.Open(t)
				c := storetest.Chat(t, db, "alice", "bob")
				seed(t, db, c.ID, n)
				p := New(db)
				ctx := context.Background()

				page, err := p.LoadLatest(ctx, c.ID, size)
				require.NoError(t, err)
				all := contents(page)
				for page.HasMore {
					page, err = p.LoadOlder(ctx, c.ID, size, *page.Cursor)
					require.NoError(t, err)
					all = append(contents(page), all...)
				}
				assert.Equal(t, rangeOf(1, n), all)
			})
		}
	}
}

func TestFewerThanPageSizeIsOnePage(t *testing.T) {
	db := storetest.Open(t)
	c := storetest.Chat(t, db, "alice", "bob")
	seed(t, db, c.ID, 3)

	page, err := New(db).LoadLatest(context.Background(), c.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, rangeOf(1, 3), contents(page))
	assert.False(t, page.HasMore)
	require.NotNil(t, page.Cursor)
	assert.Equal(t, page.Messages[0].ID, page.Cursor.ID)
}

func TestEmptyChat(t *testing.T) {
	db := storetest.Open(t)
	c := storetest.Chat(t, db, "alice", "bob")

	page, err := New(db).LoadLatest(context.Background(), c.ID, 20)
	require.NoError(t, err)
	assert.Empty(t, page.Messages)
	assert.Nil(t, page.Cursor)
	assert.False(t, page.HasMore)
}

// Messages that share a timestamp must still page without gaps or repeats.
func TestTimestampTiesAreBrokenById(t *testing.T) {
	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	msgs := make([]store.Message, 9)
	for i := range msgs {
		msgs[i] = store.Message{ID: fmt.Sprintf("id%d", i), Timestamp: ts, Content: fmt.Sprintf("m%d", i+1)}
	}
	p := New(&sliceStore{msgs: msgs})
	ctx := context.Background()

	page, err := p.LoadLatest(ctx, "c", 4)
	require.NoError(t, err)
	all := contents(page)
	for page.HasMore {
		page, err = p.LoadOlder(ctx, "c", 4, *page.Cursor)
		require.NoError(t, err)
		all = append(contents(page), all...)
	}
	assert.Equal(t, rangeOf(1, 9), all)
}

func TestPageSizeClamp(t *testing.T) {
	assert.Equal(t, DefaultPageSize, clamp(0))
	assert.Equal(t, DefaultPageSize, clamp(-5))
	assert.Equal(t, 7, clamp(7))
	assert.Equal(t, MaxPageSize, clamp(1000))
}

func TestUnknownChat(t *testing.T) {
	_, err := New(storetest.Open(t)).LoadLatest(context.Background(), "missing", 20)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUnavailableReturnsEmptyPage(t *testing.T) {
	page, err := New(store.Unavailable("down")).LoadLatest(context.Background(), "c", 20)
	assert.ErrorIs(t, err, store.ErrUnavailable)
	assert.NotNil(t, page.Messages)
	assert.Empty(t, page.Messages)
	assert.False(t, page.HasMore)
}

// sliceStore serves ListMessages from an in-memory slice sorted oldest first.
type sliceStore struct {
	store.Store
	msgs []store.Message
}

func (s *sliceStore) ListMessages(_ context.Context, _ string, q store.MessageQuery) ([]store.Message, error) {
	var out []store.Message
	for i := len(s.msgs) - 1; i >= 0 && len(out) < q.Limit; i-- {
		m := s.msgs[i]
		if q.Before != nil && !store.CursorOf(m).Before(*q.Before) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}
