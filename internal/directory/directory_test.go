package directory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Japjeet07/ChefMaker-sub000/internal/store"
	"github.com/Japjeet07/ChefMaker-sub000/internal/store/storetest"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

func TestFindOrCreateSwappedOrder(t *testing.T) {
	db := storetest.Open(t)
	svc := New(db, nil, nil, nil)
	ctx := context.Background()

	id1, err := svc.FindOrCreate(ctx, "alice", "bob", "Alice", "Bob")
	require.NoError(t, err)
	id2, err := svc.FindOrCreate(ctx, "bob", "alice", "Bob", "Alice")
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	chats, err := db.ListChatsByParticipant(ctx, "alice", store.OrderNone)
	require.NoError(t, err)
	assert.Len(t, chats, 1)

	c, err := db.GetChat(ctx, id1)
	require.NoError(t, err)
	assert.Equal(t, "Bob", c.ParticipantNames["bob"])
	assert.Equal(t, map[string]int{"alice": 0, "bob": 0}, c.UnreadCount)
}

func TestFindOrCreateDistinctPairs(t *testing.T) {
	db := storetest.Open(t)
	svc := New(db, nil, nil, nil)
	ctx := context.Background()

	ab, err := svc.FindOrCreate(ctx, "alice", "bob", "", "")
	require.NoError(t, err)
	ac, err := svc.FindOrCreate(ctx, "alice", "carol", "", "")
	require.NoError(t, err)
	assert.NotEqual(t, ab, ac)
}

func TestFindOrCreateRejectsInvalidPairs(t *testing.T) {
	svc := New(storetest.Open(t), nil, nil, nil)
	ctx := context.Background()

	_, err := svc.FindOrCreate(ctx, "alice", "alice", "", "")
	assert.ErrorIs(t, err, store.ErrInvalid)

	_, err = svc.FindOrCreate(ctx, "", "bob", "", "")
	assert.ErrorIs(t, err, store.ErrInvalid)
}

func TestFindOrCreateRejectsIDsUnusableAsFieldNames(t *testing.T) {
	db := storetest.Open(t)
	svc := New(db, nil, nil, nil)
	ctx := context.Background()

	for _, pair := range [][2]string{{"alice.smith", "bob"}, {"alice", "$bob"}} {
		_, err := svc.FindOrCreate(ctx, pair[0], pair[1], "", "")
		assert.ErrorIs(t, err, store.ErrInvalid, "FindOrCreate(%q, %q)", pair[0], pair[1])
	}

	chats, err := db.ListChatsByParticipant(ctx, "bob", store.OrderNone)
	require.NoError(t, err)
	assert.Empty(t, chats)
}

func TestFindOrCreateConcurrentCallsShareOneChat(t *testing.T) {
	db := storetest.Open(t)
	svc := New(db, nil, nil, nil)
	ctx := context.Background()

	ids := make([]string, 8)
	var wg sync.WaitGroup
	for i := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a, b := "alice", "bob"
			if i%2 == 1 {
				a, b = b, a
			}
			id, err := svc.FindOrCreate(ctx, a, b, a, b)
			assert.NoError(t, err)
			ids[i] = id
		}()
	}
	wg.Wait()

	assert.Len(t, lo.Uniq(ids), 1)
	assert.Equal(t, 0, svc.pairs.len())
}

func TestFindOrCreateUnavailable(t *testing.T) {
	svc := New(store.Unavailable("test"), nil, nil, nil)

	_, err := svc.FindOrCreate(context.Background(), "alice", "bob", "", "")
	assert.ErrorIs(t, err, store.ErrUnavailable)
}

// seedChats gives alice four chats with distinct activity plus one chat she is not in.
func seedChats(t *testing.T, db *store.DB, clock *storetest.Clock) []string {
	t.Helper()
	ctx := context.Background()

	quiet := storetest.Chat(t, db, "alice", "quiet")
	old := storetest.Chat(t, db, "alice", "old")
	recent := storetest.Chat(t, db, "recent", "alice")
	middle := storetest.Chat(t, db, "alice", "middle")
	storetest.Chat(t, db, "bob", "carol")

	for _, c := range []*store.Chat{old, middle, recent} {
		m := storetest.Append(t, db, c.ID, c.Other("alice"), "hi")
		require.NoError(t, db.ApplyChatUpdate(ctx, c.ID, store.ChatUpdate{LastMessage: m}))
		clock.Advance(time.Minute)
	}
	return []string{recent.ID, middle.ID, old.ID, quiet.ID}
}

func TestListMostRecentFirst(t *testing.T) {
	clock := storetest.NewClock(start)
	db := storetest.Open(t, store.WithClock(clock.Now))
	want := seedChats(t, db, clock)

	chats, err := New(db, nil, nil, nil).List(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, want, lo.Map(chats, func(c store.Chat, _ int) string { return c.ID }))
}

func TestListFallbackMatchesOrderedQuery(t *testing.T) {
	clock := storetest.NewClock(start)
	db := storetest.Open(t, store.WithClock(clock.Now))
	seedChats(t, db, clock)
	// Two more chats without messages tie on activity; the id decides.
	storetest.Chat(t, db, "alice", "tie1")
	storetest.Chat(t, db, "tie2", "alice")
	ctx := context.Background()

	ordered, err := New(db, nil, nil, nil).List(ctx, "alice")
	require.NoError(t, err)
	fallback, err := New(storetest.Unordered{Store: db}, nil, nil, nil).List(ctx, "alice")
	require.NoError(t, err)

	ids := func(cs []store.Chat) []string { return lo.Map(cs, func(c store.Chat, _ int) string { return c.ID }) }
	require.Len(t, ordered, 6)
	assert.Equal(t, ids(ordered), ids(fallback))
}

func TestListUnavailableReturnsEmpty(t *testing.T) {
	chats, err := New(store.Unavailable("down"), nil, nil, nil).List(context.Background(), "alice")
	assert.ErrorIs(t, err, store.ErrUnavailable)
	assert.NotNil(t, chats)
	assert.Empty(t, chats)
}

func TestWatchEmitsOnChange(t *testing.T) {
	db := storetest.Open(t)
	svc := New(db, nil, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lists, err := svc.Watch(ctx, "alice")
	require.NoError(t, err)

	select {
	case got := <-lists:
		assert.Empty(t, got)
	case <-time.After(time.Second):
		t.Fatal("no initial list")
	}

	id, err := svc.FindOrCreate(ctx, "alice", "bob", "", "")
	require.NoError(t, err)

	select {
	case got := <-lists:
		require.Len(t, got, 1)
		assert.Equal(t, id, got[0].ID)
	case <-time.After(time.Second):
		t.Fatal("no list after chat creation")
	}

	cancel()
	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-lists:
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}

func TestSortByRecency(t *testing.T) {
	chats := []store.Chat{
		{ID: "b"},
		{ID: "c", LastMessageAt: start},
		{ID: "a"},
		{ID: "d", LastMessageAt: start.Add(time.Hour)},
		{ID: "e", LastMessageAt: start},
	}
	SortByRecency(chats)
	assert.Equal(t, []string{"d", "c", "e", "a", "b"}, lo.Map(chats, func(c store.Chat, _ int) string { return c.ID }))
}
