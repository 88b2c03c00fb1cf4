package view

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Japjeet07/ChefMaker-sub000/internal/chat"
	"github.com/Japjeet07/ChefMaker-sub000/internal/outbox"
	"github.com/Japjeet07/ChefMaker-sub000/internal/store"
	"github.com/Japjeet07/ChefMaker-sub000/internal/store/storetest"
	"github.com/Japjeet07/ChefMaker-sub000/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	waitFor = 2 * time.Second
	tick    = 10 * time.Millisecond
)

func setup(t *testing.T) (*chat.Service, *store.DB) {
	t.Helper()
	db := storetest.Open(t)
	return chat.New(chat.Deps{Store: db}), db
}

func contents(entries []timeline.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Content
	}
	return out
}

func TestOpenShowsLatestPageAndLiveMessages(t *testing.T) {
	svc, db := setup(t)
	c := storetest.Chat(t, db, "alice", "bob")
	storetest.Append(t, db, c.ID, "bob", "before")

	v := New(svc, "alice", "Alice", 0, nil)
	require.NoError(t, v.Open(context.Background(), c.ID))
	defer v.Close(context.Background())

	assert.Equal(t, c.ID, v.ChatID())
	assert.Equal(t, []string{"before"}, contents(v.Entries()))

	storetest.Append(t, db, c.ID, "bob", "after")
	assert.Eventually(t, func() bool {
		return assert.ObjectsAreEqual([]string{"before", "after"}, contents(v.Entries()))
	}, waitFor, tick)
}

func TestSendConvergesToOneEntry(t *testing.T) {
	svc, db := setup(t)
	c := storetest.Chat(t, db, "alice", "bob")
	ctx := context.Background()

	v := New(svc, "alice", "Alice", 0, nil)
	require.NoError(t, v.Open(ctx, c.ID))
	defer v.Close(ctx)

	require.NoError(t, v.Send(ctx, "hello"))

	stored, err := db.ListMessages(ctx, c.ID, store.MessageQuery{})
	require.NoError(t, err)
	require.Len(t, stored, 1)

	// The live echo arrives after the confirmation and must not duplicate it.
	assert.Never(t, func() bool { return len(v.Entries()) != 1 }, 200*time.Millisecond, tick)
	entries := v.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, stored[0].ID, entries[0].ID)
	assert.False(t, entries[0].Pending)
}

type failingSend struct {
	Backend
	err error
}

func (f failingSend) SendMessage(context.Context, outbox.SendRequest) (*store.Message, error) {
	return nil, f.err
}

func TestFailedSendRemovesPlaceholder(t *testing.T) {
	svc, db := setup(t)
	c := storetest.Chat(t, db, "alice", "bob")
	ctx := context.Background()

	cause := errors.New("boom")
	v := New(failingSend{Backend: svc, err: cause}, "alice", "Alice", 0, nil)
	require.NoError(t, v.Open(ctx, c.ID))
	defer v.Close(ctx)

	err := v.Send(ctx, "lost")
	assert.ErrorIs(t, err, cause)
	assert.Empty(t, v.Entries())

	msg, isErr := v.Flash.Get()
	assert.True(t, isErr)
	assert.Contains(t, msg, "boom")
}

func TestSwitchingChatsDoesNotLeak(t *testing.T) {
	svc, db := setup(t)
	first := storetest.Chat(t, db, "alice", "bob")
	second := storetest.Chat(t, db, "alice", "carol")
	ctx := context.Background()

	v := New(svc, "alice", "Alice", 0, nil)
	require.NoError(t, v.Open(ctx, first.ID))
	require.NoError(t, v.Open(ctx, second.ID))
	defer v.Close(ctx)

	storetest.Append(t, db, first.ID, "bob", "for the old chat")
	storetest.Append(t, db, second.ID, "carol", "for the new chat")

	assert.Eventually(t, func() bool { return len(v.Entries()) == 1 }, waitFor, tick)
	assert.Never(t, func() bool {
		for _, e := range v.Entries() {
			if e.ChatID != second.ID {
				return true
			}
		}
		return false
	}, 200*time.Millisecond, tick)
	assert.Equal(t, []string{"for the new chat"}, contents(v.Entries()))
}

func TestLoadOlderPages(t *testing.T) {
	svc, db := setup(t)
	c := storetest.Chat(t, db, "alice", "bob")
	for i := 1; i <= 45; i++ {
		storetest.Append(t, db, c.ID, "bob", fmt.Sprintf("m%d", i))
	}
	ctx := context.Background()

	v := New(svc, "alice", "Alice", 20, nil)
	require.NoError(t, v.Open(ctx, c.ID))
	defer v.Close(ctx)

	entries := v.Entries()
	require.Len(t, entries, 20)
	assert.Equal(t, "m26", entries[0].Content)
	assert.True(t, v.HasMore())

	n, err := v.LoadOlder(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, n)
	assert.Equal(t, "m6", v.Entries()[0].Content)

	n, err = v.LoadOlder(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.False(t, v.HasMore())

	entries = v.Entries()
	require.Len(t, entries, 45)
	assert.Equal(t, "m1", entries[0].Content)
	assert.Equal(t, "m45", entries[44].Content)

	n, err = v.LoadOlder(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOpenMarksViewingAndCloseClearsIt(t *testing.T) {
	svc, db := setup(t)
	c := storetest.Chat(t, db, "alice", "bob")
	ctx := context.Background()

	v := New(svc, "alice", "Alice", 0, nil)
	require.NoError(t, v.Open(ctx, c.ID))

	_, err := svc.SendMessage(ctx, outbox.SendRequest{ChatID: c.ID, SenderID: "bob", Content: "seen"})
	require.NoError(t, err)
	got, _ := db.GetChat(ctx, c.ID)
	assert.Equal(t, 0, got.UnreadCount["alice"])

	v.Close(ctx)
	assert.Empty(t, v.ChatID())
	viewing, _ := svc.Viewing(ctx, "alice")
	assert.Empty(t, viewing)

	_, err = svc.SendMessage(ctx, outbox.SendRequest{ChatID: c.ID, SenderID: "bob", Content: "unseen"})
	require.NoError(t, err)
	got, _ = db.GetChat(ctx, c.ID)
	assert.Equal(t, 1, got.UnreadCount["alice"])
}

func TestOperationsWithoutChat(t *testing.T) {
	svc, _ := setup(t)
	v := New(svc, "alice", "Alice", 0, nil)

	assert.ErrorIs(t, v.Send(context.Background(), "hi"), ErrNoChat)
	_, err := v.LoadOlder(context.Background())
	assert.ErrorIs(t, err, ErrNoChat)
	assert.Nil(t, v.Entries())
}

// noStreams is a store without change streams, like a standalone MongoDB.
type noStreams struct {
	store.Store
}

func (noStreams) Subscribe(context.Context, store.Topic) (<-chan store.Change, error) {
	return nil, fmt.Errorf("change streams: %w", store.ErrQueryUnsupported)
}

func TestOpenWithoutChangeStreams(t *testing.T) {
	db := storetest.Open(t)
	svc := chat.New(chat.Deps{Store: noStreams{Store: db}})
	c := storetest.Chat(t, db, "alice", "bob")
	storetest.Append(t, db, c.ID, "bob", "history")
	ctx := context.Background()

	v := New(svc, "alice", "Alice", 0, nil)
	require.NoError(t, v.Open(ctx, c.ID))
	defer v.Close(ctx)

	assert.Equal(t, c.ID, v.ChatID())
	assert.Equal(t, []string{"history"}, contents(v.Entries()))

	require.NoError(t, v.Send(ctx, "still sends"))
	assert.Equal(t, []string{"history", "still sends"}, contents(v.Entries()))
	viewing, err := svc.Viewing(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, c.ID, viewing)
}

func TestOpenUnknownChat(t *testing.T) {
	svc, _ := setup(t)
	v := New(svc, "alice", "Alice", 0, nil)

	err := v.Open(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Empty(t, v.ChatID())
}

func TestFlashExpires(t *testing.T) {
	now := time.Unix(0, 0)
	f := Flash{now: func() time.Time { return now }}

	f.Set("saved", time.Second)
	msg, isErr := f.Get()
	assert.Equal(t, "saved", msg)
	assert.False(t, isErr)

	now = now.Add(2 * time.Second)
	msg, _ = f.Get()
	assert.Empty(t, msg)
}
