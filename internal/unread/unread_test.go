package unread

import (
	"context"
	"testing"
	"time"

	"github.com/Japjeet07/ChefMaker-sub000/internal/bus"
	"github.com/Japjeet07/ChefMaker-sub000/internal/store"
	"github.com/Japjeet07/ChefMaker-sub000/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext(t *testing.T) {
	assert.Equal(t, 1, Next(0, false))
	assert.Equal(t, 5, Next(4, false))
	assert.Equal(t, 0, Next(4, true))
	assert.Equal(t, 1, Next(-2, false))
}

func TestNextIsMonotonicWhileNotViewing(t *testing.T) {
	n := 0
	for i := 1; i <= 10; i++ {
		n = Next(n, false)
		assert.Equal(t, i, n)
	}
}

func TestApplyRecipient(t *testing.T) {
	var u store.ChatUpdate
	ApplyRecipient(&u, "bob", false)
	assert.Equal(t, []string{"bob"}, u.IncrementUnread)
	assert.Empty(t, u.ResetUnread)

	u = store.ChatUpdate{}
	ApplyRecipient(&u, "bob", true)
	assert.Equal(t, []string{"bob"}, u.ResetUnread)
	assert.Empty(t, u.IncrementUnread)
}

func TestBadge(t *testing.T) {
	chats := []store.Chat{
		{ID: "c1", UnreadCount: map[string]int{"alice": 2, "bob": 9}},
		{ID: "c2", UnreadCount: map[string]int{"alice": 3}},
		{ID: "c3", UnreadCount: map[string]int{"alice": 4}},
		{ID: "c4"},
	}
	assert.Equal(t, 9, Badge(chats, "alice", ""))
	assert.Equal(t, 6, Badge(chats, "alice", "c2"))
	assert.Equal(t, 0, Badge(nil, "alice", ""))
}

func TestMarkReadIsIdempotent(t *testing.T) {
	db := storetest.Open(t)
	ctx := context.Background()
	c := storetest.Chat(t, db, "alice", "bob")
	require.NoError(t, db.ApplyChatUpdate(ctx, c.ID, store.ChatUpdate{IncrementUnread: []string{"alice", "bob"}}))

	b := bus.New()
	events, unsub := b.Subscribe(bus.KindChatRead, 4)
	defer unsub()
	tr := NewTracker(db, b)

	require.NoError(t, tr.MarkRead(ctx, c.ID, "alice"))
	require.NoError(t, tr.MarkRead(ctx, c.ID, "alice"))

	got, err := db.GetChat(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.UnreadCount["alice"])
	assert.Equal(t, 1, got.UnreadCount["bob"])

	select {
	case evt := <-events:
		assert.Equal(t, bus.ChatEvent{ChatID: c.ID, UserID: "alice"}, evt.Payload)
	case <-time.After(time.Second):
		t.Fatal("no chat.read event")
	}
}

func TestMarkReadErrors(t *testing.T) {
	db := storetest.Open(t)
	ctx := context.Background()
	c := storetest.Chat(t, db, "alice", "bob")
	tr := NewTracker(db, nil)

	assert.ErrorIs(t, tr.MarkRead(ctx, c.ID, "mallory"), store.ErrNotParticipant)
	assert.ErrorIs(t, tr.MarkRead(ctx, "missing", "alice"), store.ErrNotFound)
	assert.ErrorIs(t, tr.MarkRead(ctx, "", "alice"), store.ErrInvalid)
}
