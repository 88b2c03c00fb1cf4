package mongostore

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/Japjeet07/ChefMaker-sub000/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// openLive connects to the server named by MONGO_URI, using a fresh database
// that is dropped when the test ends.
func openLive(t *testing.T) *Store {
	t.Helper()
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	name := "chefchat_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	s, err := Open(ctx, Config{URI: uri, Database: name, Timeout: 10 * time.Second}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, s.EnsureIndexes(ctx))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = s.db.Drop(ctx)
		_ = s.Close()
	})
	return s
}

func liveChat(t *testing.T, s *Store, a, b string) *store.Chat {
	t.Helper()
	c, err := s.CreateChat(context.Background(), store.NewChat{
		Participants:     [2]string{a, b},
		ParticipantNames: map[string]string{a: "User " + a, b: "User " + b},
	})
	require.NoError(t, err)
	return c
}

// liveAppend waits a couple of milliseconds first so server timestamps differ.
func liveAppend(t *testing.T, s *Store, chatID, sender, content string) *store.Message {
	t.Helper()
	time.Sleep(2 * time.Millisecond)
	m, err := s.AppendMessage(context.Background(), chatID, store.NewMessage{SenderID: sender, Content: content})
	require.NoError(t, err)
	return m
}

func TestMongoCreateAndGetChat(t *testing.T) {
	s := openLive(t)
	ctx := context.Background()

	created := liveChat(t, s, "alice", "bob")
	assert.False(t, created.CreatedAt.IsZero())

	got, err := s.GetChat(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, [2]string{"alice", "bob"}, got.Participants)
	assert.Equal(t, "User bob", got.ParticipantNames["bob"])
	assert.Equal(t, map[string]int{"alice": 0, "bob": 0}, got.UnreadCount)
	assert.Nil(t, got.LastMessage)

	_, err = s.GetChat(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMongoListMessagesKeyset(t *testing.T) {
	s := openLive(t)
	ctx := context.Background()
	c := liveChat(t, s, "alice", "bob")

	var sent []*store.Message
	for _, body := range []string{"m1", "m2", "m3", "m4", "m5"} {
		sent = append(sent, liveAppend(t, s, c.ID, "alice", body))
	}
	for i := 1; i < len(sent); i++ {
		require.True(t, store.CursorOf(*sent[i-1]).Before(store.CursorOf(*sent[i])), "append order %d", i)
	}

	page, err := s.ListMessages(ctx, c.ID, store.MessageQuery{Direction: store.NewestFirst, Limit: 2})
	require.NoError(t, err)
	require.Equal(t, []string{"m5", "m4"}, messageContents(page))

	cur := store.CursorOf(page[1])
	page, err = s.ListMessages(ctx, c.ID, store.MessageQuery{Before: &cur, Direction: store.NewestFirst, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"m3", "m2", "m1"}, messageContents(page))

	after := store.CursorOf(*sent[2])
	page, err = s.ListMessages(ctx, c.ID, store.MessageQuery{After: &after, Direction: store.OldestFirst})
	require.NoError(t, err)
	assert.Equal(t, []string{"m4", "m5"}, messageContents(page))

	_, err = s.AppendMessage(ctx, "missing", store.NewMessage{SenderID: "alice", Content: "hi"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMongoApplyChatUpdate(t *testing.T) {
	s := openLive(t)
	ctx := context.Background()
	c := liveChat(t, s, "alice", "bob")

	newer := liveAppend(t, s, c.ID, "bob", "newer")
	older := *newer
	older.ID = "older"
	older.Content = "older"
	older.Timestamp = newer.Timestamp.Add(-time.Minute)

	require.NoError(t, s.ApplyChatUpdate(ctx, c.ID, store.ChatUpdate{LastMessage: newer, IncrementUnread: []string{"alice"}}))
	require.NoError(t, s.ApplyChatUpdate(ctx, c.ID, store.ChatUpdate{LastMessage: &older, IncrementUnread: []string{"alice"}}))

	got, err := s.GetChat(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastMessage)
	assert.Equal(t, "newer", got.LastMessage.Content, "last message must not regress")
	assert.True(t, got.LastMessageAt.Equal(newer.Timestamp), "last_message_at = %v, want %v", got.LastMessageAt, newer.Timestamp)
	assert.Equal(t, 2, got.UnreadCount["alice"])
	assert.Equal(t, 0, got.UnreadCount["bob"])

	require.NoError(t, s.ApplyChatUpdate(ctx, c.ID, store.ChatUpdate{ResetUnread: []string{"alice"}}))
	got, err = s.GetChat(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.UnreadCount["alice"])

	err = s.ApplyChatUpdate(ctx, c.ID, store.ChatUpdate{IncrementUnread: []string{"mallory"}})
	assert.ErrorIs(t, err, store.ErrNotParticipant)
	assert.ErrorIs(t, s.ApplyChatUpdate(ctx, "missing", store.ChatUpdate{}), store.ErrNotFound)
}

func TestMongoListChatsByParticipantOrder(t *testing.T) {
	s := openLive(t)
	ctx := context.Background()

	quiet := liveChat(t, s, "alice", "carol")
	first := liveChat(t, s, "alice", "bob")
	second := liveChat(t, s, "dave", "alice")
	liveChat(t, s, "bob", "carol")

	m1 := liveAppend(t, s, first.ID, "bob", "hello")
	require.NoError(t, s.ApplyChatUpdate(ctx, first.ID, store.ChatUpdate{LastMessage: m1}))
	m2 := liveAppend(t, s, second.ID, "dave", "hey")
	require.NoError(t, s.ApplyChatUpdate(ctx, second.ID, store.ChatUpdate{LastMessage: m2}))

	chats, err := s.ListChatsByParticipant(ctx, "alice", store.OrderLastMessageDesc)
	require.NoError(t, err)
	ids := make([]string, len(chats))
	for i, c := range chats {
		ids[i] = c.ID
	}
	assert.Equal(t, []string{second.ID, first.ID, quiet.ID}, ids)

	unordered, err := s.ListChatsByParticipant(ctx, "alice", store.OrderNone)
	require.NoError(t, err)
	assert.Len(t, unordered, 3)
}

func TestMongoSubscribeNotifiesOnAppend(t *testing.T) {
	s := openLive(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c := liveChat(t, s, "alice", "bob")

	changes, err := s.Subscribe(ctx, store.MessagesTopic(c.ID))
	if errors.Is(err, store.ErrQueryUnsupported) {
		t.Skip("server does not support change streams")
	}
	require.NoError(t, err)

	liveAppend(t, s, c.ID, "bob", "hi")
	select {
	case ch := <-changes:
		require.NoError(t, ch.Err)
		assert.Equal(t, store.MessagesTopic(c.ID), ch.Topic)
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for change")
	}

	cancel()
	for range changes {
	}
}

func messageContents(msgs []store.Message) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.Content
	}
	return out
}
