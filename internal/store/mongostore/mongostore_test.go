package mongostore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Japjeet07/ChefMaker-sub000/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func TestChatDocCoercion(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	doc := chatDoc{
		ID:               "c1",
		Participants:     []string{"alice", "bob"},
		ParticipantNames: map[string]string{"alice": "Alice"},
		UnreadCount:      map[string]int{"bob": -3},
		LastMessageAt:    &at,
		LastMessage:      &messageDoc{ID: "m1", Content: "hi", Type: "sticker", Timestamp: at},
	}

	c, ok := doc.toChat()
	require.True(t, ok)
	assert.Equal(t, [2]string{"alice", "bob"}, c.Participants)
	assert.Equal(t, "Alice", c.ParticipantNames["alice"])
	assert.Equal(t, "", c.ParticipantNames["bob"])
	assert.Equal(t, map[string]int{"alice": 0, "bob": 0}, c.UnreadCount)
	assert.True(t, c.LastMessageAt.Equal(at))
	require.NotNil(t, c.LastMessage)
	assert.Equal(t, store.TypeText, c.LastMessage.Type)
	assert.Equal(t, "c1", c.LastMessage.ChatID)
}

func TestChatDocRejectsMalformed(t *testing.T) {
	for _, parts := range [][]string{nil, {"alice"}, {"alice", "alice"}, {"a", "b", "c"}} {
		_, ok := chatDoc{ID: "c", Participants: parts}.toChat()
		assert.False(t, ok, "participants %v", parts)
	}
}

func TestChatDocWithoutMessages(t *testing.T) {
	c, ok := chatDoc{ID: "c", Participants: []string{"a", "b"}}.toChat()
	require.True(t, ok)
	assert.Nil(t, c.LastMessage)
	assert.True(t, c.LastMessageAt.IsZero())
}

func TestUpdateStageUnread(t *testing.T) {
	set := updateStage(store.ChatUpdate{
		ResetUnread:     []string{"alice"},
		IncrementUnread: []string{"bob"},
	})

	fields := map[string]any{}
	for _, e := range set {
		fields[e.Key] = e.Value
	}
	assert.Equal(t, "$$NOW", fields["updatedAt"])
	assert.Equal(t, bson.M{"$literal": 0}, fields["unreadCount.alice"])
	assert.Equal(t, bson.M{"$add": bson.A{bson.M{"$ifNull": bson.A{"$unreadCount.bob", 0}}, 1}}, fields["unreadCount.bob"])
	assert.NotContains(t, fields, "lastMessage")
}

func TestUpdateStageResetAndIncrementSameUser(t *testing.T) {
	set := updateStage(store.ChatUpdate{
		ResetUnread:     []string{"bob"},
		IncrementUnread: []string{"bob"},
	})

	var keys []string
	for _, e := range set {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"updatedAt", "unreadCount.bob"}, keys)
	assert.Equal(t, bson.M{"$add": bson.A{0, 1}}, set[1].Value)
}

func TestUpdateStageLastMessageIsLiteral(t *testing.T) {
	m := store.Message{ID: "m1", ChatID: "c1", Content: "$danger", Timestamp: time.Unix(100, 0)}
	set := updateStage(store.ChatUpdate{LastMessage: &m})

	require.Len(t, set, 3)
	assert.Equal(t, "lastMessage", set[1].Key)
	cond := set[1].Value.(bson.M)["$cond"].(bson.A)
	assert.Equal(t, bson.M{"$literal": fromMessage(m)}, cond[1])
	assert.Equal(t, "lastMessageAt", set[2].Key)
}

func TestKeysetFilter(t *testing.T) {
	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	f := keyset("$lt", store.Cursor{Timestamp: ts, ID: "m5"})

	assert.Equal(t, bson.M{"$or": bson.A{
		bson.M{"timestamp": bson.M{"$lt": ts}},
		bson.M{"timestamp": ts, "_id": bson.M{"$lt": "m5"}},
	}}, f)
}

func TestMapErr(t *testing.T) {
	assert.NoError(t, mapErr(nil))

	err := mapErr(mongo.CommandError{Code: codeSortMemoryLimit, Message: "sort exceeded memory"})
	assert.ErrorIs(t, err, store.ErrQueryUnsupported)

	err = mapErr(mongo.CommandError{Code: codeNoQueryExecutionPlans})
	assert.ErrorIs(t, err, store.ErrQueryUnsupported)

	err = mapErr(mongo.ErrClientDisconnected)
	assert.ErrorIs(t, err, store.ErrUnavailable)

	other := errors.New("boom")
	assert.Same(t, other, mapErr(other))
}

func TestUserIDsThatCannotBeFieldNames(t *testing.T) {
	s := &Store{}
	ctx := context.Background()

	_, err := s.CreateChat(ctx, store.NewChat{Participants: [2]string{"alice.smith", "bob"}})
	assert.ErrorIs(t, err, store.ErrInvalid)

	err = s.ApplyChatUpdate(ctx, "c1", store.ChatUpdate{IncrementUnread: []string{"$bob"}})
	assert.ErrorIs(t, err, store.ErrInvalid)
}
