package mongostore

import (
	"context"
	"fmt"

	"github.com/Japjeet07/ChefMaker-sub000/internal/store"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const defaultMessageLimit = 50

// AppendMessage inserts a message stamped with the server clock. Two messages in
// the same millisecond are ordered by id.
func (s *Store) AppendMessage(ctx context.Context, chatID string, m store.NewMessage) (*store.Message, error) {
	if m.Type == "" {
		m.Type = store.TypeText
	}
	if !m.Type.Valid() {
		return nil, fmt.Errorf("%w: message type %q", store.ErrInvalid, m.Type)
	}
	if err := s.requireChat(ctx, chatID); err != nil {
		return nil, err
	}

	fields := bson.D{
		{Key: "chatId", Value: chatID},
		{Key: "senderId", Value: m.SenderID},
		{Key: "senderName", Value: m.SenderName},
		{Key: "content", Value: m.Content},
		{Key: "read", Value: false},
		{Key: "type", Value: string(m.Type)},
	}
	if m.ClientID != "" {
		fields = append(fields, bson.E{Key: "clientId", Value: m.ClientID})
	}
	var doc messageDoc
	if err := insertWithServerTime(ctx, s.messages(), uuid.NewString(), fields, []string{"timestamp"}, &doc); err != nil {
		return nil, fmt.Errorf("insert message: %w", mapErr(err))
	}
	msg := doc.toMessage()
	return &msg, nil
}

// ListMessages is a keyset range read on (timestamp, _id).
func (s *Store) ListMessages(ctx context.Context, chatID string, q store.MessageQuery) ([]store.Message, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultMessageLimit
	}

	conds := bson.A{bson.M{"chatId": chatID}}
	if c := q.Before; c != nil {
		conds = append(conds, keyset("$lt", *c))
	}
	if c := q.After; c != nil {
		conds = append(conds, keyset("$gt", *c))
	}
	dir := -1
	if q.Direction == store.OldestFirst {
		dir = 1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: dir}, {Key: "_id", Value: dir}}).
		SetLimit(int64(limit))

	cur, err := s.messages().Find(ctx, bson.M{"$and": conds}, opts)
	if err != nil {
		return nil, mapErr(err)
	}
	var docs []messageDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, mapErr(err)
	}

	if len(docs) == 0 {
		if err := s.requireChat(ctx, chatID); err != nil {
			return nil, err
		}
	}
	out := make([]store.Message, len(docs))
	for i, d := range docs {
		out[i] = d.toMessage()
	}
	return out, nil
}

// keyset builds the filter for messages strictly before ($lt) or after ($gt) c.
func keyset(op string, c store.Cursor) bson.M {
	ts := c.Timestamp.UTC()
	return bson.M{"$or": bson.A{
		bson.M{"timestamp": bson.M{op: ts}},
		bson.M{"timestamp": ts, "_id": bson.M{op: c.ID}},
	}}
}

func (s *Store) requireChat(ctx context.Context, chatID string) error {
	n, err := s.chats().CountDocuments(ctx, bson.M{"_id": chatID}, options.Count().SetLimit(1))
	if err != nil {
		return mapErr(err)
	}
	if n == 0 {
		return fmt.Errorf("chat %q: %w", chatID, store.ErrNotFound)
	}
	return nil
}
