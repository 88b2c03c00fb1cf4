package mongostore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Japjeet07/ChefMaker-sub000/internal/store"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

// CreateChat inserts a chat document with server-assigned createdAt/updatedAt.
func (s *Store) CreateChat(ctx context.Context, nc store.NewChat) (*store.Chat, error) {
	a, b := nc.Participants[0], nc.Participants[1]
	if a == "" || b == "" || a == b {
		return nil, fmt.Errorf("%w: participants must be two distinct ids", store.ErrInvalid)
	}
	if err := checkUserKeys(a, b); err != nil {
		return nil, err
	}

	names := map[string]string{a: nc.ParticipantNames[a], b: nc.ParticipantNames[b]}
	fields := bson.D{
		{Key: "participants", Value: []string{a, b}},
		{Key: "participantNames", Value: names},
		{Key: "unreadCount", Value: map[string]int{a: 0, b: 0}},
	}
	var doc chatDoc
	if err := insertWithServerTime(ctx, s.chats(), uuid.NewString(), fields, []string{"createdAt", "updatedAt"}, &doc); err != nil {
		return nil, fmt.Errorf("insert chat: %w", mapErr(err))
	}
	c, ok := doc.toChat()
	if !ok {
		return nil, fmt.Errorf("insert chat: stored document %q is malformed", doc.ID)
	}
	return &c, nil
}

// GetChat returns a chat by id, or store.ErrNotFound.
func (s *Store) GetChat(ctx context.Context, chatID string) (*store.Chat, error) {
	var doc chatDoc
	err := s.chats().FindOne(ctx, bson.M{"_id": chatID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("chat %q: %w", chatID, store.ErrNotFound)
	}
	if err != nil {
		return nil, mapErr(err)
	}
	c, ok := doc.toChat()
	if !ok {
		return nil, fmt.Errorf("chat %q has %d participants, want 2", chatID, len(doc.Participants))
	}
	return &c, nil
}

// ListChatsByParticipant queries the chats array-containing userID. Malformed
// documents are skipped.
func (s *Store) ListChatsByParticipant(ctx context.Context, userID string, order store.Order) ([]store.Chat, error) {
	opts := options.Find()
	if order == store.OrderLastMessageDesc {
		opts.SetSort(bson.D{{Key: "lastMessageAt", Value: -1}, {Key: "_id", Value: 1}})
	}
	cur, err := s.chats().Find(ctx, bson.M{"participants": userID}, opts)
	if err != nil {
		return nil, mapErr(err)
	}
	var docs []chatDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, mapErr(err)
	}

	out := make([]store.Chat, 0, len(docs))
	for _, d := range docs {
		c, ok := d.toChat()
		if !ok {
			s.logger.Warn("skipping malformed chat", zap.String("chat_id", d.ID), zap.Int("participants", len(d.Participants)))
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// ApplyChatUpdate runs u as one pipeline update so concurrent senders never
// interleave partial writes. lastMessage is only replaced when the stored one is
// not newer; lastMessageAt takes the max.
func (s *Store) ApplyChatUpdate(ctx context.Context, chatID string, u store.ChatUpdate) error {
	filter := bson.M{"_id": chatID}
	users := lo.Uniq(append(append([]string{}, u.ResetUnread...), u.IncrementUnread...))
	if err := checkUserKeys(users...); err != nil {
		return err
	}
	if len(users) > 0 {
		filter["participants"] = bson.M{"$all": users}
	}

	res, err := s.chats().UpdateOne(ctx, filter, mongo.Pipeline{{{Key: "$set", Value: updateStage(u)}}})
	if err != nil {
		return fmt.Errorf("update chat: %w", mapErr(err))
	}
	if res.MatchedCount > 0 {
		return nil
	}

	n, err := s.chats().CountDocuments(ctx, bson.M{"_id": chatID}, options.Count().SetLimit(1))
	if err != nil {
		return mapErr(err)
	}
	if n == 0 {
		return fmt.Errorf("chat %q: %w", chatID, store.ErrNotFound)
	}
	return fmt.Errorf("users %v in chat %q: %w", users, chatID, store.ErrNotParticipant)
}

// checkUserKeys rejects user ids that cannot be field names under
// participantNames and unreadCount.
func checkUserKeys(users ...string) error {
	for _, u := range users {
		if strings.ContainsAny(u, ".$") {
			return fmt.Errorf("%w: user id %q contains '.' or '$'", store.ErrInvalid, u)
		}
	}
	return nil
}

func updateStage(u store.ChatUpdate) bson.D {
	set := bson.D{{Key: "updatedAt", Value: "$$NOW"}}

	if m := u.LastMessage; m != nil {
		ts := m.Timestamp.UTC()
		current := bson.M{"$ifNull": bson.A{"$lastMessageAt", time.Unix(0, 0).UTC()}}
		set = append(set,
			bson.E{Key: "lastMessage", Value: bson.M{"$cond": bson.A{
				bson.M{"$lte": bson.A{current, ts}},
				bson.M{"$literal": fromMessage(*m)},
				"$lastMessage",
			}}},
			bson.E{Key: "lastMessageAt", Value: bson.M{"$max": bson.A{current, ts}}},
		)
	}

	for _, user := range lo.Uniq(u.ResetUnread) {
		if lo.Contains(u.IncrementUnread, user) {
			continue
		}
		set = append(set, bson.E{Key: "unreadCount." + user, Value: bson.M{"$literal": 0}})
	}
	for _, user := range lo.Uniq(u.IncrementUnread) {
		var base any = bson.M{"$ifNull": bson.A{"$unreadCount." + user, 0}}
		if lo.Contains(u.ResetUnread, user) {
			base = 0
		}
		set = append(set, bson.E{Key: "unreadCount." + user, Value: bson.M{"$add": bson.A{base, 1}}})
	}
	return set
}
