package mongostore

import (
	"context"
	"fmt"

	"github.com/Japjeet07/ChefMaker-sub000/internal/store"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

// Subscribe opens a change stream for topic. Change streams need a replica set;
// on a standalone server this fails with store.ErrQueryUnsupported.
func (s *Store) Subscribe(ctx context.Context, topic store.Topic) (<-chan store.Change, error) {
	if topic.Key == "" {
		return nil, fmt.Errorf("%w: empty topic key", store.ErrInvalid)
	}

	var (
		coll     *mongo.Collection
		pipeline mongo.Pipeline
		opts     = options.ChangeStream()
	)
	switch topic.Kind {
	case store.TopicMessages:
		coll = s.messages()
		pipeline = mongo.Pipeline{{{Key: "$match", Value: bson.M{
			"operationType":       bson.M{"$in": bson.A{"insert", "update", "replace"}},
			"fullDocument.chatId": topic.Key,
		}}}}
		opts.SetFullDocument(options.UpdateLookup)
	case store.TopicChats:
		coll = s.chats()
		pipeline = mongo.Pipeline{{{Key: "$match", Value: bson.M{
			"operationType":             bson.M{"$in": bson.A{"insert", "update", "replace"}},
			"fullDocument.participants": topic.Key,
		}}}}
		opts.SetFullDocument(options.UpdateLookup)
	default:
		return nil, fmt.Errorf("%w: unknown topic kind %d", store.ErrInvalid, topic.Kind)
	}

	cs, err := coll.Watch(ctx, pipeline, opts)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", coll.Name(), mapErr(err))
	}

	out := make(chan store.Change, 1)
	go func() {
		defer close(out)
		defer func() { _ = cs.Close(context.Background()) }()

		for cs.Next(ctx) {
			select {
			case out <- store.Change{Topic: topic}:
			default:
			}
		}
		if ctx.Err() != nil {
			return
		}
		err := mapErr(cs.Err())
		if err == nil {
			err = fmt.Errorf("%w: change stream closed", store.ErrUnavailable)
		}
		s.logger.Warn("change stream stopped", zap.String("collection", coll.Name()), zap.String("key", topic.Key), zap.Error(err))
		select {
		case out <- store.Change{Topic: topic, Err: err}:
		case <-ctx.Done():
		}
	}()
	return out, nil
}
