// Package mongostore is the MongoDB backend of the chat document store.
// Timestamps come from the server clock ($$NOW) and change notifications from
// change streams, so several daemons can share one database.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Japjeet07/ChefMaker-sub000/internal/store"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

const (
	chatsCollection    = "chats"
	messagesCollection = "messages"
)

// Server error codes that mean the ordered form of a query cannot be served.
const (
	codeOperationFailed        = 96
	codeNoQueryExecutionPlans  = 291
	codeSortMemoryLimit        = 292
	codeChangeStreamNotAllowed = 40573
)

// Store implements store.Store on MongoDB.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

var _ store.Store = (*Store)(nil)

// Config selects the deployment to connect to.
type Config struct {
	URI         string
	Database    string
	MaxPoolSize uint64
	Timeout     time.Duration
}

// Open connects to MongoDB and verifies the connection with a ping.
// Connection failures are reported as store.ErrUnavailable.
func Open(ctx context.Context, cfg Config, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	if cfg.Timeout > 0 {
		opts.SetTimeout(cfg.Timeout)
	}
	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: connect to MongoDB: %v", store.ErrUnavailable, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: ping MongoDB: %v", store.ErrUnavailable, err)
	}

	name := cfg.Database
	if name == "" {
		name = "chefchat"
	}
	return &Store{client: client, db: client.Database(name), logger: logger}, nil
}

// EnsureIndexes creates the indexes the ordered queries rely on. Without them
// the ordered chat list may fail with store.ErrQueryUnsupported.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		chatsCollection: {
			{Keys: bson.D{{Key: "participants", Value: 1}, {Key: "lastMessageAt", Value: -1}, {Key: "_id", Value: 1}}},
		},
		messagesCollection: {
			{Keys: bson.D{{Key: "chatId", Value: 1}, {Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}}},
		},
	}
	for name, models := range indexes {
		if _, err := s.db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes for %s: %w", name, mapErr(err))
		}
	}
	return nil
}

// Close disconnects the client.
func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (s *Store) chats() *mongo.Collection    { return s.db.Collection(chatsCollection) }
func (s *Store) messages() *mongo.Collection { return s.db.Collection(messagesCollection) }

// insertWithServerTime creates a document whose listed time fields are set to the
// server clock and decodes the stored document into out.
func insertWithServerTime(ctx context.Context, coll *mongo.Collection, id string, fields bson.D, timeFields []string, out any) error {
	set := bson.D{}
	for _, f := range fields {
		set = append(set, bson.E{Key: f.Key, Value: bson.M{"$literal": f.Value}})
	}
	for _, f := range timeFields {
		set = append(set, bson.E{Key: f, Value: "$$NOW"})
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	return coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, mongo.Pipeline{{{Key: "$set", Value: set}}}, opts).Decode(out)
}

// mapErr translates driver errors into the store sentinels.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrClientDisconnected) || mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	var se mongo.ServerError
	if errors.As(err, &se) {
		switch {
		case se.HasErrorCode(codeNoQueryExecutionPlans),
			se.HasErrorCode(codeSortMemoryLimit),
			se.HasErrorCode(codeOperationFailed),
			se.HasErrorCode(codeChangeStreamNotAllowed):
			return fmt.Errorf("%w: %v", store.ErrQueryUnsupported, err)
		}
	}
	return err
}
