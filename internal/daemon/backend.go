package daemon

import (
	"context"
	"time"

	"github.com/Japjeet07/ChefMaker-sub000/internal/bus"
	"github.com/Japjeet07/ChefMaker-sub000/internal/config"
	"github.com/Japjeet07/ChefMaker-sub000/internal/lock"
	"github.com/Japjeet07/ChefMaker-sub000/internal/presence"
	"github.com/Japjeet07/ChefMaker-sub000/internal/session"
	"github.com/Japjeet07/ChefMaker-sub000/internal/store"
	"github.com/Japjeet07/ChefMaker-sub000/internal/store/mongostore"
	"go.uber.org/zap"
)

// Backend is the store the daemon serves from. When the configured store
// could not be reached Store is store.Unavailable and Reason says why.
type Backend struct {
	Store  store.Store
	Name   string
	Reason string
}

// Degraded reports whether the configured store is out of reach.
func (b *Backend) Degraded() bool { return b.Reason != "" }

// The lock is a dependency so a second daemon never opens the store.
func provideBackend(p Params, _ *lock.Lock, b *bus.Bus, logger *zap.Logger) (*Backend, error) {
	cfg := p.config().Store
	switch cfg.Backend {
	case config.BackendMongo:
		return openMongo(cfg, logger), nil
	default:
		return openSQLite(p, b, logger)
	}
}

func openSQLite(p Params, b *bus.Bus, logger *zap.Logger) (*Backend, error) {
	dbPath := session.DBPath(p.SessionName)
	db, err := store.Open(dbPath, store.WithBus(b), store.WithLogger(logger.Named("store")))
	if err != nil {
		return nil, err
	}
	result, err := db.Migrate()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if result.Changed {
		logger.Info("migrations applied", zap.Uint("version", result.Version))
	} else {
		logger.Info("migrations up to date", zap.Uint("version", result.Version))
	}
	logger.Info("store initialized", zap.String("backend", config.BackendSQLite), zap.String("path", dbPath))
	return &Backend{Store: db, Name: config.BackendSQLite}, nil
}

func openMongo(cfg config.StoreConfig, logger *zap.Logger) *Backend {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ms, err := mongostore.Open(ctx, mongostore.Config{
		URI:         cfg.MongoURI,
		Database:    cfg.MongoDatabase,
		MaxPoolSize: cfg.MongoPoolSize,
		Timeout:     timeout,
	}, logger.Named("store"))
	if err != nil {
		logger.Error("mongo store unavailable, serving degraded", zap.Error(err))
		return &Backend{Store: store.Unavailable(err.Error()), Name: config.BackendMongo, Reason: err.Error()}
	}
	if err := ms.EnsureIndexes(ctx); err != nil {
		// Ordered listing falls back to client-side sorting without the indexes.
		logger.Warn("ensure indexes failed", zap.Error(err))
	}
	logger.Info("store initialized", zap.String("backend", config.BackendMongo), zap.String("database", cfg.MongoDatabase))
	return &Backend{Store: ms, Name: config.BackendMongo}
}

// Presence is the viewing tracker plus its mode for status output.
type Presence struct {
	presence.Tracker
	Mode  string
	close func() error
}

func (p *Presence) Close() error {
	if p.close == nil {
		return nil
	}
	return p.close()
}

func providePresence(p Params, logger *zap.Logger) *Presence {
	cfg := p.config().Redis
	ttl := time.Duration(cfg.ViewingTTLSeconds) * time.Second
	if cfg.Addr == "" {
		return &Presence{Tracker: presence.NewMemory(ttl), Mode: "memory"}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	r, err := presence.NewRedis(ctx, presence.RedisConfig{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		TTL:      ttl,
	})
	if err != nil {
		logger.Warn("redis presence unavailable, using memory", zap.Error(err))
		return &Presence{Tracker: presence.NewMemory(ttl), Mode: "memory"}
	}
	logger.Info("redis presence connected", zap.String("addr", cfg.Addr))
	return &Presence{Tracker: r, Mode: "redis", close: r.Close}
}
