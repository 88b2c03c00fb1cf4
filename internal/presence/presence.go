// Package presence records which chat each user currently has open. The send
// path consults it to decide between resetting and incrementing the recipient's
// unread counter. A user has at most one open chat; the last writer wins.
package presence

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Tracker stores the open chat per user.
type Tracker interface {
	// SetViewing records that userID has chatID open. An empty chatID clears it.
	SetViewing(ctx context.Context, userID, chatID string) error
	// Viewing returns userID's open chat, or "" when none is known.
	Viewing(ctx context.Context, userID string) (string, error)
	// Leave clears userID's mark only while it still names chatID.
	Leave(ctx context.Context, userID, chatID string) error
}

// DefaultTTL bounds how long a viewing mark survives a client that vanished
// without clearing it.
const DefaultTTL = 10 * time.Minute

// Memory is an in-process Tracker. Marks expire after the TTL like the Redis
// keys do.
type Memory struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	viewing map[string]mark
}

type mark struct {
	chatID  string
	expires time.Time
}

// NewMemory creates a tracker whose marks live for ttl (DefaultTTL when
// ttl <= 0).
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{ttl: ttl, now: time.Now, viewing: make(map[string]mark)}
}

// WithClock replaces the time source.
func (m *Memory) WithClock(now func() time.Time) *Memory {
	m.now = now
	return m
}

func (m *Memory) SetViewing(_ context.Context, userID, chatID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if chatID == "" {
		delete(m.viewing, userID)
		return nil
	}
	m.viewing[userID] = mark{chatID: chatID, expires: m.now().Add(m.ttl)}
	return nil
}

func (m *Memory) Viewing(_ context.Context, userID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current(userID), nil
}

func (m *Memory) Leave(_ context.Context, userID, chatID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current(userID) == chatID {
		delete(m.viewing, userID)
	}
	return nil
}

// current returns userID's live mark and drops an expired one. m.mu is held.
func (m *Memory) current(userID string) string {
	mk, ok := m.viewing[userID]
	if !ok {
		return ""
	}
	if !m.now().Before(mk.expires) {
		delete(m.viewing, userID)
		return ""
	}
	return mk.chatID
}

// Redis is a Tracker shared by every daemon using the same Redis.
type Redis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// RedisConfig selects the Redis server.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// NewRedis connects and pings Redis.
func NewRedis(ctx context.Context, cfg RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return NewRedisWithClient(client, cfg.TTL), nil
}

// NewRedisWithClient wraps an existing client.
func NewRedisWithClient(client *redis.Client, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{client: client, prefix: "chefchat:viewing:", ttl: ttl}
}

func (r *Redis) SetViewing(ctx context.Context, userID, chatID string) error {
	key := r.prefix + userID
	if chatID == "" {
		return r.client.Del(ctx, key).Err()
	}
	return r.client.Set(ctx, key, chatID, r.ttl).Err()
}

func (r *Redis) Viewing(ctx context.Context, userID string) (string, error) {
	chatID, err := r.client.Get(ctx, r.prefix+userID).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return chatID, err
}

// leaveScript deletes KEYS[1] only while it still holds ARGV[1].
var leaveScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func (r *Redis) Leave(ctx context.Context, userID, chatID string) error {
	return leaveScript.Run(ctx, r.client, []string{r.prefix + userID}, chatID).Err()
}

// Close closes the Redis client.
func (r *Redis) Close() error {
	return r.client.Close()
}
