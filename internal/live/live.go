// Package live delivers messages appended to a chat after the moment of subscription.
package live

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Japjeet07/ChefMaker-sub000/internal/metrics"
	"github.com/Japjeet07/ChefMaker-sub000/internal/store"
	"go.uber.org/zap"
)

const (
	bufferSize   = 16
	catchUpBatch = 100

	// DefaultLookback is how far behind the newest delivered message each
	// catch-up read starts. Timestamps are assigned before commit, so a
	// message can become visible after a newer one has been delivered.
	DefaultLookback = 5 * time.Second
)

// ErrStreamClosed is reported by Subscription.Err when the store ended the
// change stream without an error of its own.
var ErrStreamClosed = errors.New("change stream closed")

// Channel opens live subscriptions on a store.
type Channel struct {
	store    store.Store
	logger   *zap.Logger
	metrics  *metrics.Metrics
	lookback time.Duration
}

// New creates a Channel. logger and m may be nil.
func New(s store.Store, logger *zap.Logger, m *metrics.Metrics) *Channel {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Channel{store: s, logger: logger, metrics: m, lookback: DefaultLookback}
}

// WithLookback sets the catch-up window behind the newest delivered message.
func (c *Channel) WithLookback(d time.Duration) *Channel {
	c.lookback = d
	return c
}

// Feed is the consumer side of a live message stream, local or remote.
type Feed interface {
	Messages() <-chan store.Message
	Close()
}

var _ Feed = (*Subscription)(nil)

// Subscription is one live feed of a chat's new messages.
type Subscription struct {
	chatID string
	msgs   chan store.Message
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once

	mu  sync.Mutex
	err error
}

// Subscribe starts watching chatID. The latest message at subscribe time (if any)
// is the baseline and is never delivered; every later message is delivered
// once, in (timestamp, id) order within each catch-up. A message that commits
// after a newer one was delivered follows as soon as it becomes visible.
func (c *Channel) Subscribe(ctx context.Context, chatID string) (*Subscription, error) {
	if chatID == "" {
		return nil, fmt.Errorf("%w: empty chat id", store.ErrInvalid)
	}

	ctx, cancel := context.WithCancel(ctx)
	// Watch before reading the baseline so no append can fall between the two.
	changes, err := c.store.Subscribe(ctx, store.MessagesTopic(chatID))
	if err != nil {
		cancel()
		return nil, fmt.Errorf("subscribe to %q: %w", chatID, err)
	}
	seen, err := c.baseline(ctx, chatID)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("read baseline of %q: %w", chatID, err)
	}

	sub := &Subscription{
		chatID: chatID,
		msgs:   make(chan store.Message, bufferSize),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	c.metrics.LiveOpened()
	go c.run(ctx, sub, changes, seen)
	return sub, nil
}

// Messages returns the delivery channel. It is closed once delivery stops.
func (s *Subscription) Messages() <-chan store.Message { return s.msgs }

// ChatID returns the watched chat.
func (s *Subscription) ChatID() string { return s.chatID }

// Close stops delivery and waits for the subscription goroutine to exit. After
// Close returns nothing more is delivered, including messages that were
// buffered but not yet received. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(s.cancel)
	<-s.done
	for range s.msgs {
	}
}

// Err reports why delivery stopped on its own, or nil.
func (s *Subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Subscription) fail(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func (c *Channel) run(ctx context.Context, sub *Subscription, changes <-chan store.Change, seen *window) {
	defer close(sub.done)
	defer close(sub.msgs)
	defer c.metrics.LiveClosed()

	log := c.logger.With(zap.String("chat_id", sub.chatID))
	for {
		select {
		case <-ctx.Done():
			return
		case change, ok := <-changes:
			if !ok || change.Err != nil {
				if ctx.Err() != nil {
					return
				}
				err := change.Err
				if err == nil {
					err = ErrStreamClosed
				}
				log.Error("live subscription stopped", zap.Error(err))
				sub.fail(err)
				return
			}

			recent, err := c.since(ctx, sub.chatID, seen.from(c.lookback))
			if err != nil {
				if ctx.Err() == nil {
					log.Warn("catch-up read failed", zap.Error(err))
				}
				continue
			}
			for _, m := range recent {
				if !seen.add(m) {
					continue
				}
				select {
				case sub.msgs <- m:
				case <-ctx.Done():
					return
				}
				c.metrics.LiveDelivered(1)
			}
			seen.prune(c.lookback)
		}
	}
}

// baseline marks the latest message at subscribe time, and everything inside
// the lookback window behind it, as already seen.
func (c *Channel) baseline(ctx context.Context, chatID string) (*window, error) {
	w := newWindow()
	msgs, err := c.store.ListMessages(ctx, chatID, store.MessageQuery{Direction: store.NewestFirst, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(msgs) == 0 {
		return w, nil
	}
	w.add(msgs[0])
	recent, err := c.since(ctx, chatID, w.from(c.lookback))
	if err != nil {
		return nil, err
	}
	for _, m := range recent {
		w.add(m)
	}
	return w, nil
}

// window remembers the ids delivered within the lookback of the newest one.
type window struct {
	newest time.Time
	seen   map[string]time.Time
}

func newWindow() *window {
	return &window{seen: make(map[string]time.Time)}
}

// from is the cursor the next catch-up read starts after; nil reads the
// whole chat.
func (w *window) from(lookback time.Duration) *store.Cursor {
	if w.newest.IsZero() {
		return nil
	}
	return &store.Cursor{Timestamp: w.newest.Add(-lookback)}
}

// add records m and reports whether it was new.
func (w *window) add(m store.Message) bool {
	if _, ok := w.seen[m.ID]; ok {
		return false
	}
	w.seen[m.ID] = m.Timestamp
	if m.Timestamp.After(w.newest) {
		w.newest = m.Timestamp
	}
	return true
}

func (w *window) prune(lookback time.Duration) {
	floor := w.newest.Add(-lookback)
	for id, ts := range w.seen {
		if ts.Before(floor) {
			delete(w.seen, id)
		}
	}
}

// since returns every message after the cursor (all of them when nil), oldest first.
func (c *Channel) since(ctx context.Context, chatID string, after *store.Cursor) ([]store.Message, error) {
	var out []store.Message
	for {
		batch, err := c.store.ListMessages(ctx, chatID, store.MessageQuery{
			After:     after,
			Direction: store.OldestFirst,
			Limit:     catchUpBatch,
		})
		if err != nil {
			return nil, err
		}
		out = append(out, batch...)
		if len(batch) < catchUpBatch {
			return out, nil
		}
		cur := store.CursorOf(batch[len(batch)-1])
		after = &cur
	}
}
