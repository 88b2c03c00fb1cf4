package events

import (
	"context"
	"time"

	"github.com/Japjeet07/ChefMaker-sub000/internal/bus"
	"github.com/Japjeet07/ChefMaker-sub000/internal/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	forwardBuffer  = 256
	publishTimeout = 5 * time.Second
)

// Namespaces are the bus prefixes that leave the process.
var Namespaces = []string{"message.", "chat."}

// Envelope is the body published for every forwarded event. The routing key
// is the event kind.
type Envelope struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Session   string    `json:"session,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// Forwarder copies bus events to a Publisher.
type Forwarder struct {
	bus     *bus.Bus
	pub     Publisher
	session string
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func NewForwarder(b *bus.Bus, p Publisher, session string, logger *zap.Logger, m *metrics.Metrics) *Forwarder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Forwarder{bus: b, pub: p, session: session, logger: logger, metrics: m}
}

// Run forwards events until ctx is done. A failed publish is logged and
// counted; the event is not retried.
func (f *Forwarder) Run(ctx context.Context) {
	merged := make(chan bus.Event, forwardBuffer)
	for _, ns := range Namespaces {
		ch, unsub := f.bus.Subscribe(ns, forwardBuffer)
		defer unsub()
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case evt := <-ch:
					select {
					case merged <- evt:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	for {
		select {
		case <-ctx.Done():
			return
		case evt := <-merged:
			f.forward(ctx, evt)
		}
	}
}

func (f *Forwarder) forward(ctx context.Context, evt bus.Event) {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	env := Envelope{
		ID:        uuid.NewString(),
		Kind:      evt.Kind,
		Session:   f.session,
		Timestamp: evt.Timestamp,
		Payload:   evt.Payload,
	}
	err := f.pub.Publish(ctx, evt.Kind, env)
	f.metrics.EventForwarded(err == nil)
	if err != nil {
		f.logger.Warn("forward event failed", zap.String("kind", evt.Kind), zap.Error(err))
	}
}
