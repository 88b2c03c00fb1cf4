package store

import (
	"context"
	"fmt"

	"github.com/Japjeet07/ChefMaker-sub000/internal/bus"
)

// Subscribe forwards bus notifications for topic. Bursts collapse into a single
// pending Change; consumers re-read the store on every wake-up.
// The bus subscription is registered before Subscribe returns, so any write
// completed afterwards produces a Change.
func (db *DB) Subscribe(ctx context.Context, topic Topic) (<-chan Change, error) {
	if topic.Key == "" {
		return nil, fmt.Errorf("%w: empty topic key", ErrInvalid)
	}
	var ns string
	switch topic.Kind {
	case TopicMessages:
		ns = bus.MessagesNamespace(topic.Key)
	case TopicChats:
		ns = bus.ChatsNamespace(topic.Key)
	default:
		return nil, fmt.Errorf("%w: unknown topic kind %d", ErrInvalid, topic.Kind)
	}

	events, unsub := db.bus.Subscribe(ns, 16)
	out := make(chan Change, 1)
	go func() {
		defer close(out)
		defer unsub()
		for {
			select {
			case evt := <-events:
				select {
				case out <- Change{Topic: topic, At: evt.Timestamp}:
				default:
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
