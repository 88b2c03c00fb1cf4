package store

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the backend is not configured or not reachable.
	ErrUnavailable = errors.New("store unavailable")
	// ErrNotFound means the chat (or message) does not exist.
	ErrNotFound = errors.New("not found")
	// ErrQueryUnsupported means the backend cannot serve the ordered form of a query
	// (missing composite index, sort memory limit). Callers fall back to an unordered read.
	ErrQueryUnsupported = errors.New("query unsupported by store")
	// ErrNotParticipant means the user is not one of the chat's participants.
	ErrNotParticipant = errors.New("not a chat participant")
	// ErrInvalid means a request failed validation before reaching the store.
	ErrInvalid = errors.New("invalid request")
)

// Store is the document-store contract the chat core is written against.
type Store interface {
	CreateChat(ctx context.Context, c NewChat) (*Chat, error)
	GetChat(ctx context.Context, chatID string) (*Chat, error)
	ListChatsByParticipant(ctx context.Context, userID string, order Order) ([]Chat, error)
	ApplyChatUpdate(ctx context.Context, chatID string, u ChatUpdate) error

	AppendMessage(ctx context.Context, chatID string, m NewMessage) (*Message, error)
	ListMessages(ctx context.Context, chatID string, q MessageQuery) ([]Message, error)

	// Subscribe pushes a Change whenever the topic's results may have changed.
	// The channel closes when ctx is done or the stream fails.
	Subscribe(ctx context.Context, topic Topic) (<-chan Change, error)

	Close() error
}

// Unavailable returns a Store that fails every call with ErrUnavailable.
// reason is attached to the error text.
func Unavailable(reason string) Store {
	return unavailable{err: fmt.Errorf("%w: %s", ErrUnavailable, reason)}
}

type unavailable struct{ err error }

func (u unavailable) CreateChat(context.Context, NewChat) (*Chat, error) { return nil, u.err }
func (u unavailable) GetChat(context.Context, string) (*Chat, error)     { return nil, u.err }
func (u unavailable) ListChatsByParticipant(context.Context, string, Order) ([]Chat, error) {
	return nil, u.err
}
func (u unavailable) ApplyChatUpdate(context.Context, string, ChatUpdate) error { return u.err }
func (u unavailable) AppendMessage(context.Context, string, NewMessage) (*Message, error) {
	return nil, u.err
}
func (u unavailable) ListMessages(context.Context, string, MessageQuery) ([]Message, error) {
	return nil, u.err
}
func (u unavailable) Subscribe(context.Context, Topic) (<-chan Change, error) { return nil, u.err }
func (u unavailable) Close() error                                          { return nil }
