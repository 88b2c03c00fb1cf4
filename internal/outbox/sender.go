package outbox

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Japjeet07/ChefMaker-sub000/internal/bus"
	"github.com/Japjeet07/ChefMaker-sub000/internal/metrics"
	"github.com/Japjeet07/ChefMaker-sub000/internal/store"
	"github.com/Japjeet07/ChefMaker-sub000/internal/unread"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// MaxContentLength is the longest accepted message, in runes, after trimming.
const MaxContentLength = 4000

// SendRequest is one outgoing text message.
type SendRequest struct {
	ChatID     string `validate:"required,max=128"`
	SenderID   string `validate:"required,max=128,excludesall=.$"`
	SenderName string `validate:"max=256"`
	Content    string `validate:"required,max=4000"`
	ClientID   string `validate:"max=128"`
	// ViewerChatID is the chat the recipient currently has open, if known.
	// When it equals ChatID the recipient's unread counter is reset instead of
	// incremented.
	ViewerChatID string
}

// ChatUpdateError means the message was stored but the chat's metadata could
// not be updated. The send counts as failed; Message is what was persisted.
type ChatUpdateError struct {
	Message *store.Message
	Err     error
}

func (e *ChatUpdateError) Error() string {
	return fmt.Sprintf("message %s stored but chat update failed: %v", e.Message.ID, e.Err)
}

func (e *ChatUpdateError) Unwrap() error { return e.Err }

// ViewerResolver reports which chat a user currently has open.
type ViewerResolver interface {
	Viewing(ctx context.Context, userID string) (string, error)
}

// Sender is the server side of sending a message.
type Sender struct {
	store    store.Store
	bus      *bus.Bus
	logger   *zap.Logger
	metrics  *metrics.Metrics
	validate *validator.Validate
	viewers  ViewerResolver
}

// NewSender creates a new sender. b, logger and m may be nil.
func NewSender(s store.Store, b *bus.Bus, logger *zap.Logger, m *metrics.Metrics) *Sender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sender{
		store:    s,
		bus:      b,
		logger:   logger,
		metrics:  m,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// WithViewers makes Send look up the recipient's open chat when the request
// does not carry ViewerChatID.
func (s *Sender) WithViewers(r ViewerResolver) *Sender {
	s.viewers = r
	return s
}

// Send validates req, appends the message and updates the chat's last message
// and the recipient's unread counter.
func (s *Sender) Send(ctx context.Context, req SendRequest) (*store.Message, error) {
	req.Content = strings.TrimSpace(req.Content)
	if err := s.validate.Struct(req); err != nil {
		return nil, s.fail(req, "validate", fmt.Errorf("%w: %v", store.ErrInvalid, err))
	}

	chat, err := s.store.GetChat(ctx, req.ChatID)
	if err != nil {
		return nil, s.fail(req, "chat", fmt.Errorf("load chat: %w", err))
	}
	if !chat.HasParticipant(req.SenderID) {
		return nil, s.fail(req, "chat", fmt.Errorf("sender %q in chat %q: %w", req.SenderID, req.ChatID, store.ErrNotParticipant))
	}
	recipient := chat.Other(req.SenderID)
	if req.ViewerChatID == "" && s.viewers != nil {
		viewing, err := s.viewers.Viewing(ctx, recipient)
		if err != nil {
			s.logger.Warn("viewer lookup failed", zap.String("user_id", recipient), zap.Error(err))
		}
		req.ViewerChatID = viewing
	}

	msg, err := s.store.AppendMessage(ctx, req.ChatID, store.NewMessage{
		SenderID:   req.SenderID,
		SenderName: req.SenderName,
		Content:    req.Content,
		Type:       store.TypeText,
		ClientID:   req.ClientID,
	})
	if err != nil {
		return nil, s.fail(req, "append", fmt.Errorf("append message: %w", err))
	}

	update := store.ChatUpdate{LastMessage: msg}
	unread.ApplyRecipient(&update, recipient, req.ViewerChatID == req.ChatID)
	if err := s.store.ApplyChatUpdate(ctx, req.ChatID, update); err != nil {
		return nil, s.fail(req, "update", &ChatUpdateError{Message: msg, Err: err})
	}

	s.metrics.MessageSent()
	s.logger.Info("message sent",
		zap.String("chat_id", msg.ChatID),
		zap.String("message_id", msg.ID),
		zap.String("client_id", msg.ClientID),
	)
	s.publish(bus.KindMessageSent, bus.MessageEvent{
		ChatID:    msg.ChatID,
		MessageID: msg.ID,
		ClientID:  msg.ClientID,
		SenderID:  msg.SenderID,
	})
	return msg, nil
}

func (s *Sender) fail(req SendRequest, stage string, err error) error {
	s.metrics.SendFailed(stage)
	s.logger.Warn("send failed",
		zap.String("stage", stage),
		zap.String("chat_id", req.ChatID),
		zap.String("client_id", req.ClientID),
		zap.Error(err),
	)
	evt := bus.MessageEvent{
		ChatID:   req.ChatID,
		ClientID: req.ClientID,
		SenderID: req.SenderID,
		Error:    err.Error(),
	}
	var cu *ChatUpdateError
	if errors.As(err, &cu) {
		evt.MessageID = cu.Message.ID
	}
	s.publish(bus.KindMessageSendFailed, evt)
	return err
}

func (s *Sender) publish(kind string, payload bus.MessageEvent) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(bus.Event{Kind: kind, Timestamp: time.Now(), Payload: payload})
}
