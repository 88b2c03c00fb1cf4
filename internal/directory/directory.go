// Package directory finds, creates and lists a user's two-party chats.
package directory

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/Japjeet07/ChefMaker-sub000/internal/bus"
	"github.com/Japjeet07/ChefMaker-sub000/internal/metrics"
	"github.com/Japjeet07/ChefMaker-sub000/internal/store"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Service is the chat directory.
type Service struct {
	store    store.Store
	bus      *bus.Bus
	logger   *zap.Logger
	metrics  *metrics.Metrics
	validate *validator.Validate
	pairs    keyedMutex
}

// New creates a directory over s. b, logger and m may be nil.
func New(s store.Store, b *bus.Bus, logger *zap.Logger, m *metrics.Metrics) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:    s,
		bus:      b,
		logger:   logger,
		metrics:  m,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type pairRequest struct {
	UserA string `validate:"required,max=128,excludesall=.$"`
	UserB string `validate:"required,max=128,excludesall=.$,nefield=UserA"`
	NameA string `validate:"max=256"`
	NameB string `validate:"max=256"`
}

// FindOrCreate returns the id of the chat between userA and userB, creating it
// if none exists. Argument order does not matter. Calls for the same pair are
// serialised inside this process so two concurrent calls cannot both create.
func (s *Service) FindOrCreate(ctx context.Context, userA, userB, nameA, nameB string) (string, error) {
	if err := s.validate.Struct(pairRequest{UserA: userA, UserB: userB, NameA: nameA, NameB: nameB}); err != nil {
		return "", fmt.Errorf("%w: %v", store.ErrInvalid, err)
	}

	unlock := s.pairs.lock(pairKey(userA, userB))
	defer unlock()

	chats, err := s.store.ListChatsByParticipant(ctx, userA, store.OrderNone)
	if err != nil {
		return "", fmt.Errorf("list chats for %q: %w", userA, err)
	}
	if c, ok := lo.Find(chats, func(c store.Chat) bool { return c.HasParticipant(userB) }); ok {
		return c.ID, nil
	}

	c, err := s.store.CreateChat(ctx, store.NewChat{
		Participants:     [2]string{userA, userB},
		ParticipantNames: map[string]string{userA: nameA, userB: nameB},
	})
	if err != nil {
		return "", fmt.Errorf("create chat: %w", err)
	}

	s.logger.Info("chat created", zap.String("chat_id", c.ID), zap.String("user_a", userA), zap.String("user_b", userB))
	if s.bus != nil {
		s.bus.Publish(bus.Event{
			Kind:      bus.KindChatCreated,
			Timestamp: time.Now(),
			Payload:   bus.ChatEvent{ChatID: c.ID, UserID: userA},
		})
	}
	return c.ID, nil
}

// List returns userID's chats, most recently active first. When the store cannot
// serve the ordered query the chats are fetched unordered and sorted here with
// the same ordering. On error the result is an empty slice.
func (s *Service) List(ctx context.Context, userID string) ([]store.Chat, error) {
	if userID == "" {
		return []store.Chat{}, fmt.Errorf("%w: empty user id", store.ErrInvalid)
	}

	chats, err := s.store.ListChatsByParticipant(ctx, userID, store.OrderLastMessageDesc)
	if errors.Is(err, store.ErrQueryUnsupported) {
		s.logger.Warn("ordered chat list unsupported, sorting locally", zap.String("user_id", userID), zap.Error(err))
		s.metrics.DirectoryFallback()
		chats, err = s.store.ListChatsByParticipant(ctx, userID, store.OrderNone)
		if err == nil {
			SortByRecency(chats)
		}
	}
	if err != nil {
		return []store.Chat{}, fmt.Errorf("list chats for %q: %w", userID, err)
	}
	if chats == nil {
		chats = []store.Chat{}
	}
	return chats, nil
}

// Watch emits userID's chat list now and again after every change to one of
// their chats. The channel closes when ctx is done or the store stream fails.
func (s *Service) Watch(ctx context.Context, userID string) (<-chan []store.Chat, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: empty user id", store.ErrInvalid)
	}
	changes, err := s.store.Subscribe(ctx, store.ChatsTopic(userID))
	if err != nil {
		return nil, fmt.Errorf("subscribe chats for %q: %w", userID, err)
	}

	out := make(chan []store.Chat, 1)
	go func() {
		defer close(out)
		emit := func() bool {
			chats, err := s.List(ctx, userID)
			if err != nil {
				s.logger.Warn("chat list refresh failed", zap.String("user_id", userID), zap.Error(err))
				return ctx.Err() == nil
			}
			select {
			case out <- chats:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !emit() {
			return
		}
		for {
			select {
			case ch, ok := <-changes:
				if !ok {
					return
				}
				if ch.Err != nil {
					s.logger.Error("chat list stream failed", zap.String("user_id", userID), zap.Error(ch.Err))
					return
				}
				if !emit() {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// SortByRecency orders chats by LastMessageAt descending, treating a chat
// without messages as active at the Unix epoch, ties broken by chat id.
func SortByRecency(chats []store.Chat) {
	slices.SortStableFunc(chats, func(a, b store.Chat) int {
		if c := recency(b).Compare(recency(a)); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

func recency(c store.Chat) time.Time {
	if c.LastMessageAt.IsZero() {
		return time.Unix(0, 0)
	}
	return c.LastMessageAt
}

func pairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "\x00" + b
}
