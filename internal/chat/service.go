// Package chat composes the directory, pager, live channel, send path and
// unread accounting into the operations exposed to clients.
package chat

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Japjeet07/ChefMaker-sub000/internal/bus"
	"github.com/Japjeet07/ChefMaker-sub000/internal/directory"
	"github.com/Japjeet07/ChefMaker-sub000/internal/live"
	"github.com/Japjeet07/ChefMaker-sub000/internal/metrics"
	"github.com/Japjeet07/ChefMaker-sub000/internal/outbox"
	"github.com/Japjeet07/ChefMaker-sub000/internal/pager"
	"github.com/Japjeet07/ChefMaker-sub000/internal/presence"
	"github.com/Japjeet07/ChefMaker-sub000/internal/store"
	"github.com/Japjeet07/ChefMaker-sub000/internal/unread"
	"go.uber.org/zap"
)

// Deps are the collaborators of a Service. Only Store is required.
type Deps struct {
	Store    store.Store
	Bus      *bus.Bus
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
	Presence presence.Tracker
	// PageSize is used when a load asks for pageSize <= 0.
	PageSize int
}

// Service is the chat core.
type Service struct {
	store     store.Store
	directory *directory.Service
	pager     *pager.Pager
	live      *live.Channel
	sender    *outbox.Sender
	unread    *unread.Tracker
	presence  presence.Tracker
	logger    *zap.Logger
	pageSize  int

	holdMu sync.Mutex
	holds  map[viewKey]int
}

type viewKey struct{ userID, chatID string }

const leaveTimeout = 5 * time.Second

// New wires the components over d.Store.
func New(d Deps) *Service {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Presence == nil {
		d.Presence = presence.NewMemory(0)
	}
	return &Service{
		store:     d.Store,
		directory: directory.New(d.Store, d.Bus, d.Logger.Named("directory"), d.Metrics),
		pager:     pager.New(d.Store),
		live:      live.New(d.Store, d.Logger.Named("live"), d.Metrics),
		sender:    outbox.NewSender(d.Store, d.Bus, d.Logger.Named("outbox"), d.Metrics).WithViewers(d.Presence),
		unread:    unread.NewTracker(d.Store, d.Bus),
		presence:  d.Presence,
		logger:    d.Logger,
		pageSize:  d.PageSize,
		holds:     make(map[viewKey]int),
	}
}

func (s *Service) FindOrCreateChat(ctx context.Context, userA, userB, nameA, nameB string) (string, error) {
	return s.directory.FindOrCreate(ctx, userA, userB, nameA, nameB)
}

func (s *Service) ListChats(ctx context.Context, userID string) ([]store.Chat, error) {
	return s.directory.List(ctx, userID)
}

func (s *Service) WatchChats(ctx context.Context, userID string) (<-chan []store.Chat, error) {
	return s.directory.Watch(ctx, userID)
}

func (s *Service) LoadLatestMessages(ctx context.Context, chatID string, pageSize int) (pager.Page, error) {
	return s.pager.LoadLatest(ctx, chatID, s.size(pageSize))
}

func (s *Service) LoadOlderMessages(ctx context.Context, chatID string, pageSize int, before store.Cursor) (pager.Page, error) {
	return s.pager.LoadOlder(ctx, chatID, s.size(pageSize), before)
}

func (s *Service) size(pageSize int) int {
	if pageSize <= 0 {
		return s.pageSize
	}
	return pageSize
}

// SendMessage sends req. When req.ViewerChatID is empty the recipient's open
// chat is taken from presence.
func (s *Service) SendMessage(ctx context.Context, req outbox.SendRequest) (*store.Message, error) {
	return s.sender.Send(ctx, req)
}

func (s *Service) MarkRead(ctx context.Context, chatID, userID string) error {
	return s.unread.MarkRead(ctx, chatID, userID)
}

// SubscribeNewMessages opens a live subscription on chatID.
func (s *Service) SubscribeNewMessages(ctx context.Context, chatID string) (*live.Subscription, error) {
	return s.live.Subscribe(ctx, chatID)
}

// WatchMessages is SubscribeNewMessages behind the live.Feed interface. When
// viewerID is set the feed holds the viewer's mark on chatID; see HoldViewing.
func (s *Service) WatchMessages(ctx context.Context, viewerID, chatID string) (live.Feed, error) {
	sub, err := s.live.Subscribe(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if viewerID == "" {
		return sub, nil
	}
	return &heldFeed{Subscription: sub, release: s.HoldViewing(viewerID, chatID)}, nil
}

// HoldViewing registers a live watch of chatID by userID. The returned release
// clears userID's viewing mark on chatID once the last such watch has ended,
// so a client that vanished without clearing it stops suppressing its unread
// counter. release is idempotent.
func (s *Service) HoldViewing(userID, chatID string) (release func()) {
	key := viewKey{userID: userID, chatID: chatID}
	s.holdMu.Lock()
	s.holds[key]++
	s.holdMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.releaseViewing(key) })
	}
}

// releaseViewing runs under holdMu so a watch opened meanwhile cannot have its
// fresh mark cleared by the one that just ended.
func (s *Service) releaseViewing(key viewKey) {
	s.holdMu.Lock()
	defer s.holdMu.Unlock()
	s.holds[key]--
	if s.holds[key] > 0 {
		return
	}
	delete(s.holds, key)

	ctx, cancel := context.WithTimeout(context.Background(), leaveTimeout)
	defer cancel()
	if err := s.presence.Leave(ctx, key.userID, key.chatID); err != nil {
		s.logger.Warn("clear viewing mark failed",
			zap.String("user_id", key.userID), zap.String("chat_id", key.chatID), zap.Error(err))
	}
}

// heldFeed releases its viewing hold when closed.
type heldFeed struct {
	*live.Subscription
	release func()
}

func (f *heldFeed) Close() {
	f.Subscription.Close()
	f.release()
}

// SetViewing records the chat userID has open ("" for none). Opening a chat
// also marks it read.
func (s *Service) SetViewing(ctx context.Context, userID, chatID string) error {
	if userID == "" {
		return fmt.Errorf("%w: empty user id", store.ErrInvalid)
	}
	if chatID != "" {
		c, err := s.store.GetChat(ctx, chatID)
		if err != nil {
			return err
		}
		if !c.HasParticipant(userID) {
			return fmt.Errorf("user %q in chat %q: %w", userID, chatID, store.ErrNotParticipant)
		}
	}
	if err := s.presence.SetViewing(ctx, userID, chatID); err != nil {
		return fmt.Errorf("set viewing: %w", err)
	}
	if chatID != "" {
		return s.unread.MarkRead(ctx, chatID, userID)
	}
	return nil
}

// Viewing returns the chat userID has open, or "".
func (s *Service) Viewing(ctx context.Context, userID string) (string, error) {
	return s.presence.Viewing(ctx, userID)
}

// Badge is the total unread count of userID outside openChatID.
func (s *Service) Badge(ctx context.Context, userID, openChatID string) (int, error) {
	chats, err := s.directory.List(ctx, userID)
	if err != nil {
		return 0, err
	}
	return unread.Badge(chats, userID, openChatID), nil
}
