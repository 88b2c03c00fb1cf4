// Package api exposes the chat core over gRPC on the daemon's unix socket.
package api

import (
	"context"
	"os"
	"sync/atomic"

	chefchatv1 "github.com/Japjeet07/ChefMaker-sub000/gen/chefchat/v1"
	"github.com/Japjeet07/ChefMaker-sub000/internal/live"
	"github.com/Japjeet07/ChefMaker-sub000/internal/outbox"
	"github.com/Japjeet07/ChefMaker-sub000/internal/pager"
	"github.com/Japjeet07/ChefMaker-sub000/internal/status"
	"github.com/Japjeet07/ChefMaker-sub000/internal/store"
	"go.uber.org/zap"
)

// Core is the chat core the service delegates to.
type Core interface {
	FindOrCreateChat(ctx context.Context, userA, userB, nameA, nameB string) (string, error)
	ListChats(ctx context.Context, userID string) ([]store.Chat, error)
	WatchChats(ctx context.Context, userID string) (<-chan []store.Chat, error)
	LoadLatestMessages(ctx context.Context, chatID string, pageSize int) (pager.Page, error)
	LoadOlderMessages(ctx context.Context, chatID string, pageSize int, before store.Cursor) (pager.Page, error)
	SendMessage(ctx context.Context, req outbox.SendRequest) (*store.Message, error)
	MarkRead(ctx context.Context, chatID, userID string) error
	SubscribeNewMessages(ctx context.Context, chatID string) (*live.Subscription, error)
	SetViewing(ctx context.Context, userID, chatID string) error
	HoldViewing(userID, chatID string) (release func())
	Badge(ctx context.Context, userID, openChatID string) (int, error)
}

// Info describes the running daemon for GetStatus.
type Info struct {
	Session  string
	Backend  string
	Presence string
	Events   string
	// EventsReason says why events are not forwarded, when they are not.
	EventsReason string
}

// ChatService implements the ChatService gRPC service on top of a Core.
type ChatService struct {
	chefchatv1.UnimplementedChatServiceServer

	core    Core
	machine *status.Machine
	info    Info
	logger  *zap.Logger

	watching atomic.Int64
}

// NewChatService creates the service. machine may be nil.
func NewChatService(core Core, machine *status.Machine, info Info, logger *zap.Logger) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if machine == nil {
		machine = status.NewMachine(nil)
	}
	return &ChatService{
		core:    core,
		machine: machine,
		info:    info,
		logger:  logger,
	}
}

func (s *ChatService) GetStatus(context.Context, *chefchatv1.GetStatusRequest) (*chefchatv1.GetStatusResponse, error) {
	state, reason, since := s.machine.Snapshot()
	return &chefchatv1.GetStatusResponse{
		State:         string(state),
		Reason:        reason,
		SinceUnixMs:   since.UnixMilli(),
		Session:       s.info.Session,
		Backend:       s.info.Backend,
		Presence:      s.info.Presence,
		Events:        s.info.Events,
		EventsReason:  s.info.EventsReason,
		Pid:           int32(os.Getpid()),
		Subscriptions: int32(s.watching.Load()),
	}, nil
}

func (s *ChatService) FindOrCreateChat(ctx context.Context, req *chefchatv1.FindOrCreateChatRequest) (*chefchatv1.FindOrCreateChatResponse, error) {
	id, err := s.core.FindOrCreateChat(ctx, req.GetUserA(), req.GetUserB(), req.GetNameA(), req.GetNameB())
	if err != nil {
		return nil, toStatus(err)
	}
	return &chefchatv1.FindOrCreateChatResponse{ChatId: id}, nil
}

func (s *ChatService) ListChats(ctx context.Context, req *chefchatv1.ListChatsRequest) (*chefchatv1.ListChatsResponse, error) {
	chats, err := s.core.ListChats(ctx, req.GetUserId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &chefchatv1.ListChatsResponse{Chats: chatsToProto(chats)}, nil
}

func (s *ChatService) LoadLatestMessages(ctx context.Context, req *chefchatv1.LoadLatestMessagesRequest) (*chefchatv1.MessagePage, error) {
	page, err := s.core.LoadLatestMessages(ctx, req.GetChatId(), int(req.GetPageSize()))
	if err != nil {
		return nil, toStatus(err)
	}
	return pageToProto(page), nil
}

// LoadOlderMessages without a cursor is the latest page.
func (s *ChatService) LoadOlderMessages(ctx context.Context, req *chefchatv1.LoadOlderMessagesRequest) (*chefchatv1.MessagePage, error) {
	before := cursorFromProto(req.GetBefore())
	if before == nil {
		return s.LoadLatestMessages(ctx, &chefchatv1.LoadLatestMessagesRequest{ChatId: req.GetChatId(), PageSize: req.GetPageSize()})
	}
	page, err := s.core.LoadOlderMessages(ctx, req.GetChatId(), int(req.GetPageSize()), *before)
	if err != nil {
		return nil, toStatus(err)
	}
	return pageToProto(page), nil
}

// SendMessage sends without a viewer; the core resolves the recipient's open
// chat from presence.
func (s *ChatService) SendMessage(ctx context.Context, req *chefchatv1.SendMessageRequest) (*chefchatv1.SendMessageResponse, error) {
	msg, err := s.core.SendMessage(ctx, outbox.SendRequest{
		ChatID:     req.GetChatId(),
		SenderID:   req.GetSenderId(),
		SenderName: req.GetSenderName(),
		Content:    req.GetContent(),
		ClientID:   req.GetClientId(),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &chefchatv1.SendMessageResponse{Message: messageToProto(*msg)}, nil
}

func (s *ChatService) MarkRead(ctx context.Context, req *chefchatv1.MarkReadRequest) (*chefchatv1.MarkReadResponse, error) {
	if err := s.core.MarkRead(ctx, req.GetChatId(), req.GetUserId()); err != nil {
		return nil, toStatus(err)
	}
	return &chefchatv1.MarkReadResponse{}, nil
}

func (s *ChatService) SetViewing(ctx context.Context, req *chefchatv1.SetViewingRequest) (*chefchatv1.SetViewingResponse, error) {
	if err := s.core.SetViewing(ctx, req.GetUserId(), req.GetChatId()); err != nil {
		return nil, toStatus(err)
	}
	return &chefchatv1.SetViewingResponse{}, nil
}

func (s *ChatService) GetBadge(ctx context.Context, req *chefchatv1.GetBadgeRequest) (*chefchatv1.GetBadgeResponse, error) {
	n, err := s.core.Badge(ctx, req.GetUserId(), req.GetOpenChatId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &chefchatv1.GetBadgeResponse{Count: int32(n)}, nil
}

// WatchMessages streams the chat's new messages. The first event is sent once
// the subscription is in place, before any message. A stream opened with a
// user id holds that user's viewing mark on the chat until it ends.
func (s *ChatService) WatchMessages(req *chefchatv1.WatchMessagesRequest, stream chefchatv1.ChatService_WatchMessagesServer) error {
	ctx := stream.Context()
	sub, err := s.core.SubscribeNewMessages(ctx, req.GetChatId())
	if err != nil {
		return toStatus(err)
	}
	defer sub.Close()
	if user := req.GetUserId(); user != "" {
		defer s.core.HoldViewing(user, req.GetChatId())()
	}
	s.watching.Add(1)
	defer s.watching.Add(-1)

	if err := stream.Send(&chefchatv1.MessageEvent{}); err != nil {
		return err
	}
	for m := range sub.Messages() {
		if err := stream.Send(&chefchatv1.MessageEvent{Message: messageToProto(m)}); err != nil {
			return err
		}
	}
	if err := sub.Err(); err != nil {
		s.logger.Warn("message watch ended", zap.String("chat_id", req.GetChatId()), zap.Error(err))
		return toStatus(err)
	}
	return nil
}

// WatchChats streams the user's chat list, once immediately and again after
// every change.
func (s *ChatService) WatchChats(req *chefchatv1.WatchChatsRequest, stream chefchatv1.ChatService_WatchChatsServer) error {
	snapshots, err := s.core.WatchChats(stream.Context(), req.GetUserId())
	if err != nil {
		return toStatus(err)
	}
	for chats := range snapshots {
		if err := stream.Send(&chefchatv1.ChatsEvent{Chats: chatsToProto(chats)}); err != nil {
			return err
		}
	}
	return nil
}
