package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	chefchatv1 "github.com/Japjeet07/ChefMaker-sub000/gen/chefchat/v1"
	"github.com/Japjeet07/ChefMaker-sub000/internal/live"
	"github.com/Japjeet07/ChefMaker-sub000/internal/outbox"
	"github.com/Japjeet07/ChefMaker-sub000/internal/pager"
	"github.com/Japjeet07/ChefMaker-sub000/internal/store"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client talks to a daemon's ChatService. It satisfies view.Backend.
type Client struct {
	conn *grpc.ClientConn
	rpc  chefchatv1.ChatServiceClient
	own  bool
}

// Dial connects to the daemon's Unix domain socket.
func Dial(socketPath string) (*Client, error) {
	conn, err := grpc.NewClient(
		"unix://"+socketPath,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("dial daemon: %w", err)
	}
	c := NewClient(conn)
	c.own = true
	return c, nil
}

// NewClient wraps an existing connection. Close leaves conn open.
func NewClient(conn *grpc.ClientConn) *Client {
	return &Client{conn: conn, rpc: chefchatv1.NewChatServiceClient(conn)}
}

// Close closes the connection if Dial opened it.
func (c *Client) Close() error {
	if !c.own {
		return nil
	}
	return c.conn.Close()
}

func (c *Client) GetStatus(ctx context.Context) (*chefchatv1.GetStatusResponse, error) {
	resp, err := c.rpc.GetStatus(ctx, &chefchatv1.GetStatusRequest{})
	if err != nil {
		return nil, fromStatus(err)
	}
	return resp, nil
}

func (c *Client) FindOrCreateChat(ctx context.Context, userA, userB, nameA, nameB string) (string, error) {
	resp, err := c.rpc.FindOrCreateChat(ctx, &chefchatv1.FindOrCreateChatRequest{
		UserA: userA,
		UserB: userB,
		NameA: nameA,
		NameB: nameB,
	})
	if err != nil {
		return "", fromStatus(err)
	}
	return resp.GetChatId(), nil
}

func (c *Client) ListChats(ctx context.Context, userID string) ([]store.Chat, error) {
	resp, err := c.rpc.ListChats(ctx, &chefchatv1.ListChatsRequest{UserId: userID})
	if err != nil {
		return []store.Chat{}, fromStatus(err)
	}
	return chatsFromProto(resp.GetChats()), nil
}

func (c *Client) LoadLatestMessages(ctx context.Context, chatID string, pageSize int) (pager.Page, error) {
	resp, err := c.rpc.LoadLatestMessages(ctx, &chefchatv1.LoadLatestMessagesRequest{
		ChatId:   chatID,
		PageSize: int32(pageSize),
	})
	if err != nil {
		return pager.Page{Messages: []store.Message{}}, fromStatus(err)
	}
	return pageFromProto(resp), nil
}

func (c *Client) LoadOlderMessages(ctx context.Context, chatID string, pageSize int, before store.Cursor) (pager.Page, error) {
	resp, err := c.rpc.LoadOlderMessages(ctx, &chefchatv1.LoadOlderMessagesRequest{
		ChatId:   chatID,
		PageSize: int32(pageSize),
		Before:   cursorToProto(&before),
	})
	if err != nil {
		return pager.Page{Messages: []store.Message{}}, fromStatus(err)
	}
	return pageFromProto(resp), nil
}

// SendMessage sends req. req.ViewerChatID is not sent; the daemon resolves it.
func (c *Client) SendMessage(ctx context.Context, req outbox.SendRequest) (*store.Message, error) {
	resp, err := c.rpc.SendMessage(ctx, &chefchatv1.SendMessageRequest{
		ChatId:     req.ChatID,
		SenderId:   req.SenderID,
		SenderName: req.SenderName,
		Content:    req.Content,
		ClientId:   req.ClientID,
	})
	if err != nil {
		return nil, fromStatus(err)
	}
	m := messageFromProto(resp.GetMessage())
	return &m, nil
}

func (c *Client) MarkRead(ctx context.Context, chatID, userID string) error {
	_, err := c.rpc.MarkRead(ctx, &chefchatv1.MarkReadRequest{ChatId: chatID, UserId: userID})
	return fromStatus(err)
}

func (c *Client) SetViewing(ctx context.Context, userID, chatID string) error {
	_, err := c.rpc.SetViewing(ctx, &chefchatv1.SetViewingRequest{UserId: userID, ChatId: chatID})
	return fromStatus(err)
}

func (c *Client) Badge(ctx context.Context, userID, openChatID string) (int, error) {
	resp, err := c.rpc.GetBadge(ctx, &chefchatv1.GetBadgeRequest{UserId: userID, OpenChatId: openChatID})
	if err != nil {
		return 0, fromStatus(err)
	}
	return int(resp.GetCount()), nil
}

// WatchMessages opens a live feed of chatID's new messages. It returns once
// the daemon has subscribed, so a page loaded afterwards cannot miss a message.
// A non-empty userID lets the daemon clear that user's viewing mark on chatID
// when the feed ends, even if this process dies first.
func (c *Client) WatchMessages(ctx context.Context, userID, chatID string) (live.Feed, error) {
	ctx, cancel := context.WithCancel(ctx)
	stream, err := c.rpc.WatchMessages(ctx, &chefchatv1.WatchMessagesRequest{ChatId: chatID, UserId: userID})
	if err != nil {
		cancel()
		return nil, fromStatus(err)
	}
	if _, err := stream.Recv(); err != nil {
		cancel()
		return nil, fromStatus(err)
	}

	f := &remoteFeed{
		msgs:   make(chan store.Message, 16),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go f.run(ctx, stream)
	return f, nil
}

// WatchChats streams userID's chat list until ctx is done or the daemon goes away.
func (c *Client) WatchChats(ctx context.Context, userID string) (<-chan []store.Chat, error) {
	stream, err := c.rpc.WatchChats(ctx, &chefchatv1.WatchChatsRequest{UserId: userID})
	if err != nil {
		return nil, fromStatus(err)
	}
	out := make(chan []store.Chat, 1)
	go func() {
		defer close(out)
		for {
			evt, err := stream.Recv()
			if err != nil {
				return
			}
			select {
			case out <- chatsFromProto(evt.GetChats()):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

type remoteFeed struct {
	msgs   chan store.Message
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once

	mu  sync.Mutex
	err error
}

var _ live.Feed = (*remoteFeed)(nil)

func (f *remoteFeed) Messages() <-chan store.Message { return f.msgs }

// Close ends the stream and waits for the receiver to exit. Messages still
// buffered are discarded.
func (f *remoteFeed) Close() {
	f.once.Do(f.cancel)
	<-f.done
	for range f.msgs {
	}
}

// Err reports why the stream ended on its own, or nil.
func (f *remoteFeed) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *remoteFeed) run(ctx context.Context, stream chefchatv1.ChatService_WatchMessagesClient) {
	defer close(f.done)
	defer close(f.msgs)
	for {
		evt, err := stream.Recv()
		if err != nil {
			if !errors.Is(err, io.EOF) && ctx.Err() == nil {
				f.mu.Lock()
				f.err = fromStatus(err)
				f.mu.Unlock()
			}
			return
		}
		if evt.GetMessage() == nil {
			continue
		}
		select {
		case f.msgs <- messageFromProto(evt.GetMessage()):
		case <-ctx.Done():
			return
		}
	}
}
