package api

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	chefchatv1 "github.com/Japjeet07/ChefMaker-sub000/gen/chefchat/v1"
	"github.com/Japjeet07/ChefMaker-sub000/internal/chat"
	"github.com/Japjeet07/ChefMaker-sub000/internal/metrics"
	"github.com/Japjeet07/ChefMaker-sub000/internal/outbox"
	"github.com/Japjeet07/ChefMaker-sub000/internal/status"
	"github.com/Japjeet07/ChefMaker-sub000/internal/store"
	"github.com/Japjeet07/ChefMaker-sub000/internal/store/storetest"
	"github.com/Japjeet07/ChefMaker-sub000/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	grpcstatus "google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type fixture struct {
	client  *Client
	db      *store.DB
	core    *chat.Service
	machine *status.Machine
}

var testInfo = Info{Session: "test", Backend: "sqlite", Presence: "memory", Events: "noop", EventsReason: "empty amqp url"}

func startServer(t *testing.T, core Core) (*Client, *status.Machine) {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	m := metrics.New()
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(m.UnaryServerInterceptor()),
		grpc.ChainStreamInterceptor(m.StreamServerInterceptor()),
	)
	machine := status.NewMachine(nil)
	chefchatv1.RegisterChatServiceServer(srv, NewChatService(core, machine, testInfo, nil))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return NewClient(conn), machine
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := storetest.Open(t)
	core := chat.New(chat.Deps{Store: db})
	client, machine := startServer(t, core)
	return fixture{client: client, db: db, core: core, machine: machine}
}

func TestGetStatus(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.machine.Transition(status.Ready, ""))

	st, err := f.client.GetStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "READY", st.State)
	assert.Equal(t, "test", st.Session)
	assert.Equal(t, "sqlite", st.Backend)
	assert.Equal(t, "noop", st.Events)
	assert.Equal(t, "empty amqp url", st.EventsReason)
	assert.NotZero(t, st.Pid)
}

func TestConversationOverTheSocket(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	chatID, err := f.client.FindOrCreateChat(ctx, "alice", "bob", "Alice", "Bob")
	require.NoError(t, err)
	again, err := f.client.FindOrCreateChat(ctx, "bob", "alice", "Bob", "Alice")
	require.NoError(t, err)
	assert.Equal(t, chatID, again)

	sent, err := f.client.SendMessage(ctx, outbox.SendRequest{ChatID: chatID, SenderID: "alice", SenderName: "Alice", Content: "hi", ClientID: "tmp-1"})
	require.NoError(t, err)
	assert.Equal(t, "hi", sent.Content)
	assert.Equal(t, "tmp-1", sent.ClientID)

	stored, err := f.db.ListMessages(ctx, chatID, store.MessageQuery{})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.True(t, stored[0].Timestamp.Equal(sent.Timestamp))

	chats, err := f.client.ListChats(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, chats, 1)
	assert.Equal(t, [2]string{"alice", "bob"}, chats[0].Participants)
	assert.Equal(t, 1, chats[0].UnreadCount["bob"])
	require.NotNil(t, chats[0].LastMessage)
	assert.Equal(t, sent.ID, chats[0].LastMessage.ID)

	badge, err := f.client.Badge(ctx, "bob", "")
	require.NoError(t, err)
	assert.Equal(t, 1, badge)

	require.NoError(t, f.client.MarkRead(ctx, chatID, "bob"))
	badge, err = f.client.Badge(ctx, "bob", "")
	require.NoError(t, err)
	assert.Zero(t, badge)
}

func TestPagesOverTheSocket(t *testing.T) {
	f := newFixture(t)
	c := storetest.Chat(t, f.db, "alice", "bob")
	for range 25 {
		storetest.Append(t, f.db, c.ID, "bob", "m")
	}
	ctx := context.Background()

	latest, err := f.client.LoadLatestMessages(ctx, c.ID, 20)
	require.NoError(t, err)
	require.Len(t, latest.Messages, 20)
	require.NotNil(t, latest.Cursor)
	assert.True(t, latest.HasMore)

	older, err := f.client.LoadOlderMessages(ctx, c.ID, 20, *latest.Cursor)
	require.NoError(t, err)
	assert.Len(t, older.Messages, 5)
	assert.False(t, older.HasMore)
	assert.True(t, older.Messages[4].Timestamp.Before(latest.Messages[0].Timestamp))
}

func TestErrorsKeepTheirMeaning(t *testing.T) {
	f := newFixture(t)
	c := storetest.Chat(t, f.db, "alice", "bob")
	ctx := context.Background()

	_, err := f.client.SendMessage(ctx, outbox.SendRequest{ChatID: "missing", SenderID: "alice", Content: "hi"})
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = f.client.SendMessage(ctx, outbox.SendRequest{ChatID: c.ID, SenderID: "alice", Content: "   "})
	assert.ErrorIs(t, err, store.ErrInvalid)

	_, err = f.client.SendMessage(ctx, outbox.SendRequest{ChatID: c.ID, SenderID: "mallory", Content: "hi"})
	assert.ErrorIs(t, err, store.ErrNotParticipant)

	_, err = f.client.FindOrCreateChat(ctx, "alice", "alice", "", "")
	assert.ErrorIs(t, err, store.ErrInvalid)
}

func TestChatUpdateFailureIsAborted(t *testing.T) {
	err := toStatus(&outbox.ChatUpdateError{
		Message: &store.Message{ID: "m1"},
		Err:     fmt.Errorf("chat %q: %w", "c1", store.ErrNotFound),
	})
	assert.Equal(t, codes.Aborted, grpcstatus.Code(err))

	back := fromStatus(err)
	assert.ErrorIs(t, back, ErrChatUpdate)
	assert.NotErrorIs(t, back, store.ErrNotFound)
}

func TestUnavailableStoreOverTheSocket(t *testing.T) {
	client, _ := startServer(t, chat.New(chat.Deps{Store: store.Unavailable("no backend configured")}))

	chats, err := client.ListChats(context.Background(), "alice")
	assert.ErrorIs(t, err, store.ErrUnavailable)
	assert.Empty(t, chats)
}

func TestWatchMessages(t *testing.T) {
	f := newFixture(t)
	c := storetest.Chat(t, f.db, "alice", "bob")
	storetest.Append(t, f.db, c.ID, "bob", "baseline")

	feed, err := f.client.WatchMessages(context.Background(), "", c.ID)
	require.NoError(t, err)

	storetest.Append(t, f.db, c.ID, "bob", "one")
	storetest.Append(t, f.db, c.ID, "bob", "two")

	var got []string
	for len(got) < 2 {
		select {
		case m := <-feed.Messages():
			got = append(got, m.Content)
		case <-time.After(2 * time.Second):
			t.Fatalf("timeout, got %v", got)
		}
	}
	assert.Equal(t, []string{"one", "two"}, got)

	feed.Close()
	_, open := <-feed.Messages()
	assert.False(t, open)
}

func TestClosedFeedDropsBufferedMessages(t *testing.T) {
	f := newFixture(t)
	c := storetest.Chat(t, f.db, "alice", "bob")

	feed, err := f.client.WatchMessages(context.Background(), "", c.ID)
	require.NoError(t, err)
	for i := range 3 {
		storetest.Append(t, f.db, c.ID, "bob", fmt.Sprintf("unread%d", i))
	}
	require.Eventually(t, func() bool { return len(feed.Messages()) == 3 }, 2*time.Second, 10*time.Millisecond)

	feed.Close()
	_, open := <-feed.Messages()
	assert.False(t, open)
}

func TestEndedWatchClearsViewing(t *testing.T) {
	f := newFixture(t)
	c := storetest.Chat(t, f.db, "alice", "bob")
	ctx := context.Background()

	feed, err := f.client.WatchMessages(ctx, "bob", c.ID)
	require.NoError(t, err)
	require.NoError(t, f.client.SetViewing(ctx, "bob", c.ID))
	viewing, err := f.core.Viewing(ctx, "bob")
	require.NoError(t, err)
	require.Equal(t, c.ID, viewing)

	// The client goes away without clearing its mark.
	feed.Close()
	assert.Eventually(t, func() bool {
		viewing, err := f.core.Viewing(ctx, "bob")
		return err == nil && viewing == ""
	}, 2*time.Second, 10*time.Millisecond)

	_, err = f.client.SendMessage(ctx, outbox.SendRequest{ChatID: c.ID, SenderID: "alice", Content: "are you there"})
	require.NoError(t, err)
	badge, err := f.client.Badge(ctx, "bob", "")
	require.NoError(t, err)
	assert.Equal(t, 1, badge)
}

func TestWatchUnknownChat(t *testing.T) {
	f := newFixture(t)
	_, err := f.client.WatchMessages(context.Background(), "", "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestWatchChats(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snapshots, err := f.client.WatchChats(ctx, "alice")
	require.NoError(t, err)

	select {
	case chats := <-snapshots:
		assert.Empty(t, chats)
	case <-time.After(2 * time.Second):
		t.Fatal("no initial snapshot")
	}

	_, err = f.client.FindOrCreateChat(ctx, "alice", "bob", "", "")
	require.NoError(t, err)
	select {
	case chats := <-snapshots:
		assert.Len(t, chats, 1)
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot after chat creation")
	}
}

func TestChatViewOverTheSocket(t *testing.T) {
	f := newFixture(t)
	c := storetest.Chat(t, f.db, "alice", "bob")
	ctx := context.Background()

	v := view.New(f.client, "alice", "Alice", 0, nil)
	require.NoError(t, v.Open(ctx, c.ID))
	defer v.Close(ctx)

	require.NoError(t, v.Send(ctx, "from alice"))
	storetest.Append(t, f.db, c.ID, "bob", "from bob")

	assert.Eventually(t, func() bool { return len(v.Entries()) == 2 }, 2*time.Second, 10*time.Millisecond)
	assert.Never(t, func() bool { return len(v.Entries()) > 2 }, 200*time.Millisecond, 10*time.Millisecond)
	for _, e := range v.Entries() {
		assert.False(t, e.Pending)
	}
}
