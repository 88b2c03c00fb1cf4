package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.MessageSent()
	m.SendFailed("append")
	m.DirectoryFallback()
	m.LiveDelivered(3)
	m.LiveOpened()
	m.LiveClosed()
	m.BusDropped()
	m.EventForwarded(false)
}

func TestCounters(t *testing.T) {
	m := New()
	m.MessageSent()
	m.MessageSent()
	m.SendFailed("update")
	m.DirectoryFallback()
	m.LiveDelivered(4)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.messagesSent))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sendFailures.WithLabelValues("update")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.directoryFallbacks))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.liveDelivered))
}

func TestUnaryInterceptorRecordsCode(t *testing.T) {
	m := New()
	interceptor := m.UnaryServerInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/chefchat.v1.ChatService/SendMessage"}

	_, err := interceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return nil, status.Error(codes.NotFound, "missing")
	})
	require.Error(t, err)

	got := testutil.ToFloat64(m.grpcHandled.WithLabelValues("chefchat.v1.ChatService", "SendMessage", "NotFound"))
	assert.Equal(t, 1.0, got)
}

func TestSplitFullMethod(t *testing.T) {
	s, m := splitFullMethod("/svc/Method")
	assert.Equal(t, "svc", s)
	assert.Equal(t, "Method", m)

	s, m = splitFullMethod("bogus")
	assert.Equal(t, "unknown", s)
	assert.Equal(t, "unknown", m)
}
