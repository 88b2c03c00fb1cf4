// Package metrics holds the daemon's Prometheus collectors. A nil *Metrics is
// valid and records nothing, so library code can take one unconditionally.
package metrics

import (
	"context"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// Metrics is a set of collectors registered on their own registry.
type Metrics struct {
	Registry *prometheus.Registry

	messagesSent       prometheus.Counter
	sendFailures       *prometheus.CounterVec
	directoryFallbacks prometheus.Counter
	liveDelivered      prometheus.Counter
	liveSubscriptions  prometheus.Gauge
	busDrops           prometheus.Counter
	eventsForwarded    *prometheus.CounterVec
	grpcHandled        *prometheus.CounterVec
	grpcDuration       *prometheus.HistogramVec
}

// New creates and registers all collectors, plus the Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		messagesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chefchat_messages_sent_total",
			Help: "Messages persisted by the send path.",
		}),
		sendFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chefchat_send_failures_total",
			Help: "Failed sends by stage (validate, chat, append, update).",
		}, []string{"stage"}),
		directoryFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chefchat_directory_fallbacks_total",
			Help: "Chat list reads served by the unordered fallback query.",
		}),
		liveDelivered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chefchat_live_messages_delivered_total",
			Help: "Messages delivered to live subscribers.",
		}),
		liveSubscriptions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "chefchat_live_subscriptions",
			Help: "Open live message subscriptions.",
		}),
		busDrops: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chefchat_bus_dropped_events_total",
			Help: "Bus events dropped because a subscriber buffer was full.",
		}),
		eventsForwarded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chefchat_events_forwarded_total",
			Help: "Bus events forwarded to AMQP by result.",
		}, []string{"result"}),
		grpcHandled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "grpc_server_handled_total",
			Help: "Total number of gRPC requests handled by the server.",
		}, []string{"grpc_service", "grpc_method", "grpc_code"}),
		grpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "grpc_server_handling_seconds",
			Help:    "gRPC unary handling latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"grpc_method"}),
	}
	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.messagesSent,
		m.sendFailures,
		m.directoryFallbacks,
		m.liveDelivered,
		m.liveSubscriptions,
		m.busDrops,
		m.eventsForwarded,
		m.grpcHandled,
		m.grpcDuration,
	)
	return m
}

func (m *Metrics) MessageSent() {
	if m != nil {
		m.messagesSent.Inc()
	}
}

func (m *Metrics) SendFailed(stage string) {
	if m != nil {
		m.sendFailures.WithLabelValues(stage).Inc()
	}
}

func (m *Metrics) DirectoryFallback() {
	if m != nil {
		m.directoryFallbacks.Inc()
	}
}

func (m *Metrics) LiveDelivered(n int) {
	if m != nil {
		m.liveDelivered.Add(float64(n))
	}
}

func (m *Metrics) LiveOpened() {
	if m != nil {
		m.liveSubscriptions.Inc()
	}
}

func (m *Metrics) LiveClosed() {
	if m != nil {
		m.liveSubscriptions.Dec()
	}
}

func (m *Metrics) BusDropped() {
	if m != nil {
		m.busDrops.Inc()
	}
}

func (m *Metrics) EventForwarded(ok bool) {
	if m == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "error"
	}
	m.eventsForwarded.WithLabelValues(result).Inc()
}

// EventsForwarded exposes the forwarded-events counter, labelled by result.
func (m *Metrics) EventsForwarded() *prometheus.CounterVec {
	return m.eventsForwarded
}

// UnaryServerInterceptor counts and times unary RPCs by status code.
func (m *Metrics) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		if m != nil {
			service, method := splitFullMethod(info.FullMethod)
			m.grpcHandled.WithLabelValues(service, method, status.Code(err).String()).Inc()
			m.grpcDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
		}
		return resp, err
	}
}

// StreamServerInterceptor counts streaming RPCs by their final status code.
func (m *Metrics) StreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		err := handler(srv, ss)
		if m != nil {
			service, method := splitFullMethod(info.FullMethod)
			m.grpcHandled.WithLabelValues(service, method, status.Code(err).String()).Inc()
		}
		return err
	}
}

func splitFullMethod(fullMethod string) (string, string) {
	parts := strings.Split(fullMethod, "/")
	if len(parts) < 3 {
		return "unknown", "unknown"
	}
	return parts[1], parts[2]
}
