package daemon

import (
	"context"

	"github.com/Japjeet07/ChefMaker-sub000/internal/api"
	"github.com/Japjeet07/ChefMaker-sub000/internal/bus"
	"github.com/Japjeet07/ChefMaker-sub000/internal/chat"
	"github.com/Japjeet07/ChefMaker-sub000/internal/config"
	"github.com/Japjeet07/ChefMaker-sub000/internal/debug"
	"github.com/Japjeet07/ChefMaker-sub000/internal/events"
	"github.com/Japjeet07/ChefMaker-sub000/internal/lock"
	"github.com/Japjeet07/ChefMaker-sub000/internal/logging"
	"github.com/Japjeet07/ChefMaker-sub000/internal/metrics"
	"github.com/Japjeet07/ChefMaker-sub000/internal/session"
	"github.com/Japjeet07/ChefMaker-sub000/internal/status"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Params holds the resolved session configuration passed to the fx module.
type Params struct {
	SessionName string
	SocketPath  string // optional override for testing; empty = use default
	Config      *config.Config
}

func (p Params) config() *config.Config {
	if p.Config == nil {
		return config.Default()
	}
	return p.Config
}

func (p Params) socketPath() string {
	if p.SocketPath != "" {
		return p.SocketPath
	}
	return session.SocketPath(p.SessionName)
}

// Module returns the fx module for the daemon, composing all providers and lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Module("daemon",
		fx.Supply(p),
		fx.Provide(
			provideLogger,
			metrics.New,
			provideBus,
			provideStateMachine,
			provideLock,
			provideBackend,
			providePresence,
			providePublisher,
			provideForwarder,
			provideCore,
			provideChatService,
			NewServer,
			provideDebugServer,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideLogger(p Params) (*zap.Logger, error) {
	return logging.New(session.LogPath(p.SessionName), p.SessionName, p.config().Log.Level)
}

func provideBus(m *metrics.Metrics) *bus.Bus {
	b := bus.New()
	b.OnDrop(func(bus.Event) { m.BusDropped() })
	return b
}

func provideStateMachine(b *bus.Bus) *status.Machine {
	return status.NewMachine(b)
}

func provideLock(p Params, logger *zap.Logger) (*lock.Lock, error) {
	if err := session.EnsureDir(p.SessionName); err != nil {
		return nil, err
	}
	logger.Info("acquiring session lock", zap.String("session", p.SessionName))
	l, err := lock.Acquire(session.Dir(p.SessionName), p.config().Store.Backend)
	if err != nil {
		return nil, err
	}
	logger.Info("session lock acquired")
	return l, nil
}

func providePublisher(p Params, logger *zap.Logger) events.Publisher {
	cfg := p.config().AMQP
	return events.NewPublisher(cfg.URL, cfg.Exchange, logger.Named("events"))
}

func provideForwarder(p Params, b *bus.Bus, pub events.Publisher, logger *zap.Logger, m *metrics.Metrics) *events.Forwarder {
	return events.NewForwarder(b, pub, p.SessionName, logger.Named("events"), m)
}

func provideCore(p Params, backend *Backend, pr *Presence, b *bus.Bus, logger *zap.Logger, m *metrics.Metrics) *chat.Service {
	return chat.New(chat.Deps{
		Store:    backend.Store,
		Bus:      b,
		Logger:   logger,
		Metrics:  m,
		Presence: pr.Tracker,
		PageSize: p.config().Chat.PageSize,
	})
}

func provideChatService(p Params, core *chat.Service, machine *status.Machine, backend *Backend, pr *Presence, pub events.Publisher, logger *zap.Logger) *api.ChatService {
	return api.NewChatService(core, machine, api.Info{
		Session:  p.SessionName,
		Backend:  backend.Name,
		Presence: pr.Mode,
		Events:   events.Mode(pub),

		EventsReason: events.NoopReason(pub),
	}, logger.Named("api"))
}

// provideDebugServer returns nil when no metrics address is configured.
func provideDebugServer(p Params, m *metrics.Metrics, machine *status.Machine, logger *zap.Logger) *debug.Server {
	addr := p.config().Metrics.Addr
	if addr == "" {
		return nil
	}
	return debug.NewServer(addr, debug.NewRouter(m.Registry, machine), logger.Named("debug"))
}

func registerLifecycle(
	lc fx.Lifecycle,
	srv *Server,
	dbg *debug.Server,
	lk *lock.Lock,
	backend *Backend,
	pr *Presence,
	pub events.Publisher,
	fwd *events.Forwarder,
	machine *status.Machine,
	logger *zap.Logger,
) {
	fwdCtx, stopForwarder := context.WithCancel(context.Background())
	fwdDone := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			if dbg != nil {
				if err := dbg.Start(); err != nil {
					return err
				}
			}

			go func() {
				defer close(fwdDone)
				fwd.Run(fwdCtx)
			}()

			go func() {
				if err := srv.Start(); err != nil {
					logger.Error("gRPC server error", zap.Error(err))
				}
			}()

			if backend.Degraded() {
				_ = machine.Transition(status.Degraded, backend.Reason)
			} else {
				_ = machine.Transition(status.Ready, "")
			}
			logger.Info("daemon started", zap.String("state", string(machine.Current())), zap.String("backend", backend.Name))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			_ = machine.Transition(status.Stopping, "")
			srv.Stop(ctx)
			if dbg != nil {
				if err := dbg.Stop(ctx); err != nil {
					logger.Warn("debug server shutdown", zap.Error(err))
				}
			}
			stopForwarder()
			<-fwdDone
			if err := pub.Close(); err != nil {
				logger.Warn("error closing event publisher", zap.Error(err))
			}
			if err := pr.Close(); err != nil {
				logger.Warn("error closing presence", zap.Error(err))
			}
			if err := backend.Store.Close(); err != nil {
				logger.Warn("error closing store", zap.Error(err))
			}
			if err := lk.Release(); err != nil {
				logger.Warn("error releasing lock", zap.Error(err))
			}
			logger.Info("daemon stopped")
			return nil
		},
	})
}
