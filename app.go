package httpserver

import (
	"errors"
	"net"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/shuga2704/http-server/config"
	"github.com/shuga2704/http-server/http"
	"github.com/shuga2704/http-server/http/status"
	internalhttp "github.com/shuga2704/http-server/internal/server/http"
	"github.com/shuga2704/http-server/internal/server/tcp"
	"github.com/shuga2704/http-server/internal/transport/http1"
	"github.com/shuga2704/http-server/kv"
	"github.com/shuga2704/http-server/router"
)

// ErrNotStarted is returned by Stop when it's called before Serve bound the listener.
var ErrNotStarted = errors.New("server is not started")

// App binds the listener and serves every accepted connection in its own goroutine.
type App struct {
	cfg     *config.Config
	log     zerolog.Logger
	onStart func()
	server  atomic.Pointer[tcp.Server]
}

// New returns a new App instance. Nil config means config.Default().
func New(cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}

	return &App{
		cfg: cfg,
		log: zerolog.Nop(),
	}
}

// Logger replaces the default no-op logger.
func (a *App) Logger(log zerolog.Logger) *App {
	a.log = log
	return a
}

// NotifyOnStart calls the callback as soon as the listener is bound, right before the
// accept loop starts.
func (a *App) NotifyOnStart(cb func()) *App {
	a.onStart = cb
	return a
}

// Serve binds the configured address and blocks, serving connections with the router.
// A bind failure is returned immediately. After Stop, status.ErrShutdown is returned.
func (a *App) Serve(r router.Router) error {
	sock, err := net.Listen("tcp", a.cfg.Addr)
	if err != nil {
		return err
	}

	server := tcp.NewServer(sock, a.log, a.newTCPCallback(r))
	a.server.Store(server)
	a.log.Info().Stringer("addr", sock.Addr()).Msg("listening")

	if a.onStart != nil {
		a.onStart()
	}

	return server.Start()
}

// Addr returns the bound address, or nil if the App isn't serving yet.
func (a *App) Addr() net.Addr {
	if server := a.server.Load(); server != nil {
		return server.Addr()
	}

	return nil
}

// Stop closes the listener, so Serve returns. Connections being served at the moment
// are served till the end.
func (a *App) Stop() error {
	server := a.server.Load()
	if server == nil {
		return ErrNotStarted
	}

	return server.Stop()
}

func (a *App) newTCPCallback(r router.Router) tcp.OnConn {
	return func(conn net.Conn) {
		client := tcp.NewClient(conn, a.cfg.NET.ReadTimeout.Std(), make([]byte, a.cfg.NET.ReadBufferSize))
		request := http.NewRequest(
			http.NewResponse(), kv.NewPrealloc(a.cfg.Headers.Prealloc), kv.New(), client.Remote(),
		)
		trans := http1.New(a.cfg, a.log)
		internalhttp.NewServer(r, trans, a.log).Serve(client, request)
	}
}

// IsShutdown reports whether the error returned by Serve is caused by Stop.
func IsShutdown(err error) bool {
	return errors.Is(err, status.ErrShutdown)
}
