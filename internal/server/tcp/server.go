package tcp

import (
	"errors"
	"net"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/shuga2704/http-server/http/status"
)

type OnConn func(net.Conn)

// Server accepts connections and hands each of them to its own goroutine. There's no
// limit on the number of simultaneously served connections.
type Server struct {
	sock     net.Listener
	onConn   OnConn
	log      zerolog.Logger
	shutdown atomic.Bool
}

func NewServer(sock net.Listener, log zerolog.Logger, onConn OnConn) *Server {
	return &Server{
		sock:   sock,
		onConn: onConn,
		log:    log,
	}
}

// Start runs the accept loop. Accept errors are logged and never stop the loop, except
// the listener being closed. Returns status.ErrShutdown if stopped via Stop.
func (s *Server) Start() error {
	for {
		conn, err := s.sock.Accept()
		if err != nil {
			if s.shutdown.Load() {
				return status.ErrShutdown
			}

			if errors.Is(err, net.ErrClosed) {
				return err
			}

			s.log.Error().Err(err).Msg("accept")
			continue
		}

		go s.connHandler(conn)
	}
}

// Stop closes the listener. Connections being served at the moment are left alone.
func (s *Server) Stop() error {
	s.shutdown.Store(true)
	return s.sock.Close()
}

// Addr returns the listener's network address.
func (s *Server) Addr() net.Addr {
	return s.sock.Addr()
}

func (s *Server) connHandler(conn net.Conn) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().
				Interface("panic", r).
				Stringer("remote", conn.RemoteAddr()).
				Msg("connection handler panicked")
			_ = conn.Close()
		}
	}()

	s.onConn(conn)
}
