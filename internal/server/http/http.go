package http

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/shuga2704/http-server/http"
	"github.com/shuga2704/http-server/http/status"
	"github.com/shuga2704/http-server/internal/server/tcp"
	"github.com/shuga2704/http-server/internal/transport"
	"github.com/shuga2704/http-server/router"
)

// Server serves exactly one request per connection: no keep-alive, nothing past the
// first request is ever read.
type Server struct {
	router    router.Router
	transport transport.Transport
	log       zerolog.Logger
}

func NewServer(r router.Router, t transport.Transport, log zerolog.Logger) *Server {
	return &Server{
		router:    r,
		transport: t,
		log:       log,
	}
}

// Serve reads the request, dispatches it, writes the response and closes the client.
// Errors are never propagated: they're either answered or logged.
func (s *Server) Serve(client tcp.Client, request *http.Request) {
	conn := &connection{
		client: client,
		log:    s.log.With().Stringer("remote", client.Remote()).Logger(),
	}
	defer conn.close()

	conn.transition(stateParsingRequestLine)
	if err := s.transport.RequestLine(client, request); err != nil {
		if !isHTTPError(err) {
			conn.log.Debug().Err(err).Msg("reading request line")
			return
		}

		s.write(conn, s.onError(request, err))
		return
	}

	conn.transition(stateParsingHeaders)
	if err := s.transport.Headers(client, request); err != nil {
		s.write(conn, s.onError(request, err))
		return
	}

	conn.transition(stateDispatching)
	s.write(conn, s.onRequest(request))
}

func (s *Server) onRequest(request *http.Request) *http.Response {
	if response := s.router.OnRequest(request); response != nil {
		return response
	}

	return http.Respond(request)
}

func (s *Server) onError(request *http.Request, err error) *http.Response {
	if response := s.router.OnError(request, err); response != nil {
		return response
	}

	return http.Error(request, err)
}

func (s *Server) write(conn *connection, response *http.Response) {
	conn.transition(stateWritingResponse)
	if err := s.transport.Write(response, conn.client); err != nil {
		// there's nothing to do with the client anymore
		conn.log.Error().Err(err).Msg("writing response")
	}
}

type connection struct {
	client tcp.Client
	log    zerolog.Logger
	state  connState
}

func (c *connection) transition(next connState) {
	c.log.Trace().
		Stringer("from", c.state).
		Stringer("to", next).
		Msg("connection state")
	c.state = next
}

func (c *connection) close() {
	c.transition(stateClosed)
	if err := c.client.Close(); err != nil {
		c.log.Debug().Err(err).Msg("closing connection")
	}
}

func isHTTPError(err error) bool {
	var httpErr status.HTTPError
	return errors.As(err, &httpErr)
}
