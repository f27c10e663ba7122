package middleware

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/shuga2704/http-server/http"
	"github.com/shuga2704/http-server/router/ordered"
)

// LogRequests writes an access log entry per request at the info level.
func LogRequests(log zerolog.Logger) ordered.Middleware {
	return func(next ordered.Handler, request *http.Request) *http.Response {
		start := time.Now()
		response := next(request)
		fields := response.Reveal()

		event := log.Info().
			Str("method", request.Method).
			Str("path", request.Path).
			Uint16("code", uint16(fields.Code)).
			Int("size", len(fields.Body)).
			Dur("took", time.Since(start))
		if request.Remote != nil {
			event = event.Stringer("remote", request.Remote)
		}
		event.Msg("request")

		return response
	}
}
