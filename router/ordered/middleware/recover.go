package middleware

import (
	"github.com/shuga2704/http-server/http"
	"github.com/shuga2704/http-server/http/status"
	"github.com/shuga2704/http-server/router/ordered"
)

// Recover is a basic middleware that catches any panics, and returns 500 Internal Server Error
// instead. Response headers and body are being discarded in consistency purposes, avoiding
// half-cooked response being sent
func Recover(next ordered.Handler, request *http.Request) (response *http.Response) {
	defer func() {
		if r := recover(); r != nil {
			response = http.Error(request, status.ErrInternalServerError)
		}
	}()

	return next(request)
}
