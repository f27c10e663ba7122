package router

import (
	"github.com/shuga2704/http-server/http"
)

// Router is shared by all the connections at once, so it must not be modified after the
// server has started.
type Router interface {
	// OnRequest picks exactly one handler for the request and returns its response.
	OnRequest(request *http.Request) *http.Response
	// OnError returns a response for a request which couldn't be parsed.
	OnError(request *http.Request, err error) *http.Response
}
