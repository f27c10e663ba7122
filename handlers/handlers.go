// Package handlers implements the endpoints the server exposes.
package handlers

import (
	"path/filepath"

	"github.com/shuga2704/http-server/http"
	"github.com/shuga2704/http-server/http/mime"
	"github.com/shuga2704/http-server/http/status"
	"github.com/shuga2704/http-server/router/ordered"
)

const userAgent = "User-Agent"

// New returns the routing table. Routes are matched in the following order: /, /user-agent,
// /echo/..., /files/..., and everything else is 404 Not Found.
func New(root string) *ordered.Router {
	return ordered.New().
		Exact("/", Root).
		Exact("/user-agent", UserAgent).
		Prefix("/echo/", Echo).
		Prefix("/files/", Files(root))
}

// Root responds with bare 200 OK.
func Root(request *http.Request) *http.Response {
	return http.Respond(request)
}

// UserAgent echoes the value of the first User-Agent header. The key is compared
// case-sensitively.
func UserAgent(request *http.Request) *http.Response {
	agent, found := request.Headers.Get(userAgent)
	if !found {
		return http.Code(request, status.NotFound)
	}

	return request.Respond().
		ContentType(mime.Plain).
		String(agent)
}

// Echo responds with whatever follows the /echo/ prefix, without any decoding.
func Echo(request *http.Request) *http.Response {
	return request.Respond().
		ContentType(mime.Plain).
		String(request.Tail())
}

// Files serves files from the root directory. The path following the prefix is joined
// onto root as is, so it's possible to escape the directory using "..".
func Files(root string) ordered.Handler {
	return func(request *http.Request) *http.Response {
		response, err := request.Respond().File(filepath.Join(root, request.Tail()))
		if err != nil {
			return http.Error(request, err)
		}

		return response
	}
}
