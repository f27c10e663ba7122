package ordered

import (
	"strings"

	"github.com/shuga2704/http-server/http"
	"github.com/shuga2704/http-server/http/status"
	"github.com/shuga2704/http-server/router"
)

var _ router.Router = new(Router)

type (
	Handler    func(*http.Request) *http.Response
	Middleware func(next Handler, request *http.Request) *http.Response
	// Predicate reports whether the path matches and returns the rest of the path following
	// the matched part.
	Predicate func(path string) (tail string, ok bool)
)

type route struct {
	match   Predicate
	handler Handler
}

// Router is an ordered list of routes. They're evaluated top to bottom in order of their
// registration and the first matching one wins, so on overlapping prefixes the earlier
// registered route takes precedence regardless of its length.
type Router struct {
	routes      []route
	middlewares []Middleware
	notFound    Handler
}

// New returns an empty router. Any request sent to it results in 404 Not Found.
func New() *Router {
	return &Router{
		notFound: notFound,
	}
}

// Route appends a new route with a custom predicate.
func (r *Router) Route(match Predicate, handler Handler) *Router {
	r.routes = append(r.routes, route{
		match:   match,
		handler: handler,
	})

	return r
}

// Exact appends a route matching the path exactly.
func (r *Router) Exact(path string, handler Handler) *Router {
	return r.Route(Exact(path), handler)
}

// Prefix appends a route matching any path starting with the prefix. The rest of the path
// is stored in request's Params under http.TailParam.
func (r *Router) Prefix(prefix string, handler Handler) *Router {
	return r.Route(Prefix(prefix), handler)
}

// NotFound replaces the handler called if no route matched.
func (r *Router) NotFound(handler Handler) *Router {
	r.notFound = handler
	return r
}

// Use adds middlewares, wrapping every handler including the not found one. The first
// added middleware is the outermost.
func (r *Router) Use(middlewares ...Middleware) *Router {
	r.middlewares = append(r.middlewares, middlewares...)
	return r
}

// OnRequest doesn't take the method nor the protocol into account, only the path.
func (r *Router) OnRequest(request *http.Request) *http.Response {
	return r.wrap(r.match(request))(request)
}

// OnError responds with the code the error carries and an empty body.
func (r *Router) OnError(request *http.Request, err error) *http.Response {
	return http.Error(request, err)
}

func (r *Router) match(request *http.Request) Handler {
	for _, rt := range r.routes {
		if tail, ok := rt.match(request.Path); ok {
			request.Params.Add(http.TailParam, tail)
			return rt.handler
		}
	}

	return r.notFound
}

func (r *Router) wrap(handler Handler) Handler {
	for i := len(r.middlewares) - 1; i >= 0; i-- {
		mw, next := r.middlewares[i], handler
		handler = func(request *http.Request) *http.Response {
			return mw(next, request)
		}
	}

	return handler
}

func Exact(path string) Predicate {
	return func(p string) (string, bool) {
		return "", p == path
	}
}

func Prefix(prefix string) Predicate {
	return func(p string) (string, bool) {
		return strings.CutPrefix(p, prefix)
	}
}

func notFound(request *http.Request) *http.Response {
	return http.Code(request, status.NotFound)
}
