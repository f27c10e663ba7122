package http

import (
	"net"

	"github.com/shuga2704/http-server/kv"
)

// TailParam is the key under which prefix routes store the rest of the path
// following the matched prefix.
const TailParam = "tail"

type (
	Headers = *kv.Storage
	Header  = kv.Pair
	Params  = *kv.Storage
)

// Request represents HTTP request. It lives no longer than the connection it was read
// from. Request bodies are never read, so there's no body entity at all.
type Request struct {
	// Method is the first token of the request line. It isn't validated in any way.
	Method string
	// Path is the raw request target. No percent-decoding or normalization is applied.
	Path string
	// Proto is the third token of the request line, e.g. HTTP/1.1.
	Proto string
	// Headers holds header pairs in order of their arrival. Duplicates are kept and lookups
	// are case-sensitive.
	Headers Headers
	// Params are values filled in by the router, e.g. TailParam.
	Params Params
	// Remote holds the remote address.
	Remote   net.Addr
	response *Response
}

func NewRequest(response *Response, headers, params *kv.Storage, remote net.Addr) *Request {
	return &Request{
		Headers:  headers,
		Params:   params,
		Remote:   remote,
		response: response,
	}
}

// Respond returns Response object bound to the request.
func (r *Request) Respond() *Response {
	return r.response.Clear()
}

// Tail is a shorthand for r.Params.Value(TailParam).
func (r *Request) Tail() string {
	return r.Params.Value(TailParam)
}
