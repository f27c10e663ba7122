package http

import (
	"errors"
	"os"
	"strconv"

	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
	"github.com/shuga2704/http-server/http/mime"
	"github.com/shuga2704/http-server/http/status"
	"github.com/shuga2704/http-server/internal/response"
	"github.com/shuga2704/http-server/kv"
)

// why 4? Nothing but content-type and content-length is ever set by the handlers.
const preallocRespHeaders = 4

type Response struct {
	fields *response.Fields
}

// NewResponse returns a new instance of the Response object with status code set to 200 OK,
// no headers and no body.
// NOTE: it's recommended to use Request.Respond() method inside of handlers, if there's no
// clear reason otherwise
func NewResponse() *Response {
	return &Response{
		&response.Fields{
			Code:    status.OK,
			Headers: make([]kv.Pair, 0, preallocRespHeaders),
		},
	}
}

// Code sets a Response code. Corresponding status text is picked during serialization
// unless set explicitly via Status
func (r *Response) Code(code status.Code) *Response {
	r.fields.Code = code
	return r
}

// Status sets a custom status text
func (r *Response) Status(status status.Status) *Response {
	r.fields.Status = status
	return r
}

// ContentType sets a custom Content-Type header value.
func (r *Response) ContentType(value mime.MIME) *Response {
	return r.Header("Content-Type", value)
}

// Header sets the header value. Headers behave as a mapping: setting an already present key
// (compared case-insensitively) overrides its value in place, so the order of first
// insertion is kept.
func (r *Response) Header(key, value string) *Response {
	for i, header := range r.fields.Headers {
		if strcomp.EqualFold(header.Key, key) {
			r.fields.Headers[i].Value = value
			return r
		}
	}

	r.fields.Headers = append(r.fields.Headers, kv.Pair{
		Key:   key,
		Value: value,
	})

	return r
}

// String sets the response's body to the passed string
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response's body to passed slice WITHOUT COPYING and the Content-Length
// header to its length, even if it's zero. Changing the passed slice later will affect
// the response by itself
func (r *Response) Bytes(body []byte) *Response {
	r.fields.Body = body
	return r.Header("Content-Length", strconv.Itoa(len(body)))
}

// File reads the whole file and sets it as a body. Any failure, including the path being
// a directory, results in status.ErrNotFound, while the Response is left untouched.
func (r *Response) File(path string) (*Response, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return r, errors.Join(status.ErrNotFound, err)
	}

	return r.
		ContentType(mime.OctetStream).
		Bytes(content), nil
}

// Error returns a response builder with an error set. If passed err is nil, nothing will happen.
// The code is taken from status.HTTPError if err carries one, otherwise 400 Bad Request is
// used. The body is always left empty, as errors aren't exposed to clients.
func (r *Response) Error(err error) *Response {
	if err == nil {
		return r
	}

	return r.Code(status.CodeOf(err))
}

// Reveal returns a struct with values, filled by builder. Used mostly in internal purposes
func (r *Response) Reveal() *response.Fields {
	return r.fields
}

// Clear discards everything was done with Response object before
func (r *Response) Clear() *Response {
	*r.fields = r.fields.Clear()
	return r
}

// Respond is a predicate to request.Respond(). May be used as a dummy handler
func Respond(request *Request) *Response {
	return request.Respond()
}

// Code is a predicate to request.Respond().Code(...)
func Code(request *Request, code status.Code) *Response {
	return request.Respond().Code(code)
}

// String is a predicate to request.Respond().String(...)
func String(request *Request, str string) *Response {
	return request.Respond().String(str)
}

// Error is a predicate to request.Respond().Error(...)
func Error(request *Request, err error) *Response {
	return request.Respond().Error(err)
}
