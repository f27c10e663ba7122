package status

import "errors"

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

// CodeOf extracts the status code carried by err. Errors that don't carry any are
// considered to be a client's fault.
func CodeOf(err error) Code {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return BadRequest
}

var (
	ErrShutdown = errors.New("graceful shutdown")

	ErrBadRequest           = NewError(BadRequest, "bad request")
	ErrMalformedRequestLine = NewError(BadRequest, "malformed request line")
	ErrTooLongRequestLine   = NewError(BadRequest, "request line is too long")
	ErrHeaderFieldsTooLarge = NewError(RequestHeaderFieldsTooLarge, "too large headers section")
	ErrNotFound             = NewError(NotFound, "not found")
	ErrInternalServerError  = NewError(InternalServerError, "internal server error")
)
