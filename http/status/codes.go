package status

import "strconv"

type (
	Code   uint16
	Status string
)

// HTTP status codes the server is able to respond with. Anything else is rendered
// with its numeric code and an empty reason phrase.
const (
	OK                          Code = 200 // RFC 9110, 15.3.1
	NoContent                   Code = 204 // RFC 9110, 15.3.5
	BadRequest                  Code = 400 // RFC 9110, 15.5.1
	Forbidden                   Code = 403 // RFC 9110, 15.5.4
	NotFound                    Code = 404 // RFC 9110, 15.5.5
	MethodNotAllowed            Code = 405 // RFC 9110, 15.5.6
	RequestURITooLong           Code = 414 // RFC 9110, 15.5.15
	RequestHeaderFieldsTooLarge Code = 431 // RFC 6585, 5
	InternalServerError         Code = 500 // RFC 9110, 15.6.1
	NotImplemented              Code = 501 // RFC 9110, 15.6.2
	HTTPVersionNotSupported     Code = 505 // RFC 9110, 15.6.6
)

// Text returns a text for the HTTP status code. It returns the empty
// string if the code is unknown.
func Text(code Code) Status {
	switch code {
	case OK:
		return "OK"
	case NoContent:
		return "No Content"
	case BadRequest:
		return "Bad Request"
	case Forbidden:
		return "Forbidden"
	case NotFound:
		return "Not Found"
	case MethodNotAllowed:
		return "Method Not Allowed"
	case RequestURITooLong:
		return "Request URI Too Long"
	case RequestHeaderFieldsTooLarge:
		return "Request Header Fields Too Large"
	case InternalServerError:
		return "Internal Server Error"
	case NotImplemented:
		return "Not Implemented"
	case HTTPVersionNotSupported:
		return "HTTP Version Not Supported"
	default:
		return ""
	}
}

// StringCode returns the code as a decimal string.
func StringCode(code Code) string {
	return strconv.Itoa(int(code))
}
