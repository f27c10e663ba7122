package httptest

import (
	"github.com/shuga2704/http-server/http"
	"github.com/shuga2704/http-server/kv"
)

// Dump renders the request back into its wire form. Headers are written in order of
// their arrival and the headers section is always CRLF-terminated.
func Dump(request *http.Request) string {
	var buff []byte

	buff = append(buff, request.Method...)
	buff = space(buff)
	buff = append(buff, request.Path...)
	buff = space(buff)
	buff = append(buff, request.Proto...)
	buff = crlf(buff)

	for _, h := range request.Headers.Expose() {
		buff = header(buff, h)
	}

	return string(crlf(buff))
}

func space(b []byte) []byte {
	return append(b, ' ')
}

func crlf(b []byte) []byte {
	return append(b, '\r', '\n')
}

func header(b []byte, h kv.Pair) []byte {
	b = append(b, h.Key...)
	b = append(b, ':', ' ')
	b = append(b, h.Value...)

	return crlf(b)
}
