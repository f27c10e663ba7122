package transport

import (
	"github.com/shuga2704/http-server/http"
	"github.com/shuga2704/http-server/internal/server/tcp"
)

// Parser reads a single request out of the client. Parsing is split into two steps,
// so the caller is able to track which part of the request is being read.
type Parser interface {
	RequestLine(client tcp.Client, request *http.Request) error
	Headers(client tcp.Client, request *http.Request) error
}

type Writer interface {
	Write([]byte) error
}

// Serializer converts an HTTP response builder into bytes and writes it
type Serializer interface {
	Write(response *http.Response, writer Writer) error
}

// Transport is a general pair of a parser and a serializer. Usually consists of both belonging
// to a same protocol major version
type Transport interface {
	Parser
	Serializer
}
