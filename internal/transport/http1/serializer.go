package http1

import (
	"strconv"

	"github.com/indigo-web/utils/strcomp"
	"github.com/shuga2704/http-server/http"
	"github.com/shuga2704/http-server/http/status"
	"github.com/shuga2704/http-server/internal/response"
	"github.com/shuga2704/http-server/internal/transport"
)

const (
	protocol      = "HTTP/1.1 "
	contentLength = "Content-Length"
)

type Serializer struct {
	buff []byte
}

func NewSerializer(buff []byte) *Serializer {
	return &Serializer{
		buff: buff[:0],
	}
}

// Write renders the whole response into the buffer and flushes it in a single write. The
// response is always HTTP/1.1, regardless of the request's protocol. A non-empty body
// lacking the Content-Length header gets one.
func (s *Serializer) Write(response *http.Response, writer transport.Writer) error {
	defer s.clear()

	fields := response.Reveal()
	s.renderResponseLine(fields)
	s.renderHeaders(fields)
	s.crlf()
	s.buff = append(s.buff, fields.Body...)

	return writer.Write(s.buff)
}

func (s *Serializer) renderResponseLine(fields *response.Fields) {
	s.buff = append(s.buff, protocol...)
	s.buff = strconv.AppendUint(s.buff, uint64(fields.Code), 10)
	s.sp()

	if len(fields.Status) > 0 {
		s.buff = append(s.buff, fields.Status...)
	} else {
		s.buff = append(s.buff, status.Text(fields.Code)...)
	}

	s.crlf()
}

func (s *Serializer) renderHeaders(fields *response.Fields) {
	var hasLength bool

	for _, header := range fields.Headers {
		s.renderHeader(header.Key, header.Value)
		hasLength = hasLength || strcomp.EqualFold(header.Key, contentLength)
	}

	if !hasLength && len(fields.Body) > 0 {
		s.renderHeader(contentLength, strconv.Itoa(len(fields.Body)))
	}
}

func (s *Serializer) renderHeader(key, value string) {
	s.buff = append(s.buff, key...)
	s.buff = append(s.buff, ':', ' ')
	s.buff = append(s.buff, value...)
	s.crlf()
}

func (s *Serializer) sp() {
	s.buff = append(s.buff, ' ')
}

func (s *Serializer) crlf() {
	s.buff = append(s.buff, '\r', '\n')
}

func (s *Serializer) clear() {
	s.buff = s.buff[:0]
}
