package http1

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/indigo-web/utils/uf"
	"github.com/rs/zerolog"
	"github.com/shuga2704/http-server/http"
	"github.com/shuga2704/http-server/http/status"
	"github.com/shuga2704/http-server/internal/buffer"
	"github.com/shuga2704/http-server/internal/server/tcp"
)

const headerSeparator = ": "

var errLineTooLong = errors.New("line exceeds the buffer limit")

// Parser is a line-oriented HTTP/1 request parser. It reads the request line and the
// headers section only: bodies are neither parsed nor consumed. Every string stored in
// the request points into one of the buffers, therefore a single Parser serves a single
// connection.
type Parser struct {
	requestLineBuff *buffer.Buffer
	headersBuff     *buffer.Buffer
	log             zerolog.Logger
}

func NewParser(requestLineBuff, headersBuff *buffer.Buffer, log zerolog.Logger) *Parser {
	return &Parser{
		requestLineBuff: requestLineBuff,
		headersBuff:     headersBuff,
		log:             log,
	}
}

// RequestLine reads the first line and splits it by whitespaces. Exactly three tokens are
// expected: method, path and protocol. Their values aren't validated. I/O errors other than
// the end of the stream are returned as is.
func (p *Parser) RequestLine(client tcp.Client, request *http.Request) error {
	line, _, err := readLine(client, p.requestLineBuff)
	switch {
	case errors.Is(err, errLineTooLong):
		return status.ErrTooLongRequestLine
	case err != nil && !errors.Is(err, io.EOF):
		return err
	}

	tokens := strings.Fields(uf.B2S(line))
	if len(tokens) != 3 {
		p.log.Debug().Bytes("line", trimLineEnd(line)).Msg("malformed request line")
		return status.ErrMalformedRequestLine
	}

	request.Method, request.Path, request.Proto = tokens[0], tokens[1], tokens[2]

	return nil
}

// Headers reads header lines until an empty line or the end of the stream, whichever comes
// first. Lines lacking the ": " separator are discarded. Values are right-trimmed, keys are
// kept as is.
func (p *Parser) Headers(client tcp.Client, request *http.Request) error {
	for {
		line, terminated, err := readLine(client, p.headersBuff)
		if errors.Is(err, errLineTooLong) {
			return status.ErrHeaderFieldsTooLarge
		}

		if len(line) == 0 {
			if !errors.Is(err, io.EOF) {
				p.log.Debug().Err(err).Msg("headers section cut short")
			}

			return nil
		}

		content := trimLineEnd(line)
		if terminated && len(content) == 0 {
			return nil
		}

		key, value, found := strings.Cut(uf.B2S(content), headerSeparator)
		if found {
			request.Headers.Add(key, strings.TrimRight(value, " \t"))
		} else {
			p.log.Warn().Bytes("line", content).Msg("discarding malformed header line")
		}

		if err != nil {
			// the last line wasn't terminated, but there's nothing more to read
			return nil
		}
	}
}

// readLine reads until LF including it. Bytes read past the line end are given back to the
// client. If the stream ends before LF, whatever was read is returned alongside the error.
func readLine(client tcp.Client, buff *buffer.Buffer) (line []byte, terminated bool, err error) {
	for {
		data, readErr := client.Read()
		if lf := bytes.IndexByte(data, '\n'); lf != -1 {
			if !buff.Append(data[:lf+1]) {
				return nil, false, errLineTooLong
			}

			if rest := data[lf+1:]; len(rest) > 0 {
				client.Unread(rest)
			}

			return buff.Finish(), true, nil
		}

		if !buff.Append(data) {
			return nil, false, errLineTooLong
		}

		if readErr != nil {
			return buff.Finish(), false, readErr
		}
	}
}

func trimLineEnd(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte{'\n'})
	return bytes.TrimSuffix(line, []byte{'\r'})
}
