package httptest

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/shuga2704/http-server/kv"
)

// Response is a raw HTTP/1.1 response split into its parts.
type Response struct {
	Proto   string
	Code    int
	Status  string
	Headers *kv.Storage
	Body    string
}

// Parse splits the raw response, as it was read from the connection until EOF. Unlike the
// server, it's strict: every line must be CRLF-terminated and the body must match the
// Content-Length exactly.
func Parse(raw string) (response Response, err error) {
	var found bool
	response.Headers = kv.New()

	response.Proto, raw, found = strings.Cut(raw, " ")
	if !found || len(raw) == 0 {
		return response, fmt.Errorf("bad status line: lacking code and status")
	}

	var code string
	code, raw, found = strings.Cut(raw, " ")
	if !found {
		return response, fmt.Errorf("bad status line: lacking status text")
	}

	if response.Code, err = strconv.Atoi(code); err != nil {
		return response, err
	}

	response.Status, raw, found = strings.Cut(raw, "\r\n")
	if !found {
		return response, fmt.Errorf("bad status line: no breaking CRLF")
	}

	for {
		var line string
		line, raw, found = strings.Cut(raw, "\r\n")
		if !found {
			return response, fmt.Errorf("bad header line %q: no breaking CRLF", line)
		}

		if len(line) == 0 {
			break
		}

		key, value, found := strings.Cut(line, ": ")
		if !found {
			return response, fmt.Errorf("bad header %q: no value", line)
		}

		response.Headers.Add(key, value)
	}

	response.Body, err = processBody(response.Headers, raw)

	return response, err
}

func processBody(headers *kv.Storage, data string) (string, error) {
	contentLength := slices.Collect(headers.Values("Content-Length"))

	switch len(contentLength) {
	case 0:
		if len(data) == 0 {
			return "", nil
		}

		return "", fmt.Errorf("got %d bytes of body without Content-Length", len(data))
	case 1:
		length, err := strconv.Atoi(contentLength[0])
		if err != nil {
			return "", err
		}

		if len(data) != length {
			return "", fmt.Errorf("body length mismatch: want %d, got %d", length, len(data))
		}

		return data, nil
	default:
		return "", fmt.Errorf("too many content-lengths: %s", strings.Join(contentLength, ", "))
	}
}
