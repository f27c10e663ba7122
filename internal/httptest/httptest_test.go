package httptest

import (
	"testing"

	"github.com/shuga2704/http-server/http"
	"github.com/shuga2704/http-server/kv"
	"github.com/stretchr/testify/require"
)

func TestDump(t *testing.T) {
	headers := kv.New().
		Add("Host", "localhost").
		Add("Accept", "*/*").
		Add("Accept", "text/plain")
	request := http.NewRequest(http.NewResponse(), headers, kv.New(), nil)
	request.Method, request.Path, request.Proto = "GET", "/echo/abc", "HTTP/1.1"

	require.Equal(t,
		"GET /echo/abc HTTP/1.1\r\nHost: localhost\r\nAccept: */*\r\nAccept: text/plain\r\n\r\n",
		Dump(request),
	)
}

func TestParse(t *testing.T) {
	t.Run("bare", func(t *testing.T) {
		response, err := Parse("HTTP/1.1 404 Not Found\r\n\r\n")
		require.NoError(t, err)
		require.Equal(t, "HTTP/1.1", response.Proto)
		require.Equal(t, 404, response.Code)
		require.Equal(t, "Not Found", response.Status)
		require.True(t, response.Headers.Empty())
		require.Empty(t, response.Body)
	})

	t.Run("with body", func(t *testing.T) {
		response, err := Parse("HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 3\r\n\r\nabc")
		require.NoError(t, err)
		require.Equal(t, 200, response.Code)
		require.Equal(t, "text/plain", response.Headers.Value("Content-Type"))
		require.Equal(t, "abc", response.Body)
	})

	t.Run("empty status text", func(t *testing.T) {
		response, err := Parse("HTTP/1.1 599 \r\n\r\n")
		require.NoError(t, err)
		require.Equal(t, 599, response.Code)
		require.Empty(t, response.Status)
	})

	for _, raw := range []string{
		"",
		"HTTP/1.1\r\n\r\n",
		"HTTP/1.1 abc OK\r\n\r\n",
		"HTTP/1.1 200 OK\r\n",
		"HTTP/1.1 200 OK\r\nbroken\r\n\r\n",
		"HTTP/1.1 200 OK\r\n\r\nunexpected",
		"HTTP/1.1 200 OK\r\nContent-Length: 5\r\n\r\nabc",
		"HTTP/1.1 200 OK\r\nContent-Length: 1\r\nContent-Length: 1\r\n\r\na",
	} {
		_, err := Parse(raw)
		require.Error(t, err, "%q", raw)
	}
}
