package tcp

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shuga2704/http-server/http/status"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, onConn OnConn) (*Server, <-chan error) {
	listener, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)

	server := NewServer(listener, zerolog.Nop(), onConn)
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	return server, errCh
}

func TestTCP(t *testing.T) {
	t.Run("stop", func(t *testing.T) {
		server, errCh := startServer(t, func(conn net.Conn) {
			_ = conn.Close()
		})
		require.NoError(t, server.Stop())
		require.ErrorIs(t, <-errCh, status.ErrShutdown)
	})

	t.Run("goroutine per connection", func(t *testing.T) {
		release := make(chan struct{})
		server, errCh := startServer(t, func(conn net.Conn) {
			defer conn.Close()
			// the first connection blocks until the second one is served
			buff := make([]byte, 1)
			if _, err := conn.Read(buff); err != nil {
				return
			}

			if buff[0] == 'a' {
				<-release
			}

			_, _ = conn.Write(buff)
		})

		first, err := net.Dial("tcp", server.Addr().String())
		require.NoError(t, err)
		defer first.Close()
		_, err = first.Write([]byte("a"))
		require.NoError(t, err)

		second, err := net.Dial("tcp", server.Addr().String())
		require.NoError(t, err)
		defer second.Close()
		_, err = second.Write([]byte("b"))
		require.NoError(t, err)

		require.NoError(t, second.SetReadDeadline(time.Now().Add(5*time.Second)))
		data, err := io.ReadAll(second)
		require.NoError(t, err)
		require.Equal(t, "b", string(data))

		close(release)
		data, err = io.ReadAll(first)
		require.NoError(t, err)
		require.Equal(t, "a", string(data))

		require.NoError(t, server.Stop())
		require.ErrorIs(t, <-errCh, status.ErrShutdown)
	})

	t.Run("panic isolation", func(t *testing.T) {
		server, errCh := startServer(t, func(conn net.Conn) {
			buff := make([]byte, 1)
			_, _ = conn.Read(buff)
			if buff[0] == 'p' {
				panic("handler bug")
			}

			_, _ = conn.Write(buff)
			_ = conn.Close()
		})

		panicking, err := net.Dial("tcp", server.Addr().String())
		require.NoError(t, err)
		_, err = panicking.Write([]byte("p"))
		require.NoError(t, err)
		require.NoError(t, panicking.SetReadDeadline(time.Now().Add(5*time.Second)))
		data, _ := io.ReadAll(panicking)
		require.Empty(t, data)
		_ = panicking.Close()

		healthy, err := net.Dial("tcp", server.Addr().String())
		require.NoError(t, err)
		defer healthy.Close()
		_, err = healthy.Write([]byte("h"))
		require.NoError(t, err)
		require.NoError(t, healthy.SetReadDeadline(time.Now().Add(5*time.Second)))
		data, err = io.ReadAll(healthy)
		require.NoError(t, err)
		require.Equal(t, "h", string(data))

		require.NoError(t, server.Stop())
		require.ErrorIs(t, <-errCh, status.ErrShutdown)
	})
}

func TestClient(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()

	c := NewClient(client, 0, make([]byte, 8))
	go func() {
		_, _ = server.Write([]byte("hello"))
	}()

	data, err := c.Read()
	require.NoError(t, err)
	require.Equal(t, "hello", string(data))

	c.Unread(data[2:])
	data, err = c.Read()
	require.NoError(t, err)
	require.Equal(t, "llo", string(data))

	go func() {
		buff := make([]byte, 5)
		_, _ = io.ReadFull(server, buff)
		_, _ = server.Write(buff)
	}()
	require.NoError(t, c.Write([]byte("world")))
	data, err = c.Read()
	require.NoError(t, err)
	require.Equal(t, "world", string(data))
	require.NoError(t, c.Close())
}

func TestClientTimeout(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()

	c := NewClient(client, 10*time.Millisecond, make([]byte, 8))
	_, err := c.Read()
	var netErr net.Error
	require.ErrorAs(t, err, &netErr)
	require.True(t, netErr.Timeout())
}
