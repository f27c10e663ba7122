package dummy

import (
	"io"
	"net"

	"github.com/indigo-web/utils/unreader"
)

// Client is an in-memory tcp.Client. It returns the chunks it was initialised with one
// per read, followed by Err (io.EOF by default), and records everything written.
type Client struct {
	unreader *unreader.Unreader
	data     [][]byte
	Err      error
	Written  []byte
	Closed   bool
	// WriteErr is returned from every Write, if set.
	WriteErr error
}

func NewClient(data ...[]byte) *Client {
	return &Client{
		unreader: new(unreader.Unreader),
		data:     data,
		Err:      io.EOF,
	}
}

// NewChunkedClient splits the data into chunks of n bytes at most, simulating reading
// a variable number of bytes per call from a network connection.
func NewChunkedClient(data string, n int) *Client {
	var chunks [][]byte
	for len(data) > 0 {
		end := min(n, len(data))
		chunks = append(chunks, []byte(data[:end]))
		data = data[end:]
	}

	return NewClient(chunks...)
}

func (c *Client) Read() ([]byte, error) {
	return c.unreader.PendingOr(func() ([]byte, error) {
		if len(c.data) == 0 {
			return nil, c.Err
		}

		chunk := c.data[0]
		c.data = c.data[1:]

		return chunk, nil
	})
}

func (c *Client) Unread(takeback []byte) {
	c.unreader.Unread(takeback)
}

func (c *Client) Write(b []byte) error {
	if c.WriteErr != nil {
		return c.WriteErr
	}

	c.Written = append(c.Written, b...)
	return nil
}

func (*Client) Remote() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 4221}
}

func (c *Client) Close() error {
	c.Closed = true
	return nil
}
