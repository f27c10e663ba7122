package status

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	require.Equal(t, Status("OK"), Text(OK))
	require.Equal(t, Status("Bad Request"), Text(BadRequest))
	require.Equal(t, Status("Not Found"), Text(NotFound))
	require.Empty(t, Text(Code(599)))
	require.Equal(t, "404", StringCode(NotFound))
}

func TestCodeOf(t *testing.T) {
	require.Equal(t, BadRequest, CodeOf(ErrMalformedRequestLine))
	require.Equal(t, RequestHeaderFieldsTooLarge, CodeOf(ErrHeaderFieldsTooLarge))
	require.Equal(t, NotFound, CodeOf(fmt.Errorf("reading file: %w", ErrNotFound)))
	require.Equal(t, BadRequest, CodeOf(io.ErrUnexpectedEOF))
}
