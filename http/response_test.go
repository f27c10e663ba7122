package http

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shuga2704/http-server/http/status"
	"github.com/shuga2704/http-server/kv"
	"github.com/stretchr/testify/require"
)

func TestResponse(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		fields := NewResponse().Reveal()
		require.Equal(t, status.OK, fields.Code)
		require.Empty(t, fields.Headers)
		require.Empty(t, fields.Body)
	})

	t.Run("string sets content length", func(t *testing.T) {
		fields := NewResponse().String("hello").Reveal()
		require.Equal(t, "hello", string(fields.Body))
		require.Equal(t, []kv.Pair{{"Content-Length", "5"}}, fields.Headers)
	})

	t.Run("empty string", func(t *testing.T) {
		fields := NewResponse().String("").Reveal()
		require.Empty(t, fields.Body)
		require.Equal(t, []kv.Pair{{"Content-Length", "0"}}, fields.Headers)
	})

	t.Run("header mapping", func(t *testing.T) {
		fields := NewResponse().
			Header("Content-Type", "text/html").
			Header("X-Custom", "1").
			Header("content-type", "text/plain").
			Reveal()

		want := []kv.Pair{
			{"Content-Type", "text/plain"},
			{"X-Custom", "1"},
		}
		require.Equal(t, want, fields.Headers)
	})

	t.Run("error", func(t *testing.T) {
		fields := NewResponse().Error(status.ErrNotFound).Reveal()
		require.Equal(t, status.NotFound, fields.Code)
		require.Empty(t, fields.Body)

		fields = NewResponse().Error(nil).Reveal()
		require.Equal(t, status.OK, fields.Code)
	})

	t.Run("clear", func(t *testing.T) {
		resp := NewResponse().Code(status.NotFound).String("hello")
		fields := resp.Clear().Reveal()
		require.Equal(t, status.OK, fields.Code)
		require.Empty(t, fields.Headers)
		require.Nil(t, fields.Body)
	})
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.txt")
	require.NoError(t, os.WriteFile(path, []byte("hi"), 0o644))

	t.Run("existing", func(t *testing.T) {
		resp, err := NewResponse().File(path)
		require.NoError(t, err)
		fields := resp.Reveal()
		require.Equal(t, "hi", string(fields.Body))
		require.Equal(t, []kv.Pair{
			{"Content-Type", "application/octet-stream"},
			{"Content-Length", "2"},
		}, fields.Headers)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := NewResponse().File(filepath.Join(dir, "nope"))
		require.ErrorIs(t, err, status.ErrNotFound)
		require.Equal(t, status.NotFound, status.CodeOf(err))
	})

	t.Run("directory", func(t *testing.T) {
		_, err := NewResponse().File(dir)
		require.ErrorIs(t, err, status.ErrNotFound)
	})
}
