package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shuga2704/http-server/config"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("level", func(t *testing.T) {
		buff := new(bytes.Buffer)
		log := New(config.Log{Level: "warn"}, buff)
		log.Info().Msg("hidden")
		require.Zero(t, buff.Len())

		log.Warn().Str("remote", "127.0.0.1").Msg("shown")
		require.Contains(t, buff.String(), `"message":"shown"`)
		require.Contains(t, buff.String(), `"remote":"127.0.0.1"`)
	})

	t.Run("unknown level", func(t *testing.T) {
		log := New(config.Log{Level: "loud"}, new(bytes.Buffer))
		require.Equal(t, zerolog.InfoLevel, log.GetLevel())
	})

	t.Run("empty level", func(t *testing.T) {
		log := New(config.Log{}, new(bytes.Buffer))
		require.Equal(t, zerolog.InfoLevel, log.GetLevel())
	})

	t.Run("trace", func(t *testing.T) {
		prev := zerolog.GlobalLevel()
		t.Cleanup(func() {
			zerolog.SetGlobalLevel(prev)
		})

		buff := new(bytes.Buffer)
		New(config.Log{Level: "trace"}, buff).Trace().Msg("transition")
		require.Contains(t, buff.String(), `"message":"transition"`)
	})

	t.Run("pretty", func(t *testing.T) {
		buff := new(bytes.Buffer)
		New(config.Log{Level: "info", Pretty: true}, buff).Info().Msg("hello")
		require.Contains(t, buff.String(), "hello")
		require.NotContains(t, buff.String(), `"message"`)
	})
}
