package http1

import (
	"github.com/rs/zerolog"
	"github.com/shuga2704/http-server/config"
	"github.com/shuga2704/http-server/internal/buffer"
	"github.com/shuga2704/http-server/internal/transport"
)

var _ transport.Transport = new(Transport)

type Transport struct {
	*Parser
	*Serializer
}

// New allocates a fresh transport for a single connection.
func New(cfg *config.Config, log zerolog.Logger) *Transport {
	requestLineBuff := buffer.New(cfg.URI.RequestLineSize.Default, cfg.URI.RequestLineSize.Maximal)
	headersBuff := buffer.New(cfg.Headers.Space.Default, cfg.Headers.Space.Maximal)

	return &Transport{
		Parser:     NewParser(requestLineBuff, headersBuff, log),
		Serializer: NewSerializer(make([]byte, 0, cfg.NET.WriteBufferSize)),
	}
}
