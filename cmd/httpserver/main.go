package main

import (
	"flag"
	"os"

	httpserver "github.com/shuga2704/http-server"
	"github.com/shuga2704/http-server/config"
	"github.com/shuga2704/http-server/handlers"
	"github.com/shuga2704/http-server/internal/logging"
	"github.com/shuga2704/http-server/router/ordered/middleware"
)

func main() {
	var (
		addr      = flag.String("addr", "", "address to listen on (default 127.0.0.1:4221)")
		directory = flag.String("directory", "", "directory /files/ serves from (default .)")
		cfgPath   = flag.String("config", "", "path to a JSON config file")
		level     = flag.String("log-level", "", "trace, debug, info, warn or error")
		pretty    = flag.Bool("pretty", false, "human-readable logs")
	)
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			logging.New(cfg.Log, os.Stderr).Fatal().Err(err).Msg("loading config")
		}

		cfg = loaded
	}

	applyFlags(cfg, *addr, *directory, *level, *pretty)
	log := logging.New(cfg.Log, os.Stderr)

	r := handlers.New(cfg.Root).
		Use(middleware.Recover, middleware.LogRequests(log))

	err := httpserver.New(cfg).
		Logger(log).
		NotifyOnStart(func() {
			log.Info().Str("root", cfg.Root).Msg("ready")
		}).
		Serve(r)
	if err != nil && !httpserver.IsShutdown(err) {
		log.Fatal().Err(err).Msg("serve")
	}
}

// applyFlags overrides config values with explicitly passed flags.
func applyFlags(cfg *config.Config, addr, directory, level string, pretty bool) {
	if addr != "" {
		cfg.Addr = addr
	}

	if directory != "" {
		cfg.Root = directory
	}

	if level != "" {
		cfg.Log.Level = level
	}

	if pretty {
		cfg.Log.Pretty = true
	}
}
