package config

import (
	"fmt"
	"os"
	"time"

	json "github.com/json-iterator/go"
)

type (
	URIRequestLineSize struct {
		Default, Maximal int
	}

	HeadersSpace struct {
		Default, Maximal int
	}
)

type (
	URI struct {
		// RequestLineSize is a buffer storing the request line. Exceeding the maximal boundary
		// results in 400 Bad Request.
		RequestLineSize URIRequestLineSize
	}

	Headers struct {
		// Space limits the amount of memory occupied by the whole headers section, including
		// line terminators and discarded malformed lines. Exceeding the maximal boundary
		// results in 431 Request Header Fields Too Large.
		Space HeadersSpace
		// Prealloc is the initial capacity of the request headers storage.
		Prealloc int
	}

	NET struct {
		// ReadBufferSize is a size of buffer in bytes which will be used to read from
		// socket
		ReadBufferSize int
		// WriteBufferSize is the initial capacity of the buffer the response is rendered into.
		WriteBufferSize int
		// ReadTimeout limits how long a single read from the socket may block. Zero disables
		// the deadline, so a stalled client holds its goroutine forever.
		ReadTimeout Duration `test:"nullable"`
	}

	Log struct {
		// Level is one of trace, debug, info, warn, error.
		Level string
		// Pretty switches from JSON lines to the human-readable console format.
		Pretty bool `test:"nullable"`
	}
)

// Config holds settings used across the server. It's built once at startup and must
// never be modified after the server started, as every connection reads it concurrently.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	// Addr is the address the listener is bound to.
	Addr string
	// Root is the base directory files are served from.
	Root    string
	URI     URI
	Headers Headers
	NET     NET
	Log     Log
}

// Default returns default config.
func Default() *Config {
	return &Config{
		Addr: "127.0.0.1:4221",
		Root: ".",
		URI: URI{
			RequestLineSize: URIRequestLineSize{
				Default: 2 * 1024,
				Maximal: 16 * 1024,
			},
		},
		Headers: Headers{
			Space: HeadersSpace{
				Default: 1 * 1024,
				// there also might be extremely long cookies.
				Maximal: 64 * 1024,
			},
			Prealloc: 10,
		},
		NET: NET{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 4 * 1024,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads a JSON config file on top of the defaults, so omitted fields keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg := Default()
	if err = json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Duration is a time.Duration represented as a string in JSON, e.g. "30s".
type Duration time.Duration

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return err
	}

	*d = Duration(parsed)
	return nil
}
