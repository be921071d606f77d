package configs

import "time"

// HTTP defines configuration for the HTTP server. A reward request stays
// open until the ad is closed, so WriteTimeout must exceed the longest
// expected watch time; zero disables it.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ReadHeaderTimeout bounds reading request headers.
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
	// WriteTimeout bounds a whole response, ad display included.
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"2m"`
	// ShutdownTimeout is how long in-flight requests get on shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
