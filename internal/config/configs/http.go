package configs

import "time"

// HTTP defines configuration for the dashboard's HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ReadTimeout bounds reading a full request including the body.
	ReadTimeout time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	// WriteTimeout must exceed the remote API timeout, otherwise slow
	// upstream responses are cut off mid-write.
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"45s"`
	// ShutdownTimeout is how long in-flight requests get on SIGTERM.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
