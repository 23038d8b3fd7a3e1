package configs

// Redis configures the store backing sessions, connect markers and the
// remote data cache. An empty Addr selects the in-process memory store,
// which is only suitable for a single instance.
type Redis struct {
	// Addr accepts either a redis:// URL or a plain host:port.
	Addr string `env:"ADDRESS"`
}
