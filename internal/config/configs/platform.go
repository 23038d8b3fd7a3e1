package configs

import (
	"net/url"
	"time"
)

// Platform configures the client for the remote Ads Platform REST API.
type Platform struct {
	BaseURL url.URL       `env:"BASE_URL" envDefault:"http://localhost:5000/api"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
	// RateLimit is the sustained number of outbound requests per second.
	// Zero or negative disables throttling.
	RateLimit float64 `env:"RATE_LIMIT" envDefault:"20"`
	Burst     int     `env:"BURST" envDefault:"40"`
	// CacheTTL bounds how long fetched collections are served from cache
	// before they are fetched again.
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"1m"`
	// BulkParallelism caps concurrent requests issued by bulk status changes.
	BulkParallelism int `env:"BULK_PARALLELISM" envDefault:"4"`
}
