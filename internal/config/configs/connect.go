package configs

import "time"

// Connect configures the Meta account OAuth connect flow.
type Connect struct {
	// MarkerTTL is how long a "connect in progress" marker survives while
	// the user is away at the provider.
	MarkerTTL    time.Duration `env:"MARKER_TTL" envDefault:"15m"`
	SuccessDelay time.Duration `env:"SUCCESS_DELAY" envDefault:"2s"`
	FailureDelay time.Duration `env:"FAILURE_DELAY" envDefault:"3s"`
	DefaultView  string        `env:"DEFAULT_VIEW" envDefault:"/dashboard"`
}
