package configs

import "time"

// Drafts configures retention of unfinished campaign drafts.
type Drafts struct {
	Retention time.Duration `env:"RETENTION" envDefault:"720h"`
	// JanitorSchedule is a cron spec; an empty value disables the janitor.
	JanitorSchedule string `env:"JANITOR_SCHEDULE" envDefault:"@hourly"`
}
