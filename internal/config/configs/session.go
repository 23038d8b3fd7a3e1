package configs

import "time"

// Session configures how browser sessions are issued and expired.
type Session struct {
	CookieName string `env:"COOKIE_NAME" envDefault:"ads_session"`
	// TTL applies when the remote token carries no readable expiry.
	TTL time.Duration `env:"TTL" envDefault:"24h"`
	// ExpiryBuffer treats a session as expired this long before the token
	// actually does.
	ExpiryBuffer time.Duration `env:"EXPIRY_BUFFER" envDefault:"5m"`
	// Retention keeps expired sessions in the store past their expiry so
	// the next request still reaches the login redirect.
	Retention    time.Duration `env:"RETENTION" envDefault:"168h"`
	SecureCookie bool          `env:"SECURE_COOKIE" envDefault:"false"`
	LoginView    string        `env:"LOGIN_VIEW" envDefault:"/login"`
}
