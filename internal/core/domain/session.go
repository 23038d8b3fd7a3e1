package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the authenticated dashboard user as known to the platform.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar,omitempty"`
	MetaApps  []MetaApp `json:"MetaApps,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Session binds a browser to a platform token. The platform remains the
// authority on token validity; ExpiresAt is only a local hint.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"userId"`
	User      User      `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// Expired reports whether the session should be considered over at now,
// treating the last buffer of its lifetime as already expired.
func (s Session) Expired(now time.Time, buffer time.Duration) bool {
	return now.After(s.ExpiresAt.Add(-buffer))
}

// Credentials are used to log in.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Registration creates a new platform user.
type Registration struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}

// ProfileUpdate replaces the editable profile fields.
type ProfileUpdate struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Avatar string `json:"avatar,omitempty" validate:"omitempty,url"`
}

// PasswordChange replaces the password after confirming the current one.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,nefield=CurrentPassword"`
}

// AuthResult is what the platform returns on login or registration.
type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
