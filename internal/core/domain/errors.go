package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnauthorized means the platform no longer accepts the session
	// token. The session must be dropped and the user sent to log in.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden means the token is valid but may not touch the entity.
	// The session survives.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is returned for unknown or foreign entities.
	ErrNotFound = errors.New("not found")
	// ErrSubmissionInProgress rejects a second submit while one is pending.
	ErrSubmissionInProgress = errors.New("submission already in progress")
	// ErrDraftSubmitted rejects changes to a draft that became a campaign.
	ErrDraftSubmitted = errors.New("draft already submitted")
	// ErrStepOutOfRange is returned when advancing past the review step or
	// submitting before reaching it.
	ErrStepOutOfRange = errors.New("step out of range")
)

// FieldError is a validation failure scoped to one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError blocks only the action that produced it. It is
// recovered locally by correcting the listed fields.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	msg := e.Message
	if msg == "" {
		msg = "validation failed"
	}
	return fmt.Sprintf("%s on fields: %s", msg, strings.Join(names, ", "))
}

// TransientError wraps network and server failures. The action that
// triggered it may be retried by the user; nothing retries automatically.
type TransientError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *TransientError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: upstream status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// IsTransient reports whether err is retryable by the user.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// AsValidation extracts a ValidationError from err.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
