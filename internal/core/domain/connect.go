package domain

import "time"

// Connect callback error codes sent back by the provider redirect.
const (
	ConnectErrConnectionFailed = "connection_failed"
	ConnectErrAccessDenied     = "access_denied"
	ConnectErrInvalidRequest   = "invalid_request"
)

const (
	ConnectSuccessMessage = "Meta account connected successfully!"
	connectDefaultMessage = "An error occurred while connecting your Meta account."
)

var connectErrorMessages = map[string]string{
	ConnectErrConnectionFailed: "Failed to connect Meta account. Please try again.",
	ConnectErrAccessDenied:     "Access denied. You need to grant permissions to connect your Meta account.",
	ConnectErrInvalidRequest:   "Invalid request. Please try connecting again.",
}

// ConnectErrorMessage maps a callback error code to the message shown to
// the user. Unknown codes share one generic message.
func ConnectErrorMessage(code string) string {
	if msg, ok := connectErrorMessages[code]; ok {
		return msg
	}
	return connectDefaultMessage
}

// ConnectStatus is the result of returning from the provider.
type ConnectStatus string

const (
	ConnectSucceeded ConnectStatus = "success"
	ConnectFailed    ConnectStatus = "error"
	// ConnectUnknown means the callback carried neither outcome.
	ConnectUnknown ConnectStatus = "unknown"
)

// ConnectOutcome tells the browser what to show and where to go next.
type ConnectOutcome struct {
	Status        ConnectStatus `json:"status"`
	Message       string        `json:"message,omitempty"`
	RedirectTo    string        `json:"redirectTo"`
	RedirectAfter time.Duration `json:"-"`
	// Refetched is set when the accounts cache was dropped.
	Refetched bool `json:"refetched"`
}
