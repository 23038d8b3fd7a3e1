package domain

import "time"

// VerificationStatus is the platform's verdict on a registered Meta app.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "PENDING"
	VerificationVerified VerificationStatus = "VERIFIED"
	VerificationFailed   VerificationStatus = "FAILED"
)

// MetaApp is a developer app registered with the platform. Linked
// accounts are connected through one of them. The secret is write-only.
type MetaApp struct {
	ID                 string             `json:"id"`
	AppID              string             `json:"appId"`
	AppName            string             `json:"appName"`
	IsVerified         bool               `json:"isVerified"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	WebhookURL         string             `json:"webhookUrl,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
}

// MetaAppInput registers a new app.
type MetaAppInput struct {
	AppID      string `json:"appId" validate:"required"`
	AppSecret  string `json:"appSecret" validate:"required"`
	AppName    string `json:"appName" validate:"required"`
	WebhookURL string `json:"webhookUrl,omitempty" validate:"omitempty,url"`
}

// MetaAppPatch changes some fields of a registered app. Nil fields are
// left alone.
type MetaAppPatch struct {
	AppID      *string `json:"appId,omitempty" validate:"omitempty,min=1"`
	AppSecret  *string `json:"appSecret,omitempty" validate:"omitempty,min=1"`
	AppName    *string `json:"appName,omitempty" validate:"omitempty,min=1"`
	WebhookURL *string `json:"webhookUrl,omitempty" validate:"omitempty,url"`
}

// Empty reports whether the patch changes nothing.
func (p MetaAppPatch) Empty() bool {
	return p.AppID == nil && p.AppSecret == nil && p.AppName == nil && p.WebhookURL == nil
}

// Check validates the patch and rejects one with no fields.
func (p MetaAppPatch) Check() error {
	if p.Empty() {
		return &ValidationError{Message: "nothing to update"}
	}
	return Validate(p)
}

// MetaAppVerification is the outcome of asking the platform to verify an
// app's credentials.
type MetaAppVerification struct {
	Verified bool     `json:"verified"`
	Message  string   `json:"message,omitempty"`
	MetaApp  *MetaApp `json:"metaApp,omitempty"`
}
