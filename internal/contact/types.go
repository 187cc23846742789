// Package contact implements the contact-form submission pipeline: bot
// verification, validation, sanitization, persistence and notification,
// in that order, with fail-fast semantics at every step.
package contact

import "time"

// Field length limits enforced by validation and sanitization.
const (
	MaxNameLength    = 100
	MaxEmailLength   = 100
	MaxMessageLength = 1000
)

// Submission is one raw contact-form payload. It lives only for the
// duration of a single pipeline run; the verification token is never
// persisted.
type Submission struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Message        string `json:"message"`
	RecaptchaToken string `json:"recaptchaToken"`
}

// Sanitized carries the cleaned fields of a submission that passed
// verification and validation. Only sanitized values reach the store
// and the notifier.
type Sanitized struct {
	Name    string
	Email   string
	Message string
}

// Message is a persisted contact message. ID and CreatedAt are assigned
// by the store at insert time and never change.
type Message struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
