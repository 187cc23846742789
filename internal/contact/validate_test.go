package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func valid() *Submission {
	return &Submission{
		Name:           "Ana",
		Email:          "ana@x.com",
		Message:        "Hi",
		RecaptchaToken: "tok",
	}
}

func TestValidateAcceptsWellFormedSubmission(t *testing.T) {
	ok, reason := Validate(valid())
	assert.True(t, ok)
	assert.Empty(t, reason)
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Submission)
		reason string
	}{
		{"nil submission", nil, ReasonNoData},
		{"all fields empty", func(s *Submission) { s.Name, s.Email, s.Message = "", "", "" }, ReasonNoData},
		{"empty name", func(s *Submission) { s.Name = "" }, ReasonInvalidName},
		{"whitespace name", func(s *Submission) { s.Name = "   " }, ReasonInvalidName},
		{"name of 101 chars", func(s *Submission) { s.Name = strings.Repeat("a", 101) }, ReasonInvalidName},
		{"not an email", func(s *Submission) { s.Email = "not-an-email" }, ReasonInvalidEmail},
		{"missing domain", func(s *Submission) { s.Email = "ana@" }, ReasonInvalidEmail},
		{"dotless domain", func(s *Submission) { s.Email = "ana@localhost" }, ReasonInvalidEmail},
		{"display name form", func(s *Submission) { s.Email = "Ana <ana@x.com>" }, ReasonInvalidEmail},
		{"empty email", func(s *Submission) { s.Email = "" }, ReasonInvalidEmail},
		{"email over limit", func(s *Submission) { s.Email = strings.Repeat("a", 95) + "@x.com" }, ReasonInvalidEmail},
		{"empty message", func(s *Submission) { s.Message = "" }, ReasonInvalidMessage},
		{"message of 1001 chars", func(s *Submission) { s.Message = strings.Repeat("m", 1001) }, ReasonInvalidMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sub *Submission
			if tt.mutate != nil {
				sub = valid()
				tt.mutate(sub)
			}
			ok, reason := Validate(sub)
			assert.False(t, ok)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestValidateBoundaryLengths(t *testing.T) {
	sub := valid()
	sub.Name = strings.Repeat("a", 100)
	sub.Message = strings.Repeat("m", 1000)
	ok, reason := Validate(sub)
	assert.True(t, ok, reason)
}

func TestValidateTrimsBeforeChecking(t *testing.T) {
	sub := valid()
	sub.Email = "  ana@x.com  "
	ok, _ := Validate(sub)
	assert.True(t, ok)

	// 100 characters once trimmed is still within the limit
	sub = valid()
	sub.Name = "  " + strings.Repeat("a", 100) + "  "
	ok, _ = Validate(sub)
	assert.True(t, ok)
}
