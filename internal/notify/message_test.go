package notify

import (
	"strings"
	"testing"

	"github.com/arina-sh/contact-api/internal/contact"
	"github.com/stretchr/testify/assert"
)

func TestBuildMessage(t *testing.T) {
	subject, body := buildMessage("arina.sh", contact.Sanitized{
		Name:    "Ana",
		Email:   "ana@x.com",
		Message: "Hi there",
	})

	assert.Equal(t, "New arina.sh Contact Form Submission from Ana", subject)
	assert.Contains(t, body, "Name: Ana")
	assert.Contains(t, body, "Email: ana@x.com")
	assert.Contains(t, body, "Message:\nHi there")
	assert.Contains(t, body, "portfolio website contact form")
}

func TestFormatRFC822SetsReplyTo(t *testing.T) {
	msg := string(formatRFC822("noreply@arina.sh", "inbox@arina.sh", "ana@x.com", "Subject line", "body text\nsecond line"))

	assert.Contains(t, msg, "From: noreply@arina.sh\r\n")
	assert.Contains(t, msg, "To: inbox@arina.sh\r\n")
	assert.Contains(t, msg, "Reply-To: ana@x.com\r\n")
	assert.Contains(t, msg, "Subject: Subject line\r\n")
	assert.Contains(t, msg, "Content-Type: text/plain; charset=utf-8\r\n")

	// Headers and body are separated by a blank line, body uses CRLF
	_, body, found := strings.Cut(msg, "\r\n\r\n")
	assert.True(t, found)
	assert.Equal(t, "body text\r\nsecond line", body)
}
