// Package notify delivers one email notification per accepted contact
// submission. Two transports are provided: SMTP (default) and AWS SES,
// selected by configuration. Delivery is synchronous and attempted
// exactly once; there is no queue and no retry.
package notify

import (
	"fmt"
	"strings"

	"github.com/arina-sh/contact-api/internal/contact"
)

// buildMessage renders the notification subject and plain-text body for
// a sanitized submission. The subject identifies the site and the sender
// name so operators can triage from the inbox list alone.
func buildMessage(siteName string, s contact.Sanitized) (subject, body string) {
	subject = fmt.Sprintf("New %s Contact Form Submission from %s", siteName, s.Name)
	body = fmt.Sprintf(`Name: %s
Email: %s

Message:
%s

---
This message was sent from your portfolio website contact form.
`, s.Name, s.Email, s.Message)
	return subject, body
}

// formatRFC822 assembles a complete mail message with CRLF line endings.
// Reply-To is set to the submitter's address so operators can answer
// directly from their mail client.
func formatRFC822(from, to, replyTo, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Reply-To: %s\r\n", replyTo)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return []byte(b.String())
}
