package contact

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Client-facing validation failure reasons. These exact strings cross the
// HTTP boundary, so they are part of the API contract.
const (
	ReasonNoData         = "No data provided"
	ReasonInvalidName    = "Invalid name"
	ReasonInvalidEmail   = "Invalid email address"
	ReasonInvalidMessage = "Invalid message"
)

// Validate checks a submission's structural validity and returns a
// human-readable reason on the first failed check. It operates on
// trimmed but unsanitized input so that reasons reflect what the user
// actually typed. Expected invalid input is not an error condition.
func Validate(sub *Submission) (bool, string) {
	if sub == nil || (sub.Name == "" && sub.Email == "" && sub.Message == "") {
		return false, ReasonNoData
	}

	name := strings.TrimSpace(sub.Name)
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return false, ReasonInvalidName
	}

	email := strings.TrimSpace(sub.Email)
	if !validEmail(email) {
		return false, ReasonInvalidEmail
	}

	message := strings.TrimSpace(sub.Message)
	if message == "" || utf8.RuneCountInString(message) > MaxMessageLength {
		return false, ReasonInvalidMessage
	}

	return true, ""
}

// validEmail applies address syntax rules: a parseable bare address with
// a local part and a dotted domain, within the column limit. ParseAddress
// alone accepts display names and dotless domains, so both are checked
// explicitly.
func validEmail(email string) bool {
	if email == "" || utf8.RuneCountInString(email) > MaxEmailLength {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Name != "" || addr.Address != email {
		return false
	}
	_, domain, ok := strings.Cut(email, "@")
	if !ok || !strings.Contains(domain, ".") {
		return false
	}
	return true
}
