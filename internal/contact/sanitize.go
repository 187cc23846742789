package contact

import "regexp"

var (
	htmlTagRegex    = regexp.MustCompile(`<[^>]+>`)
	disallowedRegex = regexp.MustCompile(`[^\p{L}\p{N}_\s@.\-]`)
)

// Sanitize strips HTML-tag-like substrings, removes any character outside
// the allowed set (letters, digits, underscore, whitespace, @, ., -) and
// truncates the result to maxLength characters. The transformation is
// lossy and one-way. An empty input sanitizes to an empty string.
func Sanitize(text string, maxLength int) string {
	if text == "" {
		return ""
	}
	text = htmlTagRegex.ReplaceAllString(text, "")
	text = disallowedRegex.ReplaceAllString(text, "")
	runes := []rune(text)
	if len(runes) > maxLength {
		return string(runes[:maxLength])
	}
	return text
}

// sanitizeAll applies per-field limits to a trimmed, validated submission.
func sanitizeAll(name, email, message string) Sanitized {
	return Sanitized{
		Name:    Sanitize(name, MaxNameLength),
		Email:   Sanitize(email, MaxEmailLength),
		Message: Sanitize(message, MaxMessageLength),
	}
}
