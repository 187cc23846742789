package logger

import "strings"

// RedactEmail masks a submitter's email address for safe logging.
// "ana.lopez@example.com" → "an***@example.com". Local parts of two
// characters or fewer are fully masked, and anything that does not look
// like an address at all becomes "***@***".
func RedactEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return "***@***"
	}
	if len(local) > 2 {
		return local[:2] + "***@" + domain
	}
	return "***@" + domain
}
