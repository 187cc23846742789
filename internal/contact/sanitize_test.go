package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStripsHTMLTags(t *testing.T) {
	assert.Equal(t, "hi", Sanitize("<b>hi</b>", 100))
	assert.Equal(t, "alert1", Sanitize("<script>alert(1)</script>", 100))
	assert.Equal(t, "before  after", Sanitize("before <a href=\"x\"> after", 100))
}

func TestSanitizeStripsDisallowedCharacters(t *testing.T) {
	assert.Equal(t, "ana@x.com", Sanitize("ana@x.com", 100))
	assert.Equal(t, "hello world", Sanitize("hello, world!", 100))
	assert.Equal(t, "a-b_c.d", Sanitize("a-b_c.d", 100))
	assert.Equal(t, "drop table", Sanitize("drop table;'--", 100))
}

func TestSanitizeTruncates(t *testing.T) {
	assert.Equal(t, "abcde", Sanitize("abcdefgh", 5))
	assert.Equal(t, "abc", Sanitize("abc", 5))
}

func TestSanitizeEmptyInput(t *testing.T) {
	assert.Equal(t, "", Sanitize("", 100))
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"<b>hi</b>",
		"plain text",
		"mixed <i>tags</i> & symbols!!",
		"ana@x.com",
		strings.Repeat("x", 200),
	}
	for _, in := range inputs {
		once := Sanitize(in, 50)
		assert.Equal(t, once, Sanitize(once, 50), "sanitize not idempotent for %q", in)
	}
}

func TestSanitizeKeepsUnicodeLetters(t *testing.T) {
	assert.Equal(t, "José Muñoz", Sanitize("José Muñoz", 100))
}
