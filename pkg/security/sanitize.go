package security

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips markup from free-text lead fields before they are stored
// or interpolated into notification emails.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Text removes every HTML tag and returns plain, trimmed text.
// bluemonday escapes the surviving text, so entities are decoded back;
// templates escape again on output.
func (s *Sanitizer) Text(value string) string {
	if value == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(value)))
}
