package intent

import "strings"

// Normalize lower-cases and trims q.
// ok is false when q is empty or whitespace-only. Normalize is idempotent.
func Normalize(q string) (text string, ok bool) {
	text = strings.ToLower(strings.TrimSpace(q))
	return text, text != ""
}
