package intake

import "strings"

// Sanitize returns a copy of the raw fields with each value trimmed of
// leading/trailing whitespace, CR/LF runs collapsed to a single space, and
// other control characters removed. Missing values coerce to the empty
// string. Sanitizing an already-clean value is a no-op.
func Sanitize(raw map[string]string) map[string]string {
	clean := make(map[string]string, len(raw))
	for k, v := range raw {
		clean[k] = SanitizeValue(v)
	}
	return clean
}

// SanitizeValue sanitizes a single field value. CR and LF are collapsed to
// spaces rather than stripped so that multi-line input keeps its word
// boundaries while staying safe to embed in mail headers and log lines.
func SanitizeValue(v string) string {
	var b strings.Builder
	b.Grow(len(v))

	lastSpace := false
	for _, r := range v {
		switch {
		case r == '\r' || r == '\n':
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		case r < 0x20 || r == 0x7f:
			// drop other control characters
		default:
			b.WriteRune(r)
			lastSpace = r == ' '
		}
	}

	return strings.TrimSpace(b.String())
}
