package intake

import "strings"

// HoneypotTriggered reports whether the configured trap field is present
// and non-empty after trimming. The field is invisible to humans, so any
// value in it marks the submission as automated. Callers must still return
// the normal success response so bots get no signal that they were caught.
func HoneypotTriggered(raw map[string]string, field string) bool {
	v, ok := raw[field]
	if !ok {
		return false
	}
	return strings.TrimSpace(v) != ""
}
