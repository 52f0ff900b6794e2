package intake

// Field length limits for contact submissions
const (
	MaxNameLen       = 120
	DefaultMaxMsgLen = 5000
)

// Submission represents a validated contact form submission. It lives for
// the duration of one request and is never persisted.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// FieldError describes a single validation failure for one field
type FieldError struct {
	Message string `json:"message"`
	Path    string `json:"path"`
}
