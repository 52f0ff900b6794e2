package intake

import (
	"fmt"
	"net/mail"
	"unicode/utf8"
)

// Validator checks sanitized contact fields against the submission schema
type Validator struct {
	maxMessageLen int
}

// NewValidator creates a validator. maxMessageLen bounds the message field;
// values <= 0 fall back to the default.
func NewValidator(maxMessageLen int) *Validator {
	if maxMessageLen <= 0 {
		maxMessageLen = DefaultMaxMsgLen
	}
	return &Validator{maxMessageLen: maxMessageLen}
}

// Validate checks the sanitized fields and returns either a Submission or
// the full list of field errors. All violations are collected in one pass
// so the caller can report every problem at once. Unknown fields are
// dropped, not rejected.
func (v *Validator) Validate(fields map[string]string) (Submission, []FieldError) {
	var errs []FieldError

	name := fields["name"]
	if n := utf8.RuneCountInString(name); n < 1 {
		errs = append(errs, FieldError{Message: "name is required", Path: "name"})
	} else if n > MaxNameLen {
		errs = append(errs, FieldError{
			Message: fmt.Sprintf("name must be at most %d characters", MaxNameLen),
			Path:    "name",
		})
	}

	email := fields["email"]
	if email == "" {
		errs = append(errs, FieldError{Message: "email is required", Path: "email"})
	} else if !validAddress(email) {
		errs = append(errs, FieldError{Message: "email must be a valid address", Path: "email"})
	}

	message := fields["message"]
	if n := utf8.RuneCountInString(message); n < 1 {
		errs = append(errs, FieldError{Message: "message is required", Path: "message"})
	} else if n > v.maxMessageLen {
		errs = append(errs, FieldError{
			Message: fmt.Sprintf("message must be at most %d characters", v.maxMessageLen),
			Path:    "message",
		})
	}

	if len(errs) > 0 {
		return Submission{}, errs
	}

	return Submission{Name: name, Email: email, Message: message}, nil
}

// validAddress reports whether s is a bare RFC 5322 address. Addresses with
// a display name ("Jane <jane@example.com>") are rejected: the form field
// carries the address alone. Deliverability is not checked.
func validAddress(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s
}
