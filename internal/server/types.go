package server

import "portfolio-contact/internal/intake"

// AcceptedResponse is returned for every accepted submission, including
// honeypot discards and simulate mode. ID is null when the channel had no
// external id to report.
type AcceptedResponse struct {
	Success bool    `json:"success"`
	ID      *string `json:"id"`
}

// ErrorResponse is the generic error body
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries the full list of field violations
type ValidationErrorResponse struct {
	Error   string              `json:"error"`
	Details []intake.FieldError `json:"details"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status  string  `json:"status"`
	Uptime  float64 `json:"uptime"`
	Version string  `json:"version"`
}
