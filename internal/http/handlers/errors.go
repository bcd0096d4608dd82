// Package handlers defines HTTP-layer error codes used across all API
// endpoints.
//
// This file centralizes symbolic error code constants that are mapped to HTTP
// responses via the fail() helper. The codes give clients a stable,
// machine-readable taxonomy alongside human-readable messages.
//
// Conventions:
//   - Codes are lowercase snake_case.
//   - Generic codes (bad_request, unauthorized, conflict, ...) mirror common
//     HTTP status semantics.
//   - Domain-specific codes (already_logged, invalid_frequency, ...) carry
//     business-logic outcomes that status alone cannot convey.
//
// Example response:
//
//	{
//	  "request_id": "e1b9be03-4999-4289-9f03-999b042d65d6",
//	  "code": "already_logged",
//	  "message": "habit already logged today"
//	}
package handlers

const (
	ErrCodeBadRequest   = "bad_request"
	ErrCodeUnauthorized = "unauthorized"
	ErrCodeForbidden    = "forbidden"
	ErrCodeNotFound     = "not_found"
	ErrCodeConflict     = "conflict"
	ErrCodeRateLimited  = "too_many_requests"
	ErrCodeInternal     = "internal_error"

	// Domain-specific:
	ErrCodeAlreadyLogged    = "already_logged"
	ErrCodeInvalidFrequency = "invalid_frequency"
	ErrCodeEmailTaken       = "email_taken"
	ErrCodeUsernameTaken    = "username_taken"
	ErrCodePartnerNotFound  = "partner_not_found"
	ErrCodeMethodNotAllowed = "method_not_allowed"
)
