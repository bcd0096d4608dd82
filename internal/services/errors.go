// Package services defines the business logic for accounts and habits.
// This file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the
// handler layer.
package services

import "errors"

// Account-related errors.
var (
	// ErrEmailTaken is returned when a signup uses an email that already
	// belongs to an account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUsernameTaken is returned when a signup uses a username that already
	// belongs to an account.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials is returned on login when the email is unknown or
	// the password does not match. The two cases are deliberately
	// indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrWeakPassword is returned when a signup password is shorter than the
	// minimum length.
	ErrWeakPassword = errors.New("password too short")

	// ErrInvalidSignup is returned when required signup fields are missing or
	// malformed.
	ErrInvalidSignup = errors.New("invalid signup data")
)

// Habit-related errors.
var (
	// ErrHabitNotFound indicates that the requested habit does not exist or is
	// not visible to the current user.
	ErrHabitNotFound = errors.New("habit not found")

	// ErrAlreadyLogged is returned when a habit already has a log entry for
	// today's UTC date. The log operation is idempotent per calendar day; this
	// is a client error, not a fault.
	ErrAlreadyLogged = errors.New("habit already logged today")

	// ErrInvalidFrequency indicates an unrecognized recurrence rule. On input
	// it is a validation error; coming from stored data it signals corruption
	// or a missed migration and is surfaced as a server error, never silently
	// defaulted to a guessed rule.
	ErrInvalidFrequency = errors.New("invalid habit frequency")

	// ErrEmptyHabitName is returned when a habit is created or renamed with a
	// blank name.
	ErrEmptyHabitName = errors.New("habit name is empty")

	// ErrPartnerNotFound is returned when an accountability partner username
	// does not resolve to a registered user.
	ErrPartnerNotFound = errors.New("accountability partner not found")
)
