package domain

import "errors"

// ValidationError reports malformed, missing, or out-of-range input. The
// reason is user-facing and re-rendered with the form.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// ConflictError reports a uniqueness violation on email or phone number,
// whether caught at pre-check or surfaced by the store at commit.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

// NotFoundError reports an absent operation target.
type NotFoundError struct {
	Reason string
}

func (e *NotFoundError) Error() string { return e.Reason }

var (
	// ErrInvalidCredentials covers both unknown email and wrong password, so
	// login failures do not leak which accounts exist.
	ErrInvalidCredentials = errors.New("email or password incorrect")

	// ErrForbidden marks a role mismatch on a gated operation.
	ErrForbidden = errors.New("access forbidden")

	// ErrInvalidSession marks a missing, expired, or tampered session.
	ErrInvalidSession = errors.New("invalid session")

	// ErrInvalidTransition marks a status change rejected by the transition
	// graph (only when enforcement is enabled).
	ErrInvalidTransition = errors.New("invalid status transition")
)
