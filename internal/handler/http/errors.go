package http

import "errors"

// Sentinel errors used by the authentication middleware and the user
// handlers. Callers can match against them with [errors.Is].
var (
	// ErrMissingSessionCookie is returned by the auth middleware when the
	// incoming request carries no session cookie at all.
	ErrMissingSessionCookie = errors.New("missing session cookie")

	// ErrAccessToDifferentUser is returned when an authenticated caller
	// addresses a user resource whose id differs from their own.
	ErrAccessToDifferentUser = errors.New("cannot access another user's account")
)
