package service

import "errors"

// Business errors returned by the service layer. The HTTP boundary maps them
// to transport status codes; inside the application they are matched with
// [errors.Is].
var (
	// ErrInvalidDataProvided is returned when a request is missing required
	// fields or carries values of the wrong shape.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned on login rejection. It deliberately
	// collapses "no such user" and "wrong password" into one signal to avoid
	// account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenIsExpiredOrInvalid is returned when a session token fails
	// verification for any reason: bad signature, malformed structure, or
	// elapsed expiry. Callers never learn which.
	ErrTokenIsExpiredOrInvalid = errors.New("session token is expired or invalid")

	// ErrTokenCreationFailed is returned when signing a new session token
	// fails. This is an internal failure, never attributable to the caller.
	ErrTokenCreationFailed = errors.New("session token creation failed")

	// ErrPasswordHashingFailed is returned when bcrypt cannot hash a
	// password. Fatal to the calling operation, surfaced as an internal
	// error, never swallowed.
	ErrPasswordHashingFailed = errors.New("password hashing failed")

	// ErrFolderOwnershipMismatch is returned when a note operation
	// references a folder that belongs to a different user. Cross-user
	// folder assignment is invalid.
	ErrFolderOwnershipMismatch = errors.New("folder belongs to a different user")
)
