// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys, session token
// generation and validation, and HTTP response writing.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user identifier in
// the request context. Set by the auth middleware and read with
// GetUserIDFromContext by protected handlers.
var UserIDCtxKey = contextKey("userID")

// UsernameCtxKey is the key used to store the authenticated user's display
// handle in the request context, alongside UserIDCtxKey.
var UsernameCtxKey = contextKey("username")

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetUsernameFromContext retrieves the authenticated username from the
// context. The ok flag follows the same semantics as GetUserIDFromContext.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok
}
