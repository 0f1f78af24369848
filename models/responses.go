package models

// SessionStatus is the response body of the session-status query.
// It reports identity without forcing a failure on absent or invalid
// tokens: an unauthenticated caller receives false plus null identity
// fields, never an error.
type SessionStatus struct {
	IsAuthenticated bool    `json:"isAuthenticated"`
	UserID          *int64  `json:"userId"`
	Username        *string `json:"username"`
}

// LoginResponse is returned on a successful login alongside the session
// cookie. The user id is included for client-side convenience only.
type LoginResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// MessageResponse is a generic single-message response body.
type MessageResponse struct {
	Message string `json:"message"`
}
