package models

import "time"

// User represents an account entity used for authentication and
// resource ownership. Sensitive fields must never be exposed outside
// the store / auth service boundary.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique display handle chosen at registration.
	Username string `json:"username"`

	// Email is the unique address used as the login identifier.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized and never leaves the store/auth boundary.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// UserUpdate describes a partial update of a user record.
// Nil fields are left untouched. The password, when present, must already
// be hashed by the service layer before it reaches the store.
type UserUpdate struct {
	Username     *string `json:"username,omitempty"`
	Email        *string `json:"email,omitempty"`
	PasswordHash *string `json:"-"`
}

// IsEmpty reports whether the update carries no effective changes.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.Email == nil && u.PasswordHash == nil
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
