package service

import (
	"context"

	"github.com/notekeep/go-note-keeper/models"
)

// AuthService handles credential verification and the session-token
// lifecycle. It is the only component that sees plaintext passwords, and it
// never logs or persists them.
type AuthService interface {
	// ValidateCredentials looks up the user by email and verifies the
	// plaintext password against the stored bcrypt hash. Both an unknown
	// email and a wrong password yield ErrInvalidCredentials with no
	// distinguishing signal.
	ValidateCredentials(ctx context.Context, email, password string) (models.User, error)

	// CreateToken issues a signed session token for the given user, carrying
	// the user id as subject and the username as a custom claim.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates and parses a raw session token string. Any
	// validation failure is normalised to ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// SessionStatus derives the session state from a raw token string
	// without forcing a failure: an absent or invalid token yields an
	// unauthenticated status, never an error.
	SessionStatus(ctx context.Context, tokenString string) models.SessionStatus
}

// UserService manages user accounts: registration, profile reads and
// updates, and account deletion with its ownership cascade.
type UserService interface {
	CreateUser(ctx context.Context, username, email, password string) (models.User, error)
	GetUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateUser applies a partial profile update. A request that produces
	// zero effective changes is a no-op success returning the current
	// record.
	UpdateUser(ctx context.Context, userID int64, update UserUpdateRequest) (models.User, error)

	// DeleteUser removes the account and all owned notes and folders as one
	// atomic unit.
	DeleteUser(ctx context.Context, userID int64) error
}

// UserUpdateRequest carries the optional profile fields of a user update.
// Password, when present, is plaintext and is hashed by the service before
// it reaches the store.
type UserUpdateRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// FolderService manages note folders scoped to an owning user id. The owner
// id is always passed explicitly by the caller; the service never derives it
// from ambient state.
type FolderService interface {
	CreateFolder(ctx context.Context, ownerID int64, name string) (models.Folder, error)
	ListFoldersByOwner(ctx context.Context, ownerID int64) ([]models.Folder, error)
	RenameFolder(ctx context.Context, folderID, ownerID int64, name string) (models.Folder, error)

	// DeleteFolder removes the folder; contained notes are detached, not
	// deleted.
	DeleteFolder(ctx context.Context, folderID, ownerID int64) error
}

// NoteService manages notes scoped to an owning user id, including the
// soft-delete (trash) lifecycle.
type NoteService interface {
	// CreateNote creates a note with deleted=false. When folderID is
	// non-nil the folder must exist and belong to ownerID, otherwise
	// ErrFolderOwnershipMismatch is returned.
	CreateNote(ctx context.Context, ownerID int64, title, content string, folderID *int64) (models.Note, error)

	ListActiveNotesByOwner(ctx context.Context, ownerID int64) ([]models.Note, error)
	ListTrashedNotesByOwner(ctx context.Context, ownerID int64) ([]models.Note, error)
	GetNoteByID(ctx context.Context, noteID, ownerID int64) (models.Note, error)
	ListNotesByFolder(ctx context.Context, folderID, ownerID int64) ([]models.Note, error)

	// UpdateNote applies a partial update. A folder re-assignment is
	// validated against the owner the same way as in CreateNote.
	UpdateNote(ctx context.Context, noteID, ownerID int64, update models.NoteUpdate) (models.Note, error)

	// SetNoteDeleted moves the note to the trash (true) or restores it
	// (false). Idempotent.
	SetNoteDeleted(ctx context.Context, noteID, ownerID int64, deleted bool) (models.Note, error)

	// DeleteNote permanently removes the note regardless of trash state.
	DeleteNote(ctx context.Context, noteID, ownerID int64) error
}
