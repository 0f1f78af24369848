package store

import (
	"context"

	"github.com/notekeep/go-note-keeper/models"
)

// UserRepository is the persistence contract for user accounts.
//
// CreateUser must return [ErrCredentialAlreadyTaken] when the email or
// username is already registered, so that the service layer can surface a
// conflict rather than an internal failure. DeleteUser removes the user and
// every owned note and folder in a single transaction.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// FolderRepository is the persistence contract for note folders. Every
// operation is scoped to the owning user id; a folder that exists but belongs
// to a different user is reported as [ErrFolderNotFound].
//
// DeleteFolder detaches contained notes (folder_id set to NULL) in the same
// transaction as the folder removal.
type FolderRepository interface {
	CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error)
	GetFolderByID(ctx context.Context, folderID, userID int64) (models.Folder, error)
	GetFoldersByUser(ctx context.Context, userID int64) ([]models.Folder, error)
	UpdateFolderName(ctx context.Context, folderID, userID int64, name string) (models.Folder, error)
	DeleteFolder(ctx context.Context, folderID, userID int64) error
}

// NoteRepository is the persistence contract for notes. Every operation is
// scoped to the owning user id; a note that exists but belongs to a different
// user is reported as [ErrNoteNotFound].
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	GetNotesByUser(ctx context.Context, userID int64, deleted bool) ([]models.Note, error)
	GetNoteByID(ctx context.Context, noteID, userID int64) (models.Note, error)
	GetNotesByFolder(ctx context.Context, folderID, userID int64) ([]models.Note, error)
	UpdateNote(ctx context.Context, noteID, userID int64, update models.NoteUpdate) (models.Note, error)
	SetNoteDeleted(ctx context.Context, noteID, userID int64, deleted bool) (models.Note, error)
	DeleteNote(ctx context.Context, noteID, userID int64) error
}
