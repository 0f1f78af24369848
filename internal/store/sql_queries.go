package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/notekeep/go-note-keeper/models"
)

const (
	userColumns = "user_id, username, email, password_hash, created_at"

	createUser = `INSERT INTO users (username, email, password_hash)
	VALUES ($1, $2, $3)
	RETURNING user_id, username, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, username, email, password_hash, created_at
	FROM users
	WHERE email = $1;`

	findUserByID = `SELECT user_id, username, email, password_hash, created_at
	FROM users
	WHERE user_id = $1;`

	deleteUserNotes   = `DELETE FROM notes WHERE user_id = $1;`
	deleteUserFolders = `DELETE FROM folders WHERE user_id = $1;`
	deleteUser        = `DELETE FROM users WHERE user_id = $1;`

	folderColumns = "folder_id, name, user_id, created_at"

	createFolder = `INSERT INTO folders (name, user_id)
	VALUES ($1, $2)
	RETURNING folder_id, name, user_id, created_at;`

	getFolderByID = `SELECT folder_id, name, user_id, created_at
	FROM folders
	WHERE folder_id = $1 AND user_id = $2;`

	getFoldersByUser = `SELECT folder_id, name, user_id, created_at
	FROM folders
	WHERE user_id = $1
	ORDER BY folder_id ASC;`

	updateFolderName = `UPDATE folders
	SET name = $1
	WHERE folder_id = $2 AND user_id = $3
	RETURNING folder_id, name, user_id, created_at;`

	detachFolderNotes = `UPDATE notes
	SET folder_id = NULL, updated_at = NOW()
	WHERE folder_id = $1 AND user_id = $2;`

	deleteFolder = `DELETE FROM folders
	WHERE folder_id = $1 AND user_id = $2;`

	noteColumns = "note_id, title, content, user_id, folder_id, deleted, created_at, updated_at"

	createNote = `INSERT INTO notes (title, content, user_id, folder_id)
	VALUES ($1, $2, $3, $4)
	RETURNING note_id, title, content, user_id, folder_id, deleted, created_at, updated_at;`

	getNotesByUser = `SELECT note_id, title, content, user_id, folder_id, deleted, created_at, updated_at
	FROM notes
	WHERE user_id = $1 AND deleted = $2
	ORDER BY note_id ASC;`

	getNoteByID = `SELECT note_id, title, content, user_id, folder_id, deleted, created_at, updated_at
	FROM notes
	WHERE note_id = $1 AND user_id = $2;`

	getNotesByFolder = `SELECT note_id, title, content, user_id, folder_id, deleted, created_at, updated_at
	FROM notes
	WHERE folder_id = $1 AND user_id = $2
	ORDER BY note_id ASC;`

	setNoteDeleted = `UPDATE notes
	SET deleted = $1, updated_at = NOW()
	WHERE note_id = $2 AND user_id = $3
	RETURNING note_id, title, content, user_id, folder_id, deleted, created_at, updated_at;`

	deleteNote = `DELETE FROM notes
	WHERE note_id = $1 AND user_id = $2;`
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// dollar placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateUserQuery builds a partial UPDATE for the users table from a
// [models.UserUpdate]. Returns [ErrBuildingSQLQuery] when the update carries
// no changes, since an empty SET clause is not valid SQL.
func buildUpdateUserQuery(userID int64, update models.UserUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, fmt.Errorf("%w: no user fields to update", ErrBuildingSQLQuery)
	}

	builder := psql.Update("users")

	if update.Username != nil {
		builder = builder.Set("username", *update.Username)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.PasswordHash != nil {
		builder = builder.Set("password_hash", *update.PasswordHash)
	}

	query, args, err := builder.
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateNoteQuery builds a partial UPDATE for the notes table from a
// [models.NoteUpdate]. The updated_at column is always bumped. Returns
// [ErrBuildingSQLQuery] when the update carries no changes.
func buildUpdateNoteQuery(noteID, userID int64, update models.NoteUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, fmt.Errorf("%w: no note fields to update", ErrBuildingSQLQuery)
	}

	builder := psql.Update("notes").Set("updated_at", sq.Expr("NOW()"))

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}
	switch {
	case update.SetFolderNil:
		builder = builder.Set("folder_id", nil)
	case update.FolderID != nil:
		builder = builder.Set("folder_id", *update.FolderID)
	}

	query, args, err := builder.
		Where(sq.Eq{"note_id": noteID, "user_id": userID}).
		Suffix("RETURNING " + noteColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
