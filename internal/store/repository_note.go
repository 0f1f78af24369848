package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/notekeep/go-note-keeper/internal/logger"
	"github.com/notekeep/go-note-keeper/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// Every query filters by the owning user id, so a note belonging to a
// different user is indistinguishable from a missing one.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

func scanNote(row interface{ Scan(...any) error }, note *models.Note) error {
	return row.Scan(
		&note.NoteID,
		&note.Title,
		&note.Content,
		&note.UserID,
		&note.FolderID,
		&note.Deleted,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
}

// CreateNote persists a new note and returns it with server-assigned fields
// (NoteID, Deleted=false, timestamps). The folder association, when present,
// must already be validated by the service layer against the owning user.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createNote, note.Title, note.Content, note.UserID, note.FolderID)

	var created models.Note
	if err := scanNote(row, &created); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Int64("user_id", note.UserID).Msg("failed to create note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// GetNotesByUser returns the user's notes filtered by trash state in
// ascending note_id order: deleted=false yields the active list,
// deleted=true the trash listing.
func (r *noteRepository) GetNotesByUser(ctx context.Context, userID int64, deleted bool) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getNotesByUser, userID, deleted)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetNotesByUser").Int64("user_id", userID).Msg("failed to query notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return r.collectNotes(ctx, rows, userID)
}

// GetNoteByID retrieves a single note scoped to its owner.
// Returns [ErrNoteNotFound] when the note does not exist or is owned by a
// different user.
func (r *noteRepository) GetNoteByID(ctx context.Context, noteID, userID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	var note models.Note
	row := r.db.QueryRowContext(ctx, getNoteByID, noteID, userID)
	if err := scanNote(row, &note); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).Str("func", "*noteRepository.GetNoteByID").Int64("note_id", noteID).Msg("failed to scan note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// GetNotesByFolder returns every note placed in the given folder, scoped to
// the owning user, in ascending note_id order.
func (r *noteRepository) GetNotesByFolder(ctx context.Context, folderID, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getNotesByFolder, folderID, userID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetNotesByFolder").Int64("folder_id", folderID).Msg("failed to query folder notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return r.collectNotes(ctx, rows, userID)
}

func (r *noteRepository) collectNotes(ctx context.Context, rows *sql.Rows, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	notes := make([]models.Note, 0, 50)
	for rows.Next() {
		var note models.Note
		if err := scanNote(rows, &note); err != nil {
			log.Err(err).Str("func", "*noteRepository.collectNotes").Int64("user_id", userID).Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.collectNotes").Int64("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// UpdateNote applies a partial update (title, content, folder association)
// and returns the updated row with a bumped updated_at.
//
// Returns [ErrNoteNotFound] when the note does not exist or is owned by a
// different user, and [ErrBuildingSQLQuery] for an empty update.
func (r *noteRepository) UpdateNote(ctx context.Context, noteID, userID int64, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(noteID, userID, update)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Int64("note_id", noteID).Msg("failed to build update query")
		return models.Note{}, err
	}

	var note models.Note
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanNote(row, &note); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Int64("note_id", noteID).Msg("failed to execute update")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return note, nil
}

// SetNoteDeleted toggles the trashed state without removing the record.
// The operation is idempotent: repeating it with the same flag succeeds and
// leaves the row unchanged apart from updated_at.
//
// Returns [ErrNoteNotFound] when the note does not exist or is owned by a
// different user.
func (r *noteRepository) SetNoteDeleted(ctx context.Context, noteID, userID int64, deleted bool) (models.Note, error) {
	log := logger.FromContext(ctx)

	var note models.Note
	row := r.db.QueryRowContext(ctx, setNoteDeleted, deleted, noteID, userID)
	if err := scanNote(row, &note); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).Str("func", "*noteRepository.SetNoteDeleted").Int64("note_id", noteID).Msg("failed to set deleted flag")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return note, nil
}

// DeleteNote permanently removes the record regardless of its current
// soft-delete state. Returns [ErrNoteNotFound] when the note does not exist
// or is owned by a different user.
func (r *noteRepository) DeleteNote(ctx context.Context, noteID, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteNote, noteID, userID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Int64("note_id", noteID).Msg("failed to delete note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}
