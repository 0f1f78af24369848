package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/notekeep/go-note-keeper/internal/logger"
	"github.com/notekeep/go-note-keeper/internal/store"
	"github.com/notekeep/go-note-keeper/models"
)

// noteService is the concrete implementation of NoteService.
//
// Folder assignments are validated through the FolderRepository so a note
// can never be placed into a folder owned by a different user.
type noteService struct {
	noteRepository   store.NoteRepository
	folderRepository store.FolderRepository

	logger *logger.Logger
}

// NewNoteService constructs a new NoteService wired to the given note and
// folder repositories.
func NewNoteService(noteRepository store.NoteRepository, folderRepository store.FolderRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository:   noteRepository,
		folderRepository: folderRepository,
		logger:           logger,
	}
}

// checkFolderOwnership verifies that the folder exists and belongs to
// ownerID. A folder owned by someone else looks exactly like a missing one
// at the repository level, so both cases surface as
// ErrFolderOwnershipMismatch.
func (n *noteService) checkFolderOwnership(ctx context.Context, folderID, ownerID int64) error {
	if _, err := n.folderRepository.GetFolderByID(ctx, folderID, ownerID); err != nil {
		if errors.Is(err, store.ErrFolderNotFound) {
			return ErrFolderOwnershipMismatch
		}
		return fmt.Errorf("folder ownership check failed: %w", err)
	}
	return nil
}

// CreateNote creates a note owned by ownerID with deleted=false.
//
// When folderID is non-nil the target folder must exist and belong to
// ownerID; placing a note into someone else's folder yields
// ErrFolderOwnershipMismatch.
//
// Returns ErrInvalidDataProvided when the title is blank. Content may be
// empty.
func (n *noteService) CreateNote(ctx context.Context, ownerID int64, title, content string, folderID *int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	title = strings.TrimSpace(title)
	if title == "" || ownerID <= 0 {
		log.Error().Str("func", "*noteService.CreateNote").Int64("user_id", ownerID).Msg("empty note title or invalid owner provided")
		return models.Note{}, ErrInvalidDataProvided
	}

	if folderID != nil {
		if err := n.checkFolderOwnership(ctx, *folderID, ownerID); err != nil {
			log.Err(err).Str("func", "*noteService.CreateNote").Int64("user_id", ownerID).Int64("folder_id", *folderID).Msg("folder check failed")
			return models.Note{}, err
		}
	}

	createdNote, err := n.noteRepository.CreateNote(ctx, models.Note{
		Title:    title,
		Content:  content,
		UserID:   ownerID,
		FolderID: folderID,
	})
	if err != nil {
		log.Err(err).Str("func", "*noteService.CreateNote").Int64("user_id", ownerID).Msg("note creation failed")
		return models.Note{}, fmt.Errorf("note creation failed: %w", err)
	}

	return createdNote, nil
}

// ListActiveNotesByOwner returns the owner's notes that are not in the
// trash, ordered by id ascending.
func (n *noteService) ListActiveNotesByOwner(ctx context.Context, ownerID int64) ([]models.Note, error) {
	if ownerID <= 0 {
		return nil, ErrInvalidDataProvided
	}

	notes, err := n.noteRepository.GetNotesByUser(ctx, ownerID, false)
	if err != nil {
		return nil, fmt.Errorf("note listing failed: %w", err)
	}

	return notes, nil
}

// ListTrashedNotesByOwner returns the owner's trashed notes, ordered by id
// ascending.
func (n *noteService) ListTrashedNotesByOwner(ctx context.Context, ownerID int64) ([]models.Note, error) {
	if ownerID <= 0 {
		return nil, ErrInvalidDataProvided
	}

	notes, err := n.noteRepository.GetNotesByUser(ctx, ownerID, true)
	if err != nil {
		return nil, fmt.Errorf("trashed note listing failed: %w", err)
	}

	return notes, nil
}

// GetNoteByID returns a single note scoped to its owner. Trashed notes are
// still readable by id.
//
// Returns store.ErrNoteNotFound when the note does not exist or belongs to
// another user.
func (n *noteService) GetNoteByID(ctx context.Context, noteID, ownerID int64) (models.Note, error) {
	if noteID <= 0 || ownerID <= 0 {
		return models.Note{}, ErrInvalidDataProvided
	}

	foundNote, err := n.noteRepository.GetNoteByID(ctx, noteID, ownerID)
	if err != nil {
		return models.Note{}, fmt.Errorf("note search by id failed: %w", err)
	}

	return foundNote, nil
}

// ListNotesByFolder returns the notes inside one of the owner's folders,
// ordered by id ascending. The folder itself is looked up first so that
// asking for a missing or foreign folder yields store.ErrFolderNotFound
// rather than an empty list.
func (n *noteService) ListNotesByFolder(ctx context.Context, folderID, ownerID int64) ([]models.Note, error) {
	if folderID <= 0 || ownerID <= 0 {
		return nil, ErrInvalidDataProvided
	}

	if _, err := n.folderRepository.GetFolderByID(ctx, folderID, ownerID); err != nil {
		return nil, fmt.Errorf("folder lookup failed: %w", err)
	}

	notes, err := n.noteRepository.GetNotesByFolder(ctx, folderID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("folder note listing failed: %w", err)
	}

	return notes, nil
}

// UpdateNote applies a partial update to one of the owner's notes.
//
// A folder re-assignment (update.FolderID non-nil) is ownership-checked the
// same way as in CreateNote; clearing the folder (update.SetFolderNil) needs
// no check. An update with no effective fields succeeds and returns the
// current note unchanged.
//
// Returns store.ErrNoteNotFound when the note does not exist or belongs to
// another user.
func (n *noteService) UpdateNote(ctx context.Context, noteID, ownerID int64, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	if noteID <= 0 || ownerID <= 0 {
		return models.Note{}, ErrInvalidDataProvided
	}
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return models.Note{}, ErrInvalidDataProvided
	}

	if update.IsEmpty() {
		currentNote, err := n.noteRepository.GetNoteByID(ctx, noteID, ownerID)
		if err != nil {
			log.Err(err).Str("func", "*noteService.UpdateNote").Int64("user_id", ownerID).Int64("note_id", noteID).Msg("note search by id failed")
			return models.Note{}, fmt.Errorf("note search by id failed: %w", err)
		}
		return currentNote, nil
	}

	if update.FolderID != nil && !update.SetFolderNil {
		if err := n.checkFolderOwnership(ctx, *update.FolderID, ownerID); err != nil {
			log.Err(err).Str("func", "*noteService.UpdateNote").Int64("user_id", ownerID).Int64("folder_id", *update.FolderID).Msg("folder check failed")
			return models.Note{}, err
		}
	}

	updatedNote, err := n.noteRepository.UpdateNote(ctx, noteID, ownerID, update)
	if err != nil {
		log.Err(err).Str("func", "*noteService.UpdateNote").Int64("user_id", ownerID).Int64("note_id", noteID).Msg("note update failed")
		return models.Note{}, fmt.Errorf("note update failed: %w", err)
	}

	return updatedNote, nil
}

// SetNoteDeleted moves the note to the trash (deleted=true) or restores it
// (deleted=false). The operation is idempotent: trashing a trashed note or
// restoring an active one succeeds without change.
//
// Returns store.ErrNoteNotFound when the note does not exist or belongs to
// another user.
func (n *noteService) SetNoteDeleted(ctx context.Context, noteID, ownerID int64, deleted bool) (models.Note, error) {
	log := logger.FromContext(ctx)

	if noteID <= 0 || ownerID <= 0 {
		return models.Note{}, ErrInvalidDataProvided
	}

	updatedNote, err := n.noteRepository.SetNoteDeleted(ctx, noteID, ownerID, deleted)
	if err != nil {
		log.Err(err).Str("func", "*noteService.SetNoteDeleted").Int64("user_id", ownerID).Int64("note_id", noteID).Msg("note trash toggle failed")
		return models.Note{}, fmt.Errorf("note trash toggle failed: %w", err)
	}

	return updatedNote, nil
}

// DeleteNote permanently removes one of the owner's notes, regardless of
// whether it is in the trash.
//
// Returns store.ErrNoteNotFound when the note does not exist or belongs to
// another user.
func (n *noteService) DeleteNote(ctx context.Context, noteID, ownerID int64) error {
	log := logger.FromContext(ctx)

	if noteID <= 0 || ownerID <= 0 {
		return ErrInvalidDataProvided
	}

	if err := n.noteRepository.DeleteNote(ctx, noteID, ownerID); err != nil {
		log.Err(err).Str("func", "*noteService.DeleteNote").Int64("user_id", ownerID).Int64("note_id", noteID).Msg("note deletion failed")
		return fmt.Errorf("note deletion failed: %w", err)
	}

	return nil
}
