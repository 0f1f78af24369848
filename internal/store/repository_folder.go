package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/notekeep/go-note-keeper/internal/logger"
	"github.com/notekeep/go-note-keeper/models"
)

// folderRepository is the PostgreSQL-backed implementation of
// [FolderRepository]. Every query filters by the owning user id, so a folder
// belonging to a different user is indistinguishable from a missing one.
type folderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFolderRepository constructs a [FolderRepository] backed by the provided
// database connection and logger.
func NewFolderRepository(db *DB, logger *logger.Logger) FolderRepository {
	logger.Debug().Msg("creating folder repository")
	return &folderRepository{
		db:     db,
		logger: logger,
	}
}

// CreateFolder persists a new folder and returns it with server-assigned
// fields (FolderID, CreatedAt).
func (r *folderRepository) CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createFolder, folder.Name, folder.UserID)
	if err := row.Scan(&folder.FolderID, &folder.Name, &folder.UserID, &folder.CreatedAt); err != nil {
		log.Err(err).Str("func", "*folderRepository.CreateFolder").Int64("user_id", folder.UserID).Msg("failed to create folder")
		return models.Folder{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return folder, nil
}

// GetFolderByID returns a single folder scoped to its owner.
// Returns [ErrFolderNotFound] when the folder does not exist or is owned by
// a different user.
func (r *folderRepository) GetFolderByID(ctx context.Context, folderID, userID int64) (models.Folder, error) {
	log := logger.FromContext(ctx)

	var folder models.Folder
	row := r.db.QueryRowContext(ctx, getFolderByID, folderID, userID)
	if err := row.Scan(&folder.FolderID, &folder.Name, &folder.UserID, &folder.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Folder{}, ErrFolderNotFound
		}
		log.Err(err).Str("func", "*folderRepository.GetFolderByID").Int64("folder_id", folderID).Msg("failed to query folder")
		return models.Folder{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return folder, nil
}

// GetFoldersByUser returns every folder owned by the given user in ascending
// folder_id order. An empty result is a valid, non-error outcome.
func (r *folderRepository) GetFoldersByUser(ctx context.Context, userID int64) ([]models.Folder, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getFoldersByUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*folderRepository.GetFoldersByUser").Int64("user_id", userID).Msg("failed to query folders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	folders := make([]models.Folder, 0, 16)
	for rows.Next() {
		var folder models.Folder
		if err := rows.Scan(&folder.FolderID, &folder.Name, &folder.UserID, &folder.CreatedAt); err != nil {
			log.Err(err).Str("func", "*folderRepository.GetFoldersByUser").Int64("user_id", userID).Msg("failed to scan folder row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		folders = append(folders, folder)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*folderRepository.GetFoldersByUser").Int64("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return folders, nil
}

// UpdateFolderName renames the folder and returns the updated row.
// Returns [ErrFolderNotFound] when the folder does not exist or is owned by
// a different user.
func (r *folderRepository) UpdateFolderName(ctx context.Context, folderID, userID int64, name string) (models.Folder, error) {
	log := logger.FromContext(ctx)

	var folder models.Folder
	row := r.db.QueryRowContext(ctx, updateFolderName, name, folderID, userID)
	if err := row.Scan(&folder.FolderID, &folder.Name, &folder.UserID, &folder.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Folder{}, ErrFolderNotFound
		}
		log.Err(err).Str("func", "*folderRepository.UpdateFolderName").Int64("folder_id", folderID).Msg("failed to rename folder")
		return models.Folder{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return folder, nil
}

// DeleteFolder removes the folder after detaching its notes (folder_id set
// to NULL). Both statements run in one transaction so a crash cannot leave
// notes referencing a removed folder.
//
// Returns [ErrFolderNotFound] when the folder does not exist or is owned by
// a different user; the detach is rolled back in that case.
func (r *folderRepository) DeleteFolder(ctx context.Context, folderID, userID int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*folderRepository.DeleteFolder").Int64("folder_id", folderID).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, detachFolderNotes, folderID, userID); err != nil {
		log.Err(err).Str("func", "*folderRepository.DeleteFolder").Int64("folder_id", folderID).Msg("failed to detach folder notes")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	result, err := tx.ExecContext(ctx, deleteFolder, folderID, userID)
	if err != nil {
		log.Err(err).Str("func", "*folderRepository.DeleteFolder").Int64("folder_id", folderID).Msg("failed to delete folder")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFolderNotFound
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*folderRepository.DeleteFolder").Int64("folder_id", folderID).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
