package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/notekeep/go-note-keeper/internal/logger"
	"github.com/notekeep/go-note-keeper/internal/store"
	"github.com/notekeep/go-note-keeper/models"
)

// folderService is the concrete implementation of FolderService.
//
// Every operation takes the owner's id explicitly and the repository scopes
// its queries to that owner, so a folder belonging to another user is
// indistinguishable from one that does not exist.
type folderService struct {
	folderRepository store.FolderRepository

	logger *logger.Logger
}

// NewFolderService constructs a new FolderService wired to the given
// FolderRepository.
func NewFolderService(folderRepository store.FolderRepository, logger *logger.Logger) FolderService {
	return &folderService{
		folderRepository: folderRepository,
		logger:           logger,
	}
}

// CreateFolder creates a folder owned by ownerID.
//
// Folder names are not unique; creating two folders with the same name for
// the same owner yields two distinct folders.
//
// Returns ErrInvalidDataProvided when the name is blank or ownerID is not
// positive.
func (f *folderService) CreateFolder(ctx context.Context, ownerID int64, name string) (models.Folder, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" || ownerID <= 0 {
		log.Error().Str("func", "*folderService.CreateFolder").Int64("user_id", ownerID).Msg("empty folder name or invalid owner provided")
		return models.Folder{}, ErrInvalidDataProvided
	}

	createdFolder, err := f.folderRepository.CreateFolder(ctx, models.Folder{
		Name:   name,
		UserID: ownerID,
	})
	if err != nil {
		log.Err(err).Str("func", "*folderService.CreateFolder").Int64("user_id", ownerID).Msg("folder creation failed")
		return models.Folder{}, fmt.Errorf("folder creation failed: %w", err)
	}

	return createdFolder, nil
}

// ListFoldersByOwner returns all folders owned by ownerID, ordered by id
// ascending. An owner without folders gets an empty list, not an error.
func (f *folderService) ListFoldersByOwner(ctx context.Context, ownerID int64) ([]models.Folder, error) {
	if ownerID <= 0 {
		return nil, ErrInvalidDataProvided
	}

	folders, err := f.folderRepository.GetFoldersByUser(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("folder listing failed: %w", err)
	}

	return folders, nil
}

// RenameFolder changes the name of a folder owned by ownerID.
//
// Returns the updated folder or:
//   - ErrInvalidDataProvided when the name is blank.
//   - store.ErrFolderNotFound when the folder does not exist or belongs to
//     another user.
func (f *folderService) RenameFolder(ctx context.Context, folderID, ownerID int64, name string) (models.Folder, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" || folderID <= 0 || ownerID <= 0 {
		return models.Folder{}, ErrInvalidDataProvided
	}

	renamedFolder, err := f.folderRepository.UpdateFolderName(ctx, folderID, ownerID, name)
	if err != nil {
		log.Err(err).Str("func", "*folderService.RenameFolder").Int64("user_id", ownerID).Int64("folder_id", folderID).Msg("folder rename failed")
		return models.Folder{}, fmt.Errorf("folder rename failed: %w", err)
	}

	return renamedFolder, nil
}

// DeleteFolder removes a folder owned by ownerID.
//
// Notes inside the folder are not deleted: the repository detaches them
// (folder_id set to null) and removes the folder in the same transaction.
//
// Returns store.ErrFolderNotFound when the folder does not exist or belongs
// to another user.
func (f *folderService) DeleteFolder(ctx context.Context, folderID, ownerID int64) error {
	log := logger.FromContext(ctx)

	if folderID <= 0 || ownerID <= 0 {
		return ErrInvalidDataProvided
	}

	if err := f.folderRepository.DeleteFolder(ctx, folderID, ownerID); err != nil {
		log.Err(err).Str("func", "*folderService.DeleteFolder").Int64("user_id", ownerID).Int64("folder_id", folderID).Msg("folder deletion failed")
		return fmt.Errorf("folder deletion failed: %w", err)
	}

	return nil
}
