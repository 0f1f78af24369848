package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notekeep/go-note-keeper/internal/logger"
	"github.com/notekeep/go-note-keeper/internal/store"
	"github.com/notekeep/go-note-keeper/models"
)

func TestCreateFolder_TrimsName(t *testing.T) {
	var captured models.Folder
	repo := &mockFolderRepository{
		createFolderFunc: func(ctx context.Context, folder models.Folder) (models.Folder, error) {
			captured = folder
			folder.FolderID = 1
			return folder, nil
		},
	}
	svc := NewFolderService(repo, logger.Nop())

	created, err := svc.CreateFolder(context.Background(), 10, "  Work  ")
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.FolderID)
	assert.Equal(t, "Work", captured.Name)
	assert.Equal(t, int64(10), captured.UserID)
}

func TestCreateFolder_BlankName(t *testing.T) {
	svc := NewFolderService(&mockFolderRepository{}, logger.Nop())

	_, err := svc.CreateFolder(context.Background(), 10, "   ")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCreateFolder_DuplicateNamesAllowed(t *testing.T) {
	nextID := int64(0)
	repo := &mockFolderRepository{
		createFolderFunc: func(ctx context.Context, folder models.Folder) (models.Folder, error) {
			nextID++
			folder.FolderID = nextID
			return folder, nil
		},
	}
	svc := NewFolderService(repo, logger.Nop())

	first, err := svc.CreateFolder(context.Background(), 10, "Work")
	require.NoError(t, err)
	second, err := svc.CreateFolder(context.Background(), 10, "Work")
	require.NoError(t, err)
	assert.NotEqual(t, first.FolderID, second.FolderID)
}

func TestListFoldersByOwner_EmptyIsNotAnError(t *testing.T) {
	repo := &mockFolderRepository{
		getFoldersByUserFunc: func(ctx context.Context, userID int64) ([]models.Folder, error) {
			return []models.Folder{}, nil
		},
	}
	svc := NewFolderService(repo, logger.Nop())

	folders, err := svc.ListFoldersByOwner(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, folders)
}

func TestRenameFolder_NotFound(t *testing.T) {
	repo := &mockFolderRepository{
		updateFolderNameFunc: func(ctx context.Context, folderID, userID int64, name string) (models.Folder, error) {
			return models.Folder{}, store.ErrFolderNotFound
		},
	}
	svc := NewFolderService(repo, logger.Nop())

	_, err := svc.RenameFolder(context.Background(), 5, 10, "Renamed")
	assert.ErrorIs(t, err, store.ErrFolderNotFound)
}

func TestRenameFolder_Success(t *testing.T) {
	repo := &mockFolderRepository{
		updateFolderNameFunc: func(ctx context.Context, folderID, userID int64, name string) (models.Folder, error) {
			return models.Folder{FolderID: folderID, Name: name, UserID: userID}, nil
		},
	}
	svc := NewFolderService(repo, logger.Nop())

	folder, err := svc.RenameFolder(context.Background(), 5, 10, " Renamed ")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", folder.Name)
}

func TestDeleteFolder_WrongOwnerLooksMissing(t *testing.T) {
	repo := &mockFolderRepository{
		deleteFolderFunc: func(ctx context.Context, folderID, userID int64) error {
			return store.ErrFolderNotFound
		},
	}
	svc := NewFolderService(repo, logger.Nop())

	err := svc.DeleteFolder(context.Background(), 5, 999)
	assert.ErrorIs(t, err, store.ErrFolderNotFound)
}
