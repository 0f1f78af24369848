package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notekeep/go-note-keeper/internal/service"
	"github.com/notekeep/go-note-keeper/internal/store"
	"github.com/notekeep/go-note-keeper/models"
)

func TestCreateFolder_Created(t *testing.T) {
	folders := &mockFolderService{
		createFolderFn: func(_ context.Context, ownerID int64, name string) (models.Folder, error) {
			assert.Equal(t, int64(10), ownerID)
			assert.Equal(t, "Work", name)
			return models.Folder{FolderID: 1, Name: name, UserID: ownerID}, nil
		},
	}
	h := newTestHandler(t, &service.Services{
		AuthService:   sessionAuth(10, "alice"),
		FolderService: folders,
	})

	rec := doRequest(t, h, http.MethodPost, "/api/folders", `{"name":"Work"}`, true)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body models.Folder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.FolderID)
}

func TestCreateFolder_Unauthenticated(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		AuthService:   sessionAuth(10, "alice"),
		FolderService: &mockFolderService{},
	})

	rec := doRequest(t, h, http.MethodPost, "/api/folders", `{"name":"Work"}`, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListFolders_OwnerScoped(t *testing.T) {
	folders := &mockFolderService{
		listFoldersByOwnerFn: func(_ context.Context, ownerID int64) ([]models.Folder, error) {
			assert.Equal(t, int64(10), ownerID)
			return []models.Folder{
				{FolderID: 1, Name: "Work", UserID: 10},
				{FolderID: 2, Name: "Home", UserID: 10},
			}, nil
		},
	}
	h := newTestHandler(t, &service.Services{
		AuthService:   sessionAuth(10, "alice"),
		FolderService: folders,
	})

	rec := doRequest(t, h, http.MethodGet, "/api/folders", "", true)

	require.Equal(t, http.StatusOK, rec.Code)

	var body []models.Folder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, int64(1), body[0].FolderID)
}

func TestRenameFolder_NotFound(t *testing.T) {
	folders := &mockFolderService{
		renameFolderFn: func(_ context.Context, folderID, ownerID int64, name string) (models.Folder, error) {
			return models.Folder{}, store.ErrFolderNotFound
		},
	}
	h := newTestHandler(t, &service.Services{
		AuthService:   sessionAuth(10, "alice"),
		FolderService: folders,
	})

	rec := doRequest(t, h, http.MethodPut, "/api/folders/5", `{"name":"Renamed"}`, true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRenameFolder_Success(t *testing.T) {
	folders := &mockFolderService{
		renameFolderFn: func(_ context.Context, folderID, ownerID int64, name string) (models.Folder, error) {
			assert.Equal(t, int64(5), folderID)
			assert.Equal(t, int64(10), ownerID)
			return models.Folder{FolderID: folderID, Name: name, UserID: ownerID}, nil
		},
	}
	h := newTestHandler(t, &service.Services{
		AuthService:   sessionAuth(10, "alice"),
		FolderService: folders,
	})

	rec := doRequest(t, h, http.MethodPut, "/api/folders/5", `{"name":"Renamed"}`, true)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.Folder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Renamed", body.Name)
}

func TestDeleteFolder_Success(t *testing.T) {
	var deletedFolderID int64
	folders := &mockFolderService{
		deleteFolderFn: func(_ context.Context, folderID, ownerID int64) error {
			deletedFolderID = folderID
			return nil
		},
	}
	h := newTestHandler(t, &service.Services{
		AuthService:   sessionAuth(10, "alice"),
		FolderService: folders,
	})

	rec := doRequest(t, h, http.MethodDelete, "/api/folders/5", "", true)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(5), deletedFolderID)
}

func TestDeleteFolder_InvalidID(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		AuthService:   sessionAuth(10, "alice"),
		FolderService: &mockFolderService{},
	})

	rec := doRequest(t, h, http.MethodDelete, "/api/folders/abc", "", true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListFolderNotes_Success(t *testing.T) {
	notes := &mockNoteService{
		listNotesByFolderFn: func(_ context.Context, folderID, ownerID int64) ([]models.Note, error) {
			assert.Equal(t, int64(5), folderID)
			assert.Equal(t, int64(10), ownerID)
			return []models.Note{{NoteID: 1}, {NoteID: 2}}, nil
		},
	}
	h := newTestHandler(t, &service.Services{
		AuthService: sessionAuth(10, "alice"),
		NoteService: notes,
	})

	rec := doRequest(t, h, http.MethodGet, "/api/folders/5/notes", "", true)

	require.Equal(t, http.StatusOK, rec.Code)

	var body []models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body, 2)
}

func TestListFolderNotes_FolderNotFound(t *testing.T) {
	notes := &mockNoteService{
		listNotesByFolderFn: func(_ context.Context, folderID, ownerID int64) ([]models.Note, error) {
			return nil, store.ErrFolderNotFound
		},
	}
	h := newTestHandler(t, &service.Services{
		AuthService: sessionAuth(10, "alice"),
		NoteService: notes,
	})

	rec := doRequest(t, h, http.MethodGet, "/api/folders/5/notes", "", true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
