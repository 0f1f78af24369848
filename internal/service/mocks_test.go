package service

import (
	"context"

	"github.com/notekeep/go-note-keeper/models"
)

// mockUserRepository implements store.UserRepository with overridable
// function fields so each test supplies only the calls it expects.
type mockUserRepository struct {
	createUserFunc      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFunc func(ctx context.Context, email string) (models.User, error)
	findUserByIDFunc    func(ctx context.Context, userID int64) (models.User, error)
	updateUserFunc      func(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
	deleteUserFunc      func(ctx context.Context, userID int64) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFunc(ctx, user)
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findUserByEmailFunc(ctx, email)
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.findUserByIDFunc(ctx, userID)
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	return m.updateUserFunc(ctx, userID, update)
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	return m.deleteUserFunc(ctx, userID)
}

// mockFolderRepository implements store.FolderRepository.
type mockFolderRepository struct {
	createFolderFunc     func(ctx context.Context, folder models.Folder) (models.Folder, error)
	getFolderByIDFunc    func(ctx context.Context, folderID, userID int64) (models.Folder, error)
	getFoldersByUserFunc func(ctx context.Context, userID int64) ([]models.Folder, error)
	updateFolderNameFunc func(ctx context.Context, folderID, userID int64, name string) (models.Folder, error)
	deleteFolderFunc     func(ctx context.Context, folderID, userID int64) error
}

func (m *mockFolderRepository) CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	return m.createFolderFunc(ctx, folder)
}

func (m *mockFolderRepository) GetFolderByID(ctx context.Context, folderID, userID int64) (models.Folder, error) {
	return m.getFolderByIDFunc(ctx, folderID, userID)
}

func (m *mockFolderRepository) GetFoldersByUser(ctx context.Context, userID int64) ([]models.Folder, error) {
	return m.getFoldersByUserFunc(ctx, userID)
}

func (m *mockFolderRepository) UpdateFolderName(ctx context.Context, folderID, userID int64, name string) (models.Folder, error) {
	return m.updateFolderNameFunc(ctx, folderID, userID, name)
}

func (m *mockFolderRepository) DeleteFolder(ctx context.Context, folderID, userID int64) error {
	return m.deleteFolderFunc(ctx, folderID, userID)
}

// mockNoteRepository implements store.NoteRepository.
type mockNoteRepository struct {
	createNoteFunc       func(ctx context.Context, note models.Note) (models.Note, error)
	getNotesByUserFunc   func(ctx context.Context, userID int64, deleted bool) ([]models.Note, error)
	getNoteByIDFunc      func(ctx context.Context, noteID, userID int64) (models.Note, error)
	getNotesByFolderFunc func(ctx context.Context, folderID, userID int64) ([]models.Note, error)
	updateNoteFunc       func(ctx context.Context, noteID, userID int64, update models.NoteUpdate) (models.Note, error)
	setNoteDeletedFunc   func(ctx context.Context, noteID, userID int64, deleted bool) (models.Note, error)
	deleteNoteFunc       func(ctx context.Context, noteID, userID int64) error
}

func (m *mockNoteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	return m.createNoteFunc(ctx, note)
}

func (m *mockNoteRepository) GetNotesByUser(ctx context.Context, userID int64, deleted bool) ([]models.Note, error) {
	return m.getNotesByUserFunc(ctx, userID, deleted)
}

func (m *mockNoteRepository) GetNoteByID(ctx context.Context, noteID, userID int64) (models.Note, error) {
	return m.getNoteByIDFunc(ctx, noteID, userID)
}

func (m *mockNoteRepository) GetNotesByFolder(ctx context.Context, folderID, userID int64) ([]models.Note, error) {
	return m.getNotesByFolderFunc(ctx, folderID, userID)
}

func (m *mockNoteRepository) UpdateNote(ctx context.Context, noteID, userID int64, update models.NoteUpdate) (models.Note, error) {
	return m.updateNoteFunc(ctx, noteID, userID, update)
}

func (m *mockNoteRepository) SetNoteDeleted(ctx context.Context, noteID, userID int64, deleted bool) (models.Note, error) {
	return m.setNoteDeletedFunc(ctx, noteID, userID, deleted)
}

func (m *mockNoteRepository) DeleteNote(ctx context.Context, noteID, userID int64) error {
	return m.deleteNoteFunc(ctx, noteID, userID)
}
