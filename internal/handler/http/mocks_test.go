package http

import (
	"context"

	"github.com/notekeep/go-note-keeper/internal/service"
	"github.com/notekeep/go-note-keeper/models"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	validateCredentialsFn func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn         func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn          func(ctx context.Context, tokenString string) (models.Token, error)
	sessionStatusFn       func(ctx context.Context, tokenString string) models.SessionStatus
}

func (m *mockAuthService) ValidateCredentials(ctx context.Context, email, password string) (models.User, error) {
	return m.validateCredentialsFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) SessionStatus(ctx context.Context, tokenString string) models.SessionStatus {
	return m.sessionStatusFn(ctx, tokenString)
}

// mockUserService implements service.UserService.
type mockUserService struct {
	createUserFn  func(ctx context.Context, username, email, password string) (models.User, error)
	getUserByIDFn func(ctx context.Context, userID int64) (models.User, error)
	updateUserFn  func(ctx context.Context, userID int64, update service.UserUpdateRequest) (models.User, error)
	deleteUserFn  func(ctx context.Context, userID int64) error
}

func (m *mockUserService) CreateUser(ctx context.Context, username, email, password string) (models.User, error) {
	return m.createUserFn(ctx, username, email, password)
}

func (m *mockUserService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserByIDFn(ctx, userID)
}

func (m *mockUserService) UpdateUser(ctx context.Context, userID int64, update service.UserUpdateRequest) (models.User, error) {
	return m.updateUserFn(ctx, userID, update)
}

func (m *mockUserService) DeleteUser(ctx context.Context, userID int64) error {
	return m.deleteUserFn(ctx, userID)
}

// mockFolderService implements service.FolderService.
type mockFolderService struct {
	createFolderFn       func(ctx context.Context, ownerID int64, name string) (models.Folder, error)
	listFoldersByOwnerFn func(ctx context.Context, ownerID int64) ([]models.Folder, error)
	renameFolderFn       func(ctx context.Context, folderID, ownerID int64, name string) (models.Folder, error)
	deleteFolderFn       func(ctx context.Context, folderID, ownerID int64) error
}

func (m *mockFolderService) CreateFolder(ctx context.Context, ownerID int64, name string) (models.Folder, error) {
	return m.createFolderFn(ctx, ownerID, name)
}

func (m *mockFolderService) ListFoldersByOwner(ctx context.Context, ownerID int64) ([]models.Folder, error) {
	return m.listFoldersByOwnerFn(ctx, ownerID)
}

func (m *mockFolderService) RenameFolder(ctx context.Context, folderID, ownerID int64, name string) (models.Folder, error) {
	return m.renameFolderFn(ctx, folderID, ownerID, name)
}

func (m *mockFolderService) DeleteFolder(ctx context.Context, folderID, ownerID int64) error {
	return m.deleteFolderFn(ctx, folderID, ownerID)
}

// mockNoteService implements service.NoteService.
type mockNoteService struct {
	createNoteFn              func(ctx context.Context, ownerID int64, title, content string, folderID *int64) (models.Note, error)
	listActiveNotesByOwnerFn  func(ctx context.Context, ownerID int64) ([]models.Note, error)
	listTrashedNotesByOwnerFn func(ctx context.Context, ownerID int64) ([]models.Note, error)
	getNoteByIDFn             func(ctx context.Context, noteID, ownerID int64) (models.Note, error)
	listNotesByFolderFn       func(ctx context.Context, folderID, ownerID int64) ([]models.Note, error)
	updateNoteFn              func(ctx context.Context, noteID, ownerID int64, update models.NoteUpdate) (models.Note, error)
	setNoteDeletedFn          func(ctx context.Context, noteID, ownerID int64, deleted bool) (models.Note, error)
	deleteNoteFn              func(ctx context.Context, noteID, ownerID int64) error
}

func (m *mockNoteService) CreateNote(ctx context.Context, ownerID int64, title, content string, folderID *int64) (models.Note, error) {
	return m.createNoteFn(ctx, ownerID, title, content, folderID)
}

func (m *mockNoteService) ListActiveNotesByOwner(ctx context.Context, ownerID int64) ([]models.Note, error) {
	return m.listActiveNotesByOwnerFn(ctx, ownerID)
}

func (m *mockNoteService) ListTrashedNotesByOwner(ctx context.Context, ownerID int64) ([]models.Note, error) {
	return m.listTrashedNotesByOwnerFn(ctx, ownerID)
}

func (m *mockNoteService) GetNoteByID(ctx context.Context, noteID, ownerID int64) (models.Note, error) {
	return m.getNoteByIDFn(ctx, noteID, ownerID)
}

func (m *mockNoteService) ListNotesByFolder(ctx context.Context, folderID, ownerID int64) ([]models.Note, error) {
	return m.listNotesByFolderFn(ctx, folderID, ownerID)
}

func (m *mockNoteService) UpdateNote(ctx context.Context, noteID, ownerID int64, update models.NoteUpdate) (models.Note, error) {
	return m.updateNoteFn(ctx, noteID, ownerID, update)
}

func (m *mockNoteService) SetNoteDeleted(ctx context.Context, noteID, ownerID int64, deleted bool) (models.Note, error) {
	return m.setNoteDeletedFn(ctx, noteID, ownerID, deleted)
}

func (m *mockNoteService) DeleteNote(ctx context.Context, noteID, ownerID int64) error {
	return m.deleteNoteFn(ctx, noteID, ownerID)
}
