package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/notekeep/go-note-keeper/internal/logger"
	"github.com/notekeep/go-note-keeper/internal/store"
	"github.com/notekeep/go-note-keeper/models"
)

func strPtr(s string) *string { return &s }

func TestUserCreateUser_HashesPassword(t *testing.T) {
	var savedUser models.User
	repo := &mockUserRepository{
		createUserFunc: func(ctx context.Context, user models.User) (models.User, error) {
			savedUser = user
			user.UserID = 1
			return user, nil
		},
	}
	svc := NewUserService(repo, testAppConfig(), logger.Nop())

	created, err := svc.CreateUser(context.Background(), "alice", "alice@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)

	assert.NotEqual(t, "secret", savedUser.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(savedUser.PasswordHash), []byte("secret")))
}

func TestUserCreateUser_EmptyFields(t *testing.T) {
	svc := NewUserService(&mockUserRepository{}, testAppConfig(), logger.Nop())

	tests := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{name: "empty username", username: "", email: "a@b.c", password: "secret"},
		{name: "empty email", username: "alice", email: "", password: "secret"},
		{name: "empty password", username: "alice", email: "a@b.c", password: ""},
		{name: "whitespace username", username: "   ", email: "a@b.c", password: "secret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateUser(context.Background(), tt.username, tt.email, tt.password)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestUserCreateUser_CredentialConflict(t *testing.T) {
	repo := &mockUserRepository{
		createUserFunc: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrCredentialAlreadyTaken
		},
	}
	svc := NewUserService(repo, testAppConfig(), logger.Nop())

	_, err := svc.CreateUser(context.Background(), "alice", "alice@example.com", "secret")
	assert.ErrorIs(t, err, store.ErrCredentialAlreadyTaken)
}

func TestGetUserByID_NotFound(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFunc: func(ctx context.Context, userID int64) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	svc := NewUserService(repo, testAppConfig(), logger.Nop())

	_, err := svc.GetUserByID(context.Background(), 42)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUpdateUser_ChangedFieldsOnly(t *testing.T) {
	current := models.User{
		UserID:       10,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hashPassword(t, "secret"),
	}

	var captured models.UserUpdate
	repo := &mockUserRepository{
		findUserByIDFunc: func(ctx context.Context, userID int64) (models.User, error) {
			return current, nil
		},
		updateUserFunc: func(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
			captured = update
			updated := current
			updated.Email = *update.Email
			return updated, nil
		},
	}
	svc := NewUserService(repo, testAppConfig(), logger.Nop())

	// username equals the stored value, email differs, password omitted
	updated, err := svc.UpdateUser(context.Background(), 10, UserUpdateRequest{
		Username: strPtr("alice"),
		Email:    strPtr("new@example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)

	assert.Nil(t, captured.Username)
	require.NotNil(t, captured.Email)
	assert.Equal(t, "new@example.com", *captured.Email)
	assert.Nil(t, captured.PasswordHash)
}

func TestUpdateUser_NoEffectiveChangesIsNoOp(t *testing.T) {
	current := models.User{
		UserID:       10,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hashPassword(t, "secret"),
	}
	repo := &mockUserRepository{
		findUserByIDFunc: func(ctx context.Context, userID int64) (models.User, error) {
			return current, nil
		},
		updateUserFunc: func(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
			t.Fatal("UpdateUser should not reach the repository for a no-op")
			return models.User{}, nil
		},
	}
	svc := NewUserService(repo, testAppConfig(), logger.Nop())

	updated, err := svc.UpdateUser(context.Background(), 10, UserUpdateRequest{
		Username: strPtr("alice"),
		Email:    strPtr("alice@example.com"),
		Password: strPtr("secret"),
	})
	require.NoError(t, err)
	assert.Equal(t, current, updated)
}

func TestUpdateUser_NewPasswordIsRehashed(t *testing.T) {
	current := models.User{
		UserID:       10,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hashPassword(t, "old secret"),
	}

	var captured models.UserUpdate
	repo := &mockUserRepository{
		findUserByIDFunc: func(ctx context.Context, userID int64) (models.User, error) {
			return current, nil
		},
		updateUserFunc: func(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
			captured = update
			return current, nil
		},
	}
	svc := NewUserService(repo, testAppConfig(), logger.Nop())

	_, err := svc.UpdateUser(context.Background(), 10, UserUpdateRequest{Password: strPtr("new secret")})
	require.NoError(t, err)

	require.NotNil(t, captured.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*captured.PasswordHash), []byte("new secret")))
}

func TestUpdateUser_BlankFieldRejected(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFunc: func(ctx context.Context, userID int64) (models.User, error) {
			return models.User{UserID: 10, Username: "alice"}, nil
		},
	}
	svc := NewUserService(repo, testAppConfig(), logger.Nop())

	_, err := svc.UpdateUser(context.Background(), 10, UserUpdateRequest{Username: strPtr("  ")})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.UpdateUser(context.Background(), 10, UserUpdateRequest{Password: strPtr("")})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestDeleteUser_PropagatesNotFound(t *testing.T) {
	repo := &mockUserRepository{
		deleteUserFunc: func(ctx context.Context, userID int64) error {
			return store.ErrUserNotFound
		},
	}
	svc := NewUserService(repo, testAppConfig(), logger.Nop())

	err := svc.DeleteUser(context.Background(), 42)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestDeleteUser_Success(t *testing.T) {
	var deletedID int64
	repo := &mockUserRepository{
		deleteUserFunc: func(ctx context.Context, userID int64) error {
			deletedID = userID
			return nil
		},
	}
	svc := NewUserService(repo, testAppConfig(), logger.Nop())

	require.NoError(t, svc.DeleteUser(context.Background(), 10))
	assert.Equal(t, int64(10), deletedID)
}
