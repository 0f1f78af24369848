package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/notekeep/go-note-keeper/internal/config"
	"github.com/notekeep/go-note-keeper/internal/logger"
	"github.com/notekeep/go-note-keeper/internal/store"
	"github.com/notekeep/go-note-keeper/models"
)

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository store.UserRepository

	// bcryptCost is the work factor applied when hashing passwords.
	bcryptCost int

	logger *logger.Logger
}

// NewUserService constructs a new UserService wired to the given
// UserRepository, hashing passwords with the cost factor from cfg.
func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// CreateUser registers a new account.
//
// The plaintext password is hashed with bcrypt before it ever reaches the
// repository; the service never stores or logs the plaintext.
//
// Returns the created user record or:
//   - ErrInvalidDataProvided if any field is blank.
//   - store.ErrCredentialAlreadyTaken if the username or email is in use.
//   - ErrPasswordHashingFailed if bcrypt rejects the password.
func (u *userService) CreateUser(ctx context.Context, username, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		log.Error().Str("func", "*userService.CreateUser").Msg("empty username, email or password provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), u.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	createdUser, err := u.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Str("email", email).Msg("user creation failed")
		return models.User{}, fmt.Errorf("user creation failed: %w", err)
	}

	return createdUser, nil
}

// GetUserByID returns the user with the given id.
//
// Returns store.ErrUserNotFound when no such user exists.
func (u *userService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	if userID <= 0 {
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// UpdateUser applies a partial update to the user's own record.
//
// Each provided field is compared against the current record: a username or
// email equal to the stored value, or a password whose bcrypt hash already
// matches, is dropped from the update. If every provided field turns out to
// be unchanged the call is a no-op and the current record is returned
// unmodified.
//
// Returns the updated record or:
//   - ErrInvalidDataProvided if a provided field is blank.
//   - store.ErrUserNotFound if the user does not exist.
//   - store.ErrCredentialAlreadyTaken if the new username or email is in use.
func (u *userService) UpdateUser(ctx context.Context, userID int64, request UserUpdateRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		return models.User{}, ErrInvalidDataProvided
	}

	currentUser, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	var update models.UserUpdate

	if request.Username != nil {
		username := strings.TrimSpace(*request.Username)
		if username == "" {
			return models.User{}, ErrInvalidDataProvided
		}
		if username != currentUser.Username {
			update.Username = &username
		}
	}

	if request.Email != nil {
		email := strings.TrimSpace(*request.Email)
		if email == "" {
			return models.User{}, ErrInvalidDataProvided
		}
		if email != currentUser.Email {
			update.Email = &email
		}
	}

	if request.Password != nil {
		if *request.Password == "" {
			return models.User{}, ErrInvalidDataProvided
		}
		// Re-hashing an identical password would still produce a new salt,
		// so compare against the stored hash to detect the no-change case.
		if err := bcrypt.CompareHashAndPassword([]byte(currentUser.PasswordHash), []byte(*request.Password)); err != nil {
			hash, hashErr := bcrypt.GenerateFromPassword([]byte(*request.Password), u.bcryptCost)
			if hashErr != nil {
				log.Err(hashErr).Str("func", "*userService.UpdateUser").Msg("password hashing failed")
				return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, hashErr)
			}
			passwordHash := string(hash)
			update.PasswordHash = &passwordHash
		}
	}

	if update.IsEmpty() {
		return currentUser, nil
	}

	updatedUser, err := u.userRepository.UpdateUser(ctx, userID, update)
	if err != nil {
		log.Err(err).Str("func", "*userService.UpdateUser").Int64("user_id", userID).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	return updatedUser, nil
}

// DeleteUser removes the account and everything it owns.
//
// The repository performs the cascade (notes, then folders, then the user
// row) in a single transaction, so a failure leaves the account intact.
//
// Returns store.ErrUserNotFound when no such user exists.
func (u *userService) DeleteUser(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return ErrInvalidDataProvided
	}

	if err := u.userRepository.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}
