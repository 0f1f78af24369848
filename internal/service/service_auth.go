package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/notekeep/go-note-keeper/internal/config"
	"github.com/notekeep/go-note-keeper/internal/logger"
	"github.com/notekeep/go-note-keeper/internal/store"
	"github.com/notekeep/go-note-keeper/internal/utils"
	"github.com/notekeep/go-note-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles credential verification against bcrypt hashes stored by the
// UserRepository and the HMAC-SHA256 session-token lifecycle.
type authService struct {
	// userRepository is the data-access layer used to look up users by email.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued session token remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// ValidateCredentials authenticates a user by email and plaintext password.
//
// An unknown email and a wrong password are both collapsed into
// ErrInvalidCredentials so that a caller cannot distinguish registered
// addresses from unregistered ones. The plaintext password is never logged.
//
// Returns the matched user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrInvalidCredentials on any lookup or comparison mismatch.
//   - A wrapped storage error when the repository fails for reasons other
//     than a missing user.
func (a *authService) ValidateCredentials(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Msg("empty email or password provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Debug().Int64("id", foundUser.UserID).Msg("password mismatch")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed session token for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim and the username as a custom
// claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if signing fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateSessionToken(a.tokenIssuer, user.UserID, user.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw session token string.
//
// It delegates to utils.ValidateAndParseSessionToken, verifying the
// signature and the issuer claim. Any validation failure (expired, wrong
// issuer, malformed) is normalised to ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseSessionToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// SessionStatus derives the session state from a raw token string.
//
// This is a query, not a guarded operation: an empty, malformed, or expired
// token yields an unauthenticated status with null identity fields, never an
// error. No distinct "expired" state is surfaced.
func (a *authService) SessionStatus(ctx context.Context, tokenString string) models.SessionStatus {
	if tokenString == "" {
		return models.SessionStatus{}
	}

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.SessionStatus{}
	}

	return models.SessionStatus{
		IsAuthenticated: true,
		UserID:          &token.UserID,
		Username:        &token.Username,
	}
}
