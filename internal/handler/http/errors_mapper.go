package http

import (
	"errors"
	"net/http"

	"github.com/notekeep/go-note-keeper/internal/logger"
	"github.com/notekeep/go-note-keeper/internal/service"
	"github.com/notekeep/go-note-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrFolderOwnershipMismatch: http.StatusBadRequest,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrPasswordHashingFailed:   http.StatusInternalServerError,

	ErrAccessToDifferentUser: http.StatusForbidden,

	store.ErrCredentialAlreadyTaken: http.StatusConflict,
	store.ErrUserNotFound:           http.StatusNotFound,
	store.ErrFolderNotFound:         http.StatusNotFound,
	store.ErrNoteNotFound:           http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError logs err and writes the mapped status. Server-side failures
// (5xx) get a generic body so internals never leak to the client; everything
// else carries msg.
func respondError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)
	log.Err(err).Msg(msg)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, msg, status)
}
