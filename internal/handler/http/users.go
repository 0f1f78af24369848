package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/notekeep/go-note-keeper/internal/logger"
	"github.com/notekeep/go-note-keeper/internal/service"
	"github.com/notekeep/go-note-keeper/internal/utils"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userIDFromPath parses the {id} URL parameter and verifies it addresses the
// authenticated caller's own account. Accounts are strictly private: another
// user's id yields [ErrAccessToDifferentUser].
func userIDFromPath(r *http.Request) (int64, error) {
	pathID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, service.ErrInvalidDataProvided
	}

	authUserID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok || authUserID != pathID {
		return 0, ErrAccessToDifferentUser
	}

	return pathID, nil
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request registerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.UserService.CreateUser(ctx, request.Username, request.Email, request.Password)
	if err != nil {
		respondError(w, r, err, "user registration failed")
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Msg("user successfully registered")

	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromPath(r)
	if err != nil {
		respondError(w, r, err, err.Error())
		return
	}

	foundUser, err := h.services.UserService.GetUserByID(r.Context(), userID)
	if err != nil {
		respondError(w, r, err, "user not found")
		return
	}

	utils.WriteJSON(w, foundUser, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := userIDFromPath(r)
	if err != nil {
		respondError(w, r, err, err.Error())
		return
	}

	var request service.UserUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.updateUser").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.UserService.UpdateUser(r.Context(), userID, request)
	if err != nil {
		respondError(w, r, err, "user update failed")
		return
	}

	utils.WriteJSON(w, updatedUser, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromPath(r)
	if err != nil {
		respondError(w, r, err, err.Error())
		return
	}

	if err := h.services.UserService.DeleteUser(r.Context(), userID); err != nil {
		respondError(w, r, err, "user deletion failed")
		return
	}

	username, _ := utils.GetUsernameFromContext(r.Context())
	logger.FromRequest(r).Info().Int64("id", userID).Str("username", username).Msg("user account deleted")

	w.WriteHeader(http.StatusNoContent)
}
