package http

import (
	"encoding/json"
	"net/http"

	"github.com/notekeep/go-note-keeper/internal/logger"
	"github.com/notekeep/go-note-keeper/internal/utils"
	"github.com/notekeep/go-note-keeper/models"
)

// sessionCookieName is the name of the cookie carrying the signed session
// token.
const sessionCookieName = "token"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// sessionCookie builds the session cookie with the attributes shared by
// login and logout: HttpOnly, Path=/, SameSite=Lax, Secure in production.
// Logout passes an empty value and a negative maxAge to clear it.
func (h *Handler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.cfg.IsProduction(),
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request loginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.ValidateCredentials(ctx, request.Email, request.Password)
	if err != nil {
		// Unknown email and wrong password share one message and status.
		respondError(w, r, err, "Invalid credentials")
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		respondError(w, r, err, "creation of token failed")
		return
	}

	http.SetCookie(w, h.sessionCookie(token.SignedString, int(h.cfg.TokenDuration.Seconds())))
	utils.WriteJSON(w, models.LoginResponse{Message: "Logged in", UserID: foundUser.UserID}, http.StatusOK)
}

// status reports the session state derived from the cookie. It always
// answers 200: an absent or invalid cookie yields an unauthenticated body,
// never a 401.
func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	var tokenString string
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		tokenString = cookie.Value
	}

	sessionStatus := h.services.AuthService.SessionStatus(r.Context(), tokenString)
	utils.WriteJSON(w, sessionStatus, http.StatusOK)
}

// logout clears the session cookie. The token itself stays valid until it
// expires; invalidation is purely client-side.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	utils.WriteJSON(w, models.MessageResponse{Message: "Logged out"}, http.StatusOK)
}
