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

type folderRequest struct {
	Name string `json:"name"`
}

// ownerFromContext returns the authenticated user's id set by the auth
// middleware. A missing id means the middleware was bypassed, which is a
// programming error surfaced as 401.
func ownerFromContext(w http.ResponseWriter, r *http.Request) (int64, bool) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return 0, false
	}
	return ownerID, true
}

// pathID parses a numeric URL parameter. A malformed value is reported as a
// validation failure.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, service.ErrInvalidDataProvided
	}
	return id, nil
}

func (h *Handler) createFolder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	var request folderRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.createFolder").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdFolder, err := h.services.FolderService.CreateFolder(r.Context(), ownerID, request.Name)
	if err != nil {
		respondError(w, r, err, "folder creation failed")
		return
	}

	utils.WriteJSON(w, createdFolder, http.StatusCreated)
}

func (h *Handler) listFolders(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	folders, err := h.services.FolderService.ListFoldersByOwner(r.Context(), ownerID)
	if err != nil {
		respondError(w, r, err, "folder listing failed")
		return
	}

	utils.WriteJSON(w, folders, http.StatusOK)
}

func (h *Handler) renameFolder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	folderID, err := pathID(r, "folderId")
	if err != nil {
		respondError(w, r, err, "invalid folder id")
		return
	}

	var request folderRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.renameFolder").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	renamedFolder, err := h.services.FolderService.RenameFolder(r.Context(), folderID, ownerID, request.Name)
	if err != nil {
		respondError(w, r, err, "folder rename failed")
		return
	}

	utils.WriteJSON(w, renamedFolder, http.StatusOK)
}

func (h *Handler) deleteFolder(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	folderID, err := pathID(r, "folderId")
	if err != nil {
		respondError(w, r, err, "invalid folder id")
		return
	}

	if err := h.services.FolderService.DeleteFolder(r.Context(), folderID, ownerID); err != nil {
		respondError(w, r, err, "folder deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listFolderNotes(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	folderID, err := pathID(r, "folderId")
	if err != nil {
		respondError(w, r, err, "invalid folder id")
		return
	}

	notes, err := h.services.NoteService.ListNotesByFolder(r.Context(), folderID, ownerID)
	if err != nil {
		respondError(w, r, err, "folder note listing failed")
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}
