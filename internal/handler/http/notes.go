package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/notekeep/go-note-keeper/internal/logger"
	"github.com/notekeep/go-note-keeper/internal/utils"
	"github.com/notekeep/go-note-keeper/models"
)

type createNoteRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	FolderID *int64 `json:"folderId"`
}

// updateNoteRequest distinguishes an absent folderId (leave unchanged) from
// an explicit null (detach from its folder), which a plain *int64 cannot
// express. FolderID stays raw until toNoteUpdate inspects it.
type updateNoteRequest struct {
	Title    *string         `json:"title"`
	Content  *string         `json:"content"`
	FolderID json.RawMessage `json:"folderId"`
}

var jsonNull = []byte("null")

func (r updateNoteRequest) toNoteUpdate() (models.NoteUpdate, error) {
	update := models.NoteUpdate{
		Title:   r.Title,
		Content: r.Content,
	}

	if len(r.FolderID) == 0 {
		return update, nil
	}
	if bytes.Equal(r.FolderID, jsonNull) {
		update.SetFolderNil = true
		return update, nil
	}

	var folderID int64
	if err := json.Unmarshal(r.FolderID, &folderID); err != nil {
		return models.NoteUpdate{}, err
	}
	update.FolderID = &folderID

	return update, nil
}

type trashRequest struct {
	Deleted bool `json:"deleted"`
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	var request createNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdNote, err := h.services.NoteService.CreateNote(r.Context(), ownerID, request.Title, request.Content, request.FolderID)
	if err != nil {
		respondError(w, r, err, "note creation failed")
		return
	}

	utils.WriteJSON(w, createdNote, http.StatusCreated)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	notes, err := h.services.NoteService.ListActiveNotesByOwner(r.Context(), ownerID)
	if err != nil {
		respondError(w, r, err, "note listing failed")
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) listTrashedNotes(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	notes, err := h.services.NoteService.ListTrashedNotesByOwner(r.Context(), ownerID)
	if err != nil {
		respondError(w, r, err, "trashed note listing failed")
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	noteID, err := pathID(r, "noteId")
	if err != nil {
		respondError(w, r, err, "invalid note id")
		return
	}

	foundNote, err := h.services.NoteService.GetNoteByID(r.Context(), noteID, ownerID)
	if err != nil {
		respondError(w, r, err, "note not found")
		return
	}

	utils.WriteJSON(w, foundNote, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	noteID, err := pathID(r, "noteId")
	if err != nil {
		respondError(w, r, err, "invalid note id")
		return
	}

	var request updateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	update, err := request.toNoteUpdate()
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Msg("invalid folderId value")
		http.Error(w, "invalid folderId value", http.StatusBadRequest)
		return
	}

	updatedNote, err := h.services.NoteService.UpdateNote(r.Context(), noteID, ownerID, update)
	if err != nil {
		respondError(w, r, err, "note update failed")
		return
	}

	utils.WriteJSON(w, updatedNote, http.StatusOK)
}

func (h *Handler) trashNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	noteID, err := pathID(r, "noteId")
	if err != nil {
		respondError(w, r, err, "invalid note id")
		return
	}

	var request trashRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.trashNote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedNote, err := h.services.NoteService.SetNoteDeleted(r.Context(), noteID, ownerID, request.Deleted)
	if err != nil {
		respondError(w, r, err, "note trash toggle failed")
		return
	}

	utils.WriteJSON(w, updatedNote, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	noteID, err := pathID(r, "noteId")
	if err != nil {
		respondError(w, r, err, "invalid note id")
		return
	}

	if err := h.services.NoteService.DeleteNote(r.Context(), noteID, ownerID); err != nil {
		respondError(w, r, err, "note deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
