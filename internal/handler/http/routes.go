package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/auth/status", h.status)
	})

	// routes behind the session cookie
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users/{id}", h.getUser)
		r.Put("/api/users/{id}", h.updateUser)
		r.Delete("/api/users/{id}", h.deleteUser)

		r.Post("/api/folders", h.createFolder)
		r.Get("/api/folders", h.listFolders)
		r.Put("/api/folders/{folderId}", h.renameFolder)
		r.Delete("/api/folders/{folderId}", h.deleteFolder)
		r.Get("/api/folders/{folderId}/notes", h.listFolderNotes)

		r.Post("/api/notes", h.createNote)
		r.Get("/api/notes", h.listNotes)
		r.Get("/api/notes/trash", h.listTrashedNotes)
		r.Get("/api/notes/{noteId}", h.getNote)
		r.Put("/api/notes/{noteId}", h.updateNote)
		r.Put("/api/notes/{noteId}/trash", h.trashNote)
		r.Delete("/api/notes/{noteId}", h.deleteNote)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
