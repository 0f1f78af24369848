package service

import (
	"github.com/notekeep/go-note-keeper/internal/config"
	"github.com/notekeep/go-note-keeper/internal/logger"
	"github.com/notekeep/go-note-keeper/internal/store"
)

// Services bundles every business-logic service behind its interface so the
// transport layer depends on one value instead of four constructors.
type Services struct {
	AuthService
	UserService
	FolderService
	NoteService
}

// NewServices wires all services to the given repositories and application
// configuration.
func NewServices(storages *store.Storages, cfg config.App, log *logger.Logger) *Services {
	log.Debug().Msg("creating services")
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, cfg, log),
		UserService:   NewUserService(storages.UserRepository, cfg, log),
		FolderService: NewFolderService(storages.FolderRepository, log),
		NoteService:   NewNoteService(storages.NoteRepository, storages.FolderRepository, log),
	}
}
