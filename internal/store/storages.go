package store

import (
	"context"

	"github.com/notekeep/go-note-keeper/internal/config"
	"github.com/notekeep/go-note-keeper/internal/logger"
)

// Storages aggregates every repository backed by the shared database
// connection. It is the single persistence entry point handed to the service
// layer.
type Storages struct {
	UserRepository   UserRepository
	FolderRepository FolderRepository
	NoteRepository   NoteRepository

	// DB is the shared connection; exposed so the caller can run
	// migrations and close the pool on shutdown.
	DB *DB
}

// NewStorages opens the PostgreSQL connection described by cfg and constructs
// all repositories on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		FolderRepository: NewFolderRepository(db, log),
		NoteRepository:   NewNoteRepository(db, log),
		DB:               db,
	}, nil
}
