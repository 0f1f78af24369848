package http

import (
	"github.com/notekeep/go-note-keeper/internal/config"
	"github.com/notekeep/go-note-keeper/internal/logger"
	"github.com/notekeep/go-note-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	// cfg drives the session cookie attributes: Max-Age from the token
	// duration, Secure from the environment.
	cfg config.App

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}
