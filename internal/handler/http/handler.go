package http

import (
	"github.com/moviereview/go-movie-review/internal/config"
	"github.com/moviereview/go-movie-review/internal/logger"
	"github.com/moviereview/go-movie-review/internal/service"
)

type Handler struct {
	services *service.Services

	// corsOrigin is the single browser origin allowed by the CORS policy.
	corsOrigin string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		corsOrigin: cfg.CORSOrigin,
		logger:     logger,
	}
}
