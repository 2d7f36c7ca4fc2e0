package service

import (
	"github.com/moviereview/go-movie-review/internal/config"
	"github.com/moviereview/go-movie-review/internal/logger"
	"github.com/moviereview/go-movie-review/internal/store"
	"github.com/moviereview/go-movie-review/internal/workers"
)

type Services struct {
	AuthService AuthService
}

func NewServices(storages *store.Storages, cfg config.Auth, logger *logger.Logger) *Services {
	hashPool := workers.NewHashPool(0)

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, hashPool, cfg, logger),
	}
}
