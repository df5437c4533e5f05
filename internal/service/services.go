package service

import (
	"github.com/mkazakov/go-blog/internal/config"
	"github.com/mkazakov/go-blog/internal/logger"
	"github.com/mkazakov/go-blog/internal/store"
)

type Services struct {
	AuthService AuthService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.App, logger),
	}
}
