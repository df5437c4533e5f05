package http

import (
	"github.com/mkazakov/go-blog/internal/logger"
	"github.com/mkazakov/go-blog/internal/service"
	"github.com/mkazakov/go-blog/internal/session"
)

type Handler struct {
	services *service.Services
	session  *session.Manager

	logger *logger.Logger
}

func NewHandler(services *service.Services, session *session.Manager, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		session:  session,
		logger:   logger,
	}
}
