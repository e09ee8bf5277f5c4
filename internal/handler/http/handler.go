// Package http implements the REST surface of the checklist service:
// account registration and login, the session-protected checklist and
// solution endpoints, and the middleware chain they run behind.
package http

import (
	"github.com/solvetrack/solvetrack/internal/logger"
	"github.com/solvetrack/solvetrack/internal/service"
)

// Handler holds the service layer and the base logger the middleware chain
// derives request-scoped loggers from.
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
