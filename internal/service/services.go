package service

import (
	"github.com/solvetrack/solvetrack/internal/config"
	"github.com/solvetrack/solvetrack/internal/logger"
	"github.com/solvetrack/solvetrack/internal/store"
)

// Services bundles every business-logic service the transport layer needs.
type Services struct {
	AuthService      AuthService
	ChecklistService ChecklistService
	SolutionService  SolutionService
}

// NewServices wires all services to the given storages and configuration.
func NewServices(storages *store.Storages, cfg config.Auth, logger *logger.Logger) *Services {
	logger.Info().Msg("creating services...")
	return &Services{
		AuthService:      NewAuthService(storages.Account, cfg, logger),
		ChecklistService: NewChecklistService(storages.Account, logger),
		SolutionService:  NewSolutionService(storages.Solution, logger),
	}
}
