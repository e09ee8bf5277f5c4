package store

import (
	"github.com/solvetrack/solvetrack/internal/logger"
)

// Storages bundles every repository backed by the shared database
// connection. It is the single value the service layer receives.
type Storages struct {
	Account  AccountRepository
	Solution SolutionRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	logger.Info().Msg("creating storages...")
	return &Storages{
		Account:  NewAccountRepository(db, logger),
		Solution: NewSolutionRepository(db, logger),
	}
}
