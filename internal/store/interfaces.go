package store

import (
	"context"

	"github.com/solvetrack/solvetrack/models"
)

// AccountRepository is the persistence contract for account records and
// their checklists. Checklist mutations are single-statement atomic updates;
// the full list is never read, modified, and written back in process memory.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	FindAccountByEmail(ctx context.Context, email string) (models.Account, error)
	FindAccountByID(ctx context.Context, accountID int64) (models.Account, error)

	AppendChecked(ctx context.Context, accountID int64, questionID string) ([]string, error)
	RemoveChecked(ctx context.Context, accountID int64, questionID string) ([]string, error)

	DeleteAccount(ctx context.Context, accountID int64) error
}

// SolutionRepository is the persistence contract for append-only solution
// submissions.
type SolutionRepository interface {
	CreateSolution(ctx context.Context, solution models.Solution) (models.Solution, error)
	FindSolutionsByQuestion(ctx context.Context, questionID string) ([]models.Solution, error)
}
