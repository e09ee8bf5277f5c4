package service

import (
	"context"

	"github.com/solvetrack/solvetrack/models"
)

// AuthService handles the account lifecycle: registration, login, session
// token issue/verify, and credentialed account deletion.
type AuthService interface {
	Register(ctx context.Context, creds models.Credentials) (models.Account, error)
	Login(ctx context.Context, creds models.Credentials) (models.Account, error)

	CreateToken(ctx context.Context, account models.Account) (models.Token, error)
	// ResolveSession validates a raw session token and loads the account it
	// names. A valid signature over an account that no longer exists is an
	// authentication failure, not a silent null.
	ResolveSession(ctx context.Context, tokenString string) (models.Account, error)

	Unregister(ctx context.Context, req models.UnsubscribeRequest) error
}

// ChecklistService mutates an authenticated account's completed-question
// list. Both operations return the full updated sequence.
type ChecklistService interface {
	MarkComplete(ctx context.Context, account models.Account, questionID string) ([]string, error)
	MarkIncomplete(ctx context.Context, account models.Account, questionID string) ([]string, error)
}

// SolutionService records free-text solution submissions for authenticated
// accounts.
type SolutionService interface {
	Submit(ctx context.Context, account models.Account, req models.UploadRequest) (models.Solution, error)
}
