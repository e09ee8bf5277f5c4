package service

import (
	"context"
	"fmt"

	"github.com/solvetrack/solvetrack/internal/logger"
	"github.com/solvetrack/solvetrack/internal/store"
	"github.com/solvetrack/solvetrack/models"
)

// checklistService is the concrete implementation of ChecklistService.
// Every mutation goes through a single-statement repository update, so the
// service holds no state beyond its collaborators and is safe for
// concurrent use.
type checklistService struct {
	accountRepository store.AccountRepository
	logger            *logger.Logger
}

// NewChecklistService constructs a ChecklistService wired to the given
// AccountRepository.
func NewChecklistService(accountRepository store.AccountRepository, logger *logger.Logger) ChecklistService {
	return &checklistService{
		accountRepository: accountRepository,
		logger:            logger,
	}
}

// MarkComplete appends questionID to the account's checklist and returns
// the updated sequence.
//
// The operation is an append, not a set insert: marking the same question
// twice records it twice. Clients that resend a mark therefore accumulate
// duplicates; MarkIncomplete clears all of them at once.
func (c *checklistService) MarkComplete(ctx context.Context, account models.Account, questionID string) ([]string, error) {
	log := logger.FromContext(ctx)

	checked, err := c.accountRepository.AppendChecked(ctx, account.AccountID, questionID)
	if err != nil {
		log.Err(err).Int64("id", account.AccountID).Str("question", questionID).Msg("marking question failed")
		return nil, fmt.Errorf("marking question failed: %w", err)
	}

	return checked, nil
}

// MarkIncomplete removes every occurrence of questionID from the account's
// checklist and returns the updated sequence.
//
// Removal is idempotent: once the first call succeeds, repeating it is an
// empty removal that succeeds with an unchanged list.
func (c *checklistService) MarkIncomplete(ctx context.Context, account models.Account, questionID string) ([]string, error) {
	log := logger.FromContext(ctx)

	checked, err := c.accountRepository.RemoveChecked(ctx, account.AccountID, questionID)
	if err != nil {
		log.Err(err).Int64("id", account.AccountID).Str("question", questionID).Msg("unmarking question failed")
		return nil, fmt.Errorf("unmarking question failed: %w", err)
	}

	return checked, nil
}
