package service

import (
	"context"
	"fmt"

	"github.com/solvetrack/solvetrack/internal/logger"
	"github.com/solvetrack/solvetrack/internal/store"
	"github.com/solvetrack/solvetrack/models"
)

// solutionService is the concrete implementation of SolutionService.
type solutionService struct {
	solutionRepository store.SolutionRepository
	logger             *logger.Logger
}

// NewSolutionService constructs a SolutionService wired to the given
// SolutionRepository.
func NewSolutionService(solutionRepository store.SolutionRepository, logger *logger.Logger) SolutionService {
	return &solutionService{
		solutionRepository: solutionRepository,
		logger:             logger,
	}
}

// Submit records a free-text solution for the authenticated account.
//
// All three request fields must be non-empty; otherwise ErrMissingFields is
// returned and nothing is persisted. The confirm email is stored exactly as
// supplied and is NOT compared with the account's email; downstream review
// does that manually. There is no dedup: submitting twice for the same
// question records two rows.
func (s *solutionService) Submit(ctx context.Context, account models.Account, req models.UploadRequest) (models.Solution, error) {
	log := logger.FromContext(ctx)

	if req.ConfirmEmail == "" || req.Solution == "" || req.QuesID == "" {
		log.Error().Int64("id", account.AccountID).Msg("missing solution fields")
		return models.Solution{}, ErrMissingFields
	}

	created, err := s.solutionRepository.CreateSolution(ctx, models.Solution{
		Email:        account.Email,
		ConfirmEmail: req.ConfirmEmail,
		SolutionText: req.Solution,
		QuestionID:   req.QuesID,
	})
	if err != nil {
		log.Err(err).Int64("id", account.AccountID).Str("question", req.QuesID).Msg("solution submission failed")
		return models.Solution{}, fmt.Errorf("solution submission failed: %w", err)
	}

	return created, nil
}
