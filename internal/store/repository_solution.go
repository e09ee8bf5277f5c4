package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/solvetrack/solvetrack/internal/logger"
	"github.com/solvetrack/solvetrack/models"
)

// solutionRepository is the PostgreSQL-backed implementation of
// [SolutionRepository]. Records in the "solutions" table are append-only:
// the repository exposes no update or delete operation.
type solutionRepository struct {
	logger  *logger.Logger
	db      *DB
	builder sq.StatementBuilderType
}

// NewSolutionRepository constructs a [SolutionRepository] backed by the
// provided database connection and logger.
func NewSolutionRepository(db *DB, logger *logger.Logger) SolutionRepository {
	logger.Debug().Msg("creating solution repository")
	return &solutionRepository{
		db:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateSolution persists a new solution record and returns it with the
// server-assigned SolutionID and CreatedAt.
//
// Error handling:
//   - PostgreSQL not_null_violation (23502) → [ErrSolutionNotSaved].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *solutionRepository) CreateSolution(ctx context.Context, solution models.Solution) (models.Solution, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(solution.TableName()).
		Columns("email", "confirm_email", "solution", "ques_id").
		Values(solution.Email, solution.ConfirmEmail, solution.SolutionText, solution.QuestionID).
		Suffix("RETURNING solution_id, email, confirm_email, solution, ques_id, created_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*solutionRepository.CreateSolution").Msg("error: building query")
		return models.Solution{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*solutionRepository.CreateSolution").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.NotNullViolation:
			return models.Solution{}, ErrSolutionNotSaved
		default:
			return models.Solution{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var created models.Solution
	if err := row.Scan(&created.SolutionID, &created.Email, &created.ConfirmEmail, &created.SolutionText, &created.QuestionID, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*solutionRepository.CreateSolution").Msg("error: scanning error")
		return models.Solution{}, err
	}

	return created, nil
}

// FindSolutionsByQuestion returns every submission recorded for the given
// question, oldest first. Used for downstream manual review of answers.
func (r *solutionRepository) FindSolutionsByQuestion(ctx context.Context, questionID string) ([]models.Solution, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("solution_id", "email", "confirm_email", "solution", "ques_id", "created_at").
		From(models.Solution{}.TableName()).
		Where(sq.Eq{"ques_id": questionID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*solutionRepository.FindSolutionsByQuestion").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*solutionRepository.FindSolutionsByQuestion").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var solutions []models.Solution
	for rows.Next() {
		var s models.Solution
		if err := rows.Scan(&s.SolutionID, &s.Email, &s.ConfirmEmail, &s.SolutionText, &s.QuestionID, &s.CreatedAt); err != nil {
			log.Err(err).Str("func", "*solutionRepository.FindSolutionsByQuestion").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		solutions = append(solutions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return solutions, nil
}
