package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/solvetrack/solvetrack/internal/logger"
	"github.com/solvetrack/solvetrack/models"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository]. It handles account creation, lookup, checklist
// mutation, and deletion against the "accounts" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount persists a new account record and returns the fully
// populated [models.Account] with server-assigned fields (AccountID,
// JoinedAt, empty checklist).
//
// There is no unique constraint on email: uniqueness is the caller's
// responsibility via a lookup before the insert. Two racing registrations
// can therefore both succeed; that window is an accepted limitation of the
// protocol, not a repository bug.
//
// Error handling:
//   - PostgreSQL not_null_violation (23502) → [ErrAccountNotCreated].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAccount, account.Email, account.PasswordHash)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.NotNullViolation:
			return models.Account{}, ErrAccountNotCreated
		default:
			return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	created, err := scanAccount(row)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error: scanning error")
		return models.Account{}, err
	}

	return created, nil
}

// FindAccountByEmail retrieves the account whose email matches the given
// value.
//
// Error handling:
//   - Empty result set → [ErrNoAccountWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findAccountByEmail, email)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*accountRepository.FindAccountByEmail").Msg("error: row is nil")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrNoAccountWasFound
		}
		log.Err(err).Str("func", "*accountRepository.FindAccountByEmail").Msg("error: scanning error")
		return models.Account{}, err
	}

	return found, nil
}

// FindAccountByID retrieves the account with the given internal identifier.
// It is the lookup the session middleware performs after token validation.
//
// Error handling mirrors [FindAccountByEmail].
func (r *accountRepository) FindAccountByID(ctx context.Context, accountID int64) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findAccountByID, accountID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*accountRepository.FindAccountByID").Msg("error: row is nil")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrNoAccountWasFound
		}
		log.Err(err).Str("func", "*accountRepository.FindAccountByID").Msg("error: scanning error")
		return models.Account{}, err
	}

	return found, nil
}

// AppendChecked appends questionID to the account's checklist and returns
// the updated sequence. The append is a single UPDATE statement, so it is
// atomic per row; duplicates accumulate when the same question is appended
// twice.
//
// Returns [ErrNoAccountWasFound] if the account id matches no row.
func (r *accountRepository) AppendChecked(ctx context.Context, accountID int64, questionID string) ([]string, error) {
	return r.updateChecked(ctx, appendChecked, accountID, questionID, "*accountRepository.AppendChecked")
}

// RemoveChecked removes every occurrence of questionID from the account's
// checklist and returns the updated sequence. Removing an absent value is a
// no-op that still succeeds, which makes repeated removal idempotent.
//
// Returns [ErrNoAccountWasFound] if the account id matches no row.
func (r *accountRepository) RemoveChecked(ctx context.Context, accountID int64, questionID string) ([]string, error) {
	return r.updateChecked(ctx, removeChecked, accountID, questionID, "*accountRepository.RemoveChecked")
}

func (r *accountRepository) updateChecked(ctx context.Context, query string, accountID int64, questionID, funcName string) ([]string, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, accountID, questionID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error: row is nil")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	var rawChecked []byte
	if err := row.Scan(&rawChecked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoAccountWasFound
		}
		log.Err(err).Str("func", funcName).Msg("error: scanning error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	checked, err := decodeChecked(rawChecked)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error: decoding checklist")
		return nil, err
	}

	return checked, nil
}

// DeleteAccount removes the account row with the given identifier.
//
// Returns [ErrNoAccountWasFound] when no row was deleted, so that callers
// can distinguish "already gone" from a successful removal.
func (r *accountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteAccount, accountID)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.DeleteAccount").Msg("error: delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoAccountWasFound
	}

	return nil
}

// scanAccount reads one account row in canonical column order.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (models.Account, error) {
	var account models.Account
	var rawChecked []byte

	if err := row.Scan(&account.AccountID, &account.Email, &account.PasswordHash, &rawChecked, &account.JoinedAt); err != nil {
		return models.Account{}, err
	}

	checked, err := decodeChecked(rawChecked)
	if err != nil {
		return models.Account{}, err
	}
	account.Checked = checked

	return account, nil
}

// decodeChecked unmarshals the jsonb checklist column. A NULL column (legacy
// rows) decodes to an empty list.
func decodeChecked(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}

	var checked []string
	if err := json.Unmarshal(raw, &checked); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if checked == nil {
		checked = []string{}
	}

	return checked, nil
}
