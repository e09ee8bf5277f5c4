package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/solvetrack/solvetrack/internal/config"
	"github.com/solvetrack/solvetrack/internal/logger"
	"github.com/solvetrack/solvetrack/internal/store"
	"github.com/solvetrack/solvetrack/internal/utils"
	"github.com/solvetrack/solvetrack/models"
)

// emailPattern accepts an RFC-5322-ish address: permissive local part, "@",
// and a domain with at least one dot segment.
var emailPattern = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9-]+(\\.[a-zA-Z0-9-]+)+$")

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, session token
// lifecycle, and account deletion, using an AccountRepository for
// persistence and bcrypt for password hashing.
type authService struct {
	// accountRepository is the data-access layer used to create, look up,
	// and delete accounts.
	accountRepository store.AccountRepository

	// hasher produces and verifies bcrypt password digests.
	hasher *utils.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify session JWTs.
	// Rotating it invalidates every outstanding session at once.
	tokenSignKey string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given
// AccountRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(accountRepository store.AccountRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		accountRepository: accountRepository,
		hasher:            utils.NewPasswordHasher(cfg.BcryptCost),
		tokenSignKey:      cfg.TokenSignKey,
		logger:            logger,
	}
}

// Register creates a new account.
//
// Validation runs in a fixed order: missing fields, password length, email
// format, existing email. The existence check is a lookup before the insert
// rather than a database constraint, so two racing registrations with the
// same email can both succeed; sequential registrations cannot.
//
// Returns the persisted account (with server-assigned AccountID and empty
// checklist) or:
//   - ErrMissingFields if email or password is empty.
//   - ErrPasswordTooShort if the password has fewer than six characters.
//   - ErrInvalidEmail if the email does not match the accepted pattern.
//   - ErrEmailAlreadyTaken if an account with the same email exists.
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.Account, error) {
	log := logger.FromContext(ctx)

	if creds.Email == "" || creds.Password == "" {
		log.Error().Str("email", creds.Email).Msg("missing registration fields")
		return models.Account{}, ErrMissingFields
	}
	if len(creds.Password) < 6 {
		return models.Account{}, ErrPasswordTooShort
	}
	if !emailPattern.MatchString(creds.Email) {
		log.Error().Str("email", creds.Email).Msg("invalid email provided")
		return models.Account{}, ErrInvalidEmail
	}

	_, err := a.accountRepository.FindAccountByEmail(ctx, creds.Email)
	if err == nil {
		return models.Account{}, ErrEmailAlreadyTaken
	}
	if !errors.Is(err, store.ErrNoAccountWasFound) {
		log.Err(err).Msg("existence check failed")
		return models.Account{}, fmt.Errorf("existence check failed: %w", err)
	}

	digest, err := a.hasher.Hash(creds.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Account{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registered, err := a.accountRepository.CreateAccount(ctx, models.Account{
		Email:        creds.Email,
		PasswordHash: digest,
	})
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	return registered, nil
}

// Login authenticates an existing account.
//
// An unknown email and a wrong password produce the same ErrWrongCredentials
// so the caller cannot tell which of the two failed.
//
// Returns the authenticated account or:
//   - ErrMissingFields if email or password is empty.
//   - ErrPasswordTooShort if the password has fewer than six characters.
//   - ErrWrongCredentials if no account matches or the password is wrong.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.Account, error) {
	log := logger.FromContext(ctx)

	if creds.Email == "" || creds.Password == "" {
		return models.Account{}, ErrMissingFields
	}
	if len(creds.Password) < 6 {
		return models.Account{}, ErrPasswordTooShort
	}

	found, err := a.accountRepository.FindAccountByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoAccountWasFound) {
			return models.Account{}, ErrWrongCredentials
		}
		log.Err(err).Msg("account search by email failed")
		return models.Account{}, fmt.Errorf("account search by email failed: %w", err)
	}

	ok, err := a.hasher.Verify(creds.Password, found.PasswordHash)
	if err != nil {
		log.Err(err).Int64("id", found.AccountID).Msg("password verification failed")
		return models.Account{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Error().Int64("id", found.AccountID).Msg("wrong password")
		return models.Account{}, ErrWrongCredentials
	}

	return found, nil
}

// CreateToken issues a signed session JWT for the given account.
//
// The token binds only the account ID; it has no expiry claim and no
// server-side revocation, so it stays valid until the signing key rotates.
func (a *authService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	token, err := utils.GenerateSessionToken(account.AccountID, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ResolveSession validates a raw session token and loads the account it
// names.
//
// Any verification failure (bad signature, tampered payload, malformed
// structure) is normalised to ErrTokenInvalid so that callers do not need
// to inspect low-level JWT errors. A token that verifies but names an
// account that no longer exists yields store.ErrNoAccountWasFound; the
// transport layer treats that as an authentication failure too.
func (a *authService) ResolveSession(ctx context.Context, tokenString string) (models.Account, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateSessionToken(tokenString, a.tokenSignKey)
	if err != nil {
		return models.Account{}, ErrTokenInvalid
	}

	account, err := a.accountRepository.FindAccountByID(ctx, token.AccountID)
	if err != nil {
		if errors.Is(err, store.ErrNoAccountWasFound) {
			log.Error().Int64("id", token.AccountID).Msg("valid token for missing account")
			return models.Account{}, store.ErrNoAccountWasFound
		}
		log.Err(err).Int64("id", token.AccountID).Msg("account lookup failed")
		return models.Account{}, fmt.Errorf("account lookup failed: %w", err)
	}

	return account, nil
}

// Unregister deletes an account after re-proving ownership with the full
// credential pair. The request's account ID must match the credentialed
// account; a mismatch is reported as ErrWrongCredentials, the same error
// as a failed login, to avoid leaking which part was wrong.
func (a *authService) Unregister(ctx context.Context, req models.UnsubscribeRequest) error {
	log := logger.FromContext(ctx)

	account, err := a.Login(ctx, models.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		return err
	}

	if req.ID != account.AccountID {
		log.Error().Int64("id", req.ID).Int64("account_id", account.AccountID).Msg("unsubscribe id mismatch")
		return ErrWrongCredentials
	}

	if err := a.accountRepository.DeleteAccount(ctx, account.AccountID); err != nil {
		log.Err(err).Int64("id", account.AccountID).Msg("account deletion failed")
		return fmt.Errorf("account deletion failed: %w", err)
	}

	return nil
}
