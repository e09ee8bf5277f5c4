package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/solvetrack/solvetrack/internal/config"
	"github.com/solvetrack/solvetrack/internal/logger"
	"github.com/solvetrack/solvetrack/internal/store"
	"github.com/solvetrack/solvetrack/models"
)

// ─────────────────────────────────────────────
// Mock AccountRepository
// ─────────────────────────────────────────────

// mockAccountRepository implements store.AccountRepository for unit tests.
// Each method field can be overridden per test case.
type mockAccountRepository struct {
	createAccountFn      func(ctx context.Context, account models.Account) (models.Account, error)
	findAccountByEmailFn func(ctx context.Context, email string) (models.Account, error)
	findAccountByIDFn    func(ctx context.Context, accountID int64) (models.Account, error)
	appendCheckedFn      func(ctx context.Context, accountID int64, questionID string) ([]string, error)
	removeCheckedFn      func(ctx context.Context, accountID int64, questionID string) ([]string, error)
	deleteAccountFn      func(ctx context.Context, accountID int64) error
}

func (m *mockAccountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	return m.createAccountFn(ctx, account)
}

func (m *mockAccountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	return m.findAccountByEmailFn(ctx, email)
}

func (m *mockAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (models.Account, error) {
	return m.findAccountByIDFn(ctx, accountID)
}

func (m *mockAccountRepository) AppendChecked(ctx context.Context, accountID int64, questionID string) ([]string, error) {
	return m.appendCheckedFn(ctx, accountID, questionID)
}

func (m *mockAccountRepository) RemoveChecked(ctx context.Context, accountID int64, questionID string) ([]string, error) {
	return m.removeCheckedFn(ctx, accountID, questionID)
}

func (m *mockAccountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	return m.deleteAccountFn(ctx, accountID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testSignKey = "unit-test-sign-key"

// newAuthService builds an AuthService over the given repo mock with the
// cheapest bcrypt cost so tests stay fast.
func newAuthService(repo store.AccountRepository) AuthService {
	return NewAuthService(repo, config.Auth{
		TokenSignKey: testSignKey,
		BcryptCost:   bcrypt.MinCost,
	}, logger.Nop())
}

// noAccountRepo answers every email lookup with "not found", the state a
// fresh registration sees.
func noAccountRepo() *mockAccountRepository {
	return &mockAccountRepository{
		findAccountByEmailFn: func(_ context.Context, _ string) (models.Account, error) {
			return models.Account{}, store.ErrNoAccountWasFound
		},
		createAccountFn: func(_ context.Context, account models.Account) (models.Account, error) {
			account.AccountID = 1
			account.Checked = []string{}
			return account, nil
		},
	}
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(digest)
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	var created models.Account
	repo := noAccountRepo()
	repo.createAccountFn = func(_ context.Context, account models.Account) (models.Account, error) {
		created = account
		account.AccountID = 7
		account.Checked = []string{}
		return account, nil
	}

	svc := newAuthService(repo)
	got, err := svc.Register(context.Background(), models.Credentials{Email: "alice@example.com", Password: "secret-pass"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.AccountID)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Empty(t, got.Checked)

	// the stored digest must verify against the plaintext and never equal it
	assert.NotEqual(t, "secret-pass", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret-pass")))
}

// TestRegister_ValidationOrder pins the fixed validation sequence: missing
// fields are reported before password length, and length before email
// format.
func TestRegister_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		creds   models.Credentials
		wantErr error
	}{
		{
			name:    "empty email wins over short password",
			creds:   models.Credentials{Email: "", Password: "abc"},
			wantErr: ErrMissingFields,
		},
		{
			name:    "empty password",
			creds:   models.Credentials{Email: "alice@example.com", Password: ""},
			wantErr: ErrMissingFields,
		},
		{
			name:    "short password wins over bad email",
			creds:   models.Credentials{Email: "not-an-email", Password: "abc"},
			wantErr: ErrPasswordTooShort,
		},
		{
			name:    "five chars is still short",
			creds:   models.Credentials{Email: "alice@example.com", Password: "12345"},
			wantErr: ErrPasswordTooShort,
		},
		{
			name:    "bad email with valid password",
			creds:   models.Credentials{Email: "not-an-email", Password: "123456"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "domain without dot",
			creds:   models.Credentials{Email: "alice@localhost", Password: "123456"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "missing local part",
			creds:   models.Credentials{Email: "@example.com", Password: "123456"},
			wantErr: ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// the repo must never be reached for validation failures
			svc := newAuthService(&mockAccountRepository{
				findAccountByEmailFn: func(_ context.Context, _ string) (models.Account, error) {
					t.Fatal("repository must not be called")
					return models.Account{}, nil
				},
			})

			_, err := svc.Register(context.Background(), tt.creds)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegister_AcceptedEmailShapes(t *testing.T) {
	emails := []string{
		"alice@example.com",
		"a.b+c@sub.example.co",
		"user_name@example-host.org",
		"UPPER@EXAMPLE.COM",
	}

	for _, email := range emails {
		t.Run(email, func(t *testing.T) {
			svc := newAuthService(noAccountRepo())

			_, err := svc.Register(context.Background(), models.Credentials{Email: email, Password: "123456"})

			assert.NoError(t, err)
		})
	}
}

func TestRegister_ExistingEmailReturnsConflict(t *testing.T) {
	repo := &mockAccountRepository{
		findAccountByEmailFn: func(_ context.Context, email string) (models.Account, error) {
			return models.Account{AccountID: 1, Email: email}, nil
		},
		createAccountFn: func(_ context.Context, _ models.Account) (models.Account, error) {
			t.Fatal("create must not be called for an existing email")
			return models.Account{}, nil
		},
	}

	svc := newAuthService(repo)
	_, err := svc.Register(context.Background(), models.Credentials{Email: "alice@example.com", Password: "123456"})

	assert.ErrorIs(t, err, ErrEmailAlreadyTaken)
}

func TestRegister_LookupFailurePropagates(t *testing.T) {
	repo := &mockAccountRepository{
		findAccountByEmailFn: func(_ context.Context, _ string) (models.Account, error) {
			return models.Account{}, errors.New("db down")
		},
	}

	svc := newAuthService(repo)
	_, err := svc.Register(context.Background(), models.Credentials{Email: "alice@example.com", Password: "123456"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmailAlreadyTaken)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	digest := hashOf(t, "secret-pass")
	repo := &mockAccountRepository{
		findAccountByEmailFn: func(_ context.Context, email string) (models.Account, error) {
			return models.Account{AccountID: 42, Email: email, PasswordHash: digest, Checked: []string{"two-sum"}}, nil
		},
	}

	svc := newAuthService(repo)
	got, err := svc.Login(context.Background(), models.Credentials{Email: "alice@example.com", Password: "secret-pass"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), got.AccountID)
	assert.Equal(t, []string{"two-sum"}, got.Checked)
}

// TestLogin_UnknownEmailAndWrongPasswordIndistinguishable pins the merged
// credential failure: both cases surface the same sentinel.
func TestLogin_UnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	digest := hashOf(t, "secret-pass")

	unknownEmailRepo := &mockAccountRepository{
		findAccountByEmailFn: func(_ context.Context, _ string) (models.Account, error) {
			return models.Account{}, store.ErrNoAccountWasFound
		},
	}
	wrongPasswordRepo := &mockAccountRepository{
		findAccountByEmailFn: func(_ context.Context, email string) (models.Account, error) {
			return models.Account{AccountID: 1, Email: email, PasswordHash: digest}, nil
		},
	}

	_, errUnknown := newAuthService(unknownEmailRepo).Login(context.Background(), models.Credentials{Email: "nobody@example.com", Password: "secret-pass"})
	_, errWrong := newAuthService(wrongPasswordRepo).Login(context.Background(), models.Credentials{Email: "alice@example.com", Password: "wrong-pass1"})

	assert.ErrorIs(t, errUnknown, ErrWrongCredentials)
	assert.ErrorIs(t, errWrong, ErrWrongCredentials)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestLogin_MissingFields(t *testing.T) {
	svc := newAuthService(&mockAccountRepository{})

	_, err := svc.Login(context.Background(), models.Credentials{Email: "", Password: ""})

	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestLogin_LookupFailurePropagates(t *testing.T) {
	repo := &mockAccountRepository{
		findAccountByEmailFn: func(_ context.Context, _ string) (models.Account, error) {
			return models.Account{}, errors.New("db down")
		},
	}

	svc := newAuthService(repo)
	_, err := svc.Login(context.Background(), models.Credentials{Email: "alice@example.com", Password: "secret-pass"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrWrongCredentials)
}

// ─────────────────────────────────────────────
// CreateToken / ResolveSession
// ─────────────────────────────────────────────

func TestCreateToken_ResolveSession_RoundTrip(t *testing.T) {
	account := models.Account{AccountID: 42, Email: "alice@example.com", Checked: []string{"two-sum"}}
	repo := &mockAccountRepository{
		findAccountByIDFn: func(_ context.Context, accountID int64) (models.Account, error) {
			require.Equal(t, int64(42), accountID)
			return account, nil
		},
	}

	svc := newAuthService(repo)

	token, err := svc.CreateToken(context.Background(), account)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	resolved, err := svc.ResolveSession(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, account, resolved)
}

func TestCreateToken_ZeroAccountIDFails(t *testing.T) {
	svc := newAuthService(&mockAccountRepository{})

	_, err := svc.CreateToken(context.Background(), models.Account{})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestResolveSession_TamperedTokenReturnsInvalid(t *testing.T) {
	svc := newAuthService(&mockAccountRepository{})

	token, err := svc.CreateToken(context.Background(), models.Account{AccountID: 42})
	require.NoError(t, err)

	_, err = svc.ResolveSession(context.Background(), token.SignedString+"x")

	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestResolveSession_GarbageTokenReturnsInvalid(t *testing.T) {
	svc := newAuthService(&mockAccountRepository{})

	_, err := svc.ResolveSession(context.Background(), "not.a.jwt")

	assert.ErrorIs(t, err, ErrTokenInvalid)
}

// TestResolveSession_DeletedAccount ensures a valid signature over a
// deleted account is surfaced as a not-found, never as a silent empty
// account.
func TestResolveSession_DeletedAccount(t *testing.T) {
	repo := &mockAccountRepository{
		findAccountByIDFn: func(_ context.Context, _ int64) (models.Account, error) {
			return models.Account{}, store.ErrNoAccountWasFound
		},
	}

	svc := newAuthService(repo)
	token, err := svc.CreateToken(context.Background(), models.Account{AccountID: 42})
	require.NoError(t, err)

	_, err = svc.ResolveSession(context.Background(), token.SignedString)

	assert.ErrorIs(t, err, store.ErrNoAccountWasFound)
}

// ─────────────────────────────────────────────
// Unregister
// ─────────────────────────────────────────────

func TestUnregister_Success(t *testing.T) {
	digest := hashOf(t, "secret-pass")
	var deletedID int64
	repo := &mockAccountRepository{
		findAccountByEmailFn: func(_ context.Context, email string) (models.Account, error) {
			return models.Account{AccountID: 7, Email: email, PasswordHash: digest}, nil
		},
		deleteAccountFn: func(_ context.Context, accountID int64) error {
			deletedID = accountID
			return nil
		},
	}

	svc := newAuthService(repo)
	err := svc.Unregister(context.Background(), models.UnsubscribeRequest{Email: "alice@example.com", Password: "secret-pass", ID: 7})

	require.NoError(t, err)
	assert.Equal(t, int64(7), deletedID)
}

func TestUnregister_WrongPassword(t *testing.T) {
	digest := hashOf(t, "secret-pass")
	repo := &mockAccountRepository{
		findAccountByEmailFn: func(_ context.Context, email string) (models.Account, error) {
			return models.Account{AccountID: 7, Email: email, PasswordHash: digest}, nil
		},
		deleteAccountFn: func(_ context.Context, _ int64) error {
			t.Fatal("delete must not be called")
			return nil
		},
	}

	svc := newAuthService(repo)
	err := svc.Unregister(context.Background(), models.UnsubscribeRequest{Email: "alice@example.com", Password: "wrong-pass1", ID: 7})

	assert.ErrorIs(t, err, ErrWrongCredentials)
}

// TestUnregister_IDMismatch covers the case where valid credentials are
// combined with somebody else's account id. The reported error matches a
// failed login so nothing leaks about which part was wrong.
func TestUnregister_IDMismatch(t *testing.T) {
	digest := hashOf(t, "secret-pass")
	repo := &mockAccountRepository{
		findAccountByEmailFn: func(_ context.Context, email string) (models.Account, error) {
			return models.Account{AccountID: 7, Email: email, PasswordHash: digest}, nil
		},
		deleteAccountFn: func(_ context.Context, _ int64) error {
			t.Fatal("delete must not be called")
			return nil
		},
	}

	svc := newAuthService(repo)
	err := svc.Unregister(context.Background(), models.UnsubscribeRequest{Email: "alice@example.com", Password: "secret-pass", ID: 8})

	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestUnregister_DeleteFailurePropagates(t *testing.T) {
	digest := hashOf(t, "secret-pass")
	repo := &mockAccountRepository{
		findAccountByEmailFn: func(_ context.Context, email string) (models.Account, error) {
			return models.Account{AccountID: 7, Email: email, PasswordHash: digest}, nil
		},
		deleteAccountFn: func(_ context.Context, _ int64) error {
			return store.ErrNoAccountWasFound
		},
	}

	svc := newAuthService(repo)
	err := svc.Unregister(context.Background(), models.UnsubscribeRequest{Email: "alice@example.com", Password: "secret-pass", ID: 7})

	assert.ErrorIs(t, err, store.ErrNoAccountWasFound)
}
