// Package adapter provides transport-layer abstractions for communicating with
// the SolveTrack server.
//
// The primary abstraction is [ServerAdapter], which decouples the command-line
// client from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/solvetrack/solvetrack/models"
)

// ServerAdapter defines transport-agnostic communication with the SolveTrack
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It is called automatically after a successful
	// Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// AccountID extracts the account identifier from the stored bearer token.
	// The claims are read without signature verification; only the server can
	// verify the token, the client merely needs the id for unsubscribe
	// requests.
	AccountID() (int64, error)

	// Register creates a new account with the provided credentials. On success
	// it stores the returned bearer token via SetToken.
	Register(ctx context.Context, creds models.Credentials) (string, error)

	// Login authenticates with the server. On success it stores the returned
	// bearer token via SetToken.
	Login(ctx context.Context, creds models.Credentials) (string, error)

	// Profile fetches the checklist of the authenticated account.
	Profile(ctx context.Context) ([]string, error)

	// Check marks a question as completed and returns the updated checklist.
	Check(ctx context.Context, questionID string) ([]string, error)

	// Uncheck removes a question from the checklist and returns the updated
	// checklist.
	Uncheck(ctx context.Context, questionID string) ([]string, error)

	// Upload submits a free-text solution for a question.
	Upload(ctx context.Context, req models.UploadRequest) error

	// Unsubscribe deletes the account after re-verifying the credentials.
	// The stored bearer token is cleared on success.
	Unsubscribe(ctx context.Context, creds models.Credentials) error
}
