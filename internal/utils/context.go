// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password
// hashing, HTTP response writing, session token generation and validation,
// and other common operations.
package utils

import (
	"context"

	"github.com/solvetrack/solvetrack/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AccountCtxKey is the key used to store the authenticated account in the
// request context. The session middleware writes it after resolving the
// bearer token; downstream handlers read it via GetAccountFromContext and
// never accept an account identifier from the request body.
var AccountCtxKey = contextKey("account")

// GetAccountFromContext retrieves the authenticated account from the context.
//
// Returns the account and an ok flag:
//   - ok == true: value is found and has the correct type
//   - ok == false: value is missing or has an unexpected type
//
// Example usage:
//
//	account, ok := utils.GetAccountFromContext(ctx)
//	if !ok {
//	    // handle missing account in context
//	}
func GetAccountFromContext(ctx context.Context) (models.Account, bool) {
	account, ok := ctx.Value(AccountCtxKey).(models.Account)
	return account, ok
}
