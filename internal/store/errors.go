package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoAccountWasFound is returned when a query expected to match at
	// least one account record produces an empty result set. Checklist
	// updates targeting an account that no longer exists also return it.
	ErrNoAccountWasFound = errors.New("no account was found")

	// ErrAccountNotCreated is returned when an INSERT of a new account is
	// rejected by the database before a row could be produced.
	ErrAccountNotCreated = errors.New("account was not created")

	// ErrSolutionNotSaved is returned when an INSERT of a solution record
	// is rejected by the database, typically because a required column
	// received no value.
	ErrSolutionNotSaved = errors.New("solution was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
