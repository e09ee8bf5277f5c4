package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNoLocalSession is returned by [SessionCache.Load] when the cache holds
// no saved session.
var ErrNoLocalSession = errors.New("no local session saved")

// LocalSession is the client-side record of the most recent login: the
// account email and the bearer token returned by the server.
type LocalSession struct {
	Email   string
	Token   string
	SavedAt time.Time
}

// SessionCache persists the client's session token in a local SQLite file
// so the command-line client stays logged in between invocations. Exactly
// one session is kept; a new login replaces the previous one.
type SessionCache struct {
	db *DB
}

const createSessionTable = `CREATE TABLE IF NOT EXISTS session (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    email TEXT NOT NULL,
    token TEXT NOT NULL,
    saved_at TIMESTAMP NOT NULL
);`

// NewSessionCache prepares the session table and returns a ready cache.
func NewSessionCache(ctx context.Context, db *DB) (*SessionCache, error) {
	if _, err := db.ExecContext(ctx, createSessionTable); err != nil {
		return nil, fmt.Errorf("error creating session table: %w", err)
	}

	return &SessionCache{db: db}, nil
}

// Save stores the session, replacing any previously saved one.
func (c *SessionCache) Save(ctx context.Context, session LocalSession) error {
	const upsertSession = `INSERT INTO session (id, email, token, saved_at)
    VALUES (1, ?, ?, ?)
    ON CONFLICT (id) DO UPDATE SET email = excluded.email, token = excluded.token, saved_at = excluded.saved_at;`

	if session.SavedAt.IsZero() {
		session.SavedAt = time.Now()
	}

	if _, err := c.db.ExecContext(ctx, upsertSession, session.Email, session.Token, session.SavedAt); err != nil {
		return fmt.Errorf("error saving local session: %w", err)
	}

	return nil
}

// Load returns the saved session or [ErrNoLocalSession] when none exists.
func (c *SessionCache) Load(ctx context.Context) (LocalSession, error) {
	const selectSession = `SELECT email, token, saved_at FROM session WHERE id = 1;`

	var session LocalSession
	row := c.db.QueryRowContext(ctx, selectSession)
	if err := row.Scan(&session.Email, &session.Token, &session.SavedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LocalSession{}, ErrNoLocalSession
		}
		return LocalSession{}, fmt.Errorf("error loading local session: %w", err)
	}

	return session, nil
}

// Clear removes the saved session. Clearing an empty cache is a no-op.
func (c *SessionCache) Clear(ctx context.Context) error {
	const deleteSession = `DELETE FROM session WHERE id = 1;`

	if _, err := c.db.ExecContext(ctx, deleteSession); err != nil {
		return fmt.Errorf("error clearing local session: %w", err)
	}

	return nil
}
