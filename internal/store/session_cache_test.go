package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/solvetrack/solvetrack/internal/logger"
)

func newTestSessionCache(t *testing.T) (*SessionCache, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS session").
		WillReturnResult(sqlmock.NewResult(0, 0))

	cache, err := NewSessionCache(context.Background(), &DB{DB: db, logger: logger.Nop()})
	if err != nil {
		t.Fatalf("failed to create session cache: %v", err)
	}
	return cache, mock, db
}

func TestSessionCache_SaveUpserts(t *testing.T) {
	cache, mock, db := newTestSessionCache(t)
	defer db.Close()

	savedAt := time.Now()

	mock.ExpectExec("INSERT INTO session").
		WithArgs("alice@example.com", "signed.jwt", savedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := cache.Save(context.Background(), LocalSession{
		Email:   "alice@example.com",
		Token:   "signed.jwt",
		SavedAt: savedAt,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSessionCache_SaveFillsTimestamp(t *testing.T) {
	cache, mock, db := newTestSessionCache(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO session").
		WithArgs("alice@example.com", "signed.jwt", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := cache.Save(context.Background(), LocalSession{
		Email: "alice@example.com",
		Token: "signed.jwt",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSessionCache_LoadReturnsSavedSession(t *testing.T) {
	cache, mock, db := newTestSessionCache(t)
	defer db.Close()

	savedAt := time.Now()
	rows := sqlmock.NewRows([]string{"email", "token", "saved_at"}).
		AddRow("alice@example.com", "signed.jwt", savedAt)

	mock.ExpectQuery("SELECT email, token, saved_at FROM session").
		WillReturnRows(rows)

	session, err := cache.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Email != "alice@example.com" || session.Token != "signed.jwt" {
		t.Errorf("unexpected session: %+v", session)
	}
}

func TestSessionCache_LoadEmpty(t *testing.T) {
	cache, mock, db := newTestSessionCache(t)
	defer db.Close()

	mock.ExpectQuery("SELECT email, token, saved_at FROM session").
		WillReturnRows(sqlmock.NewRows([]string{"email", "token", "saved_at"}))

	_, err := cache.Load(context.Background())
	if !errors.Is(err, ErrNoLocalSession) {
		t.Fatalf("expected ErrNoLocalSession, got %v", err)
	}
}

func TestSessionCache_Clear(t *testing.T) {
	cache, mock, db := newTestSessionCache(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM session").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := cache.Clear(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Clearing when nothing is saved still succeeds.
func TestSessionCache_ClearEmptyIsNoOp(t *testing.T) {
	cache, mock, db := newTestSessionCache(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM session").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := cache.Clear(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
