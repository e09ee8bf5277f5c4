package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/solvetrack/solvetrack/internal/config"
	"github.com/solvetrack/solvetrack/internal/logger"
)

// NewConnectSQLite opens the file-backed SQLite database the client uses to
// keep its session between invocations. The file is created on first run.
func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	if err := ensureDBFile(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating session database file")
		return nil, fmt.Errorf("error creating session database file")
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening session database")
		return nil, fmt.Errorf("error opening session database")
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("session database ping failed")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to session database")

	return &DB{DB: conn, logger: log}, nil
}

func ensureDBFile(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating session database file: %w", err)
	}

	return f.Close()
}
