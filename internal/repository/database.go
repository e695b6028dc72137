package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // SQLite driver
)

// NewDB opens and pings the configured database.
// dbType is "sqlite" (dsn is a file path) or "postgres" (dsn is a URL).
func NewDB(dbType, dsn string, logger *zap.Logger) (*sqlx.DB, error) {
	var (
		db  *sqlx.DB
		err error
	)

	switch dbType {
	case "sqlite":
		db, err = sqlx.Connect("sqlite", dsn+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
		if err == nil {
			// SQLite allows a single writer.
			db.SetMaxOpenConns(1)
		}
	case "postgres":
		db, err = sqlx.Connect("postgres", dsn)
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", dbType, err)
	}

	logger.Info("Successfully connected to the database", zap.String("type", dbType))
	return db, nil
}
