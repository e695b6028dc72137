package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// SessionRepository stores session values in the session_values table.
// updated_at holds unix seconds so both dialects compare it the same way.
// It implements session.Store.
type SessionRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewSessionRepository(db *sqlx.DB, logger *zap.Logger) *SessionRepository {
	return &SessionRepository{db: db, logger: logger}
}

func (r *SessionRepository) Get(ctx context.Context, sessionID, key string) (string, bool, error) {
	var value string
	query := r.db.Rebind(`SELECT value FROM session_values WHERE session_id = ? AND key_name = ?`)
	err := r.db.GetContext(ctx, &value, query, sessionID, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *SessionRepository) Set(ctx context.Context, sessionID, key, value string) error {
	query := r.db.Rebind(`
		INSERT INTO session_values (session_id, key_name, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (session_id, key_name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`)
	_, err := r.db.ExecContext(ctx, query, sessionID, key, value, time.Now().Unix())
	return err
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`DELETE FROM session_values WHERE session_id = ? AND key_name IN (?)`, sessionID, keys)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	return err
}

// PurgeBefore removes every session whose newest value was written before
// cutoff and returns how many values went. Sessions go whole so a user record
// never outlives its token.
func (r *SessionRepository) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := r.db.Rebind(`
		DELETE FROM session_values WHERE session_id IN (
			SELECT session_id FROM session_values GROUP BY session_id HAVING MAX(updated_at) < ?
		)
	`)
	res, err := r.db.ExecContext(ctx, query, cutoff.Unix())
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n > 0 {
		r.logger.Info("Purged stale session values", zap.Int64("count", n))
	}
	return n, nil
}

// RunJanitor purges sessions idle longer than ttl every interval until ctx is done.
func (r *SessionRepository) RunJanitor(ctx context.Context, ttl, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if _, err := r.PurgeBefore(ctx, now.Add(-ttl)); err != nil && ctx.Err() == nil {
				r.logger.Error("Failed to purge session values", zap.Error(err))
			}
		}
	}
}
