package postgre

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"neuro-assist/internal/journal/repository"
	"neuro-assist/pkg/log"
)

type implRepository struct {
	pool *pgxpool.Pool
	l    log.Logger
}

// New connects to Postgres and returns a Repository for the journal domain.
func New(ctx context.Context, dsn string, l log.Logger) (repository.Repository, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("journal/repository/postgre: connect: %w", err)
	}

	r := &implRepository{pool: pool, l: l}
	if err := r.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return r, nil
}

// migrate creates the journal tables when they do not exist yet.
func (r *implRepository) migrate(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS routines (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			label TEXT NOT NULL,
			emoji TEXT NOT NULL DEFAULT '',
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			ts TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS idx_routines_user ON routines (user_id, ts);`,
		`CREATE TABLE IF NOT EXISTS emotions (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			label TEXT NOT NULL,
			emoji TEXT NOT NULL DEFAULT '',
			intensity INT NOT NULL DEFAULT 3,
			ts TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS idx_emotions_user ON emotions (user_id, ts);`,
		`CREATE TABLE IF NOT EXISTS messages (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			contact_id TEXT NOT NULL,
			sender_id TEXT NOT NULL,
			text TEXT NOT NULL,
			type TEXT NOT NULL DEFAULT 'text',
			points INT NOT NULL DEFAULT 0,
			ts TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS idx_messages_conversation ON messages (user_id, contact_id, ts);`,
		`CREATE TABLE IF NOT EXISTS daily_questions (
			id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			day TEXT NOT NULL,
			text TEXT NOT NULL,
			emoji TEXT NOT NULL DEFAULT '',
			answer TEXT NOT NULL DEFAULT '',
			position INT NOT NULL DEFAULT 0,
			PRIMARY KEY (user_id, day, id)
		);`,
	}

	for _, q := range queries {
		if _, err := r.pool.Exec(ctx, q); err != nil {
			return fmt.Errorf("journal/repository/postgre: migrate: %w", err)
		}
	}
	return nil
}

// Close releases the connection pool.
func (r *implRepository) Close() {
	r.pool.Close()
}

// op prefixes a method name for log lines.
func (r *implRepository) op(method string) string {
	return fmt.Sprintf("journal/repository/postgre.%s", method)
}
