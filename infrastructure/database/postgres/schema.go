package postgres

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS report_snapshots (
		id           VARCHAR(12) PRIMARY KEY,
		preset       VARCHAR(16) NOT NULL,
		seed         BIGINT NOT NULL,
		generated_at TIMESTAMPTZ NOT NULL,
		payload      JSONB NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS report_snapshots_preset_generated_at_idx
		ON report_snapshots (preset, generated_at DESC)`,
}

// EnsureSchema creates the tables the service writes to when they are missing.
func EnsureSchema(ctx context.Context, conn Conn) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, statement := range schema {
			if _, err := tx.ExecContext(ctx, statement); err != nil {
				return errors.Wrap(err, "postgres: applying schema")
			}
		}
		return nil
	})
}
