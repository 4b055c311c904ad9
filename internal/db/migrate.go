package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// kv_entries mirrors the browser key-value store: one JSON document per key.
	`CREATE TABLE IF NOT EXISTS kv_entries (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS data_migrations (
		id         TEXT PRIMARY KEY,
		applied_at TEXT NOT NULL
	)`,

	// v2: modification time, used by `export` and debugging.
	`ALTER TABLE kv_entries ADD COLUMN updated_at TEXT NOT NULL DEFAULT ''`,
}

// DataMigration rewrites stored values once. Apply runs inside the
// transaction that records it, so a failed migration is retried on the next
// open.
type DataMigration struct {
	ID    string
	Apply func(ctx context.Context, tx DBTX) error
}

// RunDataMigrations applies every migration not yet recorded in
// data_migrations, in order. It returns the ids that were applied.
func RunDataMigrations(ctx context.Context, uow UnitOfWork, migrations []DataMigration, now time.Time) ([]string, error) {
	var applied []string
	for _, m := range migrations {
		ran := false
		err := uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
			var id string
			err := tx.QueryRowContext(ctx, `SELECT id FROM data_migrations WHERE id = ?`, m.ID).Scan(&id)
			if err == nil {
				return nil
			}
			if err != sql.ErrNoRows {
				return fmt.Errorf("checking data migration %s: %w", m.ID, err)
			}
			if err := m.Apply(ctx, tx); err != nil {
				return fmt.Errorf("applying data migration %s: %w", m.ID, err)
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO data_migrations (id, applied_at) VALUES (?, ?)`,
				m.ID, now.UTC().Format(time.RFC3339)); err != nil {
				return fmt.Errorf("recording data migration %s: %w", m.ID, err)
			}
			ran = true
			return nil
		})
		if err != nil {
			return applied, err
		}
		if ran {
			applied = append(applied, m.ID)
		}
	}
	return applied, nil
}
