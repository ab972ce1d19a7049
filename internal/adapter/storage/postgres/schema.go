package postgres

import (
	"context"
	"fmt"
)

// Schema statements are idempotent so startup can apply them every run.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id      BIGINT PRIMARY KEY,
		username     TEXT NOT NULL DEFAULT '',
		balance      NUMERIC(20, 2) NOT NULL DEFAULT 0,
		total_bets   INTEGER NOT NULL DEFAULT 0,
		total_wins   INTEGER NOT NULL DEFAULT 0,
		total_profit NUMERIC(20, 2) NOT NULL DEFAULT 0,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS bets (
		id                BIGSERIAL PRIMARY KEY,
		user_id           BIGINT NOT NULL REFERENCES users(user_id),
		event_id          TEXT NOT NULL,
		event_title       TEXT NOT NULL,
		pick              TEXT NOT NULL,
		pick_label        TEXT NOT NULL DEFAULT '',
		odds              NUMERIC(10, 2) NOT NULL,
		amount            NUMERIC(20, 2) NOT NULL,
		potential_win     NUMERIC(20, 2) NOT NULL,
		result            TEXT NOT NULL DEFAULT 'pending',
		cashout_available BOOLEAN NOT NULL DEFAULT TRUE,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bets_user_created ON bets (user_id, id DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_bets_pending_event ON bets (event_id) WHERE result = 'pending'`,
}

// Migrate applies the ledger schema.
func Migrate(ctx context.Context, pool Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	return nil
}
