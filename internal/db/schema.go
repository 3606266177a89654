// Package db bootstraps the schema and seed data on startup, mirroring the
// approach of creating tables lazily and seeding a default admin plus the
// initial NGO directory when the tables are empty.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
	id            bigserial PRIMARY KEY,
	full_name     text NOT NULL,
	email         text NOT NULL UNIQUE,
	phone         text UNIQUE,
	password_hash text NOT NULL,
	role          text NOT NULL DEFAULT 'donor',
	zone          text,
	created_at    timestamptz NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS ngos (
	id                  bigserial PRIMARY KEY,
	name                text NOT NULL,
	city                text NOT NULL DEFAULT 'Karachi',
	zone                text,
	address             text,
	contact_email       text,
	contact_phone       text,
	accepted_categories text,
	is_verified         boolean NOT NULL DEFAULT true,
	has_pickup          boolean NOT NULL DEFAULT false,
	current_load        int NOT NULL DEFAULT 0
)`,
	`CREATE TABLE IF NOT EXISTS ngo_needs (
	id               bigserial PRIMARY KEY,
	ngo_id           bigint NOT NULL REFERENCES ngos(id),
	item_name        text NOT NULL,
	category         text,
	details          text,
	condition_needed text,
	qty_required     int NOT NULL DEFAULT 0,
	qty_fulfilled    int NOT NULL DEFAULT 0,
	is_active        boolean NOT NULL DEFAULT true,
	created_at       timestamptz NOT NULL DEFAULT now(),
	updated_at       timestamptz NOT NULL DEFAULT now(),
	CONSTRAINT ngo_needs_fulfilled_within_required CHECK (qty_fulfilled >= 0 AND qty_fulfilled <= qty_required)
)`,
	`CREATE TABLE IF NOT EXISTS donations (
	id              bigserial PRIMARY KEY,
	tracking_id     text NOT NULL UNIQUE,
	item_name       text NOT NULL,
	category_hint   text NOT NULL DEFAULT '',
	quantity        int NOT NULL,
	condition       text NOT NULL DEFAULT '',
	description     text NOT NULL DEFAULT '',
	donor_zone      text NOT NULL DEFAULT '',
	status          text NOT NULL DEFAULT 'pending',
	created_at      timestamptz NOT NULL DEFAULT now(),
	updated_at      timestamptz NOT NULL DEFAULT now(),
	assigned_at     timestamptz,
	rejected_at     timestamptz,
	rejected_reason text,
	donor_id        bigint NOT NULL REFERENCES users(id),
	ngo_id          bigint REFERENCES ngos(id),
	need_id         bigint REFERENCES ngo_needs(id)
)`,
	`CREATE INDEX IF NOT EXISTS donations_status_idx ON donations(status)`,
	`CREATE INDEX IF NOT EXISTS ngo_needs_ngo_active_idx ON ngo_needs(ngo_id, is_active, created_at DESC)`,
}

// EnsureSchema creates the four relations when they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
