// Package pgx persists the simulated backend's records in Postgres,
// for setups where the local backend must survive restarts.
package pgx

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/freementors/sdk-go/gateway/mock"
)

type Adapter struct {
	pool *pgxpool.Pool
}

var _ mock.Store = (*Adapter)(nil)

func New(pool *pgxpool.Pool) *Adapter {
	return &Adapter{
		pool: pool,
	}
}

// Schema is the DDL the adapter expects. EnsureSchema applies it
// idempotently.
const Schema = `
CREATE TABLE IF NOT EXISTS public.users (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	first_name    TEXT NOT NULL DEFAULT '',
	last_name     TEXT NOT NULL DEFAULT '',
	role          TEXT NOT NULL DEFAULT 'MENTEE',
	bio           TEXT,
	profile_picture TEXT,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS public.mentor_profiles (
	user_id             TEXT PRIMARY KEY REFERENCES public.users(id),
	expertise           TEXT[] NOT NULL DEFAULT '{}',
	rating              DOUBLE PRECISION NOT NULL DEFAULT 0,
	total_reviews       INTEGER NOT NULL DEFAULT 0,
	years_of_experience INTEGER NOT NULL DEFAULT 0,
	available_days      TEXT[] NOT NULL DEFAULT '{}'
);

CREATE TABLE IF NOT EXISTS public.sessions (
	id             TEXT PRIMARY KEY,
	mentor_id      TEXT NOT NULL REFERENCES public.users(id),
	mentee_id      TEXT NOT NULL REFERENCES public.users(id),
	topic          TEXT NOT NULL,
	questions      TEXT NOT NULL,
	status         TEXT NOT NULL DEFAULT 'PENDING',
	scheduled_date TIMESTAMPTZ,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS public.reviews (
	id         TEXT PRIMARY KEY,
	session_id TEXT NOT NULL UNIQUE REFERENCES public.sessions(id),
	mentor_id  TEXT NOT NULL REFERENCES public.users(id),
	mentee_id  TEXT NOT NULL REFERENCES public.users(id),
	rating     DOUBLE PRECISION NOT NULL,
	content    TEXT NOT NULL,
	visible    BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, Schema)
	return err
}
