package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/crypto/bcrypt"
)

func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the users/cases/documents tables. Serialized across
// concurrent api/worker startups with an advisory lock.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(2026082901)); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}

	const query = `
CREATE TABLE IF NOT EXISTS users (
	id SERIAL PRIMARY KEY,
	email TEXT UNIQUE NOT NULL,
	password_hash TEXT NOT NULL,
	role TEXT NOT NULL DEFAULT 'admin'
);

CREATE TABLE IF NOT EXISTS cases (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'open'
);

CREATE TABLE IF NOT EXISTS documents (
	id SERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'unclassified',
	case_id INTEGER REFERENCES cases(id)
);
`
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("execute schema ddl: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}
	return nil
}

// SeedIfEmpty inserts the bootstrap admin user plus sample cases and documents
// on a fresh database. A non-zero users count makes it a no-op.
func SeedIfEmpty(ctx context.Context, db *sql.DB, adminEmail, adminPassword string) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	if _, err := db.ExecContext(ctx,
		`INSERT INTO users (email, password_hash, role) VALUES ($1, $2, 'admin')`,
		adminEmail, string(hash),
	); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	if _, err := db.ExecContext(ctx,
		`INSERT INTO cases (name, status) VALUES ('Acme vs Globex', 'open'), ('In re: Example', 'open')`,
	); err != nil {
		return fmt.Errorf("seed cases: %w", err)
	}

	if _, err := db.ExecContext(ctx, `
INSERT INTO documents (title, content, status, case_id) VALUES
	('NDA Contract', 'This Non-Disclosure Agreement between...', 'contract', 1),
	('Motion to Dismiss', 'Comes now the Defendant...', 'motion', 1)
`); err != nil {
		return fmt.Errorf("seed documents: %w", err)
	}
	return nil
}
