package database

import (
	"database/sql"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Store is the process-wide record store handle. It is opened once at
// startup, passed explicitly to the route groups, and closed on shutdown.
type Store struct {
	db *sql.DB
}

// Open connects to the database named by dsn and runs migrations.
// A postgres:// URL (or key=value DSN) selects Postgres; anything else is
// treated as a SQLite path, matching the development default.
func Open(dsn string) (*Store, error) {
	driver := "sqlite"
	switch {
	case strings.HasPrefix(dsn, "postgres://"),
		strings.HasPrefix(dsn, "postgresql://"),
		strings.Contains(dsn, "host="):
		driver = "postgres"
	case strings.HasPrefix(dsn, "sqlite://"):
		dsn = strings.TrimPrefix(dsn, "sqlite://")
		dsn = strings.TrimPrefix(dsn, "/")
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if driver == "postgres" {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
	} else {
		// SQLite is single-writer; one pooled connection also keeps
		// :memory: databases coherent across queries.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// migrate creates the schema if it does not exist. The DDL sticks to the
// dialect intersection of Postgres and SQLite: TEXT ids generated in the
// application, timestamps bound from Go, no database-side defaults that
// differ between engines.
func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			full_name TEXT NOT NULL DEFAULT '',
			hashed_password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'employee',
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS salary_slips (
			id TEXT PRIMARY KEY,
			employee_id TEXT NOT NULL REFERENCES users(id),
			month TEXT NOT NULL,
			basic DOUBLE PRECISION NOT NULL DEFAULT 0,
			allowances DOUBLE PRECISION NOT NULL DEFAULT 0,
			deductions DOUBLE PRECISION NOT NULL DEFAULT 0,
			net_pay DOUBLE PRECISION NOT NULL DEFAULT 0,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id TEXT PRIMARY KEY,
			employee_id TEXT NOT NULL REFERENCES users(id),
			date TIMESTAMP NOT NULL,
			category TEXT NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'pending',
			admin_comment TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_salary_slips_employee_id ON salary_slips(employee_id)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_employee_id ON expenses(employee_id)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_status ON expenses(status)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}
