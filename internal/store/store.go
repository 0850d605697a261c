package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/sadopc/ticktock/internal/timesheet"
)

const currentVersion = 1

// memoryDSN keeps the database inside the process; it lives as long as the
// single pooled connection does.
const memoryDSN = ":memory:"

type Store struct {
	db *sql.DB
}

// New opens the SQLite database at dsn, runs migrations and seeds it.
func New(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// NewMemory creates the in-process store the application runs on.
func NewMemory() (*Store, error) {
	return New(memoryDSN)
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	var version int
	err := s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}
	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
		if err := s.seed(); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	_, err = s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

func (s *Store) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS timesheets (
		id          INTEGER PRIMARY KEY,
		week        INTEGER NOT NULL CHECK (week > 0),
		date_range  TEXT NOT NULL,
		status      TEXT NOT NULL CHECK (status IN ('COMPLETED','INCOMPLETE','MISSING','PENDING','APPROVED')),
		action      TEXT NOT NULL DEFAULT 'View',
		description TEXT NOT NULL DEFAULT '',
		hours       REAL NOT NULL DEFAULT 0,
		project     TEXT NOT NULL DEFAULT '',
		updated_at  TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now'))
	);

	CREATE INDEX IF NOT EXISTS idx_timesheets_week ON timesheets(week);

	CREATE TABLE IF NOT EXISTS users (
		id       INTEGER PRIMARY KEY,
		name     TEXT NOT NULL,
		email    TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		role     TEXT NOT NULL DEFAULT 'employee'
	);

	CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	INSERT OR IGNORE INTO users (id, name, email, password, role) VALUES
		(1, 'John Doe',   'john@example.com', 'password123', 'admin'),
		(2, 'Jane Smith', 'jane@example.com', 'secret456',   'employee');

	INSERT OR IGNORE INTO settings (key, value) VALUES
		('page_size',      '5'),
		('weekly_target',  '40'),
		('sort_column',    'week'),
		('sort_ascending', 'true');
	`
	_, err := s.db.Exec(ddl)
	return err
}

func (s *Store) seed() error {
	for _, r := range timesheet.Seed() {
		_, err := s.db.Exec(
			`INSERT OR IGNORE INTO timesheets (id, week, date_range, status, action, description, hours, project)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ID, r.Week, r.DateRange, string(r.Status), string(r.Action), r.Description, r.Hours, r.Project,
		)
		if err != nil {
			return fmt.Errorf("insert timesheet %d: %w", r.ID, err)
		}
	}
	return nil
}
