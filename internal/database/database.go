// Package database opens the SQLite record store and owns the text encodings
// shared by every repository: timestamps and dates are stored as UTC strings
// in layouts that order lexicographically, so range comparisons in SQL work
// as plain string comparisons.
package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "embed"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

const (
	// TimeLayout is the storage format for DATETIME columns.
	TimeLayout = "2006-01-02 15:04:05"
	// DateLayout is the storage format for DATE columns.
	DateLayout = "2006-01-02"
)

// Open opens (creating if necessary) the SQLite database at path and ensures
// the schema exists. Foreign keys are enabled per connection so member
// deletions cascade to messages and edit tokens.
func Open(path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("database path is required")
	}

	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}

	dsn := cleanPath + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return db, nil
}

// FormatTime renders t for a DATETIME column.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// FormatDate renders t for a DATE column.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseTime reads a DATETIME column value back into a time.Time.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse stored time %q: %w", s, err)
	}
	return t, nil
}
