// Copyright Fouinot Research, 2026. All rights reserved.

// Package store persists matching observations in a SQLite database so
// a season of extractions can be queried without rescanning station
// files.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/fouinot/idmp-extract/internal/pipeline"
	"github.com/fouinot/idmp-extract/pkg/types"
)

// Store manages the observation SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the observation database at cfg.DBPath and
// ensures the schema exists.
func Open(cfg types.StoreConfig) (*Store, error) {
	path := cfg.DBPath
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS observations (
		date  TEXT NOT NULL,
		time  TEXT NOT NULL,
		month INTEGER NOT NULL,
		day   INTEGER NOT NULL,
		hour  INTEGER NOT NULL,
		code  TEXT NOT NULL,
		value TEXT NOT NULL,
		PRIMARY KEY (date, time, code)
	)`)
	return err
}

// Ingest scans src with the request's filters and stores one row per
// matching record and requested parameter. The whole ingest runs in a
// single transaction; re-ingesting the same file overwrites rows rather
// than duplicating them.
func (s *Store) Ingest(ctx context.Context, src io.Reader, req pipeline.Request) (pipeline.Summary, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return pipeline.Summary{}, fmt.Errorf("beginning transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO observations
		(date, time, month, day, hour, code, value)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return pipeline.Summary{}, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	sum, err := pipeline.Scan(src, req, func(rec types.Record) error {
		for _, p := range req.Params {
			_, err := stmt.ExecContext(ctx,
				rec.Date, rec.Time, rec.Month, rec.Day, rec.Hour,
				p.Code, rec.Fields[p.Column])
			if err != nil {
				return fmt.Errorf("inserting %s at %s %s: %w", p.Code, rec.Date, rec.Time, err)
			}
		}
		return nil
	})
	if err != nil {
		tx.Rollback()
		return sum, err
	}

	if err := tx.Commit(); err != nil {
		return sum, fmt.Errorf("committing ingest: %w", err)
	}
	return sum, nil
}

// Count returns the total number of stored observations.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM observations`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting observations: %w", err)
	}
	return n, nil
}

// Codes returns the distinct parameter codes present in the store,
// sorted.
func (s *Store) Codes(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT code FROM observations ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("listing codes: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scanning code: %w", err)
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}
