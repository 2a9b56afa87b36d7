package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/verte-zerg/worklog/internal/log"
	"github.com/verte-zerg/worklog/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// SQLite keeps entries in a SQLite table ordered by insertion id. Values are
// stored as text exactly as entered.
type SQLite struct {
	db  *sql.DB
	log *log.Logger
}

// OpenSQLite opens or creates the database and applies migrations.
func OpenSQLite(path string, logger *log.Logger) (*SQLite, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite store path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	if err := RunMigrations(path); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Discard()
	}
	return &SQLite{db: db, log: logger}, nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// List returns all entries in insertion order.
func (s *SQLite) List(ctx context.Context) ([]model.WorkEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT date, minutes, pay_rate, project_title FROM entries ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	entries := []model.WorkEntry{}
	for rows.Next() {
		var e model.WorkEntry
		if err := rows.Scan(&e.Date, &e.Minutes, &e.PayRate, &e.ProjectTitle); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Append inserts an entry after all existing ones.
func (s *SQLite) Append(ctx context.Context, entry model.WorkEntry) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO entries (date, minutes, pay_rate, project_title) VALUES (?, ?, ?, ?)`,
		entry.Date, entry.Minutes, entry.PayRate, entry.ProjectTitle,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.log.Debug("appended entry", "id", id, "date", entry.Date)
	return nil
}

// Replace overwrites the entry at row index.
func (s *SQLite) Replace(ctx context.Context, index int, entry model.WorkEntry) error {
	id, err := s.idAt(ctx, index)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx,
		`UPDATE entries SET date = ?, minutes = ?, pay_rate = ?, project_title = ? WHERE id = ?`,
		entry.Date, entry.Minutes, entry.PayRate, entry.ProjectTitle, id,
	); err != nil {
		return err
	}
	s.log.Debug("replaced entry", "id", id, "index", index)
	return nil
}

// Delete removes the entry at row index.
func (s *SQLite) Delete(ctx context.Context, index int) error {
	id, err := s.idAt(ctx, index)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id); err != nil {
		return err
	}
	s.log.Debug("deleted entry", "id", id, "index", index)
	return nil
}

func (s *SQLite) idAt(ctx context.Context, index int) (int64, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&count); err != nil {
		return 0, err
	}
	if err := checkIndex(index, count); err != nil {
		return 0, err
	}
	var id int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM entries ORDER BY id ASC LIMIT 1 OFFSET ?`, index).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
