package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/verte-zerg/worklog/internal/log"
	"github.com/verte-zerg/worklog/internal/model"
)

// CSV stores one entry per line as date,minutes,payRate,projectTitle with
// no header row.
type CSV struct {
	path string
	log  *log.Logger
}

// OpenCSV prepares a CSV store at path. The file is created on first write.
func OpenCSV(path string, logger *log.Logger) (*CSV, error) {
	if path == "" {
		return nil, fmt.Errorf("csv store path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	if logger == nil {
		logger = log.Discard()
	}
	return &CSV{path: path, log: logger}, nil
}

// Path returns the backing file path.
func (s *CSV) Path() string {
	return s.path
}

// List reads every entry. A missing file is an empty store.
func (s *CSV) List(context.Context) ([]model.WorkEntry, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.WorkEntry{}, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only file.
			_ = cerr
		}
	}()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	entries := make([]model.WorkEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, model.EntryFromRecord(record))
	}
	return entries, nil
}

// Append writes one record at the end of the file.
func (s *CSV) Append(_ context.Context, entry model.WorkEntry) error {
	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	writer := newWriter(file)
	if err := writer.Write(entry.Record()); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to append entry: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to append entry: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", s.path, err)
	}
	s.log.Debug("appended entry", "path", s.path, "date", entry.Date)
	return nil
}

// Replace overwrites the entry at index and rewrites the file.
func (s *CSV) Replace(ctx context.Context, index int, entry model.WorkEntry) error {
	entries, err := s.List(ctx)
	if err != nil {
		return err
	}
	if err := checkIndex(index, len(entries)); err != nil {
		return err
	}
	entries[index] = entry
	if err := s.writeAll(entries); err != nil {
		return err
	}
	s.log.Debug("replaced entry", "path", s.path, "index", index)
	return nil
}

// Delete removes the entry at index and rewrites the file.
func (s *CSV) Delete(ctx context.Context, index int) error {
	entries, err := s.List(ctx)
	if err != nil {
		return err
	}
	if err := checkIndex(index, len(entries)); err != nil {
		return err
	}
	entries = append(entries[:index], entries[index+1:]...)
	if err := s.writeAll(entries); err != nil {
		return err
	}
	s.log.Debug("deleted entry", "path", s.path, "index", index)
	return nil
}

// Close is a no-op; the file is only held open during each call.
func (s *CSV) Close() error {
	return nil
}

func (s *CSV) writeAll(entries []model.WorkEntry) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(s.path), "worklog-*.csv")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	writer := newWriter(tmpFile)
	for _, entry := range entries {
		if err := writer.Write(entry.Record()); err != nil {
			return fmt.Errorf("failed to write entries: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush entries: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close entries: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("failed to write entries: %w", err)
	}
	return nil
}

func newWriter(file *os.File) *csv.Writer {
	writer := csv.NewWriter(file)
	writer.UseCRLF = true
	return writer
}
