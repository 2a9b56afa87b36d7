package store

import (
	"context"

	"github.com/verte-zerg/worklog/internal/model"
)

// Memory keeps entries in a slice. It is not safe for concurrent use.
type Memory struct {
	entries []model.WorkEntry
}

// NewMemory returns a store pre-filled with entries.
func NewMemory(entries ...model.WorkEntry) *Memory {
	return &Memory{entries: append([]model.WorkEntry(nil), entries...)}
}

// List returns a copy of the stored entries.
func (m *Memory) List(context.Context) ([]model.WorkEntry, error) {
	return append([]model.WorkEntry(nil), m.entries...), nil
}

// Append adds an entry at the end.
func (m *Memory) Append(_ context.Context, entry model.WorkEntry) error {
	m.entries = append(m.entries, entry)
	return nil
}

// Replace overwrites the entry at index.
func (m *Memory) Replace(_ context.Context, index int, entry model.WorkEntry) error {
	if err := checkIndex(index, len(m.entries)); err != nil {
		return err
	}
	m.entries[index] = entry
	return nil
}

// Delete removes the entry at index.
func (m *Memory) Delete(_ context.Context, index int) error {
	if err := checkIndex(index, len(m.entries)); err != nil {
		return err
	}
	m.entries = append(m.entries[:index], m.entries[index+1:]...)
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
