// Package store persists work entries.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/verte-zerg/worklog/internal/log"
	"github.com/verte-zerg/worklog/internal/model"
)

// Backend names accepted by Open.
const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// ErrIndexOutOfRange is returned when a row index does not name an entry.
var ErrIndexOutOfRange = errors.New("entry index out of range")

// Store is an ordered list of work entries addressed by row index.
type Store interface {
	List(ctx context.Context) ([]model.WorkEntry, error)
	Append(ctx context.Context, entry model.WorkEntry) error
	Replace(ctx context.Context, index int, entry model.WorkEntry) error
	Delete(ctx context.Context, index int) error
	Close() error
}

// Options selects and configures a backend.
type Options struct {
	Backend string
	Path    string
	Logger  *log.Logger
}

// Backends lists the supported backend names.
func Backends() []string {
	return []string{BackendCSV, BackendSQLite, BackendMemory}
}

// Open opens the configured backend.
func Open(opts Options) (Store, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}
	logger = logger.WithComponent("store")

	switch opts.Backend {
	case BackendCSV, "":
		return OpenCSV(opts.Path, logger)
	case BackendSQLite:
		return OpenSQLite(opts.Path, logger)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}
}

func checkIndex(index, count int) error {
	if index < 0 || index >= count {
		return fmt.Errorf("%w: %d (have %d entries)", ErrIndexOutOfRange, index, count)
	}
	return nil
}
