package earnings

import (
	"errors"
	"fmt"

	"github.com/verte-zerg/worklog/internal/model"
)

var (
	errNotPositive = errors.New("must be greater than 0")
	errNotFinite   = errors.New("must be a finite number")
)

// NoDataError reports that an operation needing an anchor date was given
// no entries.
type NoDataError struct {
	Op string
}

func (e *NoDataError) Error() string {
	if e.Op == "" {
		return "no entries available"
	}
	return fmt.Sprintf("%s: no entries available", e.Op)
}

// MalformedEntryError reports a stored entry whose date, minutes or pay rate
// cannot be used. Row is the entry's position in the store.
type MalformedEntryError struct {
	Row   int
	Field string
	Value string
	Entry model.WorkEntry
	Err   error
}

func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("malformed entry at row %d (%s): invalid %s %q: %v",
		e.Row, describeEntry(e.Entry), e.Field, e.Value, e.Err)
}

func (e *MalformedEntryError) Unwrap() error {
	return e.Err
}

func describeEntry(e model.WorkEntry) string {
	if e.ProjectTitle == "" {
		return e.Date
	}
	return fmt.Sprintf("%s %s", e.Date, e.ProjectTitle)
}
