package earnings

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/verte-zerg/worklog/internal/model"
)

// Entry is a parsed work entry.
type Entry struct {
	Row          int
	Date         time.Time
	RawDate      string
	Minutes      int
	PayRate      float64
	ProjectTitle string
}

// Hours returns the fractional hours worked.
func (e Entry) Hours() float64 {
	return float64(e.Minutes) / 60
}

// Pay returns the gross pay for the entry.
func (e Entry) Pay() float64 {
	return e.Hours() * e.PayRate
}

// ParseEntry converts a stored entry into its numeric form.
func ParseEntry(row int, raw model.WorkEntry) (Entry, error) {
	malformed := func(field, value string, err error) error {
		return &MalformedEntryError{Row: row, Field: field, Value: value, Entry: raw, Err: err}
	}

	date, err := time.Parse(model.DateLayout, raw.Date)
	if err != nil {
		return Entry{}, malformed("date", raw.Date, err)
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(raw.Minutes))
	if err != nil {
		return Entry{}, malformed("minutes", raw.Minutes, err)
	}
	if minutes <= 0 {
		return Entry{}, malformed("minutes", raw.Minutes, errNotPositive)
	}

	rate, err := strconv.ParseFloat(strings.TrimSpace(raw.PayRate), 64)
	if err != nil {
		return Entry{}, malformed("pay rate", raw.PayRate, err)
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return Entry{}, malformed("pay rate", raw.PayRate, errNotFinite)
	}
	if rate <= 0 {
		return Entry{}, malformed("pay rate", raw.PayRate, errNotPositive)
	}

	return Entry{
		Row:          row,
		Date:         date,
		RawDate:      raw.Date,
		Minutes:      minutes,
		PayRate:      rate,
		ProjectTitle: raw.ProjectTitle,
	}, nil
}

// ParseEntries parses every entry and fails on the first malformed one.
func ParseEntries(entries []model.WorkEntry) ([]Entry, error) {
	out := make([]Entry, 0, len(entries))
	for i, raw := range entries {
		e, err := ParseEntry(i, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
