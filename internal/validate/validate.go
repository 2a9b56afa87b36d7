// Package validate checks user input before it reaches the store.
package validate

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/verte-zerg/worklog/internal/model"
)

// InvalidInputError reports a rejected field.
type InvalidInputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Date accepts YYYY-MM-DD calendar dates.
func Date(s string) error {
	if _, err := time.Parse(model.DateLayout, strings.TrimSpace(s)); err != nil {
		return &InvalidInputError{Field: "date", Value: s, Reason: "use YYYY-MM-DD format"}
	}
	return nil
}

// Minutes accepts positive integers.
func Minutes(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return &InvalidInputError{Field: "minutes", Value: s, Reason: "enter a positive whole number"}
	}
	return nil
}

// PayRate accepts positive finite decimals.
func PayRate(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return &InvalidInputError{Field: "pay rate", Value: s, Reason: "enter a positive number"}
	}
	return nil
}

// Entry validates every checked field of e and returns the first failure.
func Entry(e model.WorkEntry) error {
	if err := Date(e.Date); err != nil {
		return err
	}
	if err := Minutes(e.Minutes); err != nil {
		return err
	}
	return PayRate(e.PayRate)
}

// Normalize trims surrounding whitespace from every field.
func Normalize(e model.WorkEntry) model.WorkEntry {
	return model.WorkEntry{
		Date:         strings.TrimSpace(e.Date),
		Minutes:      strings.TrimSpace(e.Minutes),
		PayRate:      strings.TrimSpace(e.PayRate),
		ProjectTitle: strings.TrimSpace(e.ProjectTitle),
	}
}
