// Package model defines shared data structures.
package model

import "time"

// DateLayout is the on-disk and display format for entry dates.
const DateLayout = "2006-01-02"

// WorkEntry is one logged work session as the store holds it.
// Fields are kept as text; numeric parsing belongs to the earnings engine.
type WorkEntry struct {
	Date         string
	Minutes      string
	PayRate      string
	ProjectTitle string
}

// Record returns the entry in persisted field order.
func (e WorkEntry) Record() []string {
	return []string{e.Date, e.Minutes, e.PayRate, e.ProjectTitle}
}

// EntryFromRecord builds an entry from a persisted record. Missing trailing
// fields are left empty.
func EntryFromRecord(record []string) WorkEntry {
	fields := make([]string, 4)
	copy(fields, record)
	return WorkEntry{
		Date:         fields[0],
		Minutes:      fields[1],
		PayRate:      fields[2],
		ProjectTitle: fields[3],
	}
}

// WeekSummary is one row of the weekly statistics report.
// Numeric fields are rounded to two decimals.
type WeekSummary struct {
	Week          string
	Start         time.Time
	End           time.Time
	EntryCount    int
	TotalHours    float64
	TotalPay      float64
	AvgHourlyRate float64
	TakeHomePay   float64
}

// DailyEarning is the unrounded gross pay for one calendar date.
type DailyEarning struct {
	Date string
	Pay  float64
}

// ReportConfig defines presentation options for reports.
type ReportConfig struct {
	PlotHeight int
	Color      bool
	AvgWindow  int
}
