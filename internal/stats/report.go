package stats

import (
	"context"
	"fmt"

	"github.com/verte-zerg/worklog/internal/earnings"
	"github.com/verte-zerg/worklog/internal/model"
	"github.com/verte-zerg/worklog/internal/store"
)

// Report contains precomputed data for rendering.
type Report struct {
	Entries  []model.WorkEntry
	Weeks    []model.WeekSummary
	Total    float64
	Daily    []model.DailyEarning
	Projects []ProjectTotal
}

// BuildReport loads one snapshot of the store and derives every report from it.
func BuildReport(ctx context.Context, st store.Store) (Report, error) {
	entries, err := st.List(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("failed to list entries: %w", err)
	}
	return ReportFor(entries)
}

// ReportFor derives the reports from an entry snapshot.
func ReportFor(entries []model.WorkEntry) (Report, error) {
	weeks, err := earnings.WeeklyStatistics(entries)
	if err != nil {
		return Report{Entries: entries}, err
	}
	daily, err := earnings.DailyEarnings(entries)
	if err != nil {
		return Report{Entries: entries}, err
	}
	parsed, err := earnings.ParseEntries(entries)
	if err != nil {
		return Report{Entries: entries}, err
	}
	return Report{
		Entries:  entries,
		Weeks:    weeks,
		Total:    earnings.SumTakeHome(weeks),
		Daily:    daily,
		Projects: TopProjects(parsed, 0),
	}, nil
}

// WeeklyTakeHome returns the take-home series in report order.
func (r Report) WeeklyTakeHome() []float64 {
	out := make([]float64, len(r.Weeks))
	for i, w := range r.Weeks {
		out[i] = w.TakeHomePay
	}
	return out
}

// DailyPay returns the daily gross series in date order.
func (r Report) DailyPay() []float64 {
	out := make([]float64, len(r.Daily))
	for i, d := range r.Daily {
		out[i] = d.Pay
	}
	return out
}
