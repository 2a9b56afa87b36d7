// Package earnings computes weekly and daily earnings from logged work.
//
// Week buckets are 7-day windows anchored at the earliest entry date in the
// snapshot being reported. Logging an entry dated before every existing entry
// moves the anchor, so previously reported weeks can shift and entries can
// change buckets. Callers that show weekly history should expect that.
//
// All functions are pure: they read the entries they are given and keep no
// state between calls.
package earnings

import (
	"sort"

	"github.com/verte-zerg/worklog/internal/model"
)

// WeeklyStatistics returns one rounded summary per week, ordered by week
// label. No entries yield an empty report.
func WeeklyStatistics(entries []model.WorkEntry) ([]model.WeekSummary, error) {
	if len(entries) == 0 {
		return []model.WeekSummary{}, nil
	}
	parsed, err := ParseEntries(entries)
	if err != nil {
		return nil, err
	}
	buckets, err := AssignWeeks(parsed)
	if err != nil {
		return nil, err
	}

	summaries := make([]model.WeekSummary, 0, len(buckets))
	for _, b := range buckets {
		summaries = append(summaries, b.Summary())
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Week < summaries[j].Week
	})
	return summaries, nil
}

// TotalTakeHomeEarnings sums the rounded weekly take-home pay.
func TotalTakeHomeEarnings(entries []model.WorkEntry) (float64, error) {
	weeks, err := WeeklyStatistics(entries)
	if err != nil {
		return 0, err
	}
	return SumTakeHome(weeks), nil
}

// SumTakeHome adds the TakeHomePay of each summary in order.
func SumTakeHome(weeks []model.WeekSummary) float64 {
	var total float64
	for _, w := range weeks {
		total += w.TakeHomePay
	}
	return total
}

// DailyEarnings totals gross pay per entry date, ordered by date string.
// Totals are not rounded.
func DailyEarnings(entries []model.WorkEntry) ([]model.DailyEarning, error) {
	parsed, err := ParseEntries(entries)
	if err != nil {
		return nil, err
	}

	totals := map[string]float64{}
	for _, e := range parsed {
		totals[e.RawDate] += e.Pay()
	}

	out := make([]model.DailyEarning, 0, len(totals))
	for date, pay := range totals {
		out = append(out, model.DailyEarning{Date: date, Pay: pay})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out, nil
}
