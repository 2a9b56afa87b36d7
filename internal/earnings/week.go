package earnings

import (
	"fmt"
	"sort"
	"time"

	"github.com/verte-zerg/worklog/internal/model"
	"github.com/verte-zerg/worklog/internal/money"
)

const (
	daysPerWeek   = 7
	secondsPerDay = 24 * 60 * 60
)

// WeekBucket accumulates the entries that fall into one 7-day window.
type WeekBucket struct {
	Index      int
	Start      time.Time
	End        time.Time
	TotalHours float64
	TotalPay   float64
	EntryCount int
	Entries    []Entry
}

// AvgHourlyRate returns gross pay per hour, or 0 for an empty bucket.
func (b WeekBucket) AvgHourlyRate() float64 {
	if b.TotalHours > 0 {
		return b.TotalPay / b.TotalHours
	}
	return 0
}

// TakeHomePay applies the default bracket schedule to the bucket totals.
func (b WeekBucket) TakeHomePay() float64 {
	return TakeHomePay(b.TotalHours, b.AvgHourlyRate())
}

// Label renders the bucket as "<start> to <end>".
func (b WeekBucket) Label() string {
	return fmt.Sprintf("%s to %s", b.Start.Format(model.DateLayout), b.End.Format(model.DateLayout))
}

// Summary rounds the bucket totals into a report row.
func (b WeekBucket) Summary() model.WeekSummary {
	return model.WeekSummary{
		Week:          b.Label(),
		Start:         b.Start,
		End:           b.End,
		EntryCount:    b.EntryCount,
		TotalHours:    money.Round2(b.TotalHours),
		TotalPay:      money.Round2(b.TotalPay),
		AvgHourlyRate: money.Round2(b.AvgHourlyRate()),
		TakeHomePay:   money.Round2(b.TakeHomePay()),
	}
}

// Anchor returns the earliest entry date.
func Anchor(entries []Entry) (time.Time, error) {
	if len(entries) == 0 {
		return time.Time{}, &NoDataError{Op: "anchor date"}
	}
	anchor := entries[0].Date
	for _, e := range entries[1:] {
		if e.Date.Before(anchor) {
			anchor = e.Date
		}
	}
	return anchor, nil
}

// WeekIndex returns the number of whole weeks between anchor and date.
// Both must be midnight UTC, as ParseEntry produces; dates in other
// locations would count DST shifts as partial days.
func WeekIndex(anchor, date time.Time) int {
	days := (date.Unix() - anchor.Unix()) / secondsPerDay
	return int(days / daysPerWeek)
}

// AssignWeeks groups entries into week buckets anchored at the earliest
// entry date. Buckets are returned in ascending start order and each keeps
// its entries in input order.
func AssignWeeks(entries []Entry) ([]WeekBucket, error) {
	anchor, err := Anchor(entries)
	if err != nil {
		return nil, err
	}

	byIndex := map[int]*WeekBucket{}
	for _, e := range entries {
		idx := WeekIndex(anchor, e.Date)
		bucket, ok := byIndex[idx]
		if !ok {
			start := anchor.AddDate(0, 0, daysPerWeek*idx)
			bucket = &WeekBucket{
				Index: idx,
				Start: start,
				End:   start.AddDate(0, 0, daysPerWeek-1),
			}
			byIndex[idx] = bucket
		}
		bucket.TotalHours += e.Hours()
		bucket.TotalPay += e.Pay()
		bucket.EntryCount++
		bucket.Entries = append(bucket.Entries, e)
	}

	buckets := make([]WeekBucket, 0, len(byIndex))
	for _, b := range byIndex {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Index < buckets[j].Index
	})
	return buckets, nil
}
