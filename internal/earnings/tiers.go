package earnings

import "math"

// Bracket consumes up to Width hours and keeps Retention of their gross pay.
type Bracket struct {
	Width     float64
	Retention float64
}

// Schedule is an ordered list of brackets applied to a week's hours.
type Schedule []Bracket

// DefaultBrackets keeps half of the first 7 hours, 60% of the next 6 and
// 75% of everything past 13 hours.
var DefaultBrackets = Schedule{
	{Width: 7, Retention: 0.50},
	{Width: 6, Retention: 0.60},
	{Width: math.Inf(1), Retention: 0.75},
}

// TakeHomePay applies DefaultBrackets to a week's hours and average rate.
func TakeHomePay(hours, avgHourlyRate float64) float64 {
	return DefaultBrackets.TakeHomePay(hours, avgHourlyRate)
}

// TakeHomePay applies the schedule's brackets in order.
func (s Schedule) TakeHomePay(hours, avgHourlyRate float64) float64 {
	var pay float64
	remaining := hours
	for _, b := range s {
		if remaining <= 0 {
			break
		}
		used := math.Min(remaining, b.Width)
		pay += used * avgHourlyRate * b.Retention
		remaining -= used
	}
	return pay
}
