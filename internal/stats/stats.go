package stats

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/verte-zerg/worklog/internal/earnings"
	"github.com/verte-zerg/worklog/internal/model"
	"github.com/verte-zerg/worklog/internal/money"
)

const sparkChars = " .:-=+*#%@"

// NoWeeklyData is printed when there is nothing to summarize.
const NoWeeklyData = "No data available for weekly statistics."

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderEntries prints stored entries with the row index used by update and delete.
func RenderEntries(w io.Writer, entries []model.WorkEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No entries logged yet.")
		return err
	}
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []string{strconv.Itoa(i), e.Date, e.Minutes, e.PayRate, e.ProjectTitle})
	}
	return writeTable(w, []string{"#", "Date", "Minutes", "Rate", "Project"}, rows,
		map[int]bool{0: true, 2: true, 3: true})
}

// WeeklyRows formats summaries as table rows.
func WeeklyRows(weeks []model.WeekSummary) [][]string {
	rows := make([][]string, 0, len(weeks))
	for _, wk := range weeks {
		rows = append(rows, []string{
			wk.Week,
			strconv.Itoa(wk.EntryCount),
			fmt.Sprintf("%.2f", wk.TotalHours),
			money.Format(wk.TotalPay),
			money.Format(wk.AvgHourlyRate),
			money.Format(wk.TakeHomePay),
		})
	}
	return rows
}

// WeeklyHeaders are the column titles for WeeklyRows.
var WeeklyHeaders = []string{"Week", "Entries", "Hours", "Gross", "Avg Rate", "Take-Home"}

// RenderWeekly prints the weekly statistics table.
func RenderWeekly(w io.Writer, weeks []model.WeekSummary) error {
	if len(weeks) == 0 {
		_, err := fmt.Fprintln(w, NoWeeklyData)
		return err
	}
	if _, err := fmt.Fprintln(w, "Weekly Statistics"); err != nil {
		return err
	}
	return writeTable(w, WeeklyHeaders, WeeklyRows(weeks),
		map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true})
}

// RenderTotal prints total take-home earnings, the weekly trend and the
// per-project breakdown.
func RenderTotal(w io.Writer, report Report) error {
	if _, err := fmt.Fprintf(w, "Total take-home earnings: %s\n", money.Format(report.Total)); err != nil {
		return err
	}
	if len(report.Weeks) > 1 {
		if _, err := fmt.Fprintf(w, "Weekly take-home: [%s]\n", Sparkline(report.WeeklyTakeHome())); err != nil {
			return err
		}
	}
	if len(report.Projects) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "\nBy Project"); err != nil {
		return err
	}
	rows := make([][]string, 0, len(report.Projects))
	for _, p := range report.Projects {
		rows = append(rows, []string{
			p.Title,
			strconv.Itoa(p.Entries),
			fmt.Sprintf("%.2f", p.Hours),
			money.Format(p.Pay),
		})
	}
	return writeTable(w, []string{"Project", "Entries", "Hours", "Gross"}, rows,
		map[int]bool{1: true, 2: true, 3: true})
}

// RenderDaily prints gross pay per day and, when plot is set, a chart with
// a moving average over cfg.AvgWindow days.
func RenderDaily(w io.Writer, daily []model.DailyEarning, cfg model.ReportConfig, plot bool, totalWidth int) error {
	if len(daily) == 0 {
		_, err := fmt.Fprintln(w, "No daily earnings yet.")
		return err
	}
	rows := make([][]string, 0, len(daily))
	for _, d := range daily {
		rows = append(rows, []string{d.Date, money.Format(d.Pay)})
	}
	if _, err := fmt.Fprintln(w, "Daily Earnings"); err != nil {
		return err
	}
	if err := writeTable(w, []string{"Date", "Gross"}, rows, map[int]bool{1: true}); err != nil {
		return err
	}
	if !plot {
		return nil
	}
	return PlotDaily(w, daily, cfg, totalWidth)
}

// PlotDaily draws daily gross pay and its moving average.
func PlotDaily(w io.Writer, daily []model.DailyEarning, cfg model.ReportConfig, totalWidth int) error {
	if len(daily) == 0 {
		return nil
	}
	values := make([]float64, len(daily))
	for i, d := range daily {
		values[i] = d.Pay
	}
	width := 0
	if totalWidth > 0 {
		width = PlotWidthFor(totalWidth)
	}
	series := []Series{{Name: "Daily", Values: values}}
	if cfg.AvgWindow > 1 {
		series = append(series, Series{
			Name:   fmt.Sprintf("%d-day avg", cfg.AvgWindow),
			Values: MovingAverage(values, cfg.AvgWindow),
		})
	}
	return PlotSeries(w, series, PlotOptions{
		Title:  "Daily Earnings Over Time",
		Width:  width,
		Height: cfg.PlotHeight,
		Color:  cfg.Color,
		From:   daily[0].Date,
		To:     daily[len(daily)-1].Date,
	})
}

// RenderBrackets prints the take-home schedule.
func RenderBrackets(w io.Writer, schedule earnings.Schedule) error {
	if _, err := fmt.Fprintln(w, "Take-Home Brackets (weekly hours)"); err != nil {
		return err
	}
	rows := make([][]string, 0, len(schedule))
	var from float64
	for i, b := range schedule {
		hours := fmt.Sprintf("%s+", formatHours(from))
		if !math.IsInf(b.Width, 1) {
			hours = fmt.Sprintf("%s-%s", formatHours(from), formatHours(from+b.Width))
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			hours,
			fmt.Sprintf("%s%%", strconv.FormatFloat(money.Round(b.Retention*100, 2), 'f', -1, 64)),
		})
		from += b.Width
	}
	return writeTable(w, []string{"Bracket", "Hours", "Kept"}, rows, map[int]bool{0: true, 2: true})
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
