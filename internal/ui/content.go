package ui

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/worklog/internal/model"
	"github.com/verte-zerg/worklog/internal/money"
	"github.com/verte-zerg/worklog/internal/stats"
)

func renderWeekly(report stats.Report, width int) string {
	if len(report.Weeks) == 0 {
		return stats.NoWeeklyData
	}
	var buf bytes.Buffer
	if err := stats.RenderWeekly(&buf, report.Weeks); err != nil {
		return fmt.Sprintf("Failed to render weekly statistics: %v", err)
	}
	parts := []string{renderSummaryCards(report, width), strings.TrimRight(buf.String(), "\n")}
	if len(report.Weeks) > 1 {
		parts = append(parts, headerStyle.Render("Take-home trend: ")+stats.Sparkline(report.WeeklyTakeHome()))
	}
	return strings.Join(parts, "\n\n")
}

func renderSummaryCards(report stats.Report, width int) string {
	var hours, gross float64
	for _, w := range report.Weeks {
		hours += w.TotalHours
		gross += w.TotalPay
	}
	cards := []string{
		metricCard("Weeks", strconv.Itoa(len(report.Weeks))),
		metricCard("Hours", fmt.Sprintf("%.2f", hours)),
		metricCard("Gross", money.Format(gross)),
		metricCard("Take-Home", money.Format(report.Total)),
	}
	if width < 80 {
		return strings.Join(cards, "\n")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func renderDaily(report stats.Report, cfg model.ReportConfig, width int) string {
	if len(report.Daily) == 0 {
		return "No daily earnings yet."
	}
	cfg.Color = true
	var buf bytes.Buffer
	if err := stats.PlotDaily(&buf, report.Daily, cfg, width); err != nil {
		return fmt.Sprintf("Failed to render daily earnings: %v", err)
	}
	header := headerStyle.Render(fmt.Sprintf("Days: %d  Best day: %s  Average window: %d",
		len(report.Daily), bestDay(report.Daily), cfg.AvgWindow))
	return strings.TrimRight(header+"\n\n"+buf.String(), "\n")
}

func bestDay(daily []model.DailyEarning) string {
	if len(daily) == 0 {
		return "-"
	}
	best := daily[0]
	for _, d := range daily[1:] {
		if d.Pay > best.Pay {
			best = d
		}
	}
	return fmt.Sprintf("%s (%s)", best.Date, money.Format(best.Pay))
}

// entryColumns gives the project column whatever width remains.
func entryColumns(width int) []table.Column {
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Date", Width: 10},
		{Title: "Minutes", Width: 7},
		{Title: "Rate", Width: 8},
	}
	used := 0
	for _, c := range cols {
		used += c.Width + 1
	}
	return append(cols, table.Column{Title: "Project", Width: maxInt(10, width-used)})
}

func entryRows(entries []model.WorkEntry) []table.Row {
	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{strconv.Itoa(i), e.Date, e.Minutes, e.PayRate, e.ProjectTitle})
	}
	return rows
}

func entriesTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Background(lipgloss.Color("#3A3A3A")).
		Bold(true)
	return styles
}
