package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/worklog/internal/earnings"
	"github.com/verte-zerg/worklog/internal/model"
)

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{1, 2, 3, 4}, 2)
	want := []float64{1, 1.5, 2.5, 3.5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	same := MovingAverage([]float64{5, 6}, 1)
	if same[0] != 5 || same[1] != 6 {
		t.Fatalf("expected copy for window 1, got %v", same)
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil); got != "" {
		t.Fatalf("expected empty sparkline, got %q", got)
	}
	if got := Sparkline([]float64{3, 3}); got != "++" {
		t.Fatalf("expected flat sparkline, got %q", got)
	}
	if got := Sparkline([]float64{0, 1}); got != " @" {
		t.Fatalf("unexpected sparkline %q", got)
	}
}

func TestRenderEntries(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderEntries(&buf, sampleEntries()[:2]); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	if lines[0] != "# Date       Minutes Rate Project" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if lines[1] != "0 2024-01-01     600   10 alpha" {
		t.Fatalf("unexpected row: %q", lines[1])
	}

	buf.Reset()
	if err := RenderEntries(&buf, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.String() != "No entries logged yet.\n" {
		t.Fatalf("unexpected empty output: %q", buf.String())
	}
}

func TestRenderWeekly(t *testing.T) {
	weeks, err := earnings.WeeklyStatistics(sampleEntries())
	if err != nil {
		t.Fatalf("weekly: %v", err)
	}
	var buf bytes.Buffer
	if err := RenderWeekly(&buf, weeks); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"2024-01-01 to 2024-01-07", "13.00", "$130.00", "$71.00", "2024-01-08 to 2024-01-14"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderWeeklyEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderWeekly(&buf, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.String() != NoWeeklyData+"\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestRenderTotal(t *testing.T) {
	report, err := ReportFor(sampleEntries())
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	var buf bytes.Buffer
	if err := RenderTotal(&buf, report); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Total take-home earnings: $81.00", "Weekly take-home: [@ ]", "By Project", "alpha", noProjectLabel} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderTotalEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTotal(&buf, Report{}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.String() != "Total take-home earnings: $0.00\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestRenderDaily(t *testing.T) {
	daily, err := earnings.DailyEarnings(sampleEntries())
	if err != nil {
		t.Fatalf("daily: %v", err)
	}
	cfg := model.ReportConfig{PlotHeight: 4, AvgWindow: 7}
	var buf bytes.Buffer
	if err := RenderDaily(&buf, daily, cfg, true, 40); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"2024-01-03", "$100.00", "Daily Earnings Over Time", "7-day avg"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := RenderDaily(&buf, daily, cfg, false, 40); err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(buf.String(), "Legend:") {
		t.Fatalf("expected no plot without --plot")
	}
}

func TestRenderBrackets(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderBrackets(&buf, earnings.DefaultBrackets); err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "Take-Home Brackets (weekly hours)\n" +
		"Bracket Hours Kept\n" +
		"      1 0-7    50%\n" +
		"      2 7-13   60%\n" +
		"      3 13+    75%\n\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant\n%q", buf.String(), want)
	}
}
