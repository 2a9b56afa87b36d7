package stats

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/verte-zerg/worklog/internal/earnings"
	"github.com/verte-zerg/worklog/internal/model"
	"github.com/verte-zerg/worklog/internal/store"
)

func sampleEntries() []model.WorkEntry {
	return []model.WorkEntry{
		{Date: "2024-01-01", Minutes: "600", PayRate: "10", ProjectTitle: "alpha"},
		{Date: "2024-01-03", Minutes: "180", PayRate: "10", ProjectTitle: "alpha"},
		{Date: "2024-01-08", Minutes: "60", PayRate: "20", ProjectTitle: ""},
	}
}

func TestBuildReport(t *testing.T) {
	st := store.NewMemory(sampleEntries()...)

	report, err := BuildReport(context.Background(), st)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(report.Entries))
	}
	if len(report.Weeks) != 2 {
		t.Fatalf("expected 2 weeks, got %d", len(report.Weeks))
	}
	if report.Weeks[0].Week != "2024-01-01 to 2024-01-07" || report.Weeks[0].TakeHomePay != 71 {
		t.Fatalf("unexpected first week: %+v", report.Weeks[0])
	}
	if report.Weeks[1].TakeHomePay != 10 {
		t.Fatalf("unexpected second week: %+v", report.Weeks[1])
	}
	if report.Total != 81 {
		t.Fatalf("expected total 81, got %v", report.Total)
	}
	if len(report.Daily) != 3 || report.Daily[0].Pay != 100 {
		t.Fatalf("unexpected daily series: %+v", report.Daily)
	}
	if len(report.Projects) != 2 || report.Projects[0].Title != "alpha" || report.Projects[0].Entries != 2 {
		t.Fatalf("unexpected projects: %+v", report.Projects)
	}
	if report.Projects[1].Title != noProjectLabel {
		t.Fatalf("expected blank title grouped as %q, got %q", noProjectLabel, report.Projects[1].Title)
	}
}

func TestBuildReportEmpty(t *testing.T) {
	report, err := BuildReport(context.Background(), store.NewMemory())
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Weeks) != 0 || len(report.Daily) != 0 || report.Total != 0 {
		t.Fatalf("expected empty report, got %+v", report)
	}
}

func TestBuildReportMalformed(t *testing.T) {
	entries := append(sampleEntries(), model.WorkEntry{Date: "2024-01-09", Minutes: "abc", PayRate: "10"})
	report, err := BuildReport(context.Background(), store.NewMemory(entries...))
	var malformed *earnings.MalformedEntryError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedEntryError, got %v", err)
	}
	if malformed.Row != 3 {
		t.Fatalf("expected row 3, got %d", malformed.Row)
	}
	if len(report.Entries) != 4 {
		t.Fatalf("expected entries kept for display, got %d", len(report.Entries))
	}
	if report.Weeks != nil {
		t.Fatalf("expected no partial weeks, got %+v", report.Weeks)
	}
}

func TestReportSeries(t *testing.T) {
	report, err := ReportFor(sampleEntries())
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	weekly := report.WeeklyTakeHome()
	if len(weekly) != 2 || weekly[0] != 71 || weekly[1] != 10 {
		t.Fatalf("unexpected weekly series: %v", weekly)
	}
	daily := report.DailyPay()
	if len(daily) != 3 || daily[1] != 30 || daily[2] != 20 {
		t.Fatalf("unexpected daily series: %v", daily)
	}
}

func TestTopProjects(t *testing.T) {
	parsed, err := earnings.ParseEntries([]model.WorkEntry{
		{Date: "2024-01-01", Minutes: "60", PayRate: "10", ProjectTitle: "b"},
		{Date: "2024-01-01", Minutes: "120", PayRate: "10", ProjectTitle: " a "},
		{Date: "2024-01-02", Minutes: "120", PayRate: "10", ProjectTitle: "c"},
		{Date: "2024-01-02", Minutes: "30", PayRate: "10", ProjectTitle: "b"},
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	top := TopProjects(parsed, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(top))
	}
	if top[0].Title != "a" || top[1].Title != "c" {
		t.Fatalf("unexpected order: %+v", top)
	}
	all := TopProjects(parsed, 0)
	if len(all) != 3 || all[2].Title != "b" || math.Abs(all[2].Hours-1.5) > 1e-9 {
		t.Fatalf("unexpected projects: %+v", all)
	}
	if TopProjects(nil, 3) != nil {
		t.Fatalf("expected nil for no entries")
	}
}
