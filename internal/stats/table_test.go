package stats

import (
	"bytes"
	"testing"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Date", "Minutes", "Rate"}
	rows := [][]string{
		{"2024-01-01", "90", "12.5"},
		{"2024-01-08", "480", "9"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Date       Minutes Rate" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "2024-01-01      90 12.5" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "2024-01-08     480    9" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := formatTable([]string{"Project", "H"}, [][]string{{"日本", "1"}}, nil)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[1] != "日本    1" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
}

func TestWriteTableTrimsTrailingSpace(t *testing.T) {
	var buf bytes.Buffer
	if err := writeTable(&buf, []string{"Project", "H"}, [][]string{{"a", ""}}, nil); err != nil {
		t.Fatalf("writeTable failed: %v", err)
	}
	if got := buf.String(); got != "Project H\na\n\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}
