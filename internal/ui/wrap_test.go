package ui

import "testing"

func TestWrapTextBreaksOnSpaces(t *testing.T) {
	got := wrapText("malformed entry at row 3", 10)
	want := "malformed\nentry at\nrow 3"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWrapTextSplitsLongWords(t *testing.T) {
	got := wrapText("abcdefgh", 3)
	if got != "abc\ndef\ngh" {
		t.Fatalf("unexpected wrap: %q", got)
	}
}

func TestWrapTextWideRunes(t *testing.T) {
	got := wrapText("日本語", 4)
	if got != "日本\n語" {
		t.Fatalf("unexpected wrap: %q", got)
	}
}

func TestWrapTextNoWidth(t *testing.T) {
	if got := wrapText("a b", 0); got != "a b" {
		t.Fatalf("expected input unchanged, got %q", got)
	}
}
