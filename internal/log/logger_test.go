package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelDebug, Component: "cli", Output: &buf})
	l.WithComponent("store").Debug("appended entry", "row", 3)

	out := buf.String()
	assert.Contains(t, out, "component=store")
	assert.Contains(t, out, "row=3")
	assert.Contains(t, out, "appended entry")
	assert.NotContains(t, out, "component=cli")
	assert.Equal(t, 1, strings.Count(out, "component="))
}

func TestLoggerNestedComponents(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelInfo, Component: "worklog", Output: &buf})
	l.Info("root line")
	l.WithComponent("store").WithComponent("ui").Info("child line")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "component=worklog")
	assert.Equal(t, 1, strings.Count(lines[1], "component="))
	assert.Contains(t, lines[1], "component=ui")
}

func TestLoggerLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelInfo, Component: "cli", Output: &buf})
	l.Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("dropped")
	assert.Equal(t, "discard", l.Component())
}
