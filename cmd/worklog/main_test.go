package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/worklog/internal/config"
	"github.com/verte-zerg/worklog/internal/earnings"
	"github.com/verte-zerg/worklog/internal/stats"
	"github.com/verte-zerg/worklog/internal/store"
	"github.com/verte-zerg/worklog/internal/validate"
)

// setupCLI isolates config and env and returns a CSV store path.
func setupCLI(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv(config.EnvStoreBackend, "")
	t.Setenv(config.EnvStorePath, "")

	prev := isInteractive
	isInteractive = func() bool { return false }
	t.Cleanup(func() { isInteractive = prev })

	return filepath.Join(dir, "work_log.csv")
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAddListUpdateDelete(t *testing.T) {
	path := setupCLI(t)

	out, err := runCLI(t, "add", "--store", path, "--date", "2024-01-01", "--minutes", "780", "--rate", "10", "--project", "alpha")
	require.NoError(t, err)
	assert.Contains(t, out, "Added 780 minutes")

	out, err = runCLI(t, "list", "--store", path)
	require.NoError(t, err)
	assert.Contains(t, out, "0 2024-01-01     780   10 alpha")

	out, err = runCLI(t, "weekly", "--store", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2024-01-01 to 2024-01-07")
	assert.Contains(t, out, "$71.00")

	out, err = runCLI(t, "total", "--store", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Total take-home earnings: $71.00")

	_, err = runCLI(t, "update", "0", "--store", path, "--minutes", "60")
	require.NoError(t, err)
	out, err = runCLI(t, "list", "--store", path)
	require.NoError(t, err)
	assert.Contains(t, out, "0 2024-01-01      60   10 alpha")

	_, err = runCLI(t, "delete", "0", "--store", path)
	require.NoError(t, err)
	out, err = runCLI(t, "list", "--store", path)
	require.NoError(t, err)
	assert.Contains(t, out, "No entries logged yet.")
}

func TestAddRequiresFlagsWithoutTerminal(t *testing.T) {
	path := setupCLI(t)

	_, err := runCLI(t, "add", "--store", path, "--minutes", "60")
	assert.ErrorContains(t, err, "--minutes and --rate are required")
}

func TestAddRejectsInvalidInput(t *testing.T) {
	path := setupCLI(t)

	_, err := runCLI(t, "add", "--store", path, "--date", "2024-02-30", "--minutes", "60", "--rate", "10")
	var invalid *validate.InvalidInputError
	require.True(t, errors.As(err, &invalid), "got %v", err)
	assert.Equal(t, "date", invalid.Field)

	out, err := runCLI(t, "list", "--store", path)
	require.NoError(t, err)
	assert.Contains(t, out, "No entries logged yet.")
}

func TestUpdateOutOfRange(t *testing.T) {
	path := setupCLI(t)

	_, err := runCLI(t, "update", "3", "--store", path, "--minutes", "60")
	assert.True(t, errors.Is(err, store.ErrIndexOutOfRange), "got %v", err)

	_, err = runCLI(t, "delete", "0", "--store", path)
	assert.True(t, errors.Is(err, store.ErrIndexOutOfRange), "got %v", err)

	_, err = runCLI(t, "delete", "first", "--store", path)
	assert.ErrorContains(t, err, "invalid index")
}

func TestWeeklyEmpty(t *testing.T) {
	path := setupCLI(t)

	out, err := runCLI(t, "weekly", "--store", path)
	require.NoError(t, err)
	assert.Contains(t, out, stats.NoWeeklyData)
}

func TestWeeklyMalformedEntry(t *testing.T) {
	path := setupCLI(t)
	st, err := store.OpenCSV(path, nil)
	require.NoError(t, err)
	require.NoError(t, st.Append(context.Background(), recordWithMinutes("abc")))

	_, err = runCLI(t, "weekly", "--store", path)
	var malformed *earnings.MalformedEntryError
	require.True(t, errors.As(err, &malformed), "got %v", err)
	assert.Equal(t, "minutes", malformed.Field)
}

func TestDailyPlot(t *testing.T) {
	path := setupCLI(t)

	for _, date := range []string{"2024-01-01", "2024-01-02", "2024-01-02"} {
		_, err := runCLI(t, "add", "--store", path, "--date", date, "--minutes", "60", "--rate", "10")
		require.NoError(t, err)
	}
	out, err := runCLI(t, "daily", "--store", path, "--plot")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-01-02")
	assert.Contains(t, out, "$20.00")
	assert.Contains(t, out, "Daily Earnings Over Time")
	assert.Contains(t, out, "7-day avg")
}

func TestSQLiteBackend(t *testing.T) {
	setupCLI(t)
	dbPath := filepath.Join(t.TempDir(), "worklog.db")

	_, err := runCLI(t, "add", "--backend", "sqlite", "--store", dbPath, "--date", "2024-01-01", "--minutes", "60", "--rate", "10", "--project", "db")
	require.NoError(t, err)
	out, err := runCLI(t, "list", "--backend", "sqlite", "--store", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "db")
}

func TestUnknownBackend(t *testing.T) {
	setupCLI(t)

	_, err := runCLI(t, "list", "--backend", "postgres")
	assert.ErrorContains(t, err, "unknown store backend")
}

func TestBrackets(t *testing.T) {
	out, err := runCLI(t, "brackets")
	require.NoError(t, err)
	assert.Contains(t, out, "13+")
	assert.Contains(t, out, "75%")
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	setupCLI(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, writeFile(path, defaultConfigTemplate()))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Nil(t, cfg.Store.Backend)
}
