// Package main provides the CLI entrypoint for worklog.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/worklog/internal/config"
	"github.com/verte-zerg/worklog/internal/log"
	"github.com/verte-zerg/worklog/internal/store"
	"github.com/verte-zerg/worklog/internal/ui"
)

var (
	globalBackend string
	globalStore   string
	globalVerbose bool
)

// isInteractive reports whether prompts can be shown on stdin.
var isInteractive = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "worklog",
		Short:         "Track work hours and take-home pay",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runUICmd,
	}

	rootCmd.PersistentFlags().StringVar(&globalBackend, "backend", config.DefaultBackend,
		fmt.Sprintf("store backend (%s)", strings.Join(store.Backends(), ", ")))
	rootCmd.PersistentFlags().StringVar(&globalStore, "store", "", "store path (default depends on backend)")
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "log debug details to stderr")

	rootCmd.AddCommand(newUICmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newUpdateCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newWeeklyCmd())
	rootCmd.AddCommand(newTotalCmd())
	rootCmd.AddCommand(newDailyCmd())
	rootCmd.AddCommand(newBracketsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func newUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive work log",
		Args:  cobra.NoArgs,
		RunE:  runUICmd,
	}
}

func runUICmd(cmd *cobra.Command, _ []string) error {
	st, settings, logger, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer closeStore(st)

	uiLogger := log.Discard()
	if globalVerbose {
		uiLogger = logger
	}
	m := ui.NewModel(st, ui.Options{
		Report:     settings.Report,
		StoreLabel: storeLabel(settings),
		Logger:     uiLogger,
	})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// loadSettings resolves config file, environment and flags for cmd.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	if err := config.LoadEnv(); err != nil {
		logErrln("warning:", err)
	}
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return config.Settings{}, fmt.Errorf("failed to load config: %w", err)
	}
	var overrides config.Overrides
	if cmd.Flags().Changed("backend") {
		overrides.Backend = &globalBackend
	}
	if cmd.Flags().Changed("store") {
		overrides.Path = &globalStore
	}
	return config.Resolve(fileCfg, config.EnvLookup, overrides)
}

func newLogger() *log.Logger {
	cfg := log.DefaultConfig()
	if globalVerbose {
		cfg.Level = slog.LevelDebug
	}
	return log.New(cfg)
}

func openStore(cmd *cobra.Command) (store.Store, config.Settings, *log.Logger, error) {
	settings, err := loadSettings(cmd)
	if err != nil {
		return nil, config.Settings{}, nil, err
	}
	logger := newLogger()
	logger.Debug("opening store", "backend", settings.Backend, "path", settings.StorePath)
	st, err := store.Open(store.Options{
		Backend: settings.Backend,
		Path:    settings.StorePath,
		Logger:  logger,
	})
	if err != nil {
		return nil, config.Settings{}, nil, fmt.Errorf("failed to open store: %w", err)
	}
	return st, settings, logger, nil
}

func closeStore(st store.Store) {
	if cerr := st.Close(); cerr != nil {
		logErrf("failed to close store: %v\n", cerr)
	}
}

func storeLabel(settings config.Settings) string {
	if settings.StorePath == "" {
		return settings.Backend
	}
	return fmt.Sprintf("%s (%s)", settings.Backend, settings.StorePath)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# worklog configuration
# Uncomment a value to enable it. %s and %s override
# the store settings; CLI flags override both.

[store]
# backend = %q           # csv, sqlite or memory
# path = %q

[report]
# plot-height = %d           # Rows in daily earnings plots
# color = true              # Color plots when writing to a terminal
# avg-window = %d             # Days in the daily moving average
`,
		config.EnvStoreBackend,
		config.EnvStorePath,
		config.DefaultBackend,
		config.DefaultCSVPath(),
		config.DefaultPlotHeight,
		config.DefaultAvgWindow,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
