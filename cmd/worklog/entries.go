package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/worklog/internal/model"
	"github.com/verte-zerg/worklog/internal/stats"
	"github.com/verte-zerg/worklog/internal/store"
	"github.com/verte-zerg/worklog/internal/validate"
)

var (
	entryDate    string
	entryMinutes string
	entryRate    string
	entryProject string
)

func addEntryFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&entryDate, "date", "", "work date (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&entryMinutes, "minutes", "", "minutes worked")
	cmd.Flags().StringVar(&entryRate, "rate", "", "pay rate per hour")
	cmd.Flags().StringVar(&entryProject, "project", "", "project title")
}

// applyEntryFlags overlays flags given on the command line onto entry.
func applyEntryFlags(cmd *cobra.Command, entry model.WorkEntry) model.WorkEntry {
	if cmd.Flags().Changed("date") {
		entry.Date = entryDate
	}
	if cmd.Flags().Changed("minutes") {
		entry.Minutes = entryMinutes
	}
	if cmd.Flags().Changed("rate") {
		entry.PayRate = entryRate
	}
	if cmd.Flags().Changed("project") {
		entry.ProjectTitle = entryProject
	}
	return entry
}

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a work session",
		Long: `Log a work session.

Without --minutes or --rate, and with a terminal on stdin, a form asks for
the missing values.`,
		Args: cobra.NoArgs,
		RunE: runAddCmd,
	}
	addEntryFlags(cmd)
	return cmd
}

func runAddCmd(cmd *cobra.Command, _ []string) error {
	entry := applyEntryFlags(cmd, model.WorkEntry{Date: time.Now().Format(model.DateLayout)})
	missing := !cmd.Flags().Changed("minutes") || !cmd.Flags().Changed("rate")
	if missing {
		if !isInteractive() {
			return fmt.Errorf("--minutes and --rate are required when stdin is not a terminal")
		}
		if err := promptEntry(&entry); err != nil {
			return fmt.Errorf("failed to read entry: %w", err)
		}
	}

	entry = validate.Normalize(entry)
	if err := validate.Entry(entry); err != nil {
		return err
	}

	st, _, _, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer closeStore(st)

	if err := st.Append(context.Background(), entry); err != nil {
		return fmt.Errorf("failed to add entry: %w", err)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added %s minutes at %s/h on %s.\n", entry.Minutes, entry.PayRate, entry.Date)
	return err
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List logged entries with their index",
		Args:  cobra.NoArgs,
		RunE:  runListCmd,
	}
}

func runListCmd(cmd *cobra.Command, _ []string) error {
	st, _, _, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer closeStore(st)

	entries, err := st.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list entries: %w", err)
	}
	return stats.RenderEntries(cmd.OutOrStdout(), entries)
}

func newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <index>",
		Short: "Change a logged entry",
		Long: `Change the entry at <index> (see "worklog list").

Only the fields given as flags change; the rest keep their stored values.`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdateCmd,
	}
	addEntryFlags(cmd)
	return cmd
}

func runUpdateCmd(cmd *cobra.Command, args []string) error {
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}

	st, _, _, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer closeStore(st)

	ctx := context.Background()
	entries, err := st.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list entries: %w", err)
	}
	if index >= len(entries) {
		return fmt.Errorf("no entry at index %d (%d entries): %w", index, len(entries), store.ErrIndexOutOfRange)
	}

	entry := validate.Normalize(applyEntryFlags(cmd, entries[index]))
	if err := validate.Entry(entry); err != nil {
		return err
	}
	if err := st.Replace(ctx, index, entry); err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Updated entry %d.\n", index)
	return err
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <index>",
		Short: "Delete a logged entry",
		Args:  cobra.ExactArgs(1),
		RunE:  runDeleteCmd,
	}
}

func runDeleteCmd(cmd *cobra.Command, args []string) error {
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}

	st, _, _, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer closeStore(st)

	if err := st.Delete(context.Background(), index); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %d.\n", index)
	return err
}

func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil || index < 0 {
		return 0, fmt.Errorf("invalid index %q (use a row number from \"worklog list\")", arg)
	}
	return index, nil
}
