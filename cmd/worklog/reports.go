package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/worklog/internal/earnings"
	"github.com/verte-zerg/worklog/internal/stats"
)

var dailyPlot bool

func newWeeklyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weekly",
		Short: "Show weekly hours, pay and take-home pay",
		Long: `Show weekly hours, pay and take-home pay.

Weeks are 7-day windows starting at the earliest logged date. Logging a
session dated before every other entry moves that start, so earlier
reports may regroup into different weeks.`,
		Args: cobra.NoArgs,
		RunE: runWeeklyCmd,
	}
}

func runWeeklyCmd(cmd *cobra.Command, _ []string) error {
	st, _, _, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer closeStore(st)

	entries, err := st.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list entries: %w", err)
	}
	weeks, err := earnings.WeeklyStatistics(entries)
	if err != nil {
		return err
	}
	return stats.RenderWeekly(cmd.OutOrStdout(), weeks)
}

func newTotalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "total",
		Short: "Show total take-home earnings",
		Args:  cobra.NoArgs,
		RunE:  runTotalCmd,
	}
}

func runTotalCmd(cmd *cobra.Command, _ []string) error {
	st, _, _, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer closeStore(st)

	report, err := stats.BuildReport(context.Background(), st)
	if err != nil {
		return err
	}
	return stats.RenderTotal(cmd.OutOrStdout(), report)
}

func newDailyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Show gross earnings per day",
		Args:  cobra.NoArgs,
		RunE:  runDailyCmd,
	}
	cmd.Flags().BoolVar(&dailyPlot, "plot", false, "plot earnings with a moving average")
	return cmd
}

func runDailyCmd(cmd *cobra.Command, _ []string) error {
	st, settings, _, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer closeStore(st)

	entries, err := st.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list entries: %w", err)
	}
	daily, err := earnings.DailyEarnings(entries)
	if err != nil {
		return err
	}
	return stats.RenderDaily(cmd.OutOrStdout(), daily, settings.Report, dailyPlot, 0)
}

func newBracketsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "brackets",
		Short: "Show the take-home pay brackets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return stats.RenderBrackets(cmd.OutOrStdout(), earnings.DefaultBrackets)
		},
	}
}
