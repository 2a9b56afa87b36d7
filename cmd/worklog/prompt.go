package main

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/worklog/internal/model"
	"github.com/verte-zerg/worklog/internal/validate"
)

var (
	promptAccent = lipgloss.Color("#3A9A6A")
	promptText   = lipgloss.Color("#F0F0F0")
	promptDim    = lipgloss.Color("#6E6E6E")
)

func worklogHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(promptAccent).Bold(true)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(promptAccent)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(promptAccent)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(promptText)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(promptDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(promptDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(promptDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(promptDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(promptDim)

	return t
}

// entryForm asks for every field of entry, keeping current values as defaults.
func entryForm(entry *model.WorkEntry) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Placeholder(model.DateLayout).
				Value(&entry.Date).
				Validate(validate.Date),
			huh.NewInput().
				Title("Minutes worked").
				Placeholder("60").
				Value(&entry.Minutes).
				Validate(validate.Minutes),
			huh.NewInput().
				Title("Pay rate (per hour)").
				Placeholder("25.00").
				Value(&entry.PayRate).
				Validate(validate.PayRate),
			huh.NewInput().
				Title("Project").
				Placeholder("optional").
				Value(&entry.ProjectTitle),
		),
	).WithTheme(worklogHuhTheme()).WithShowHelp(false)
}

func promptEntry(entry *model.WorkEntry) error {
	return entryForm(entry).Run()
}
