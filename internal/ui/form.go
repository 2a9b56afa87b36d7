package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/worklog/internal/model"
)

type formMode int

const (
	formAdd formMode = iota
	formEdit
)

const (
	fieldDate = iota
	fieldMinutes
	fieldRate
	fieldProject
)

// entryForm edits one work entry. index is the store row for edits.
type entryForm struct {
	mode   formMode
	index  int
	inputs []textinput.Model
	focus  int
	err    string
}

func newEntryForm(mode formMode, index int, entry model.WorkEntry) *entryForm {
	f := &entryForm{
		mode:  mode,
		index: index,
		inputs: []textinput.Model{
			newFormInput("Date (YYYY-MM-DD): ", "2024-01-31"),
			newFormInput("Minutes: ", "90"),
			newFormInput("Pay rate: ", "25.00"),
			newFormInput("Project: ", "optional"),
		},
	}
	f.inputs[fieldDate].SetValue(entry.Date)
	f.inputs[fieldMinutes].SetValue(entry.Minutes)
	f.inputs[fieldRate].SetValue(entry.PayRate)
	f.inputs[fieldProject].SetValue(entry.ProjectTitle)
	return f
}

func newFormInput(prompt, placeholder string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.Placeholder = placeholder
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func (f *entryForm) entry() model.WorkEntry {
	return model.WorkEntry{
		Date:         f.inputs[fieldDate].Value(),
		Minutes:      f.inputs[fieldMinutes].Value(),
		PayRate:      f.inputs[fieldRate].Value(),
		ProjectTitle: f.inputs[fieldProject].Value(),
	}
}

func (f *entryForm) setFocus(idx int) tea.Cmd {
	count := len(f.inputs)
	if idx < 0 {
		idx = count - 1
	}
	if idx >= count {
		idx = 0
	}
	f.focus = idx
	var cmd tea.Cmd
	for i := range f.inputs {
		if i == f.focus {
			cmd = f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	return cmd
}

func (f *entryForm) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *entryForm) setWidth(width int) {
	for i := range f.inputs {
		f.inputs[i].Width = maxInt(10, width-len(f.inputs[i].Prompt)-2)
	}
}

func (f *entryForm) title() string {
	if f.mode == formEdit {
		return fmt.Sprintf("Edit entry #%d (enter to save, esc to cancel)", f.index)
	}
	return "Add entry (enter to save, esc to cancel)"
}

func (f *entryForm) view() string {
	lines := []string{cardValueStyle.Render(f.title())}
	for _, input := range f.inputs {
		lines = append(lines, input.View())
	}
	if f.err != "" {
		lines = append(lines, errorStyle.Render(f.err))
	}
	return strings.Join(lines, "\n")
}
