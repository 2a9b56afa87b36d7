// Package ui provides the Bubble Tea work log interface.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/worklog/internal/log"
	"github.com/verte-zerg/worklog/internal/model"
	"github.com/verte-zerg/worklog/internal/money"
	"github.com/verte-zerg/worklog/internal/stats"
	"github.com/verte-zerg/worklog/internal/store"
	"github.com/verte-zerg/worklog/internal/validate"
)

const (
	tabEntries = iota
	tabWeekly
	tabDaily
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#3A9A6A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3A9A6A"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	modalStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#3A9A6A")).
			Padding(1, 2)
)

// Options configures the UI.
type Options struct {
	Report model.ReportConfig
	// StoreLabel names the backing store in the header.
	StoreLabel string
	Logger     *log.Logger
	// Now supplies today's date for new entries.
	Now func() time.Time
}

// Model implements the Bubble Tea work log UI.
type Model struct {
	store store.Store
	cfg   model.ReportConfig
	opts  Options
	log   *log.Logger

	report stats.Report
	errMsg string
	status string

	tabs      []string
	activeTab int
	viewports []viewport.Model
	entries   table.Model

	width  int
	height int

	form        *entryForm
	deleteIndex int
	confirming  bool
}

// NewModel constructs the UI over st and loads the first report.
func NewModel(st store.Store, opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = log.Discard()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Report.AvgWindow <= 0 {
		opts.Report.AvgWindow = 7
	}
	m := &Model{
		store: st,
		cfg:   opts.Report,
		opts:  opts,
		log:   opts.Logger.WithComponent("ui"),
		tabs:  []string{"Entries", "Weekly", "Daily"},
	}
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
	m.entries = table.New(
		table.WithColumns(entryColumns(80)),
		table.WithFocused(true),
		table.WithHeight(1),
	)
	m.entries.SetStyles(entriesTableStyles())
	m.refreshReport()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.form != nil {
			return m.updateForm(msg)
		}
		if m.confirming {
			return m.updateConfirm(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m *Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "left", "h":
		m.moveTab(-1)
		return m, tea.ClearScreen
	case "right", "l":
		m.moveTab(1)
		return m, tea.ClearScreen
	case "1", "2", "3":
		m.setTab(int(msg.String()[0] - '1'))
		return m, tea.ClearScreen
	case "g", "home":
		if m.activeTab == tabEntries {
			m.entries.GotoTop()
		} else {
			m.viewports[m.activeTab].GotoTop()
		}
		return m, nil
	case "G", "end":
		if m.activeTab == tabEntries {
			m.entries.GotoBottom()
		} else {
			m.viewports[m.activeTab].GotoBottom()
		}
		return m, nil
	}

	switch m.activeTab {
	case tabEntries:
		switch msg.String() {
		case "a":
			return m, m.openForm(formAdd)
		case "e", "enter":
			return m, m.openForm(formEdit)
		case "d", "delete":
			m.startDelete()
			return m, nil
		}
		var cmd tea.Cmd
		m.entries, cmd = m.entries.Update(msg)
		return m, cmd
	case tabDaily:
		switch msg.String() {
		case "=", "+":
			m.cfg.AvgWindow = nextAvgWindow(m.cfg.AvgWindow)
			m.renderTabContents()
			return m, nil
		case "-":
			m.cfg.AvgWindow = prevAvgWindow(m.cfg.AvgWindow)
			m.renderTabContents()
			return m, nil
		}
	}
	vp := m.viewports[m.activeTab]
	var cmd tea.Cmd
	vp, cmd = vp.Update(msg)
	m.viewports[m.activeTab] = vp
	return m, cmd
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.form = nil
		return m, nil
	case tea.KeyEnter:
		m.submitForm()
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		return m, m.form.setFocus(m.form.focus + 1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m, m.form.setFocus(m.form.focus - 1)
	}
	return m, m.form.updateInput(msg)
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirming = false
		m.deleteEntry(m.deleteIndex)
	case "n", "N", "esc", "q":
		m.confirming = false
	}
	return m, nil
}

func (m *Model) openForm(mode formMode) tea.Cmd {
	m.status = ""
	switch mode {
	case formEdit:
		idx := m.entries.Cursor()
		if idx < 0 || idx >= len(m.report.Entries) {
			m.status = "Select an entry to edit."
			return nil
		}
		m.form = newEntryForm(formEdit, idx, m.report.Entries[idx])
	default:
		var last model.WorkEntry
		if n := len(m.report.Entries); n > 0 {
			last = m.report.Entries[n-1]
		}
		m.form = newEntryForm(formAdd, -1, model.WorkEntry{
			Date:         m.opts.Now().Format(model.DateLayout),
			PayRate:      last.PayRate,
			ProjectTitle: last.ProjectTitle,
		})
	}
	m.form.setWidth(modalWidth(m.width) - 6)
	return m.form.setFocus(0)
}

func (m *Model) submitForm() {
	entry := validate.Normalize(m.form.entry())
	if err := validate.Entry(entry); err != nil {
		m.form.err = err.Error()
		return
	}
	ctx := context.Background()
	var err error
	switch m.form.mode {
	case formEdit:
		err = m.store.Replace(ctx, m.form.index, entry)
	default:
		err = m.store.Append(ctx, entry)
	}
	if err != nil {
		m.form.err = fmt.Sprintf("failed to save entry: %v", err)
		return
	}

	mode, index := m.form.mode, m.form.index
	m.form = nil
	m.refreshReport()
	if mode == formEdit {
		m.status = fmt.Sprintf("Updated entry #%d.", index)
		m.log.Debug("entry updated", "index", index)
		return
	}
	m.entries.GotoBottom()
	m.status = fmt.Sprintf("Added %s minutes on %s.", entry.Minutes, entry.Date)
	m.log.Debug("entry added", "date", entry.Date)
}

func (m *Model) startDelete() {
	idx := m.entries.Cursor()
	if idx < 0 || idx >= len(m.report.Entries) {
		m.status = "Select an entry to delete."
		return
	}
	m.status = ""
	m.deleteIndex = idx
	m.confirming = true
}

func (m *Model) deleteEntry(idx int) {
	if err := m.store.Delete(context.Background(), idx); err != nil {
		m.errMsg = fmt.Sprintf("failed to delete entry: %v", err)
		return
	}
	m.refreshReport()
	m.status = fmt.Sprintf("Deleted entry #%d.", idx)
	m.log.Debug("entry deleted", "index", idx)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.form != nil {
		return fitLines(m.renderModal(m.form.view()), m.width, m.height)
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(bodyHeight), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight + 1
	footerHeight = 1
	if notice := m.footerNotice(); notice != "" {
		footerHeight += lipgloss.Height(notice)
	}
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = bodyHeight
	}
	m.entries.SetColumns(entryColumns(m.width))
	m.entries.SetWidth(m.width)
	m.entries.SetHeight(m.adjustTableHeight(bodyHeight))
	if m.form != nil {
		m.form.setWidth(modalWidth(m.width) - 6)
	}
}

// adjustTableHeight sizes the table so its rendered view fills bodyHeight.
func (m *Model) adjustTableHeight(bodyHeight int) int {
	target := maxInt(1, bodyHeight)
	height := maxInt(1, target-1)
	m.entries.SetHeight(height)
	viewHeight := lipgloss.Height(m.entries.View())
	if viewHeight != target {
		height = maxInt(1, height+target-viewHeight)
	}
	return height
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.setTab(next)
}

func (m *Model) setTab(tab int) {
	m.activeTab = tab
	if m.activeTab == tabEntries {
		m.entries.Focus()
	} else {
		m.entries.Blur()
	}
}

func (m *Model) refreshReport() {
	report, err := stats.BuildReport(context.Background(), m.store)
	m.report = report
	if err != nil {
		m.errMsg = err.Error()
		m.log.Warn("report failed", "err", err)
	} else {
		m.errMsg = ""
	}
	m.entries.SetRows(entryRows(report.Entries))
	if cursor := m.entries.Cursor(); cursor >= len(report.Entries) {
		m.entries.SetCursor(maxInt(0, len(report.Entries)-1))
	}
	m.updateLayout()
	m.renderTabContents()
}

func (m *Model) renderTabContents() {
	width := m.width
	if width <= 0 {
		width = 80
	}
	if m.errMsg != "" {
		m.viewports[tabWeekly].SetContent("Failed to compute earnings. Fix or delete the entry named below.")
		m.viewports[tabDaily].SetContent("Failed to compute earnings. Fix or delete the entry named below.")
		return
	}
	m.viewports[tabWeekly].SetContent(renderWeekly(m.report, width))
	m.viewports[tabDaily].SetContent(renderDaily(m.report, m.cfg, width))
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	tabs := padLines(m.renderTabs(), m.width)
	return tabs + "\n" + padLine(m.renderSummary(), m.width)
}

func (m *Model) renderSummary() string {
	label := m.opts.StoreLabel
	if label == "" {
		label = "-"
	}
	summary := fmt.Sprintf("Store: %s  Entries: %d  Take-home: %s",
		label, len(m.report.Entries), money.Format(m.report.Total))
	return headerStyle.Render(truncateLine(summary, m.width))
}

func (m *Model) renderHelp() string {
	help := "Nav: left/right  Scroll: up/down/pgup/pgdn  Quit: q"
	switch m.activeTab {
	case tabEntries:
		help = "Nav: left/right  Move: up/down  Add: a  Edit: e/enter  Delete: d  Quit: q"
	case tabDaily:
		help = "Nav: left/right  Scroll: up/down/pgup/pgdn  Window: -/=  Quit: q"
	}
	return headerStyle.Render(help)
}

func (m *Model) footerNotice() string {
	switch {
	case m.confirming:
		return errorStyle.Render(fmt.Sprintf("Delete entry #%d? (y/n)", m.deleteIndex))
	case m.errMsg != "":
		return errorStyle.Render(wrapText(m.errMsg, m.width))
	case m.status != "":
		return statusStyle.Render(m.status)
	}
	return ""
}

func (m *Model) renderFooter() string {
	if notice := m.footerNotice(); notice != "" {
		return m.renderHelp() + "\n" + notice
	}
	return m.renderHelp()
}

func (m *Model) renderBody(height int) string {
	if m.activeTab == tabEntries {
		if len(m.report.Entries) == 0 {
			return fitLines("No entries logged yet. Press a to add one.", m.width, height)
		}
		return fitLines(tableMutedStyle.Render(m.entries.View()), m.width, height)
	}
	return fitLines(m.viewports[m.activeTab].View(), m.width, height)
}

func (m *Model) renderModal(content string) string {
	box := modalStyle.Width(modalWidth(m.width)).Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
