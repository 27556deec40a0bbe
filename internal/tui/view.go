package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/verte-zerg/tuiclock/internal/alarm"
	"github.com/verte-zerg/tuiclock/internal/countdown"
	"github.com/verte-zerg/tuiclock/internal/model"
)

const (
	labelColumnWidth = 24
	alarmTableWidth  = 64
	alarmTableHeight = 8
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#FB6F92"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	cardStyle = lipgloss.NewStyle().
			Padding(1, 4).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder(), true).
			BorderForeground(lipgloss.Color("#FF4D4F")).
			Padding(1, 4)
	bigStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FB6F92")).Bold(true).Underline(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	alertStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// View implements tea.Model.
func (m *Model) View() string {
	header := m.renderTabs()
	body := m.renderBody()
	if fired, ok := m.ctrl.Alarms().Fired(); ok {
		body = renderFiring(fired)
	}
	footer := m.renderFooter()
	helpLine := m.help.ShortHelpView(m.currentHelp())

	if m.width == 0 || m.height == 0 {
		return strings.Join([]string{header, body, footer, helpLine}, "\n")
	}
	headerHeight := lipgloss.Height(header)
	bodyHeight := m.height - headerHeight - 2
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	placed := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	helpPlaced := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, helpLine)
	return lipgloss.JoinVertical(lipgloss.Left, header, placed, footerLine, helpPlaced)
}

func (m *Model) currentHelp() []key.Binding {
	if _, ok := m.ctrl.Alarms().Fired(); ok {
		return []key.Binding{m.keys.Dismiss}
	}
	if m.form != nil {
		return []key.Binding{m.keys.Submit, m.keys.Next, m.keys.Prev, m.keys.Cancel}
	}
	if m.ctrl.Countdown().EditingField() != model.FieldNone {
		return []key.Binding{m.keys.Submit, m.keys.Cancel}
	}
	return m.keys.helpFor(m.screen)
}

func (m *Model) renderTabs() string {
	tabs := make([]string, 0, len(menu)+1)
	titles := append([]struct {
		screen screen
		title  string
	}{{screenHome, "Home"}}, menu...)
	for _, item := range titles {
		style := inactiveNavStyle
		if item.screen == m.screen {
			style = activeNavStyle
		}
		tabs = append(tabs, style.Render(item.title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderBody() string {
	switch m.screen {
	case screenPomodoro:
		return m.renderPomodoro()
	case screenStopwatch:
		return m.renderStopwatch()
	case screenClock:
		return m.renderClock()
	case screenAlarms:
		return m.renderAlarms()
	default:
		return m.renderHome()
	}
}

func (m *Model) renderHome() string {
	lines := make([]string, 0, len(menu))
	for i, item := range menu {
		line := fmt.Sprintf("  %d  %s", i+1, item.title)
		if i == m.menuIndex {
			line = selectedStyle.Render(fmt.Sprintf("› %d  %s", i+1, item.title))
		}
		lines = append(lines, line)
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderPomodoro() string {
	timer := m.ctrl.Countdown()
	shown := timer.Remaining()

	parts := make([]string, 0, len(pomodoroFields))
	for i, field := range pomodoroFields {
		if timer.EditingField() == field {
			parts = append(parts, m.fieldInput.View())
			continue
		}
		text := fmt.Sprintf("%02d", shown.Get(field))
		if i == m.fieldIndex && !timer.Running() {
			parts = append(parts, selectedStyle.Render(text))
			continue
		}
		parts = append(parts, bigStyle.Render(text))
	}
	clock := strings.Join(parts, bigStyle.Render(" : "))
	labels := mutedStyle.Render("hours   minutes   seconds")

	status := mutedStyle.Render(stateLabel(timer.State()))
	if timer.State() == countdown.StateExpired {
		status = alertStyle.Render("time is up")
	}
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Center, clock, labels, "", status))
}

func stateLabel(s countdown.State) string {
	switch s {
	case countdown.StateRunning:
		return "running"
	case countdown.StateEditing:
		return "editing"
	case countdown.StateExpired:
		return "expired"
	case countdown.StateZero:
		return "set a duration to start"
	default:
		return "paused"
	}
}

func (m *Model) renderStopwatch() string {
	sw := m.ctrl.Stopwatch()
	status := "stopped"
	if sw.Running() {
		status = "running"
	}
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		bigStyle.Render(sw.Elapsed().String()),
		"",
		mutedStyle.Render(status),
	))
}

func (m *Model) renderClock() string {
	reading := m.ctrl.ClockReading()
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		bigStyle.Render(reading.Time),
		"",
		mutedStyle.Render(reading.Date),
	))
}

func (m *Model) renderAlarms() string {
	if m.form != nil {
		return m.renderForm()
	}
	if m.ctrl.Alarms().Len() == 0 {
		return cardStyle.Render(mutedStyle.Render("No alarms yet. Press a to add one."))
	}
	return cardStyle.Render(m.alarmTable.View())
}

func (m *Model) renderForm() string {
	f := m.form
	lines := []string{bigStyle.Render(f.title()), ""}
	for _, input := range f.inputs {
		lines = append(lines, input.View())
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func renderFiring(entry alarm.Entry) string {
	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		alertStyle.Render("ALARM"),
		"",
		bigStyle.Render(entry.Time.String()),
		entry.Label,
		"",
		mutedStyle.Render("press enter to dismiss"),
	))
}

// renderFooter summarizes the features running in the background.
func (m *Model) renderFooter() string {
	timer := m.ctrl.Countdown()
	sw := m.ctrl.Stopwatch()
	segments := []string{
		fmt.Sprintf("Pomodoro %s %s", timer.Remaining(), runIcon(timer.Running())),
		fmt.Sprintf("Stopwatch %s %s", sw.Elapsed(), runIcon(sw.Running())),
	}
	active := 0
	for _, entry := range m.ctrl.Alarms().Entries() {
		if entry.Active {
			active++
		}
	}
	segments = append(segments, fmt.Sprintf("Alarms %d/%d on", active, m.ctrl.Alarms().Len()))
	return footerStyle.Render(strings.Join(segments, "  ·  "))
}

func runIcon(running bool) string {
	if running {
		return "▶"
	}
	return "⏸"
}

func newAlarmTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Time", Width: 6},
			{Title: "Label", Width: labelColumnWidth},
			{Title: "State", Width: 5},
			{Title: "Rings", Width: 20},
		}),
		table.WithHeight(alarmTableHeight),
		table.WithWidth(alarmTableWidth),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#F0F0F0")).
		Background(lipgloss.Color("#FB6F92"))
	t.SetStyles(styles)
	return t
}

func (m *Model) refreshAlarmTable() {
	entries := m.ctrl.Alarms().Entries()
	m.alarmTable.SetRows(alarmRows(entries, m.ctrl.Now()))
	if len(entries) == 0 {
		return
	}
	// The table parks its cursor at -1 while empty.
	cursor := m.alarmTable.Cursor()
	switch {
	case cursor < 0:
		m.alarmTable.SetCursor(0)
	case cursor >= len(entries):
		m.alarmTable.SetCursor(len(entries) - 1)
	}
}

func alarmRows(entries []alarm.Entry, now time.Time) []table.Row {
	rows := make([]table.Row, 0, len(entries))
	for _, entry := range entries {
		state := "off"
		rings := "-"
		if entry.Active {
			state = "on"
			rings = humanize.RelTime(entry.Time.Next(now), now, "ago", "from now")
		}
		rows = append(rows, table.Row{
			entry.Time.String(),
			truncateLabel(entry.Label, labelColumnWidth),
			state,
			rings,
		})
	}
	return rows
}
