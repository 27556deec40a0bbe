// Package tui provides the Bubble Tea widget interface.
package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tuiclock/internal/app"
	"github.com/verte-zerg/tuiclock/internal/model"
	"github.com/verte-zerg/tuiclock/internal/tick"
)

type screen int

const (
	screenHome screen = iota
	screenPomodoro
	screenStopwatch
	screenClock
	screenAlarms
)

var menu = []struct {
	screen screen
	title  string
}{
	{screenPomodoro, "Pomodoro"},
	{screenStopwatch, "Stopwatch"},
	{screenClock, "Clock"},
	{screenAlarms, "Alarms"},
}

var pomodoroFields = []model.Field{model.FieldHours, model.FieldMinutes, model.FieldSeconds}

// Model implements the Bubble Tea widget UI.
type Model struct {
	ctrl *app.Controller
	keys keyMap
	help help.Model

	width  int
	height int

	screen    screen
	menuIndex int

	fieldIndex int
	fieldInput textinput.Model

	clockSub *tick.Subscription

	alarmTable table.Model
	form       *alarmForm
}

// NewModel constructs the widget UI around a controller.
func NewModel(ctrl *app.Controller) *Model {
	m := &Model{
		ctrl:       ctrl,
		keys:       defaultKeyMap(),
		help:       help.New(),
		fieldIndex: 1,
		fieldInput: newFieldInput(),
		alarmTable: newAlarmTable(),
	}
	m.refreshAlarmTable()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.ctrl.Source().Start()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tick.Msg:
		cmd := m.ctrl.Source().Handle(msg)
		m.refreshAlarmTable()
		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.alarmTable.SetWidth(minInt(msg.Width, alarmTableWidth))
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, m.quit()
		}
		if _, firing := m.ctrl.Alarms().Fired(); firing {
			if key.Matches(msg, m.keys.Dismiss) {
				m.ctrl.AcknowledgeAlarm()
			}
			return m, nil
		}
		if m.form != nil {
			return m.updateForm(msg)
		}
		if m.ctrl.Countdown().EditingField() != model.FieldNone {
			return m.updateFieldEdit(msg)
		}
		switch m.screen {
		case screenPomodoro:
			return m.updatePomodoro(msg)
		case screenStopwatch:
			return m.updateStopwatch(msg)
		case screenClock:
			return m.updateClock(msg)
		case screenAlarms:
			return m.updateAlarms(msg)
		default:
			return m.updateHome(msg)
		}
	default:
		if m.form != nil {
			return m, m.form.updateFocused(msg)
		}
		if m.ctrl.Countdown().EditingField() != model.FieldNone {
			var cmd tea.Cmd
			m.fieldInput, cmd = m.fieldInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

func (m *Model) quit() tea.Cmd {
	m.setScreen(screenHome)
	m.ctrl.Source().Stop()
	m.ctrl.AcknowledgeAlarm()
	m.ctrl.Close()
	return tea.Quit
}

// setScreen moves between screens. The clock subscription lives only while
// the clock screen is shown.
func (m *Model) setScreen(s screen) {
	if m.screen == s {
		return
	}
	if m.screen == screenClock && m.clockSub != nil {
		m.clockSub.Release()
		m.clockSub = nil
	}
	if m.screen == screenPomodoro {
		m.ctrl.Countdown().CancelEdit()
		m.fieldInput.Blur()
	}
	m.screen = s
	if s == screenClock {
		m.clockSub = m.ctrl.WatchClock()
	}
	if s == screenAlarms {
		m.refreshAlarmTable()
		m.alarmTable.Focus()
	} else {
		m.alarmTable.Blur()
	}
}

func (m *Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()
	case key.Matches(msg, m.keys.Up):
		m.menuIndex = (m.menuIndex + len(menu) - 1) % len(menu)
	case key.Matches(msg, m.keys.Down):
		m.menuIndex = (m.menuIndex + 1) % len(menu)
	case key.Matches(msg, m.keys.Select):
		m.setScreen(menu[m.menuIndex].screen)
	case key.Matches(msg, m.keys.Shortcut):
		idx, err := strconv.Atoi(msg.String())
		if err == nil && idx >= 1 && idx <= len(menu) {
			m.menuIndex = idx - 1
			m.setScreen(menu[m.menuIndex].screen)
		}
	}
	return m, nil
}

func (m *Model) updatePomodoro(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	timer := m.ctrl.Countdown()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()
	case key.Matches(msg, m.keys.Back):
		m.setScreen(screenHome)
	case key.Matches(msg, m.keys.Toggle):
		timer.ToggleRunning()
	case key.Matches(msg, m.keys.Reset):
		timer.Reset()
	case key.Matches(msg, m.keys.Left):
		m.fieldIndex = (m.fieldIndex + len(pomodoroFields) - 1) % len(pomodoroFields)
	case key.Matches(msg, m.keys.Right):
		m.fieldIndex = (m.fieldIndex + 1) % len(pomodoroFields)
	case key.Matches(msg, m.keys.Edit):
		field := pomodoroFields[m.fieldIndex]
		if !timer.BeginEdit(field) {
			return m, nil
		}
		m.fieldInput.SetValue(timer.PendingInput())
		m.fieldInput.CursorEnd()
		return m, m.fieldInput.Focus()
	}
	return m, nil
}

func (m *Model) updateFieldEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	timer := m.ctrl.Countdown()
	switch {
	case key.Matches(msg, m.keys.Submit):
		timer.SetPendingInput(m.fieldInput.Value())
		timer.CommitEdit()
		m.fieldInput.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		timer.CancelEdit()
		m.fieldInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.fieldInput, cmd = m.fieldInput.Update(msg)
	timer.SetPendingInput(m.fieldInput.Value())
	return m, cmd
}

func (m *Model) updateStopwatch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sw := m.ctrl.Stopwatch()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()
	case key.Matches(msg, m.keys.Back):
		m.setScreen(screenHome)
	case key.Matches(msg, m.keys.Toggle):
		sw.ToggleRunning()
	case key.Matches(msg, m.keys.Reset):
		sw.Reset()
	}
	return m, nil
}

func (m *Model) updateClock(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()
	case key.Matches(msg, m.keys.Back):
		m.setScreen(screenHome)
	}
	return m, nil
}

func (m *Model) updateAlarms(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	registry := m.ctrl.Alarms()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()
	case key.Matches(msg, m.keys.Back):
		m.setScreen(screenHome)
		return m, nil
	case key.Matches(msg, m.keys.Add):
		m.form = newAddForm(m.ctrl.DefaultAlarmTime())
		return m, m.form.focus()
	case key.Matches(msg, m.keys.Edit):
		id, ok := m.selectedAlarmID()
		if !ok {
			return m, nil
		}
		entry, ok := registry.Get(id)
		if !ok {
			return m, nil
		}
		m.form = newEditForm(entry)
		return m, m.form.focus()
	case key.Matches(msg, m.keys.Switch):
		if id, ok := m.selectedAlarmID(); ok {
			registry.ToggleActive(id)
			m.refreshAlarmTable()
		}
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		if id, ok := m.selectedAlarmID(); ok {
			m.ctrl.RemoveAlarm(id)
			m.refreshAlarmTable()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.alarmTable, cmd = m.alarmTable.Update(msg)
	return m, cmd
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.form = nil
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		m.submitForm()
		return m, nil
	case key.Matches(msg, m.keys.Next):
		return m, m.form.move(1)
	case key.Matches(msg, m.keys.Prev):
		return m, m.form.move(-1)
	}
	return m, m.form.updateFocused(msg)
}

func (m *Model) submitForm() {
	f := m.form
	m.form = nil
	t, label := f.values()
	registry := m.ctrl.Alarms()
	if f.editID == "" {
		registry.Add(t, label)
	} else {
		registry.Update(f.editID, t, label)
	}
	m.refreshAlarmTable()
	if f.editID == "" {
		m.alarmTable.SetCursor(registry.Len() - 1)
	}
}

func (m *Model) selectedAlarmID() (string, bool) {
	entries := m.ctrl.Alarms().Entries()
	idx := m.alarmTable.Cursor()
	if idx < 0 || idx >= len(entries) {
		return "", false
	}
	return entries[idx].ID, true
}

func newFieldInput() textinput.Model {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 3
	input.Width = 3
	return input
}
