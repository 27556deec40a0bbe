package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tuiclock/internal/alarm"
)

const (
	formHour = iota
	formMinute
	formLabel
)

// alarmForm edits a new or existing alarm. editID is empty when adding.
type alarmForm struct {
	editID string
	inputs []textinput.Model
	index  int
}

func newAddForm(t alarm.Time) *alarmForm {
	return newAlarmForm("", t, "")
}

func newEditForm(entry alarm.Entry) *alarmForm {
	return newAlarmForm(entry.ID, entry.Time, entry.Label)
}

func newAlarmForm(id string, t alarm.Time, label string) *alarmForm {
	f := &alarmForm{
		editID: id,
		inputs: []textinput.Model{
			newFormInput("Hour   ", 2),
			newFormInput("Minute ", 2),
			newFormInput("Label  ", 40),
		},
	}
	f.inputs[formHour].SetValue(strconv.Itoa(t.Hour))
	f.inputs[formMinute].SetValue(strconv.Itoa(t.Minute))
	f.inputs[formLabel].SetValue(label)
	f.inputs[formLabel].Placeholder = "e.g. Morning alarm"
	return f
}

func newFormInput(prompt string, limit int) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.CharLimit = limit
	input.Width = limit + 1
	return input
}

func (f *alarmForm) title() string {
	if f.editID == "" {
		return "New alarm"
	}
	return "Edit alarm"
}

func (f *alarmForm) focus() tea.Cmd {
	for i := range f.inputs {
		if i == f.index {
			continue
		}
		f.inputs[i].Blur()
	}
	f.inputs[f.index].CursorEnd()
	return f.inputs[f.index].Focus()
}

func (f *alarmForm) move(delta int) tea.Cmd {
	f.index = (f.index + delta + len(f.inputs)) % len(f.inputs)
	return f.focus()
}

func (f *alarmForm) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.index], cmd = f.inputs[f.index].Update(msg)
	return cmd
}

// values reads the form the way field edits are read: non-numeric text is 0
// and out-of-range numbers are clamped.
func (f *alarmForm) values() (alarm.Time, string) {
	t := alarm.ParseTime(f.inputs[formHour].Value(), f.inputs[formMinute].Value())
	return t, f.inputs[formLabel].Value()
}
