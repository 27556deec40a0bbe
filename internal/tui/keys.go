package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Select   key.Binding
	Back     key.Binding
	Quit     key.Binding
	Toggle   key.Binding
	Switch   key.Binding
	Reset    key.Binding
	Edit     key.Binding
	Add      key.Binding
	Delete   key.Binding
	Next     key.Binding
	Prev     key.Binding
	Dismiss  key.Binding
	Submit   key.Binding
	Cancel   key.Binding
	Shortcut key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev field")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next field")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:     key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/pause")),
		Switch:   key.NewBinding(key.WithKeys(" ", "t"), key.WithHelp("space", "on/off")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Edit:     key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Add:      key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "add")),
		Delete:   key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete")),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Dismiss:  key.NewBinding(key.WithKeys("enter", "esc", " "), key.WithHelp("enter", "dismiss")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Shortcut: key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "jump")),
	}
}

func (k keyMap) helpFor(s screen) []key.Binding {
	switch s {
	case screenPomodoro:
		return []key.Binding{k.Toggle, k.Reset, k.Left, k.Right, k.Edit, k.Back, k.Quit}
	case screenStopwatch:
		return []key.Binding{k.Toggle, k.Reset, k.Back, k.Quit}
	case screenClock:
		return []key.Binding{k.Back, k.Quit}
	case screenAlarms:
		return []key.Binding{k.Add, k.Edit, k.Switch, k.Delete, k.Up, k.Down, k.Back, k.Quit}
	default:
		return []key.Binding{k.Up, k.Down, k.Select, k.Shortcut, k.Quit}
	}
}
