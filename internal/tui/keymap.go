package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
	NextEvent key.Binding
	New       key.Binding
	Open      key.Binding
	Delete    key.Binding
	Cancel    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "week up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "week down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "day back")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "day forward")),
		PrevMonth: key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "next month")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		NextEvent: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "cycle events")),
		New:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new event")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open/edit")),
		Delete:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete event")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close editor")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Open, k.Today, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PrevMonth, k.NextMonth, k.Today, k.NextEvent},
		{k.New, k.Open, k.Delete, k.Cancel, k.Quit},
	}
}
