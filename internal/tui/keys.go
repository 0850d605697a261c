package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	SortWeek    key.Binding
	SortDate    key.Binding
	SortStatus  key.Binding
	Filter      key.Binding
	ClearFilter key.Binding
	PrevPage    key.Binding
	NextPage    key.Binding
	Add         key.Binding
	Delete      key.Binding
	Save        key.Binding
	Export      key.Binding
	Logout      key.Binding
	Tab1        key.Binding
	Tab2        key.Binding
	Tab3        key.Binding
	Tab         key.Binding
	Help        key.Binding
	Enter       key.Binding
	Back        key.Binding
	Up          key.Binding
	Down        key.Binding
	Quit        key.Binding
}

var keys = keyMap{
	SortWeek: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "sort week"),
	),
	SortDate: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "sort date"),
	),
	SortStatus: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort status"),
	),
	Filter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "filter"),
	),
	ClearFilter: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear filters"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("left", "h", "["),
		key.WithHelp("←/h", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("right", "l", "]"),
		key.WithHelp("→/l", "next page"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add task"),
	),
	Delete: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "delete task"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export"),
	),
	Logout: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "logout"),
	),
	Tab1: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "timesheets"),
	),
	Tab2: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "reports"),
	),
	Tab3: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "settings"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next view"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "edit"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.SortWeek, k.SortDate, k.SortStatus, k.Filter, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SortWeek, k.SortDate, k.SortStatus},
		{k.Filter, k.ClearFilter, k.PrevPage, k.NextPage},
		{k.Enter, k.Add, k.Delete, k.Save},
		{k.Tab1, k.Tab2, k.Tab3, k.Export, k.Logout},
		{k.Up, k.Down, k.Back, k.Quit},
	}
}
