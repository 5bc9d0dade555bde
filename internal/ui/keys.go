package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the panel's keyboard shortcuts
type KeyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Help    key.Binding
	Quit    key.Binding

	// Monitor tab
	Tick   key.Binding
	Start  key.Binding
	Stop   key.Binding
	Left   key.Binding
	Right  key.Binding
	Clear  key.Binding
	Axis   key.Binding
	Export key.Binding

	// Properties tab
	More     key.Binding
	Less     key.Binding
	Interval key.Binding
	Color    key.Binding

	// Expressions tab
	Up      key.Binding
	Down    key.Binding
	Send    key.Binding
	Example key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Tick: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "update now"),
		),
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start auto-update"),
		),
		Stop: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "stop auto-update"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "older sample"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "newer sample"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "hide tooltip"),
		),
		Axis: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "axis policy"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export png"),
		),
		More: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more samples"),
		),
		Less: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "fewer samples"),
		),
		Interval: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "set interval"),
		),
		Color: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "line color"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "generate"),
		),
		Example: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "quick example"),
		),
	}
}

// tabKeys narrows the help view to the bindings of one tab
type tabKeys struct {
	KeyMap
	tab int
}

func (k tabKeys) ShortHelp() []key.Binding {
	switch k.tab {
	case propertiesTab:
		return []key.Binding{k.More, k.Less, k.Interval, k.Axis, k.Color, k.NextTab, k.Quit}
	case expressionsTab:
		return []key.Binding{k.Up, k.Down, k.Send, k.Example, k.NextTab, k.Quit}
	default:
		return []key.Binding{k.Tick, k.Start, k.Stop, k.Left, k.Right, k.Axis, k.Export, k.NextTab, k.Quit}
	}
}

func (k tabKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tick, k.Start, k.Stop, k.Left, k.Right, k.Clear},
		{k.Axis, k.Export, k.More, k.Less, k.Interval, k.Color},
		{k.Up, k.Down, k.Send, k.Example},
		{k.NextTab, k.PrevTab, k.Help, k.Quit},
	}
}
