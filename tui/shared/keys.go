package shared

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Confirm      key.Binding
	Guide        key.Binding
	Upload       key.Binding
	NewAnalysis  key.Binding
	ShowReport   key.Binding
	VisualReport key.Binding
	Settings     key.Binding
	History      key.Binding
	GitHub       key.Binding
	Profile      key.Binding
	Export       key.Binding
	Help         key.Binding
	Quit         key.Binding
	Escape       key.Binding
}

var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	),
	Guide: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "welcome guide"),
	),
	Upload: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "start analysis"),
	),
	NewAnalysis: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new analysis"),
	),
	ShowReport: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "view report"),
	),
	VisualReport: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "visual report"),
	),
	Settings: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "settings"),
	),
	History: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "history"),
	),
	GitHub: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "github"),
	),
	Profile: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "profile"),
	),
	Export: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("C-x", "copy summary"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Upload, k.ShowReport, k.NewAnalysis, k.History, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Confirm, k.Escape},
		{k.Guide, k.Upload, k.NewAnalysis},
		{k.ShowReport, k.VisualReport, k.Export},
		{k.Settings, k.History, k.GitHub, k.Profile},
		{k.Help, k.Quit},
	}
}
