package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the watch view
type KeyMap struct {
	Run     key.Binding
	Step    key.Binding
	Back    key.Binding
	Restart key.Binding

	// Diagonal board switches
	OpenAll   key.Binding
	CloseAll  key.Binding
	ToggleAll key.Binding
	Source    key.Binding

	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key mappings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Run: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "run/pause"),
		),
		Step: key.NewBinding(
			key.WithKeys("n", "right", "l"),
			key.WithHelp("n/→", "step"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "left", "h"),
			key.WithHelp("b/←", "step back"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		OpenAll: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open switches"),
		),
		CloseAll: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "close switches"),
		),
		ToggleAll: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle switches"),
		),
		Source: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "voltage on/off"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Step, k.Back, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Run, k.Step, k.Back, k.Restart},
		{k.OpenAll, k.CloseAll, k.ToggleAll, k.Source},
		{k.Help, k.Quit},
	}
}
