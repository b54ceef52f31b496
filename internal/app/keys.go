package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Advance     key.Binding
	Diagnostics key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Advance: key.NewBinding(
			key.WithKeys(" ", "space", "enter", "n"),
			key.WithHelp("space/enter/n/click", "advance"),
		),
		Diagnostics: key.NewBinding(
			key.WithKeys("d", "D"),
			key.WithHelp("d", "toggle diagnostics"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Advance, k.Diagnostics, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Advance, k.Diagnostics}, {k.Help, k.Quit}}
}
