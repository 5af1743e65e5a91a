package mobile

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Fetch     key.Binding
	Unfetch   key.Binding
	Up        key.Binding
	Down      key.Binding
	Edit      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding

	Next    key.Binding
	Prev    key.Binding
	Cancel  key.Binding
	Save    key.Binding
	Confirm key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Fetch:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fetch")),
		Unfetch:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "unfetch")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Edit:      key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),

		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Confirm: key.NewBinding(key.WithKeys("enter")),
	}
}
