package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings shown in the footer. Everything except Quit is
// forwarded to the shell.
type keyMap struct {
	Focus  key.Binding
	Rename key.Binding
	Exit   key.Binding
	Edit   key.Binding
	Run    key.Binding
	Move   key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Focus:  key.NewBinding(key.WithKeys("f1", "f2", "f3", "f4"), key.WithHelp("F1-F4", "focus")),
		Rename: key.NewBinding(key.WithKeys("f5"), key.WithHelp("F5", "new file")),
		Exit:   key.NewBinding(key.WithKeys("f6"), key.WithHelp("F6", "close")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Run:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "run")),
		Move:   key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("←↑↓→", "move")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Rename, k.Exit, k.Edit, k.Run, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Focus, k.Rename, k.Exit}, {k.Edit, k.Run, k.Move, k.Quit}}
}
