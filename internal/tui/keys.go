package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Next        key.Binding
	Prev        key.Binding
	Up          key.Binding
	Down        key.Binding
	CycleLeft   key.Binding
	CycleRight  key.Binding
	Add         key.Binding
	Delete      key.Binding
	Submit      key.Binding
	Preview     key.Binding
	ToggleTheme key.Binding
	Dismiss     key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:        key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
		Up:          key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "row up")),
		Down:        key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "row down")),
		CycleLeft:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous option")),
		CycleRight:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next option")),
		Add:         key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add field")),
		Delete:      key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete field")),
		Submit:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "export")),
		Preview:     key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "preview")),
		ToggleTheme: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "light/dark")),
		Dismiss:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss notice")),
		Help:        key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Add, k.Delete, k.Submit, k.ToggleTheme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Up, k.Down},
		{k.CycleLeft, k.CycleRight, k.Add, k.Delete},
		{k.Submit, k.Preview, k.ToggleTheme, k.Dismiss},
		{k.Help, k.Quit},
	}
}
