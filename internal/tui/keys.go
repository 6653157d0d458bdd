package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	nextPane key.Binding
	prevPane key.Binding
	up       key.Binding
	down     key.Binding
	reload   key.Binding
	copy     key.Binding
	publish  key.Binding
	info     key.Binding
	help     key.Binding
	enter    key.Binding
	esc      key.Binding
	quit     key.Binding
}

var keys = keyMap{
	nextPane: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next pane")),
	prevPane: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev pane")),
	up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
	down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
	reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy head")),
	publish:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "publish")),
	info:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "version")),
	help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.nextPane, k.copy, k.publish, k.reload, k.help, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.nextPane, k.prevPane, k.up, k.down},
		{k.reload, k.copy, k.publish},
		{k.info, k.help, k.quit},
	}
}
