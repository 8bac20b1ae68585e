package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up      key.Binding
	down    key.Binding
	toggle  key.Binding
	filter  key.Binding
	order   key.Binding
	manual  key.Binding
	search  key.Binding
	skip    key.Binding
	remove  key.Binding
	monitor key.Binding
	enter   key.Binding
	back    key.Binding
	yes     key.Binding
	no      key.Binding
	restart key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		filter:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		order:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sort")),
		manual:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "match")),
		search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		skip:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "skip")),
		remove:  key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "remove")),
		monitor: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "monitor")),
		enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		yes:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		no:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
		restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.toggle, k.enter},
		{k.filter, k.order, k.manual, k.search},
		{k.skip, k.remove, k.monitor, k.back},
		{k.yes, k.no, k.restart, k.quit},
	}
}
