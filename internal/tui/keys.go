package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	pageUp   key.Binding
	pageDown key.Binding
	home     key.Binding
	settings key.Binding
	refresh  key.Binding
	markRead key.Binding
	notify   key.Binding
	copy     key.Binding
	info     key.Binding
	esc      key.Binding
	quit     key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	pageUp:   key.NewBinding(key.WithKeys("pgup", "b")),
	pageDown: key.NewBinding(key.WithKeys("pgdown", "f", " ")),
	home:     key.NewBinding(key.WithKeys("h", "g")),
	settings: key.NewBinding(key.WithKeys("s")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	markRead: key.NewBinding(key.WithKeys("m")),
	notify:   key.NewBinding(key.WithKeys("n")),
	copy:     key.NewBinding(key.WithKeys("c")),
	info:     key.NewBinding(key.WithKeys("v")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
