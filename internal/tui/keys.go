package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	pageUp   key.Binding
	pageDown key.Binding
	enter    key.Binding
	esc      key.Binding
	quit     key.Binding
	logout   key.Binding
	friends  key.Binding
	copy     key.Binding

	addFriend key.Binding
	requests  key.Binding
	approve   key.Binding
	reject    key.Binding
	tab       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	pageUp:   key.NewBinding(key.WithKeys("pgup")),
	pageDown: key.NewBinding(key.WithKeys("pgdown")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:   key.NewBinding(key.WithKeys("l")),
	friends:  key.NewBinding(key.WithKeys("f")),
	copy:     key.NewBinding(key.WithKeys("ctrl+y")),

	addFriend: key.NewBinding(key.WithKeys("a")),
	requests:  key.NewBinding(key.WithKeys("r")),
	approve:   key.NewBinding(key.WithKeys("y")),
	reject:    key.NewBinding(key.WithKeys("n")),
	tab:       key.NewBinding(key.WithKeys("tab")),
}
