package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	export  key.Binding
	reset   key.Binding
	reload  key.Binding
	copy    key.Binding
	about   key.Binding
}

// Letter keys belong to the text inputs, so commands use control keys.
var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up")),
	down:    key.NewBinding(key.WithKeys("down")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("ctrl+c")),
	export:  key.NewBinding(key.WithKeys("ctrl+e")),
	reset:   key.NewBinding(key.WithKeys("ctrl+r")),
	reload:  key.NewBinding(key.WithKeys("ctrl+l")),
	copy:    key.NewBinding(key.WithKeys("ctrl+y")),
	about:   key.NewBinding(key.WithKeys("f1")),
}
