// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	toggle   key.Binding
	quit     key.Binding
	logout   key.Binding
	newChat  key.Binding
	settings key.Binding
	contact  key.Binding
	copyUser key.Binding
	block    key.Binding
	call     key.Binding
	reset    key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up")),
	down:     key.NewBinding(key.WithKeys("down")),
	left:     key.NewBinding(key.WithKeys("left")),
	right:    key.NewBinding(key.WithKeys("right")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	toggle:   key.NewBinding(key.WithKeys(" ")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:   key.NewBinding(key.WithKeys("x")),
	newChat:  key.NewBinding(key.WithKeys("n")),
	settings: key.NewBinding(key.WithKeys("s")),
	contact:  key.NewBinding(key.WithKeys("ctrl+o")),
	copyUser: key.NewBinding(key.WithKeys("c")),
	block:    key.NewBinding(key.WithKeys("b")),
	call:     key.NewBinding(key.WithKeys("p")),
	reset:    key.NewBinding(key.WithKeys("ctrl+r")),
}
