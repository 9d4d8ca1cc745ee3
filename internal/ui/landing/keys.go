// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package landing

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the landing view key bindings.
type KeyMap struct {
	Next      key.Binding
	Reset     key.Binding
	Resources key.Binding
	StartChat key.Binding
	Close     key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard landing bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("n", "right", "tab"),
			key.WithHelp("n", "next message"),
		),
		Reset: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first message"),
		),
		Resources: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "resources"),
		),
		StartChat: key.NewBinding(
			key.WithKeys("enter", "c"),
			key.WithHelp("enter", "start chat"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
