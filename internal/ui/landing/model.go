// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package landing

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/empathapp/empath-tui/internal/config"
	"github.com/empathapp/empath-tui/internal/resources"
	"github.com/empathapp/empath-tui/internal/ui/components"
	"github.com/empathapp/empath-tui/internal/ui/styles"
)

// =============================================================================
// LANDING MODEL
// =============================================================================

// Model is the landing view: rotating comfort message, static copy, and
// the resources overlay.
type Model struct {
	rotator *Rotator
	overlay components.ResourcesOverlay
	keys    KeyMap
	theme   *styles.Theme

	width  int
	height int
}

// New creates the landing view using the configured rotation interval.
func New(theme *styles.Theme, cfg *config.Config) Model {
	interval := time.Duration(cfg.UI.RotateIntervalMs) * time.Millisecond
	return Model{
		rotator: NewRotator(resources.ComfortMessages, interval),
		overlay: components.NewResourcesOverlay(theme),
		keys:    DefaultKeyMap(),
		theme:   theme,
	}
}

// Init starts the rotator timer.
func (m Model) Init() tea.Cmd {
	return m.rotator.Start()
}

// Unmount stops the rotator so no tick outlives the view.
func (m *Model) Unmount() {
	m.rotator.Stop()
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.overlay.SetSize(width, height)
}

// Update handles landing messages and key presses.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case rotateTickMsg:
		return m, m.rotator.HandleTick(msg)

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		// The overlay captures input while open.
		if m.overlay.IsVisible() {
			switch {
			case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Resources):
				m.overlay.Hide()
				return m, nil
			case key.Matches(msg, m.keys.StartChat):
				m.overlay.Hide()
				m.rotator.Stop()
				return m, func() tea.Msg { return StartChatMsg{} }
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Next):
			return m, m.rotator.Next()
		case key.Matches(msg, m.keys.Reset):
			return m, m.rotator.Reset()
		case key.Matches(msg, m.keys.Resources):
			m.overlay.Show()
			return m, nil
		case key.Matches(msg, m.keys.StartChat):
			m.rotator.Stop()
			return m, func() tea.Msg { return StartChatMsg{} }
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
	}

	return m, nil
}
