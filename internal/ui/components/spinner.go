// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/empathapp/empath-tui/internal/ui/styles"
)

// =============================================================================
// SPINNER
// =============================================================================

// Spinner shows progress while a reply is in flight. Frames are ASCII so
// the animation renders on any terminal.
type Spinner struct {
	spinner   spinner.Model
	message   string
	startTime time.Time
	isActive  bool
	theme     *styles.Theme
}

// NewSpinner creates the reply spinner.
func NewSpinner(theme *styles.Theme) Spinner {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}
	if theme != nil {
		s.Style = theme.Spinner
	}
	return Spinner{
		spinner: s,
		message: "Empath is thinking",
		theme:   theme,
	}
}

// Start activates the spinner and returns its tick command.
func (s *Spinner) Start() tea.Cmd {
	s.isActive = true
	s.startTime = time.Now()
	return s.spinner.Tick
}

// Stop deactivates the spinner.
func (s *Spinner) Stop() {
	s.isActive = false
}

// IsActive reports whether the spinner is running.
func (s *Spinner) IsActive() bool {
	return s.isActive
}

// SetMessage updates the text shown next to the animation.
func (s *Spinner) SetMessage(msg string) {
	s.message = msg
}

// Update advances the animation. Tick messages are ignored while stopped so
// a stale tick cannot restart a finished spinner.
func (s *Spinner) Update(msg tea.Msg) tea.Cmd {
	if !s.isActive {
		return nil
	}
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return cmd
}

// View renders the spinner line, or "" when inactive.
func (s *Spinner) View() string {
	if !s.isActive {
		return ""
	}
	line := s.spinner.View() + " " + s.message + "..."
	if s.theme != nil {
		return s.theme.MutedText.Render(line)
	}
	return line
}

// Elapsed returns how long the spinner has been running.
func (s *Spinner) Elapsed() time.Duration {
	if !s.isActive {
		return 0
	}
	return time.Since(s.startTime)
}
