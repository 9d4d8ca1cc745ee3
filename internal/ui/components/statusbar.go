// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for empath-tui.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/empathapp/empath-tui/internal/ui/styles"
	"github.com/empathapp/empath-tui/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// Status represents the current application status shown in the bar.
type Status int

const (
	StatusReady Status = iota
	StatusSending
	StatusSaving
	StatusError
	StatusOffline
)

// String returns the display string for the status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusSending:
		return "Sending..."
	case StatusSaving:
		return "Saving..."
	case StatusError:
		return "Error"
	case StatusOffline:
		return "Offline"
	default:
		return "Unknown"
	}
}

// Icon returns a shape for the status. Shapes are distinct from color so
// state reads correctly for colorblind users.
func (s Status) Icon() string {
	switch s {
	case StatusReady:
		return styles.StatusIndicators.Success
	case StatusSending, StatusSaving:
		return styles.StatusIndicators.Pending
	case StatusError:
		return styles.StatusIndicators.Error
	case StatusOffline:
		return styles.StatusIndicators.Warning
	default:
		return "?"
	}
}

// StatusBar is the bottom status bar of the chat view.
type StatusBar struct {
	Status       Status
	Message      string // Transient message, e.g. a save failure
	Conversation string // Active conversation title
	MessageCount int
	Dirty        bool // Unsaved changes pending
	Width        int
	theme        *styles.Theme
}

// NewStatusBar creates a status bar with sensible defaults.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Status: StatusReady,
		Width:  80,
		theme:  theme,
	}
}

// SetWidth updates the available width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetStatus updates the current status and clears any transient message.
func (s *StatusBar) SetStatus(status Status) {
	s.Status = status
	if status != StatusError {
		s.Message = ""
	}
}

// SetError switches to the error state with a message to display.
func (s *StatusBar) SetError(msg string) {
	s.Status = StatusError
	s.Message = msg
}

// SetConversation updates the active conversation summary.
func (s *StatusBar) SetConversation(title string, messages int) {
	s.Conversation = title
	s.MessageCount = messages
}

// SetDirty marks whether unsaved changes are pending.
func (s *StatusBar) SetDirty(dirty bool) {
	s.Dirty = dirty
}

// View renders the status bar for the current width.
func (s *StatusBar) View() string {
	if s.Width < 50 {
		return s.viewNarrow()
	}
	return s.viewWide()
}

// viewNarrow renders just the status indicator and any error message.
func (s *StatusBar) viewNarrow() string {
	left := s.statusSegment()
	if s.Message != "" {
		left += " " + s.theme.StatusError.Render(util.TruncateWidth(s.Message, s.Width-10))
	}
	return s.theme.StatusBar.Width(s.Width).Render(left)
}

// viewWide renders status, conversation summary, and save state.
func (s *StatusBar) viewWide() string {
	left := s.statusSegment()
	if s.Message != "" {
		left += "  " + s.theme.StatusError.Render(s.Message)
	} else if s.Conversation != "" {
		conv := util.TruncateWidth(s.Conversation, 30)
		left += "  " + s.theme.StatusText.Render(conv+" ("+util.IntToString(s.MessageCount)+")")
	}

	var right string
	if s.Dirty {
		right = s.theme.StatusDirty.Render(styles.StatusIndicators.Warning + " unsaved")
	} else {
		right = s.theme.StatusSaved.Render(styles.StatusIndicators.Success + " saved")
	}

	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + right
	return s.theme.StatusBar.Width(s.Width).Render(line)
}

func (s *StatusBar) statusSegment() string {
	text := s.Status.Icon() + " " + s.Status.String()
	switch s.Status {
	case StatusError:
		return s.theme.StatusError.Render(text)
	case StatusSending, StatusSaving:
		return s.theme.StatusDirty.Render(text)
	default:
		return s.theme.StatusText.Render(text)
	}
}
