// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// =============================================================================
// THEME
// =============================================================================

// Theme holds every pre-built style used by the TUI. Build one with NewTheme
// at startup and pass it down; styles are immutable after construction.
type Theme struct {
	// Terminal capabilities detected at startup
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Header and landing
	Header      lipgloss.Style
	Tagline     lipgloss.Style
	Rotator     lipgloss.Style
	RotatorHint lipgloss.Style

	// Chat transcript
	UserLabel  lipgloss.Style
	UserBubble lipgloss.Style
	BotLabel   lipgloss.Style
	BotBubble  lipgloss.Style
	Timestamp  lipgloss.Style

	// Crisis banner shown above the transcript when a reply is flagged
	CrisisBanner lipgloss.Style

	// Input area
	InputContainer lipgloss.Style
	InputHint      lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusText  lipgloss.Style
	StatusSaved lipgloss.Style
	StatusDirty lipgloss.Style
	StatusError lipgloss.Style

	// Conversation picker
	ListItem       lipgloss.Style
	ListItemActive lipgloss.Style
	ListPreview    lipgloss.Style

	// Resources overlay
	OverlayBox     lipgloss.Style
	OverlayTitle   lipgloss.Style
	OverlayHeading lipgloss.Style
	OverlayBody    lipgloss.Style

	// Generic
	ErrorText lipgloss.Style
	MutedText lipgloss.Style
	Spinner   lipgloss.Style
}

// NewTheme detects terminal capabilities and builds the full style set.
func NewTheme() *Theme {
	t := &Theme{
		ColorProfile: termenv.ColorProfile(),
		IsDark:       termenv.HasDarkBackground(),
	}
	t.HasTrueColor = t.ColorProfile == termenv.TrueColor
	t.initStyles()
	return t
}

func (t *Theme) initStyles() {
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Teal).
		Padding(0, 1)

	t.Tagline = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.Rotator = lipgloss.NewStyle().
		Foreground(Lavender).
		Bold(true).
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Overlay)

	t.RotatorHint = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.UserLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(Teal)

	t.UserBubble = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Teal).
		Padding(0, 1)

	t.BotLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(Lavender)

	t.BotBubble = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Lavender).
		Padding(0, 1)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.CrisisBanner = lipgloss.NewStyle().
		Bold(true).
		Foreground(Rose).
		Border(lipgloss.ThickBorder()).
		BorderForeground(Rose).
		Padding(0, 1)

	t.InputContainer = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputHint = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Padding(0, 1)

	t.StatusText = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.StatusSaved = lipgloss.NewStyle().
		Foreground(Sage)

	t.StatusDirty = lipgloss.NewStyle().
		Foreground(Amber)

	t.StatusError = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.ListItem = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ListItemActive = lipgloss.NewStyle().
		Foreground(Teal).
		Bold(true).
		Padding(0, 1)

	t.ListPreview = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.OverlayBox = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(Lavender).
		Padding(1, 2)

	t.OverlayTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Lavender)

	t.OverlayHeading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Teal)

	t.OverlayBody = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.ErrorText = lipgloss.NewStyle().
		Foreground(Rose)

	t.MutedText = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.Spinner = lipgloss.NewStyle().
		Foreground(Lavender)
}
