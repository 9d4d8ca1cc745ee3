// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for empath-tui.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// PRIMARY ACCENT COLORS
// =============================================================================

// Teal - Brand color, headers, user highlights
var Teal = lipgloss.AdaptiveColor{Light: "#0D9488", Dark: "#2DD4BF"}

// TealDeep - Darker teal for backgrounds
var TealDeep = lipgloss.AdaptiveColor{Light: "#0F766E", Dark: "#134E4A"}

// Lavender - Companion accent, assistant messages
var Lavender = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#C4B5FD"}

// LavenderDeep - Darker lavender for backgrounds
var LavenderDeep = lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: "#3B2A63"}

// Sage - Success states, saved indicator
var Sage = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#6EE7B7"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Rose - Errors, crisis banner
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - Warnings, unsaved-changes indicator
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// =============================================================================
// SURFACE AND TEXT COLORS
// =============================================================================

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// SurfaceDim - Slightly darker/lighter surface for headers/footers
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F4", Dark: "#181825"}

// Overlay - Borders and dividers
var Overlay = lipgloss.AdaptiveColor{Light: "#D6D3D1", Dark: "#45475A"}

// TextPrimary - Main text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1C1917", Dark: "#CDD6F4"}

// TextSecondary - Supporting text
var TextSecondary = lipgloss.AdaptiveColor{Light: "#57534E", Dark: "#A6ADC8"}

// TextMuted - Placeholders, timestamps
var TextMuted = lipgloss.AdaptiveColor{Light: "#A8A29E", Dark: "#6C7086"}

// =============================================================================
// STATUS INDICATORS
// =============================================================================

// StatusIndicators holds the ASCII status shapes, distinct from color so
// state reads correctly for colorblind users.
var StatusIndicators = struct {
	Success string
	Error   string
	Pending string
	Warning string
}{
	Success: "+",
	Error:   "x",
	Pending: "o",
	Warning: "!",
}
