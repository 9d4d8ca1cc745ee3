// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/empathapp/empath-tui/internal/resources"
	"github.com/empathapp/empath-tui/internal/ui/styles"
)

// =============================================================================
// RESOURCES OVERLAY
// =============================================================================

// ResourcesOverlay is the modal listing coping tips and crisis helplines.
// It toggles over whichever view is active; Show on an already-visible
// overlay and Hide on a hidden one are no-ops.
type ResourcesOverlay struct {
	visible bool
	width   int
	height  int
	theme   *styles.Theme
}

// NewResourcesOverlay creates a hidden overlay.
func NewResourcesOverlay(theme *styles.Theme) ResourcesOverlay {
	return ResourcesOverlay{theme: theme}
}

// SetSize sets the terminal dimensions the overlay centers within.
func (o *ResourcesOverlay) SetSize(width, height int) {
	o.width = width
	o.height = height
}

// Show makes the overlay visible.
func (o *ResourcesOverlay) Show() {
	o.visible = true
}

// Hide dismisses the overlay.
func (o *ResourcesOverlay) Hide() {
	o.visible = false
}

// Toggle flips visibility.
func (o *ResourcesOverlay) Toggle() {
	o.visible = !o.visible
}

// IsVisible returns whether the overlay is currently shown.
func (o *ResourcesOverlay) IsVisible() bool {
	return o.visible
}

// View renders the overlay centered in the terminal, or "" when hidden.
func (o *ResourcesOverlay) View() string {
	if !o.visible {
		return ""
	}

	var b strings.Builder
	b.WriteString(o.theme.OverlayTitle.Render("Wellness Resources"))
	b.WriteString("\n\n")

	b.WriteString(o.theme.OverlayHeading.Render("Coping tips"))
	b.WriteString("\n")
	for _, tip := range resources.CopingTips {
		b.WriteString(o.theme.OverlayBody.Render("  - " + tip.Title + ": " + tip.Body))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(o.theme.OverlayHeading.Render("Helplines"))
	b.WriteString("\n")
	for _, h := range resources.Helplines() {
		b.WriteString(o.theme.OverlayBody.Render("  " + h[0] + ": " + h[1]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(o.theme.MutedText.Render("If you are in immediate danger, contact local emergency services."))
	b.WriteString("\n\n")
	b.WriteString(o.theme.MutedText.Render("esc or r to close"))

	boxWidth := o.width - 8
	if boxWidth > 64 {
		boxWidth = 64
	}
	if boxWidth < 30 {
		boxWidth = 30
	}
	box := o.theme.OverlayBox.Width(boxWidth).Render(b.String())

	if o.width <= 0 || o.height <= 0 {
		return box
	}
	return lipgloss.Place(o.width, o.height, lipgloss.Center, lipgloss.Center, box)
}
