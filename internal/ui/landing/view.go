// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package landing

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/empathapp/empath-tui/internal/resources"
)

// View renders the landing screen, with the resources overlay on top
// when open.
func (m Model) View() string {
	if m.overlay.IsVisible() {
		return m.overlay.View()
	}

	var b strings.Builder

	b.WriteString(m.theme.Header.Render("Empath"))
	b.WriteString("\n")
	b.WriteString(m.theme.Tagline.Render(resources.Tagline))
	b.WriteString("\n\n")

	rotWidth := m.width - 8
	if rotWidth > 60 {
		rotWidth = 60
	}
	if rotWidth < 20 {
		rotWidth = 20
	}
	b.WriteString(m.theme.Rotator.Width(rotWidth).Render(m.rotator.Current()))
	b.WriteString("\n")
	b.WriteString(m.theme.RotatorHint.Render("n next - g first"))
	b.WriteString("\n\n")

	for _, line := range resources.LandingCopy {
		b.WriteString(m.theme.MutedText.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.RotatorHint.Render("enter start chat - r resources - q quit"))

	content := b.String()
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
