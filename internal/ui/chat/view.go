// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/empathapp/empath-tui/internal/config"
	"github.com/empathapp/empath-tui/internal/model"
	"github.com/empathapp/empath-tui/internal/resources"
	"github.com/empathapp/empath-tui/internal/util"
)

// View renders the chat screen.
func (m Model) View() string {
	if m.overlay.IsVisible() {
		return m.overlay.View()
	}
	if m.mode == modePicker {
		return m.viewPicker()
	}

	var b strings.Builder

	conv := m.state.Active()
	b.WriteString(m.theme.Header.Render("Empath"))
	b.WriteString("  ")
	b.WriteString(m.theme.MutedText.Render(conv.DisplayTitle()))
	b.WriteString("\n")

	if m.crisisFlagged[conv.ID] {
		b.WriteString(m.crisisBanner())
		b.WriteString("\n")
	}

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.spinner.IsActive() {
		b.WriteString(m.spinner.View())
		b.WriteString("\n")
	}

	if m.mode == modeRename {
		b.WriteString(m.theme.InputContainer.Width(m.width - 2).Render("Rename: " + m.renameInput.View()))
	} else {
		b.WriteString(m.theme.InputContainer.Width(m.width - 2).Render(m.input.View()))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.InputHint.Render("enter send - alt+enter newline - ctrl+n new - ctrl+k list - ctrl+o resources"))
	b.WriteString("\n")
	b.WriteString(m.statusBar.View())

	return b.String()
}

// viewPicker renders the conversation list in place of the transcript.
func (m Model) viewPicker() string {
	var b strings.Builder
	b.WriteString(m.theme.OverlayTitle.Render("Conversations"))
	b.WriteString("\n\n")

	for i, conv := range m.state.Conversations() {
		line := conv.DisplayTitle() + " (" + util.IntToString(conv.MessageCount()) + ")"
		if i == m.pickerIndex {
			b.WriteString(m.theme.ListItemActive.Render("> " + line))
		} else {
			b.WriteString(m.theme.ListItem.Render("  " + line))
		}
		b.WriteString("\n")
		if preview := conv.Preview(60); preview != "" {
			b.WriteString(m.theme.ListPreview.Render("    " + preview))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.theme.InputHint.Render("up/down select - enter open - esc cancel"))

	box := m.theme.OverlayBox.Render(b.String())
	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// crisisBanner shows the helpline for the configured country after a
// crisis-flagged reply.
func (m Model) crisisBanner() string {
	country := "US"
	if cfg := config.Global(); cfg != nil {
		country = cfg.User.CountryCode
	}
	line := "You matter. Helpline: " + resources.Helpline(country)
	return m.theme.CrisisBanner.Width(m.width - 2).Render(line)
}

// =============================================================================
// TRANSCRIPT RENDERING
// =============================================================================

// refreshTranscript re-renders the viewport content. The viewport sticks
// to the bottom when the message count changes, so a new message is
// always brought into view without hijacking manual scrollback.
func (m *Model) refreshTranscript() {
	conv := m.state.Active()
	m.viewport.SetContent(m.renderTranscript(conv))
	if conv.MessageCount() != m.lastCount {
		m.viewport.GotoBottom()
		m.lastCount = conv.MessageCount()
	}
}

func (m *Model) renderTranscript(conv *model.Conversation) string {
	if conv.IsEmpty() {
		return m.theme.MutedText.Render("This space is yours. Say anything, or nothing at all.")
	}

	bubbleWidth := m.width - 8
	if bubbleWidth > 70 {
		bubbleWidth = 70
	}
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	var b strings.Builder
	for i, msg := range conv.Messages {
		if i > 0 {
			b.WriteString("\n")
		}
		label := msg.Role.DisplayName() + " " + m.theme.Timestamp.Render(msg.Timestamp.Format("15:04"))
		if msg.Role == model.RoleUser {
			b.WriteString(m.theme.UserLabel.Render(label))
			b.WriteString("\n")
			b.WriteString(m.theme.UserBubble.MaxWidth(bubbleWidth).Render(msg.Text))
		} else {
			b.WriteString(m.theme.BotLabel.Render(label))
			b.WriteString("\n")
			b.WriteString(m.theme.BotBubble.MaxWidth(bubbleWidth).Render(msg.Text))
		}
		b.WriteString("\n")
	}
	return b.String()
}
