// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/empathapp/empath-tui/internal/api"
	"github.com/empathapp/empath-tui/internal/logging"
	"github.com/empathapp/empath-tui/internal/resources"
	"github.com/empathapp/empath-tui/internal/ui/components"
)

// Update handles chat view messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case SendCompleteMsg:
		return m.handleSendComplete(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Spinner ticks and other component messages
	cmd := m.spinner.Update(msg)
	return m, cmd
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.sends.cancelAll()
		return m, tea.Quit
	}

	if m.overlay.IsVisible() {
		if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Resources) {
			m.overlay.Hide()
		}
		return m, nil
	}

	switch m.mode {
	case modePicker:
		return m.handlePickerKey(msg)
	case modeRename:
		return m.handleRenameKey(msg)
	default:
		return m.handleComposeKey(msg)
	}
}

func (m Model) handleComposeKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.Newline):
		m.input.InsertString("\n")
		return m, nil

	case key.Matches(msg, m.keys.NewChat):
		_, err := m.state.NewChat()
		m.reportSave(err)
		m.refreshTranscript()
		return m, nil

	case key.Matches(msg, m.keys.Picker):
		m.mode = modePicker
		m.pickerIndex = m.state.ActiveIndex()
		return m, nil

	case key.Matches(msg, m.keys.Rename):
		m.mode = modeRename
		m.renameInput.SetValue(m.state.Active().Title)
		m.renameInput.CursorEnd()
		return m, m.renameInput.Focus()

	case key.Matches(msg, m.keys.Clear):
		delete(m.crisisFlagged, m.state.Active().ID)
		err := m.state.ClearMessages(m.state.ActiveIndex())
		m.reportSave(err)
		m.refreshTranscript()
		return m, nil

	case key.Matches(msg, m.keys.Resources):
		m.overlay.Show()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		return m, func() tea.Msg { return BackToLandingMsg{} }
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.pickerIndex > 0 {
			m.pickerIndex--
		}
	case key.Matches(msg, m.keys.Down):
		if m.pickerIndex < m.state.Len()-1 {
			m.pickerIndex++
		}
	case key.Matches(msg, m.keys.Confirm):
		m.state.Select(m.pickerIndex)
		m.mode = modeCompose
		m.lastCount = -1 // Force scroll to bottom of the switched-to transcript
		m.refreshTranscript()
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeCompose
	}
	return m, nil
}

func (m Model) handleRenameKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		title := strings.TrimSpace(m.renameInput.Value())
		if title != "" {
			m.reportSave(m.state.RenameActive(title))
		}
		m.mode = modeCompose
		m.renameInput.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeCompose
		m.renameInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.renameInput, cmd = m.renameInput.Update(msg)
	return m, cmd
}

// =============================================================================
// SEND FLOW
// =============================================================================

// submit starts a send for the composer content. Whitespace-only input is
// a no-op: nothing is appended, nothing is sent, the draft stays intact.
func (m Model) submit() (Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	conv := m.state.Active()
	m.input.Reset()
	delete(m.crisisFlagged, conv.ID)

	// Client-side pre-check: surface the helpline immediately, before the
	// backend's own crisis flag comes back.
	if resources.DetectCrisis(text) {
		m.crisisFlagged[conv.ID] = true
	}

	_, err := m.state.AppendUser(text)
	m.reportSave(err)
	m.refreshTranscript()

	// A second submit in this conversation supersedes the pending send.
	ctx, sendID := m.sends.begin(conv.ID, m.timeout)

	m.statusBar.SetStatus(components.StatusSending)
	spinCmd := m.spinner.Start()
	return m, tea.Batch(spinCmd, m.sendCmd(ctx, conv.ID, sendID, text))
}

func (m *Model) sendCmd(ctx context.Context, convID string, sendID uint64, text string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		resp, err := client.Chat(ctx, text)
		return SendCompleteMsg{ConvID: convID, SendID: sendID, Resp: resp, Err: err}
	}
}

func (m Model) handleSendComplete(msg SendCompleteMsg) (Model, tea.Cmd) {
	// A superseded task's completion is dropped: its successor owns the
	// conversation now.
	if !m.sends.finish(msg.ConvID, msg.SendID) {
		return m, nil
	}

	if msg.Err != nil {
		logging.Errorf("send failed for conversation %s: %v", msg.ConvID, msg.Err)
	}
	text, _ := api.ReplyText(msg.Resp, msg.Err)
	if msg.Resp != nil && msg.Resp.Crisis {
		m.crisisFlagged[msg.ConvID] = true
	}

	_, err := m.state.AppendBotTo(msg.ConvID, text)
	m.reportSave(err)

	if !m.Sending() {
		m.spinner.Stop()
		if m.statusBar.Status == components.StatusSending {
			m.statusBar.SetStatus(components.StatusReady)
		}
	}
	m.refreshTranscript()
	return m, nil
}

// =============================================================================
// PERSISTENCE REPORTING
// =============================================================================

// reportSave surfaces a failed persist in the status bar and marks the
// session dirty so the auto-save loop retries; the in-memory mutation has
// already taken effect. The cause goes to the log, not the transcript.
func (m *Model) reportSave(err error) {
	if err != nil {
		logging.Errorf("save failed: %v", err)
		m.statusBar.SetError("could not save conversations")
		m.statusBar.SetDirty(true)
		if m.session != nil {
			m.session.MarkDirty()
		}
		return
	}
	m.statusBar.SetDirty(false)
	if m.session != nil {
		m.session.MarkClean()
	}
}
