// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the conversation view for the TUI.
//
// This file defines the Bubble Tea message types the chat view exchanges
// with its commands and with the root model.
package chat

import "github.com/empathapp/empath-tui/internal/api"

// =============================================================================
// SEND MESSAGES
// =============================================================================

// SendCompleteMsg delivers the outcome of a send task. ConvID names the
// conversation the reply belongs to; SendID identifies the task so a
// superseded completion can be recognized and dropped.
type SendCompleteMsg struct {
	ConvID string
	SendID uint64
	Resp   *api.ChatResponse
	Err    error
}

// =============================================================================
// NAVIGATION MESSAGES
// =============================================================================

// BackToLandingMsg asks the root model to return to the landing view.
type BackToLandingMsg struct{}
