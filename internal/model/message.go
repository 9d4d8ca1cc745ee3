// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/empathapp/empath-tui/internal/util"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message. The transcript format is a
// closed two-value set: everything the user types is "user", everything
// appended on their behalf (replies and fallback notices) is "bot".
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleBot:
		return "Empath"
	default:
		return string(r)
	}
}

// Valid reports whether the role is one of the two transcript roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleBot
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single turn in a conversation.
// Messages are immutable once created; ordering is insertion order.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMessage creates a new message with a generated ID.
func NewMessage(role Role, text string) *Message {
	return &Message{
		ID:        generateMessageID(),
		Role:      role,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// NewUserMessage creates a new user message.
func NewUserMessage(text string) *Message {
	return NewMessage(RoleUser, text)
}

// NewBotMessage creates a new assistant message.
func NewBotMessage(text string) *Message {
	return NewMessage(RoleBot, text)
}

// Preview returns a one-line truncated preview of the message text.
func (m *Message) Preview(maxRunes int) string {
	return util.TruncateRunes(util.CollapseNewlines(m.Text), maxRunes)
}

// IsEmpty returns true if the message has no text.
func (m *Message) IsEmpty() bool {
	return len(m.Text) == 0
}

// =============================================================================
// ID GENERATION
// =============================================================================

// msgSeq disambiguates messages created within the same nanosecond tick.
var msgSeq atomic.Uint64

// generateMessageID creates a unique time-based message ID.
func generateMessageID() string {
	return "msg_" + strconv.FormatInt(time.Now().UnixNano(), 36) +
		"_" + strconv.FormatUint(msgSeq.Add(1), 36)
}
