// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"strconv"
	"sync/atomic"
	"time"
)

// DefaultTitle is the title given to every newly created conversation.
const DefaultTitle = "New chat"

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds a titled, ordered sequence of messages.
type Conversation struct {
	// Identity
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Messages, append-only from the UI's perspective; may be cleared
	// wholesale but individual entries are never removed.
	Messages []*Message `json:"messages"`
}

// NewConversation creates a new conversation with a generated ID and the
// default title.
func NewConversation() *Conversation {
	now := time.Now()
	return &Conversation{
		ID:        generateConversationID(),
		Title:     DefaultTitle,
		CreatedAt: now,
		UpdatedAt: now,
		Messages:  make([]*Message, 0),
	}
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// AddMessage appends a message to the conversation.
func (c *Conversation) AddMessage(msg *Message) {
	c.Messages = append(c.Messages, msg)
	c.UpdatedAt = time.Now()
}

// AddUserMessage creates and appends a user message.
func (c *Conversation) AddUserMessage(text string) *Message {
	msg := NewUserMessage(text)
	c.AddMessage(msg)
	return msg
}

// AddBotMessage creates and appends an assistant message.
func (c *Conversation) AddBotMessage(text string) *Message {
	msg := NewBotMessage(text)
	c.AddMessage(msg)
	return msg
}

// LastMessage returns the most recent message, or nil if empty.
func (c *Conversation) LastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return c.Messages[len(c.Messages)-1]
}

// ClearMessages empties the message list, leaving title and identity
// untouched.
func (c *Conversation) ClearMessages() {
	c.Messages = make([]*Message, 0)
	c.UpdatedAt = time.Now()
}

// MessageCount returns the number of messages.
func (c *Conversation) MessageCount() int {
	return len(c.Messages)
}

// IsEmpty returns true if there are no messages.
func (c *Conversation) IsEmpty() bool {
	return len(c.Messages) == 0
}

// =============================================================================
// TITLE MANAGEMENT
// =============================================================================

// SetTitle replaces the conversation title.
func (c *Conversation) SetTitle(title string) {
	c.Title = title
	c.UpdatedAt = time.Now()
}

// DisplayTitle returns the title, or the default if unset.
func (c *Conversation) DisplayTitle() string {
	if c.Title != "" {
		return c.Title
	}
	return DefaultTitle
}

// Preview returns a short one-line preview of the conversation: the first
// user message, or a placeholder when empty.
func (c *Conversation) Preview(maxRunes int) string {
	for _, msg := range c.Messages {
		if msg.Role == RoleUser && msg.Text != "" {
			return msg.Preview(maxRunes)
		}
	}
	return "No messages yet"
}

// Clone creates a deep copy of the conversation.
func (c *Conversation) Clone() *Conversation {
	clone := &Conversation{
		ID:        c.ID,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Messages:  make([]*Message, len(c.Messages)),
	}
	for i, msg := range c.Messages {
		msgCopy := *msg
		clone.Messages[i] = &msgCopy
	}
	return clone
}

// =============================================================================
// ID GENERATION
// =============================================================================

// convSeq disambiguates conversations created within the same nanosecond
// tick. Time-based uniqueness is sufficient for IDs scoped to one user's
// transcript file.
var convSeq atomic.Uint64

// generateConversationID creates a unique time-based conversation ID.
func generateConversationID() string {
	return "conv_" + strconv.FormatInt(time.Now().UnixNano(), 36) +
		"_" + strconv.FormatUint(convSeq.Add(1), 36)
}
