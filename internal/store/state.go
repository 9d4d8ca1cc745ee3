// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store provides transcript persistence for empath-tui.
package store

import (
	"github.com/empathapp/empath-tui/internal/model"
)

// =============================================================================
// STATE
// =============================================================================

// State holds the in-memory conversation list and the active selection,
// and keeps the backing store synchronized: every mutation re-saves the
// full list. Save errors are returned to the caller rather than swallowed,
// so the UI can surface a failed persist; the in-memory mutation still
// takes effect either way.
//
// State is not safe for concurrent use. All mutation happens on the
// Bubble Tea update loop, which serializes handlers the same way a
// browser event queue would.
type State struct {
	store *Store

	conversations []*model.Conversation
	active        int
}

// NewState initializes state from the store, falling back to a single
// default conversation when nothing usable is on disk.
func NewState(s *Store) *State {
	return &State{
		store:         s,
		conversations: s.LoadOrDefault(),
		active:        0,
	}
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Conversations returns the conversation list, most recent first.
func (st *State) Conversations() []*model.Conversation {
	return st.conversations
}

// Len returns the number of conversations.
func (st *State) Len() int {
	return len(st.conversations)
}

// ActiveIndex returns the index of the active conversation.
// The invariant 0 <= ActiveIndex() < Len() always holds.
func (st *State) ActiveIndex() int {
	return st.active
}

// Active returns the active conversation.
func (st *State) Active() *model.Conversation {
	return st.conversations[st.active]
}

// At returns the conversation at index i, or nil when out of range.
func (st *State) At(i int) *model.Conversation {
	if i < 0 || i >= len(st.conversations) {
		return nil
	}
	return st.conversations[i]
}

// =============================================================================
// MUTATIONS
// =============================================================================

// NewChat prepends a fresh conversation and makes it active (index 0).
// Returns the new conversation and any save error.
func (st *State) NewChat() (*model.Conversation, error) {
	conv := model.NewConversation()
	st.conversations = append([]*model.Conversation{conv}, st.conversations...)
	st.active = 0
	return conv, st.save()
}

// Select sets the active index, clamped to the valid range so the
// active-selection invariant holds even for a bad caller-supplied index.
func (st *State) Select(i int) {
	if i < 0 {
		i = 0
	}
	if i >= len(st.conversations) {
		i = len(st.conversations) - 1
	}
	st.active = i
}

// RenameActive replaces the title of the active conversation, leaving
// messages untouched.
func (st *State) RenameActive(title string) error {
	st.Active().SetTitle(title)
	return st.save()
}

// ClearMessages empties the message list of the conversation at index i
// (not necessarily the active one). Title and identity are untouched.
// Out-of-range indices are a no-op.
func (st *State) ClearMessages(i int) error {
	conv := st.At(i)
	if conv == nil {
		return nil
	}
	conv.ClearMessages()
	return st.save()
}

// AppendUser appends a user message to the active conversation.
func (st *State) AppendUser(text string) (*model.Message, error) {
	msg := st.Active().AddUserMessage(text)
	return msg, st.save()
}

// AppendBot appends an assistant message to the active conversation.
func (st *State) AppendBot(text string) (*model.Message, error) {
	msg := st.Active().AddBotMessage(text)
	return msg, st.save()
}

// AppendBotTo appends an assistant message to the conversation with the
// given ID, falling back to the active conversation when the ID is gone.
// The send flow resolves its reply target by ID because the user may have
// switched or created conversations while a request was in flight.
func (st *State) AppendBotTo(convID, text string) (*model.Message, error) {
	for _, conv := range st.conversations {
		if conv.ID == convID {
			msg := conv.AddBotMessage(text)
			return msg, st.save()
		}
	}
	return st.AppendBot(text)
}

// Save re-serializes the full list. Exposed for the session auto-save
// path, which retries after a failed mutation save.
func (st *State) Save() error {
	return st.save()
}

func (st *State) save() error {
	return st.store.Save(st.conversations)
}
