// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store provides transcript persistence for empath-tui.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/empathapp/empath-tui/internal/model"
	"github.com/empathapp/empath-tui/internal/util"
)

// TranscriptFile is the single file holding the JSON-serialized
// conversation list. One fixed key, one fixed file.
const TranscriptFile = "conversations.json"

// =============================================================================
// STORE
// =============================================================================

// Store persists the full conversation list as one JSON document.
// Every mutation re-serializes the entire list; the file always mirrors
// the in-memory state after a successful Save.
type Store struct {
	// Path is the transcript file location.
	// Default: ~/.empath/conversations.json
	Path string
}

// NewStore creates a store under the user's data directory.
func NewStore() (*Store, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewStoreWithPath(filepath.Join(homeDir, ".empath", TranscriptFile)), nil
}

// NewStoreWithPath creates a store backed by a specific file.
func NewStoreWithPath(path string) *Store {
	return &Store{Path: path}
}

// =============================================================================
// LOAD
// =============================================================================

// Load reads and deserializes the conversation list.
func (s *Store) Load() ([]*model.Conversation, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrTranscriptNotFound
		}
		return nil, err
	}

	var convs []*model.Conversation
	if err := json.Unmarshal(data, &convs); err != nil {
		return nil, &TranscriptError{Message: "transcript file is corrupt", Cause: err}
	}

	return convs, nil
}

// LoadOrDefault reads the conversation list, falling back to a single
// default conversation on any failure (missing file, parse error, storage
// unavailable). The fallback is silent: the caller never sees an error.
func (s *Store) LoadOrDefault() []*model.Conversation {
	convs, err := s.Load()
	if err != nil || len(convs) == 0 {
		return []*model.Conversation{model.NewConversation()}
	}
	return convs
}

// =============================================================================
// SAVE
// =============================================================================

// Save serializes the full conversation list to the transcript file.
// The write is atomic; the error is returned so callers can surface a
// failed save instead of silently losing the transcript.
func (s *Store) Save(convs []*model.Conversation) error {
	data, err := json.MarshalIndent(convs, "", "  ")
	if err != nil {
		return &TranscriptError{Message: "failed to encode transcript", Cause: err}
	}
	if err := util.AtomicWriteFile(s.Path, data, 0644); err != nil {
		return &TranscriptError{Message: "failed to write transcript", Cause: err}
	}
	return nil
}

// =============================================================================
// ERRORS
// =============================================================================

// ErrTranscriptNotFound is returned when the transcript file doesn't exist.
// Use errors.Is(err, ErrTranscriptNotFound) to check for this error.
var ErrTranscriptNotFound = &TranscriptError{Message: "transcript not found"}

// TranscriptError represents a persistence error.
type TranscriptError struct {
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *TranscriptError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *TranscriptError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is support for comparing transcript errors.
func (e *TranscriptError) Is(target error) bool {
	t, ok := target.(*TranscriptError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}
