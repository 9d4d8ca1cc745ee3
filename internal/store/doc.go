// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store persists the conversation transcript.
//
// The whole conversation list lives in one JSON document
// (~/.empath/conversations.json) that is atomically rewritten after every
// mutation, so the file and the in-memory list never diverge for longer
// than one failed write. Loading falls back to a single default "New chat"
// conversation on any failure and never surfaces an error to the user;
// saving returns its error so the UI can show a failed persist.
//
// State layers the active-selection bookkeeping (prepend-on-create,
// active index always valid) on top of the raw Store.
package store
