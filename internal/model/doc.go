// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model defines the conversation transcript data structures.
//
// A Conversation is a titled, ordered, append-only sequence of Messages.
// A Message is a single turn, tagged with one of two roles: "user" for
// text the user typed, "bot" for assistant replies and fallback notices.
// Both types serialize to JSON and are persisted verbatim by the store
// package, so field changes here change the on-disk transcript format.
package model
