// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the conversation view: the transcript viewport,
// the multi-line composer, conversation management (new, switch, rename,
// clear), and the send flow against the Empath backend.
//
// Sends run as cancellable tasks keyed by conversation ID. Submitting in a
// conversation with a reply already in flight supersedes the earlier task:
// its context is cancelled and its completion, should it still arrive, is
// dropped by send-ID comparison. Replies resolve their target conversation
// by ID, so switching conversations while waiting never misfiles a reply.
package chat
