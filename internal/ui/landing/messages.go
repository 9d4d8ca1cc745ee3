// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package landing

// StartChatMsg asks the root model to switch to the chat view. The landing
// view emits it; it never handles it itself.
type StartChatMsg struct{}
