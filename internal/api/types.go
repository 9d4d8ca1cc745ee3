// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the Empath chat backend.
package api

// =============================================================================
// REQUEST TYPES
// =============================================================================

// ChatRequest is the JSON body sent to POST /api/chat.
type ChatRequest struct {
	UserID      string `json:"userId"`
	Message     string `json:"message"`
	CountryCode string `json:"countryCode"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// ChatResponse is the reply payload from POST /api/chat.
// Only Text is load-bearing; any other shape is tolerated by fallback
// substitution at the call site.
type ChatResponse struct {
	Role   string `json:"role"`
	Text   string `json:"text"`
	Crisis bool   `json:"crisis"`
}

// ErrorResponse is the backend's error body shape.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// =============================================================================
// FALLBACK STRINGS
// =============================================================================

const (
	// FallbackError is appended as a bot message when a send fails for any
	// reason (network error, timeout, non-success response). The specific
	// cause is logged, never shown.
	FallbackError = "Something went wrong. Please try again."

	// FallbackNoReply is substituted when a successful response carries no
	// text field. Treated as a successful turn, not an error.
	FallbackNoReply = "I couldn't reach the assistant right now. Please try again in a moment."
)

// ReplyText resolves the assistant text for a completed send: the reply's
// text on success, FallbackNoReply when the reply had none, and
// FallbackError when the send failed. ok reports whether the turn counts
// as successful.
func ReplyText(resp *ChatResponse, err error) (text string, ok bool) {
	if err != nil {
		return FallbackError, false
	}
	if resp == nil || resp.Text == "" {
		return FallbackNoReply, true
	}
	return resp.Text, true
}
