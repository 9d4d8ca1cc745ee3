// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api is the HTTP client for the Empath chat backend.
//
// One operation matters: Chat posts {userId, message, countryCode} to
// /api/chat with a 30 second timeout and returns the reply's text field.
// There are no retries and no backoff; a failed or malformed reply is
// mapped to one of two fixed fallback strings by ReplyText, and the real
// cause is only ever logged.
package api
