// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small shared helpers: atomic file writes for the
// transcript file, rune- and width-aware string truncation for the TUI,
// and string/int conversions.
package util
