// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the empath-tui application.
package util

import "strconv"

// IntToString converts an int to its decimal string representation.
func IntToString(n int) string {
	return strconv.Itoa(n)
}

// StringToInt parses a decimal string, returning the fallback on failure.
func StringToInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
