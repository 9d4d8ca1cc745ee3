// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the reusable visual pieces of the empath-tui
// interface: the bottom status bar, the loading spinner shown while a reply
// is in flight, and the resources overlay with coping tips and helplines.
//
// Components are plain structs that render to strings via View methods.
// They hold a *styles.Theme and never detect terminal capabilities
// themselves.
package components
