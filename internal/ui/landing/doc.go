// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package landing implements the welcome view: the rotating comfort
// message, the static app copy, and the entry points into the chat view
// and the resources overlay.
//
// The rotator advances on a recurring bubbletea tick. Each tick carries a
// generation number; manual navigation and unmounting bump the generation
// so stale ticks are dropped and no timer outlives the view.
package landing
