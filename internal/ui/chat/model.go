// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/empathapp/empath-tui/internal/api"
	"github.com/empathapp/empath-tui/internal/config"
	"github.com/empathapp/empath-tui/internal/session"
	"github.com/empathapp/empath-tui/internal/store"
	"github.com/empathapp/empath-tui/internal/ui/components"
	"github.com/empathapp/empath-tui/internal/ui/styles"
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// mode is the input mode of the chat view.
type mode int

const (
	modeCompose mode = iota // Typing in the composer
	modePicker              // Navigating the conversation list
	modeRename              // Editing the active conversation title
)

// Model is the Bubble Tea model for the chat view.
type Model struct {
	mode mode

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Conversations and persistence
	state   *store.State
	session *session.Manager

	// Backend
	client  *api.Client
	timeout time.Duration
	sends   *sendManager // Pointer so model copies share one mutex

	// UI components
	viewport    viewport.Model
	input       textarea.Model
	renameInput textinput.Model
	spinner     components.Spinner
	statusBar   *components.StatusBar
	overlay     components.ResourcesOverlay

	// Key bindings
	keys KeyMap

	// Conversation picker cursor
	pickerIndex int

	// Conversations whose latest reply was crisis-flagged
	crisisFlagged map[string]bool

	// Message count at last render, for scroll-to-bottom detection
	lastCount int
}

// New creates the chat view. The store state and session manager are owned
// by the root model and shared with this view.
func New(theme *styles.Theme, cfg *config.Config, st *store.State, client *api.Client, sess *session.Manager) Model {
	input := textarea.New()
	input.Placeholder = "Share what's on your mind..."
	input.ShowLineNumbers = false
	input.CharLimit = 4000
	input.SetHeight(3)
	input.Focus()
	// Enter is handled by the view: plain enter sends, modified enter
	// inserts the newline.
	input.KeyMap.InsertNewline.SetEnabled(false)

	renameInput := textinput.New()
	renameInput.Placeholder = "Conversation title"
	renameInput.CharLimit = 120

	timeout := 30 * time.Second
	if cfg != nil && cfg.Endpoint.TimeoutSecs > 0 {
		timeout = time.Duration(cfg.Endpoint.TimeoutSecs) * time.Second
	}

	m := Model{
		theme:         theme,
		state:         st,
		session:       sess,
		client:        client,
		timeout:       timeout,
		sends:         newSendManager(),
		viewport:      viewport.New(80, 20),
		input:         input,
		renameInput:   renameInput,
		spinner:       components.NewSpinner(theme),
		statusBar:     components.NewStatusBar(theme),
		overlay:       components.NewResourcesOverlay(theme),
		keys:          DefaultKeyMap(),
		crisisFlagged: make(map[string]bool),
	}
	m.refreshTranscript()
	return m
}

// Init returns the composer blink command.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// SetSize lays the view out for the terminal dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.overlay.SetSize(width, height)
	m.statusBar.SetWidth(width)
	m.input.SetWidth(width - 4)

	// Header, input box, hint, status bar
	chrome := 3 + m.input.Height() + 2 + 2
	vpHeight := height - chrome
	if vpHeight < 3 {
		vpHeight = 3
	}
	m.viewport.Width = width
	m.viewport.Height = vpHeight
	m.refreshTranscript()
}

// Sending reports whether the active conversation has a reply in flight.
func (m *Model) Sending() bool {
	return m.sends.isInflight(m.state.Active().ID)
}

// Shutdown cancels all in-flight sends. Called by the root model on quit.
func (m *Model) Shutdown() {
	m.sends.cancelAll()
}
