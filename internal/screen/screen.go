package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/akiho/kanaflash/internal/ui/layout"
)

// Screen is implemented by every navigable view in the application.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// RefreshMsg is delivered to a screen when navigation returns to it, so
// it can reload anything the departed screen may have changed.
type RefreshMsg struct{}

// KeyHintProvider lets a screen supply its own footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider lets a screen supply the header's right-hand status
// text (deck progress, running clock).
type StatusProvider interface {
	Status() string
}

// EscHandler lets a screen intercept Esc before the default
// pop-navigation kicks in (the drill screen cancels its session).
type EscHandler interface {
	HandleEsc() tea.Cmd
}
