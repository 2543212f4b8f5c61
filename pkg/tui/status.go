package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StatusType identifies how a status message should be styled
type StatusType int

const (
	StatusTypeInfo StatusType = iota
	StatusTypeSuccess
	StatusTypeError
)

// StatusFeedback is a transient message shown in the status bar
type StatusFeedback struct {
	Message   string
	Icon      string
	ShowUntil time.Time
	Type      StatusType
}

// StatusManager handles transient status messages with automatic expiry
type StatusManager struct {
	CurrentStatus   *StatusFeedback
	DefaultDuration time.Duration
}

// NewStatusManager creates a new status manager
func NewStatusManager() *StatusManager {
	return &StatusManager{
		DefaultDuration: 2 * time.Second,
	}
}

// ShowFeedback displays a status message with an icon
func (sm *StatusManager) ShowFeedback(icon, message string, statusType StatusType) tea.Cmd {
	sm.CurrentStatus = &StatusFeedback{
		Message:   message,
		Icon:      icon,
		ShowUntil: time.Now().Add(sm.DefaultDuration),
		Type:      statusType,
	}

	// Return a command that will clear the status after duration
	return tea.Tick(sm.DefaultDuration, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// ShowSuccess shows a success message
func (sm *StatusManager) ShowSuccess(message string) tea.Cmd {
	return sm.ShowFeedback("✓", message, StatusTypeSuccess)
}

// ShowError shows an error message
func (sm *StatusManager) ShowError(message string) tea.Cmd {
	return sm.ShowFeedback("✗", message, StatusTypeError)
}

// ShowInfo shows an informational message
func (sm *StatusManager) ShowInfo(message string) tea.Cmd {
	return sm.ShowFeedback("", message, StatusTypeInfo)
}

// Clear removes the current status immediately
func (sm *StatusManager) Clear() {
	sm.CurrentStatus = nil
}

// Expire clears the status if its display window has passed
func (sm *StatusManager) Expire() {
	if sm.CurrentStatus != nil && time.Now().After(sm.CurrentStatus.ShowUntil) {
		sm.CurrentStatus = nil
	}
}

// Visible reports whether a status message should currently be shown
func (sm *StatusManager) Visible() bool {
	return sm.CurrentStatus != nil && time.Now().Before(sm.CurrentStatus.ShowUntil)
}
