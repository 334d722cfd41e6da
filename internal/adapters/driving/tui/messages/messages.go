// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/hafuch-labs/hafuch-cli/internal/core/domain"
)

// ScanRequested is a command to scan text for palindromes.
type ScanRequested struct {
	Text    string
	Options domain.ScanOptions
}

// ScanCompleted carries scan results back to the model.
type ScanCompleted struct {
	Results []domain.Palindrome
	Err     error
}

// ResultSelected is sent when a palindrome is selected for detail view.
type ResultSelected struct {
	Palindrome domain.Palindrome
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewScan is the scan input and results view.
	ViewScan
	// ViewDetail shows a single palindrome with its source lookup.
	ViewDetail
	// ViewDiscover is the AI palindrome discovery view.
	ViewDiscover
	// ViewSettings is the settings configuration view.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewScan:
		return "scan"
	case ViewDetail:
		return "detail"
	case ViewDiscover:
		return "discover"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// SourceLookupCompleted carries the outcome of a source lookup.
// The record replaces any earlier record with the same PalindromeID.
type SourceLookupCompleted struct {
	Lookup domain.SourceLookup
}

// DiscoveryCompleted carries AI-discovered palindromes back to the model.
type DiscoveryCompleted struct {
	Discovery *domain.Discovery
	Err       error
}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved signals settings were saved.
type SettingsSaved struct {
	Err error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
