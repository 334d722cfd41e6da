// Package tui provides an interactive terminal user interface for hafuch.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/hafuch-labs/hafuch-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Scan finds palindromes in text.
	Scan driving.ScanService

	// Discovery asks the AI collaborator for palindromes and sources.
	// Optional; AI features are disabled when nil.
	Discovery driving.DiscoveryService

	// Settings manages application settings. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	scan driving.ScanService,
	discovery driving.DiscoveryService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Scan:      scan,
		Discovery: discovery,
		Settings:  settings,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Scan == nil {
		return ErrMissingScanService
	}
	// Discovery and Settings are optional
	return nil
}
