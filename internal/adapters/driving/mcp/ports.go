package mcp

import (
	"github.com/hafuch-labs/hafuch-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Scan finds palindromes in text.
	Scan driving.ScanService

	// Discovery asks the AI collaborator for palindromes. Optional;
	// the discover tool reports unavailability when nil.
	Discovery driving.DiscoveryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Scan == nil {
		return ErrMissingScanService
	}
	// Discovery is optional
	return nil
}
