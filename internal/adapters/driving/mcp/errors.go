// Package mcp provides an MCP (Model Context Protocol) server adapter for hafuch.
// It enables AI assistants like Claude to scan text for Hebrew palindromes.
package mcp

import "errors"

// ErrMissingScanService is returned when the scan service is not provided.
var ErrMissingScanService = errors.New("mcp: scan service is required")
