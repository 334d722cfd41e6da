package scan

import "errors"

// Error definitions for the scan view.
var (
	// ErrNoScanService indicates that no scan service was provided.
	ErrNoScanService = errors.New("scan service is required")
)
