// Package cli implements the command-line interface for hafuch.
// Commands are thin adapters: they parse flags, call the driving ports
// and format output. All behaviour lives in the core services.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/hafuch-labs/hafuch-cli/internal/core/ports/driving"
	"github.com/hafuch-labs/hafuch-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by main before Execute. Commands check for nil and
// fail with a clear message rather than panicking.
var (
	scanService      driving.ScanService
	discoveryService driving.DiscoveryService
	settingsService  driving.SettingsService
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "hafuch",
	Short: "Find Hebrew palindromes",
	Long: `Hafuch finds palindromes in Hebrew text.

Palindromicity is judged on the consonantal skeleton: vowel points and
cantillation marks are ignored, final letter forms are folded to their
base forms, and chapter-and-verse citation tokens are stripped before
matching. Results are reported with the raw span they were found in.

With an LLM provider configured, hafuch can also ask an AI collaborator
to propose palindromes on a theme and to identify the canonical source
of a found palindrome.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// SetVersion sets the version string shown by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices injects the core services used by the commands.
// Any service may be nil; the commands that need it will report that
// it is not configured.
func SetServices(scan driving.ScanService, discovery driving.DiscoveryService, settings driving.SettingsService) {
	scanService = scan
	discoveryService = discovery
	settingsService = settings
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
