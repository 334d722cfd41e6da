package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hafuch-labs/hafuch-cli/internal/core/domain"
)

var sourceCmd = &cobra.Command{
	Use:   "source [text]",
	Short: "Identify the canonical source of a palindrome",
	Long: `Asks the configured LLM where a palindrome comes from.

The text is scanned first; the longest palindrome found in it is sent to
the model, which answers with a canonical citation (e.g. a biblical
reference) when it knows one. Requires an LLM provider.`,
	Args: cobra.ExactArgs(1),
	RunE: runSource,
}

func init() {
	rootCmd.AddCommand(sourceCmd)
}

func runSource(cmd *cobra.Command, args []string) error {
	if scanService == nil {
		return errors.New("scan service not configured")
	}
	if discoveryService == nil {
		return errors.New("discovery service not configured - run 'hafuch settings llm' to configure an LLM provider")
	}

	results, err := runScanOnce(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	if len(results) == 0 {
		return errors.New("no palindrome found in the given text")
	}

	// Results are sorted longest first; look up the top one.
	target := results[0]
	cmd.Printf("Looking up source for: %s\n", target.Normalized)

	lookup, err := discoveryService.IdentifySource(cmd.Context(), target)
	if err != nil {
		if errors.Is(err, domain.ErrLLMUnavailable) {
			return errors.New("no LLM provider configured - run 'hafuch settings llm' to set one up")
		}
		return fmt.Errorf("source lookup failed: %w", err)
	}

	switch lookup.Status {
	case domain.LookupFound:
		cmd.Printf("Source: %s\n", lookup.Citation)
	case domain.LookupNotFound:
		cmd.Println("The model knows no canonical source for this palindrome.")
	case domain.LookupFailed:
		cmd.Printf("Lookup failed: %s\n", lookup.Reason)
	case domain.LookupPending:
		// Should not happen for a synchronous CLI call.
		cmd.Println("Lookup still pending.")
	}

	return nil
}
