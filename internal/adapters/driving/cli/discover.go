package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hafuch-labs/hafuch-cli/internal/core/domain"
)

var (
	discoverLimit int
	discoverJSON  bool
)

var discoverCmd = &cobra.Command{
	Use:   "discover [theme]",
	Short: "Ask the AI collaborator for palindromes",
	Long: `Asks the configured LLM for Hebrew palindromes, optionally on a theme.

Every proposal is re-verified against the palindrome predicate before it
is shown; proposals that fail verification are counted and dropped.
Requires an LLM provider - run 'hafuch settings llm' to configure one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDiscover,
}

func init() {
	discoverCmd.Flags().IntVarP(&discoverLimit, "limit", "n", 10, "maximum number of palindromes to request")
	discoverCmd.Flags().BoolVar(&discoverJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(discoverCmd)
}

func runDiscover(cmd *cobra.Command, args []string) error {
	if discoveryService == nil {
		return errors.New("discovery service not configured - run 'hafuch settings llm' to configure an LLM provider")
	}

	theme := ""
	if len(args) == 1 {
		theme = args[0]
	}

	discovery, err := discoveryService.Discover(cmd.Context(), theme, discoverLimit)
	if err != nil {
		if errors.Is(err, domain.ErrLLMUnavailable) {
			return errors.New("no LLM provider configured - run 'hafuch settings llm' to set one up")
		}
		if errors.Is(err, domain.ErrMalformedResponse) {
			return fmt.Errorf("the model's response could not be parsed: %w", err)
		}
		return fmt.Errorf("discovery failed: %w", err)
	}

	if discoverJSON {
		data, err := json.MarshalIndent(discovery, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	return outputDiscoveryTable(cmd, discovery)
}

func outputDiscoveryTable(cmd *cobra.Command, discovery *domain.Discovery) error {
	if len(discovery.Items) == 0 {
		cmd.Println("The model proposed no verifiable palindromes.")
		if discovery.Rejected > 0 {
			cmd.Printf("(%d proposal(s) failed verification)\n", discovery.Rejected)
		}
		return nil
	}

	cmd.Printf("Discovered %d palindrome(s):\n", len(discovery.Items))
	cmd.Println()
	for i := range discovery.Items {
		cmd.Printf("  [%d] %s\n", i+1, discovery.Items[i].Text)
		if discovery.Items[i].Source != "" {
			cmd.Printf("      Source: %s\n", discovery.Items[i].Source)
		}
	}
	cmd.Println()

	if discovery.Rejected > 0 {
		cmd.Printf("%d proposal(s) failed verification and were dropped.\n", discovery.Rejected)
	}

	return nil
}
