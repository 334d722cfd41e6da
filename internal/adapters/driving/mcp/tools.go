package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hafuch-labs/hafuch-cli/internal/core/domain"
)

// FindPalindromesInput is the input schema for the find_palindromes tool.
type FindPalindromesInput struct {
	Text      string `json:"text" jsonschema:"the Hebrew text to scan for palindromes"`
	MinLength int    `json:"min_length,omitempty" jsonschema:"minimum normalised palindrome length (default 3)"`
	MaxLength int    `json:"max_length,omitempty" jsonschema:"maximum normalised palindrome length (default 50)"`
}

// FindPalindromesOutput is the output schema for the find_palindromes tool.
type FindPalindromesOutput struct {
	Results []PalindromeOutput `json:"results"`
	Count   int                `json:"count"`
}

// PalindromeOutput represents a single palindrome result.
type PalindromeOutput struct {
	Normalized string `json:"normalized"`
	Original   string `json:"original"`
	Length     int    `json:"length"`
}

// NormalizeInput is the input schema for the normalize_hebrew tool.
type NormalizeInput struct {
	Text string `json:"text" jsonschema:"the Hebrew text to normalise"`
}

// NormalizeOutput is the output schema for the normalize_hebrew tool.
type NormalizeOutput struct {
	Normalized string `json:"normalized"`
	Length     int    `json:"length"`
}

// DiscoverInput is the input schema for the discover_palindromes tool.
type DiscoverInput struct {
	Theme string `json:"theme,omitempty" jsonschema:"optional theme to find palindromes about"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of palindromes to request (default 10)"`
}

// DiscoverOutput is the output schema for the discover_palindromes tool.
type DiscoverOutput struct {
	Items    []DiscoveredOutput `json:"items"`
	Rejected int                `json:"rejected"`
}

// DiscoveredOutput represents a single AI-proposed palindrome.
type DiscoveredOutput struct {
	Text   string `json:"text"`
	Source string `json:"source,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_palindromes",
		Description: "Find Hebrew palindromes in text, ignoring vowel points and final letter forms",
	}, s.handleFindPalindromes)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "normalize_hebrew",
		Description: "Reduce Hebrew text to its consonantal skeleton (no niqqud, folded final forms)",
	}, s.handleNormalize)

	if s.ports.Discovery != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "discover_palindromes",
			Description: "Ask the configured LLM for Hebrew palindromes, re-verified before returning",
		}, s.handleDiscover)
	}
}

// handleFindPalindromes handles the find_palindromes tool invocation.
func (s *Server) handleFindPalindromes(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FindPalindromesInput,
) (*mcp.CallToolResult, FindPalindromesOutput, error) {
	opts := domain.ScanOptions{
		MinLength: input.MinLength,
		MaxLength: input.MaxLength,
	}

	results, err := s.ports.Scan.FindPalindromes(ctx, input.Text, opts)
	if err != nil {
		return nil, FindPalindromesOutput{}, err
	}

	output := FindPalindromesOutput{
		Results: make([]PalindromeOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		output.Results[i] = PalindromeOutput{
			Normalized: results[i].Normalized,
			Original:   results[i].Original,
			Length:     results[i].Length,
		}
	}

	return nil, output, nil
}

// handleNormalize handles the normalize_hebrew tool invocation.
func (s *Server) handleNormalize(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input NormalizeInput,
) (*mcp.CallToolResult, NormalizeOutput, error) {
	normalized := s.ports.Scan.Normalise(input.Text)

	return nil, NormalizeOutput{
		Normalized: normalized,
		Length:     len([]rune(normalized)),
	}, nil
}

// handleDiscover handles the discover_palindromes tool invocation.
func (s *Server) handleDiscover(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DiscoverInput,
) (*mcp.CallToolResult, DiscoverOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	discovery, err := s.ports.Discovery.Discover(ctx, input.Theme, limit)
	if err != nil {
		return nil, DiscoverOutput{}, err
	}

	output := DiscoverOutput{
		Items:    make([]DiscoveredOutput, len(discovery.Items)),
		Rejected: discovery.Rejected,
	}

	for i := range discovery.Items {
		output.Items[i] = DiscoveredOutput{
			Text:   discovery.Items[i].Text,
			Source: discovery.Items[i].Source,
		}
	}

	return nil, output, nil
}
