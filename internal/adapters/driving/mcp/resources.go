package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for hafuch resources.
	uriScheme = "hafuch://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource describing the normalisation rules, so assistants
	// can explain why a span matched.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "normalisation-rules",
		Name:        "normalisation-rules",
		Description: "The rules hafuch applies before testing palindromicity",
		MIMEType:    "application/json",
	}, s.handleRulesResource)
}

// handleRulesResource returns the normalisation rules as JSON.
func (s *Server) handleRulesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type rules struct {
		StrippedMarks   string            `json:"stripped_marks"`
		FoldedFinals    map[string]string `json:"folded_finals"`
		CitationPattern string            `json:"citation_pattern"`
		KeptCharacters  string            `json:"kept_characters"`
		MinimumLength   int               `json:"minimum_length"`
	}

	data, err := json.MarshalIndent(rules{
		StrippedMarks: "U+0591 through U+05C7 (niqqud and cantillation)",
		FoldedFinals: map[string]string{
			"ך": "כ",
			"ם": "מ",
			"ן": "נ",
			"ף": "פ",
			"ץ": "צ",
		},
		CitationPattern: "chapter-and-verse tokens such as ג,יד are removed before matching",
		KeptCharacters:  "Hebrew base letters א through ת only",
		MinimumLength:   3,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling rules: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
