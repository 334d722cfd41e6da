// Package llmjson extracts JSON payloads from LLM responses.
// Models routinely wrap JSON in markdown fences, prepend prose, or emit
// JavaScript-style artefacts (comments, trailing commas); this package
// recovers the payload best-effort. An empty return means no JSON-shaped
// content was present, which callers must treat as a parse failure rather
// than an empty result.
package llmjson

import (
	"regexp"
	"strings"
)

var (
	// fencedObject matches a JSON object inside a markdown code block.
	fencedObject = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(\\{.*\\})\\s*```")
	// bareObject matches any JSON object (greedy fallback).
	bareObject = regexp.MustCompile(`(?s)\{[\s\S]*\}`)
	// fencedArray matches a JSON array inside a markdown code block.
	fencedArray = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(\\[.*\\])\\s*```")
	// bareArray matches any JSON array (greedy fallback).
	bareArray = regexp.MustCompile(`(?s)\[[\s\S]*\]`)
	// trailingComma matches trailing commas before ] or }.
	trailingComma = regexp.MustCompile(`,\s*([}\]])`)
)

// ExtractObject extracts a JSON object from an LLM response string.
// Returns "" when the response contains no object.
func ExtractObject(content string) string {
	if m := fencedObject.FindStringSubmatch(content); len(m) > 1 {
		return clean(m[1])
	}
	if m := bareObject.FindString(content); m != "" {
		return clean(m)
	}
	return ""
}

// ExtractArray extracts a JSON array from an LLM response string.
// Returns "" when the response contains no array.
func ExtractArray(content string) string {
	if m := fencedArray.FindStringSubmatch(content); len(m) > 1 {
		return clean(m[1])
	}
	if m := bareArray.FindString(content); m != "" {
		return clean(m)
	}
	return ""
}

// clean removes JavaScript-style comments and trailing commas, both of
// which models produce often enough to be worth repairing.
func clean(raw string) string {
	lines := strings.Split(raw, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, stripLineComment(line))
	}
	result := strings.Join(cleaned, "\n")
	return trailingComma.ReplaceAllString(result, "$1")
}

// stripLineComment removes a // comment from a JSON line, respecting
// string values so that URLs survive.
func stripLineComment(line string) string {
	if !strings.Contains(line, "//") {
		return line
	}

	inString := false
	escaped := false
	for i := 0; i < len(line); i++ {
		ch := line[i]
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if !inString && ch == '/' && i+1 < len(line) && line[i+1] == '/' {
			return strings.TrimRight(line[:i], " \t")
		}
	}
	return line
}
