// Package normalizer reduces free-form generative responses to the
// canonical dictionary.Result shape. Responses arrive as strict JSON,
// JSON wrapped in markdown fences, or plain prose; whatever the form,
// Normalize always hands back a fully populated result and never panics.
package normalizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pankajg09/data-dictionary-system/internal/dictionary"
)

// ErrUnparsable reports that a response was neither valid JSON nor
// matched by any extraction heuristic. The accompanying result is the
// terminal fallback: all lists empty, summary describing the failure.
var ErrUnparsable = errors.New("response matched no extraction strategy")

// Normalize converts an arbitrary response text into a canonical Result.
// Strategy order: fence-stripped strict JSON first (high confidence),
// then regex heuristics over the full text, then the terminal fallback.
// The returned result is always non-nil with every field present; the
// error is non-nil only when the terminal fallback had to activate.
func Normalize(raw string) (*dictionary.Result, error) {
	text := strings.TrimSpace(raw)

	candidate := text
	if inner, ok := extractFencedBlock(text); ok {
		candidate = inner
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(candidate), &parsed); err == nil && parsed != nil {
		return dictionary.ResultFromMap(parsed), nil
	}

	if result, ok := extractHeuristically(text); ok {
		return result, nil
	}

	fallback := dictionary.NewResult()
	fallback.DocumentationSummary = "Unable to extract structured information: the response was neither valid JSON nor matched any known code or documentation pattern."
	return fallback, ErrUnparsable
}

// extractFencedBlock returns the content between the first pair of
// triple-backtick fences, stripping an optional leading language tag.
func extractFencedBlock(text string) (string, bool) {
	start := strings.Index(text, "```")
	if start < 0 {
		return "", false
	}
	rest := text[start+3:]
	end := strings.Index(rest, "```")
	if end < 0 {
		return "", false
	}
	block := rest[:end]

	// A language tag occupies the remainder of the fence line.
	if nl := strings.Index(block, "\n"); nl >= 0 {
		tag := strings.TrimSpace(block[:nl])
		if tag == "" || isLanguageTag(tag) {
			block = block[nl+1:]
		}
	}
	return strings.TrimSpace(block), true
}

func isLanguageTag(tag string) bool {
	if len(tag) > 16 {
		return false
	}
	for _, ch := range tag {
		if !(ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9' || ch == '+' || ch == '-' || ch == '_') {
			return false
		}
	}
	return true
}

// extractHeuristically applies the regex strategies independently and
// non-exclusively. It succeeds when at least one strategy recovered
// something; a panic inside any regex pass counts as total failure.
func extractHeuristically(text string) (result *dictionary.Result, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			result, ok = nil, false
		}
	}()

	result = dictionary.NewResult()

	result.Tables = extractTableBlocks(text)
	result.Relationships = extractRelationships(text)
	result.CodeSnippets = extractCodeSnippets(text)

	summary, explicit := extractSummary(text)
	if !explicit {
		summary = synthesizeSummary(result.Tables, result.Relationships)
	}
	result.DocumentationSummary = summary

	if len(result.Tables) == 0 && len(result.Relationships) == 0 &&
		len(result.CodeSnippets) == 0 && !explicit {
		return nil, false
	}
	return result, true
}

// synthesizeSummary builds a one-line summary from whatever structure was
// recovered. The free-text path reconstructs missing prose on purpose;
// the DDL path never does this.
func synthesizeSummary(tables []dictionary.Table, relationships []dictionary.Relationship) string {
	if len(tables) == 0 {
		return ""
	}

	names := make([]string, 0, len(tables))
	for _, table := range tables {
		names = append(names, table.Name)
	}

	summary := fmt.Sprintf("Code defines %d main data structures: %s.", len(tables), strings.Join(names, ", "))
	if len(relationships) > 0 {
		summary += fmt.Sprintf(" Contains %d relationships between data structures.", len(relationships))
	}
	return summary
}
