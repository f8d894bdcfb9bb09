package sqlparse

import "strings"

// SplitDefinitions splits the body of a CREATE TABLE statement into its
// top-level comma-separated definitions. Commas nested in parentheses
// (type precision, DEFAULT expressions, CHECK clauses) or inside quoted
// string literals are not split points. The scan tracks which quote
// character opened a literal so an apostrophe inside double quotes does
// not end it. Unbalanced parentheses or an unterminated literal never
// fail: the scan runs to the end and whatever accumulated becomes the
// final fragment. Fragments are trimmed but empty ones are kept; callers
// decide whether to skip them.
func SplitDefinitions(body string) []string {
	var fragments []string
	var current strings.Builder

	depth := 0
	inString := false
	var quote rune

	for _, ch := range body {
		switch {
		case inString:
			if ch == quote {
				inString = false
			}
		case ch == '\'' || ch == '"':
			inString = true
			quote = ch
		case ch == '(':
			depth++
		case ch == ')':
			depth--
		case ch == ',' && depth == 0:
			fragments = append(fragments, strings.TrimSpace(current.String()))
			current.Reset()
			continue
		}
		current.WriteRune(ch)
	}

	fragments = append(fragments, strings.TrimSpace(current.String()))
	return fragments
}
