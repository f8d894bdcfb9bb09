package normalizer

import (
	"regexp"
	"strings"

	"github.com/pankajg09/data-dictionary-system/internal/dictionary"
)

var (
	structBlockRegex = regexp.MustCompile(`(?is)\b(?:class|table)\s+([A-Za-z_]\w*)\s*\{(.*?)\}`)

	// Field-line patterns, tried in order per line: a typed declaration,
	// a python-style attribute assignment, then a bare assignment.
	typedFieldRegex = regexp.MustCompile(`^\s*([A-Za-z_]\w*)\s*:\s*([\w\[\]\.]+)\s*,?\s*$`)
	attrAssignRegex = regexp.MustCompile(`^\s*self\.([A-Za-z_]\w*)\s*=\s*([^#]+?)\s*(?:#\s*(.*))?$`)
	bareAssignRegex = regexp.MustCompile(`^\s*([A-Za-z_]\w*)\s*=\s*([^#]+?)\s*(?:#\s*(.*))?$`)

	directiveRelRegex = regexp.MustCompile(`(?i)(?:relationship|foreign\s+key)\s*:\s*([A-Za-z_]\w*)\.([A-Za-z_]\w*)\s*->\s*([A-Za-z_]\w*)\.([A-Za-z_]\w*)`)
	proseRelRegex     = regexp.MustCompile(`(?i)\b([A-Za-z_]\w*)\s+references\s+([A-Za-z_]\w*)\s*\(\s*([A-Za-z_]\w*)\s*\)`)
	commentRelRegex   = regexp.MustCompile(`(?im)^\s*self\.([A-Za-z_]\w*)\s*=.*#\s*References\s+([A-Za-z_]\w*)`)

	fencedBlockRegex = regexp.MustCompile("(?s)```([A-Za-z0-9+_-]*)[ \t]*\n(.*?)```")

	labeledSummaryRegex = regexp.MustCompile(`(?im)^\s*(?:Summary|Documentation)\s*:\s*(.+)$`)
	docblockRegex       = regexp.MustCompile(`(?s)/\*\*(.*?)\*/`)

	quotedLiteralRegex = regexp.MustCompile(`^(['"]).*['"]$`)
	numberLiteralRegex = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
)

var knownTypeKeywords = []string{"str", "int", "float", "bool", "list", "dict", "any"}

// extractTableBlocks finds class/table { ... } blocks and recovers one
// table per block. A block is kept only when at least one line matched a
// recognized field pattern.
func extractTableBlocks(text string) []dictionary.Table {
	tables := []dictionary.Table{}

	for _, m := range structBlockRegex.FindAllStringSubmatch(text, -1) {
		name := m[1]
		table := dictionary.Table{
			Name:   name,
			Fields: []dictionary.Column{},
		}

		for _, line := range strings.Split(m[2], "\n") {
			if field, ok := parseFieldLine(line, name); ok {
				table.Fields = append(table.Fields, field)
			}
		}

		if len(table.Fields) > 0 {
			tables = append(tables, table)
		}
	}

	return tables
}

func parseFieldLine(line, tableName string) (dictionary.Column, bool) {
	if m := typedFieldRegex.FindStringSubmatch(line); m != nil {
		return dictionary.Column{
			Name:        m[1],
			Type:        resolveFieldType(m[2], ""),
			Description: describeField(m[1], tableName, ""),
			Constraints: []string{},
		}, true
	}
	if m := attrAssignRegex.FindStringSubmatch(line); m != nil {
		return dictionary.Column{
			Name:        m[1],
			Type:        resolveFieldType("", m[2]),
			Description: describeField(m[1], tableName, m[3]),
			Constraints: []string{},
		}, true
	}
	if m := bareAssignRegex.FindStringSubmatch(line); m != nil {
		return dictionary.Column{
			Name:        m[1],
			Type:        resolveFieldType("", m[2]),
			Description: describeField(m[1], tableName, m[3]),
			Constraints: []string{},
		}, true
	}
	return dictionary.Column{}, false
}

// resolveFieldType keeps a declared type verbatim when it resembles a
// known type keyword, and otherwise infers a type from the shape of the
// assigned value literal.
func resolveFieldType(declared, value string) string {
	lower := strings.ToLower(declared)
	for _, keyword := range knownTypeKeywords {
		if strings.Contains(lower, keyword) {
			return declared
		}
	}

	value = strings.TrimSpace(value)
	switch {
	case value == "":
		if declared != "" {
			return declared
		}
		return "any"
	case quotedLiteralRegex.MatchString(value):
		return "str"
	case numberLiteralRegex.MatchString(value):
		if strings.Contains(value, ".") {
			return "float"
		}
		return "int"
	case strings.EqualFold(value, "true") || strings.EqualFold(value, "false"):
		return "bool"
	case strings.HasPrefix(value, "["):
		return "list"
	case strings.HasPrefix(value, "{"):
		return "dict"
	default:
		return "any"
	}
}

// describeField prefers the inline comment; without one it reconstructs a
// description from the field name, which the lossy free-text path is
// allowed to do.
func describeField(name, tableName, comment string) string {
	comment = strings.TrimSpace(comment)
	if comment != "" {
		return comment
	}
	readable := strings.ReplaceAll(name, "_", " ")
	if tableName == "" {
		return titleCase(readable)
	}
	return titleCase(readable) + " of the " + tableName
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// extractRelationships applies all three relationship patterns across the
// whole text. Matches are appended without deduplication.
func extractRelationships(text string) []dictionary.Relationship {
	relationships := []dictionary.Relationship{}

	for _, m := range directiveRelRegex.FindAllStringSubmatch(text, -1) {
		relationships = append(relationships, dictionary.Relationship{
			Type:       dictionary.RelationTypeForeignKey,
			FromTable:  m[1],
			FromFields: []string{m[2]},
			ToTable:    m[3],
			ToFields:   []string{m[4]},
		})
	}

	for _, m := range proseRelRegex.FindAllStringSubmatch(text, -1) {
		// "user_id references users(id)": the subject reads as the
		// referencing column, the owning table is unknown.
		relationships = append(relationships, dictionary.Relationship{
			Type:       dictionary.RelationTypeForeignKey,
			FromFields: []string{m[1]},
			ToTable:    m[2],
			ToFields:   []string{m[3]},
		})
	}

	for _, m := range commentRelRegex.FindAllStringSubmatch(text, -1) {
		relationships = append(relationships, dictionary.Relationship{
			Type:       dictionary.RelationTypeForeignKey,
			FromFields: []string{m[1]},
			ToTable:    m[2],
			ToFields:   []string{"id"},
		})
	}

	return relationships
}

// extractCodeSnippets collects every fenced code block, defaulting the
// language to python when the fence carries no tag.
func extractCodeSnippets(text string) []dictionary.CodeSnippet {
	snippets := []dictionary.CodeSnippet{}

	for _, m := range fencedBlockRegex.FindAllStringSubmatch(text, -1) {
		language := m[1]
		if language == "" {
			language = "python"
		}
		snippets = append(snippets, dictionary.CodeSnippet{
			Language: language,
			Code:     strings.TrimSpace(m[2]),
		})
	}

	return snippets
}

// extractSummary tries the explicit summary patterns in order: a
// Summary:/Documentation: label, a /** ... */ docblock, then a leading
// #-comment paragraph. The bool reports whether any pattern matched.
func extractSummary(text string) (string, bool) {
	if m := labeledSummaryRegex.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}

	if m := docblockRegex.FindStringSubmatch(text); m != nil {
		return cleanDocblock(m[1]), true
	}

	if para := leadingCommentParagraph(text); para != "" {
		return para, true
	}

	return "", false
}

func cleanDocblock(block string) string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "*"))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, " ")
}

// leadingCommentParagraph collects the consecutive #-comment lines at the
// top of the text, skipping leading blanks.
func leadingCommentParagraph(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" && len(lines) == 0 {
			continue
		}
		if !strings.HasPrefix(trimmed, "#") {
			break
		}
		if content := strings.TrimSpace(strings.TrimLeft(trimmed, "#")); content != "" {
			lines = append(lines, content)
		}
	}
	return strings.Join(lines, " ")
}
