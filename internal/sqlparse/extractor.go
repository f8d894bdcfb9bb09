package sqlparse

import (
	"regexp"
	"strings"

	"github.com/pankajg09/data-dictionary-system/internal/dictionary"
)

// createTableRegex matches a whole CREATE TABLE statement. The body match
// is non-greedy and spans newlines; it ends at the first closing paren
// that is directly followed by a semicolon or the end of input, which
// keeps nested parens (type precision, CHECK expressions) inside the body.
// The name group is optional: a statement without a recognizable name
// still produces a table entry with an empty name.
var createTableRegex = regexp.MustCompile(`(?is)CREATE\s+TABLE\s+(?:IF\s+NOT\s+EXISTS\s+)?([^\s(]*)\s*\((.*?)\)\s*(?:;|\z)`)

// ExtractTables scans full SQL text for CREATE TABLE statements and
// assembles one Table per statement. Keywords are matched case-
// insensitively and statements may span any amount of whitespace.
// Tables that end up with zero recognized columns are still emitted.
func ExtractTables(sql string) []dictionary.Table {
	var tables []dictionary.Table

	for _, m := range createTableRegex.FindAllStringSubmatch(sql, -1) {
		name := stripDelimiters(m[1])
		table := dictionary.Table{
			Name:   name,
			Fields: []dictionary.Column{},
		}

		for _, fragment := range SplitDefinitions(m[2]) {
			if strings.TrimSpace(fragment) == "" {
				continue
			}
			column, relationship := ClassifyDefinition(name, fragment)
			switch {
			case column != nil:
				table.Fields = append(table.Fields, *column)
			case relationship != nil:
				table.Relationships = append(table.Relationships, *relationship)
			}
		}

		tables = append(tables, table)
	}

	return tables
}
