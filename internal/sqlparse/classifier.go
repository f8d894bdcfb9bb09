package sqlparse

import (
	"regexp"
	"strings"

	"github.com/pankajg09/data-dictionary-system/internal/dictionary"
)

var (
	foreignKeyRegex = regexp.MustCompile(`(?i)FOREIGN\s+KEY\s*\(([^)]+)\)\s*REFERENCES\s+([^\s(]+)\s*(?:\(([^)]+)\))?`)
	columnNameRegex = regexp.MustCompile("^[`\"\\[]?([A-Za-z_][\\w$]*)[`\"\\]]?\\s+(.*)$")
	columnTypeRegex = regexp.MustCompile(`^[A-Za-z_]\w*(?:\s*\([^)]*\))?`)
	commentRegex    = regexp.MustCompile(`(?i)COMMENT\s+'([^']*)'`)
	defaultRegex    = regexp.MustCompile(`(?i)DEFAULT\s+('[^']*'|\([^)]*\)|[^\s,]+)`)
	checkRegex      = regexp.MustCompile(`(?i)CHECK\s*\(`)
)

// Table-level constraint keywords that are neither a foreign key nor a
// column declaration. Fragments starting with one of these are dropped.
var tableConstraintKeywords = map[string]bool{
	"PRIMARY":    true,
	"UNIQUE":     true,
	"KEY":        true,
	"INDEX":      true,
	"CONSTRAINT": true,
	"CHECK":      true,
	"FOREIGN":    true,
	"EXCLUDE":    true,
}

// ClassifyDefinition decides what one fragment of a CREATE TABLE body is.
// It returns a relationship for FOREIGN KEY constraints, a column for
// `identifier TYPE ...` declarations, and (nil, nil) for anything else.
// Table-level constraints without the FOREIGN KEY keyword (composite
// PRIMARY KEY, UNIQUE, named CONSTRAINTs) fall into the last bucket and
// are silently dropped. Fragments that cannot yield both a column name
// and a type are dropped too rather than emitted half-empty.
func ClassifyDefinition(tableName, fragment string) (*dictionary.Column, *dictionary.Relationship) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return nil, nil
	}

	if m := foreignKeyRegex.FindStringSubmatch(fragment); m != nil {
		rel := &dictionary.Relationship{
			Type:       dictionary.RelationTypeForeignKey,
			FromTable:  tableName,
			FromFields: splitIdentifierList(m[1]),
			ToTable:    stripDelimiters(m[2]),
			ToFields:   splitIdentifierList(m[3]),
		}
		// DDL may omit the referenced column list; the primary key "id"
		// is the conventional target.
		if len(rel.ToFields) == 0 {
			rel.ToFields = []string{"id"}
		}
		return nil, rel
	}

	firstWord := strings.ToUpper(firstToken(fragment))
	if tableConstraintKeywords[firstWord] {
		return nil, nil
	}

	m := columnNameRegex.FindStringSubmatch(fragment)
	if m == nil {
		return nil, nil
	}
	name := m[1]
	rest := strings.TrimSpace(m[2])

	typeText := columnTypeRegex.FindString(rest)
	if typeText == "" {
		return nil, nil
	}
	remainder := rest[len(typeText):]

	column := &dictionary.Column{
		Name:        name,
		Type:        strings.TrimSpace(typeText),
		Constraints: []string{},
	}

	// The rest of the fragment is scanned independently of ordering. The
	// DDL path never invents a description: only a literal COMMENT clause
	// produces one.
	if cm := commentRegex.FindStringSubmatch(remainder); cm != nil {
		column.Description = cm[1]
	}

	upper := strings.ToUpper(remainder)
	if strings.Contains(upper, "PRIMARY KEY") {
		column.Constraints = append(column.Constraints, dictionary.ConstraintPrimaryKey)
	}
	if strings.Contains(upper, "UNIQUE") {
		column.Constraints = append(column.Constraints, dictionary.ConstraintUnique)
	}
	if strings.Contains(upper, "NOT NULL") {
		column.Constraints = append(column.Constraints, dictionary.ConstraintNotNull)
	}
	if strings.Contains(upper, "AUTO_INCREMENT") {
		column.Constraints = append(column.Constraints, dictionary.ConstraintAutoIncrement)
	}
	if dm := defaultRegex.FindStringSubmatch(remainder); dm != nil {
		column.Constraints = append(column.Constraints, "DEFAULT "+dm[1])
	}
	if expr := findCheckExpression(remainder); expr != "" {
		column.Constraints = append(column.Constraints, "CHECK "+expr)
	}

	return column, nil
}

// findCheckExpression returns the parenthesized CHECK expression including
// its outer parentheses. CHECK clauses routinely nest parentheses
// (`CHECK (x IN (1,2))`), so the closing paren is located by depth
// counting instead of a regex.
func findCheckExpression(s string) string {
	loc := checkRegex.FindStringIndex(s)
	if loc == nil {
		return ""
	}

	start := loc[1] - 1 // position of the opening paren
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	// Unterminated expression: take what is there.
	return s[start:]
}

func firstToken(s string) string {
	if fields := strings.Fields(s); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

// splitIdentifierList splits a comma-separated column list, trimming
// whitespace and quote delimiters from each entry.
func splitIdentifierList(list string) []string {
	var out []string
	for _, part := range strings.Split(list, ",") {
		if ident := stripDelimiters(part); ident != "" {
			out = append(out, ident)
		}
	}
	return out
}

func stripDelimiters(ident string) string {
	return strings.Trim(strings.TrimSpace(ident), "`\"[]")
}
