package sqlparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitDefinitionsSimple(t *testing.T) {
	fragments := SplitDefinitions("id INTEGER PRIMARY KEY, name TEXT NOT NULL")

	assert.Equal(t, []string{"id INTEGER PRIMARY KEY", "name TEXT NOT NULL"}, fragments)
}

func TestSplitDefinitionsNestedParens(t *testing.T) {
	fragments := SplitDefinitions("price DECIMAL(10,2), status TEXT CHECK (status IN ('a','b')), pair TEXT DEFAULT (a,b)")

	assert.Len(t, fragments, 3)
	assert.Equal(t, "price DECIMAL(10,2)", fragments[0])
	assert.Equal(t, "status TEXT CHECK (status IN ('a','b'))", fragments[1])
	assert.Equal(t, "pair TEXT DEFAULT (a,b)", fragments[2])
}

func TestSplitDefinitionsQuotedComma(t *testing.T) {
	fragments := SplitDefinitions("label TEXT DEFAULT 'a,b', other INTEGER")

	assert.Len(t, fragments, 2)
	assert.Equal(t, "label TEXT DEFAULT 'a,b'", fragments[0])
}

func TestSplitDefinitionsDoubleQuotedString(t *testing.T) {
	// An apostrophe inside double quotes must not open a new literal.
	fragments := SplitDefinitions(`note TEXT DEFAULT "it's, fine", other INTEGER`)

	assert.Len(t, fragments, 2)
	assert.Equal(t, `note TEXT DEFAULT "it's, fine"`, fragments[0])
}

func TestSplitDefinitionsUnterminatedString(t *testing.T) {
	fragments := SplitDefinitions("a TEXT DEFAULT 'unterminated, b INTEGER")

	// Everything after the opening quote stays in one fragment.
	assert.Equal(t, []string{"a TEXT DEFAULT 'unterminated, b INTEGER"}, fragments)
}

func TestSplitDefinitionsUnbalancedParens(t *testing.T) {
	fragments := SplitDefinitions("a INTEGER CHECK (a > 0, b INTEGER")

	assert.Equal(t, []string{"a INTEGER CHECK (a > 0, b INTEGER"}, fragments)
}

func TestSplitDefinitionsKeepsEmptyFragments(t *testing.T) {
	fragments := SplitDefinitions("a INTEGER,, b INTEGER,")

	// Empty fragments are the caller's problem.
	assert.Equal(t, []string{"a INTEGER", "", "b INTEGER", ""}, fragments)
}
