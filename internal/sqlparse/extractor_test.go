package sqlparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pankajg09/data-dictionary-system/internal/dictionary"
)

func TestExtractTablesSingle(t *testing.T) {
	tables := ExtractTables("CREATE TABLE t (id INTEGER PRIMARY KEY, name TEXT NOT NULL);")

	require.Len(t, tables, 1)
	assert.Equal(t, "t", tables[0].Name)
	require.Len(t, tables[0].Fields, 2)
	assert.Equal(t, "id", tables[0].Fields[0].Name)
	assert.Equal(t, []string{dictionary.ConstraintPrimaryKey}, tables[0].Fields[0].Constraints)
	assert.Equal(t, "name", tables[0].Fields[1].Name)
	assert.Equal(t, []string{dictionary.ConstraintNotNull}, tables[0].Fields[1].Constraints)
}

func TestExtractTablesUsersAndPosts(t *testing.T) {
	sql := `
CREATE TABLE users (
    id INTEGER PRIMARY KEY,
    email TEXT UNIQUE,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE posts (
    id INTEGER PRIMARY KEY,
    user_id INTEGER NOT NULL,
    title TEXT,
    FOREIGN KEY (user_id) REFERENCES users(id)
);
`
	tables := ExtractTables(sql)

	require.Len(t, tables, 2)

	users := tables[0]
	assert.Equal(t, "users", users.Name)
	require.Len(t, users.Fields, 3)
	assert.Empty(t, users.Relationships)

	posts := tables[1]
	assert.Equal(t, "posts", posts.Name)
	require.Len(t, posts.Fields, 3)
	require.Len(t, posts.Relationships, 1)
	rel := posts.Relationships[0]
	assert.Equal(t, dictionary.RelationTypeForeignKey, rel.Type)
	assert.Equal(t, "posts", rel.FromTable)
	assert.Equal(t, []string{"user_id"}, rel.FromFields)
	assert.Equal(t, "users", rel.ToTable)
	assert.Equal(t, []string{"id"}, rel.ToFields)
}

func TestExtractTablesIfNotExists(t *testing.T) {
	tables := ExtractTables("create table if not exists `events` (id INTEGER);")

	require.Len(t, tables, 1)
	assert.Equal(t, "events", tables[0].Name)
}

func TestExtractTablesNestedParensInBody(t *testing.T) {
	sql := "CREATE TABLE orders (amount DECIMAL(10,2), status TEXT CHECK (status IN ('open', 'closed')));"
	tables := ExtractTables(sql)

	require.Len(t, tables, 1)
	require.Len(t, tables[0].Fields, 2)
	assert.Equal(t, "DECIMAL(10,2)", tables[0].Fields[0].Type)
	assert.Contains(t, tables[0].Fields[1].Constraints, "CHECK (status IN ('open', 'closed'))")
}

func TestExtractTablesMissingSemicolonAtEnd(t *testing.T) {
	tables := ExtractTables("CREATE TABLE last (id INTEGER)")

	require.Len(t, tables, 1)
	assert.Equal(t, "last", tables[0].Name)
}

func TestExtractTablesEmptyName(t *testing.T) {
	tables := ExtractTables("CREATE TABLE (id INTEGER);")

	require.Len(t, tables, 1)
	assert.Equal(t, "", tables[0].Name)
	require.Len(t, tables[0].Fields, 1)
}

func TestExtractTablesConstraintOnlyBody(t *testing.T) {
	tables := ExtractTables("CREATE TABLE link (PRIMARY KEY (a, b));")

	require.Len(t, tables, 1)
	assert.Empty(t, tables[0].Fields)
	assert.Empty(t, tables[0].Relationships)
}

func TestExtractTablesNoMatch(t *testing.T) {
	assert.Empty(t, ExtractTables("SELECT * FROM users;"))
	assert.Empty(t, ExtractTables(""))
}
