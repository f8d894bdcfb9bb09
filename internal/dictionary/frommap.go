package dictionary

import "fmt"

// ResultFromMap builds a canonical Result out of a decoded JSON object.
// Generative providers are inconsistent about key names (columns vs fields,
// from_column vs from_fields, scalars vs lists), so every accessor here is
// lenient: missing or mistyped keys fall back to empty defaults and scalar
// values are promoted to single-element lists.
func ResultFromMap(m map[string]interface{}) *Result {
	result := NewResult()

	for _, raw := range asList(m["tables"]) {
		if tm, ok := raw.(map[string]interface{}); ok {
			result.Tables = append(result.Tables, tableFromMap(tm))
		}
	}

	for _, raw := range asList(m["relationships"]) {
		if rm, ok := raw.(map[string]interface{}); ok {
			result.Relationships = append(result.Relationships, RelationshipFromMap(rm))
		}
	}

	for _, raw := range asList(m["code_snippets"]) {
		if sm, ok := raw.(map[string]interface{}); ok {
			result.CodeSnippets = append(result.CodeSnippets, snippetFromMap(sm))
		}
	}

	result.DataSources = stringList(m["data_sources"])
	result.DataTransformations = stringList(m["data_transformations"])
	result.PotentialReuseOpportunities = stringList(m["potential_reuse_opportunities"])
	result.DocumentationSummary = asString(m["documentation_summary"])
	result.ModelUsed = asString(m["model_used"])

	return result
}

// RelationshipFromMap reconciles the key variants seen across providers:
// the DDL shape (from_fields/to_fields lists) and the flat LLM shape
// (from_column/to_column scalars).
func RelationshipFromMap(m map[string]interface{}) Relationship {
	rel := Relationship{
		Type:      asString(m["type"]),
		FromTable: asString(m["from_table"]),
		ToTable:   asString(m["to_table"]),
	}
	if rel.Type == "" {
		rel.Type = RelationTypeForeignKey
	}

	rel.FromFields = stringList(m["from_fields"])
	if len(rel.FromFields) == 0 {
		rel.FromFields = stringList(firstPresent(m, "from_column", "from_field"))
	}

	rel.ToFields = stringList(m["to_fields"])
	if len(rel.ToFields) == 0 {
		rel.ToFields = stringList(firstPresent(m, "to_column", "to_field"))
	}

	return rel
}

func tableFromMap(m map[string]interface{}) Table {
	table := Table{
		Name:   asString(m["name"]),
		Fields: []Column{},
	}

	fields := asList(m["fields"])
	if len(fields) == 0 {
		fields = asList(m["columns"])
	}
	for _, raw := range fields {
		if cm, ok := raw.(map[string]interface{}); ok {
			col := columnFromMap(cm)
			if col.Name != "" {
				table.Fields = append(table.Fields, col)
			}
		}
	}

	for _, raw := range asList(m["relationships"]) {
		if rm, ok := raw.(map[string]interface{}); ok {
			table.Relationships = append(table.Relationships, RelationshipFromMap(rm))
		}
	}

	return table
}

func columnFromMap(m map[string]interface{}) Column {
	return Column{
		Name:        asString(m["name"]),
		Type:        asString(m["type"]),
		Description: asString(m["description"]),
		Constraints: stringList(m["constraints"]),
	}
}

func snippetFromMap(m map[string]interface{}) CodeSnippet {
	snippet := CodeSnippet{
		Language: asString(m["language"]),
		Code:     asString(m["code"]),
	}
	if snippet.Code == "" {
		snippet.Code = asString(m["snippet"])
	}
	return snippet
}

func firstPresent(m map[string]interface{}, keys ...string) interface{} {
	for _, key := range keys {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return nil
}

func asList(v interface{}) []interface{} {
	list, _ := v.([]interface{})
	return list
}

func asString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	case float64, bool:
		return fmt.Sprintf("%v", s)
	default:
		return ""
	}
}

// stringList coerces a JSON value into a list of strings. Scalars become a
// single-element list so from_column style keys can feed from_fields.
func stringList(v interface{}) []string {
	switch val := v.(type) {
	case []interface{}:
		out := []string{}
		for _, item := range val {
			if s := asString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if val == "" {
			return []string{}
		}
		return []string{val}
	default:
		return []string{}
	}
}
