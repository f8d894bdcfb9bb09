package dictionary

// Constraint tags attached to columns. DEFAULT and CHECK tags carry the
// literal text after the keyword, so constraints are plain strings rather
// than a closed enum.
const (
	ConstraintPrimaryKey    = "PRIMARY KEY"
	ConstraintUnique        = "UNIQUE"
	ConstraintNotNull       = "NOT NULL"
	ConstraintAutoIncrement = "AUTO_INCREMENT"
)

// RelationTypeForeignKey is the relationship type emitted for FOREIGN KEY
// constraints found in DDL.
const RelationTypeForeignKey = "foreign_key"

// Column represents a single column of an extracted table.
type Column struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Constraints []string `json:"constraints"`
}

// Relationship represents a directed link between two tables, usually a
// foreign key. FromFields and ToFields parallel each other but their
// lengths are not validated; malformed DDL is passed through as-is.
type Relationship struct {
	Type       string   `json:"type"`
	FromTable  string   `json:"from_table"`
	FromFields []string `json:"from_fields"`
	ToTable    string   `json:"to_table"`
	ToFields   []string `json:"to_fields"`
}

// Table represents an extracted table with its columns in declaration
// order and the relationships declared inside its body.
type Table struct {
	Name          string         `json:"name"`
	Fields        []Column       `json:"fields"`
	Relationships []Relationship `json:"relationships,omitempty"`
}

// CodeSnippet is a fenced code block recovered from a free-form response.
type CodeSnippet struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

// Result is the canonical analysis output. Every extraction path converges
// to this shape; all list fields are non-nil so callers and the persistence
// layer never see null where an empty list belongs.
type Result struct {
	Tables                      []Table        `json:"tables"`
	Relationships               []Relationship `json:"relationships"`
	CodeSnippets                []CodeSnippet  `json:"code_snippets"`
	DataSources                 []string       `json:"data_sources"`
	DataTransformations         []string       `json:"data_transformations"`
	PotentialReuseOpportunities []string       `json:"potential_reuse_opportunities"`
	DocumentationSummary        string         `json:"documentation_summary"`
	ModelUsed                   string         `json:"model_used,omitempty"`
}

// NewResult returns an empty Result with every list field initialized.
func NewResult() *Result {
	return &Result{
		Tables:                      []Table{},
		Relationships:               []Relationship{},
		CodeSnippets:                []CodeSnippet{},
		DataSources:                 []string{},
		DataTransformations:         []string{},
		PotentialReuseOpportunities: []string{},
	}
}
