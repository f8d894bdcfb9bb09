package analysis

import "fmt"

// analysisPromptTemplate asks the provider for the canonical result shape
// directly, so a well-behaved response takes the strict-JSON path through
// the normalizer.
const analysisPromptTemplate = `Analyze the following source code or SQL and extract information about tables, columns, and their relationships.
Return the response as a JSON object with the following structure:
{
    "tables": [
        {
            "name": "table_name",
            "fields": [
                {
                    "name": "column_name",
                    "type": "data_type",
                    "description": "description based on column name and context",
                    "constraints": ["PRIMARY KEY", "NOT NULL"]
                }
            ]
        }
    ],
    "relationships": [
        {
            "type": "foreign_key",
            "from_table": "source_table",
            "from_fields": ["source_column"],
            "to_table": "target_table",
            "to_fields": ["target_column"]
        }
    ],
    "code_snippets": [{"language": "language", "code": "relevant snippet"}],
    "data_sources": ["external data sources the code reads from"],
    "data_transformations": ["notable transformations applied to data"],
    "potential_reuse_opportunities": ["structures or logic worth reusing"],
    "documentation_summary": "one paragraph describing the data model"
}

Input:
%s

Important instructions:
1. Identify all tables or data structures and their columns or fields
2. Extract data types and constraints (PRIMARY KEY, FOREIGN KEY, NOT NULL, etc.)
3. Infer relationships from FOREIGN KEY constraints and field references
4. Generate meaningful descriptions for columns based on their names and context
5. Return only valid JSON without any additional text or explanations`

func buildPrompt(input string) string {
	return fmt.Sprintf(analysisPromptTemplate, input)
}
