package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pankajg09/data-dictionary-system/config"
	"github.com/pankajg09/data-dictionary-system/internal/analysis"
	"github.com/pankajg09/data-dictionary-system/internal/dictionary"
)

// REPL is an interactive loop for ad-hoc dictionary extraction: paste SQL
// or code, submit an empty line, and the extracted dictionary is printed.
type REPL struct {
	scanner  *bufio.Scanner
	running  bool
	analyzer *analysis.Analyzer
	registry *CommandRegistry
}

func NewREPL(cfg *config.Config) *REPL {
	scanner := bufio.NewScanner(os.Stdin)
	// Pasted schemas can be large.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	return &REPL{
		scanner:  scanner,
		running:  true,
		analyzer: analysis.NewAnalyzerFromConfig(cfg, logrus.StandardLogger()),
		registry: NewCommandRegistry(),
	}
}

func (r *REPL) Start() {
	fmt.Println("Data Dictionary CLI started")
	fmt.Println("Paste SQL or source code; submit an empty line to analyze. '/help' for help, '/end' to exit.")
	fmt.Print("> ")

	var buffer []string
	for r.running && r.scanner.Scan() {
		line := r.scanner.Text()
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, "/"):
			output, terminate := r.registry.Execute(trimmed)
			fmt.Println(output)
			if terminate {
				r.running = false
				continue
			}
		case trimmed == "" && len(buffer) > 0:
			r.analyze(strings.Join(buffer, "\n"))
			buffer = buffer[:0]
		case trimmed != "":
			buffer = append(buffer, line)
		}

		if r.running {
			fmt.Print("> ")
		}
	}

	if err := r.scanner.Err(); err != nil {
		fmt.Printf("Error reading input: %v\n", err)
	}
}

func (r *REPL) analyze(text string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	start := time.Now()
	result, err := r.analyzer.Analyze(ctx, text)
	if err != nil {
		fmt.Printf("Analysis failed: %v\n", err)
		return
	}

	fmt.Printf("Analysis completed in %.2fs\n", time.Since(start).Seconds())
	r.displayResult(result)
}

func (r *REPL) displayResult(result *dictionary.Result) {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("DATA DICTIONARY (%s)\n", result.ModelUsed)
	fmt.Println(strings.Repeat("=", 60))

	for _, table := range result.Tables {
		name := table.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Printf("\nTable: %s\n", name)
		for _, field := range table.Fields {
			line := fmt.Sprintf("  %s %s", field.Name, field.Type)
			if len(field.Constraints) > 0 {
				line += fmt.Sprintf(" [%s]", strings.Join(field.Constraints, ", "))
			}
			if field.Description != "" {
				line += " -- " + field.Description
			}
			fmt.Println(line)
		}
	}

	if len(result.Relationships) > 0 {
		fmt.Println("\nRelationships:")
		for _, rel := range result.Relationships {
			fmt.Printf("  %s(%s) -> %s(%s)\n",
				rel.FromTable, strings.Join(rel.FromFields, ", "),
				rel.ToTable, strings.Join(rel.ToFields, ", "))
		}
	}

	if result.DocumentationSummary != "" {
		fmt.Printf("\nSummary: %s\n", result.DocumentationSummary)
	}

	fmt.Println(strings.Repeat("=", 60))
}
