// Package analysis orchestrates data dictionary extraction. A
// deterministic SQL parser handles DDL input directly; everything else is
// delegated to configured generative providers in priority order, with
// each response normalized into the canonical result shape.
package analysis

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pankajg09/data-dictionary-system/internal/dictionary"
	"github.com/pankajg09/data-dictionary-system/internal/normalizer"
	"github.com/pankajg09/data-dictionary-system/internal/provider"
	"github.com/pankajg09/data-dictionary-system/internal/sqlparse"
)

// ModelDeterministic is the provenance tag stamped on results produced by
// the SQL parser rather than a generative provider.
const ModelDeterministic = "deterministic SQL parser"

// DefaultProviderTimeout bounds a single provider attempt.
const DefaultProviderTimeout = 30 * time.Second

// sqlKeywordRegex decides whether input looks like SQL worth handing to
// the deterministic parser before any provider is consulted.
var sqlKeywordRegex = regexp.MustCompile(`(?is)\b(?:CREATE\s+TABLE|ALTER\s+TABLE|SELECT\s+.+?\s+FROM)\b`)

// Config wires an Analyzer. Provider clients and flags are passed in
// explicitly instead of read from process-wide state so tests can swap in
// mock providers.
type Config struct {
	// Providers are attempted in slice order.
	Providers []provider.Provider

	// Deterministic enables the SQL parser fast path.
	Deterministic bool

	// ProviderTimeout bounds each provider attempt. Zero means
	// DefaultProviderTimeout.
	ProviderTimeout time.Duration

	// Recorder receives execution metadata; nil disables recording.
	Recorder Recorder

	Logger logrus.FieldLogger
}

// Analyzer turns raw text into a canonical dictionary result.
type Analyzer struct {
	providers     []provider.Provider
	deterministic bool
	timeout       time.Duration
	recorder      Recorder
	log           logrus.FieldLogger
}

// NewAnalyzer creates an analyzer from the given configuration.
func NewAnalyzer(cfg Config) *Analyzer {
	timeout := cfg.ProviderTimeout
	if timeout <= 0 {
		timeout = DefaultProviderTimeout
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Analyzer{
		providers:     cfg.Providers,
		deterministic: cfg.Deterministic,
		timeout:       timeout,
		recorder:      cfg.Recorder,
		log:           log,
	}
}

// Analyze runs the extraction policy over the input text. SQL-looking
// input goes through the deterministic parser first; when that yields at
// least one table the providers are not consulted at all. Otherwise each
// provider is attempted in order and the first usable response wins. Only
// total exhaustion returns an error, an *ExhaustedError listing every
// attempt.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*dictionary.Result, error) {
	start := time.Now()

	if a.deterministic && sqlKeywordRegex.MatchString(text) {
		if tables := sqlparse.ExtractTables(text); len(tables) > 0 {
			result := resultFromTables(tables)
			result.ModelUsed = ModelDeterministic
			a.record(text, "success", time.Since(start), nil)
			return result, nil
		}
	}

	prompt := buildPrompt(text)
	var attempts []ProviderError

	for _, p := range a.providers {
		result, err := a.tryProvider(ctx, p, prompt)
		if err != nil {
			a.log.WithError(err).WithField("provider", p.Name()).Warn("provider attempt failed")
			attempts = append(attempts, ProviderError{Provider: p.Name(), Err: err})
			continue
		}

		result.ModelUsed = p.Name()
		a.record(text, "success", time.Since(start), nil)
		return result, nil
	}

	err := &ExhaustedError{Attempts: attempts}
	a.record(text, "failed", time.Since(start), err)
	return nil, err
}

// tryProvider runs one bounded provider attempt. A response that forces
// the normalizer into its terminal fallback counts as a failed attempt,
// the same as a transport error.
func (a *Analyzer) tryProvider(ctx context.Context, p provider.Provider, prompt string) (*dictionary.Result, error) {
	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	raw, err := p.Generate(callCtx, prompt)
	if err != nil {
		return nil, err
	}

	result, err := normalizer.Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("unusable response: %w", err)
	}
	return result, nil
}

func (a *Analyzer) record(text, status string, duration time.Duration, err error) {
	if a.recorder == nil {
		return
	}
	a.recorder.Record(inputExcerpt(text), status, duration, err)
}

// resultFromTables assembles the canonical result for the DDL path. Table
// relationships stay scoped to their table and are also hoisted into the
// top-level relationships list the persistence layer reads. The DDL path
// never synthesizes descriptions or summaries.
func resultFromTables(tables []dictionary.Table) *dictionary.Result {
	result := dictionary.NewResult()
	result.Tables = tables
	for _, table := range tables {
		result.Relationships = append(result.Relationships, table.Relationships...)
	}
	return result
}
