package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pankajg09/data-dictionary-system/internal/provider"
)

// stubProvider is a scripted Provider for orchestration tests.
type stubProvider struct {
	name     string
	response string
	err      error
	calls    int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Generate(ctx context.Context, prompt string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

const validResponse = `{"tables": [{"name": "users", "fields": [{"name": "id", "type": "int"}]}], "documentation_summary": "User storage."}`

func TestAnalyzeDeterministicPath(t *testing.T) {
	stub := &stubProvider{name: "openai:gpt-3.5-turbo", response: validResponse}
	analyzer := NewAnalyzer(Config{
		Providers:     []provider.Provider{stub},
		Deterministic: true,
	})

	sql := `
CREATE TABLE users (
    id INTEGER PRIMARY KEY,
    email TEXT UNIQUE
);
CREATE TABLE posts (
    id INTEGER PRIMARY KEY,
    user_id INTEGER,
    FOREIGN KEY (user_id) REFERENCES users(id)
);`
	result, err := analyzer.Analyze(context.Background(), sql)

	require.NoError(t, err)
	assert.Equal(t, 0, stub.calls, "providers must not be consulted for parsable DDL")
	assert.Equal(t, ModelDeterministic, result.ModelUsed)
	require.Len(t, result.Tables, 2)
	require.Len(t, result.Relationships, 1)
	assert.Equal(t, "posts", result.Relationships[0].FromTable)
	assert.Empty(t, result.DocumentationSummary)
}

func TestAnalyzeDeterministicDisabled(t *testing.T) {
	stub := &stubProvider{name: "openai:gpt-3.5-turbo", response: validResponse}
	analyzer := NewAnalyzer(Config{Providers: []provider.Provider{stub}})

	result, err := analyzer.Analyze(context.Background(), "CREATE TABLE users (id INTEGER);")

	require.NoError(t, err)
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, "openai:gpt-3.5-turbo", result.ModelUsed)
}

func TestAnalyzeSQLWithoutTablesFallsThrough(t *testing.T) {
	// SQL keywords without a parsable CREATE TABLE must reach providers.
	stub := &stubProvider{name: "p1", response: validResponse}
	analyzer := NewAnalyzer(Config{
		Providers:     []provider.Provider{stub},
		Deterministic: true,
	})

	result, err := analyzer.Analyze(context.Background(), "SELECT id, name FROM users WHERE active = 1;")

	require.NoError(t, err)
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, "p1", result.ModelUsed)
}

func TestAnalyzeProviderPriorityOrder(t *testing.T) {
	first := &stubProvider{name: "p1", err: errors.New("rate limited")}
	second := &stubProvider{name: "p2", response: validResponse}
	third := &stubProvider{name: "p3", response: validResponse}
	analyzer := NewAnalyzer(Config{Providers: []provider.Provider{first, second, third}})

	result, err := analyzer.Analyze(context.Background(), "def handler(): pass")

	require.NoError(t, err)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
	assert.Equal(t, 0, third.calls, "later providers must not run after a success")
	assert.Equal(t, "p2", result.ModelUsed)
	require.Len(t, result.Tables, 1)
}

func TestAnalyzeUnusableResponseCountsAsFailure(t *testing.T) {
	// A provider that answers with prose the normalizer cannot use is
	// treated the same as a transport error.
	first := &stubProvider{name: "p1", response: "I cannot help with that."}
	second := &stubProvider{name: "p2", response: validResponse}
	analyzer := NewAnalyzer(Config{Providers: []provider.Provider{first, second}})

	result, err := analyzer.Analyze(context.Background(), "def handler(): pass")

	require.NoError(t, err)
	assert.Equal(t, "p2", result.ModelUsed)
}

func TestAnalyzeAllProvidersFail(t *testing.T) {
	first := &stubProvider{name: "p1", err: errors.New("connection refused")}
	second := &stubProvider{name: "p2", err: errors.New("quota exceeded")}
	analyzer := NewAnalyzer(Config{Providers: []provider.Provider{first, second}})

	result, err := analyzer.Analyze(context.Background(), "def handler(): pass")

	assert.Nil(t, result)
	var exhausted *ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	require.Len(t, exhausted.Attempts, 2)
	assert.Contains(t, err.Error(), "p1")
	assert.Contains(t, err.Error(), "connection refused")
	assert.Contains(t, err.Error(), "p2")
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestAnalyzeNoProviders(t *testing.T) {
	analyzer := NewAnalyzer(Config{})

	result, err := analyzer.Analyze(context.Background(), "def handler(): pass")

	assert.Nil(t, result)
	var exhausted *ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Empty(t, exhausted.Attempts)
	assert.Contains(t, err.Error(), "no generative providers configured")
}

// captureRecorder accumulates Record calls for assertions.
type captureRecorder struct {
	excerpts  []string
	statuses  []string
	durations []time.Duration
	errs      []error
}

func (r *captureRecorder) Record(excerpt, status string, duration time.Duration, err error) {
	r.excerpts = append(r.excerpts, excerpt)
	r.statuses = append(r.statuses, status)
	r.durations = append(r.durations, duration)
	r.errs = append(r.errs, err)
}

func TestAnalyzeRecordsExecutions(t *testing.T) {
	recorder := &captureRecorder{}
	analyzer := NewAnalyzer(Config{
		Deterministic: true,
		Recorder:      recorder,
	})

	_, err := analyzer.Analyze(context.Background(), "CREATE TABLE t (id INTEGER);")
	require.NoError(t, err)

	_, err = analyzer.Analyze(context.Background(), "def handler(): pass")
	require.Error(t, err)

	require.Equal(t, []string{"success", "failed"}, recorder.statuses)
	assert.Contains(t, recorder.excerpts[0], "CREATE TABLE t")
	assert.NoError(t, recorder.errs[0])
	assert.Error(t, recorder.errs[1])
}

func TestInputExcerptTruncation(t *testing.T) {
	long := make([]byte, excerptLimit+50)
	for i := range long {
		long[i] = 'a'
	}

	excerpt := inputExcerpt(string(long))

	assert.Len(t, excerpt, excerptLimit+len("..."))
	assert.True(t, strings.HasSuffix(excerpt, "..."))
	assert.Equal(t, "short input", inputExcerpt("short input"))
}
