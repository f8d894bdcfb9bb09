package analysis

import (
	"fmt"
	"strings"
)

// ProviderError records a single failed provider attempt.
type ProviderError struct {
	Provider string
	Err      error
}

func (e ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e ProviderError) Unwrap() error {
	return e.Err
}

// ExhaustedError is returned when every configured extraction strategy
// failed. It carries each provider's failure reason for diagnostics; this
// is the only error the orchestrator surfaces to callers.
type ExhaustedError struct {
	Attempts []ProviderError
}

func (e *ExhaustedError) Error() string {
	if len(e.Attempts) == 0 {
		return "analysis failed: no generative providers configured"
	}

	reasons := make([]string, 0, len(e.Attempts))
	for _, attempt := range e.Attempts {
		reasons = append(reasons, attempt.Error())
	}
	return fmt.Sprintf("all %d analysis providers failed: %s", len(e.Attempts), strings.Join(reasons, "; "))
}
