package analysis

import (
	"github.com/sirupsen/logrus"

	"github.com/pankajg09/data-dictionary-system/config"
	"github.com/pankajg09/data-dictionary-system/internal/provider"
)

// NewAnalyzerFromConfig builds an analyzer from application
// configuration: one provider client per configured entry, all sharing a
// single rate limiter, with a log-backed execution recorder.
func NewAnalyzerFromConfig(cfg *config.Config, log logrus.FieldLogger) *Analyzer {
	limiter := provider.NewRateLimiter(
		cfg.RateLimiting.RequestsPerMinute,
		cfg.RateLimiting.RequestsPerDay,
	)

	providers := make([]provider.Provider, 0, len(cfg.Providers))
	for _, pc := range cfg.Providers {
		providers = append(providers, provider.NewOpenAI(provider.Options{
			Name:        pc.Name,
			APIKey:      pc.APIKey,
			BaseURL:     pc.BaseURL,
			Model:       pc.Model,
			Temperature: pc.Temperature,
			MaxTokens:   pc.MaxTokens,
		}, limiter))
	}

	return NewAnalyzer(Config{
		Providers:       providers,
		Deterministic:   cfg.Analysis.DeterministicParser,
		ProviderTimeout: cfg.ProviderTimeout(),
		Recorder:        NewLogRecorder(log),
		Logger:          log,
	})
}
