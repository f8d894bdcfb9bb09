package provider

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are a code analysis expert. Extract information about data structures, types, and relationships from the provided input. Return ONLY valid JSON in the requested format. No additional text or explanations."

// Options configures an OpenAI-backed provider. BaseURL may point at any
// OpenAI-compatible gateway, which is how alternative backends are listed
// in the provider order.
type Options struct {
	Name        string
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
}

// OpenAIProvider calls a chat-completion endpoint with JSON response mode
// and rate limiting.
type OpenAIProvider struct {
	name        string
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	rateLimiter *RateLimiter
}

// NewOpenAI creates a provider from the given options. A nil rate limiter
// disables client-side rate limiting.
func NewOpenAI(opts Options, rateLimiter *RateLimiter) *OpenAIProvider {
	client := openai.NewClient(opts.APIKey)
	if opts.BaseURL != "" {
		cfg := openai.DefaultConfig(opts.APIKey)
		cfg.BaseURL = opts.BaseURL
		client = openai.NewClientWithConfig(cfg)
	}

	name := opts.Name
	if name == "" {
		name = "openai:" + opts.Model
	}

	return &OpenAIProvider{
		name:        name,
		client:      client,
		model:       opts.Model,
		temperature: opts.Temperature,
		maxTokens:   opts.MaxTokens,
		rateLimiter: rateLimiter,
	}
}

func (p *OpenAIProvider) Name() string {
	return p.name
}

// Generate sends the prompt and returns the raw completion text.
func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if p.rateLimiter != nil {
		if err := p.rateLimiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limit error: %w", err)
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Temperature: p.temperature,
		MaxTokens:   p.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from %s", p.name)
	}

	return resp.Choices[0].Message.Content, nil
}
