// ABOUTME: AI providers that turn a prompt into model text
// ABOUTME: Anthropic Messages API and Gemini generateContent over the shared HTTP client

package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	coreerrors "biblicalman-api/core/errors"
	"biblicalman-api/core/interfaces"
	"biblicalman-api/pkg/config"
)

const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"

	defaultAnthropicModel = "claude-haiku-4-5-20251001"
	defaultGeminiModel    = "gemini-2.0-flash"

	anthropicEndpoint = "https://api.anthropic.com/v1/messages"
	anthropicVersion  = "2023-06-01"
	geminiBaseURL     = "https://generativelanguage.googleapis.com/v1beta/models"

	maxOutputTokens = 512
)

// Provider sends a prompt to a model and returns its text
type Provider interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// NewProvider builds the provider selected by cfg
func NewProvider(cfg config.AIConfig, client interfaces.HTTPClient) (Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("HTTP client not configured")
	}
	if cfg.APIKey() == "" {
		return nil, &coreerrors.ValidationError{Field: "api_key", Message: "AI not configured"}
	}

	switch cfg.Provider {
	case ProviderAnthropic, "":
		return NewAnthropicProvider(client, cfg.AnthropicAPIKey, cfg.Model), nil
	case ProviderGemini:
		return NewGeminiProvider(client, cfg.GeminiAPIKey, cfg.Model), nil
	default:
		return nil, &coreerrors.ValidationError{
			Field:   "provider",
			Message: fmt.Sprintf("unknown AI provider: %q (valid: anthropic, gemini)", cfg.Provider),
		}
	}
}

// --- Anthropic provider ---

// AnthropicProvider calls the Anthropic Messages API
type AnthropicProvider struct {
	client   interfaces.HTTPClient
	apiKey   string
	model    string
	endpoint string
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// NewAnthropicProvider creates an Anthropic provider; an empty model uses the default
func NewAnthropicProvider(client interfaces.HTTPClient, apiKey, model string) *AnthropicProvider {
	if model == "" {
		model = defaultAnthropicModel
	}
	return &AnthropicProvider{client: client, apiKey: apiKey, model: model, endpoint: anthropicEndpoint}
}

// Name returns the provider name
func (p *AnthropicProvider) Name() string { return ProviderAnthropic }

// Complete sends prompt as a single user message
func (p *AnthropicProvider) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(anthropicRequest{
		Model:     p.model,
		MaxTokens: maxOutputTokens,
		Messages:  []anthropicMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}

	resp, err := p.client.Post(ctx, p.endpoint, bytes.NewReader(body), map[string]string{
		"x-api-key":         p.apiKey,
		"anthropic-version": anthropicVersion,
	})
	if err != nil {
		return "", coreerrors.WrapError(err, "anthropic request failed")
	}
	defer resp.Body().Close()

	if err := checkStatus(ProviderAnthropic, resp); err != nil {
		return "", err
	}

	var ar anthropicResponse
	if err := json.NewDecoder(resp.Body()).Decode(&ar); err != nil {
		return "", &coreerrors.ParseError{Source: ProviderAnthropic, Message: err.Error()}
	}
	for _, block := range ar.Content {
		if block.Text != "" {
			return block.Text, nil
		}
	}
	return "", &coreerrors.ParseError{Source: ProviderAnthropic, Message: "empty response"}
}

// --- Gemini provider ---

// GeminiProvider calls the Gemini generateContent API
type GeminiProvider struct {
	client  interfaces.HTTPClient
	apiKey  string
	model   string
	baseURL string
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
	MaxOutputTokens  int    `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// NewGeminiProvider creates a Gemini provider; an empty model uses the default
func NewGeminiProvider(client interfaces.HTTPClient, apiKey, model string) *GeminiProvider {
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiProvider{client: client, apiKey: apiKey, model: model, baseURL: geminiBaseURL}
}

// Name returns the provider name
func (p *GeminiProvider) Name() string { return ProviderGemini }

// Complete asks the model for a JSON response to prompt
func (p *GeminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenerationConfig{
			ResponseMimeType: "application/json",
			MaxOutputTokens:  maxOutputTokens,
		},
	})
	if err != nil {
		return "", err
	}

	// Key stays out of the URL; transport errors quote it verbatim
	endpoint := fmt.Sprintf("%s/%s:generateContent", p.baseURL, url.PathEscape(p.model))
	resp, err := p.client.Post(ctx, endpoint, bytes.NewReader(body), map[string]string{
		"x-goog-api-key": p.apiKey,
	})
	if err != nil {
		return "", coreerrors.WrapError(err, "gemini request failed")
	}
	defer resp.Body().Close()

	if err := checkStatus(ProviderGemini, resp); err != nil {
		return "", err
	}

	var gr geminiResponse
	if err := json.NewDecoder(resp.Body()).Decode(&gr); err != nil {
		return "", &coreerrors.ParseError{Source: ProviderGemini, Message: err.Error()}
	}
	for _, c := range gr.Candidates {
		for _, part := range c.Content.Parts {
			if part.Text != "" {
				return part.Text, nil
			}
		}
	}
	return "", &coreerrors.ParseError{Source: ProviderGemini, Message: "empty response"}
}

func checkStatus(api string, resp interfaces.Response) error {
	if resp.StatusCode() >= 200 && resp.StatusCode() <= 299 {
		return nil
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body(), 1024))
	return &coreerrors.ExternalAPIError{API: api, StatusCode: resp.StatusCode(), Message: string(b)}
}
