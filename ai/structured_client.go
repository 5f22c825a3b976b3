package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Nitesh1413/ai-data-cleaner/internal/config"
	"github.com/Nitesh1413/ai-data-cleaner/internal/errors"
)

// StructuredClient provides typed JSON responses from LLM calls
type StructuredClient[T any] struct {
	OpenAIClient  *OpenAIClient
	SystemContext string
}

// OpenAIClient holds the OpenAI connection settings
type OpenAIClient struct {
	APIKey      string
	BaseURL     string
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
	Model       string
	HTTPClient  *http.Client
}

// ResponseFormat forces structured output from the model
type ResponseFormat struct {
	Type string `json:"type"` // "json_object" for structured output
}

// NewStructuredClient creates a new structured client
func NewStructuredClient[T any](cfg config.AIConfig, systemContext string) *StructuredClient[T] {
	return &StructuredClient[T]{
		OpenAIClient: &OpenAIClient{
			APIKey:      cfg.OpenAIKey,
			BaseURL:     "https://api.openai.com/v1",
			Timeout:     60 * time.Second,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
			Model:       cfg.Model,
			HTTPClient:  http.DefaultClient,
		},
		SystemContext: systemContext,
	}
}

// GetJSONResponse makes a typed LLM call and parses the JSON response
func (client *StructuredClient[T]) GetJSONResponse(ctx context.Context, prompt string) (*T, error) {
	if client.OpenAIClient.APIKey == "" {
		return nil, errors.ConfigInvalid("OPENAI_API_KEY is required for insight generation")
	}

	ctx, cancel := context.WithTimeout(ctx, client.OpenAIClient.Timeout)
	defer cancel()

	type message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	type requestBody struct {
		Model               string         `json:"model"`
		Messages            []message      `json:"messages"`
		Temperature         float64        `json:"temperature,omitempty"`
		MaxCompletionTokens int            `json:"max_completion_tokens,omitempty"`
		ResponseFormat      ResponseFormat `json:"response_format"`
	}

	// The system message must mention JSON for OpenAI's JSON mode.
	systemContent := client.SystemContext
	if !strings.Contains(strings.ToLower(systemContent), "json") {
		systemContent += "\n\nIMPORTANT: Respond with valid JSON output."
	}

	reqBody := requestBody{
		Model: client.OpenAIClient.Model,
		Messages: []message{
			{Role: "system", Content: systemContent},
			{Role: "user", Content: prompt},
		},
		Temperature:         client.OpenAIClient.Temperature,
		MaxCompletionTokens: client.OpenAIClient.MaxTokens,
		ResponseFormat:      ResponseFormat{Type: "json_object"},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal request body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		client.OpenAIClient.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+client.OpenAIClient.APIKey)

	start := time.Now()
	resp, err := client.OpenAIClient.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "LLM request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read LLM response")
	}

	log.Printf("[StructuredClient] model=%s status=%d in %.2fs",
		client.OpenAIClient.Model, resp.StatusCode, time.Since(start).Seconds())

	if resp.StatusCode != http.StatusOK {
		return nil, errors.ExternalService(
			fmt.Sprintf("LLM returned status %d: %s", resp.StatusCode, truncate(string(body), 200)))
	}

	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &completion); err != nil {
		return nil, errors.Wrap(err, "failed to parse completion envelope")
	}
	if len(completion.Choices) == 0 {
		return nil, errors.ExternalService("LLM returned no choices")
	}

	content := stripMarkdownFences(completion.Choices[0].Message.Content)

	var result T
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, errors.Wrapf(err, "failed to parse structured response: %s", truncate(content, 200))
	}
	return &result, nil
}

// stripMarkdownFences removes ```json fences some models wrap around
// their output despite JSON mode.
func stripMarkdownFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
