package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nitesh1413/ai-data-cleaner/domain/profile"
	"github.com/Nitesh1413/ai-data-cleaner/internal/config"
	"github.com/Nitesh1413/ai-data-cleaner/ports"
)

func testAIConfig() config.AIConfig {
	return config.AIConfig{
		OpenAIKey:   "test-key",
		Model:       "gpt-4o-mini",
		MaxTokens:   500,
		Temperature: 0.7,
	}
}

// completionResponse wraps content into the chat completions envelope
func completionResponse(t *testing.T, content string) []byte {
	t.Helper()
	envelope := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	}
	body, err := json.Marshal(envelope)
	require.NoError(t, err)
	return body
}

func TestColumnInsightsParsesStructuredResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req["model"])

		w.Write(completionResponse(t, `{"insights": ["Ages cluster around 40.", "No gaps detected."]}`))
	}))
	defer server.Close()

	svc := NewInsightService(testAIConfig())
	svc.insightClient.OpenAIClient.BaseURL = server.URL

	result, err := svc.ColumnInsights(context.Background(), ports.ColumnInsightRequest{
		DatasetName: "people",
		Profile:     profile.ColumnProfile{Name: "age", InferredType: profile.TypeNumeric},
		Sample:      []string{"36", "45"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Ages cluster around 40.", "No gaps detected."}, result.Insights)
	assert.Equal(t, "gpt-4o-mini", result.Model)
}

func TestColumnInsightsStripsMarkdownFences(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(completionResponse(t, "```json\n{\"insights\": [\"fenced\"]}\n```"))
	}))
	defer server.Close()

	svc := NewInsightService(testAIConfig())
	svc.insightClient.OpenAIClient.BaseURL = server.URL

	result, err := svc.ColumnInsights(context.Background(), ports.ColumnInsightRequest{
		Profile: profile.ColumnProfile{Name: "x"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"fenced"}, result.Insights)
}

func TestColumnInsightsSurfacesAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "rate limited"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	svc := NewInsightService(testAIConfig())
	svc.insightClient.OpenAIClient.BaseURL = server.URL

	_, err := svc.ColumnInsights(context.Background(), ports.ColumnInsightRequest{
		Profile: profile.ColumnProfile{Name: "x"},
	})
	assert.Error(t, err)
}

func TestColumnInsightsRequiresAPIKey(t *testing.T) {
	cfg := testAIConfig()
	cfg.OpenAIKey = ""
	svc := NewInsightService(cfg)

	_, err := svc.ColumnInsights(context.Background(), ports.ColumnInsightRequest{
		Profile: profile.ColumnProfile{Name: "x"},
	})
	assert.Error(t, err)
}

func TestGenerateTransformRequiresInstruction(t *testing.T) {
	svc := NewInsightService(testAIConfig())

	_, err := svc.GenerateTransform(context.Background(), ports.TransformRequest{Instruction: "  "})
	assert.Error(t, err)
}

func TestGenerateTransformParsesCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(completionResponse(t, `{"code": "return rows.filter(r => r.age > 30)", "explanation": "keeps rows over 30"}`))
	}))
	defer server.Close()

	svc := NewInsightService(testAIConfig())
	svc.transformClient.OpenAIClient.BaseURL = server.URL

	result, err := svc.GenerateTransform(context.Background(), ports.TransformRequest{
		Instruction: "remove people 30 or younger",
		Columns:     []string{"name", "age"},
	})
	require.NoError(t, err)

	assert.Contains(t, result.Code, "filter")
	assert.Equal(t, "javascript", result.Language)
}
