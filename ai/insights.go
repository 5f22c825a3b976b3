package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Nitesh1413/ai-data-cleaner/internal/config"
	"github.com/Nitesh1413/ai-data-cleaner/internal/errors"
	"github.com/Nitesh1413/ai-data-cleaner/ports"
)

const insightSystemContext = "You are a data analyst. Given column statistics and sample values, " +
	"produce short, concrete observations about the data. Respond with JSON."

const transformSystemContext = "You are a data engineer. Given a natural language instruction and " +
	"the dataset's columns, produce JavaScript code that transforms an array of row objects. Respond with JSON."

// columnInsightsPayload is the structured response shape for insights
type columnInsightsPayload struct {
	Insights []string `json:"insights"`
}

// transformPayload is the structured response shape for generated code
type transformPayload struct {
	Code        string `json:"code"`
	Explanation string `json:"explanation"`
}

// InsightService generates insights and transformation code through
// the OpenAI chat completions API.
type InsightService struct {
	insightClient   *StructuredClient[columnInsightsPayload]
	transformClient *StructuredClient[transformPayload]
	model           string
}

// NewInsightService creates an OpenAI-backed insight generator
func NewInsightService(cfg config.AIConfig) *InsightService {
	return &InsightService{
		insightClient:   NewStructuredClient[columnInsightsPayload](cfg, insightSystemContext),
		transformClient: NewStructuredClient[transformPayload](cfg, transformSystemContext),
		model:           cfg.Model,
	}
}

// ColumnInsights asks the model for prose observations about a column.
// The profile is serialized verbatim; the model sees exactly what the
// presentation layer sees.
func (s *InsightService) ColumnInsights(ctx context.Context, req ports.ColumnInsightRequest) (*ports.ColumnInsights, error) {
	profileJSON, err := json.MarshalIndent(req.Profile, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize column profile")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Dataset: %s\nColumn: %s\n\nComputed profile:\n%s\n",
		req.DatasetName, req.Profile.Name, profileJSON)
	if len(req.Sample) > 0 {
		fmt.Fprintf(&b, "\nSample values: %s\n", strings.Join(req.Sample, ", "))
	}
	b.WriteString("\nReturn JSON of the form {\"insights\": [\"...\"]} with 2-4 observations.")

	payload, err := s.insightClient.GetJSONResponse(ctx, b.String())
	if err != nil {
		return nil, err
	}

	return &ports.ColumnInsights{
		Insights: payload.Insights,
		Model:    s.model,
	}, nil
}

// GenerateTransform asks the model for transformation code from a
// natural language instruction.
func (s *InsightService) GenerateTransform(ctx context.Context, req ports.TransformRequest) (*ports.TransformCode, error) {
	if strings.TrimSpace(req.Instruction) == "" {
		return nil, errors.InvalidInput("transform instruction is required")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Columns: %s\n", strings.Join(req.Columns, ", "))
	if len(req.Sample) > 0 {
		sampleJSON, _ := json.Marshal(req.Sample)
		fmt.Fprintf(&b, "Sample rows: %s\n", sampleJSON)
	}
	fmt.Fprintf(&b, "\nInstruction: %s\n", req.Instruction)
	b.WriteString("\nReturn JSON of the form {\"code\": \"...\", \"explanation\": \"...\"} where code is a " +
		"JavaScript function body receiving `rows` (array of objects) and returning the transformed array.")

	payload, err := s.transformClient.GetJSONResponse(ctx, b.String())
	if err != nil {
		return nil, err
	}

	return &ports.TransformCode{
		Code:        payload.Code,
		Language:    "javascript",
		Explanation: payload.Explanation,
		Model:       s.model,
	}, nil
}
