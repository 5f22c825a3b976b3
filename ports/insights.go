package ports

import (
	"context"

	"github.com/Nitesh1413/ai-data-cleaner/domain/profile"
)

// ColumnInsightRequest carries a computed column profile plus a short
// sample of raw values as context for prose generation. The profile is
// passed verbatim; the generator must not recompute statistics.
type ColumnInsightRequest struct {
	DatasetName string
	Profile     profile.ColumnProfile
	Sample      []string
}

// ColumnInsights is a sequence of prose observations about one column
type ColumnInsights struct {
	Insights []string
	Model    string
}

// TransformRequest asks for data-transformation code from a natural
// language instruction.
type TransformRequest struct {
	Instruction string
	Columns     []string
	Sample      []map[string]string
}

// TransformCode is generated transformation code
type TransformCode struct {
	Code        string
	Language    string
	Explanation string
	Model       string
}

// InsightGenerator produces natural-language insights and ad-hoc
// transformation code. Implementations are opaque remote calls from
// the engine's point of view.
type InsightGenerator interface {
	ColumnInsights(ctx context.Context, req ColumnInsightRequest) (*ColumnInsights, error)
	GenerateTransform(ctx context.Context, req TransformRequest) (*TransformCode, error)
}
