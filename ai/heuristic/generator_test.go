package heuristic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nitesh1413/ai-data-cleaner/domain/profile"
	"github.com/Nitesh1413/ai-data-cleaner/ports"
)

func TestColumnInsightsNumeric(t *testing.T) {
	g := NewGenerator()

	result, err := g.ColumnInsights(context.Background(), ports.ColumnInsightRequest{
		Profile: profile.ColumnProfile{
			Name:         "age",
			InferredType: profile.TypeNumeric,
			Count:        10,
			Missing:      2,
			NumericStats: &profile.NumericStats{
				Min: 18, Max: 80, Mean: 41.5, Median: 40, OutlierCount: 1,
			},
		},
	})
	require.NoError(t, err)

	require.NotEmpty(t, result.Insights)
	assert.Contains(t, result.Insights[0], "age")
	assert.Equal(t, "heuristic", result.Model)

	joined := ""
	for _, s := range result.Insights {
		joined += s + " "
	}
	assert.Contains(t, joined, "outlier")
	assert.Contains(t, joined, "missing")
}

func TestColumnInsightsDate(t *testing.T) {
	g := NewGenerator()

	result, err := g.ColumnInsights(context.Background(), ports.ColumnInsightRequest{
		Profile: profile.ColumnProfile{
			Name:         "joined",
			InferredType: profile.TypeDate,
			DateStats:    &profile.DateStats{Earliest: "2023-01-01", Latest: "2023-12-31", InvalidCount: 2},
		},
	})
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(result.Insights), 2)
	assert.Contains(t, result.Insights[0], "2023-01-01")
	assert.Contains(t, result.Insights[1], "could not be parsed")
}

func TestColumnInsightsDeterministic(t *testing.T) {
	g := NewGenerator()
	req := ports.ColumnInsightRequest{
		Profile: profile.ColumnProfile{
			Name:         "status",
			InferredType: profile.TypeCategorical,
			Count:        5,
			Unique:       2,
		},
	}

	first, err := g.ColumnInsights(context.Background(), req)
	require.NoError(t, err)
	second, err := g.ColumnInsights(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateTransformUnsupported(t *testing.T) {
	g := NewGenerator()

	_, err := g.GenerateTransform(context.Background(), ports.TransformRequest{Instruction: "drop empty rows"})
	assert.Error(t, err)
}
