// Package heuristic generates template-based insights with no network
// dependency. It stands in for the LLM generator when no API key is
// configured and keeps demos and tests deterministic.
package heuristic

import (
	"context"
	"fmt"
	"strings"

	"github.com/Nitesh1413/ai-data-cleaner/domain/profile"
	"github.com/Nitesh1413/ai-data-cleaner/internal/errors"
	"github.com/Nitesh1413/ai-data-cleaner/ports"
)

// Generator creates rule-based insights from column profiles
type Generator struct{}

// NewGenerator creates a new heuristic insight generator
func NewGenerator() *Generator {
	return &Generator{}
}

// ColumnInsights derives observations directly from the computed
// profile. Output order is stable for a given profile.
func (g *Generator) ColumnInsights(_ context.Context, req ports.ColumnInsightRequest) (*ports.ColumnInsights, error) {
	p := req.Profile
	insights := []string{}

	switch p.InferredType {
	case profile.TypeNumeric:
		if p.NumericStats != nil {
			ns := p.NumericStats
			insights = append(insights, fmt.Sprintf(
				"%s ranges from %g to %g with a mean of %.2f and median of %.2f.",
				p.Name, ns.Min, ns.Max, ns.Mean, ns.Median))
			if ns.OutlierCount > 0 {
				insights = append(insights, fmt.Sprintf(
					"%d value(s) fall outside the interquartile outlier bounds and may need review.",
					ns.OutlierCount))
			}
		}
	case profile.TypeDate:
		if p.DateStats != nil {
			insights = append(insights, fmt.Sprintf(
				"%s spans %s to %s.", p.Name, p.DateStats.Earliest, p.DateStats.Latest))
			if p.DateStats.InvalidCount > 0 {
				insights = append(insights, fmt.Sprintf(
					"%d value(s) could not be parsed as dates.", p.DateStats.InvalidCount))
			}
		}
	case profile.TypeMixed:
		insights = append(insights, fmt.Sprintf(
			"%s mixes numbers and text; consider normalizing the column to a single type.", p.Name))
	default:
		insights = append(insights, fmt.Sprintf(
			"%s is categorical with %d distinct value(s).", p.Name, p.Unique))
	}

	if p.Missing > 0 && p.Count > 0 {
		rate := float64(p.Missing) / float64(p.Count) * 100
		insights = append(insights, fmt.Sprintf(
			"%.1f%% of %s is missing (%d of %d rows).", rate, p.Name, p.Missing, p.Count))
	}

	return &ports.ColumnInsights{
		Insights: insights,
		Model:    "heuristic",
	}, nil
}

// GenerateTransform is not supported without an LLM; callers should
// fall back to manual editing.
func (g *Generator) GenerateTransform(_ context.Context, req ports.TransformRequest) (*ports.TransformCode, error) {
	if strings.TrimSpace(req.Instruction) == "" {
		return nil, errors.InvalidInput("transform instruction is required")
	}
	return nil, errors.ExternalService("transform generation requires an OPENAI_API_KEY")
}
