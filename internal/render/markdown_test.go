package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nitesh1413/ai-data-cleaner/domain/profile"
)

func sampleReport() *profile.DatasetReport {
	return &profile.DatasetReport{
		TotalRows:     10,
		TotalColumns:  2,
		DuplicateRows: 1,
		Columns: map[string]profile.ColumnProfile{
			"age": {
				Name:         "age",
				InferredType: profile.TypeNumeric,
				Count:        10,
				Unique:       8,
				Missing:      1,
				Issues:       []string{"Potential Outliers (1)"},
				NumericStats: &profile.NumericStats{Mean: 41.5, Median: 40, Min: 18, Max: 80},
			},
			"name": {
				Name:         "name",
				InferredType: profile.TypeCategorical,
				Count:        10,
				Unique:       9,
				Issues:       []string{},
			},
		},
	}
}

func TestReportMarkdownStructure(t *testing.T) {
	md := ReportMarkdown("people.csv", []string{"name", "age"}, sampleReport())

	assert.Contains(t, md, "# Data Quality Report: people.csv")
	assert.Contains(t, md, "**Duplicate rows:** 1")
	assert.Contains(t, md, "## age")
	assert.Contains(t, md, "Potential Outliers (1)")

	// Column sections follow display order, not map order.
	assert.Less(t, strings.Index(md, "## name"), strings.Index(md, "## age"))
}

func TestReportMarkdownSkipsUnknownColumns(t *testing.T) {
	md := ReportMarkdown("people.csv", []string{"name", "ghost"}, sampleReport())
	assert.NotContains(t, md, "## ghost")
}

func TestReportHTML(t *testing.T) {
	out := string(ReportHTML("people.csv", []string{"name", "age"}, sampleReport()))

	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "people.csv")
}
