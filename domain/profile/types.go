package profile

import (
	"fmt"

	"github.com/Nitesh1413/ai-data-cleaner/domain/table"
)

// InferredType represents the automatically detected column type
type InferredType string

const (
	TypeNumeric     InferredType = "numeric"
	TypeCategorical InferredType = "categorical"
	TypeDate        InferredType = "date"
	TypeMixed       InferredType = "mixed"
)

// Quality issue labels surfaced to the presentation layer. These are
// user-facing strings and must stay stable.
const (
	IssueInvalidDates = "Invalid Date Formats Detected"
	IssueMixedTypes   = "Mixed Data Types (Numbers & Text)"
)

// IssueOutliers formats the outlier issue label for a given count
func IssueOutliers(count int) string {
	return fmt.Sprintf("Potential Outliers (%d)", count)
}

// NumericStats contains summary statistics for numeric columns. Empty
// inputs fall back to zero values rather than errors.
type NumericStats struct {
	Mean         float64      `json:"mean"`
	Median       float64      `json:"median"`
	Mode         []table.Cell `json:"mode"`
	Min          float64      `json:"min"`
	Max          float64      `json:"max"`
	StdDev       float64      `json:"std_dev"`
	Q1           float64      `json:"q1"`
	Q3           float64      `json:"q3"`
	OutlierCount int          `json:"outlier_count"`
}

// DateStats contains range statistics for date columns. Omitted from
// the profile entirely when no value parses as a date.
type DateStats struct {
	Earliest     string `json:"earliest"` // YYYY-MM-DD, UTC
	Latest       string `json:"latest"`   // YYYY-MM-DD, UTC
	InvalidCount int    `json:"invalid_count"`
}

// DistributionStats describes the shape of a numeric column. These are
// supplemental context for insight generation, not part of the core
// reproducible profile.
type DistributionStats struct {
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`
	IsNormal bool    `json:"is_normal"`
	NormalP  float64 `json:"normal_p"`
}

// ColumnProfile is the immutable result of profiling a single column
type ColumnProfile struct {
	Name         string             `json:"name"`
	InferredType InferredType       `json:"inferred_type"`
	Count        int                `json:"count"`
	Unique       int                `json:"unique"`
	Missing      int                `json:"missing"`
	Issues       []string           `json:"issues"`
	NumericStats *NumericStats      `json:"numeric_stats,omitempty"`
	DateStats    *DateStats         `json:"date_stats,omitempty"`
	Distribution *DistributionStats `json:"distribution,omitempty"`
}

// DatasetReport aggregates every column profile plus table-wide checks
type DatasetReport struct {
	TotalRows     int                      `json:"total_rows"`
	TotalColumns  int                      `json:"total_columns"`
	DuplicateRows int                      `json:"duplicate_rows"`
	Columns       map[string]ColumnProfile `json:"columns"`
}

// HasIssues reports whether any column carries a quality issue
func (r *DatasetReport) HasIssues() bool {
	if r.DuplicateRows > 0 {
		return true
	}
	for _, col := range r.Columns {
		if len(col.Issues) > 0 {
			return true
		}
	}
	return false
}
