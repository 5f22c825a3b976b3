package profiling

import (
	"github.com/Nitesh1413/ai-data-cleaner/domain/profile"
	"github.com/Nitesh1413/ai-data-cleaner/domain/table"
)

// InferType classifies a column from its non-missing values and seeds
// the quality issues detected during classification.
//
// The checks run in a fixed precedence order: an all-numeric column is
// always Numeric, never Date, even when its numbers would parse as
// dates. A column with zero non-missing values defaults to Categorical
// with no issues.
func InferType(nonMissing []table.Cell) (profile.InferredType, []string) {
	issues := []string{}

	if len(nonMissing) == 0 {
		return profile.TypeCategorical, issues
	}

	numCount := 0
	strCount := 0
	dateCount := 0
	for _, c := range nonMissing {
		switch {
		case c.IsNumber():
			numCount++
		case c.IsText():
			strCount++
			if looksLikeDate(c.Text()) {
				dateCount++
			}
		}
	}

	switch {
	case numCount > 0 && strCount == 0:
		return profile.TypeNumeric, issues

	case float64(dateCount) > 0.8*float64(len(nonMissing)):
		if dateCount < len(nonMissing) {
			issues = append(issues, profile.IssueInvalidDates)
		}
		return profile.TypeDate, issues

	case numCount > 0 && strCount > 0:
		issues = append(issues, profile.IssueMixedTypes)
		return profile.TypeMixed, issues
	}

	return profile.TypeCategorical, issues
}
