package profiling

import (
	"github.com/Nitesh1413/ai-data-cleaner/domain/profile"
	"github.com/Nitesh1413/ai-data-cleaner/domain/table"
)

// ProfileColumn computes the full profile for one column's cells in
// row order. The input slice is never mutated.
func ProfileColumn(name string, values []table.Cell) profile.ColumnProfile {
	nonMissing := make([]table.Cell, 0, len(values))
	for _, c := range values {
		if !c.IsMissing() {
			nonMissing = append(nonMissing, c)
		}
	}

	// Uniqueness intentionally counts missing values as their own
	// bucket: the original tool never filtered them before the
	// distinct count, and the behavior is observable downstream.
	distinct := make(map[string]struct{}, len(values))
	for _, c := range values {
		distinct[c.CanonicalKey()] = struct{}{}
	}

	inferredType, issues := InferType(nonMissing)

	cp := profile.ColumnProfile{
		Name:         name,
		InferredType: inferredType,
		Count:        len(values),
		Unique:       len(distinct),
		Missing:      len(values) - len(nonMissing),
		Issues:       issues,
	}

	// Mixed columns still get partial numeric stats over their numeric
	// subset; they are not purely discarded.
	if inferredType == profile.TypeNumeric || inferredType == profile.TypeMixed {
		nums := numericSubset(nonMissing)
		if inferredType == profile.TypeNumeric || len(nums) > 0 {
			ns := computeNumericStats(nums)
			if ns.OutlierCount > 0 {
				cp.Issues = append(cp.Issues, profile.IssueOutliers(ns.OutlierCount))
			}
			cp.NumericStats = &ns
			cp.Distribution = analyzeDistribution(nums)
		}
	}

	if inferredType == profile.TypeDate {
		cp.DateStats = computeDateStats(nonMissing)
	}

	return cp
}

// numericSubset extracts the float values from non-missing cells
func numericSubset(nonMissing []table.Cell) []float64 {
	nums := make([]float64, 0, len(nonMissing))
	for _, c := range nonMissing {
		if c.IsNumber() {
			nums = append(nums, c.Number())
		}
	}
	return nums
}

// computeDateStats converts each non-missing text value to a date and
// reports the range. Returns nil when nothing parses, so the stats
// block is omitted rather than zero-filled.
func computeDateStats(nonMissing []table.Cell) *profile.DateStats {
	parsed := 0
	var earliest, latest int64
	var earliestStr, latestStr string

	for _, c := range nonMissing {
		if !c.IsText() {
			continue
		}
		t, ok := parseDate(c.Text())
		if !ok {
			continue
		}
		unix := t.Unix()
		if parsed == 0 || unix < earliest {
			earliest = unix
			earliestStr = formatDate(t)
		}
		if parsed == 0 || unix > latest {
			latest = unix
			latestStr = formatDate(t)
		}
		parsed++
	}

	if parsed == 0 {
		return nil
	}

	return &profile.DateStats{
		Earliest:     earliestStr,
		Latest:       latestStr,
		InvalidCount: len(nonMissing) - parsed,
	}
}
