package profiling

import (
	"math"
	"sort"
	"strconv"

	"github.com/montanaflynn/stats"

	"github.com/Nitesh1413/ai-data-cleaner/domain/profile"
	"github.com/Nitesh1413/ai-data-cleaner/domain/table"
)

// computeNumericStats summarizes the numeric sub-sequence of a column.
// Every aggregate has a zero fallback on empty or degenerate input so
// the engine never fails.
func computeNumericStats(nums []float64) profile.NumericStats {
	ns := profile.NumericStats{Mode: []table.Cell{}}
	if len(nums) == 0 {
		return ns
	}

	mean, _ := stats.Mean(nums)
	median, _ := stats.Median(nums)
	stdDev, _ := stats.StandardDeviation(nums) // population, not sample
	min, _ := stats.Min(nums)
	max, _ := stats.Max(nums)

	sorted := make([]float64, len(nums))
	copy(sorted, nums)
	sort.Float64s(sorted)

	q1 := nearestRank(sorted, 0.25)
	q3 := nearestRank(sorted, 0.75)

	iqr := q3 - q1
	lower := q1 - 1.5*iqr
	upper := q3 + 1.5*iqr
	outliers := 0
	for _, x := range nums {
		if x < lower || x > upper {
			outliers++
		}
	}

	ns.Mean = mean
	ns.Median = median
	ns.StdDev = stdDev
	ns.Min = min
	ns.Max = max
	ns.Q1 = q1
	ns.Q3 = q3
	ns.OutlierCount = outliers
	ns.Mode = computeMode(nums)

	return ns
}

// nearestRank indexes into the sorted sequence at floor(p*n), with a
// zero fallback when the index falls out of range. No interpolation.
func nearestRank(sorted []float64, p float64) float64 {
	idx := int(math.Floor(p * float64(len(sorted))))
	if idx < 0 || idx >= len(sorted) {
		return 0
	}
	return sorted[idx]
}

// computeMode groups values by their string representation and returns
// up to the first three values attaining the maximum frequency, in
// first-encountered order. Ties beyond three are truncated.
func computeMode(nums []float64) []table.Cell {
	counts := make(map[string]int)
	order := make([]string, 0, len(nums))
	for _, x := range nums {
		key := strconv.FormatFloat(x, 'f', -1, 64)
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	maxFreq := 0
	for _, n := range counts {
		if n > maxFreq {
			maxFreq = n
		}
	}

	mode := []table.Cell{}
	for _, key := range order {
		if counts[key] != maxFreq {
			continue
		}
		if f, err := strconv.ParseFloat(key, 64); err == nil {
			mode = append(mode, table.NewNumberCell(f))
		} else {
			mode = append(mode, table.NewTextCell(key))
		}
		if len(mode) == 3 {
			break
		}
	}
	return mode
}
