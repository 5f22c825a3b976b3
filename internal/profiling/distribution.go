package profiling

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/Nitesh1413/ai-data-cleaner/domain/profile"
)

// analyzeDistribution describes the shape of a numeric column. The
// result supplements the insight-generation context and is not part of
// the reproducible core profile.
func analyzeDistribution(nums []float64) *profile.DistributionStats {
	if len(nums) < 3 {
		return nil
	}

	mean, _ := stats.Mean(nums)
	stdDev, _ := stats.StandardDeviation(nums)
	if stdDev == 0 || math.IsNaN(stdDev) {
		return nil
	}

	skewness := calculateSkewness(nums, mean, stdDev)
	kurtosis := calculateKurtosis(nums, mean, stdDev)
	isNormal, pValue := testNormality(skewness, kurtosis)

	return &profile.DistributionStats{
		Skewness: skewness,
		Kurtosis: kurtosis,
		IsNormal: isNormal,
		NormalP:  pValue,
	}
}

// calculateSkewness computes the adjusted Fisher-Pearson coefficient
func calculateSkewness(data []float64, mean, stdDev float64) float64 {
	if len(data) < 3 {
		return 0
	}

	n := float64(len(data))
	sumCubed := 0.0
	for _, x := range data {
		d := (x - mean) / stdDev
		sumCubed += d * d * d
	}

	skewness := sumCubed / n
	correction := math.Sqrt(n*(n-1)) / (n - 2)
	return skewness * correction
}

// calculateKurtosis computes bias-corrected total kurtosis
func calculateKurtosis(data []float64, mean, stdDev float64) float64 {
	if len(data) < 4 {
		return 3.0 // normal kurtosis
	}

	n := float64(len(data))
	sumFourth := 0.0
	for _, x := range data {
		d := (x - mean) / stdDev
		sumFourth += d * d * d * d
	}

	kurtosis := sumFourth / n
	if n > 3 {
		correction := (n - 1) / ((n - 2) * (n - 3))
		kurtosis = kurtosis*correction + 6/(n+1)
	}
	return kurtosis + 3
}

// testNormality approximates a Jarque-Bera style test from skewness
// and excess kurtosis, with the p-value taken from a chi-squared
// distribution with 2 degrees of freedom.
func testNormality(skewness, kurtosis float64) (isNormal bool, pValue float64) {
	excess := kurtosis - 3
	testStat := math.Abs(skewness) + math.Abs(excess)/2

	chiDist := distuv.ChiSquared{K: 2}
	pValue = 1 - chiDist.CDF(testStat*testStat)
	isNormal = pValue > 0.05
	return isNormal, pValue
}
