// Package metrics aggregates the measurements recorded in a sheet.
package metrics

import "math"

// Mean returns the arithmetic mean of values, or 0 when there are none.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Variance returns the population variance of values, or 0 when there are none.
func Variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return sumSquaredDeviations(values) / float64(len(values))
}

// StdDev returns the population standard deviation of values.
func StdDev(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// ConfidenceInterval95 returns the normal-approximation 95% interval around
// the mean, using the sample standard deviation. With fewer than two values
// both bounds equal the mean.
func ConfidenceInterval95(values []float64) (low, high float64) {
	m := Mean(values)
	n := len(values)
	if n < 2 {
		return m, m
	}
	sampleSD := math.Sqrt(sumSquaredDeviations(values) / float64(n-1))
	margin := 1.96 * sampleSD / math.Sqrt(float64(n))
	return m - margin, m + margin
}

func sumSquaredDeviations(values []float64) float64 {
	m := Mean(values)
	var s float64
	for _, v := range values {
		d := v - m
		s += d * d
	}
	return s
}
