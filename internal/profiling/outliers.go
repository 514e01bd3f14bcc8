package profiling

// IQRMultiplier widens the interquartile range into outlier fences
const IQRMultiplier = 1.5

// OutlierThresholds returns the lower and upper fences
// q1 - 1.5*IQR and q3 + 1.5*IQR, where q1 and q3 are the lower and upper
// quantile levels (0.25 and 0.75 for the classic Tukey fences).
func OutlierThresholds(values []float64, lowerLevel, upperLevel float64) (lower, upper float64) {
	q := Quantiles(values, []float64{lowerLevel, upperLevel})
	iqr := q[1] - q[0]
	return q[0] - IQRMultiplier*iqr, q[1] + IQRMultiplier*iqr
}

// CapOutliers returns a copy of values with everything outside [lower, upper]
// replaced by the nearest fence, and the number of values changed.
func CapOutliers(values []float64, lower, upper float64) ([]float64, int) {
	out := make([]float64, len(values))
	capped := 0
	for i, v := range values {
		switch {
		case v < lower:
			out[i] = lower
			capped++
		case v > upper:
			out[i] = upper
			capped++
		default:
			out[i] = v
		}
	}
	return out, capped
}
