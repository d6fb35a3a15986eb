package regression

import "math"

// calculateRSquared calculates the coefficient of determination (R²).
//
// Formula: R² = 1 - (SS_res / SS_tot)
//   - SS_res: Sum of squares of residuals (observed - predicted)²
//   - SS_tot: Total sum of squares (observed - mean)²
//
// A constant observed series has no variance to explain: R² is 1 when the
// prediction matches it exactly and 0 otherwise.
func calculateRSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	mean := calculateMean(observed)
	ssTot := 0.0
	for _, v := range observed {
		ssTot += (v - mean) * (v - mean)
	}
	ssRes := sumSquaredResiduals(observed, predicted)

	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}

		return 0
	}

	return 1.0 - (ssRes / ssTot)
}

// calculateRMSE calculates the root mean square error √(Σ(observed - predicted)² / n).
func calculateRMSE(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	return math.Sqrt(sumSquaredResiduals(observed, predicted) / float64(len(observed)))
}

// calculateMean calculates the arithmetic mean (0 if values is empty).
func calculateMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

func sumSquaredResiduals(observed, predicted []float64) float64 {
	sum := 0.0
	for i := range observed {
		diff := observed[i] - predicted[i]
		sum += diff * diff
	}

	return sum
}
