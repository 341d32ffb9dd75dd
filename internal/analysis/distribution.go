package analysis

import (
	"errors"
	"fmt"

	"nba-prop-bets/internal/mathutil"
)

// Probability model for prop outcomes: a normal approximation around the
// predicted value. Counting stats are really right-skewed, so this is a
// deliberate simplification; callers that need calibration should supply an
// empirically fit StdDev on the Prediction instead of relying on defaults.

// ErrInvalidModelInput is returned for a non-positive standard deviation.
var ErrInvalidModelInput = errors.New("invalid model input")

const (
	// probEpsilon bounds output probabilities away from 0 and 1 so fair
	// value odds stay finite.
	probEpsilon = 1e-4

	// minStdDev floors derived standard deviations for tiny predictions.
	minStdDev = 0.5
)

// DefaultStdDevFractions returns the default per-stat standard deviation as
// a fraction of the predicted value. Threes swing the most, points the least.
func DefaultStdDevFractions() map[Stat]float64 {
	return map[Stat]float64{
		StatPoints:   0.20,
		StatRebounds: 0.25,
		StatAssists:  0.30,
		StatThrees:   0.35,
		StatSteals:   0.40,
		StatBlocks:   0.45,
	}
}

// fallbackStdDevFraction is used for stats missing from the fraction map.
const fallbackStdDevFraction = 0.25

// DeriveStdDev estimates a standard deviation for a prediction that carries
// no uncertainty, as a stat-specific fraction of the predicted value.
func DeriveStdDev(stat Stat, value float64, fractions map[Stat]float64) float64 {
	pct, ok := fractions[stat]
	if !ok {
		pct = fallbackStdDevFraction
	}
	sd := value * pct
	if sd < minStdDev {
		return minStdDev
	}
	return sd
}

// CoverProbability returns the model probability that a prediction clears
// the line in the given direction, clamped to [probEpsilon, 1-probEpsilon].
func CoverProbability(predicted, stdDev, line float64, dir Direction) (float64, error) {
	if stdDev <= 0 {
		return 0, fmt.Errorf("%w: std dev %v", ErrInvalidModelInput, stdDev)
	}

	z := (line - predicted) / stdDev
	pUnder := mathutil.NormalCDF(z)

	p := pUnder
	if dir == Over {
		p = 1 - pUnder
	}
	return clampProbability(p), nil
}

func clampProbability(p float64) float64 {
	if p < probEpsilon {
		return probEpsilon
	}
	if p > 1-probEpsilon {
		return 1 - probEpsilon
	}
	return p
}
