package odds

import (
	"errors"
	"fmt"
	"math"
)

// American odds are signed integers with |odds| >= 100: positive odds quote
// the profit on a 100 stake, negative odds quote the stake needed to profit
// 100. Values strictly between -100 and +100 do not exist in the format.

var (
	// ErrInvalidOdds is returned for odds in the open interval (-100, +100)
	// or any odds that produce a non-positive payout multiplier.
	ErrInvalidOdds = errors.New("invalid American odds")

	// ErrInvalidProbability is returned for probabilities outside (0, 1).
	ErrInvalidProbability = errors.New("probability outside (0, 1)")
)

// AmericanToImplied converts American odds to implied probability.
// Example: -150 → 0.6, +150 → 0.4.
func AmericanToImplied(american int) (float64, error) {
	if american > -100 && american < 100 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidOdds, american)
	}

	if american > 0 {
		// Underdog: probability = 100 / (odds + 100)
		return 100.0 / (float64(american) + 100.0), nil
	}
	// Favorite: probability = |odds| / (|odds| + 100)
	abs := float64(-american)
	return abs / (abs + 100.0), nil
}

// ImpliedToAmerican converts a probability to the American odds that would
// pay out at exactly fair value. Rounded to the nearest integer, so a
// round trip through AmericanToImplied reproduces the input within ±1.
func ImpliedToAmerican(p float64) (int, error) {
	if p <= 0 || p >= 1 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidProbability, p)
	}

	if p >= 0.5 {
		// Favorite (negative odds)
		return int(math.Round(-100 * p / (1 - p))), nil
	}
	// Underdog (positive odds)
	return int(math.Round(100 * (1 - p) / p)), nil
}

// DecimalPayout returns the profit per unit staked, excluding stake return.
// +250 → 2.5, -200 → 0.5.
func DecimalPayout(american int) (float64, error) {
	if american > -100 && american < 100 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidOdds, american)
	}

	if american > 0 {
		return float64(american) / 100.0, nil
	}
	return 100.0 / float64(-american), nil
}

// Format renders American odds with an explicit sign: +150, -110.
func Format(american int) string {
	if american > 0 {
		return fmt.Sprintf("+%d", american)
	}
	return fmt.Sprintf("%d", american)
}
