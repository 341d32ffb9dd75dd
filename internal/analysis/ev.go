package analysis

import (
	"fmt"

	"nba-prop-bets/internal/odds"
)

// EV calculates expected profit per unit staked for a bet at American odds,
// given the model's win probability.
// EV = p*b - (1-p), where b is the payout multiplier. 0 is break-even.
func EV(p float64, american int) (float64, error) {
	if p <= 0 || p >= 1 {
		return 0, fmt.Errorf("%w: %v", odds.ErrInvalidProbability, p)
	}

	b, err := odds.DecimalPayout(american)
	if err != nil {
		return 0, err
	}

	return p*b - (1 - p), nil
}

// KellyFraction computes the full Kelly stake fraction
//
//	f = (b*p - q) / b
//
// clamped to [0, 1]: never stake on a negative edge, never stake more than
// the whole bankroll.
func KellyFraction(p float64, american int) (float64, error) {
	if p <= 0 || p >= 1 {
		return 0, fmt.Errorf("%w: %v", odds.ErrInvalidProbability, p)
	}

	b, err := odds.DecimalPayout(american)
	if err != nil {
		return 0, err
	}

	q := 1 - p
	kelly := (p*b - q) / b

	if kelly < 0 {
		return 0, nil
	}
	if kelly > 1 {
		return 1, nil
	}
	return kelly, nil
}

// Units converts a full Kelly fraction to a stake in units (1u = 1% of
// bankroll), scaled down by the configured bankroll fraction — 0.25 means
// quarter Kelly.
func Units(p float64, american int, bankrollFraction float64) (float64, error) {
	kelly, err := KellyFraction(p, american)
	if err != nil {
		return 0, err
	}
	return kelly * bankrollFraction, nil
}
