package odds

// RemoveVig strips the book's margin from a two-way quote using
// multiplicative normalization, returning probabilities that sum to 1:
//
//	trueA = impliedA / (impliedA + impliedB)
//	trueB = impliedB / (impliedA + impliedB)
func RemoveVig(impliedA, impliedB float64) (float64, float64) {
	if impliedA <= 0 || impliedB <= 0 {
		return 0, 0
	}

	total := impliedA + impliedB
	return impliedA / total, impliedB / total
}

// RemoveVigFromAmerican converts a two-way American quote to vig-free
// probabilities. Returns (0, 0) if either side is not valid American odds.
func RemoveVigFromAmerican(oddsA, oddsB int) (float64, float64) {
	impliedA, errA := AmericanToImplied(oddsA)
	impliedB, errB := AmericanToImplied(oddsB)
	if errA != nil || errB != nil {
		return 0, 0
	}
	return RemoveVig(impliedA, impliedB)
}
