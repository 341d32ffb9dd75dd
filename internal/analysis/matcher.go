package analysis

import "strings"

// PlayerMatcher decides whether a predicted player and a quoted player are
// the same person. Prediction and odds feeds come from different vendors
// and do not agree on name formatting, so matching is a pluggable policy.
type PlayerMatcher interface {
	Match(predicted, quoted string) bool
}

// NormalizedMatcher is the default policy: compare names lowercased with
// punctuation stripped, falling back to containment so "S. Curry" and
// partial feed names still resolve.
type NormalizedMatcher struct{}

func (NormalizedMatcher) Match(predicted, quoted string) bool {
	a := NormalizeName(predicted)
	b := NormalizeName(quoted)
	if a == "" || b == "" {
		return false
	}
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}

// ExactMatcher requires byte-identical names. Useful when the caller has
// already resolved both feeds to a shared player key.
type ExactMatcher struct{}

func (ExactMatcher) Match(predicted, quoted string) bool {
	return predicted != "" && predicted == quoted
}

// NormalizeName lowercases a player name and strips everything except
// letters, digits and single spaces: "D'Angelo Russell Jr." and
// "dangelo russell jr" normalize identically.
func NormalizeName(name string) string {
	var sb strings.Builder
	lastSpace := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastSpace = false
		case r == ' ' && !lastSpace:
			sb.WriteRune(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(sb.String())
}
