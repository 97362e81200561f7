package match

import (
	"strings"
)

// PairMatcher decides whether two target participant names denote the
// same event as a candidate's home/away (or player1/player2) pair.
// It is a strategy so the substring heuristic can be swapped for a
// stricter algorithm (edit distance, token-set overlap) without
// touching the correlator.
type PairMatcher interface {
	SamePair(targetA, targetB, candidateA, candidateB string) bool
}

// SubstringPairMatcher matches pairs by normalized substring
// containment: each target name must be contained in one of the
// candidate names, and the two targets must land on different sides.
// Participant order is not assumed consistent across providers.
type SubstringPairMatcher struct{}

// SamePair reports whether (targetA, targetB) and
// (candidateA, candidateB) name the same two participants. A target
// that normalizes to empty never matches.
func (SubstringPairMatcher) SamePair(targetA, targetB, candidateA, candidateB string) bool {
	ta := Normalize(targetA)
	tb := Normalize(targetB)
	if ta == "" || tb == "" {
		return false
	}
	ca := Normalize(candidateA)
	cb := Normalize(candidateB)

	if strings.Contains(ca, ta) && strings.Contains(cb, tb) {
		return true
	}
	if strings.Contains(cb, ta) && strings.Contains(ca, tb) {
		return true
	}
	return false
}
