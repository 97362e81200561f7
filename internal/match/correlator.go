package match

import (
	"time"

	"github.com/jcamargo/pronosbot/internal/pkg/models"
)

// TimeTolerance is the window within which a results event and an odds
// entry are considered the same fixture. Providers disagree on exact
// kickoff times, so the window is generous; the same two participants
// rarely meet twice inside it.
const TimeTolerance = 24 * time.Hour

// Correlator finds the odds entry that corresponds to a sporting event.
// Candidates are scanned in provider-returned order and the first one
// passing all applicable filters wins; no scoring across multiple
// matches is attempted.
type Correlator struct {
	pairs PairMatcher
}

// NewCorrelator builds a correlator around the given pair-matching
// strategy.
func NewCorrelator(pairs PairMatcher) *Correlator {
	return &Correlator{pairs: pairs}
}

// Find returns the first candidate whose participant pair matches
// (participantA, participantB). When both targetTime and the
// candidate's commence time are known, the candidate must also fall
// within TimeTolerance of targetTime; if either time is missing the
// name match alone suffices. Returns nil when nothing qualifies;
// that is an expected outcome, not an error.
func (c *Correlator) Find(candidates []models.OddsEvent, participantA, participantB string, targetTime time.Time) *models.OddsEvent {
	for i := range candidates {
		cand := &candidates[i]
		if !c.pairs.SamePair(participantA, participantB, cand.HomeTeam, cand.AwayTeam) {
			continue
		}
		if !targetTime.IsZero() && !cand.CommenceTime.IsZero() {
			diff := cand.CommenceTime.Sub(targetTime)
			if diff < 0 {
				diff = -diff
			}
			if diff > TimeTolerance {
				continue
			}
		}
		return cand
	}
	return nil
}
