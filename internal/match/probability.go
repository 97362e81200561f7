package match

import (
	"math"

	"github.com/jcamargo/pronosbot/internal/pkg/models"
)

// ExtractProbabilities converts a matched odds entry's head-to-head
// prices into a vig-free probability distribution on the percent
// scale, rounded to one decimal per outcome.
//
// The first bookmaker carrying an h2h market is used as-is; no
// cross-bookmaker averaging. Prices that are zero or negative are
// sentinel garbage from some providers and are excluded before
// normalization. A nil entry, a feed with no h2h market, or an
// all-invalid outcome list yields an empty map, the normal
// "no odds available" state.
func ExtractProbabilities(entry *models.OddsEvent) models.Probabilities {
	if entry == nil {
		return models.Probabilities{}
	}
	for _, bm := range entry.Bookmakers {
		for _, market := range bm.Markets {
			if market.Key != "h2h" {
				continue
			}
			if probs := normalizeOutcomes(market.Outcomes); len(probs) > 0 {
				return probs
			}
			return models.Probabilities{}
		}
	}
	return models.Probabilities{}
}

// normalizeOutcomes maps decimal prices to implied probabilities and
// rescales them to sum to 100, removing the bookmaker margin.
func normalizeOutcomes(outcomes []models.Outcome) models.Probabilities {
	raw := make(map[string]float64, len(outcomes))
	sum := 0.0
	for _, o := range outcomes {
		if o.Price <= 0 {
			continue
		}
		p := 1.0 / o.Price
		raw[o.Name] = p
		sum += p
	}
	if sum <= 0 {
		return models.Probabilities{}
	}
	probs := make(models.Probabilities, len(raw))
	for name, p := range raw {
		probs[name] = roundPercent(p / sum)
	}
	return probs
}

// roundPercent converts a [0,1] probability to the percent scale with
// one decimal place.
func roundPercent(p float64) float64 {
	return math.Round(p*1000) / 10
}
