package simulation

import (
	"math"
	"sort"
)

const (
	KFactor       = 32.0
	InitialRating = 1200
)

// CalculateElo returns the new rating for player A.
// score is 1.0 for a win, 0.5 for a draw, and 0.0 for a loss.
func CalculateElo(ratingA, ratingB int, score float64) int {
	expectedScoreA := 1.0 / (1.0 + math.Pow(10.0, float64(ratingB-ratingA)/400.0))
	newRating := float64(ratingA) + KFactor*(score-expectedScoreA)

	if newRating < 0 {
		return 0
	}
	return int(math.Round(newRating))
}

// EstimateRatings replays every recorded game in matchup order and
// returns an Elo rating per depth. Errored games are skipped.
func EstimateRatings(results []MatchupResult) map[int]int {
	ratings := make(map[int]int)
	ordered := make([]MatchupResult, len(results))
	copy(ordered, results)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Low != ordered[j].Low {
			return ordered[i].Low < ordered[j].Low
		}
		return ordered[i].High < ordered[j].High
	})

	for _, res := range ordered {
		for _, d := range []int{res.High, res.Low} {
			if _, ok := ratings[d]; !ok {
				ratings[d] = InitialRating
			}
		}
		if res.High == res.Low {
			continue
		}
		for _, o := range res.Outcomes {
			var score float64
			switch o {
			case OutcomeHighWin:
				score = 1
			case OutcomeDraw:
				score = 0.5
			case OutcomeLowWin:
				score = 0
			default:
				continue
			}
			hi, lo := ratings[res.High], ratings[res.Low]
			ratings[res.High] = CalculateElo(hi, lo, score)
			ratings[res.Low] = CalculateElo(lo, hi, 1-score)
		}
	}
	return ratings
}
