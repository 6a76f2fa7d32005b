package game

import (
	"errors"

	"trumphand/internal/shared"
)

// ErrEmptyHand is returned when scoring a hand with no cards.
var ErrEmptyHand = errors.New("cannot score an empty hand")

const (
	// distinctRankCoef weighs how much repeated ranks lift a hand.
	distinctRankCoef = 0.4
	// trumpOffset lifts every trump card above the best non-trump card.
	trumpOffset = 3 * int(shared.Ace)
)

// CardWeight returns the per-card contribution to a hand score.
func CardWeight(c shared.Card) int {
	if c.Trump {
		return c.Rank.Index() + 1 + trumpOffset
	}
	return 3 * c.Rank.Index()
}

// RankMultiplier rewards hands with repeated ranks. n is the hand size and
// distinct the number of different ranks in it; n must be positive.
func RankMultiplier(n, distinct int) float64 {
	return (float64(n+1-distinct)/float64(n))*distinctRankCoef + (1 - distinctRankCoef/2)
}

// ScoreHand computes the heuristic strength of a hand. The result does not
// depend on card order.
func ScoreHand(hand shared.Hand) (float64, error) {
	if len(hand) == 0 {
		return 0, ErrEmptyHand
	}

	raw := 0
	for _, card := range hand {
		raw += CardWeight(card)
	}

	return float64(raw) * RankMultiplier(len(hand), hand.DistinctRanks()), nil
}
