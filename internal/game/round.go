package game

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"time"

	"trumphand/internal/shared"

	"github.com/google/uuid"
)

// ErrInvalidHandSize is returned when a round asks for an impossible hand.
var ErrInvalidHandSize = errors.New("hand size must be between 1 and 52")

// DeckFactory builds a fresh deck for each round.
type DeckFactory func() *shared.Deck

// Round is the outcome of dealing and scoring one hand from a fresh deck.
type Round struct {
	ID        string      `json:"id"`
	Hand      shared.Hand `json:"hand"`
	Trump     shared.Suit `json:"trump"`
	FinalRank shared.Rank `json:"final_rank"`
	Score     float64     `json:"score"`
}

// String renders the round as "[♦3, ♠K] (♠): 42.50".
func (r Round) String() string {
	return fmt.Sprintf("%s (%s): %.2f", r.Hand, r.Trump, r.Score)
}

// PlayRound draws handSize cards from deck, sorts them and scores them.
func PlayRound(deck *shared.Deck, handSize int) (Round, error) {
	if handSize < 1 || handSize > shared.DeckSize {
		return Round{}, fmt.Errorf("%w: got %d", ErrInvalidHandSize, handSize)
	}

	hand := deck.DrawCards(handSize)
	hand.Sort()

	score, err := ScoreHand(hand)
	if err != nil {
		return Round{}, fmt.Errorf("round: %w", err)
	}

	return Round{
		ID:        uuid.NewString(),
		Hand:      hand,
		Trump:     deck.TrumpSuit(),
		FinalRank: deck.FinalCardRank(),
		Score:     score,
	}, nil
}

// Batch is a set of independent rounds ranked by ascending score.
type Batch struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	HandSize  int       `json:"hand_size"`
	Rounds    []Round   `json:"rounds"`
}

// Simulate plays the given number of rounds, each on its own deck from
// newDeck, and returns them sorted by score (lowest first, ties in play order).
func Simulate(rounds, handSize int, newDeck DeckFactory) (Batch, error) {
	if rounds < 1 {
		return Batch{}, fmt.Errorf("rounds must be positive, got %d", rounds)
	}
	if newDeck == nil {
		newDeck = shared.NewDeck
	}

	batch := Batch{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		HandSize:  handSize,
		Rounds:    make([]Round, 0, rounds),
	}
	for i := 0; i < rounds; i++ {
		round, err := PlayRound(newDeck(), handSize)
		if err != nil {
			return Batch{}, err
		}
		batch.Rounds = append(batch.Rounds, round)
	}

	slices.SortStableFunc(batch.Rounds, func(a, b Round) int {
		return cmp.Compare(a.Score, b.Score)
	})
	return batch, nil
}

// Best returns the highest scoring round. ok is false for an empty batch.
func (b Batch) Best() (round Round, ok bool) {
	if len(b.Rounds) == 0 {
		return Round{}, false
	}
	return b.Rounds[len(b.Rounds)-1], true
}

// Lines renders one line per round, in ranked order.
func (b Batch) Lines() []string {
	lines := make([]string, len(b.Rounds))
	for i, r := range b.Rounds {
		lines[i] = r.String()
	}
	return lines
}
