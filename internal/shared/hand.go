package shared

import (
	"slices"
	"strings"
)

// Hand is an ordered sequence of cards drawn from a deck.
type Hand []Card

// Sort orders the hand by Compare. Equal cards keep their draw order.
func (h Hand) Sort() {
	slices.SortStableFunc(h, Compare)
}

// Sorted returns a sorted copy, leaving h untouched.
func (h Hand) Sorted() Hand {
	out := slices.Clone(h)
	out.Sort()
	return out
}

// HasSuit reports whether the hand holds a card of the given suit.
func (h Hand) HasSuit(suit Suit) bool {
	for _, card := range h {
		if card.Suit == suit {
			return true
		}
	}
	return false
}

// TrumpCount returns the number of trump cards in the hand.
func (h Hand) TrumpCount() int {
	n := 0
	for _, card := range h {
		if card.Trump {
			n++
		}
	}
	return n
}

// DistinctRanks counts the different ranks present, ignoring suit.
func (h Hand) DistinctRanks() int {
	seen := make(map[Rank]struct{}, len(h))
	for _, card := range h {
		seen[card.Rank] = struct{}{}
	}
	return len(seen)
}

// String renders the hand as "[♥2, ♣T, ♠A]".
func (h Hand) String() string {
	tokens := make([]string, len(h))
	for i, card := range h {
		tokens[i] = card.String()
	}
	return "[" + strings.Join(tokens, ", ") + "]"
}
