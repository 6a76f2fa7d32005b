package shared

import "fmt"

// Suit represents the suit of a card. Suits carry no ordering.
type Suit int

const (
	Heart Suit = iota
	Club
	Diamond
	Spade
)

var suitGlyphs = [...]string{
	Heart:   "♥",
	Club:    "♣",
	Diamond: "♦",
	Spade:   "♠",
}

// Suits returns the four suits in canonical order.
func Suits() []Suit {
	return []Suit{Heart, Club, Diamond, Spade}
}

// String returns the suit glyph.
func (s Suit) String() string {
	if s < Heart || s > Spade {
		return "?"
	}
	return suitGlyphs[s]
}

func (s Suit) MarshalText() ([]byte, error) {
	if s < Heart || s > Spade {
		return nil, fmt.Errorf("invalid suit %d", int(s))
	}
	return []byte(suitGlyphs[s]), nil
}

func (s *Suit) UnmarshalText(text []byte) error {
	for i, g := range suitGlyphs {
		if g == string(text) {
			*s = Suit(i)
			return nil
		}
	}
	return fmt.Errorf("unknown suit %q", text)
}

// Rank is the face value of a card, ordered Two < Three < ... < King < Ace.
// The underlying value is the rank index (Two=0, Ace=12).
type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const rankGlyphs = "23456789TJQKA"

// Ranks returns the thirteen ranks from Two to Ace.
func Ranks() []Rank {
	ranks := make([]Rank, 0, len(rankGlyphs))
	for r := Two; r <= Ace; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// Index maps Two to 0 through Ace to 12.
func (r Rank) Index() int {
	return int(r)
}

// String returns the single-character rank glyph.
func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return rankGlyphs[r : r+1]
}

func (r Rank) MarshalText() ([]byte, error) {
	if r < Two || r > Ace {
		return nil, fmt.Errorf("invalid rank %d", int(r))
	}
	return []byte(r.String()), nil
}

func (r *Rank) UnmarshalText(text []byte) error {
	if len(text) == 1 {
		for i := 0; i < len(rankGlyphs); i++ {
			if rankGlyphs[i] == text[0] {
				*r = Rank(i)
				return nil
			}
		}
	}
	return fmt.Errorf("unknown rank %q", text)
}

// Card is an immutable playing card. Trump is fixed when the deck picks its
// trump suit and never changes afterwards.
type Card struct {
	Suit  Suit `json:"suit"`
	Rank  Rank `json:"rank"`
	Trump bool `json:"trump"`
}

// NewCard creates a non-trump card.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Suit: suit, Rank: rank}
}

// ApplyTrump returns the card marked as trump when its suit is trumpSuit.
// A card that is already trump stays trump.
func (c Card) ApplyTrump(trumpSuit Suit) Card {
	if c.Suit == trumpSuit {
		c.Trump = true
	}
	return c
}

// Compare orders two cards: any trump card beats any non-trump card,
// otherwise the higher rank wins. Suit never breaks a tie.
func Compare(a, b Card) int {
	switch {
	case a.Trump && !b.Trump:
		return 1
	case !a.Trump && b.Trump:
		return -1
	}
	return int(a.Rank) - int(b.Rank)
}

// Less reports whether c orders before other.
func (c Card) Less(other Card) bool {
	return Compare(c, other) < 0
}

// String renders the card as suit glyph followed by rank glyph, e.g. "♠A".
func (c Card) String() string {
	return c.Suit.String() + c.Rank.String()
}
