package shared

import "math/rand/v2"

// DeckSize is the number of cards in a full deck.
const DeckSize = 52

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

// Deck is a single-use, strictly shrinking 52-card deck with a trump suit
// revealed from its top card.
type Deck struct {
	cards         []Card
	trumpSuit     Suit
	finalCardRank Rank
}

// NewDeck builds and shuffles a deck using the process-wide random source.
func NewDeck() *Deck {
	return NewDeckWithShuffler(globalShuffler{})
}

// NewDeckWithShuffler builds the canonical 52 cards, shuffles them once with
// s, reveals the top card as trump and marks every card of that suit.
func NewDeckWithShuffler(s Shuffler) *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, rank := range Ranks() {
		for _, suit := range Suits() {
			cards = append(cards, NewCard(rank, suit))
		}
	}

	s.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	top := cards[0]
	for i := range cards {
		cards[i] = cards[i].ApplyTrump(top.Suit)
	}

	return &Deck{
		cards:         cards,
		trumpSuit:     top.Suit,
		finalCardRank: top.Rank,
	}
}

// DrawCard removes and returns the last card. ok is false once the deck is empty.
func (d *Deck) DrawCard() (card Card, ok bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	last := len(d.cards) - 1
	card = d.cards[last]
	d.cards = d.cards[:last]
	return card, true
}

// DrawCards draws up to n cards in draw order, stopping early if the deck runs out.
func (d *Deck) DrawCards(n int) Hand {
	hand := Hand{}
	for i := 0; i < n; i++ {
		card, ok := d.DrawCard()
		if !ok {
			break
		}
		hand = append(hand, card)
	}
	return hand
}

// TrumpSuit returns the suit of the card revealed after shuffling.
func (d *Deck) TrumpSuit() Suit {
	return d.trumpSuit
}

// FinalCardRank returns the rank of the revealed trump card.
func (d *Deck) FinalCardRank() Rank {
	return d.finalCardRank
}

// Len returns the number of cards left.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards. The revealed trump card is
// first; draws take from the end.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
