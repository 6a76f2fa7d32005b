package shared

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// identityShuffler leaves the canonical order untouched.
type identityShuffler struct{}

func (identityShuffler) Shuffle(int, func(i, j int)) {}

// reverseShuffler flips the canonical order.
type reverseShuffler struct{}

func (reverseShuffler) Shuffle(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

func TestNewDeck(t *testing.T) {
	for i := 0; i < 20; i++ {
		deck := NewDeck()
		cards := deck.Cards()
		require.Len(t, cards, DeckSize)
		assert.Equal(t, DeckSize, deck.Len())

		seen := make(map[[2]int]bool)
		for _, card := range cards {
			key := [2]int{int(card.Suit), int(card.Rank)}
			assert.False(t, seen[key], "duplicate card %s", card)
			seen[key] = true
			assert.Equal(t, card.Suit == deck.TrumpSuit(), card.Trump, "trump flag of %s", card)
		}
		assert.Len(t, seen, DeckSize)
		assert.Equal(t, deck.TrumpSuit(), cards[0].Suit)
		assert.Equal(t, deck.FinalCardRank(), cards[0].Rank)
	}
}

func TestNewDeckWithShuffler_Identity(t *testing.T) {
	deck := NewDeckWithShuffler(identityShuffler{})
	assert.Equal(t, Heart, deck.TrumpSuit())
	assert.Equal(t, Two, deck.FinalCardRank())

	hand := deck.DrawCards(4)
	want := Hand{
		NewCard(Ace, Spade),
		NewCard(Ace, Diamond),
		NewCard(Ace, Club),
		NewCard(Ace, Heart).ApplyTrump(Heart),
	}
	assert.Equal(t, want, hand)
}

func TestNewDeckWithShuffler_Reverse(t *testing.T) {
	deck := NewDeckWithShuffler(reverseShuffler{})
	assert.Equal(t, Spade, deck.TrumpSuit())
	assert.Equal(t, Ace, deck.FinalCardRank())

	card, ok := deck.DrawCard()
	require.True(t, ok)
	assert.Equal(t, NewCard(Two, Heart), card)
}

func TestNewDeckWithShuffler_Seeded(t *testing.T) {
	a := NewDeckWithShuffler(rand.New(rand.NewPCG(7, 11)))
	b := NewDeckWithShuffler(rand.New(rand.NewPCG(7, 11)))
	assert.Equal(t, a.Cards(), b.Cards())
	assert.Equal(t, a.TrumpSuit(), b.TrumpSuit())
}

func TestDeck_DrawUntilEmpty(t *testing.T) {
	for _, n := range []int{0, 1, 6, 26, 51, 52} {
		deck := NewDeck()
		first := deck.DrawCards(n)
		rest := deck.DrawCards(DeckSize - n)
		assert.Len(t, first, n)
		assert.Len(t, rest, DeckSize-n)
		assert.Zero(t, deck.Len())

		_, ok := deck.DrawCard()
		assert.False(t, ok)

		seen := make(map[Card]bool)
		for _, card := range append(first, rest...) {
			assert.False(t, seen[card], "card %s drawn twice", card)
			seen[card] = true
		}
	}
}

func TestDeck_DrawCardsStopsEarly(t *testing.T) {
	deck := NewDeck()
	deck.DrawCards(50)
	hand := deck.DrawCards(6)
	assert.Len(t, hand, 2)
	assert.Empty(t, deck.DrawCards(3))
	assert.Empty(t, NewDeck().DrawCards(-1))
}

func TestDeck_DrawOrder(t *testing.T) {
	deck := NewDeck()
	cards := deck.Cards()
	hand := deck.DrawCards(3)
	assert.Equal(t, Hand{cards[51], cards[50], cards[49]}, hand)
	assert.Equal(t, cards[:49], deck.Cards())
}
