package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcanaland/cardstack/card"
)

func hand(cards ...string) *Hand {
	h := NewHand()
	for _, s := range cards {
		c, err := card.Parse(s)
		if err != nil {
			panic(err)
		}
		h.Add(c)
	}
	return h
}

func TestScore(t *testing.T) {
	testCases := []struct {
		name     string
		hand     *Hand
		expected int
	}{
		{name: "empty", hand: NewHand(), expected: 0},
		{name: "blackjack", hand: hand("10♠", "A♥"), expected: 21},
		{name: "two aces and nine", hand: hand("A♠", "A♥", "9♣"), expected: 21},
		{name: "bust without aces", hand: hand("K♠", "Q♥", "5♦"), expected: 25},
		{name: "four aces", hand: hand("A♠", "A♥", "A♣", "A♦"), expected: 14},
		{name: "soft seventeen", hand: hand("A♠", "6♥"), expected: 17},
		{name: "ace drops to one", hand: hand("A♠", "6♥", "K♣"), expected: 17},
		{name: "bust with low aces", hand: hand("A♠", "A♥", "K♣", "Q♦"), expected: 22},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.hand.Score())
			// Scoring does not change the hand
			assert.Equal(t, tc.expected, tc.hand.Score())
		})
	}
}

func TestHandString(t *testing.T) {
	h := NewHand(card.MustNew("A", "spade"), card.MustNew("10", "heart"))
	assert.Equal(t, "A♠ 10♥", h.String())
	assert.Equal(t, "", NewHand().String())
}

func TestHandAdd(t *testing.T) {
	h := NewHand()
	h.Add(card.MustNew("3", "club"))
	h.Add(card.MustNew("3", "club"))

	assert.Equal(t, 2, h.Len())
	_, err := h.At(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestCardsIsCopy(t *testing.T) {
	h := NewHand(card.MustNew("7", "spade"))
	cards := h.Cards()
	cards[0] = card.MustNew("8", "spade")

	got, err := h.At(0)
	assert.NoError(t, err)
	assert.Equal(t, card.MustNew("7", "spade"), got)
}

func TestFormatColor(t *testing.T) {
	h := NewHand(card.MustNew("A", "spade"), card.MustNew("10", "heart"))
	out := h.Format(card.Style{Color: true})

	assert.Contains(t, out, "A♠ ")
	assert.Contains(t, out, "10♥")
	assert.NotEqual(t, h.String(), out)
}
