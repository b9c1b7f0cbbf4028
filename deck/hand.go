package deck

import "github.com/arcanaland/cardstack/card"

const blackjack = 21

// Hand represents the cards held by a player
type Hand struct {
	Stack
}

// NewHand creates a hand holding the given cards
func NewHand(cards ...card.Card) *Hand {
	h := &Hand{}
	for _, c := range cards {
		h.Add(c)
	}
	return h
}

// Add appends a card to the hand
func (h *Hand) Add(c card.Card) {
	h.cards = append(h.cards, c)
}

// Score returns the blackjack total. Aces count 11 and drop to 1 one at a
// time while the total is over 21. The result can still exceed 21.
func (h *Hand) Score() int {
	total, aces := 0, 0
	for _, c := range h.cards {
		total += c.Rank().Points()
		if c.Rank() == card.Ace {
			aces++
		}
	}

	for total > blackjack && aces > 0 {
		total -= 10
		aces--
	}
	return total
}
