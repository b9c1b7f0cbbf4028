package deck

import (
	"fmt"

	"github.com/arcanaland/cardstack/card"
)

// Deck represents a standard 52-card deck. The top of the deck is the end
// of the stack; Deal and Draw both take from there.
type Deck struct {
	Stack
}

// New creates a full deck ordered by rank, then by suit within each rank
func New() *Deck {
	cards := make([]card.Card, 0, len(card.Ranks())*len(card.Suits()))
	for _, r := range card.Ranks() {
		for _, s := range card.Suits() {
			c, err := card.Of(r, s)
			if err != nil {
				// Ranks and Suits only yield valid values
				panic(err)
			}
			cards = append(cards, c)
		}
	}
	return &Deck{Stack: Stack{cards: cards}}
}

// Replace overwrites the card at position i. Duplicates are not checked;
// use the validator to audit a modified deck.
func (d *Deck) Replace(i int, c card.Card) error {
	if i < 0 || i >= len(d.cards) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(d.cards))
	}
	d.cards[i] = c
	return nil
}

// Deal removes the top n cards and returns them as a new hand, in the order
// they came off the deck. The deck is unchanged on error.
func (d *Deck) Deal(n int) (*Hand, error) {
	cards, err := d.pop(n)
	if err != nil {
		return nil, fmt.Errorf("deal %d: %w", n, err)
	}
	return &Hand{Stack: Stack{cards: cards}}, nil
}

// Draw moves the top card of the deck into the hand. A nil hand is an
// error and leaves the deck untouched.
func (d *Deck) Draw(h *Hand) error {
	if h == nil {
		return fmt.Errorf("draw: %w", ErrNilHand)
	}
	cards, err := d.pop(1)
	if err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	h.Add(cards[0])
	return nil
}
