package deck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arcanaland/cardstack/card"
)

var (
	// ErrIndexOutOfRange is returned for positional access beyond the stack bounds
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnderflow is returned when more cards are requested than remain
	ErrUnderflow = errors.New("not enough cards")

	// ErrInvalidCount is returned for a negative deal size
	ErrInvalidCount = errors.New("invalid card count")

	// ErrNilHand is returned when drawing into a nil hand
	ErrNilHand = errors.New("nil hand")
)

// CardSource is anything that can list its cards in order
type CardSource interface {
	Cards() []card.Card
}

// Stack is an ordered sequence of cards. Order reflects deck or draw order.
// Deck and Hand embed it and add their own mutations.
type Stack struct {
	cards []card.Card
}

// Len returns the number of cards in the stack
func (s *Stack) Len() int {
	return len(s.cards)
}

// At returns the card at position i
func (s *Stack) At(i int) (card.Card, error) {
	if i < 0 || i >= len(s.cards) {
		return card.Card{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(s.cards))
	}
	return s.cards[i], nil
}

// Cards returns a copy of the cards in stack order
func (s *Stack) Cards() []card.Card {
	out := make([]card.Card, len(s.cards))
	copy(out, s.cards)
	return out
}

// String renders the cards separated by single spaces
func (s *Stack) String() string {
	return s.Format(card.Style{})
}

// Format renders the cards with the given style
func (s *Stack) Format(style card.Style) string {
	parts := make([]string, len(s.cards))
	for i, c := range s.cards {
		parts[i] = style.Format(c)
	}
	return strings.Join(parts, " ")
}

// pop removes the last n cards and returns them last-to-first
func (s *Stack) pop(n int) ([]card.Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	if n > len(s.cards) {
		return nil, fmt.Errorf("%w: requested %d, %d left", ErrUnderflow, n, len(s.cards))
	}

	popped := make([]card.Card, 0, n)
	for i := 0; i < n; i++ {
		last := len(s.cards) - 1
		popped = append(popped, s.cards[last])
		s.cards = s.cards[:last]
	}
	return popped, nil
}
