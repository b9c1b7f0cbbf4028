package card

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidValue is returned when a rank or suit is outside the standard sets
var ErrInvalidValue = errors.New("invalid value")

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 1
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

var rankSymbols = []string{"", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// Ranks returns all ranks in deck order
func Ranks() []Rank {
	return []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
}

// Valid reports whether r is one of the 13 standard ranks
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// String returns the rank symbol (e.g., "10", "Q")
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return rankSymbols[r]
}

// Points returns the blackjack value of the rank, counting an ace as 11
func (r Rank) Points() int {
	switch {
	case r == Ace:
		return 11
	case r >= Ten:
		return 10
	case r.Valid():
		return int(r) + 1
	}
	return 0
}

// ParseRank looks up a rank by its symbol
func ParseRank(s string) (Rank, error) {
	for _, r := range Ranks() {
		if rankSymbols[r] == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: rank %q", ErrInvalidValue, s)
}

// Suit represents a card suit
type Suit int

const (
	Spade Suit = iota + 1
	Heart
	Club
	Diamond
)

var (
	suitNames  = []string{"", "spade", "heart", "club", "diamond"}
	suitGlyphs = []string{"", "♠", "♥", "♣", "♦"}
)

// Suits returns all suits in deck order
func Suits() []Suit {
	return []Suit{Spade, Heart, Club, Diamond}
}

// Valid reports whether s is one of the 4 standard suits
func (s Suit) Valid() bool {
	return s >= Spade && s <= Diamond
}

// String returns the suit name (e.g., "spade")
func (s Suit) String() string {
	if !s.Valid() {
		return "?"
	}
	return suitNames[s]
}

// Glyph returns the black suit symbol
func (s Suit) Glyph() string {
	if !s.Valid() {
		return "?"
	}
	return suitGlyphs[s]
}

// Red reports whether the suit is printed in red
func (s Suit) Red() bool {
	return s == Heart || s == Diamond
}

// ParseSuit looks up a suit by name or glyph
func ParseSuit(s string) (Suit, error) {
	for _, suit := range Suits() {
		if suitNames[suit] == s || suitGlyphs[suit] == s {
			return suit, nil
		}
	}
	return 0, fmt.Errorf("%w: suit %q", ErrInvalidValue, s)
}

const invalidHash = 52

// Card represents a playing card. The zero value is not a valid card.
type Card struct {
	rank Rank
	suit Suit
}

// New creates a card from a rank symbol and a suit name
func New(rank, suit string) (Card, error) {
	r, err := ParseRank(rank)
	if err != nil {
		return Card{}, err
	}
	s, err := ParseSuit(suit)
	if err != nil {
		return Card{}, err
	}
	return Card{rank: r, suit: s}, nil
}

// Of creates a card from typed values
func Of(r Rank, s Suit) (Card, error) {
	if !r.Valid() {
		return Card{}, fmt.Errorf("%w: rank %d", ErrInvalidValue, int(r))
	}
	if !s.Valid() {
		return Card{}, fmt.Errorf("%w: suit %d", ErrInvalidValue, int(s))
	}
	return Card{rank: r, suit: s}, nil
}

// MustNew is like New but panics on invalid input
func MustNew(rank, suit string) Card {
	c, err := New(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse reads a card in its display form (e.g., "10♥")
func Parse(s string) (Card, error) {
	for _, suit := range Suits() {
		if rank, ok := strings.CutSuffix(s, suit.Glyph()); ok {
			r, err := ParseRank(rank)
			if err != nil {
				return Card{}, err
			}
			return Card{rank: r, suit: suit}, nil
		}
	}
	return Card{}, fmt.Errorf("%w: card %q", ErrInvalidValue, s)
}

// Rank returns the card's rank
func (c Card) Rank() Rank { return c.rank }

// Suit returns the card's suit
func (c Card) Suit() Suit { return c.suit }

// Valid reports whether the card holds a standard rank and suit
func (c Card) Valid() bool {
	return c.rank.Valid() && c.suit.Valid()
}

// Equal reports whether both cards have the same rank and suit
func (c Card) Equal(other Card) bool {
	return c == other
}

// Hash returns a structural hash of the card. Valid cards map onto 0-51 in
// deck order, so distinct cards never collide. Every invalid card hashes
// to 52.
func (c Card) Hash() uint64 {
	if !c.Valid() {
		return invalidHash
	}
	return uint64(c.rank-Two)*uint64(len(suitNames)-1) + uint64(c.suit-Spade)
}

// String returns the card as rank followed by suit glyph (e.g., "A♠")
func (c Card) String() string {
	return c.rank.String() + c.suit.Glyph()
}
