package validator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arcanaland/cardstack/card"
	"github.com/arcanaland/cardstack/deck"
)

const fullDeckSize = 52

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were found
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	Source deck.CardSource

	// RequireComplete also checks that every one of the 52 cards is present
	RequireComplete bool

	Results ValidationResults
}

func NewValidator(source deck.CardSource) *Validator {
	return &Validator{
		Source:  source,
		Results: ValidationResults{},
	}
}

func (v *Validator) Validate() ValidationResults {
	v.Results = ValidationResults{}
	cards := v.Source.Cards()

	v.validateCards(cards)
	v.validateDuplicates(cards)
	if v.RequireComplete {
		v.validateComplete(cards)
	}

	return v.Results
}

func (v *Validator) validateCards(cards []card.Card) {
	for i, c := range cards {
		if !c.Valid() {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("invalid card at position %d", i))
		}
	}
}

func (v *Validator) validateDuplicates(cards []card.Card) {
	positions := make(map[card.Card][]int)
	var order []card.Card
	for i, c := range cards {
		if !c.Valid() {
			continue
		}
		if _, seen := positions[c]; !seen {
			order = append(order, c)
		}
		positions[c] = append(positions[c], i)
	}

	for _, c := range order {
		if len(positions[c]) < 2 {
			continue
		}
		idx := make([]string, len(positions[c]))
		for i, p := range positions[c] {
			idx[i] = strconv.Itoa(p)
		}
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("duplicate card %s at positions %s", c, strings.Join(idx, ", ")))
	}
}

func (v *Validator) validateComplete(cards []card.Card) {
	if len(cards) != fullDeckSize {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("expected %d cards, found %d", fullDeckSize, len(cards)))
	}

	present := make(map[card.Card]bool, len(cards))
	for _, c := range cards {
		present[c] = true
	}

	for _, r := range card.Ranks() {
		for _, s := range card.Suits() {
			c, err := card.Of(r, s)
			if err != nil {
				continue
			}
			if !present[c] {
				v.Results.Warnings = append(v.Results.Warnings,
					fmt.Sprintf("missing card %s", c))
			}
		}
	}
}
