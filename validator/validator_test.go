package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardstack/card"
	"github.com/arcanaland/cardstack/deck"
)

func TestValidateFreshDeck(t *testing.T) {
	v := NewValidator(deck.New())
	v.RequireComplete = true

	results := v.Validate()
	assert.True(t, results.Valid())
	assert.Empty(t, results.Errors)
	assert.Empty(t, results.Warnings)
}

func TestValidateReplacedDuplicate(t *testing.T) {
	d := deck.New()
	// Position 51 holds A♦; copy it over the first card
	require.NoError(t, d.Replace(0, card.MustNew("A", "diamond")))

	v := NewValidator(d)
	v.RequireComplete = true
	results := v.Validate()

	assert.False(t, results.Valid())
	assert.Equal(t, []string{"duplicate card A♦ at positions 0, 51"}, results.Errors)
	assert.Equal(t, []string{"missing card 2♠"}, results.Warnings)
}

func TestValidateInvalidCard(t *testing.T) {
	d := deck.New()
	require.NoError(t, d.Replace(10, card.Card{}))

	results := NewValidator(d).Validate()
	assert.Equal(t, []string{"invalid card at position 10"}, results.Errors)
}

func TestValidateHand(t *testing.T) {
	d := deck.New()
	h, err := d.Deal(3)
	require.NoError(t, err)

	assert.True(t, NewValidator(h).Validate().Valid())

	v := NewValidator(d)
	v.RequireComplete = true
	results := v.Validate()
	assert.Equal(t, []string{"expected 52 cards, found 49"}, results.Errors)
	assert.Len(t, results.Warnings, 3)
}

func TestValidateResetsResults(t *testing.T) {
	d := deck.New()
	require.NoError(t, d.Replace(0, card.MustNew("A", "diamond")))

	v := NewValidator(d)
	first := v.Validate()
	second := v.Validate()
	assert.Equal(t, first, second)
	assert.Len(t, second.Errors, 1)
}
