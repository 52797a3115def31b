package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) []Card {
	t.Helper()
	cards, err := ParseCards(s)
	require.NoError(t, err)
	return cards
}

func TestFullDeck(t *testing.T) {
	t.Parallel()

	deck := FullDeck()
	assert.Equal(t, DeckSize, deck.CountCards())
	assert.True(t, deck.HasJoker())
	for suit := range uint8(NumSuits) {
		assert.Equal(t, uint16(rankMask), deck.GetSuitMask(suit))
	}
}

func TestRemoveCards(t *testing.T) {
	t.Parallel()

	cards := mustParse(t, "As Kd Jk")
	deck, err := RemoveCards(FullDeck(), cards...)
	require.NoError(t, err)
	assert.Equal(t, DeckSize-3, deck.CountCards())
	assert.False(t, deck.HasJoker())
	assert.False(t, deck.HasCard(cards[0]))

	_, err = RemoveCards(deck, cards[1])
	assert.ErrorIs(t, err, ErrCardNotInDeck)
}

func TestValidateHand(t *testing.T) {
	t.Parallel()

	h, err := ValidateHand(mustParse(t, "As Ks Qs Js Jk"), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, h.CountCards())

	_, err = ValidateHand(mustParse(t, "As Ks Qs Js"), 5)
	assert.ErrorIs(t, err, ErrInvalidHand)

	_, err = ValidateHand(mustParse(t, "As Ks Qs Js As"), 5)
	assert.ErrorIs(t, err, ErrInvalidHand)

	_, err = ValidateHand(mustParse(t, "Jk Ks Qs Js Jk"), 5)
	assert.ErrorIs(t, err, ErrInvalidHand, "two jokers")

	_, err = ValidateHand([]Card{NewCard(Ace, Spades), 0, 3, NewCard(Two, Spades), Joker}, 5)
	assert.ErrorIs(t, err, ErrInvalidHand)
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestHandMasks(t *testing.T) {
	t.Parallel()

	h := NewHand(mustParse(t, "As Ah 7h Kc Jk")...)
	assert.Equal(t, uint16(1<<Ace|1<<Seven|1<<King), h.GetRankMask())
	assert.Equal(t, uint16(1<<Ace|1<<Seven), h.GetSuitMask(Hearts))

	counts := h.RankCounts()
	assert.Equal(t, 2, counts[Ace])
	assert.Equal(t, 1, counts[Seven])
	assert.Equal(t, 1, counts[King])
}

func TestHandCardsCanonicalOrder(t *testing.T) {
	t.Parallel()

	a := NewHand(mustParse(t, "Jk 2c As Kh 9d")...)
	b := NewHand(mustParse(t, "9d Kh Jk As 2c")...)
	assert.Equal(t, a, b)
	assert.Equal(t, a.Cards(), b.Cards())
	assert.Equal(t, "As Kh 9d 2c Jk", a.String())
	assert.Empty(t, Hand(0).Cards())
}
