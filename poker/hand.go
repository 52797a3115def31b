package poker

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// Hand is a set of cards, one bit per card (see Card).
// It is used for dealt hands, kept subsets and remaining decks alike.
type Hand uint64

const (
	rankMask = 0x1FFF // 13 bits for ranks
	fullDeck = Hand(1)<<(jokerBit+1) - 1
)

var (
	// ErrCardNotInDeck is returned by RemoveCards for a card the deck lacks.
	ErrCardNotInDeck = errors.New("card not in deck")
	// ErrInvalidHand is returned for hands with duplicate, invalid or
	// missing cards.
	ErrInvalidHand = errors.New("invalid hand")
)

// NewHand creates a hand from multiple cards
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h |= Hand(c)
	}
	return h
}

// FullDeck returns the 53-card set: 52 ordinary cards and the Joker.
func FullDeck() Hand {
	return fullDeck
}

// RemoveCards returns deck without cards. Removing a card that is not in
// the deck is an error.
func RemoveCards(deck Hand, cards ...Card) (Hand, error) {
	for _, c := range cards {
		if !deck.HasCard(c) {
			return deck, fmt.Errorf("remove %s: %w", c, ErrCardNotInDeck)
		}
		deck &^= Hand(c)
	}
	return deck, nil
}

// ValidateHand checks that cards are size distinct cards of the 53-card
// deck (so at most one Joker) and returns them as a Hand.
func ValidateHand(cards []Card, size int) (Hand, error) {
	if len(cards) != size {
		return 0, fmt.Errorf("%w: got %d cards, want %d", ErrInvalidHand, len(cards), size)
	}
	var h Hand
	for _, c := range cards {
		if !c.Valid() {
			return 0, fmt.Errorf("%w: %w", ErrInvalidHand, ErrInvalidCard)
		}
		if h.HasCard(c) {
			return 0, fmt.Errorf("%w: duplicate card %s", ErrInvalidHand, c)
		}
		h.AddCard(c)
	}
	return h, nil
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(c Card) {
	*h |= Hand(c)
}

// HasCard checks if the hand contains a specific card
func (h Hand) HasCard(c Card) bool {
	return c != 0 && (h&Hand(c)) == Hand(c)
}

// HasJoker reports whether the Joker is in the hand.
func (h Hand) HasJoker() bool {
	return h&Hand(Joker) != 0
}

// CountCards returns the number of cards in the hand
func (h Hand) CountCards() int {
	return bits.OnesCount64(uint64(h))
}

// GetSuitMask returns the cards of a specific suit as a rank bitmask
func (h Hand) GetSuitMask(suit uint8) uint16 {
	offset := suit * NumRanks
	return uint16((h >> offset) & rankMask)
}

// GetRankMask returns a bitmask of which ranks are present (Joker excluded)
func (h Hand) GetRankMask() uint16 {
	var mask uint16
	for suit := range NumSuits {
		mask |= h.GetSuitMask(uint8(suit))
	}
	return mask
}

// RankCounts returns the number of non-Joker cards of each rank.
func (h Hand) RankCounts() [NumRanks]int {
	var counts [NumRanks]int
	for suit := range NumSuits {
		mask := h.GetSuitMask(uint8(suit))
		for mask != 0 {
			r := bits.TrailingZeros16(mask)
			counts[r]++
			mask &= mask - 1
		}
	}
	return counts
}

// Cards returns the cards in ascending bit order, which is the canonical
// ordering of a hand.
func (h Hand) Cards() []Card {
	cards := make([]Card, 0, h.CountCards())
	for rest := uint64(h); rest != 0; rest &= rest - 1 {
		cards = append(cards, Card(rest&-rest))
	}
	return cards
}

// String joins the cards in canonical order, e.g. "As Ks Jk".
func (h Hand) String() string {
	cards := h.Cards()
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
