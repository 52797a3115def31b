package odds

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/jokerpoker/poker"
)

// HandSize is the size of every final hand.
const HandSize = 5

// checkInterval is how many draws EnumerateWhile classifies between
// calls to its keep-going check.
const checkInterval = 1024

// Enumerate classifies kept plus every possible draw of the missing
// cards from deck and tallies the results. It is exact but costs
// C(|deck|, 5-|kept|) classifications.
func Enumerate(kept, deck poker.Hand) (Tally, error) {
	t, _, err := EnumerateWhile(kept, deck, nil)
	return t, err
}

// EnumerateWhile is Enumerate with a keep-going check, consulted before
// the first draw and then every checkInterval draws. It reports whether
// every draw was classified; a stopped enumeration returns a partial
// tally. A nil check never stops.
func EnumerateWhile(kept, deck poker.Hand, keepGoing func() bool) (Tally, bool, error) {
	need := HandSize - kept.CountCards()
	if err := checkCompletion(kept, deck, need); err != nil {
		return Tally{}, false, err
	}

	var t Tally
	complete := true
	ForEachCombination(deck.Cards(), need, func(draw poker.Hand) bool {
		if keepGoing != nil && t.Draws%checkInterval == 0 && !keepGoing() {
			complete = false
			return false
		}
		t.Add(poker.Classify(kept | draw))
		return true
	})
	return t, complete, nil
}

// Sample classifies kept plus n random draws from deck. The result is
// flagged Estimated.
func Sample(kept, deck poker.Hand, n int, rng *rand.Rand) (Tally, error) {
	need := HandSize - kept.CountCards()
	if err := checkCompletion(kept, deck, need); err != nil {
		return Tally{}, err
	}

	t := Tally{Estimated: true}
	cards := deck.Cards()
	for range n {
		// Partial Fisher-Yates: the first need slots become the draw.
		draw := kept
		for i := range need {
			j := i + rng.IntN(len(cards)-i)
			cards[i], cards[j] = cards[j], cards[i]
			draw |= poker.Hand(cards[i])
		}
		t.Add(poker.Classify(draw))
	}
	return t, nil
}

func checkCompletion(kept, deck poker.Hand, need int) error {
	if need < 0 {
		return fmt.Errorf("kept %d cards: %w", kept.CountCards(), poker.ErrInvalidHand)
	}
	if kept&deck != 0 {
		return fmt.Errorf("kept %s: %w", kept&deck, ErrRequiredInDeck)
	}
	if deck.CountCards() < need {
		return fmt.Errorf("draw %d from %d cards: %w", need, deck.CountCards(), ErrDeckTooSmall)
	}
	return nil
}
