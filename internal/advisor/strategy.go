package advisor

import (
	"slices"

	"github.com/lox/jokerpoker/poker"
)

// Strategy is how a kept subset is scored.
type Strategy uint8

const (
	// Exhaustive classifies every possible draw.
	Exhaustive Strategy = iota
	// ClosedForm counts the empty hold with the closed-form counter.
	ClosedForm
	// ClosedFormRequired counts a single held card with the closed-form
	// counter, the held card pinned as required.
	ClosedFormRequired
)

func (s Strategy) String() string {
	switch s {
	case Exhaustive:
		return "exhaustive"
	case ClosedForm:
		return "closed-form"
	case ClosedFormRequired:
		return "closed-form-required"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// strategyFor picks the scoring strategy once per kept subset. A held
// Joker has no closed form, and when the dealt hand has the Joker a lone
// kept card is enumerated too.
func strategyFor(kept poker.Hand, dealtHasJoker bool) Strategy {
	switch kept.CountCards() {
	case 0:
		return ClosedForm
	case 1:
		if !dealtHasJoker {
			return ClosedFormRequired
		}
	}
	return Exhaustive
}

// hold is a kept subset scheduled for scoring.
type hold struct {
	kept     poker.Hand
	strategy Strategy
}

// planHolds enumerates the 32 subsets of the dealt hand in canonical
// order and drops the ones the pruning rules rule out:
//   - the Joker is always kept;
//   - a paying hand is never broken into a losing partial hand;
//   - with a pair in hand at least two cards are kept.
func planHolds(dealt poker.Hand, prune bool) []hold {
	cards := dealt.Cards()
	hasJoker := dealt.HasJoker()
	dealtWins := poker.Classify(dealt).IsWin()
	hasPair := slices.Contains(poker.Profile(dealt), 2)

	holds := make([]hold, 0, 1<<len(cards))
	for mask := range 1 << len(cards) {
		var kept poker.Hand
		for i, c := range cards {
			if mask&(1<<i) != 0 {
				kept.AddCard(c)
			}
		}

		if prune {
			switch {
			case hasJoker && !kept.HasJoker():
				continue
			case dealtWins && !poker.Classify(kept).IsWin():
				continue
			case hasPair && kept.CountCards() < 2:
				continue
			}
		}
		holds = append(holds, hold{kept: kept, strategy: strategyFor(kept, hasJoker)})
	}
	return holds
}
