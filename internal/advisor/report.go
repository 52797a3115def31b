package advisor

import (
	"encoding/json"
	"math/big"

	"github.com/lox/jokerpoker/internal/odds"
	"github.com/lox/jokerpoker/poker"
)

// HoldResult is the score of one kept subset.
type HoldResult struct {
	Kept     poker.Hand
	Strategy Strategy
	Tally    odds.Tally
}

// Cards returns the kept cards in canonical order.
func (h HoldResult) Cards() []poker.Card {
	return h.Kept.Cards()
}

// WinProbability is the exact probability of finishing with a paying hand.
func (h HoldResult) WinProbability() *big.Rat {
	return h.Tally.WinProbability()
}

// ExpectedPayout is the exact expected multiplier.
func (h HoldResult) ExpectedPayout() *big.Rat {
	return h.Tally.ExpectedPayout()
}

// MarshalJSON writes the kept cards, both scores as floats and as exact
// fractions, and the per-category counts.
func (h HoldResult) MarshalJSON() ([]byte, error) {
	prob, _ := h.WinProbability().Float64()
	ev, _ := h.ExpectedPayout().Float64()
	counts := make(map[string]int64, poker.NumCategories)
	for _, c := range poker.Categories() {
		if n := h.Tally.Counts[c]; n > 0 {
			counts[c.String()] = n
		}
	}
	return json.Marshal(struct {
		Kept                []poker.Card     `json:"kept"`
		Strategy            Strategy         `json:"strategy"`
		WinProbability      float64          `json:"win_probability"`
		ExpectedPayout      float64          `json:"expected_payout"`
		ExactWinProbability *big.Rat         `json:"exact_win_probability"`
		ExactExpectedPayout *big.Rat         `json:"exact_expected_payout"`
		Draws               int64            `json:"draws"`
		Estimated           bool             `json:"estimated,omitempty"`
		Counts              map[string]int64 `json:"counts"`
	}{
		Kept:                h.Cards(),
		Strategy:            h.Strategy,
		WinProbability:      prob,
		ExpectedPayout:      ev,
		ExactWinProbability: h.WinProbability(),
		ExactExpectedPayout: h.ExpectedPayout(),
		Draws:               h.Tally.Draws,
		Estimated:           h.Tally.Estimated,
		Counts:              counts,
	})
}

// Report is the outcome of evaluating one dealt hand.
type Report struct {
	Dealt    []poker.Card   `json:"dealt"`
	Category poker.Category `json:"category"`
	// Holds lists every scored subset in canonical order.
	Holds []HoldResult `json:"holds"`
	// BestProbability maximizes win probability, then expected payout.
	BestProbability HoldResult `json:"best_probability"`
	// BestExpectation maximizes expected payout, then win probability.
	BestExpectation HoldResult `json:"best_expectation"`

	byKept map[poker.Hand]int
}

func newReport(dealt []poker.Card, hand poker.Hand, holds []HoldResult) *Report {
	r := &Report{
		Dealt:    append([]poker.Card(nil), dealt...),
		Category: poker.Classify(hand),
		Holds:    holds,
		byKept:   make(map[poker.Hand]int, len(holds)),
	}
	for i, h := range holds {
		r.byKept[h.Kept] = i
	}
	r.BestProbability = best(holds, byProbability)
	r.BestExpectation = best(holds, byExpectation)
	return r
}

// Lookup returns the result for a kept subset, if it was scored.
func (r *Report) Lookup(kept poker.Hand) (HoldResult, bool) {
	i, ok := r.byKept[kept]
	if !ok {
		return HoldResult{}, false
	}
	return r.Holds[i], true
}

func byProbability(a, b HoldResult) int {
	if c := a.WinProbability().Cmp(b.WinProbability()); c != 0 {
		return c
	}
	return a.ExpectedPayout().Cmp(b.ExpectedPayout())
}

func byExpectation(a, b HoldResult) int {
	if c := a.ExpectedPayout().Cmp(b.ExpectedPayout()); c != 0 {
		return c
	}
	return a.WinProbability().Cmp(b.WinProbability())
}

// best returns the top hold under cmp, the earliest one on ties.
func best(holds []HoldResult, cmp func(a, b HoldResult) int) HoldResult {
	if len(holds) == 0 {
		return HoldResult{}
	}
	top := holds[0]
	for _, h := range holds[1:] {
		if cmp(h, top) > 0 {
			top = h
		}
	}
	return top
}
