package odds

import (
	"math/big"

	"github.com/lox/jokerpoker/poker"
)

// Tally counts final hands per category over a set of equally likely
// completions.
type Tally struct {
	Counts [poker.NumCategories]int64 `json:"counts"`
	// Draws is the number of equally likely completions.
	Draws int64 `json:"draws"`
	// Estimated is set when the counts come from random sampling
	// instead of exact counting.
	Estimated bool `json:"estimated,omitempty"`
}

// Add records one completion of category c.
func (t *Tally) Add(c poker.Category) {
	t.Counts[c]++
	t.Draws++
}

// Merge adds the counts of o into t.
func (t *Tally) Merge(o Tally) {
	for i, n := range o.Counts {
		t.Counts[i] += n
	}
	t.Draws += o.Draws
	t.Estimated = t.Estimated || o.Estimated
}

// Wins returns the number of completions that pay.
func (t Tally) Wins() int64 {
	var wins int64
	for c, n := range t.Counts {
		if poker.Category(c).IsWin() {
			wins += n
		}
	}
	return wins
}

// Payout returns the total multiplier summed over every completion.
func (t Tally) Payout() int64 {
	var chips int64
	for c, n := range t.Counts {
		chips += n * poker.Category(c).Multiplier()
	}
	return chips
}

// WinProbability returns Wins/Draws as an exact fraction.
func (t Tally) WinProbability() *big.Rat {
	if t.Draws == 0 {
		return new(big.Rat)
	}
	return big.NewRat(t.Wins(), t.Draws)
}

// ExpectedPayout returns Payout/Draws as an exact fraction.
func (t Tally) ExpectedPayout() *big.Rat {
	if t.Draws == 0 {
		return new(big.Rat)
	}
	return big.NewRat(t.Payout(), t.Draws)
}

// Probability returns the fraction of completions ending in category c.
func (t Tally) Probability(c poker.Category) *big.Rat {
	if t.Draws == 0 {
		return new(big.Rat)
	}
	return big.NewRat(t.Counts[c], t.Draws)
}
