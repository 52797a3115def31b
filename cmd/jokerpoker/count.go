package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/lox/jokerpoker/internal/odds"
	"github.com/lox/jokerpoker/poker"
)

type CountCmd struct {
	Hold    string   `help:"Card that must appear in every hand, e.g. Ks"`
	Exclude []string `short:"x" help:"Cards removed from the deck before counting"`
	Verify  bool     `help:"Cross-check the count by enumerating every draw"`
}

func (c *CountCmd) Run(g *Globals) error {
	_, logger, err := g.load()
	if err != nil {
		return err
	}

	excluded, err := parseCards(c.Exclude)
	if err != nil {
		return err
	}
	deck, err := poker.RemoveCards(poker.FullDeck(), excluded...)
	if err != nil {
		return err
	}

	var kept poker.Hand
	start := time.Now()
	var tally odds.Tally
	if c.Hold != "" {
		required, err := poker.ParseCard(c.Hold)
		if err != nil {
			return err
		}
		if required.IsJoker() {
			return fmt.Errorf("hold %s: %w", required, odds.ErrJokerRequired)
		}
		deck, err = poker.RemoveCards(deck, required)
		if err != nil {
			return err
		}
		kept = poker.NewHand(required)
		tally, err = odds.CountRequired(deck, required)
		if err != nil {
			return err
		}
	} else {
		tally, err = odds.Count(deck)
		if err != nil {
			return err
		}
	}
	logger.Debug("Counted outcomes", "deck", deck.CountCards(), "draws", tally.Draws, "elapsed", time.Since(start))

	if c.Verify {
		start = time.Now()
		brute, err := odds.Enumerate(kept, deck)
		if err != nil {
			return err
		}
		if brute != tally {
			return fmt.Errorf("closed-form count disagrees with enumeration: %v != %v", tally.Counts, brute.Counts)
		}
		logger.Info("Enumeration agrees", "draws", brute.Draws, "elapsed", time.Since(start))
	}

	printTally(tally)
	return nil
}

func printTally(t odds.Tally) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Category\tMultiplier\tHands\tProbability\t")
	for _, c := range poker.Categories() {
		p, _ := t.Probability(c).Float64()
		fmt.Fprintf(w, "%s\tx%d\t%d\t%.6f%%\t\n", c, c.Multiplier(), t.Counts[c], p*100)
	}
	w.Flush()

	win, _ := t.WinProbability().Float64()
	ev, _ := t.ExpectedPayout().Float64()
	fmt.Printf("\n%s %d  %s %s  %s %s\n",
		headerStyle.Render("Draws:"), t.Draws,
		headerStyle.Render("Win:"), winStyle.Render(fmt.Sprintf("%.4f%%", win*100)),
		headerStyle.Render("Payout:"), payoutStyle.Render(fmt.Sprintf("%.4f", ev)))
}
