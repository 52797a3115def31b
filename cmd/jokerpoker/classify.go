package main

import (
	"fmt"

	"github.com/lox/jokerpoker/internal/odds"
	"github.com/lox/jokerpoker/poker"
)

type ClassifyCmd struct {
	Cards []string `arg:"" help:"Five cards, e.g. 'Jk 7c 7h 2d 9s'"`
	Wire  bool     `help:"Cards use the suit_rank capture encoding (1-based, Joker 99_99)"`
}

func (c *ClassifyCmd) Run(g *Globals) error {
	if _, _, err := g.load(); err != nil {
		return err
	}

	var cards []poker.Card
	if c.Wire {
		for _, s := range c.Cards {
			card, err := poker.ParseWireCard(s)
			if err != nil {
				return err
			}
			cards = append(cards, card)
		}
	} else {
		var err error
		if cards, err = parseCards(c.Cards); err != nil {
			return err
		}
	}

	hand, err := poker.ValidateHand(cards, odds.HandSize)
	if err != nil {
		return err
	}
	category := poker.Classify(hand)

	fmt.Printf("%s  %s\n",
		handStyle.Render(hand.String()),
		categoryStyle.Render(fmt.Sprintf("%s (x%d)", category, category.Multiplier())))
	return nil
}
