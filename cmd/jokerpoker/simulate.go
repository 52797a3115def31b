package main

import (
	"fmt"
	"time"

	"github.com/lox/jokerpoker/cmd/jokerpoker/shared"
	"github.com/lox/jokerpoker/internal/simulator"
	"github.com/lox/jokerpoker/internal/statistics"
	"github.com/lox/jokerpoker/poker"
)

type SimulateCmd struct {
	Hands    int           `default:"1000" help:"Number of hands to deal"`
	DealSeed int64         `name:"deal-seed" default:"0" help:"Dealing seed (0 for random)"`
	Progress int           `default:"100" help:"Log progress every N hands (0 disables)"`
	Timeout  time.Duration `default:"0s" help:"Give up on a hand after this long (0 for no limit)"`
	Output   string        `short:"o" type:"path" help:"Write the statistics as JSON"`
	Engine   EngineFlags   `embed:""`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}
	adv, err := c.Engine.advisor(cfg, logger)
	if err != nil {
		return err
	}

	seed := c.DealSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("Starting simulation", "hands", c.Hands, "seed", seed)

	ctx, stop := shared.SetupSignalHandler(logger)
	defer stop()

	start := time.Now()
	stats, err := simulator.New(simulator.Config{
		Hands:    c.Hands,
		Seed:     seed,
		Timeout:  c.Timeout,
		Progress: c.Progress,
		Advisor:  adv,
		Logger:   logger,
	}).Run(ctx)
	if err != nil {
		return err
	}

	printStatistics(stats, time.Since(start))

	if c.Output != "" {
		if err := writeStatistics(c.Output, seed, stats); err != nil {
			return err
		}
		logger.Info("Wrote statistics", "path", c.Output)
	}
	return nil
}

func printStatistics(s *statistics.Statistics, elapsed time.Duration) {
	low, high := s.ConfidenceInterval95()
	fmt.Printf("%s %d hands in %s\n\n", headerStyle.Render("Simulated"), s.Hands, elapsed.Round(time.Millisecond))
	fmt.Printf("%-22s %s  %s\n", headerStyle.Render("Expected return:"),
		payoutStyle.Render(fmt.Sprintf("%.4f", s.Mean())),
		dimStyle.Render(fmt.Sprintf("95%% CI [%.4f, %.4f]  stddev %.4f", low, high, s.StdDev())))
	fmt.Printf("%-22s %s\n", headerStyle.Render("Win probability:"),
		winStyle.Render(fmt.Sprintf("%.4f%%", s.MeanWinProbability()*100)))
	fmt.Printf("%-22s p25 %.4f  median %.4f  p75 %.4f  max %.4f (seed %d)\n",
		headerStyle.Render("Distribution:"),
		s.Percentile(0.25), s.Median(), s.Percentile(0.75), s.MaxEV, s.MaxSeed)
	if s.EstimatedHands > 0 {
		fmt.Printf("%-22s %d\n", headerStyle.Render("Sampled holds:"), s.EstimatedHands)
	}

	fmt.Printf("\n%s\n", headerStyle.Render("Dealt categories"))
	for _, c := range poker.Categories() {
		if n := s.DealtCategories[c]; n > 0 {
			fmt.Printf("  %-22s %6d  %6.2f%%\n", categoryStyle.Render(c.String()), n, 100*float64(n)/float64(s.Hands))
		}
	}

	fmt.Printf("\n%s\n", headerStyle.Render("Cards held"))
	for kept, n := range s.KeptSizes {
		if n > 0 {
			fmt.Printf("  %d  %6d  %6.2f%%\n", kept, n, 100*float64(n)/float64(s.Hands))
		}
	}
}
