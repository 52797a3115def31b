package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/jokerpoker/cmd/jokerpoker/shared"
	"github.com/lox/jokerpoker/internal/advisor"
	"github.com/lox/jokerpoker/internal/fileutil"
	"github.com/lox/jokerpoker/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	payoutStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

type AdviseCmd struct {
	Cards  []string    `arg:"" help:"Five dealt cards, e.g. 'As Ks Qs Js Jk' or AsKsQsJsJk"`
	All    bool        `short:"a" help:"List every scored hold"`
	Output string      `short:"o" type:"path" help:"Write the full report as JSON"`
	Engine EngineFlags `embed:""`
}

func (c *AdviseCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}
	dealt, err := parseCards(c.Cards)
	if err != nil {
		return err
	}
	adv, err := c.Engine.advisor(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := shared.SetupSignalHandler(logger)
	defer stop()

	report, err := adv.Evaluate(ctx, dealt)
	if err != nil {
		return err
	}

	printReport(report, c.All)

	if c.Output != "" {
		if err := fileutil.WriteJSONAtomic(c.Output, report); err != nil {
			return err
		}
		logger.Info("Wrote report", "path", c.Output, "holds", len(report.Holds))
	}
	return nil
}

func printReport(r *advisor.Report, all bool) {
	fmt.Printf("%s %s  %s\n\n",
		headerStyle.Render("Dealt:"),
		handStyle.Render(poker.NewHand(r.Dealt...).String()),
		categoryStyle.Render(fmt.Sprintf("%s (x%d)", r.Category, r.Category.Multiplier())))

	printBest("Best by probability:", r.BestProbability)
	printBest("Best by expected payout:", r.BestExpectation)

	if !all {
		return
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, headerStyle.Render("Hold")+"\tStrategy\tWin\tPayout\tDraws\t")
	for _, h := range r.Holds {
		estimated := ""
		if h.Tally.Estimated {
			estimated = " (est)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d%s\t\n",
			holdString(h),
			h.Strategy,
			formatPercent(h),
			formatPayout(h),
			h.Tally.Draws,
			estimated)
	}
	w.Flush()
}

func printBest(label string, h advisor.HoldResult) {
	fmt.Printf("%-26s %s  %s %s  %s %s\n",
		headerStyle.Render(label),
		handStyle.Render(holdString(h)),
		dimStyle.Render("win"),
		winStyle.Render(formatPercent(h)),
		dimStyle.Render("payout"),
		payoutStyle.Render(formatPayout(h)))
}

func holdString(h advisor.HoldResult) string {
	if h.Kept == 0 {
		return "(discard all)"
	}
	return h.Kept.String()
}

func formatPercent(h advisor.HoldResult) string {
	p, _ := h.WinProbability().Float64()
	return fmt.Sprintf("%.4f%%", p*100)
}

func formatPayout(h advisor.HoldResult) string {
	ev, _ := h.ExpectedPayout().Float64()
	return fmt.Sprintf("%.4f", ev)
}
