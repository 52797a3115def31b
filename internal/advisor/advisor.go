// Package advisor decides which cards of a dealt joker-poker hand to hold.
// Every kept subset is scored with the exact probability of finishing
// with a paying hand and the exact expected payout.
package advisor

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/jokerpoker/internal/odds"
	"github.com/lox/jokerpoker/internal/randutil"
	"github.com/lox/jokerpoker/poker"
)

// DefaultSamples is the number of sampled completions used when an
// exhaustive hold runs out of budget and Config.Samples is unset.
const DefaultSamples = 100_000

// Config holds configuration for an Advisor
type Config struct {
	// Workers bounds how many holds are scored in parallel (0 = GOMAXPROCS).
	Workers int
	// Budget limits the wall-clock time of one exhaustive hold. When it
	// runs out the hold is estimated by sampling. Zero means unbounded.
	Budget time.Duration
	// Samples is the number of sampled completions for an estimate.
	Samples int
	// Seed seeds the sampling RNG.
	Seed int64
	// DisablePruning scores all 32 subsets.
	DisablePruning bool

	Clock  quartz.Clock
	Logger *log.Logger
}

// Advisor scores the holds of dealt hands. It holds no per-hand state and
// is safe for concurrent use.
type Advisor struct {
	config Config
	clock  quartz.Clock
	logger *log.Logger
}

// New creates an Advisor, filling in defaults for unset fields.
func New(config Config) *Advisor {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Samples <= 0 {
		config.Samples = DefaultSamples
	}
	a := &Advisor{
		config: config,
		clock:  config.Clock,
		logger: config.Logger,
	}
	if a.clock == nil {
		a.clock = quartz.NewReal()
	}
	if a.logger == nil {
		a.logger = log.New(io.Discard)
	}
	return a
}

// Evaluate scores every candidate hold of a five-card dealt hand and
// picks the best by probability and by expected payout.
func (a *Advisor) Evaluate(ctx context.Context, dealt []poker.Card) (*Report, error) {
	hand, err := poker.ValidateHand(dealt, odds.HandSize)
	if err != nil {
		return nil, err
	}
	deck, err := poker.RemoveCards(poker.FullDeck(), dealt...)
	if err != nil {
		return nil, fmt.Errorf("build remaining deck: %w", err)
	}

	holds := planHolds(hand, !a.config.DisablePruning)
	a.logger.Debug("Planned holds", "dealt", hand, "holds", len(holds), "pruning", !a.config.DisablePruning)

	results := make([]HoldResult, len(holds))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.config.Workers)
	for i, h := range holds {
		g.Go(func() error {
			start := a.clock.Now()
			tally, err := a.score(gctx, h, deck, randutil.Derive(a.config.Seed, i))
			if err != nil {
				return fmt.Errorf("score hold [%s]: %w", h.kept, err)
			}
			results[i] = HoldResult{Kept: h.kept, Strategy: h.strategy, Tally: tally}
			a.logger.Debug("Scored hold",
				"kept", h.kept,
				"strategy", h.strategy,
				"draws", tally.Draws,
				"estimated", tally.Estimated,
				"elapsed", a.clock.Since(start))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return newReport(dealt, hand, results), nil
}

func (a *Advisor) score(ctx context.Context, h hold, deck poker.Hand, seed int64) (odds.Tally, error) {
	switch h.strategy {
	case ClosedForm:
		return odds.Count(deck)
	case ClosedFormRequired:
		return odds.CountRequired(deck, poker.Card(h.kept))
	default:
		return a.exhaustive(ctx, h.kept, deck, seed)
	}
}

// exhaustive enumerates every draw for kept. If the configured budget
// runs out first, the partial enumeration is discarded and the hold is
// estimated from Samples random draws instead.
func (a *Advisor) exhaustive(ctx context.Context, kept, deck poker.Hand, seed int64) (odds.Tally, error) {
	var deadline time.Time
	if a.config.Budget > 0 {
		deadline = a.clock.Now().Add(a.config.Budget)
	}

	expired := false
	tally, complete, err := odds.EnumerateWhile(kept, deck, func() bool {
		if ctx.Err() != nil {
			return false
		}
		if !deadline.IsZero() && !a.clock.Now().Before(deadline) {
			expired = true
			return false
		}
		return true
	})
	switch {
	case err != nil:
		return odds.Tally{}, err
	case complete:
		return tally, nil
	case !expired:
		return odds.Tally{}, ctx.Err()
	}

	a.logger.Warn("Exhaustive budget exceeded, sampling instead",
		"kept", kept,
		"budget", a.config.Budget,
		"enumerated", tally.Draws,
		"samples", a.config.Samples)
	return odds.Sample(kept, deck, a.config.Samples, randutil.New(seed))
}
