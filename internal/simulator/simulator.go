package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/jokerpoker/internal/advisor"
	"github.com/lox/jokerpoker/internal/odds"
	"github.com/lox/jokerpoker/internal/randutil"
	"github.com/lox/jokerpoker/internal/statistics"
	"github.com/lox/jokerpoker/poker"
)

// Config holds configuration for running simulations
type Config struct {
	Hands    int
	Seed     int64
	Timeout  time.Duration // Per-hand limit, zero for none
	Progress int           // Log progress every N hands, zero disables
	Advisor  *advisor.Advisor
	Logger   *log.Logger
}

// Simulator deals random hands and plays the advisor's best-EV hold
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Advisor == nil {
		config.Advisor = advisor.New(advisor.Config{Logger: config.Logger})
	}
	return &Simulator{config: config}
}

// Run deals the configured number of hands. When ctx is cancelled the
// hands completed so far are returned.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Hands <= 0 {
		return nil, fmt.Errorf("hands must be positive, got %d", s.config.Hands)
	}

	stats := &statistics.Statistics{}
	start := time.Now()
	for hand := range s.config.Hands {
		// Independent seed per hand so any deal can be replayed
		handSeed := randutil.Derive(s.config.Seed, hand)

		result, err := s.playHandWithTimeout(ctx, handSeed)
		if err != nil {
			if ctx.Err() != nil && stats.Hands > 0 {
				s.config.Logger.Warn("Simulation interrupted", "completed", stats.Hands)
				break
			}
			return nil, fmt.Errorf("hand %d (seed %d): %w", hand+1, handSeed, err)
		}
		stats.Add(result)

		if s.config.Progress > 0 && (hand+1)%s.config.Progress == 0 {
			s.config.Logger.Info("Progress",
				"hands", hand+1,
				"mean", fmt.Sprintf("%.4f", stats.Mean()),
				"elapsed", time.Since(start).Round(time.Millisecond))
		}
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

// playHandWithTimeout evaluates a single deal under the per-hand timeout
func (s *Simulator) playHandWithTimeout(ctx context.Context, handSeed int64) (statistics.HandResult, error) {
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	result, err := s.PlayHand(ctx, handSeed)
	if errors.Is(err, context.DeadlineExceeded) {
		return statistics.HandResult{}, fmt.Errorf("hand timed out after %v: %w", s.config.Timeout, err)
	}
	return result, err
}

// PlayHand deals five cards from a deck shuffled with handSeed and scores
// the advisor's best-EV hold
func (s *Simulator) PlayHand(ctx context.Context, handSeed int64) (statistics.HandResult, error) {
	dealt := poker.NewDeck(randutil.New(handSeed)).Deal(odds.HandSize)

	report, err := s.config.Advisor.Evaluate(ctx, dealt)
	if err != nil {
		return statistics.HandResult{}, err
	}

	best := report.BestExpectation
	ev, _ := best.ExpectedPayout().Float64()
	win, _ := best.WinProbability().Float64()

	s.config.Logger.Debug("Played hand",
		"seed", handSeed,
		"dealt", poker.NewHand(dealt...),
		"category", report.Category,
		"kept", best.Kept,
		"ev", ev)

	return statistics.HandResult{
		ExpectedPayout: ev,
		WinProbability: win,
		Dealt:          report.Category,
		Kept:           best.Kept.CountCards(),
		Estimated:      best.Tally.Estimated,
		Seed:           handSeed,
	}, nil
}

// RunSimulation is a convenience function for running a simulation with basic parameters
func RunSimulation(ctx context.Context, numHands int, seed int64, adv *advisor.Advisor, logger *log.Logger) (*statistics.Statistics, error) {
	return New(Config{
		Hands:   numHands,
		Seed:    seed,
		Advisor: adv,
		Logger:  logger,
	}).Run(ctx)
}
