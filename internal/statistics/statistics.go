package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/jokerpoker/poker"
)

// HandResult represents the advice played on a single dealt hand
type HandResult struct {
	ExpectedPayout float64        // Expected multiplier of the hold played
	WinProbability float64        // Probability the hold finishes paying
	Dealt          poker.Category // Category of the hand as dealt
	Kept           int            // Number of cards held (0-5)
	Estimated      bool           // Hold was scored by sampling
	Seed           int64          // RNG seed for this hand (for replay)
}

// Statistics tracks the expected return of simulated deals
type Statistics struct {
	Hands  int
	SumEV  float64
	SumEV2 float64   // Sum of squares for variance calculation
	Values []float64 // Store all values for median/percentile calculation

	SumWinProbability float64
	EstimatedHands    int

	// Distribution of dealt categories and hold sizes
	DealtCategories [poker.NumCategories]int
	KeptSizes       [6]int

	MaxEV   float64
	MaxSeed int64 // Seed of the deal with the highest EV
}

// Mean returns the expected payout per hand
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumEV / float64(s.Hands)
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumEV2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	se := s.StdError()
	margin := 1.96 * se // 95% confidence
	return mean - margin, mean + margin
}

// MeanWinProbability returns the average probability of finishing paid
func (s *Statistics) MeanWinProbability() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumWinProbability / float64(s.Hands)
}

// Add incorporates a new hand result into the statistics
func (s *Statistics) Add(result HandResult) {
	ev := result.ExpectedPayout
	s.Hands++
	s.SumEV += ev
	s.SumEV2 += ev * ev
	s.Values = append(s.Values, ev)
	s.SumWinProbability += result.WinProbability

	if result.Estimated {
		s.EstimatedHands++
	}
	if int(result.Dealt) < poker.NumCategories {
		s.DealtCategories[result.Dealt]++
	}
	if result.Kept >= 0 && result.Kept < len(s.KeptSizes) {
		s.KeptSizes[result.Kept]++
	}

	if s.Hands == 1 || ev > s.MaxEV {
		s.MaxEV = ev
		s.MaxSeed = result.Seed
	}
}

// Median returns the median value of all results
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate performs consistency checks on the collected data
func (s *Statistics) Validate() error {
	if s.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", s.Hands)
	}

	if len(s.Values) != s.Hands {
		return fmt.Errorf("values array length (%d) does not match hands count (%d)",
			len(s.Values), s.Hands)
	}

	totalDealt := 0
	for _, n := range s.DealtCategories {
		totalDealt += n
	}
	if totalDealt != s.Hands {
		return fmt.Errorf("dealt categories total (%d) does not match total hands (%d)", totalDealt, s.Hands)
	}

	totalKept := 0
	for _, n := range s.KeptSizes {
		totalKept += n
	}
	if totalKept != s.Hands {
		return fmt.Errorf("hold sizes total (%d) does not match total hands (%d)", totalKept, s.Hands)
	}

	if s.EstimatedHands > s.Hands {
		return fmt.Errorf("estimated hands (%d) exceeds total hands (%d)", s.EstimatedHands, s.Hands)
	}

	return nil
}
