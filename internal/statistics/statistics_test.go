package statistics

import (
	"math"
	"strings"
	"testing"

	"github.com/lox/jokerpoker/poker"
)

func TestStatistics_Empty(t *testing.T) {
	stats := &Statistics{}

	if stats.Mean() != 0 {
		t.Errorf("Expected mean of 0 for empty stats, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for empty stats, got %f", stats.Variance())
	}
	if stats.StdError() != 0 {
		t.Errorf("Expected stderr of 0 for empty stats, got %f", stats.StdError())
	}
	if stats.Median() != 0 {
		t.Errorf("Expected median of 0 for empty stats, got %f", stats.Median())
	}
	if stats.MeanWinProbability() != 0 {
		t.Errorf("Expected win probability of 0 for empty stats, got %f", stats.MeanWinProbability())
	}
}

func TestStatistics_SingleValue(t *testing.T) {
	stats := &Statistics{}
	stats.Add(HandResult{
		ExpectedPayout: 2.5,
		WinProbability: 0.75,
		Dealt:          poker.TwoPair,
		Kept:           4,
		Seed:           12345,
	})

	if stats.Hands != 1 {
		t.Errorf("Expected 1 hand, got %d", stats.Hands)
	}
	if stats.Mean() != 2.5 {
		t.Errorf("Expected mean of 2.5, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for single value, got %f", stats.Variance())
	}
	if stats.DealtCategories[poker.TwoPair] != 1 {
		t.Errorf("Expected one dealt two pair, got %d", stats.DealtCategories[poker.TwoPair])
	}
	if stats.KeptSizes[4] != 1 {
		t.Errorf("Expected one four-card hold, got %d", stats.KeptSizes[4])
	}
	if stats.MaxSeed != 12345 {
		t.Errorf("Expected max seed 12345, got %d", stats.MaxSeed)
	}
}

func TestStatistics_MultipleValues(t *testing.T) {
	stats := &Statistics{}

	results := []HandResult{
		{ExpectedPayout: 1.0, WinProbability: 1, Dealt: poker.ThreeOfAKind, Kept: 3, Seed: 1},
		{ExpectedPayout: 0.2, WinProbability: 0.1, Dealt: poker.Lose, Kept: 0, Seed: 2, Estimated: true},
		{ExpectedPayout: 3.0, WinProbability: 1, Dealt: poker.Straight, Kept: 5, Seed: 3},
		{ExpectedPayout: 0.5, WinProbability: 0.3, Dealt: poker.Lose, Kept: 2, Seed: 4},
		{ExpectedPayout: 0.4, WinProbability: 0.2, Dealt: poker.Lose, Kept: 1, Seed: 5},
	}
	for _, result := range results {
		stats.Add(result)
	}

	expectedMean := (1.0 + 0.2 + 3.0 + 0.5 + 0.4) / 5.0
	if math.Abs(stats.Mean()-expectedMean) > 1e-9 {
		t.Errorf("Expected mean of %f, got %f", expectedMean, stats.Mean())
	}

	// Sorted values: 0.2, 0.4, 0.5, 1.0, 3.0
	if stats.Median() != 0.5 {
		t.Errorf("Expected median of 0.5, got %f", stats.Median())
	}
	if stats.MaxEV != 3.0 || stats.MaxSeed != 3 {
		t.Errorf("Expected max EV 3.0 from seed 3, got %f from %d", stats.MaxEV, stats.MaxSeed)
	}
	if stats.EstimatedHands != 1 {
		t.Errorf("Expected 1 estimated hand, got %d", stats.EstimatedHands)
	}
	if stats.DealtCategories[poker.Lose] != 3 {
		t.Errorf("Expected 3 losing deals, got %d", stats.DealtCategories[poker.Lose])
	}
	if math.Abs(stats.MeanWinProbability()-0.52) > 1e-9 {
		t.Errorf("Expected mean win probability 0.52, got %f", stats.MeanWinProbability())
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Expected valid stats, got %v", err)
	}
}

func TestStatistics_Percentiles(t *testing.T) {
	stats := &Statistics{}
	for i := 1; i <= 5; i++ {
		stats.Add(HandResult{ExpectedPayout: float64(i)})
	}

	tests := []struct {
		percentile float64
		expected   float64
	}{
		{0.0, 1.0},
		{0.25, 2.0},
		{0.5, 3.0},
		{0.75, 4.0},
		{1.0, 5.0},
	}

	for _, test := range tests {
		result := stats.Percentile(test.percentile)
		if math.Abs(result-test.expected) > 1e-9 {
			t.Errorf("Percentile %.2f: expected %f, got %f", test.percentile, test.expected, result)
		}
	}
}

func TestStatistics_Variance(t *testing.T) {
	stats := &Statistics{}

	// [1, 3, 5] has sample variance 4
	for _, v := range []float64{1, 3, 5} {
		stats.Add(HandResult{ExpectedPayout: v})
	}

	if math.Abs(stats.Variance()-4.0) > 1e-9 {
		t.Errorf("Expected variance of 4, got %f", stats.Variance())
	}
	if math.Abs(stats.StdDev()-2.0) > 1e-9 {
		t.Errorf("Expected stddev of 2, got %f", stats.StdDev())
	}

	low, high := stats.ConfidenceInterval95()
	if math.Abs((low+high)/2-stats.Mean()) > 1e-9 {
		t.Errorf("Confidence interval not symmetric around mean. Low: %f, High: %f", low, high)
	}
	if high-low <= 0 {
		t.Errorf("Confidence interval should be positive width, got %f", high-low)
	}
}

func TestStatistics_Validate(t *testing.T) {
	tests := []struct {
		name  string
		stats Statistics
		want  string
	}{
		{
			name:  "no hands",
			stats: Statistics{},
			want:  "invalid hands count",
		},
		{
			name:  "values mismatch",
			stats: Statistics{Hands: 2, Values: []float64{1}},
			want:  "values array length",
		},
		{
			name: "dealt mismatch",
			stats: Statistics{
				Hands:  1,
				Values: []float64{1},
			},
			want: "dealt categories total",
		},
		{
			name: "kept mismatch",
			stats: Statistics{
				Hands:           1,
				Values:          []float64{1},
				DealtCategories: [poker.NumCategories]int{1},
			},
			want: "hold sizes total",
		},
		{
			name: "too many estimates",
			stats: Statistics{
				Hands:           1,
				Values:          []float64{1},
				DealtCategories: [poker.NumCategories]int{1},
				KeptSizes:       [6]int{1},
				EstimatedHands:  2,
			},
			want: "exceeds total hands",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.stats.Validate()
			if err == nil {
				t.Fatal("Expected validation to fail")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got: %v", tt.want, err)
			}
		})
	}
}
