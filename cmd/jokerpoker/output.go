package main

import (
	"github.com/lox/jokerpoker/internal/fileutil"
	"github.com/lox/jokerpoker/internal/statistics"
	"github.com/lox/jokerpoker/poker"
)

type statisticsSummary struct {
	Seed               int64                  `json:"seed"`
	Hands              int                    `json:"hands"`
	Mean               float64                `json:"mean"`
	StdDev             float64                `json:"stddev"`
	CI95               [2]float64             `json:"ci95"`
	Median             float64                `json:"median"`
	MeanWinProbability float64                `json:"mean_win_probability"`
	EstimatedHands     int                    `json:"estimated_hands"`
	DealtCategories    map[poker.Category]int `json:"dealt_categories"`
	KeptSizes          [6]int                 `json:"kept_sizes"`
	MaxEV              float64                `json:"max_ev"`
	MaxSeed            int64                  `json:"max_seed"`
}

func writeStatistics(path string, seed int64, s *statistics.Statistics) error {
	low, high := s.ConfidenceInterval95()
	categories := make(map[poker.Category]int)
	for _, c := range poker.Categories() {
		if n := s.DealtCategories[c]; n > 0 {
			categories[c] = n
		}
	}
	return fileutil.WriteJSONAtomic(path, statisticsSummary{
		Seed:               seed,
		Hands:              s.Hands,
		Mean:               s.Mean(),
		StdDev:             s.StdDev(),
		CI95:               [2]float64{low, high},
		Median:             s.Median(),
		MeanWinProbability: s.MeanWinProbability(),
		EstimatedHands:     s.EstimatedHands,
		DealtCategories:    categories,
		KeptSizes:          s.KeptSizes,
		MaxEV:              s.MaxEV,
		MaxSeed:            s.MaxSeed,
	})
}
