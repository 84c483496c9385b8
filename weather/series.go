package weather

import (
	"fmt"
	"math"
	"math/rand/v2"

	"weather-dashboard/models"
)

const (
	DefaultHours  = 12
	DefaultJitter = 2.0

	DefaultMinPct = 10
	DefaultMaxPct = 30
)

// DefaultConditionLabels are the categories of the mock distribution chart.
var DefaultConditionLabels = []string{"Clear", "Cloudy", "Rainy", "Windy"}

// RandomSource is the randomness the series generators draw from.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// NewSeededSource returns a reproducible RandomSource.
func NewSeededSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandomSource returns a RandomSource seeded from the runtime's entropy.
func NewRandomSource() RandomSource {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// GenerateHourly produces hours samples labelled 1..hours. Each temperature is
// drawn independently from base ± jitter and rounded to one decimal place.
// The series is illustrative and not a forecast.
func GenerateHourly(baseTemperatureC float64, hours int, jitter float64, rng RandomSource) ([]models.HourlySample, error) {
	if hours < 1 {
		return nil, fmt.Errorf("hours must be positive, got %d", hours)
	}
	if jitter < 0 || math.IsNaN(jitter) || math.IsInf(jitter, 0) {
		return nil, fmt.Errorf("jitter must be a finite non-negative number, got %v", jitter)
	}
	if rng == nil {
		return nil, fmt.Errorf("random source is nil")
	}

	samples := make([]models.HourlySample, hours)
	for i := range samples {
		offset := (rng.Float64()*2 - 1) * jitter
		samples[i] = models.HourlySample{
			Hour:         i + 1,
			TemperatureC: roundTenth(baseTemperatureC + offset),
		}
	}
	return samples, nil
}

// GenerateDistribution assigns each label a percentage drawn uniformly from
// [minPct, maxPct]. The percentages are not normalized and rarely add up to 100.
func GenerateDistribution(labels []string, minPct, maxPct int, rng RandomSource) ([]models.ConditionShare, error) {
	if minPct > maxPct {
		return nil, fmt.Errorf("minPct %d is greater than maxPct %d", minPct, maxPct)
	}
	if rng == nil {
		return nil, fmt.Errorf("random source is nil")
	}

	shares := make([]models.ConditionShare, 0, len(labels))
	for _, label := range labels {
		shares = append(shares, models.ConditionShare{
			Label:      label,
			Percentage: minPct + rng.IntN(maxPct-minPct+1),
		})
	}
	return shares, nil
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
