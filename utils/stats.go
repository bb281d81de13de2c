package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	TotalUpdateTime      time.Duration
	LastUpdateTime       time.Duration
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one completed generation and how long its update took
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.LastUpdateTime = duration
	s.TotalUpdateTime += duration
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// AverageUpdateTime returns the mean update time, zero before any generation
func (s *Stats) AverageUpdateTime() time.Duration {
	if s.TotalGenerations == 0 {
		return 0
	}
	return s.TotalUpdateTime / time.Duration(s.TotalGenerations)
}
