package utils

import (
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	if s.AverageUpdateTime() != 0 {
		t.Fatal("average before any generation must be zero")
	}

	s.Update(1, 100, 10*time.Millisecond)
	s.Update(2, 200, 30*time.Millisecond)

	if s.TotalGenerations != 2 {
		t.Fatalf("TotalGenerations = %d", s.TotalGenerations)
	}
	if s.TotalUpdateTime != 40*time.Millisecond {
		t.Fatalf("TotalUpdateTime = %v", s.TotalUpdateTime)
	}
	if s.AverageUpdateTime() != 20*time.Millisecond {
		t.Fatalf("AverageUpdateTime() = %v", s.AverageUpdateTime())
	}
	if s.LastUpdateTime != 30*time.Millisecond {
		t.Fatalf("LastUpdateTime = %v", s.LastUpdateTime)
	}
	if s.AveragePopulation != 110 {
		t.Fatalf("AveragePopulation = %v, want 110", s.AveragePopulation)
	}
}
