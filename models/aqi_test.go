package models

import (
	"math/rand/v2"
	"sync"
	"testing"
)

// TestTierFor tests classification at every tier boundary.
func TestTierFor(t *testing.T) {
	tests := []struct {
		value     int
		wantLevel string
		wantColor ColorTag
	}{
		{0, "Good", ColorGood},
		{50, "Good", ColorGood},
		{51, "Moderate", ColorModerate},
		{100, "Moderate", ColorModerate},
		{101, "Unhealthy for Sensitive Groups", ColorSensitive},
		{150, "Unhealthy for Sensitive Groups", ColorSensitive},
		{151, "Unhealthy", ColorUnhealthy},
		{200, "Unhealthy", ColorUnhealthy},
		{201, "Very Unhealthy", ColorVeryUnhealthy},
		{300, "Very Unhealthy", ColorVeryUnhealthy},
		{301, "Hazardous", ColorHazardous},
		{500, "Hazardous", ColorHazardous},
		{501, "Unknown", ColorNone},
		{-1, "Unknown", ColorNone},
	}

	for _, tt := range tests {
		got := TierFor(tt.value)
		if got.Level != tt.wantLevel || got.Color != tt.wantColor {
			t.Errorf("TierFor(%d) = %s/%q, want %s/%q", tt.value, got.Level, got.Color, tt.wantLevel, tt.wantColor)
		}
	}
}

// TestTiersCoverRange verifies the tiers are disjoint and leave no gap over [0, 500].
func TestTiersCoverRange(t *testing.T) {
	for v := 0; v <= 500; v++ {
		matches := 0
		for _, tier := range AQITiers {
			if tier.Contains(v) {
				matches++
			}
		}
		if matches != 1 {
			t.Fatalf("value %d matched %d tiers, want exactly 1", v, matches)
		}
	}
}

// TestTierStatus checks the status line format.
func TestTierStatus(t *testing.T) {
	if got := TierFor(42).Status(); got != "Good - Air quality is satisfactory" {
		t.Errorf("status = %q", got)
	}
	if got := UnknownTier.Status(); got != "Unknown - No data available" {
		t.Errorf("unknown status = %q", got)
	}
}

// TestSamplerRange verifies draws stay inside [0, MockAQIMax).
func TestSamplerRange(t *testing.T) {
	s := NewSampler(rand.NewPCG(1, 2))
	for i := 0; i < 5000; i++ {
		v := s.Draw()
		if v < 0 || v >= MockAQIMax {
			t.Fatalf("Draw() = %d, outside [0, %d)", v, MockAQIMax)
		}
		if TierFor(v).Color == ColorHazardous {
			t.Fatalf("Draw() = %d landed in the Hazardous tier", v)
		}
	}
}

// TestSamplerDeterministic verifies a seeded source gives a repeatable sequence.
func TestSamplerDeterministic(t *testing.T) {
	a := NewSampler(rand.NewPCG(7, 9))
	b := NewSampler(rand.NewPCG(7, 9))
	for i := 0; i < 20; i++ {
		if x, y := a.Draw(), b.Draw(); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

// TestSamplerConcurrent exercises the sampler from many goroutines (run with -race).
func TestSamplerConcurrent(t *testing.T) {
	s := NewSampler(nil)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				_ = s.Draw()
			}
		}()
	}
	wg.Wait()
}
