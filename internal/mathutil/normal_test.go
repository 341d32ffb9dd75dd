package mathutil

import (
	"math"
	"testing"
)

func TestNormalCDF(t *testing.T) {
	tests := []struct {
		name     string
		z        float64
		expected float64
		delta    float64
	}{
		{"Zero", 0, 0.5, 0.0001},
		{"One sigma", 1, 0.8413, 0.0001},
		{"Minus one sigma", -1, 0.1587, 0.0001},
		{"Two sigma", 2, 0.9772, 0.0001},
		{"Small negative", -0.1, 0.4602, 0.0001},
		{"Deep left tail", -4, 0.0000317, 0.00001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalCDF(tt.z)
			if math.Abs(result-tt.expected) > tt.delta {
				t.Errorf("NormalCDF(%v) = %v, want %v", tt.z, result, tt.expected)
			}
		})
	}
}

func TestNormalInvCDF(t *testing.T) {
	tests := []struct {
		name     string
		p        float64
		expected float64
		delta    float64
	}{
		{"Median", 0.5, 0, 0.0001},
		{"One sigma", 0.8413, 1.0, 0.001},
		{"Minus one sigma", 0.1587, -1.0, 0.001},
		{"95th percentile", 0.95, 1.6449, 0.001},
		{"5th percentile", 0.05, -1.6449, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalInvCDF(tt.p)
			if math.Abs(result-tt.expected) > tt.delta {
				t.Errorf("NormalInvCDF(%v) = %v, want %v", tt.p, result, tt.expected)
			}
		})
	}
}

func TestNormalInvCDFClamps(t *testing.T) {
	if got := NormalInvCDF(0); got != -10 {
		t.Errorf("NormalInvCDF(0) = %v, want -10", got)
	}
	if got := NormalInvCDF(1); got != 10 {
		t.Errorf("NormalInvCDF(1) = %v, want 10", got)
	}
}

// The quantile function should invert the CDF across the full range.
func TestNormalRoundTrip(t *testing.T) {
	for p := 0.001; p < 1.0; p += 0.001 {
		z := NormalInvCDF(p)
		back := NormalCDF(z)
		if math.Abs(back-p) > 1e-6 {
			t.Fatalf("NormalCDF(NormalInvCDF(%v)) = %v, want %v", p, back, p)
		}
	}
}
