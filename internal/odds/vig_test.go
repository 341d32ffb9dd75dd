package odds

import (
	"math"
	"testing"
)

func TestRemoveVig(t *testing.T) {
	tests := []struct {
		name      string
		impliedA  float64
		impliedB  float64
		expectedA float64
		expectedB float64
	}{
		{"Symmetric juice", 0.5238, 0.5238, 0.5, 0.5},
		{"Asymmetric market", 0.6, 0.45, 0.5714, 0.4286},
		{"Already fair", 0.7, 0.3, 0.7, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := RemoveVig(tt.impliedA, tt.impliedB)
			if math.Abs(a-tt.expectedA) > 0.001 || math.Abs(b-tt.expectedB) > 0.001 {
				t.Errorf("RemoveVig(%v, %v) = (%v, %v), want (%v, %v)",
					tt.impliedA, tt.impliedB, a, b, tt.expectedA, tt.expectedB)
			}
			if math.Abs(a+b-1.0) > 1e-9 {
				t.Errorf("vig-free probabilities sum to %v, want 1", a+b)
			}
		})
	}
}

func TestRemoveVigInvalid(t *testing.T) {
	if a, b := RemoveVig(0, 0.5); a != 0 || b != 0 {
		t.Errorf("RemoveVig(0, 0.5) = (%v, %v), want (0, 0)", a, b)
	}
	if a, b := RemoveVig(0.5, -0.1); a != 0 || b != 0 {
		t.Errorf("RemoveVig(0.5, -0.1) = (%v, %v), want (0, 0)", a, b)
	}
}

func TestRemoveVigFromAmerican(t *testing.T) {
	// Standard -110/-110 two-way market devigs to a coin flip.
	over, under := RemoveVigFromAmerican(-110, -110)
	if math.Abs(over-0.5) > 0.001 || math.Abs(under-0.5) > 0.001 {
		t.Errorf("RemoveVigFromAmerican(-110, -110) = (%v, %v), want (0.5, 0.5)", over, under)
	}

	// Malformed side zeroes the result.
	if a, b := RemoveVigFromAmerican(0, -110); a != 0 || b != 0 {
		t.Errorf("RemoveVigFromAmerican(0, -110) = (%v, %v), want (0, 0)", a, b)
	}
}
