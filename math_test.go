package draft

import (
	"math"
	"testing"
)

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  float64
	}{
		{"zero", 0, 0},
		{"within range", math.Pi / 3, math.Pi / 3},
		{"full turn", 2 * math.Pi, 0},
		{"one and a quarter turns", 450 * DegToRad, math.Pi / 2},
		{"two turns", 4 * math.Pi, 0},
		{"negative quarter", -math.Pi / 2, 3 * math.Pi / 2},
		{"negative full turn", -2 * math.Pi, 0},
		{"negative beyond full turn", -5 * math.Pi / 2, 3 * math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAngle(tt.angle)
			if !EqualWithin(got, tt.want, 1e-9) {
				t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.angle, got, tt.want)
			}
			if got < 0 || got >= 2*math.Pi {
				t.Errorf("NormalizeAngle(%v) = %v, outside [0, 2π)", tt.angle, got)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want bool
	}{
		{"zero", 0, true},
		{"below epsilon", 1e-13, true},
		{"negative below epsilon", -1e-13, true},
		{"epsilon itself", Epsilon, false},
		{"above epsilon", 1e-11, false},
		{"one", 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsZero(tt.x); got != tt.want {
				t.Errorf("IsZero(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	if !Equal(1.0, 1.0+1e-13) {
		t.Error("Equal(1, 1+1e-13) = false, want true")
	}
	if Equal(1.0, 1.0+1e-9) {
		t.Error("Equal(1, 1+1e-9) = true, want false")
	}
}

func TestEqualWithin(t *testing.T) {
	if !EqualWithin(1.0, 1.05, 0.1) {
		t.Error("EqualWithin(1, 1.05, 0.1) = false, want true")
	}
	if EqualWithin(1.0, 1.2, 0.1) {
		t.Error("EqualWithin(1, 1.2, 0.1) = true, want false")
	}
}

func TestAngleConversionRoundTrip(t *testing.T) {
	for deg := -360.0; deg <= 720; deg += 30 {
		rad := deg * DegToRad
		if got := rad * RadToDeg; !EqualWithin(got, deg, 1e-9) {
			t.Errorf("%v deg -> %v rad -> %v deg", deg, rad, got)
		}
	}
}
