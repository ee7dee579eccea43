package draft

import (
	"math"
	"testing"
)

func TestVector2Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vector2
		want Vector2
	}{
		{"unit x", V2(1, 0), V2(1, 0)},
		{"3-4-5", V2(3, 4), V2(0.6, 0.8)},
		{"negative", V2(0, -2), V2(0, -1)},
		{"zero stays zero", V2(0, 0), V2(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Normalize()
			if !got.Approx(tt.want, 1e-12) {
				t.Errorf("%v.Normalize() = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestVector2Rotate(t *testing.T) {
	tests := []struct {
		name  string
		v     Vector2
		angle float64
		want  Vector2
	}{
		{"quarter turn", V2(1, 0), math.Pi / 2, V2(0, 1)},
		{"half turn", V2(1, 0), math.Pi, V2(-1, 0)},
		{"full turn", V2(2, 3), 2 * math.Pi, V2(2, 3)},
		{"negative quarter", V2(0, 1), -math.Pi / 2, V2(1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Rotate(tt.angle)
			if !got.Approx(tt.want, 1e-9) {
				t.Errorf("%v.Rotate(%v) = %v, want %v", tt.v, tt.angle, got, tt.want)
			}
		})
	}
}

func TestVector2Angle(t *testing.T) {
	tests := []struct {
		name string
		v    Vector2
		want float64
	}{
		{"east", V2(1, 0), 0},
		{"north", V2(0, 5), math.Pi / 2},
		{"west", V2(-3, 0), math.Pi},
		{"south normalizes into range", V2(0, -1), 3 * math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Angle()
			if !EqualWithin(got, tt.want, 1e-9) {
				t.Errorf("%v.Angle() = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestVector2Perp(t *testing.T) {
	v := V2(3, 1)
	p := v.Perp()
	if !IsZero(v.Dot(p)) {
		t.Errorf("%v.Perp() = %v, not perpendicular (dot %v)", v, p, v.Dot(p))
	}
	if v.Cross(p) <= 0 {
		t.Errorf("%v.Perp() = %v, not counter-clockwise", v, p)
	}
}

func TestVector2Arithmetic(t *testing.T) {
	a, b := V2(1, 2), V2(3, -4)
	if got := a.Add(b); got != V2(4, -2) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != V2(-2, 6) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Mul(2); got != V2(2, 4) {
		t.Errorf("Mul = %v", got)
	}
	if got := a.Neg(); got != V2(-1, -2) {
		t.Errorf("Neg = %v", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot = %v", got)
	}
	if got := a.Cross(b); got != -10 {
		t.Errorf("Cross = %v", got)
	}
	if got := V2(3, 4).Length(); got != 5 {
		t.Errorf("Length = %v", got)
	}
	if got := a.Distance(b); !EqualWithin(got, math.Sqrt(40), 1e-12) {
		t.Errorf("Distance = %v", got)
	}
}

func TestVector3Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vector3
		want Vector3
	}{
		{"unit z", V3(0, 0, 1), V3(0, 0, 1)},
		{"scaled axis", V3(0, 0, 7), V3(0, 0, 1)},
		{"diagonal", V3(1, 1, 1), V3(1, 1, 1).Mul(1 / math.Sqrt(3))},
		{"zero stays zero", V3(0, 0, 0), V3(0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Normalize()
			if !got.Approx(tt.want, 1e-12) {
				t.Errorf("%v.Normalize() = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestVector3Cross(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector3
		want Vector3
	}{
		{"x cross y", UnitX, UnitY, UnitZ},
		{"y cross z", UnitY, UnitZ, UnitX},
		{"z cross x", UnitZ, UnitX, UnitY},
		{"anti-commutes", UnitY, UnitX, UnitZ.Neg()},
		{"parallel is zero", V3(2, 0, 0), V3(5, 0, 0), V3(0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Cross(tt.b)
			if !got.Approx(tt.want, 1e-12) {
				t.Errorf("%v.Cross(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestVector3CrossOrthogonal(t *testing.T) {
	a, b := V3(1, 2, 3), V3(-2, 1, 4)
	c := a.Cross(b)
	if !IsZero(c.Dot(a)) || !IsZero(c.Dot(b)) {
		t.Errorf("cross product %v not orthogonal to operands", c)
	}
}

func TestVector3XY(t *testing.T) {
	if got := V3(3, -2, 9).XY(); got != V2(3, -2) {
		t.Errorf("XY() = %v, want (3,-2)", got)
	}
}

func TestVector3Arithmetic(t *testing.T) {
	a, b := V3(1, 2, 3), V3(4, -5, 6)
	if got := a.Add(b); got != V3(5, -3, 9) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != V3(-3, 7, -3) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Mul(-1); got != V3(-1, -2, -3) {
		t.Errorf("Mul = %v", got)
	}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot = %v", got)
	}
	if got := V3(2, 3, 6).Length(); got != 7 {
		t.Errorf("Length = %v", got)
	}
	if got := a.LengthSq(); got != 14 {
		t.Errorf("LengthSq = %v", got)
	}
}

func TestVector3IsZero(t *testing.T) {
	if !V3(1e-13, -1e-13, 0).IsZero() {
		t.Error("near-zero vector not reported zero")
	}
	if V3(0, 0, 1e-9).IsZero() {
		t.Error("non-zero vector reported zero")
	}
}
