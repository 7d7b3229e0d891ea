package d3

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestEqualWithin(t *testing.T) {
	a := r3.Vec{X: 1, Y: 2, Z: 3}
	if !EqualWithin(a, r3.Vec{X: 1.0005, Y: 2, Z: 3}, 1e-3) {
		t.Error("within tolerance reported unequal")
	}
	if EqualWithin(a, r3.Vec{X: 1.1, Y: 2, Z: 3}, 1e-3) {
		t.Error("outside tolerance reported equal")
	}
}

func TestLerp(t *testing.T) {
	a, b := r3.Vec{X: 1}, r3.Vec{X: 3, Y: 2}
	if got := Lerp(a, b, 0); got != a {
		t.Errorf("t=0: got %v", got)
	}
	if got := Lerp(a, b, 0.5); got != (r3.Vec{X: 2, Y: 1}) {
		t.Errorf("t=0.5: got %v", got)
	}
}

func TestCentroid(t *testing.T) {
	if got := Centroid(nil); got != (r3.Vec{}) {
		t.Errorf("empty set: got %v", got)
	}
	set := Set{{X: 1}, {X: 3}, {Y: 2}, {Y: -2}}
	if got := Centroid(set); got != (r3.Vec{X: 1}) {
		t.Errorf("centroid: got %v", got)
	}
}

func TestUnitOrZero(t *testing.T) {
	if got := UnitOrZero(r3.Vec{X: 1e-15}, 1e-12); got != (r3.Vec{}) {
		t.Errorf("tiny vector: got %v, want zero", got)
	}
	got := UnitOrZero(r3.Vec{X: 3, Y: 4}, 1e-12)
	if d := r3.Norm(r3.Sub(got, r3.Vec{X: 0.6, Y: 0.8})); d > 1e-12 {
		t.Errorf("unit: got %v", got)
	}
}
