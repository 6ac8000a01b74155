package math3d

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
)

const sampleCount = 10000

func TestRandomInUnitSphere(t *testing.T) {
	cr := &countingRand{r: NewRand(10)}
	for range sampleCount {
		v := RandomInUnitSphere(cr)
		if v.LenSq() >= 1 {
			t.Fatalf("RandomInUnitSphere failed: length squared %f is >= 1", v.LenSq())
		}
	}

	// Three draws per candidate; the ball fills pi/6 of the cube.
	trials := float64(cr.calls) / 3
	rate := sampleCount / trials
	if math.Abs(rate-math.Pi/6) > 0.02 {
		t.Errorf("Acceptance rate %v too far from pi/6", rate)
	}
}

func TestRandomInUnitSphereRejects(t *testing.T) {
	// First candidate maps to (0.98, 0.98, 0.98), second to (0.5, 0, 0).
	r := &scriptedRand{vals: []float64{0.99, 0.99, 0.99, 0.75, 0.5, 0.5}}
	got := RandomInUnitSphere(r)
	if !vec3Equal(got, V3(0.5, 0, 0)) {
		t.Errorf("Expected the second candidate (0.5, 0, 0), got %+v", got)
	}
	if r.i != 6 {
		t.Errorf("Expected 6 draws, got %d", r.i)
	}
}

func TestRandomUnitVec3(t *testing.T) {
	r := NewRand(11)
	xs := make([]float64, sampleCount)
	ys := make([]float64, sampleCount)
	zs := make([]float64, sampleCount)

	for i := range sampleCount {
		v := RandomUnitVec3(r)
		if !almostEqual(v.Len(), 1) {
			t.Fatalf("RandomUnitVec3 failed: expected length 1, got %v", v.Len())
		}
		xs[i], ys[i], zs[i] = v.X, v.Y, v.Z
	}

	// Uniform on the sphere: each coordinate has mean 0 and variance 1/3.
	for _, c := range [][]float64{xs, ys, zs} {
		mean, variance := stat.MeanVariance(c, nil)
		if math.Abs(mean) > 0.03 {
			t.Errorf("Coordinate mean %v too far from 0", mean)
		}
		if math.Abs(variance-1.0/3) > 0.02 {
			t.Errorf("Coordinate variance %v too far from 1/3", variance)
		}
	}
}

func TestRandomUnitVec3RejectsDegenerate(t *testing.T) {
	// (0, 0, 0) is rejected rather than divided by zero.
	r := &scriptedRand{vals: []float64{0.5, 0.5, 0.5, 0.75, 0.5, 0.5}}
	got := RandomUnitVec3(r)
	if !vec3Equal(got, V3(1, 0, 0)) {
		t.Errorf("Expected (1, 0, 0), got %+v", got)
	}
}

func TestRandomOnHemisphere(t *testing.T) {
	r := NewRand(12)
	normal := V3(1, 2, -3).Normalize()
	for range sampleCount {
		v := RandomOnHemisphere(r, normal)
		if v.Dot(normal) < 0 {
			t.Fatalf("RandomOnHemisphere failed: %+v points away from %+v", v, normal)
		}
		if !almostEqual(v.Len(), 1) {
			t.Fatalf("RandomOnHemisphere failed: expected length 1, got %v", v.Len())
		}
	}

	flipped := RandomOnHemisphere(&scriptedRand{vals: []float64{0.75, 0.5, 0.5}}, Left3())
	if !vec3Equal(flipped, Left3()) {
		t.Errorf("Expected the sample to be flipped onto %+v, got %+v", Left3(), flipped)
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	cr := &countingRand{r: NewRand(13)}
	for range sampleCount {
		v := RandomInUnitDisk(cr)
		if v.Z != 0 {
			t.Fatalf("RandomInUnitDisk failed: Z should be 0, got %f", v.Z)
		}
		if v.LenSq() >= 1 {
			t.Fatalf("RandomInUnitDisk failed: length squared %f is >= 1", v.LenSq())
		}
	}

	// Two draws per candidate; the disk fills pi/4 of the square.
	trials := float64(cr.calls) / 2
	rate := sampleCount / trials
	if math.Abs(rate-math.Pi/4) > 0.02 {
		t.Errorf("Acceptance rate %v too far from pi/4", rate)
	}
}

func TestRandomUnitVec2IsCubeBiased(t *testing.T) {
	r := NewRand(14)
	for range sampleCount {
		v := RandomUnitVec2(r)
		if !almostEqual(v.Len(), 1) {
			t.Fatalf("RandomUnitVec2 failed: expected length 1, got %v", v.Len())
		}
		if v.X < 0 || v.Y < 0 {
			t.Fatalf("RandomUnitVec2 should stay in the first quadrant, got %+v", v)
		}
	}
}

func TestRandomUnitVec4IsCubeBiased(t *testing.T) {
	r := NewRand(15)
	for range sampleCount {
		v := RandomUnitVec4(r)
		if !almostEqual(v.Len(), 1) {
			t.Fatalf("RandomUnitVec4 failed: expected length 1, got %v", v.Len())
		}
		if v.X < 0 || v.Y < 0 || v.Z < 0 || v.W < 0 {
			t.Fatalf("RandomUnitVec4 should stay in the positive orthant, got %+v", v)
		}
	}
}

func TestSamplersAreReproducible(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for range 100 {
		if RandomInUnitSphere(a) != RandomInUnitSphere(b) {
			t.Fatal("Same seed should give the same samples")
		}
	}
}

func TestDefaultRand(t *testing.T) {
	r := DefaultRand()
	unit := NewInterval(0, 1)
	for range 100 {
		v := RandomVec3(r)
		if !unit.Contains(v.X) || !unit.Contains(v.Y) || !unit.Contains(v.Z) {
			t.Fatalf("RandomVec3 out of [0, 1]: %+v", v)
		}
	}
}
