package mesh

import (
	"math"
	"math/rand"
	"testing"
)

func TestEllipsoidRejectsBadParams(t *testing.T) {
	cases := []struct {
		name string
		p    EllipsoidParams
	}{
		{"zero lon", EllipsoidParams{LonSegments: 0, LatSegments: 4, Elongation: 1}},
		{"zero lat", EllipsoidParams{LonSegments: 4, LatSegments: 0, Elongation: 1}},
		{"negative noise", EllipsoidParams{LonSegments: 4, LatSegments: 4, NoiseFactor: -0.1, Elongation: 1}},
		{"zero elongation", EllipsoidParams{LonSegments: 4, LatSegments: 4, Elongation: 0}},
	}
	for _, tc := range cases {
		if _, err := GenerateEllipsoid(tc.p, nil); err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
	}
}

func TestEllipsoidTriangleCount(t *testing.T) {
	for _, tc := range []struct{ lon, lat int }{{1, 1}, {4, 2}, {32, 16}, {7, 13}} {
		buf, err := GenerateEllipsoid(EllipsoidParams{
			LonSegments: tc.lon,
			LatSegments: tc.lat,
			NoiseFactor: 0.2,
			Elongation:  1.4,
		}, nil)
		if err != nil {
			t.Fatalf("%dx%d: %v", tc.lon, tc.lat, err)
		}
		want := 2 * tc.lon * tc.lat
		if got := buf.TriangleCount(); got != want {
			t.Errorf("%dx%d: expected %d triangles, got %d", tc.lon, tc.lat, want, got)
		}
	}
}

func TestEllipsoidIndexBounds(t *testing.T) {
	buf, err := GenerateEllipsoid(EllipsoidParams{
		LonSegments: 12,
		LatSegments: 8,
		NoiseFactor: 0.3,
		Elongation:  1.4,
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	for n, idx := range buf.Indices {
		if int(idx) >= buf.VertexCount() {
			t.Fatalf("index %d at position %d out of bounds (%d vertices)", idx, n, buf.VertexCount())
		}
	}
}

// TestEllipsoidPoleDamping verifies the perturbation shrinks to exactly zero
// at the poles: no matter how large the noise factor, pole vertices stay on
// the unit sphere.
func TestEllipsoidPoleDamping(t *testing.T) {
	buf, err := GenerateEllipsoid(EllipsoidParams{
		LonSegments: 8,
		LatSegments: 4,
		NoiseFactor: 10.0,
		Elongation:  1.0,
	}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}

	foundTop, foundBottom := false, false
	for _, p := range buf.Positions {
		if p.Y() == 1.0 {
			foundTop = true
			if p.X() != 0 || p.Z() != 0 {
				t.Errorf("top pole vertex off axis: %v", p)
			}
		}
		if p.Y() == -1.0 {
			foundBottom = true
			if r := p.Len(); math.Abs(float64(r)-1) > 1e-5 {
				t.Errorf("bottom pole vertex not on unit sphere: %v (radius %f)", p, r)
			}
		}
	}
	if !foundTop || !foundBottom {
		t.Errorf("expected pole vertices at y=±1 (top found: %v, bottom found: %v)", foundTop, foundBottom)
	}
}

func TestEllipsoidSeededDeterminism(t *testing.T) {
	p := EllipsoidParams{LonSegments: 16, LatSegments: 8, NoiseFactor: 0.2, Elongation: 1.4}

	a, err := GenerateEllipsoid(p, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateEllipsoid(p, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	if hashBuffer(a) != hashBuffer(b) {
		t.Error("identical seeds produced different potatoes")
	}

	c, err := GenerateEllipsoid(p, rand.New(rand.NewSource(8)))
	if err != nil {
		t.Fatal(err)
	}
	if hashBuffer(a) == hashBuffer(c) {
		t.Error("different seeds produced identical potatoes")
	}
}

// TestEllipsoidElongation verifies the x-axis scale: with no perturbation
// the widest x extent is the elongation factor.
func TestEllipsoidElongation(t *testing.T) {
	buf, err := GenerateEllipsoid(EllipsoidParams{
		LonSegments: 32,
		LatSegments: 16,
		NoiseFactor: 0,
		Elongation:  2.5,
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	var maxX float32
	for _, p := range buf.Positions {
		if p.X() > maxX {
			maxX = p.X()
		}
	}
	if math.Abs(float64(maxX)-2.5) > 1e-5 {
		t.Errorf("expected max x extent 2.5, got %f", maxX)
	}
}
