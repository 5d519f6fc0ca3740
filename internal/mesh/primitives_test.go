package mesh

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCylinderTriangleCount(t *testing.T) {
	for _, segments := range []int{3, 8, 32} {
		buf, err := GenerateCylinder(0.3, 4.0, segments)
		if err != nil {
			t.Fatalf("segments %d: %v", segments, err)
		}
		want := 4 * segments
		if got := buf.TriangleCount(); got != want {
			t.Errorf("segments %d: expected %d triangles, got %d", segments, want, got)
		}
	}
}

func TestCylinderRejectsBadParams(t *testing.T) {
	if _, err := GenerateCylinder(0.3, 4.0, 2); err == nil {
		t.Error("expected error for 2 segments, got nil")
	}
	if _, err := GenerateCylinder(0, 4.0, 8); err == nil {
		t.Error("expected error for zero radius, got nil")
	}
	if _, err := GenerateCylinder(0.3, -1, 8); err == nil {
		t.Error("expected error for negative half-height, got nil")
	}
}

func TestCylinderExtents(t *testing.T) {
	const radius, halfHeight = 0.1, 2.0
	buf, err := GenerateCylinder(radius, halfHeight, 16)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range buf.Positions {
		if p.Y() > halfHeight || p.Y() < -halfHeight {
			t.Fatalf("vertex %d outside height bounds: %v", i, p)
		}
		r := math.Hypot(float64(p.X()), float64(p.Z()))
		if r > radius+1e-5 {
			t.Fatalf("vertex %d outside radius: %v (r=%f)", i, p, r)
		}
	}
}

func TestCuboidTriangleCount(t *testing.T) {
	buf, err := GenerateCuboid(mgl32.Vec3{0.5, 0.5, 1.0})
	if err != nil {
		t.Fatal(err)
	}
	if got := buf.TriangleCount(); got != 12 {
		t.Errorf("expected 12 triangles, got %d", got)
	}
}

func TestCuboidNormalsAxisAligned(t *testing.T) {
	buf, err := GenerateCuboid(mgl32.Vec3{0.5, 0.5, 1.0})
	if err != nil {
		t.Fatal(err)
	}
	for i, n := range buf.Normals {
		// Every face normal must be a signed unit axis.
		axisSum := math.Abs(float64(n.X())) + math.Abs(float64(n.Y())) + math.Abs(float64(n.Z()))
		if math.Abs(axisSum-1) > 1e-5 {
			t.Errorf("normal %d not axis aligned: %v", i, n)
		}
	}
}

// TestCuboidNormalsOutward samples a couple of faces and checks the normal
// points away from the box center.
func TestCuboidNormalsOutward(t *testing.T) {
	buf, err := GenerateCuboid(mgl32.Vec3{1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	for tri := 0; tri < buf.TriangleCount(); tri++ {
		i0 := buf.Indices[tri*3]
		center := buf.Positions[i0].
			Add(buf.Positions[buf.Indices[tri*3+1]]).
			Add(buf.Positions[buf.Indices[tri*3+2]]).
			Mul(1.0 / 3.0)
		if center.Dot(buf.Normals[i0]) <= 0 {
			t.Errorf("triangle %d normal %v points inward (face center %v)", tri, buf.Normals[i0], center)
		}
	}
}

func TestCuboidRejectsBadParams(t *testing.T) {
	if _, err := GenerateCuboid(mgl32.Vec3{0, 1, 1}); err == nil {
		t.Error("expected error for zero half extent, got nil")
	}
}
