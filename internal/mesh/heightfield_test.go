package mesh

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
	"testing"
)

// hashBuffer computes a SHA-256 hash over positions and indices.
func hashBuffer(b *Buffer) [32]byte {
	h := sha256.New()
	var scratch [4]byte
	for _, p := range b.Positions {
		for i := 0; i < 3; i++ {
			binary.LittleEndian.PutUint32(scratch[:], math.Float32bits(p[i]))
			h.Write(scratch[:])
		}
	}
	for _, idx := range b.Indices {
		binary.LittleEndian.PutUint32(scratch[:], idx)
		h.Write(scratch[:])
	}
	var result [32]byte
	copy(result[:], h.Sum(nil))
	return result
}

// planeNoise is a deterministic test stand-in for the coherent noise field.
type planeNoise struct{}

func (planeNoise) Eval2(x, y float64) float64 { return x + y }

func TestHeightfieldRejectsTooSmall(t *testing.T) {
	for _, size := range []int{-1, 0, 1} {
		if _, err := GenerateHeightfield(size, 0.2, nil); err == nil {
			t.Errorf("expected error for size %d, got nil", size)
		}
	}
}

func TestHeightfieldTriangleCount(t *testing.T) {
	for _, size := range []int{2, 3, 10, 25} {
		buf, err := GenerateHeightfield(size, 0.2, nil)
		if err != nil {
			t.Fatalf("size %d: %v", size, err)
		}
		want := 2 * (size - 1) * (size - 1)
		if got := buf.TriangleCount(); got != want {
			t.Errorf("size %d: expected %d triangles, got %d", size, want, got)
		}
	}
}

func TestHeightfieldIndexBounds(t *testing.T) {
	buf, err := GenerateHeightfield(16, 0.2, nil)
	if err != nil {
		t.Fatal(err)
	}
	for n, idx := range buf.Indices {
		if int(idx) >= buf.VertexCount() {
			t.Fatalf("index %d at position %d out of bounds (%d vertices)", idx, n, buf.VertexCount())
		}
	}
}

func TestHeightfieldDeterminism(t *testing.T) {
	var hashes [20][32]byte
	for i := range hashes {
		buf, err := GenerateHeightfield(32, 0.2, NewTerrainNoise(DefaultTerrainSeed))
		if err != nil {
			t.Fatal(err)
		}
		hashes[i] = hashBuffer(buf)
	}
	first := hashes[0]
	for i := 1; i < len(hashes); i++ {
		if hashes[i] != first {
			t.Errorf("generation not deterministic: hash[0] != hash[%d]", i)
		}
	}
}

func TestHeightfieldSeedChangesOutput(t *testing.T) {
	a, err := GenerateHeightfield(16, 0.2, NewTerrainNoise(42))
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateHeightfield(16, 0.2, NewTerrainNoise(43))
	if err != nil {
		t.Fatal(err)
	}
	if hashBuffer(a) == hashBuffer(b) {
		t.Error("different seeds produced identical terrain")
	}
}

func TestHeightfieldVertexLayout(t *testing.T) {
	// With the plane noise height = (x+z)*scale, so every vertex is fully
	// predictable. The first triangle of the first quad must be
	// {top-left, top-right, bottom-left} of the grid.
	buf, err := GenerateHeightfield(3, 1.0, planeNoise{})
	if err != nil {
		t.Fatal(err)
	}

	want := [][3]float32{
		{0, 0, 0}, // grid (0,0)
		{1, 1, 0}, // grid (1,0)
		{0, 1, 1}, // grid (0,1)
	}
	for i, w := range want {
		got := buf.Positions[i]
		if got[0] != w[0] || got[1] != w[1] || got[2] != w[2] {
			t.Errorf("vertex %d: expected %v, got %v", i, w, got)
		}
	}
}

func TestHeightfieldNormalsComputed(t *testing.T) {
	buf, err := GenerateHeightfield(8, 0.2, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(buf.Normals) != len(buf.Positions) {
		t.Fatalf("expected %d normals, got %d", len(buf.Positions), len(buf.Normals))
	}
	for i, n := range buf.Normals {
		if l := n.Len(); math.Abs(float64(l)-1) > 1e-5 {
			t.Fatalf("normal %d is not unit length: %v (len %f)", i, n, l)
		}
	}
}

func BenchmarkHeightfield100(b *testing.B) {
	noise := NewTerrainNoise(DefaultTerrainSeed)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := GenerateHeightfield(100, 0.2, noise); err != nil {
			b.Fatal(err)
		}
	}
}
