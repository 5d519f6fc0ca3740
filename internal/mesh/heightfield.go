package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// GenerateHeightfield builds a flat-shaded terrain mesh from a coherent
// noise field. Vertex (x, z) of the size×size grid sits at height
// noise(x*scale, z*scale); vertices are emitted in row-major order (z outer,
// x inner) and each interior quad is split along the fixed diagonal
// {i, i+1, i+size}, {i+1, i+size+1, i+size}.
//
// If noise is nil the default seeded terrain noise is used. The result is
// fully deterministic for a fixed (size, scale) and noise source.
func GenerateHeightfield(size int, scale float64, noise Noise2D) (*Buffer, error) {
	if size < 2 {
		return nil, fmt.Errorf("heightfield: size must be >= 2, got %d", size)
	}
	if noise == nil {
		noise = NewTerrainNoise(DefaultTerrainSeed)
	}

	positions := make([]mgl32.Vec3, 0, size*size)
	for z := 0; z < size; z++ {
		for x := 0; x < size; x++ {
			height := noise.Eval2(float64(x)*scale, float64(z)*scale)
			positions = append(positions, mgl32.Vec3{float32(x), float32(height), float32(z)})
		}
	}

	indices := make([]uint32, 0, 6*(size-1)*(size-1))
	indices = gridIndices(indices, size-1, size-1, size)

	buf := &Buffer{Positions: positions, Indices: indices}
	buf.DuplicateVertices()
	buf.ComputeFlatNormals()
	return buf, nil
}
