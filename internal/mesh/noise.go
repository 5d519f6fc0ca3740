package mesh

import opensimplex "github.com/ojrac/opensimplex-go"

// DefaultTerrainSeed is the fixed seed the demo terrain uses.
const DefaultTerrainSeed = 42

// Noise2D is a seeded coherent-noise field sampled by the heightfield
// generator. Implementations must be deterministic: the same coordinates
// always yield the same value.
type Noise2D interface {
	Eval2(x, y float64) float64
}

// NewTerrainNoise returns the default coherent-noise source for terrain,
// an OpenSimplex field with the given seed. Output is in [-1, 1].
func NewTerrainNoise(seed int64) Noise2D {
	return opensimplex.New(seed)
}
