package mesh

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// EllipsoidParams parametrizes the perturbed UV-sphere ("potato") generator.
type EllipsoidParams struct {
	LonSegments int     // longitude segments, >= 1
	LatSegments int     // latitude segments, >= 1
	NoiseFactor float64 // per-vertex perturbation magnitude, >= 0
	Elongation  float64 // x-axis scale, > 0
}

// GenerateEllipsoid builds a flat-shaded ellipsoid whose radius is randomly
// perturbed per vertex. The perturbation is damped by pow(1-|cos(theta)|, 0.5)
// so it shrinks to exactly zero at the poles; otherwise the duplicated pole
// vertices would each wander independently and spike.
//
// The mesh is intentionally non-deterministic: pass a seeded rng for
// reproducible potatoes, or nil for a time-seeded one.
func GenerateEllipsoid(p EllipsoidParams, rng *rand.Rand) (*Buffer, error) {
	if p.LonSegments < 1 || p.LatSegments < 1 {
		return nil, fmt.Errorf("ellipsoid: segments must be >= 1, got %dx%d", p.LonSegments, p.LatSegments)
	}
	if p.NoiseFactor < 0 {
		return nil, fmt.Errorf("ellipsoid: noise factor must be >= 0, got %g", p.NoiseFactor)
	}
	if p.Elongation <= 0 {
		return nil, fmt.Errorf("ellipsoid: elongation factor must be > 0, got %g", p.Elongation)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	positions := make([]mgl32.Vec3, 0, (p.LatSegments+1)*(p.LonSegments+1))
	for i := 0; i <= p.LatSegments; i++ {
		theta := float64(i) * math.Pi / float64(p.LatSegments)
		for j := 0; j <= p.LonSegments; j++ {
			phi := float64(j) * 2 * math.Pi / float64(p.LonSegments)

			x := math.Cos(phi) * math.Sin(theta) * p.Elongation
			y := math.Cos(theta)
			z := math.Sin(phi) * math.Sin(theta)

			damping := math.Pow(1-math.Abs(math.Cos(theta)), 0.5)
			perturb := (rng.Float64()*2 - 1) * p.NoiseFactor
			radius := 1.0 + perturb*damping

			positions = append(positions, mgl32.Vec3{
				float32(x * radius),
				float32(y * radius),
				float32(z * radius),
			})
		}
	}

	indices := make([]uint32, 0, 6*p.LatSegments*p.LonSegments)
	indices = gridIndices(indices, p.LatSegments, p.LonSegments, p.LonSegments+1)

	buf := &Buffer{Positions: positions, Indices: indices}
	buf.DuplicateVertices()
	buf.ComputeFlatNormals()
	return buf, nil
}
