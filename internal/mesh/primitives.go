package mesh

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// GenerateCylinder builds a flat-shaded cylinder of the given radius and
// half-height, centered at the origin with its axis along Y. The side wall
// has two triangles per segment and each cap is a fan around a center
// vertex, so the mesh has 4*segments triangles.
func GenerateCylinder(radius, halfHeight float32, segments int) (*Buffer, error) {
	if segments < 3 {
		return nil, fmt.Errorf("cylinder: need at least 3 segments, got %d", segments)
	}
	if radius <= 0 || halfHeight <= 0 {
		return nil, fmt.Errorf("cylinder: radius and half-height must be > 0, got %g, %g", radius, halfHeight)
	}

	// Ring vertices: top ring then bottom ring, one extra column so the
	// seam closes with the same index arithmetic as the grids use.
	stride := segments + 1
	positions := make([]mgl32.Vec3, 0, 2*stride+2)
	for _, y := range []float32{halfHeight, -halfHeight} {
		for s := 0; s <= segments; s++ {
			phi := float64(s) * 2 * math.Pi / float64(segments)
			positions = append(positions, mgl32.Vec3{
				radius * float32(math.Cos(phi)),
				y,
				radius * float32(math.Sin(phi)),
			})
		}
	}
	topCenter := uint32(len(positions))
	positions = append(positions, mgl32.Vec3{0, halfHeight, 0})
	bottomCenter := uint32(len(positions))
	positions = append(positions, mgl32.Vec3{0, -halfHeight, 0})

	indices := make([]uint32, 0, 12*segments)
	indices = gridIndices(indices, 1, segments, stride)
	for s := 0; s < segments; s++ {
		top := uint32(s)
		bottom := uint32(stride + s)
		indices = append(indices, topCenter, top+1, top)
		indices = append(indices, bottomCenter, bottom, bottom+1)
	}

	buf := &Buffer{Positions: positions, Indices: indices}
	buf.DuplicateVertices()
	buf.ComputeFlatNormals()
	return buf, nil
}

// GenerateCuboid builds a box from its half extents, centered at the origin.
// Twelve triangles, flat normals per face.
func GenerateCuboid(halfSize mgl32.Vec3) (*Buffer, error) {
	if halfSize.X() <= 0 || halfSize.Y() <= 0 || halfSize.Z() <= 0 {
		return nil, fmt.Errorf("cuboid: half extents must be > 0, got %v", halfSize)
	}

	hx, hy, hz := halfSize.X(), halfSize.Y(), halfSize.Z()
	positions := []mgl32.Vec3{
		{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {-hx, hy, -hz}, // back
		{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz}, // front
	}
	indices := []uint32{
		0, 2, 1, 0, 3, 2, // back (-Z)
		4, 5, 6, 4, 6, 7, // front (+Z)
		0, 4, 7, 0, 7, 3, // left (-X)
		1, 6, 5, 1, 2, 6, // right (+X)
		3, 7, 6, 3, 6, 2, // top (+Y)
		0, 1, 5, 0, 5, 4, // bottom (-Y)
	}

	buf := &Buffer{Positions: positions, Indices: indices}
	buf.DuplicateVertices()
	buf.ComputeFlatNormals()
	return buf, nil
}
