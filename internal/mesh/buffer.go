// Package mesh provides procedural triangle-mesh generators and the shared
// duplication/flat-normal pipeline they feed.
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/rltvty/miniature-potato/internal/logger"
)

// degenerateAreaEps is the squared-length threshold below which a face
// cross product is treated as zero-area.
const degenerateAreaEps = 1e-12

// Buffer holds triangle geometry ready for upload by the host.
//
// Positions are emitted in a semantically meaningful order (row-major for
// grids, latitude/longitude order for spheres) because the index arithmetic
// depends on it. Normals are only present after ComputeFlatNormals and have
// the same length as Positions.
type Buffer struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Indices   []uint32
}

// VertexCount returns the number of vertices in the buffer.
func (b *Buffer) VertexCount() int {
	return len(b.Positions)
}

// TriangleCount returns the number of triangles referenced by the indices.
func (b *Buffer) TriangleCount() int {
	return len(b.Indices) / 3
}

// DuplicateVertices rewrites the buffer so every triangle owns its three
// vertices. Flat shading needs per-face vertices; shared vertices would
// smooth normals across faces. Indices become sequential afterwards.
func (b *Buffer) DuplicateVertices() {
	dup := make([]mgl32.Vec3, len(b.Indices))
	for n, idx := range b.Indices {
		dup[n] = b.Positions[idx]
	}
	b.Positions = dup
	for n := range b.Indices {
		b.Indices[n] = uint32(n)
	}
}

// ComputeFlatNormals fills the normals buffer with one per-face normal for
// every vertex of each triangle. Call after DuplicateVertices; with shared
// vertices the last face written would win.
//
// A zero-area triangle has no meaningful normal. Rather than leak NaN into
// the lighting path we substitute the up vector and log a warning.
func (b *Buffer) ComputeFlatNormals() {
	b.Normals = make([]mgl32.Vec3, len(b.Positions))
	for t := 0; t < len(b.Indices); t += 3 {
		i0, i1, i2 := b.Indices[t], b.Indices[t+1], b.Indices[t+2]
		p0 := b.Positions[i0]
		e1 := b.Positions[i1].Sub(p0)
		e2 := b.Positions[i2].Sub(p0)

		n := e1.Cross(e2)
		if n.Dot(n) < degenerateAreaEps {
			logger.Log.Warn("degenerate triangle, substituting up normal",
				zap.Int("triangle", t/3))
			n = mgl32.Vec3{0, 1, 0}
		} else {
			n = n.Normalize()
		}

		b.Normals[i0] = n
		b.Normals[i1] = n
		b.Normals[i2] = n
	}
}

// gridIndices appends the two triangles of every interior quad of a
// row-major grid with the given row stride. Both the heightfield and the
// ellipsoid triangulate this way: triangle A = {top-left, top-right,
// bottom-left}, triangle B = {top-right, bottom-right, bottom-left}.
func gridIndices(indices []uint32, rows, cols, stride int) []uint32 {
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := uint32(r*stride + c)
			s := uint32(stride)
			indices = append(indices, i, i+1, i+s)
			indices = append(indices, i+1, i+s+1, i+s)
		}
	}
	return indices
}
