// Package scene assembles the demo world (terrain, potato, wind turbines)
// and advances its per-tick state.
package scene

import "github.com/go-gl/mathgl/mgl32"

// Transform is a rigid position + orientation pair with a non-uniform scale,
// owned by exactly one logical ticker at a time.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// NewTransform returns an identity transform.
func NewTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// NewTransformAt returns an identity transform at the given translation.
func NewTransformAt(translation mgl32.Vec3) Transform {
	t := NewTransform()
	t.Translation = translation
	return t
}

// RotateAround rotates the transform about a world-space pivot point. The
// translation revolves around the pivot and the rotation composes into the
// existing orientation; scale is untouched.
func (t *Transform) RotateAround(pivot mgl32.Vec3, delta mgl32.Quat) {
	t.Translation = pivot.Add(delta.Rotate(t.Translation.Sub(pivot)))
	t.Rotation = delta.Mul(t.Rotation)
}
