package scene

import "github.com/go-gl/mathgl/mgl32"

// pivotAxis is the fixed reference axis for pivot rotation. The blades are
// modeled in the XY plane, so they revolve about local Z. Keep this axis;
// deriving it from the blade's orientation changes the rotation plane.
var pivotAxis = mgl32.Vec3{0, 0, 1}

// StepPivot advances a transform by rotationSpeed*dt radians about an
// external pivot point. The pivot sits pivotOffset "behind" the transform
// along its own rotated axes and is recomputed from the live rotation every
// tick, never cached: compounding the step this way revolves the blade tip
// smoothly about a fixed hub point.
//
// Zero speed or zero dt leaves the transform unchanged. The arm length
// (distance from translation to pivot) is invariant across steps.
func StepPivot(t *Transform, rotationSpeed, dt float32, pivotOffset mgl32.Vec3) {
	delta := mgl32.QuatRotate(rotationSpeed*dt, pivotAxis)
	pivot := t.Translation.Sub(t.Rotation.Rotate(pivotOffset))
	t.RotateAround(pivot, delta)
}
