package scene

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/rltvty/miniature-potato/internal/mesh"
)

// Turbine proportions, in world units.
const (
	TowerRadius     = 0.3
	TowerHalfHeight = 4.0
	NacelleHeight   = 8.5

	BladeCount     = 3
	BladeLength    = 4.0
	BladeThickness = 0.1

	cylinderSegments = 32
)

// nacelleHalfSize is the nacelle box's half extents.
var nacelleHalfSize = mgl32.Vec3{0.5, 0.5, 1.0}

// hubOffset is the blade hub position relative to the turbine base: on top
// of the tower, just in front of the nacelle.
var hubOffset = mgl32.Vec3{0, NacelleHeight, 1.1}

// Blade is one rotor blade, revolving about the hub every tick.
type Blade struct {
	Node
	RotationSpeed float32 // radians/sec

	// pivotOffset points from the blade center back to the hub along the
	// blade's local Y; half the blade length.
	pivotOffset mgl32.Vec3
}

// Tick advances the blade's revolution by dt seconds.
func (b *Blade) Tick(dt float64) {
	StepPivot(&b.Transform, b.RotationSpeed, float32(dt), b.pivotOffset)
}

// Turbine is a tower, a nacelle and three blades.
type Turbine struct {
	Tower   Node
	Nacelle Node
	Blades  []*Blade
}

// NewTurbine assembles a wind turbine at the given base position. All three
// blades share one mesh; each gets its own transform, rotated 120° apart
// about the hub's Z axis with the blade center offset half a blade length
// outward.
func NewTurbine(position mgl32.Vec3, rotationSpeed float32) (*Turbine, error) {
	towerMesh, err := mesh.GenerateCylinder(TowerRadius, TowerHalfHeight, cylinderSegments)
	if err != nil {
		return nil, fmt.Errorf("turbine tower: %w", err)
	}
	nacelleMesh, err := mesh.GenerateCuboid(nacelleHalfSize)
	if err != nil {
		return nil, fmt.Errorf("turbine nacelle: %w", err)
	}
	bladeMesh, err := mesh.GenerateCylinder(BladeThickness, BladeLength/2, cylinderSegments)
	if err != nil {
		return nil, fmt.Errorf("turbine blade: %w", err)
	}

	t := &Turbine{
		Tower: Node{
			Name:      "tower",
			Mesh:      towerMesh,
			Transform: NewTransformAt(position.Add(mgl32.Vec3{0, TowerHalfHeight, 0})),
		},
		Nacelle: Node{
			Name:      "nacelle",
			Mesh:      nacelleMesh,
			Transform: NewTransformAt(position.Add(mgl32.Vec3{0, NacelleHeight, 0})),
		},
	}

	hub := position.Add(hubOffset)
	bladeOffset := mgl32.Vec3{0, BladeLength / 2, 0}
	for i := 0; i < BladeCount; i++ {
		angle := float32(i) * (2 * math.Pi / BladeCount)
		rotation := mgl32.QuatRotate(angle, pivotAxis)

		tf := NewTransform()
		tf.Translation = hub.Add(rotation.Rotate(bladeOffset))
		tf.Rotation = rotation

		t.Blades = append(t.Blades, &Blade{
			Node: Node{
				Name:      fmt.Sprintf("blade-%d", i),
				Mesh:      bladeMesh,
				Transform: tf,
			},
			RotationSpeed: rotationSpeed,
			pivotOffset:   bladeOffset,
		})
	}

	return t, nil
}

// Hub returns the world-space hub point blades revolve around.
func (t *Turbine) Hub() mgl32.Vec3 {
	return t.Tower.Transform.Translation.
		Sub(mgl32.Vec3{0, TowerHalfHeight, 0}).
		Add(hubOffset)
}
