// Package player holds the first-person controller math: look rotation,
// movement intent, FOV zoom and planet-centric gravity. It owns no devices
// and no physics; the host feeds input samples and consumes the controller
// feed each tick.
package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/rltvty/miniature-potato/internal/config"
	"github.com/rltvty/miniature-potato/internal/scene"
)

const (
	// PlayerSpeed is the head-offset adjustment speed in units/sec.
	PlayerSpeed = 10.0

	GravityMagnitude = 9.8

	yawSensitivity   = 0.007
	pitchSensitivity = 0.005

	fovStep    = float32(math.Pi / 180) // one degree per wheel notch
	FOVMin     = float32(20 * math.Pi / 180)
	FOVMax     = float32(160 * math.Pi / 180)
	fovDefault = float32(90 * math.Pi / 180)
)

// defaultForward is the direction the head faces with no look input.
var defaultForward = mgl32.Vec3{0, 0, -1}

// InputSample is one tick's worth of host-collected input. How the sample
// is produced (keyboard, gamepad, replay) is the host's business.
type InputSample struct {
	MoveForward  bool
	MoveBackward bool
	MoveLeft     bool
	MoveRight    bool
	Jump         bool
	Dash         bool

	// LookDelta is the accumulated mouse motion for the tick.
	LookDelta mgl32.Vec2
	// WheelNotches is the accumulated scroll, positive = zoom in.
	WheelNotches int
	// HeadNudge adjusts the head offset along each axis (-1, 0 or +1).
	HeadNudge mgl32.Vec3
}

// JumpIntent asks the character-physics plugin for a jump.
type JumpIntent struct {
	Height float32
}

// DashIntent asks the character-physics plugin for a dash. The displacement
// is frozen when the action starts; the plugin keeps the direction.
type DashIntent struct {
	Displacement mgl32.Vec3
	AllowInAir   bool
}

// ControllerFeed is what the host hands its character-physics plugin every
// tick. The basis (desired velocity, float height) is fed even when idle.
type ControllerFeed struct {
	DesiredVelocity mgl32.Vec3
	FloatHeight     float32
	Jump            *JumpIntent
	Dash            *DashIntent
}

// Head is the look state: a yaw-rotated forward vector plus an accumulated
// pitch angle, combined into the head rotation on demand.
type Head struct {
	Forward    mgl32.Vec3
	PitchAngle float64
	Offset     mgl32.Vec3
}

// Player is the controller state. Body is the physics-owned transform the
// host syncs in before Update and out after.
type Player struct {
	Body Transform
	Head Head
	FOV  float32

	cfg config.PlayerConfig
}

// Transform aliases the scene transform; the player's body is just another
// rigid transform in the world.
type Transform = scene.Transform

// New creates a player at the spawn point, looking down -Z.
func New(cfg config.PlayerConfig) *Player {
	body := scene.NewTransformAt(mgl32.Vec3{500, 1000, 500})
	return &Player{
		Body: body,
		Head: Head{Forward: defaultForward},
		FOV:  fovDefault,
		cfg:  cfg,
	}
}

// Update consumes one input sample and returns the controller feed for the
// tick. Pure state update; safe to call from any scheduler as long as a
// single owner drives each player.
func (p *Player) Update(dt float64, in InputSample) ControllerFeed {
	p.look(in.LookDelta)
	p.zoom(in.WheelNotches)
	p.adjustHead(dt, in.HeadNudge)

	direction := p.moveDirection(in)

	feed := ControllerFeed{
		DesiredVelocity: normalizeOrZero(direction).Mul(p.cfg.WalkSpeed),
		FloatHeight:     p.cfg.FloatHeight,
	}
	if in.Jump {
		feed.Jump = &JumpIntent{Height: p.cfg.JumpHeight}
	}
	if in.Dash && direction.Dot(direction) > 0 {
		feed.Dash = &DashIntent{
			Displacement: direction.Normalize().Mul(p.cfg.DashDistance),
			AllowInAir:   true,
		}
	}
	return feed
}

// look applies mouse motion: yaw rotates the stored forward vector about Y,
// pitch accumulates and clamps so the head can't flip over.
func (p *Player) look(delta mgl32.Vec2) {
	yaw := mgl32.QuatRotate(float32(-yawSensitivity*float64(delta.X())), mgl32.Vec3{0, 1, 0})
	p.Head.Forward = yaw.Rotate(p.Head.Forward)

	p.Head.PitchAngle += pitchSensitivity * float64(delta.Y())
	p.Head.PitchAngle = clamp(p.Head.PitchAngle, -math.Pi/2, math.Pi/2)
}

// HeadRotation combines the yawed forward vector with the pitch angle:
// the arc from the default forward to the current one, then a local-X
// pitch rotation.
func (p *Player) HeadRotation() mgl32.Quat {
	forwardRotation := mgl32.QuatBetweenVectors(defaultForward, p.Head.Forward.Normalize())
	pitch := mgl32.QuatRotate(float32(p.Head.PitchAngle), mgl32.Vec3{1, 0, 0})
	return forwardRotation.Mul(pitch)
}

// zoom steps the FOV one degree per wheel notch, clamped to [20°, 160°].
func (p *Player) zoom(notches int) {
	for ; notches > 0; notches-- {
		p.FOV = max(p.FOV-fovStep, FOVMin)
	}
	for ; notches < 0; notches++ {
		p.FOV = min(p.FOV+fovStep, FOVMax)
	}
}

// adjustHead nudges the head offset, normalizing so diagonal movement is
// not faster.
func (p *Player) adjustHead(dt float64, nudge mgl32.Vec3) {
	p.Head.Offset = p.Head.Offset.Add(
		normalizeOrZero(nudge).Mul(PlayerSpeed * float32(dt)))
}

// moveDirection builds the movement intent against the body's local axes,
// clamped to unit length. Forward input subtracts local +Z because the body
// faces -Z, matching the look convention.
func (p *Player) moveDirection(in InputSample) mgl32.Vec3 {
	forward := p.Body.Rotation.Rotate(mgl32.Vec3{0, 0, 1})
	right := p.Body.Rotation.Rotate(mgl32.Vec3{1, 0, 0})

	var direction mgl32.Vec3
	if in.MoveForward {
		direction = direction.Sub(forward)
	}
	if in.MoveBackward {
		direction = direction.Add(forward)
	}
	if in.MoveLeft {
		direction = direction.Sub(right)
	}
	if in.MoveRight {
		direction = direction.Add(right)
	}
	if direction.Dot(direction) > 1 {
		direction = direction.Normalize()
	}
	return direction
}

// Gravity returns the planet-centric gravity vector for the body's current
// position: 9.8 units/sec² toward the world origin. At the exact center the
// direction is undefined and gravity is zero.
func (p *Player) Gravity() mgl32.Vec3 {
	toCenter := mgl32.Vec3{}.Sub(p.Body.Translation)
	return normalizeOrZero(toCenter).Mul(GravityMagnitude)
}

func normalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	if v.Dot(v) == 0 {
		return mgl32.Vec3{}
	}
	return v.Normalize()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
