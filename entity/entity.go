package entity

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftmark/kinetic/game"
)

// Snapshot is the authoritative state of a remote player as received from the
// network layer, at a rate far below the render rate. The x, y, z, vx, vy, vz
// schema is the only bit-exact contract the core depends on from the network.
type Snapshot struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
}

// Entity is the locally simulated, smoothed representation of a remote player
// (a ghost). Its current position and velocity are the internal state of a
// critically damped spring filter continuously steered toward the latest
// snapshot. Between snapshots the spring extrapolates along the last known
// target velocity, so sparse and jittery updates still render as continuous
// motion with no overshoot.
type Entity struct {
	position mgl32.Vec3
	velocity mgl32.Vec3

	targetPos mgl32.Vec3
	targetVel mgl32.Vec3

	stiffness float32
	damping   float32
}

// NewEntity creates a ghost whose filter state starts exactly at the snapshot,
// so a newly appeared remote player does not fly in from the origin.
func NewEntity(s Snapshot) *Entity {
	return NewEntityWithStiffness(s, game.DefaultSpringStiffness)
}

// NewEntityWithStiffness creates a ghost with an explicit spring stiffness k.
// The damping coefficient is derived as 2*sqrt(k), i.e. critical damping:
// fastest convergence without oscillation.
func NewEntityWithStiffness(s Snapshot, k float32) *Entity {
	e := &Entity{
		position:  s.Position,
		velocity:  s.Velocity,
		targetPos: s.Position,
		targetVel: s.Velocity,
	}
	e.SetStiffness(k)
	return e
}

// SetStiffness retunes the spring, keeping it critically damped.
func (e *Entity) SetStiffness(k float32) {
	if k <= 0 {
		k = game.DefaultSpringStiffness
	}
	e.stiffness = k
	e.damping = 2 * math32.Sqrt(k)
}

// SetTarget updates the spring's target from the latest snapshot. A stale
// snapshot simply leaves the target in place, letting the spring settle at the
// last known state.
func (e *Entity) SetTarget(s Snapshot) {
	e.targetPos = s.Position
	e.targetVel = s.Velocity
}

// Tick advances the spring filter by dt using semi-implicit Euler: the
// acceleration k*(targetPos-pos) + c*(targetVel-vel) is integrated into the
// velocity first, then the velocity into the position.
func (e *Entity) Tick(dt float32) {
	dt = game.ClampDelta(dt)

	accel := e.targetPos.Sub(e.position).Mul(e.stiffness).
		Add(e.targetVel.Sub(e.velocity).Mul(e.damping))
	e.velocity = e.velocity.Add(accel.Mul(dt))
	e.position = e.position.Add(e.velocity.Mul(dt))
}

// Position returns the ghost's smoothed position, to be applied to the
// externally owned visual representation.
func (e *Entity) Position() mgl32.Vec3 {
	return e.position
}

// Velocity returns the ghost's current filter velocity.
func (e *Entity) Velocity() mgl32.Vec3 {
	return e.velocity
}

// Target returns the position the spring is steering toward.
func (e *Entity) Target() mgl32.Vec3 {
	return e.targetPos
}
