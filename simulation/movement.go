package simulation

import (
	"github.com/chewxy/math32"

	"github.com/driftmark/kinetic/collision"
	"github.com/driftmark/kinetic/game"
	"github.com/driftmark/kinetic/player"
)

// MovementSimulator advances the local player's kinematic state by one frame:
// input-driven horizontal displacement, the jump energy mechanic, gravity,
// ground contact and lateral push-out against the world's colliders.
type MovementSimulator struct {
	resolver *collision.Resolver
}

// NewMovementSimulator creates a simulator resolving against the given
// resolver's world.
func NewMovementSimulator(resolver *collision.Resolver) MovementSimulator {
	return MovementSimulator{resolver: resolver}
}

// Simulate runs one frame of movement integration. dt is the wall-clock frame
// delta; it is clamped before use so frame hitches and malformed deltas cannot
// blow up the integration.
func (s MovementSimulator) Simulate(p *player.Player, dt float32) {
	dt = game.ClampDelta(dt)
	p.PrevPosition = p.Position

	// Horizontal displacement is kinematic, not force-based.
	p.Position[0] += p.InputMove.X() * p.MovementSpeed * dt
	p.Position[2] += p.InputMove.Y() * p.MovementSpeed * dt

	// Ground state is evaluated before vertical integration, so a jump request
	// this frame still sees last frame's contact.
	p.GroundLevel, p.InBounds = s.resolver.GroundHeight(p.Position.X(), p.Position.Z(), p.Position.Y())
	p.OnGround = p.InBounds && p.Position.Y() <= p.GroundLevel+game.GroundedEpsilon

	s.rechargeEnergy(p, dt)
	s.jump(p)

	// Gravity and semi-implicit vertical integration.
	p.Velocity[1] -= p.Gravity * dt
	p.Position[1] += p.Velocity.Y() * dt

	if p.InBounds && p.Position.Y() < p.GroundLevel {
		p.Position[1] = p.GroundLevel
		p.Velocity[1] = 0
	}

	if p.Position.Y() < game.FatalFallY {
		p.Respawn()
		return
	}

	// Single-step positional correction. Applying the push vector directly to
	// the position rather than the velocity prevents tunnelling-induced
	// oscillation at the cost of exactness under fast motion.
	res := s.resolver.PushOutAt(p.Position.X(), p.Position.Z(), p.Radius, p.Position.Y())
	if res.Blocked {
		p.Position[0] += res.PushX
		p.Position[2] += res.PushZ
	}
}

// rechargeEnergy refills the jump budget, faster while grounded than mid-air,
// clamped to 1.
func (s MovementSimulator) rechargeEnergy(p *player.Player, dt float32) {
	rate := p.AirRecharge
	if p.OnGround {
		rate = p.GroundRecharge
	}
	p.JumpEnergy = game.ClampFloat(p.JumpEnergy+rate*dt, 0, 1)
}

// jump honours a pending jump request. Jumps are energy-gated rather than
// grounded-gated: mid-air requests are allowed, with the asymmetric recharge
// budget bounding how much air control that grants. Each jump consumes a fixed
// fraction of the current energy, so rapid jumps have diminishing height.
func (s MovementSimulator) jump(p *player.Player) {
	requested := p.JumpRequested
	p.JumpRequested = false
	if !requested || p.JumpEnergy <= game.MinJumpEnergy {
		return
	}

	consumed := p.JumpEnergy * p.JumpEnergyCost
	p.JumpEnergy -= consumed

	// The impulse adds to any existing upward motion but never inherits a
	// downward contribution.
	if p.Velocity.Y() < 0 {
		p.Velocity[1] = 0
	}
	p.Velocity[1] += p.JumpImpulse * math32.Sqrt(consumed)
}
