package player

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftmark/kinetic/game"
)

// Player holds the kinematic state of the local player. It is owned exclusively
// by the movement simulator, mutated once per frame, and published (not owned)
// to the game-state store for rendering and networking consumers.
type Player struct {
	Position     mgl32.Vec3
	PrevPosition mgl32.Vec3
	Velocity     mgl32.Vec3

	// JumpEnergy is the normalized jump budget in [0, 1]. It recharges
	// continuously, faster while grounded, and is partially consumed by each
	// honoured jump request.
	JumpEnergy float32
	OnGround   bool
	// GroundLevel is the height of the standable surface currently under the
	// player, refreshed every frame before vertical integration.
	GroundLevel float32
	// InBounds is whether any standable surface is under the player at all.
	InBounds bool

	Radius float32
	Spawn  mgl32.Vec3

	// Tunables, externally adjustable at runtime through the store.
	MovementSpeed  float32
	Gravity        float32
	JumpImpulse    float32
	JumpEnergyCost float32
	GroundRecharge float32
	AirRecharge    float32

	// Per-frame input, consumed and reset by the simulator.
	InputMove     mgl32.Vec2
	JumpRequested bool
}

// New creates a Player at the given spawn point with default tunables, resting
// on the ground with a full jump budget.
func New(spawn mgl32.Vec3) *Player {
	return &Player{
		Position:       spawn,
		PrevPosition:   spawn,
		Spawn:          spawn,
		JumpEnergy:     1,
		OnGround:       true,
		InBounds:       true,
		Radius:         game.DefaultPlayerRadius,
		MovementSpeed:  game.DefaultMoveSpeed,
		Gravity:        game.DefaultGravity,
		JumpImpulse:    game.DefaultJumpImpulse,
		JumpEnergyCost: game.JumpEnergyCost,
		GroundRecharge: game.GroundRechargeRate,
		AirRecharge:    game.AirRechargeRate,
	}
}

// SetInput stores the input direction and jump request for the next simulation
// step. The direction is normalised to at most unit length.
func (p *Player) SetInput(move mgl32.Vec2, jump bool) {
	p.InputMove = game.NormalizeInput(move)
	if jump {
		p.JumpRequested = true
	}
}

// Teleport moves the player to the given position and discards all velocity.
func (p *Player) Teleport(pos mgl32.Vec3) {
	p.PrevPosition = pos
	p.Position = pos
	p.Velocity = mgl32.Vec3{}
}

// Respawn teleports the player back to its spawn point. Used as fall-through
// recovery when the player drops below the fatal threshold.
func (p *Player) Respawn() {
	p.Teleport(p.Spawn)
}
