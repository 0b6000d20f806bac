package game

const (
	// DefaultMoveSpeed is the lateral speed of the local player in units per second.
	DefaultMoveSpeed = float32(8.0)
	DefaultGravity   = float32(25.0)

	// DefaultJumpImpulse is the upward velocity granted by a full-energy jump.
	DefaultJumpImpulse = float32(10.0)
	// JumpEnergyCost is the fraction of the current energy budget consumed per jump.
	JumpEnergyCost = float32(0.6)
	// MinJumpEnergy is the energy floor below which jump requests are ignored.
	MinJumpEnergy = float32(0.05)
	// GroundRechargeRate and AirRechargeRate refill the jump energy budget in
	// units per second. Recharge is faster on the ground than mid-air.
	GroundRechargeRate = float32(0.9)
	AirRechargeRate    = float32(0.25)

	DefaultPlayerRadius = float32(0.5)

	// GroundedEpsilon is the tolerance under which the player counts as standing
	// on a surface. ContactEpsilon guards distance comparisons against division
	// by near-zero separation.
	GroundedEpsilon = float32(0.01)
	ContactEpsilon  = float32(0.01)
	// StandEpsilon is the maximum height above the player at which a surface is
	// still considered standable, preventing snapping up through obstacles.
	StandEpsilon = float32(0.1)

	// MaxDeltaTime bounds integration error after a stalled frame.
	// MinDeltaTime guards against zero, negative and NaN frame deltas.
	MaxDeltaTime = float32(0.1)
	MinDeltaTime = float32(1e-6)

	// FatalFallY is the height below which the player is respawned.
	FatalFallY = float32(-20.0)

	// DefaultSpringStiffness is the stiffness k of the ghost spring-damper. The
	// damping coefficient is always derived as 2*sqrt(k) (critical damping).
	DefaultSpringStiffness = float32(120.0)
)
