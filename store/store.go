package store

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftmark/kinetic/entity"
	"github.com/driftmark/kinetic/game"
)

// Value is a single observable cell of the game-state store: get/set with
// subscriber notification. Cells are the only place where the core touches
// data written from outside the frame loop (network snapshots, UI tunables),
// so they carry their own lock.
type Value[T any] struct {
	mu   sync.RWMutex
	v    T
	subs []func(T)
}

// NewValue creates a cell holding the given initial value.
func NewValue[T any](v T) *Value[T] {
	return &Value[T]{v: v}
}

// Get returns the current value.
func (c *Value[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v
}

// Set stores a new value and notifies subscribers in registration order.
// Subscribers run on the caller's goroutine.
func (c *Value[T]) Set(v T) {
	c.mu.Lock()
	c.v = v
	subs := c.subs
	c.mu.Unlock()

	for _, fn := range subs {
		fn(v)
	}
}

// Subscribe registers fn to be called on every Set. Subscriptions cannot be
// removed; they live for the session.
func (c *Value[T]) Subscribe(fn func(T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

// With runs fn with the current value while holding the read lock. Used to
// copy out of reference-typed cells (maps) that a producer may keep mutating
// after Set.
func (c *Value[T]) With(fn func(T)) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn(c.v)
}

// Input is the local player's input for one frame: a direction in [-1,1]^2
// over the XZ plane and a jump request flag.
type Input struct {
	Move mgl32.Vec2
	Jump bool
}

// Tunables are the externally adjustable scalars consumed by the simulation
// every frame.
type Tunables struct {
	MoveSpeed       float32
	Gravity         float32
	JumpImpulse     float32
	JumpEnergyCost  float32
	GroundRecharge  float32
	AirRecharge     float32
	SpringStiffness float32
}

// DefaultTunables returns the built-in tuning values.
func DefaultTunables() Tunables {
	return Tunables{
		MoveSpeed:       game.DefaultMoveSpeed,
		Gravity:         game.DefaultGravity,
		JumpImpulse:     game.DefaultJumpImpulse,
		JumpEnergyCost:  game.JumpEnergyCost,
		GroundRecharge:  game.GroundRechargeRate,
		AirRecharge:     game.AirRechargeRate,
		SpringStiffness: game.DefaultSpringStiffness,
	}
}

// GameStore is the shared game-state store connecting the core to its
// collaborators. Input, the playing flag, tunables and remote snapshots are
// consumed at the start of each frame; the local player's state is published at
// the frame boundary for the rendering and network-transmit collaborators.
type GameStore struct {
	// Consumed by the core.
	Input     *Value[Input]
	Playing   *Value[bool]
	Tunables  *Value[Tunables]
	Snapshots *Value[map[int64]entity.Snapshot]

	// Produced by the core.
	PlayerPosition *Value[mgl32.Vec3]
	PlayerVelocity *Value[mgl32.Vec3]
	Grounded       *Value[bool]
	JumpEnergy     *Value[float32]
}

// NewGameStore creates a store seeded with the given tunables, not yet playing.
func NewGameStore(t Tunables) *GameStore {
	return &GameStore{
		Input:          NewValue(Input{}),
		Playing:        NewValue(false),
		Tunables:       NewValue(t),
		Snapshots:      NewValue(map[int64]entity.Snapshot(nil)),
		PlayerPosition: NewValue(mgl32.Vec3{}),
		PlayerVelocity: NewValue(mgl32.Vec3{}),
		Grounded:       NewValue(true),
		JumpEnergy:     NewValue(float32(1)),
	}
}
