package session

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/driftmark/kinetic/collision"
	"github.com/driftmark/kinetic/entity"
	"github.com/driftmark/kinetic/game"
	"github.com/driftmark/kinetic/internal"
	"github.com/driftmark/kinetic/player"
	"github.com/driftmark/kinetic/settings"
	"github.com/driftmark/kinetic/simulation"
	"github.com/driftmark/kinetic/store"
	"github.com/driftmark/kinetic/world"
)

// Session is the simulation context of one active game: it owns the collider
// registry, the collision resolver, the motion integrator and the remote
// entity reconciler, and is advanced by the host's frame loop through Step.
// There are no hidden statics; tearing a session down discards all state.
//
// All four components run on the caller's goroutine. The store is the only
// asynchronous boundary: snapshots and tunables written there are picked up at
// the start of the next frame.
type Session struct {
	log *logrus.Logger

	world    *world.World
	resolver *collision.Resolver
	sim      simulation.MovementSimulator
	player   *player.Player
	ghosts   *entity.Tracker
	store    *store.GameStore

	appliedStiffness float32
	frame            uint64
}

// New assembles a session from the given settings. A nil store is replaced
// with a fresh one seeded from the settings; a nil handler drops ghost
// lifecycle events.
func New(log *logrus.Logger, conf settings.Settings, st *store.GameStore, h entity.Handler) *Session {
	if log == nil {
		log = logrus.New()
	}
	if st == nil {
		st = store.NewGameStore(conf.Tunables())
	}

	w := world.New(conf.GroundPlane())
	r := collision.NewResolver(w)

	spawn := mgl32.Vec3{conf.Player.Spawn[0], conf.Player.Spawn[1], conf.Player.Spawn[2]}
	p := player.New(spawn)
	p.Radius = conf.Player.Radius

	s := &Session{
		log:      log,
		world:    w,
		resolver: r,
		sim:      simulation.NewMovementSimulator(r),
		player:   p,
		ghosts:   entity.NewTracker(conf.Ghost.Stiffness, h),
		store:    st,

		appliedStiffness: conf.Ghost.Stiffness,
	}
	s.applyTunables(st.Tunables.Get())

	log.WithField("spawn", spawn).Debug("session created")
	return s
}

// Step runs one frame of the whole core: consume input and snapshots, advance
// the local player and every ghost, publish the results. It does nothing
// unless the store's playing flag is set.
func (s *Session) Step(dt float32) {
	if !s.store.Playing.Get() {
		return
	}
	dt = game.ClampDelta(dt)
	s.frame++

	s.applyTunables(s.store.Tunables.Get())

	in := s.store.Input.Get()
	s.player.SetInput(in.Move, in.Jump)
	s.sim.Simulate(s.player, dt)

	// Snapshots arrive fire-and-forget on the shared map; copy them out under
	// the cell lock so a producer writing mid-frame cannot tear this frame.
	buf := internal.GetSnapshotMap()
	s.store.Snapshots.With(func(m map[int64]entity.Snapshot) {
		for id, snap := range m {
			buf[id] = snap
		}
	})
	s.ghosts.Reconcile(buf, dt)
	internal.PutSnapshotMap(buf)

	// Publish at the frame boundary for the rendering and network-transmit
	// collaborators.
	s.store.PlayerPosition.Set(s.player.Position)
	s.store.PlayerVelocity.Set(s.player.Velocity)
	s.store.Grounded.Set(s.player.OnGround)
	s.store.JumpEnergy.Set(s.player.JumpEnergy)
}

// applyTunables pushes the store's current tuning scalars into the components
// that consume them. Tunables are adjustable at runtime; they take effect on
// the next frame.
func (s *Session) applyTunables(t store.Tunables) {
	p := s.player
	p.MovementSpeed = t.MoveSpeed
	p.Gravity = t.Gravity
	p.JumpImpulse = t.JumpImpulse
	p.JumpEnergyCost = t.JumpEnergyCost
	p.GroundRecharge = t.GroundRecharge
	p.AirRecharge = t.AirRecharge

	if t.SpringStiffness != s.appliedStiffness {
		s.ghosts.SetStiffness(t.SpringStiffness)
		s.appliedStiffness = t.SpringStiffness
	}
}

// World returns the collider registry for scene building.
func (s *Session) World() *world.World {
	return s.world
}

// Resolver returns the collision resolver of the session.
func (s *Session) Resolver() *collision.Resolver {
	return s.resolver
}

// Player returns the local player's kinematic state. It is owned by the
// session's simulator; callers must not mutate it outside the frame loop.
func (s *Session) Player() *player.Player {
	return s.player
}

// Ghosts returns the remote entity tracker.
func (s *Session) Ghosts() *entity.Tracker {
	return s.ghosts
}

// Store returns the shared game-state store of the session.
func (s *Session) Store() *store.GameStore {
	return s.store
}

// Frame returns the number of frames stepped so far.
func (s *Session) Frame() uint64 {
	return s.frame
}

// Close tears the session down. The session must not be stepped afterwards.
func (s *Session) Close() {
	s.store.Playing.Set(false)
	s.log.WithField("frames", s.frame).Debug("session closed")
}
