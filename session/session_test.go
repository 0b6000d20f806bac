package session

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftmark/kinetic/entity"
	"github.com/driftmark/kinetic/settings"
	"github.com/driftmark/kinetic/store"
)

func newTestSession() (*Session, *store.GameStore) {
	conf := settings.Default()
	st := store.NewGameStore(conf.Tunables())
	s := New(nil, conf, st, nil)
	return s, st
}

func TestStepDoesNothingUnlessPlaying(t *testing.T) {
	s, st := newTestSession()
	st.Input.Set(store.Input{Move: mgl32.Vec2{1, 0}})

	s.Step(1.0 / 60)
	if s.Frame() != 0 {
		t.Fatal("session stepped while not playing")
	}
	if pos := s.Player().Position; pos != (mgl32.Vec3{}) {
		t.Fatalf("player moved to %v while not playing", pos)
	}
}

func TestStepPublishesPlayerState(t *testing.T) {
	s, st := newTestSession()
	st.Playing.Set(true)
	st.Input.Set(store.Input{Move: mgl32.Vec2{1, 0}})

	var published []mgl32.Vec3
	st.PlayerPosition.Subscribe(func(v mgl32.Vec3) { published = append(published, v) })

	s.Step(1.0 / 60)

	if len(published) != 1 {
		t.Fatalf("position published %d times, want 1", len(published))
	}
	if published[0].X() <= 0 {
		t.Fatalf("published x = %f, want forward movement", published[0].X())
	}
	if !st.Grounded.Get() {
		t.Fatal("grounded flag not published")
	}
	if e := st.JumpEnergy.Get(); e <= 0 || e > 1 {
		t.Fatalf("published energy %f out of range", e)
	}
}

func TestRuntimeTunableChangeTakesEffect(t *testing.T) {
	s, st := newTestSession()
	st.Playing.Set(true)
	st.Input.Set(store.Input{Move: mgl32.Vec2{1, 0}})

	tun := st.Tunables.Get()
	tun.MoveSpeed = 0
	st.Tunables.Set(tun)

	s.Step(1.0 / 60)
	if x := s.Player().Position.X(); x != 0 {
		t.Fatalf("player moved %f with zero move speed", x)
	}
}

func TestStepReconcilesGhostsFromSnapshots(t *testing.T) {
	s, st := newTestSession()
	st.Playing.Set(true)

	st.Snapshots.Set(map[int64]entity.Snapshot{
		42: {Position: mgl32.Vec3{3, 0, 3}},
	})
	s.Step(1.0 / 60)

	ghost := s.Ghosts().Find(42)
	if ghost == nil {
		t.Fatal("snapshot id did not spawn a ghost")
	}
	if ghost.Position() != (mgl32.Vec3{3, 0, 3}) {
		t.Fatalf("ghost spawned at %v, want the snapshot position", ghost.Position())
	}

	st.Snapshots.Set(map[int64]entity.Snapshot{})
	s.Step(1.0 / 60)
	if s.Ghosts().Find(42) != nil {
		t.Fatal("ghost survived its id disappearing from the snapshot map")
	}
}

func TestJumpThroughStore(t *testing.T) {
	s, st := newTestSession()
	st.Playing.Set(true)
	st.Input.Set(store.Input{Jump: true})

	s.Step(1.0 / 60)
	if vy := s.Player().Velocity.Y(); vy <= 0 {
		t.Fatalf("store jump request gave vy %f, want upward", vy)
	}
	if e := st.JumpEnergy.Get(); e >= 1 {
		t.Fatalf("energy %f not consumed by jump", e)
	}
}

func TestSceneCollidersBlockThroughSession(t *testing.T) {
	s, st := newTestSession()
	s.World().AddCylinder(1, 1, 0, 1, 2)
	st.Playing.Set(true)
	st.Input.Set(store.Input{Move: mgl32.Vec2{1, 0}})

	for i := 0; i < 240; i++ {
		s.Step(1.0 / 60)
	}

	p := s.Player()
	dist := math32.Hypot(p.Position.X()-1, p.Position.Z())
	if dist < 1+p.Radius-1e-3 {
		t.Fatalf("player penetrated the scene collider (dist %f)", dist)
	}
}

func TestCloseStopsPlay(t *testing.T) {
	s, st := newTestSession()
	st.Playing.Set(true)
	s.Step(1.0 / 60)

	s.Close()
	if st.Playing.Get() {
		t.Fatal("close left the playing flag set")
	}
	frames := s.Frame()
	s.Step(1.0 / 60)
	if s.Frame() != frames {
		t.Fatal("session stepped after close")
	}
}
