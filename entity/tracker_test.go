package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftmark/kinetic/game"
)

type recordingHandler struct {
	added   map[int64]int
	removed map[int64]int
}

func newRecordingHandler() *recordingHandler {
	return &recordingHandler{added: map[int64]int{}, removed: map[int64]int{}}
}

func (h *recordingHandler) OnGhostAdd(id int64, _ *Entity) { h.added[id]++ }
func (h *recordingHandler) OnGhostRemove(id int64)         { h.removed[id]++ }

func TestGhostCreatedOncePerID(t *testing.T) {
	h := newRecordingHandler()
	tr := NewTracker(game.DefaultSpringStiffness, h)

	snaps := map[int64]Snapshot{
		7: {Position: mgl32.Vec3{1, 0, 0}},
		9: {Position: mgl32.Vec3{0, 0, 1}},
	}
	for i := 0; i < 5; i++ {
		tr.Reconcile(snaps, 1.0/60)
	}

	if tr.Len() != 2 {
		t.Fatalf("tracking %d ghosts, want 2", tr.Len())
	}
	if h.added[7] != 1 || h.added[9] != 1 {
		t.Fatalf("add events %v, want exactly one per id", h.added)
	}
	if len(h.removed) != 0 {
		t.Fatalf("unexpected remove events %v", h.removed)
	}
}

func TestGhostRemovedOnceOnDisappearance(t *testing.T) {
	h := newRecordingHandler()
	tr := NewTracker(game.DefaultSpringStiffness, h)

	tr.Reconcile(map[int64]Snapshot{1: {}, 2: {}}, 1.0/60)
	tr.Reconcile(map[int64]Snapshot{2: {}}, 1.0/60)
	tr.Reconcile(map[int64]Snapshot{2: {}}, 1.0/60)

	if h.removed[1] != 1 {
		t.Fatalf("remove events for id 1 = %d, want 1", h.removed[1])
	}
	if tr.Find(1) != nil {
		t.Fatal("removed ghost still tracked")
	}
	if tr.Find(2) == nil {
		t.Fatal("surviving ghost lost")
	}
}

func TestGhostLifecycleAcrossRepeatedCycles(t *testing.T) {
	h := newRecordingHandler()
	tr := NewTracker(game.DefaultSpringStiffness, h)

	for cycle := 0; cycle < 4; cycle++ {
		tr.Reconcile(map[int64]Snapshot{5: {Position: mgl32.Vec3{float32(cycle), 0, 0}}}, 1.0/60)
		tr.Reconcile(map[int64]Snapshot{}, 1.0/60)
	}

	if h.added[5] != 4 || h.removed[5] != 4 {
		t.Fatalf("cycle events add=%d remove=%d, want 4 and 4", h.added[5], h.removed[5])
	}
	if tr.Len() != 0 {
		t.Fatalf("leaked %d ghosts after cycles", tr.Len())
	}
}

func TestReconcileSteersTowardLatestSnapshot(t *testing.T) {
	tr := NewTracker(game.DefaultSpringStiffness, nil)
	tr.Reconcile(map[int64]Snapshot{3: {}}, 1.0/60)

	target := mgl32.Vec3{2, 0, -1}
	for i := 0; i < 600; i++ {
		tr.Reconcile(map[int64]Snapshot{3: {Position: target}}, 1.0/60)
	}

	ghost := tr.Find(3)
	if ghost == nil {
		t.Fatal("ghost missing")
	}
	if d := ghost.Position().Sub(target).Len(); d > 1e-2 {
		t.Fatalf("ghost settled %f from its snapshot target", d)
	}
}

func TestNilSnapshotMapClearsAllGhosts(t *testing.T) {
	h := newRecordingHandler()
	tr := NewTracker(game.DefaultSpringStiffness, h)

	tr.Reconcile(map[int64]Snapshot{1: {}, 2: {}, 3: {}}, 1.0/60)
	tr.Reconcile(nil, 1.0/60)

	if tr.Len() != 0 {
		t.Fatalf("%d ghosts survived an empty snapshot map", tr.Len())
	}
	if len(h.removed) != 3 {
		t.Fatalf("remove events %v, want one per id", h.removed)
	}
}
