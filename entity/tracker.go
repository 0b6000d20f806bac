package entity

import (
	"github.com/elliotchance/orderedmap/v2"
)

// Handler receives ghost lifecycle events. The rendering collaborator uses
// these to create and release the visual representation backing each ghost;
// asset creation itself is its responsibility, not the tracker's.
type Handler interface {
	// OnGhostAdd is called when a remote id appears in a snapshot map for the
	// first time.
	OnGhostAdd(id int64, e *Entity)
	// OnGhostRemove is called when a remote id has disappeared from the
	// snapshot map and its ghost is discarded.
	OnGhostRemove(id int64)
}

// NopHandler implements Handler and does nothing. Embed it to handle only the
// events of interest.
type NopHandler struct{}

func (NopHandler) OnGhostAdd(int64, *Entity) {}
func (NopHandler) OnGhostRemove(int64)       {}

// Tracker owns one ghost per connected remote player id. It is mutated
// exclusively from the frame loop; the snapshot map it consumes is the only
// asynchronous boundary and is read once per frame.
type Tracker struct {
	ghosts    *orderedmap.OrderedMap[int64, *Entity]
	stiffness float32
	h         Handler
}

// NewTracker creates a Tracker dispatching lifecycle events to h. A nil h
// falls back to NopHandler.
func NewTracker(stiffness float32, h Handler) *Tracker {
	if h == nil {
		h = NopHandler{}
	}
	return &Tracker{
		ghosts:    orderedmap.NewOrderedMap[int64, *Entity](),
		stiffness: stiffness,
		h:         h,
	}
}

// SetStiffness retunes the spring of every tracked ghost.
func (t *Tracker) SetStiffness(k float32) {
	t.stiffness = k
	for el := t.ghosts.Front(); el != nil; el = el.Next() {
		el.Value.SetStiffness(k)
	}
}

// Reconcile runs one frame of remote-entity reconciliation against the latest
// snapshot map: unseen ids spawn a ghost at their snapshot state, known ids
// have their spring target refreshed, ids absent from the map are removed, and
// every surviving ghost's filter is advanced by dt.
func (t *Tracker) Reconcile(snapshots map[int64]Snapshot, dt float32) {
	for id, snap := range snapshots {
		if ghost, ok := t.ghosts.Get(id); ok {
			ghost.SetTarget(snap)
			continue
		}
		ghost := NewEntityWithStiffness(snap, t.stiffness)
		t.ghosts.Set(id, ghost)
		t.h.OnGhostAdd(id, ghost)
	}

	var gone []int64
	for el := t.ghosts.Front(); el != nil; el = el.Next() {
		if _, ok := snapshots[el.Key]; !ok {
			gone = append(gone, el.Key)
		}
	}
	for _, id := range gone {
		t.ghosts.Delete(id)
		t.h.OnGhostRemove(id)
	}

	for el := t.ghosts.Front(); el != nil; el = el.Next() {
		el.Value.Tick(dt)
	}
}

// Find returns the ghost tracked under the given id, or nil.
func (t *Tracker) Find(id int64) *Entity {
	ghost, ok := t.ghosts.Get(id)
	if !ok {
		return nil
	}
	return ghost
}

// All calls fn for every tracked ghost in creation order until fn returns
// false.
func (t *Tracker) All(fn func(id int64, e *Entity) bool) {
	for el := t.ghosts.Front(); el != nil; el = el.Next() {
		if !fn(el.Key, el.Value) {
			return
		}
	}
}

// Len returns the number of tracked ghosts.
func (t *Tracker) Len() int {
	return t.ghosts.Len()
}
