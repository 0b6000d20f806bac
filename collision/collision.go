package collision

import (
	"github.com/chewxy/math32"

	"github.com/driftmark/kinetic/game"
	"github.com/driftmark/kinetic/world"
)

// Result is the outcome of a push-out query. It is recomputed fresh on every
// call and never persisted.
type Result struct {
	Blocked      bool
	PushX, PushZ float32
}

// Resolver answers overlap and push-out queries for a circular player footprint
// against the colliders of a world. Resolution stops at the first qualifying
// contact per call; under multiple simultaneous overlaps, repeated calls across
// frames converge.
type Resolver struct {
	w *world.World
}

// NewResolver creates a Resolver over the given world.
func NewResolver(w *world.World) *Resolver {
	return &Resolver{w: w}
}

// World returns the world the resolver queries.
func (r *Resolver) World() *world.World {
	return r.w
}

// PushOut computes a planar (XZ) push-out for a circular footprint at (x, z).
// Colliders are tested in registration order: every cylinder, then every static
// cube, then every box.
func (r *Resolver) PushOut(x, z, radius float32) Result {
	return r.pushOut(x, z, radius, math32.Inf(-1))
}

// PushOutAt is the height-aware variant of PushOut: colliders whose top surface
// is at or below y plus a small epsilon do not block, so a player standing on
// top of an obstacle is not pushed off it laterally.
func (r *Resolver) PushOutAt(x, z, radius, y float32) Result {
	return r.pushOut(x, z, radius, y+game.GroundedEpsilon)
}

func (r *Resolver) pushOut(x, z, radius, minTop float32) (res Result) {
	groundY := r.w.Ground().Y

	r.w.Cylinders(func(_ int64, c world.Cylinder) bool {
		if groundY+c.Height <= minTop {
			return true
		}
		if hit, px, pz := circleCircle(x, z, radius, c); hit {
			res = Result{Blocked: true, PushX: px, PushZ: pz}
			return false
		}
		return true
	})
	if res.Blocked {
		return res
	}

	r.w.Cubes(func(_ int64, c world.Cube) bool {
		if !c.Static || c.Top() <= minTop {
			return true
		}
		if hit, px, pz := circleCube(x, z, radius, c); hit {
			res = Result{Blocked: true, PushX: px, PushZ: pz}
			return false
		}
		return true
	})
	if res.Blocked {
		return res
	}

	r.w.Boxes(func(_ int64, b world.Box) bool {
		if groundY+b.Height <= minTop {
			return true
		}
		if hit, px, pz := circleBox(x, z, radius, b); hit {
			res = Result{Blocked: true, PushX: px, PushZ: pz}
			return false
		}
		return true
	})
	return res
}

// GroundHeight returns the highest standable surface under the point among the
// ground plane, cylinders, boxes and dynamic cubes whose footprint contains it.
// Surfaces above currentY plus a small tolerance are ignored so the player
// never snaps up through an obstacle from below. The second return value is
// false when nothing standable is under the point at all.
func (r *Resolver) GroundHeight(x, z, currentY float32) (float32, bool) {
	g := r.w.Ground()
	best := math32.Inf(-1)
	found := false
	if g.Contains(x, z) {
		best = g.Y
		found = true
	}

	limit := currentY + game.StandEpsilon
	consider := func(top float32, contains bool) {
		if contains && top <= limit && top > best {
			best = top
			found = true
		}
	}

	r.w.Cylinders(func(_ int64, c world.Cylinder) bool {
		consider(g.Y+c.Height, c.ContainsXZ(x, z))
		return true
	})
	r.w.Boxes(func(_ int64, b world.Box) bool {
		consider(g.Y+b.Height, b.ContainsXZ(x, z))
		return true
	})
	r.w.Cubes(func(_ int64, c world.Cube) bool {
		consider(c.Top(), c.ContainsXZ(x, z))
		return true
	})

	return best, found
}

// circleCircle resolves a circular footprint against a cylinder's footprint.
// The push-out moves the footprint along the separating axis until the centre
// distance equals the sum of radii.
func circleCircle(x, z, radius float32, c world.Cylinder) (bool, float32, float32) {
	dx, dz := x-c.X, z-c.Z
	sum := radius + c.Radius
	distSqr := dx*dx + dz*dz
	if distSqr >= sum*sum {
		return false, 0, 0
	}

	d := math32.Sqrt(distSqr)
	if d <= game.ContactEpsilon {
		// Zero separation: no usable axis, fall back to pushing out along +X.
		return true, sum, 0
	}

	push := sum - d
	return true, dx / d * push, dz / d * push
}

// circleBox resolves a circular footprint against a rotated box. The footprint
// centre is transformed into the box's local frame, clamped to the half extents
// to find the closest point and, if overlapping, pushed out along the closest
// point to centre axis transformed back to world space.
func circleBox(x, z, radius float32, b world.Box) (bool, float32, float32) {
	lx, lz := b.Local(x, z)
	px, pz, hit := clampedPush(lx, lz, b.HalfWidth, b.HalfDepth, radius)
	if !hit {
		return false, 0, 0
	}
	wx, wz := b.World(px, pz)
	return true, wx, wz
}

// circleCube resolves a circular footprint against an axis-aligned cube, which
// behaves as an unrotated box of half extent Size/2.
func circleCube(x, z, radius float32, c world.Cube) (bool, float32, float32) {
	h := c.Size / 2
	px, pz, hit := clampedPush(x-c.Center.X(), z-c.Center.Z(), h, h, radius)
	return hit, px, pz
}

// clampedPush computes the local-frame push-out for a circle centre at (lx, lz)
// relative to an axis-aligned box of the given half extents.
func clampedPush(lx, lz, halfW, halfD, radius float32) (float32, float32, bool) {
	cx := game.ClampFloat(lx, -halfW, halfW)
	cz := game.ClampFloat(lz, -halfD, halfD)
	dx, dz := lx-cx, lz-cz
	distSqr := dx*dx + dz*dz
	if distSqr >= radius*radius {
		return 0, 0, false
	}

	if distSqr > game.ContactEpsilon*game.ContactEpsilon {
		d := math32.Sqrt(distSqr)
		push := radius - d
		return dx / d * push, dz / d * push, true
	}

	// The centre coincides with its clamped point, meaning it is inside the
	// box. Push out along whichever local axis has the smaller overlap.
	pushX := halfW + radius - math32.Abs(lx)
	pushZ := halfD + radius - math32.Abs(lz)
	sx, sz := float32(1), float32(1)
	if lx < 0 {
		sx = -1
	}
	if lz < 0 {
		sz = -1
	}
	if pushX <= pushZ {
		return sx * pushX, 0, true
	}
	return 0, sz * pushZ, true
}
