package world

import (
	"github.com/chewxy/math32"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftmark/kinetic/assert"
)

// Cylinder is a vertical cylindrical obstacle (trees, wells) standing on the
// ground reference plane.
type Cylinder struct {
	X, Z   float32
	Radius float32
	Height float32
}

// ContainsXZ reports whether the point lies within the cylinder's footprint.
func (c Cylinder) ContainsXZ(x, z float32) bool {
	dx, dz := x-c.X, z-c.Z
	return dx*dx+dz*dz <= c.Radius*c.Radius
}

// Box is a yaw-rotated rectangular obstacle standing on the ground reference
// plane.
type Box struct {
	X, Z      float32
	HalfWidth float32
	HalfDepth float32
	Height    float32
	Yaw       float32
}

// Local transforms a world-space point into the box's unrotated local frame.
func (b Box) Local(x, z float32) (float32, float32) {
	dx, dz := x-b.X, z-b.Z
	sin, cos := math32.Sin(-b.Yaw), math32.Cos(-b.Yaw)
	return cos*dx - sin*dz, sin*dx + cos*dz
}

// World transforms a local-frame offset back into a world-space offset.
func (b Box) World(lx, lz float32) (float32, float32) {
	sin, cos := math32.Sin(b.Yaw), math32.Cos(b.Yaw)
	return cos*lx - sin*lz, sin*lx + cos*lz
}

// ContainsXZ reports whether the point lies within the box's rotated footprint.
func (b Box) ContainsXZ(x, z float32) bool {
	lx, lz := b.Local(x, z)
	return math32.Abs(lx) <= b.HalfWidth && math32.Abs(lz) <= b.HalfDepth
}

// Cube is an axis-aligned cube obstacle placed by a player. Static cubes belong
// to remote players and block the local player; a non-static cube is the local
// player's own and never self-collides.
type Cube struct {
	Center mgl32.Vec3
	Size   float32
	Static bool
}

// BBox returns the cube's bounding box in world space.
func (c Cube) BBox() cube.BBox {
	h := c.Size / 2
	return cube.Box(
		c.Center.X()-h, c.Center.Y()-h, c.Center.Z()-h,
		c.Center.X()+h, c.Center.Y()+h, c.Center.Z()+h,
	)
}

// Top returns the height of the cube's upper face.
func (c Cube) Top() float32 {
	return c.Center.Y() + c.Size/2
}

// ContainsXZ reports whether the point lies within the cube's footprint.
func (c Cube) ContainsXZ(x, z float32) bool {
	bb := c.BBox()
	return x >= bb.Min().X() && x <= bb.Max().X() && z >= bb.Min().Z() && z <= bb.Max().Z()
}

// GroundPlane is the walkable extent of the base ground, at height Y.
type GroundPlane struct {
	MinX, MaxX float32
	MinZ, MaxZ float32
	Y          float32
}

// Contains reports whether the point is over the ground plane.
func (g GroundPlane) Contains(x, z float32) bool {
	return x >= g.MinX && x <= g.MaxX && z >= g.MinZ && z <= g.MaxZ
}

// World stores the static and semi-static obstacle shapes of a scene. Colliders
// are registered once at scene-build time and removed only when their owning
// game object is destroyed. Iteration follows registration order, which the
// collision resolver depends on for first-contact-wins resolution.
//
// A World is written and read from the single frame loop only; it requires no
// synchronisation.
type World struct {
	ground    GroundPlane
	cylinders *orderedmap.OrderedMap[int64, Cylinder]
	boxes     *orderedmap.OrderedMap[int64, Box]
	cubes     *orderedmap.OrderedMap[int64, Cube]
}

// New creates an empty World over the given ground plane.
func New(ground GroundPlane) *World {
	return &World{
		ground:    ground,
		cylinders: orderedmap.NewOrderedMap[int64, Cylinder](),
		boxes:     orderedmap.NewOrderedMap[int64, Box](),
		cubes:     orderedmap.NewOrderedMap[int64, Cube](),
	}
}

// Ground returns the ground plane of the world.
func (w *World) Ground() GroundPlane {
	return w.ground
}

// AddCylinder registers a cylindrical collider. A duplicate id overwrites the
// previous shape in place.
func (w *World) AddCylinder(id int64, x, z, radius, height float32) {
	assert.IsTrue(radius > 0 && height > 0, "cylinder %d must have positive dimensions (radius=%f, height=%f)", id, radius, height)
	w.cylinders.Set(id, Cylinder{X: x, Z: z, Radius: radius, Height: height})
}

// AddBox registers a yaw-rotated box collider. A duplicate id overwrites the
// previous shape in place.
func (w *World) AddBox(id int64, x, z, halfW, halfD, height, yaw float32) {
	assert.IsTrue(halfW > 0 && halfD > 0 && height > 0, "box %d must have positive dimensions (halfW=%f, halfD=%f, height=%f)", id, halfW, halfD, height)
	w.boxes.Set(id, Box{X: x, Z: z, HalfWidth: halfW, HalfDepth: halfD, Height: height, Yaw: yaw})
}

// SetDynamicCube registers or moves a player-owned cube. Cubes are the only
// semi-static colliders: their owner repositions them between frames.
func (w *World) SetDynamicCube(id int64, center mgl32.Vec3, size float32, static bool) {
	assert.IsTrue(size > 0, "cube %d must have a positive size (size=%f)", id, size)
	w.cubes.Set(id, Cube{Center: center, Size: size, Static: static})
}

// Remove deletes the collider registered under the given id, whatever its kind.
func (w *World) Remove(id int64) {
	w.cylinders.Delete(id)
	w.boxes.Delete(id)
	w.cubes.Delete(id)
}

// Cylinders calls fn for every cylinder in registration order until fn returns
// false.
func (w *World) Cylinders(fn func(id int64, c Cylinder) bool) {
	for el := w.cylinders.Front(); el != nil; el = el.Next() {
		if !fn(el.Key, el.Value) {
			return
		}
	}
}

// Boxes calls fn for every box in registration order until fn returns false.
func (w *World) Boxes(fn func(id int64, b Box) bool) {
	for el := w.boxes.Front(); el != nil; el = el.Next() {
		if !fn(el.Key, el.Value) {
			return
		}
	}
}

// Cubes calls fn for every dynamic cube in registration order until fn returns
// false.
func (w *World) Cubes(fn func(id int64, c Cube) bool) {
	for el := w.cubes.Front(); el != nil; el = el.Next() {
		if !fn(el.Key, el.Value) {
			return
		}
	}
}

// Len returns the total number of registered colliders.
func (w *World) Len() int {
	return w.cylinders.Len() + w.boxes.Len() + w.cubes.Len()
}
