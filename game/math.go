package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// ClampFloat clamps a value to the range [min, max].
func ClampFloat(val, min, max float32) float32 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampDelta sanitises a frame delta before integration. NaN, zero and
// negative deltas collapse to MinDeltaTime; stalled frames are capped at
// MaxDeltaTime.
func ClampDelta(dt float32) float32 {
	if math32.IsNaN(dt) || dt < MinDeltaTime {
		return MinDeltaTime
	}
	if dt > MaxDeltaTime {
		return MaxDeltaTime
	}
	return dt
}

// Float32ApproxEq determines whether two floating point numbers are close enough
// to each other by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// AbsVec32 will return the given vector, but all the values of it are switched
// to their absolute values.
func AbsVec32(vec mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{math32.Abs(vec.X()), math32.Abs(vec.Y()), math32.Abs(vec.Z())}
}

// NormalizeInput normalises an input direction to at most unit length. Inputs
// already inside the unit disc are passed through so analog sticks keep their
// magnitude.
func NormalizeInput(in mgl32.Vec2) mgl32.Vec2 {
	lenSqr := in.X()*in.X() + in.Y()*in.Y()
	if lenSqr <= 1 || lenSqr < 1e-8 {
		return in
	}
	inv := 1 / math32.Sqrt(lenSqr)
	return mgl32.Vec2{in.X() * inv, in.Y() * inv}
}
