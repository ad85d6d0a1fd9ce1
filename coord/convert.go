// Package coord converts geometry and transforms between the scene
// language's source coordinate frame (X-right, Y-forward, Z-up) and the
// engine's target frame (X-forward, Y-right, Z-up).
//
// A single signed permutation, (x, y, z) -> (y, -x, z), is the basis for
// every position/normal/translation conversion in this package; it is the
// unique one that maps source-Y onto target-X while preserving
// right-handedness, so triangle winding never needs to be flipped.
package coord

import "github.com/achilleasa/usdindex/types"

// Point converts a position, normal, or translation component from source
// to target frame.
func Point(v types.Vec3) types.Vec3 {
	return types.Vec3{v[1], -v[0], v[2]}
}

// InversePoint is the inverse of Point: target frame back to source frame.
func InversePoint(v types.Vec3) types.Vec3 {
	return types.Vec3{-v[1], v[0], v[2]}
}

// Normal converts a normal vector; identical to Point since normals
// transform like positions under this mapping (no non-uniform scale is
// folded in here).
func Normal(v types.Vec3) types.Vec3 { return Point(v) }

// Translation converts a translation component; identical to Point.
func Translation(v types.Vec3) types.Vec3 { return Point(v) }

// Scale converts a scale vector (a magnitude triplet, so no sign flip is
// applied, only the axis reassignment).
func Scale(v types.Vec3) types.Vec3 {
	return types.Vec3{v[1], v[0], v[2]}
}

// InverseScale is its own inverse: swapping X/Y twice is the identity.
func InverseScale(v types.Vec3) types.Vec3 { return Scale(v) }

// Quat converts a rotation quaternion from source to target frame: the
// vector part maps like a position, the scalar part is unchanged.
func Quat(q types.Quat) types.Quat {
	return types.Quat{V: Point(q.V), W: q.W}
}

// InverseQuat is the inverse of Quat.
func InverseQuat(q types.Quat) types.Quat {
	return types.Quat{V: InversePoint(q.V), W: q.W}
}

// Extent converts an axis-aligned bounding box's two corners and
// recomputes the axis-aligned min/max in the target frame, since the
// mapping's sign flip can swap which corner is the minimum on a given
// axis.
func Extent(min, max types.Vec3) (types.Vec3, types.Vec3) {
	a, b := Point(min), Point(max)
	return types.MinVec3(a, b), types.MaxVec3(a, b)
}

// InverseExtent is Extent's inverse, built from InversePoint the same way.
func InverseExtent(min, max types.Vec3) (types.Vec3, types.Vec3) {
	a, b := InversePoint(min), InversePoint(max)
	return types.MinVec3(a, b), types.MaxVec3(a, b)
}
