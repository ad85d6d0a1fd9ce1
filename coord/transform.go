package coord

import (
	"math"

	"github.com/achilleasa/usdindex/types"
)

// TranslateOp, ScaleOp, RotateXYZOp, RotateXOp, RotateYOp, RotateZOp, and
// TransformOp each build one xformOp's matrix in source-frame, local
// coordinates. They exist so the composition engine can build the ordered
// per-op matrix list from a prim's authored attributes without reaching
// into the types package's raw matrix constructors directly.
func TranslateOp(v types.Vec3) types.Mat4 { return types.Translate4(v) }
func ScaleOp(v types.Vec3) types.Mat4     { return types.Scale4(v) }

// RotateXYZOp builds the matrix for rotateXYZ(x, y, z): intrinsic-XYZ,
// i.e. R_z * R_y * R_x, degrees around the source axes.
func RotateXYZOp(x, y, z float32) types.Mat4 { return types.RotateXYZ(x, y, z) }

func RotateXOp(deg float32) types.Mat4 { return types.RotateX4(deg) }
func RotateYOp(deg float32) types.Mat4 { return types.RotateY4(deg) }
func RotateZOp(deg float32) types.Mat4 { return types.RotateZ4(deg) }

// TransformOp returns a bare xformOp:transform matrix unchanged; it
// expects a matrix already in this package's column-vector, last-column-
// translation convention. A matrix4d literal as parsed keeps the authored
// row order (translation in the last row) and must be transposed first.
func TransformOp(m types.Mat4) types.Mat4 { return m }

// ComposeOps combines an ordered list of per-op matrices (in the order
// given by xformOpOrder, first op applied first) into a single local
// transform.
func ComposeOps(ops []types.Mat4) types.Mat4 {
	if len(ops) == 0 {
		return types.Ident4()
	}
	out := ops[0]
	for i := 1; i < len(ops); i++ {
		out = ops[i].Mul(out)
	}
	return out
}

// ComposeWorld combines a parent world transform with a prim's local
// transform: the point is carried through local first, then parent.
func ComposeWorld(parent, local types.Mat4) types.Mat4 {
	return parent.Mul(local)
}

// ConvertRotationBasis remaps a source-frame rotation basis (columns are
// the images of the source basis vectors: column 0 = X, column 1 = Y
// (forward), column 2 = Z (up)) into the target frame. Forward and up are
// remapped through Point and renormalized, then used to rebuild an
// orthonormal basis via a look-at-style reconstruction; the two vectors
// are necessarily orthogonal under this mapping since it is a signed
// permutation, so the reconstruction is exact up to floating point error.
func ConvertRotationBasis(r types.Mat3) types.Mat3 {
	fwd := Point(types.Vec3{r[1], r[4], r[7]}).Normalize()
	up := Point(types.Vec3{r[2], r[5], r[8]}).Normalize()
	return lookAtBasis(fwd, up)
}

// lookAtBasis builds an orthonormal basis for the target frame (X-forward,
// Y-right, Z-up) from a forward and up vector, re-orthogonalizing up
// against forward first.
func lookAtBasis(forward, up types.Vec3) types.Mat3 {
	f := forward.Normalize()
	u := up.Sub(f.Mul(f.Dot(up))).Normalize()
	r := u.Cross(f) // right = up x forward, for X=forward,Y=right,Z=up

	return types.Mat3{
		f[0], r[0], u[0],
		f[1], r[1], u[1],
		f[2], r[2], u[2],
	}
}

// Decompose extracts translation, an orthonormal rotation basis, and a
// per-axis scale from a matrix built purely from translate/rotate/scale
// composition (no shear). Columns of the 3x3 block are the transformed
// source basis vectors; their lengths are the scale, their normalized
// directions the rotation.
func Decompose(m types.Mat4) (translation types.Vec3, rotation types.Mat3, scale types.Vec3) {
	c0, c1, c2 := m.Col(0), m.Col(1), m.Col(2)
	sx, sy, sz := c0.Len(), c1.Len(), c2.Len()

	r0 := safeNormalize(c0, sx, types.Vec3{1, 0, 0})
	r1 := safeNormalize(c1, sy, types.Vec3{0, 1, 0})
	r2 := safeNormalize(c2, sz, types.Vec3{0, 0, 1})

	rot := types.Mat3{
		r0[0], r1[0], r2[0],
		r0[1], r1[1], r2[1],
		r0[2], r1[2], r2[2],
	}
	return m.Translation(), rot, types.Vec3{sx, sy, sz}
}

func safeNormalize(v types.Vec3, length float32, fallback types.Vec3) types.Vec3 {
	if length < 1e-8 {
		return fallback
	}
	inv := 1 / length
	return types.Vec3{v[0] * inv, v[1] * inv, v[2] * inv}
}

// Recompose rebuilds a matrix from translation, rotation basis, and scale,
// the inverse of Decompose for shear-free inputs.
func Recompose(translation types.Vec3, rotation types.Mat3, scale types.Vec3) types.Mat4 {
	c0 := types.Vec3{rotation[0], rotation[3], rotation[6]}.Mul(scale[0])
	c1 := types.Vec3{rotation[1], rotation[4], rotation[7]}.Mul(scale[1])
	c2 := types.Vec3{rotation[2], rotation[5], rotation[8]}.Mul(scale[2])

	return types.Mat4{
		c0[0], c1[0], c2[0], translation[0],
		c0[1], c1[1], c2[1], translation[1],
		c0[2], c1[2], c2[2], translation[2],
		0, 0, 0, 1,
	}
}

// QuatFromRotation converts an orthonormal rotation basis (as built by
// Decompose/ConvertRotationBasis) into a quaternion, using the standard
// trace-based (Shepperd's method) extraction so that it is the exact
// mathematical inverse of MatFromQuat below.
func QuatFromRotation(r types.Mat3) types.Quat {
	m00, m01, m02 := r[0], r[1], r[2]
	m10, m11, m12 := r[3], r[4], r[5]
	m20, m21, m22 := r[6], r[7], r[8]

	trace := m00 + m11 + m22
	switch {
	case trace > 0:
		s := float32(math.Sqrt(float64(trace+1))) * 2
		return types.Quat{
			V: types.Vec3{(m21 - m12) / s, (m02 - m20) / s, (m10 - m01) / s},
			W: s / 4,
		}
	case m00 > m11 && m00 > m22:
		s := float32(math.Sqrt(float64(1+m00-m11-m22))) * 2
		return types.Quat{
			V: types.Vec3{s / 4, (m01 + m10) / s, (m02 + m20) / s},
			W: (m21 - m12) / s,
		}
	case m11 > m22:
		s := float32(math.Sqrt(float64(1+m11-m00-m22))) * 2
		return types.Quat{
			V: types.Vec3{(m01 + m10) / s, s / 4, (m12 + m21) / s},
			W: (m02 - m20) / s,
		}
	default:
		s := float32(math.Sqrt(float64(1+m22-m00-m11))) * 2
		return types.Quat{
			V: types.Vec3{(m02 + m20) / s, (m12 + m21) / s, s / 4},
			W: (m10 - m01) / s,
		}
	}
}

// MatFromQuat is the inverse of QuatFromRotation: builds an orthonormal
// rotation basis from a unit quaternion.
func MatFromQuat(q types.Quat) types.Mat3 {
	x, y, z, w := q.V[0], q.V[1], q.V[2], q.W
	return types.Mat3{
		1 - 2*y*y - 2*z*z, 2*x*y - 2*w*z, 2*x*z + 2*w*y,
		2*x*y + 2*w*z, 1 - 2*x*x - 2*z*z, 2*y*z - 2*w*x,
		2*x*z - 2*w*y, 2*y*z + 2*w*x, 1 - 2*x*x - 2*y*y,
	}
}
