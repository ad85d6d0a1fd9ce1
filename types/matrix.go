package types

import "math"

// Mat3 is a row-major 3x3 matrix: Mat3[r*3+c] is the element at row r, column c.
type Mat3 [9]float32

// Mat4 is a row-major 4x4 matrix: Mat4[r*4+c] is the element at row r, column c.
// Points are transformed as column vectors: p' = M * p.
type Mat4 [16]float32

// Ident4 returns the 4x4 identity matrix.
func Ident4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Ident3 returns the 3x3 identity matrix.
func Ident3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Translate4 builds a translation matrix.
func Translate4(v Vec3) Mat4 {
	m := Ident4()
	m[3], m[7], m[11] = v[0], v[1], v[2]
	return m
}

// Scale4 builds a non-uniform scale matrix.
func Scale4(v Vec3) Mat4 {
	return Mat4{
		v[0], 0, 0, 0,
		0, v[1], 0, 0,
		0, 0, v[2], 0,
		0, 0, 0, 1,
	}
}

func degToRad(deg float32) float64 {
	return float64(deg) * math.Pi / 180.0
}

// RotateX4 builds a rotation matrix of angleDeg degrees around the X axis.
func RotateX4(angleDeg float32) Mat4 {
	s, c := sincos(angleDeg)
	return Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY4 builds a rotation matrix of angleDeg degrees around the Y axis.
func RotateY4(angleDeg float32) Mat4 {
	s, c := sincos(angleDeg)
	return Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ4 builds a rotation matrix of angleDeg degrees around the Z axis.
func RotateZ4(angleDeg float32) Mat4 {
	s, c := sincos(angleDeg)
	return Mat4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func sincos(angleDeg float32) (float32, float32) {
	rad := degToRad(angleDeg)
	return float32(math.Sin(rad)), float32(math.Cos(rad))
}

// RotateXYZ builds the matrix for intrinsic-XYZ Euler rotation (= extrinsic
// ZYX), i.e. R_z * R_y * R_x, with each angle given in degrees around the
// corresponding source axis.
func RotateXYZ(x, y, z float32) Mat4 {
	return RotateZ4(z).Mul(RotateY4(y)).Mul(RotateX4(x))
}

// Mul multiplies two matrices, m * o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[r*4+k] * o[k*4+c]
			}
			out[r*4+c] = sum
		}
	}
	return out
}

// MulPoint transforms a point (implicit w=1), applying translation.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11],
	}
}

// MulDir transforms a direction (implicit w=0), ignoring translation.
func (m Mat4) MulDir(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2],
	}
}

// Row returns row r (0-indexed) as a Vec3, dropping the last column.
func (m Mat4) Row(r int) Vec3 {
	return Vec3{m[r*4+0], m[r*4+1], m[r*4+2]}
}

// Col returns column c (0-indexed) as a Vec3, dropping the last row.
func (m Mat4) Col(c int) Vec3 {
	return Vec3{m[0*4+c], m[1*4+c], m[2*4+c]}
}

// Translation returns the translation component (last column) of the matrix.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[3], m[7], m[11]}
}

// Basis3 returns the rotation/scale 3x3 block.
func (m Mat4) Basis3() Mat3 {
	return m.Mat3()
}

// Inv returns the inverse of an affine matrix (arbitrary 3x3 linear block
// with the last row fixed at 0,0,0,1), as produced by any composition of
// translate/rotate/scale ops. The linear block is inverted via the
// classical adjugate-over-determinant formula and the translation is
// recovered as -(R^-1 * T).
func (m Mat4) Inv() Mat4 {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[4], m[5], m[6]
	g, h, i := m[8], m[9], m[10]

	// Cofactors of the 3x3 linear block.
	A := e*i - f*h
	B := -(d*i - f*g)
	C := d*h - e*g
	D := -(b*i - c*h)
	E := a*i - c*g
	F := -(a*h - b*g)
	G := b*f - c*e
	H := -(a*f - c*d)
	I := a*e - b*d

	det := a*A + b*B + c*C
	if det == 0 || floatAbs(det) < floatCmpEpsilon {
		return Ident4()
	}
	invDet := 1.0 / det

	// Inverse of the linear block (adjugate transposed / det).
	r00, r01, r02 := A*invDet, D*invDet, G*invDet
	r10, r11, r12 := B*invDet, E*invDet, H*invDet
	r20, r21, r22 := C*invDet, F*invDet, I*invDet

	t := m.Translation()
	it := Vec3{
		-(r00*t[0] + r01*t[1] + r02*t[2]),
		-(r10*t[0] + r11*t[1] + r12*t[2]),
		-(r20*t[0] + r21*t[1] + r22*t[2]),
	}

	return Mat4{
		r00, r01, r02, it[0],
		r10, r11, r12, it[1],
		r20, r21, r22, it[2],
		0, 0, 0, 1,
	}
}

func floatAbs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
