package coord

import (
	"testing"

	"github.com/achilleasa/usdindex/types"
)

func approxMat4(a, b types.Mat4, tol float32) bool {
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if d > tol {
			return false
		}
	}
	return true
}

// Property 9: for a matrix built from translation T, rotation R, and unit
// scale, decomposing then recomposing reconstructs T*R within tolerance.
func TestDecomposeRecomposeUnitScale(t *testing.T) {
	translation := types.Vec3{5, -3, 8}
	rot := RotateXYZOp(10, 20, 30)
	want := ComposeWorld(TranslateOp(translation), rot)

	gotT, gotR, gotS := Decompose(want)
	if !approxVec3(gotT, translation, 1e-4) {
		t.Fatalf("decomposed translation = %+v, want %+v", gotT, translation)
	}
	if !approxVec3(gotS, types.Vec3{1, 1, 1}, 1e-4) {
		t.Fatalf("decomposed scale = %+v, want (1,1,1)", gotS)
	}

	got := Recompose(gotT, gotR, gotS)
	if !approxMat4(got, want, 1e-4) {
		t.Fatalf("Recompose(Decompose(m)) != m:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestQuatFromRotationRoundTrip(t *testing.T) {
	rot := RotateXYZOp(33, -17, 62)
	_, r3, _ := Decompose(rot)

	q := QuatFromRotation(r3)
	back := MatFromQuat(q)
	if !approxMat3(back, r3, 1e-4) {
		t.Fatalf("MatFromQuat(QuatFromRotation(r)) != r:\ngot  %+v\nwant %+v", back, r3)
	}
}

func approxMat3(a, b types.Mat3, tol float32) bool {
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if d > tol {
			return false
		}
	}
	return true
}

func TestConvertRotationBasisOrthonormal(t *testing.T) {
	_, r3, _ := Decompose(RotateXYZOp(12, 45, -30))
	target := ConvertRotationBasis(r3)

	col := func(m types.Mat3, c int) types.Vec3 {
		return types.Vec3{m[c], m[c+3], m[c+6]}
	}
	for c := 0; c < 3; c++ {
		if l := col(target, c).Len(); l < 0.999 || l > 1.001 {
			t.Fatalf("expected column %d to be unit length, got %v", c, l)
		}
	}
}
