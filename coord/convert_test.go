package coord

import (
	"testing"

	"github.com/achilleasa/usdindex/types"
)

func approxVec3(a, b types.Vec3, tol float32) bool {
	for i := 0; i < 3; i++ {
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

func TestPointMapping(t *testing.T) {
	got := Point(types.Vec3{10, 20, 30})
	want := types.Vec3{20, -10, 30}
	if got != want {
		t.Fatalf("Point(10,20,30) = %+v, want %+v", got, want)
	}
}

func TestScaleMapping(t *testing.T) {
	got := Scale(types.Vec3{1, 2, 3})
	want := types.Vec3{2, 1, 3}
	if got != want {
		t.Fatalf("Scale(1,2,3) = %+v, want %+v", got, want)
	}
}

// Property 8: conversion composed with its inverse is the identity, within
// 1e-5, for positions, normals, quaternions and (by extension) bases.
func TestInvolutionProperty(t *testing.T) {
	p := types.Vec3{3, -7, 11}
	if got := InversePoint(Point(p)); !approxVec3(got, p, 1e-5) {
		t.Fatalf("Point/InversePoint round trip failed: got %+v, want %+v", got, p)
	}

	s := types.Vec3{2, 5, 9}
	if got := InverseScale(Scale(s)); !approxVec3(got, s, 1e-5) {
		t.Fatalf("Scale/InverseScale round trip failed: got %+v, want %+v", got, s)
	}

	q := types.Quat{V: types.Vec3{0.1, 0.2, 0.3}, W: 0.9}
	got := InverseQuat(Quat(q))
	if !approxVec3(got.V, q.V, 1e-5) || float32abs(got.W-q.W) > 1e-5 {
		t.Fatalf("Quat/InverseQuat round trip failed: got %+v, want %+v", got, q)
	}
}

func float32abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func TestExtentRemapReordersMinMax(t *testing.T) {
	// Source min/max (0,0,0)-(1,1,1). Point maps x:=y, y:=-x, so the
	// X-axis min/max swap sign and must be re-sorted.
	min, max := Extent(types.Vec3{0, 0, 0}, types.Vec3{1, 1, 1})
	if min[1] != -1 || max[1] != 0 {
		t.Fatalf("expected remapped Y range [-1,0]; got min=%+v max=%+v", min, max)
	}
	if min[0] != 0 || max[0] != 1 {
		t.Fatalf("expected remapped X range [0,1]; got min=%+v max=%+v", min, max)
	}
}

func TestScenarioBCoordinateConversion(t *testing.T) {
	// Spec scenario (b): xformOp:translate = (10,20,30) emits world
	// position (20,-10,30).
	local := ComposeOps([]types.Mat4{TranslateOp(types.Vec3{10, 20, 30})})
	world := ComposeWorld(types.Ident4(), local)
	translation, _, _ := Decompose(world)
	got := Point(translation)
	want := types.Vec3{20, -10, 30}
	if !approxVec3(got, want, 1e-5) {
		t.Fatalf("scenario (b): got %+v, want %+v", got, want)
	}
}

func TestRotateXYZOpOrder(t *testing.T) {
	m := RotateXYZOp(15, 30, 45)
	expected := types.RotateZ4(45).Mul(types.RotateY4(30)).Mul(types.RotateX4(15))
	if m != expected {
		t.Fatalf("RotateXYZOp must compose as R_z * R_y * R_x")
	}
}

func TestComposeOpsFirstAppliedFirst(t *testing.T) {
	// translate then scale, in that xformOpOrder: a point at the origin
	// should end up scaled-then-translated is wrong; translate-first
	// means the point is translated, then scaled about the origin.
	ops := []types.Mat4{
		TranslateOp(types.Vec3{1, 0, 0}),
		ScaleOp(types.Vec3{2, 2, 2}),
	}
	m := ComposeOps(ops)
	p := m.MulPoint(types.Vec3{0, 0, 0})
	want := types.Vec3{2, 0, 0} // (0,0,0) + (1,0,0) = (1,0,0), then * 2 = (2,0,0)
	if !approxVec3(p, want, 1e-5) {
		t.Fatalf("expected first-listed op applied first; got %+v, want %+v", p, want)
	}
}
