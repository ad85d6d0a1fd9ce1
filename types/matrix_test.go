package types

import "testing"

func TestMat4MulIdent(t *testing.T) {
	m := Translate4(Vec3{1, 2, 3})
	out := m.Mul(Ident4())
	if out != m {
		t.Fatalf("expected m * ident == m; got %+v", out)
	}
}

func TestMat4InvTranslate(t *testing.T) {
	m := Translate4(Vec3{1, 2, 3})
	inv := m.Inv()
	p := inv.MulPoint(Vec3{1, 2, 3})
	if p.Sub(Vec3{0, 0, 0}).Len() > 1e-4 {
		t.Fatalf("expected inverse translation to map (1,2,3) back to origin; got %+v", p)
	}
}

func TestMat4InvRoundTrip(t *testing.T) {
	m := Translate4(Vec3{10, 20, 30}).Mul(RotateXYZ(10, 20, 30)).Mul(Scale4(Vec3{2, 2, 2}))
	inv := m.Inv()
	roundTrip := m.Mul(inv)
	ident := Ident4()
	for i := range roundTrip {
		if floatAbs(roundTrip[i]-ident[i]) > 1e-3 {
			t.Fatalf("expected m * m.Inv() ~= identity; got %+v", roundTrip)
		}
	}
}

func TestRotateXYZOrder(t *testing.T) {
	// rotateXYZ(x,y,z) == R_z * R_y * R_x
	x, y, z := float32(15), float32(30), float32(45)
	combined := RotateXYZ(x, y, z)
	expected := RotateZ4(z).Mul(RotateY4(y)).Mul(RotateX4(x))
	if combined != expected {
		t.Fatalf("expected RotateXYZ to compose as R_z * R_y * R_x")
	}
}
