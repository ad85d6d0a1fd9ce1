package usd

import (
	"testing"

	"github.com/achilleasa/usdindex/types"
)

func TestValueMismatchIsAbsent(t *testing.T) {
	v := IntValue(42)
	if _, ok := v.Float(); ok {
		t.Fatalf("expected Float() on an int Value to report absent")
	}
	if n, ok := v.Int(); !ok || n != 42 {
		t.Fatalf("expected Int() to report the stored value; got %d, %v", n, ok)
	}
}

func TestValueVec3RoundTrip(t *testing.T) {
	want := types.Vec3{1, 2, 3}
	v := Vec3Value(want)
	got, ok := v.Vec3()
	if !ok || got != want {
		t.Fatalf("expected Vec3() to round-trip; got %+v, %v", got, ok)
	}
	if _, ok := v.Vec4(); ok {
		t.Fatalf("expected Vec4() on a Vec3 Value to report absent")
	}
}

func TestValueArrayLen(t *testing.T) {
	v := FloatArrayValue([]float32{1, 2, 3})
	if v.Len() != 3 {
		t.Fatalf("expected Len() == 3, got %d", v.Len())
	}
	scalar := FloatValue(1)
	if scalar.Len() != -1 {
		t.Fatalf("expected Len() == -1 for a scalar Value, got %d", scalar.Len())
	}
}

func TestValueTokenVsString(t *testing.T) {
	v := TokenValue("x")
	if _, ok := v.String(); ok {
		t.Fatalf("expected a token Value to not satisfy String()")
	}
	if s, ok := v.Token(); !ok || s != "x" {
		t.Fatalf("expected Token() to report the stored text")
	}
}
