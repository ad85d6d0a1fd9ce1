package mesh

import (
	"reflect"
	"testing"
)

func TestTriangulateQuad(t *testing.T) {
	counts := []int32{4}
	indices := []int32{10, 11, 12, 13}
	points, slots := Triangulate(counts, indices)

	wantPoints := []int32{10, 11, 12, 10, 12, 13}
	wantSlots := []int32{0, 1, 2, 0, 2, 3}
	if !reflect.DeepEqual(points, wantPoints) {
		t.Fatalf("points = %v, want %v", points, wantPoints)
	}
	if !reflect.DeepEqual(slots, wantSlots) {
		t.Fatalf("slots = %v, want %v", slots, wantSlots)
	}
}

func TestTriangulateDegenerateTriangleScenarioA(t *testing.T) {
	counts := []int32{3}
	indices := []int32{0, 0, 0}
	points, _ := Triangulate(counts, indices)
	if !reflect.DeepEqual(points, []int32{0, 0, 0}) {
		t.Fatalf("expected one degenerate triangle with repeated index 0; got %v", points)
	}
}

func TestTriangulateSkipsDegenerateFaces(t *testing.T) {
	counts := []int32{2, 3}
	indices := []int32{0, 1, 2, 3, 4}
	points, slots := Triangulate(counts, indices)
	if !reflect.DeepEqual(points, []int32{2, 3, 4}) {
		t.Fatalf("expected the 2-vertex face to be skipped; got %v", points)
	}
	if !reflect.DeepEqual(slots, []int32{2, 3, 4}) {
		t.Fatalf("expected slots offset past the skipped face; got %v", slots)
	}
}

func TestTriangulatePentagonFanCount(t *testing.T) {
	counts := []int32{5}
	indices := []int32{0, 1, 2, 3, 4}
	points, _ := Triangulate(counts, indices)
	if len(points) != 3*(5-2) {
		t.Fatalf("expected %d triangle corners, got %d", 3*(5-2), len(points))
	}
}
