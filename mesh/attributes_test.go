package mesh

import "testing"

func TestResolvePrimvarWithIndices(t *testing.T) {
	raw := []float32{10, 20, 30}
	indices := []int32{2, 0, 1, 1}
	got := ResolvePrimvar(raw, indices)
	want := []float32{30, 10, 20, 20}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ResolvePrimvar()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestResolvePrimvarWithoutIndicesPassesThrough(t *testing.T) {
	raw := []string{"a", "b", "c"}
	got := ResolvePrimvar[string](raw, nil)
	if len(got) != 3 || got[0] != "a" {
		t.Fatalf("expected raw array passed through unchanged, got %v", got)
	}
}
