package mesh

import (
	"testing"

	"github.com/achilleasa/usdindex/types"
)

func TestIsCenteredSkeletonBoundAlwaysCentered(t *testing.T) {
	if !IsCentered("anything", true, false, types.Vec3{}, types.Vec3{}) {
		t.Fatalf("expected a skeleton-bound mesh to always be centered")
	}
}

func TestIsCenteredNameMatchRequiresLargeExtent(t *testing.T) {
	small := types.Vec3{-1, -1, 0}
	smallMax := types.Vec3{1, 1, 1}
	if IsCentered("polySurfaceShape1", false, true, small, smallMax) {
		t.Fatalf("expected a small-extent name-matched mesh to not be centered")
	}

	large := types.Vec3{19, -1, 0}
	largeMax := types.Vec3{21, 1, 1}
	if !IsCentered("polySurfaceShape1", false, true, large, largeMax) {
		t.Fatalf("expected a name-matched mesh with large X midpoint to be centered")
	}
}

func TestIsCenteredUnmatchedNameNeverCentered(t *testing.T) {
	large := types.Vec3{19, -1, 0}
	largeMax := types.Vec3{21, 1, 1}
	if IsCentered("customMeshName", false, true, large, largeMax) {
		t.Fatalf("expected a non-matching mesh name to never be centered regardless of extent")
	}
}

func TestCenterPointsLeavesZUntouched(t *testing.T) {
	points := []types.Vec3{{20, 0, 5}}
	min := types.Vec3{19, -1, 0}
	max := types.Vec3{21, 1, 10}
	got := CenterPoints(points, min, max)
	want := types.Vec3{0, 0, 5}
	if got[0] != want {
		t.Fatalf("CenterPoints = %+v, want %+v", got[0], want)
	}
}
