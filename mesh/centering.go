package mesh

import (
	"regexp"

	"github.com/achilleasa/usdindex/types"
)

// centeredNamePatterns matches mesh names produced by DCC tools that
// author geometry far from the origin; such meshes are recentered unless
// their planar extent is small enough that centering would be pointless.
var centeredNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^polySurfaceShape\d*$`),
	regexp.MustCompile(`^pPlaneShape\d*$`),
	regexp.MustCompile(`^geoShape\d*$`),
}

// centeringPlanarThreshold is the magnitude, in source-frame units, that
// either planar axis midpoint must exceed for a name-matched mesh (with
// no skeleton binding) to be centered.
const centeringPlanarThreshold = 10.0

// IsCentered reports whether a mesh's points should be recentered before
// coordinate conversion: any skeleton-bound mesh is centered
// unconditionally; otherwise a name match additionally requires the
// planar extent midpoint to exceed centeringPlanarThreshold on X or Y.
func IsCentered(name string, hasSkeleton, hasExtent bool, extentMin, extentMax types.Vec3) bool {
	if hasSkeleton {
		return true
	}
	if !hasExtent {
		return false
	}
	if !matchesCenteredName(name) {
		return false
	}
	midX := (extentMin[0] + extentMax[0]) / 2
	midY := (extentMin[1] + extentMax[1]) / 2
	return absf(midX) > centeringPlanarThreshold || absf(midY) > centeringPlanarThreshold
}

func matchesCenteredName(name string) bool {
	for _, re := range centeredNamePatterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// CenterPoints subtracts ((min_x+max_x)/2, (min_y+max_y)/2, 0) from every
// point, in the source frame, before coordinate conversion. Z is left
// untouched to preserve ground contact.
func CenterPoints(points []types.Vec3, extentMin, extentMax types.Vec3) []types.Vec3 {
	offset := types.Vec3{
		(extentMin[0] + extentMax[0]) / 2,
		(extentMin[1] + extentMax[1]) / 2,
		0,
	}
	out := make([]types.Vec3, len(points))
	for i, p := range points {
		out[i] = p.Sub(offset)
	}
	return out
}
