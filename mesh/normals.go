package mesh

import "github.com/achilleasa/usdindex/types"

// SynthesizeFlatNormals builds one normal per face vertex when a mesh
// carries no authored normals: each face gets a single normal from the
// cross product of its first two edges (falling back to +Z if the
// result is degenerate), repeated across every vertex of that face.
func SynthesizeFlatNormals(points []types.Vec3, faceVertexCounts, faceVertexIndices []int32) []types.Vec3 {
	out := make([]types.Vec3, 0, len(faceVertexIndices))

	offset := int32(0)
	for _, n := range faceVertexCounts {
		if n < 3 {
			offset += n
			continue
		}

		p0 := points[faceVertexIndices[offset]]
		p1 := points[faceVertexIndices[offset+1]]
		p2 := points[faceVertexIndices[offset+2]]

		edge1 := p1.Sub(p0)
		edge2 := p2.Sub(p0)
		normal := edge1.Cross(edge2)
		if normal.Len() < 1e-8 {
			normal = types.Vec3{0, 0, 1}
		} else {
			normal = normal.Normalize()
		}

		for i := int32(0); i < n; i++ {
			out = append(out, normal)
		}
		offset += n
	}
	return out
}
