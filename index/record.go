package index

import "github.com/achilleasa/usdindex/types"

// Record is one mesh occurrence, as stored in a shard and in the final
// index. SourcePath is the file path of the stage the mesh prim lives in
// (shards store it verbatim; the final index replaces it with a dense
// index into the source-paths table).
type Record struct {
	SourcePath string
	MeshName   string
	MeshPath   string

	Position types.Vec3
	Rotation types.Quat
	Scale    types.Vec3

	HasSkeleton bool
	HasExtent   bool
	ExtentMin   types.Vec3
	ExtentMax   types.Vec3
}
