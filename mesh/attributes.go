package mesh

// ExpandIndexed dereferences an indexed primvar (e.g.
// primvars:normals:indices) into a per-face-vertex array by looking up
// each index in raw. When a primvar carries no separate indices array,
// callers should pass the raw attribute array straight through instead
// of calling this function.
func ExpandIndexed[T any](raw []T, indices []int32) []T {
	out := make([]T, len(indices))
	for i, idx := range indices {
		out[i] = raw[idx]
	}
	return out
}

// ResolvePrimvar returns the per-face-vertex values for a primvar: if
// indices is non-empty it dereferences raw through indices, otherwise it
// returns raw unchanged.
func ResolvePrimvar[T any](raw []T, indices []int32) []T {
	if len(indices) == 0 {
		return raw
	}
	return ExpandIndexed(raw, indices)
}
