package index

import (
	"bufio"
	"os"

	"github.com/achilleasa/usdindex/types"
)

// writeFinalIndex emits the final binary scene-index (§6 of the format):
// magic, version, the sorted/deduplicated source-paths table, then every
// record with its source path replaced by a dense table index. Writers
// always emit version 2 (values already in the target frame).
func writeFinalIndex(path string, sourcePaths []string, records []Record, indexOf map[string]int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	if _, err := w.WriteString(magic); err != nil {
		return err
	}
	if err := writeUvarint(w, writerVersion); err != nil {
		return err
	}
	if err := writeUvarint(w, uint64(len(sourcePaths))); err != nil {
		return err
	}
	for _, p := range sourcePaths {
		if err := writeString7(w, p); err != nil {
			return err
		}
	}

	if err := writeUvarint(w, uint64(len(records))); err != nil {
		return err
	}
	for _, rec := range records {
		if err := writeFinalRecord(w, rec, indexOf); err != nil {
			return err
		}
	}

	return w.Flush()
}

func writeFinalRecord(w *bufio.Writer, rec Record, indexOf map[string]int) error {
	if err := writeUvarint(w, uint64(indexOf[rec.SourcePath])); err != nil {
		return err
	}
	if err := writeString7(w, rec.MeshName); err != nil {
		return err
	}
	if err := writeString7(w, rec.MeshPath); err != nil {
		return err
	}
	if err := writeVec3(w, rec.Position); err != nil {
		return err
	}
	if err := writeQuat(w, rec.Rotation); err != nil {
		return err
	}
	if err := writeVec3(w, rec.Scale); err != nil {
		return err
	}

	var flags byte
	if rec.HasSkeleton {
		flags |= 0x1
	}
	if rec.HasExtent {
		flags |= 0x2
	}
	if err := w.WriteByte(flags); err != nil {
		return err
	}

	if rec.HasExtent {
		if err := writeVec3(w, rec.ExtentMin); err != nil {
			return err
		}
		if err := writeVec3(w, rec.ExtentMax); err != nil {
			return err
		}
	}
	return nil
}

// LoadedIndex is the parsed contents of a final binary scene-index.
type LoadedIndex struct {
	Version     int
	SourcePaths []string
	Records     []LoadedRecord
}

// LoadedRecord is a mesh record resolved against the source-paths table,
// always expressed in the target frame regardless of the file's on-disk
// version.
type LoadedRecord struct {
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

// GroupBySourceFile yields a mapping from source path to its records, in
// index order.
func (idx *LoadedIndex) GroupBySourceFile() map[string][]LoadedRecord {
	out := make(map[string][]LoadedRecord)
	for _, rec := range idx.Records {
		out[rec.SourcePath] = append(out[rec.SourcePath], rec)
	}
	return out
}

// GeometryInstance is one occurrence of a mesh: its world position,
// rotation and scale in the target frame.
type GeometryInstance struct {
	Position types.Vec3
	Rotation types.Quat
	Scale    types.Vec3
}

// GeometryInstances yields a mapping from "source_path|mesh_name" to the
// list of world transforms of its occurrences.
func (idx *LoadedIndex) GeometryInstances() map[string][]GeometryInstance {
	out := make(map[string][]GeometryInstance)
	for _, rec := range idx.Records {
		key := rec.SourcePath + "|" + rec.MeshName
		out[key] = append(out[key], GeometryInstance{
			Position: rec.Position,
			Rotation: rec.Rotation,
			Scale:    rec.Scale,
		})
	}
	return out
}
