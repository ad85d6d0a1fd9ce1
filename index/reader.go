package index

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/achilleasa/usdindex/coord"
	"github.com/achilleasa/usdindex/usderr"
)

// ErrBadMagic and ErrUnsupportedVersion are fatal: the reader refuses to
// proceed when the file isn't one of ours, or uses a version it doesn't
// understand. Both carry usderr.FormatMismatch.
var (
	ErrBadMagic           = usderr.New(usderr.FormatMismatch, "bad magic")
	ErrUnsupportedVersion = usderr.New(usderr.FormatMismatch, "unsupported version")
)

// LoadFromIndex parses a final binary scene-index. For version 1 files,
// position/extent/rotation/scale are converted from source to target
// frame on read; version 2 files are returned verbatim. maxMeshes caps
// the number of records returned (0 means unlimited).
func LoadFromIndex(path string, maxMeshes int) (*LoadedIndex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)

	magicBuf := make([]byte, 4)
	if _, err := io.ReadFull(r, magicBuf); err != nil {
		return nil, err
	}
	if string(magicBuf) != magic {
		return nil, ErrBadMagic
	}

	version, err := readUvarint(r)
	if err != nil {
		return nil, err
	}
	if version != 1 && version != 2 {
		return nil, ErrUnsupportedVersion
	}

	sourceCount, err := readUvarint(r)
	if err != nil {
		return nil, err
	}
	sourcePaths := make([]string, sourceCount)
	for i := range sourcePaths {
		if sourcePaths[i], err = readString7(r); err != nil {
			return nil, err
		}
	}

	meshCount, err := readUvarint(r)
	if err != nil {
		return nil, err
	}

	limit := int(meshCount)
	if maxMeshes > 0 && maxMeshes < limit {
		limit = maxMeshes
	}

	records := make([]LoadedRecord, 0, limit)
	for i := uint64(0); i < meshCount; i++ {
		rec, err := readFinalRecord(r, sourcePaths)
		if err != nil {
			return nil, err
		}
		if i < uint64(limit) {
			if version == 1 {
				rec = convertRecordToTarget(rec)
			}
			records = append(records, rec)
		}
	}

	return &LoadedIndex{
		Version:     int(version),
		SourcePaths: sourcePaths,
		Records:     records,
	}, nil
}

func readFinalRecord(r *bufio.Reader, sourcePaths []string) (LoadedRecord, error) {
	var rec LoadedRecord

	sourceIndex, err := readUvarint(r)
	if err != nil {
		return rec, err
	}
	if int(sourceIndex) >= len(sourcePaths) {
		return rec, fmt.Errorf("index: source_index %d out of range (table has %d entries)", sourceIndex, len(sourcePaths))
	}
	rec.SourcePath = sourcePaths[sourceIndex]

	if rec.MeshName, err = readString7(r); err != nil {
		return rec, err
	}
	if rec.MeshPath, err = readString7(r); err != nil {
		return rec, err
	}
	if rec.Position, err = readVec3(r); err != nil {
		return rec, err
	}
	if rec.Rotation, err = readQuat(r); err != nil {
		return rec, err
	}
	if rec.Scale, err = readVec3(r); err != nil {
		return rec, err
	}

	flags, err := r.ReadByte()
	if err != nil {
		return rec, err
	}
	rec.HasSkeleton = flags&0x1 != 0
	rec.HasExtent = flags&0x2 != 0
	if rec.HasExtent {
		if rec.ExtentMin, err = readVec3(r); err != nil {
			return rec, err
		}
		if rec.ExtentMax, err = readVec3(r); err != nil {
			return rec, err
		}
	}
	return rec, nil
}

// convertRecordToTarget applies the coordinate conversion to a version-1
// record read in source coordinates.
func convertRecordToTarget(rec LoadedRecord) LoadedRecord {
	rec.Position = coord.Point(rec.Position)
	rec.Rotation = coord.Quat(rec.Rotation)
	rec.Scale = coord.Scale(rec.Scale)
	if rec.HasExtent {
		rec.ExtentMin, rec.ExtentMax = coord.Extent(rec.ExtentMin, rec.ExtentMax)
	}
	return rec
}
