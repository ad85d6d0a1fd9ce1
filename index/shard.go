package index

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/achilleasa/usdindex/types"
)

// writeShard serializes records to a transient shard file: record count
// (i32), then per record: source path / mesh name / mesh path (each
// Int32-length-prefixed UTF-8), position, rotation, scale, a flags byte,
// and the extent if present. All numeric fields are little-endian.
func writeShard(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, int32(len(records))); err != nil {
		return err
	}
	for _, rec := range records {
		if err := writeShardString(w, rec.SourcePath); err != nil {
			return err
		}
		if err := writeShardString(w, rec.MeshName); err != nil {
			return err
		}
		if err := writeShardString(w, rec.MeshPath); err != nil {
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
	}
	return w.Flush()
}

func writeShardString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, int32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func writeVec3(w io.Writer, v types.Vec3) error {
	for _, c := range v {
		if err := binary.Write(w, binary.LittleEndian, c); err != nil {
			return err
		}
	}
	return nil
}

func writeQuat(w io.Writer, q types.Quat) error {
	if err := writeVec3(w, q.V); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, q.W)
}

// readShard deserializes a shard file written by writeShard.
func readShard(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var count int32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, err
	}

	out := make([]Record, 0, int(count))
	for i := int32(0); i < count; i++ {
		var rec Record
		if rec.SourcePath, err = readShardString(r); err != nil {
			return nil, err
		}
		if rec.MeshName, err = readShardString(r); err != nil {
			return nil, err
		}
		if rec.MeshPath, err = readShardString(r); err != nil {
			return nil, err
		}
		if rec.Position, err = readVec3(r); err != nil {
			return nil, err
		}
		if rec.Rotation, err = readQuat(r); err != nil {
			return nil, err
		}
		if rec.Scale, err = readVec3(r); err != nil {
			return nil, err
		}

		flags, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		rec.HasSkeleton = flags&0x1 != 0
		rec.HasExtent = flags&0x2 != 0
		if rec.HasExtent {
			if rec.ExtentMin, err = readVec3(r); err != nil {
				return nil, err
			}
			if rec.ExtentMax, err = readVec3(r); err != nil {
				return nil, err
			}
		}

		out = append(out, rec)
	}
	return out, nil
}

func readShardString(r *bufio.Reader) (string, error) {
	var n int32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func readVec3(r io.Reader) (types.Vec3, error) {
	var v types.Vec3
	for i := range v {
		if err := binary.Read(r, binary.LittleEndian, &v[i]); err != nil {
			return v, err
		}
	}
	return v, nil
}

func readQuat(r io.Reader) (types.Quat, error) {
	v, err := readVec3(r)
	if err != nil {
		return types.Quat{}, err
	}
	var w float32
	if err := binary.Read(r, binary.LittleEndian, &w); err != nil {
		return types.Quat{}, err
	}
	return types.Quat{V: v, W: w}, nil
}
