package index

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"

	"github.com/achilleasa/usdindex/log"
)

const magic = "USDI"
const writerVersion = 2

// WriterConfig configures shard flushing and the final output location.
type WriterConfig struct {
	FlushEveryNMeshes int
	TempDir           string
	OutputPath        string
}

// Writer buffers mesh records and spills them to numbered shard files in
// TempDir once FlushEveryNMeshes is reached, then merges the shards into
// the final binary index on Finalize.
type Writer struct {
	cfg    WriterConfig
	logger log.Logger

	buffered   []Record
	shardPaths []string
}

// NewWriter creates a Writer. TempDir is created if it does not exist.
func NewWriter(cfg WriterConfig, logger log.Logger) (*Writer, error) {
	if err := os.MkdirAll(cfg.TempDir, 0o755); err != nil {
		return nil, err
	}
	return &Writer{cfg: cfg, logger: logger}, nil
}

// Add appends one record, flushing to a shard once the threshold is
// reached. It returns false (with the triggering error) if a flush
// failed; the caller should stop emitting but may still call Finalize to
// preserve the shards already written.
func (w *Writer) Add(rec Record) (bool, error) {
	w.buffered = append(w.buffered, rec)
	if w.cfg.FlushEveryNMeshes > 0 && len(w.buffered) >= w.cfg.FlushEveryNMeshes {
		return w.Flush()
	}
	return true, nil
}

// Flush serializes the current buffer into a new shard file, regardless
// of whether the threshold has been reached. It is safe to call with an
// empty buffer (a no-op).
func (w *Writer) Flush() (bool, error) {
	if len(w.buffered) == 0 {
		return true, nil
	}

	name := fmt.Sprintf("shard-%04d-%s.bin", len(w.shardPaths), uuid.New().String()[:8])
	path := filepath.Join(w.cfg.TempDir, name)
	if err := writeShard(path, w.buffered); err != nil {
		w.logger.Warningf("index: failed to write shard %s: %v", path, err)
		return false, err
	}

	w.shardPaths = append(w.shardPaths, path)
	w.buffered = w.buffered[:0]
	return true, nil
}

// Finalize flushes any remaining buffered records, merges every shard in
// creation order, assigns dense indices to the deduplicated and sorted
// source-paths table, and writes the final index to cfg.OutputPath.
// Shards are left on disk if an error occurs so the caller can retry or
// inspect them.
func (w *Writer) Finalize() (*Stats, error) {
	if ok, err := w.Flush(); !ok {
		return nil, err
	}

	var all []Record
	for _, path := range w.shardPaths {
		recs, err := readShard(path)
		if err != nil {
			w.logger.Warningf("index: failed to read shard %s during finalize: %v", path, err)
			return nil, err
		}
		all = append(all, recs...)
	}

	pathSet := make(map[string]struct{})
	for _, rec := range all {
		pathSet[rec.SourcePath] = struct{}{}
	}
	sourcePaths := make([]string, 0, len(pathSet))
	for p := range pathSet {
		sourcePaths = append(sourcePaths, p)
	}
	sort.Strings(sourcePaths)

	indexOf := make(map[string]int, len(sourcePaths))
	for i, p := range sourcePaths {
		indexOf[p] = i
	}

	if err := writeFinalIndex(w.cfg.OutputPath, sourcePaths, all, indexOf); err != nil {
		w.logger.Warningf("index: failed to write final index %s: %v", w.cfg.OutputPath, err)
		return nil, err
	}

	return &Stats{
		ShardCount:  len(w.shardPaths),
		RecordCount: len(all),
		SourceCount: len(sourcePaths),
	}, nil
}

// Stats summarizes a completed Finalize call.
type Stats struct {
	ShardCount  int
	RecordCount int
	SourceCount int
}
