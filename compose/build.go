package compose

import (
	"os"
	"path/filepath"

	"github.com/achilleasa/usdindex/config"
	"github.com/achilleasa/usdindex/index"
	"github.com/achilleasa/usdindex/log"
)

// BuildIndex walks inputStage under cfg's tunables and writes the
// resulting binary scene-index to outputPath, returning the writer's
// finalize stats.
func BuildIndex(inputStage, outputPath string, cfg *config.Config) (*index.Stats, error) {
	logger := log.New("compose")

	tempDir, err := os.MkdirTemp("", "usdindex-shards-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tempDir)

	writer, err := index.NewWriter(index.WriterConfig{
		FlushEveryNMeshes: cfg.FlushEveryNMeshes,
		TempDir:           tempDir,
		OutputPath:        outputPath,
	}, logger)
	if err != nil {
		return nil, err
	}

	traverser := NewTraverser(cfg, writer, logger)
	if err := traverser.Traverse(filepath.Clean(inputStage)); err != nil {
		return nil, err
	}

	logger.Infof("compose: discovered %d files, emitted %d meshes, skipped %d",
		traverser.Stats.FilesDiscovered, traverser.Stats.MeshesEmitted, traverser.Stats.MeshesSkipped)

	return writer.Finalize()
}
