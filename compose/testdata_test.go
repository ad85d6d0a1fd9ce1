package compose

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/achilleasa/usdindex/config"
	"github.com/achilleasa/usdindex/index"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func buildAndLoad(t *testing.T, rootPath string, cfg *config.Config) *index.LoadedIndex {
	t.Helper()
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.usdi")

	_, err := BuildIndex(rootPath, outPath, cfg)
	require.NoError(t, err)

	loaded, err := index.LoadFromIndex(outPath, 0)
	require.NoError(t, err)
	return loaded
}
