package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, 32, cfg.MaxDepth)
	require.Greater(t, cfg.MaxFiles, 1000000)
	require.Equal(t, 0, cfg.SkipFiles)
	require.Equal(t, 2048, cfg.FlushEveryNMeshes)
}

func TestLoadPreservesExplicitZeroMaxFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("content_root: /assets\nmax_files: 0\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 0, cfg.MaxFiles)
}

func TestLoadAppliesDefaultsForZeroFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yamlBody := "content_root: /assets\nbinary_to_text_tool: /usr/bin/usdcat\nmax_files: 10\n"
	require.NoError(t, os.WriteFile(path, []byte(yamlBody), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/assets", cfg.ContentRoot)
	require.Equal(t, "/usr/bin/usdcat", cfg.BinaryToTextTool)
	require.Equal(t, 10, cfg.MaxFiles)
	require.Equal(t, 32, cfg.MaxDepth)
	require.Equal(t, 2048, cfg.FlushEveryNMeshes)
}

func TestLoadHonorsExplicitNonDefaultCaps(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yamlBody := "content_root: /assets\nmax_depth: 4\nflush_every_n_meshes: 1\n"
	require.NoError(t, os.WriteFile(path, []byte(yamlBody), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.MaxDepth)
	require.Equal(t, 1, cfg.FlushEveryNMeshes)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
}
