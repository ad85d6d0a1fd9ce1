package index

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/achilleasa/usdindex/log"
	"github.com/achilleasa/usdindex/types"
)

func testLogger() log.Logger { return log.New("index_test") }

func sampleRecord(sourcePath, meshName string) Record {
	return Record{
		SourcePath: sourcePath,
		MeshName:   meshName,
		MeshPath:   "/" + meshName,
		Position:   types.Vec3{1, 2, 3},
		Rotation:   types.Quat{V: types.Vec3{0, 0, 0}, W: 1},
		Scale:      types.Vec3{1, 1, 1},
	}
}

func TestWriterFinalizeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(WriterConfig{
		FlushEveryNMeshes: 2,
		TempDir:           filepath.Join(dir, "shards"),
		OutputPath:        filepath.Join(dir, "out.usdi"),
	}, testLogger())
	require.NoError(t, err)

	records := []Record{
		sampleRecord("b.usda", "meshB"),
		sampleRecord("a.usda", "meshA"),
		sampleRecord("a.usda", "meshA2"),
	}
	for _, rec := range records {
		ok, err := w.Add(rec)
		require.NoError(t, err)
		require.True(t, ok)
	}

	stats, err := w.Finalize()
	require.NoError(t, err)
	require.Equal(t, 3, stats.RecordCount)
	require.Equal(t, 2, stats.SourceCount)

	loaded, err := LoadFromIndex(filepath.Join(dir, "out.usdi"), 0)
	require.NoError(t, err)
	require.Equal(t, 2, loaded.Version)
	require.Len(t, loaded.Records, 3)

	// Property 3: source-paths table is sorted and deduplicated.
	require.Equal(t, []string{"a.usda", "b.usda"}, loaded.SourcePaths)
}

func TestFlushGranularityInvarianceProperty12(t *testing.T) {
	records := []Record{
		sampleRecord("x.usda", "m1"),
		sampleRecord("x.usda", "m2"),
		sampleRecord("y.usda", "m3"),
		sampleRecord("y.usda", "m4"),
		sampleRecord("z.usda", "m5"),
	}

	out1 := buildAndRead(t, records, 1)
	outMany := buildAndRead(t, records, 1000000)

	require.Equal(t, len(out1.Records), len(outMany.Records))
	for i := range out1.Records {
		require.Equal(t, out1.Records[i].SourcePath, outMany.Records[i].SourcePath)
		require.Equal(t, out1.Records[i].MeshName, outMany.Records[i].MeshName)
	}
}

func buildAndRead(t *testing.T, records []Record, flushEvery int) *LoadedIndex {
	t.Helper()
	dir := t.TempDir()
	w, err := NewWriter(WriterConfig{
		FlushEveryNMeshes: flushEvery,
		TempDir:           filepath.Join(dir, "shards"),
		OutputPath:        filepath.Join(dir, "out.usdi"),
	}, testLogger())
	require.NoError(t, err)
	for _, rec := range records {
		_, err := w.Add(rec)
		require.NoError(t, err)
	}
	_, err = w.Finalize()
	require.NoError(t, err)
	loaded, err := LoadFromIndex(filepath.Join(dir, "out.usdi"), 0)
	require.NoError(t, err)
	return loaded
}

func TestLoadFromIndexMaxMeshesCap(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(WriterConfig{
		FlushEveryNMeshes: 10,
		TempDir:           filepath.Join(dir, "shards"),
		OutputPath:        filepath.Join(dir, "out.usdi"),
	}, testLogger())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err := w.Add(sampleRecord("a.usda", "m"))
		require.NoError(t, err)
	}
	_, err = w.Finalize()
	require.NoError(t, err)

	loaded, err := LoadFromIndex(filepath.Join(dir, "out.usdi"), 2)
	require.NoError(t, err)
	require.Len(t, loaded.Records, 2)
}

func TestLoadFromIndexBadMagic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.usdi")
	require.NoError(t, os.WriteFile(path, []byte("NOPE"), 0o644))

	_, err := LoadFromIndex(path, 0)
	require.ErrorIs(t, err, ErrBadMagic)
}

func TestGroupBySourceFileAndGeometryInstances(t *testing.T) {
	records := []Record{
		sampleRecord("a.usda", "mesh1"),
		sampleRecord("a.usda", "mesh1"),
		sampleRecord("b.usda", "mesh2"),
	}
	loaded := buildAndRead(t, records, 100)

	groups := loaded.GroupBySourceFile()
	require.Len(t, groups["a.usda"], 2)
	require.Len(t, groups["b.usda"], 1)

	instances := loaded.GeometryInstances()
	require.Len(t, instances["a.usda|mesh1"], 2)
	require.Len(t, instances["b.usda|mesh2"], 1)
}
