// Package compose implements the composition/traversal engine: it walks
// a root stage and every stage reachable via sub-layers, references and
// payloads, resolving variant selections and skeleton bindings, and
// emits one mesh record per renderable, non-guide Mesh prim encountered.
package compose

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/achilleasa/usdindex/config"
	"github.com/achilleasa/usdindex/coord"
	"github.com/achilleasa/usdindex/index"
	"github.com/achilleasa/usdindex/log"
	"github.com/achilleasa/usdindex/types"
	"github.com/achilleasa/usdindex/usd"
	"github.com/achilleasa/usdindex/usderr"
)

// binaryExtensions maps a recognized binary-form USD suffix to the
// textual suffix it rewrites to.
var binaryExtensions = map[string]string{
	".usdc": ".usda",
	".usdz": ".usda",
}

// pendingMesh is a skinned mesh whose bind-pose resolution is deferred
// until after the walk; only its world transform and source location
// are needed to emit a record with HasSkeleton set.
type pendingMesh struct {
	sourcePath string
	prim       *usd.Prim
	world      types.Mat4
}

// Traverser walks stages and streams mesh records into an index.Writer.
// A single Traverser instance is owned by exactly one goroutine for the
// duration of a traversal; there is no internal locking.
type Traverser struct {
	cfg    *config.Config
	writer *index.Writer
	logger log.Logger

	cache *stageCache

	// openPaths holds stage paths currently on the active recursion
	// path, not every path ever parsed (that's cache's job): it is the
	// cycle guard described by the loaded-set rule, checked on entry to
	// a stage and cleared on return from it.
	openPaths map[string]bool

	discoveryOrder []string
	discoveryIndex map[string]int

	skeletons map[string]*usd.Prim
	pending   []pendingMesh

	sinceFlush int
	halted     bool
	fileCapHit bool

	Stats TraversalStats
}

// TraversalStats accumulates bookkeeping counters surfaced to the CLI
// summary after a run.
type TraversalStats struct {
	FilesDiscovered int
	MeshesEmitted   int
	MeshesSkipped   int
}

// NewTraverser builds a Traverser bound to the given writer.
func NewTraverser(cfg *config.Config, writer *index.Writer, logger log.Logger) *Traverser {
	return &Traverser{
		cfg:            cfg,
		writer:         writer,
		logger:         logger,
		cache:          newStageCache(),
		openPaths:      make(map[string]bool),
		discoveryIndex: make(map[string]int),
		skeletons:      make(map[string]*usd.Prim),
	}
}

// enterStage marks path as on the active recursion path, refusing
// re-entry if it's already there; exitStage clears it on return. A stage
// already fully visited and popped (cache hit, not on the open stack) is
// always free to be entered again.
func (t *Traverser) enterStage(path string) bool {
	if t.openPaths[path] {
		return false
	}
	t.openPaths[path] = true
	return true
}

func (t *Traverser) exitStage(path string) {
	delete(t.openPaths, path)
}

// Traverse loads rootPath, walks its sub-layers and root prims, and
// promotes any pending skinned meshes once the walk completes.
func (t *Traverser) Traverse(rootPath string) error {
	stage, ok := t.loadStage(rootPath)
	if !ok || stage == nil {
		if t.fileCapHit {
			return nil
		}
		return usderr.New(usderr.IO, "failed to load root stage %s", rootPath)
	}
	if !t.enterStage(rootPath) {
		return nil
	}
	defer t.exitStage(rootPath)

	rootDir := filepath.Dir(rootPath)
	for _, sub := range stage.SubLayers {
		subPath := resolveRelative(rootDir, sub)
		t.traverseSubLayer(subPath)
	}

	for _, prim := range stage.RootPrims {
		if t.halted {
			return nil
		}
		t.processPrim(prim, types.Ident4(), rootPath, 0, false)
	}

	t.promotePending()
	return nil
}

func (t *Traverser) traverseSubLayer(path string) {
	if t.halted || shouldSkipPath(path) {
		return
	}
	stage, ok := t.loadStage(path)
	if !ok || stage == nil {
		return
	}
	if !t.enterStage(path) {
		return
	}
	defer t.exitStage(path)
	for _, prim := range stage.RootPrims {
		if t.halted {
			return
		}
		t.processPrim(prim, types.Ident4(), path, 0, false)
	}
}

// processPrim implements the control flow described for process-prim:
// compose the local/world transform, follow references and payloads,
// resolve the selected variant (or fall back to the first inserted
// one), emit a mesh record when applicable, and recurse into children.
func (t *Traverser) processPrim(prim *usd.Prim, parentTransform types.Mat4, sourcePath string, depth int, skipLocalTransform bool) {
	if t.halted || depth > t.cfg.MaxDepth {
		return
	}

	local := types.Ident4()
	if !skipLocalTransform {
		local = LocalTransform(prim)
	}
	world := coord.ComposeWorld(parentTransform, local)

	for _, arc := range prim.Arcs {
		if t.halted {
			return
		}
		t.loadReference(arc, world, sourcePath, depth+1)
	}

	for _, setName := range sortedKeys(prim.VariantSets) {
		selected, ok := prim.SelectedVariant(setName)
		if !ok {
			continue
		}
		variant := prim.VariantSets[setName].Variants[selected]
		if variant == nil {
			continue
		}
		for _, arc := range variant.Arcs {
			if t.halted {
				return
			}
			t.loadReference(arc, world, sourcePath, depth+1)
		}
		for _, child := range variant.Children {
			if t.halted {
				return
			}
			t.processPrim(child, world, sourcePath, depth+1, false)
		}
	}

	switch prim.TypeName {
	case "Skeleton":
		t.skeletons[sourcePath+"|"+prim.Path] = prim
	case "Mesh":
		t.considerMesh(prim, sourcePath, world)
	}

	for _, child := range prim.Children {
		if t.halted {
			return
		}
		t.processPrim(child, world, sourcePath, depth+1, false)
	}
}

// considerMesh applies the skip-index gate, renderability, and minimum
// geometry checks, then either defers a skinned mesh or emits a record.
func (t *Traverser) considerMesh(prim *usd.Prim, sourcePath string, world types.Mat4) {
	// discoveryIndex is 1-based: a mesh is emitted only once its source
	// file's discovery index exceeds skip_files.
	if idx, ok := t.discoveryIndex[sourcePath]; !ok || idx <= t.cfg.SkipFiles {
		t.Stats.MeshesSkipped++
		return
	}
	if purpose, ok := prim.Attr("purpose"); ok {
		if p, ok := purpose.Token(); ok && p == "guide" {
			t.Stats.MeshesSkipped++
			return
		}
	}

	points, ok := prim.Attributes["points"].Vec3Array()
	if !ok || len(points) == 0 {
		t.Stats.MeshesSkipped++
		return
	}
	faceIndices, ok := prim.Attributes["faceVertexIndices"].IntArray()
	if !ok || len(faceIndices) == 0 {
		t.Stats.MeshesSkipped++
		return
	}

	if hasSkinBinding(prim) {
		t.pending = append(t.pending, pendingMesh{sourcePath: sourcePath, prim: prim, world: world})
		return
	}

	t.emit(prim, sourcePath, world, false)
}

func hasSkinBinding(prim *usd.Prim) bool {
	rel, ok := prim.Rel("skel:skeleton")
	if !ok || len(rel.Targets) == 0 {
		return false
	}
	joints, ok := prim.Attributes["primvars:skel:jointIndices"].IntArray()
	return ok && len(joints) > 0
}

// emit converts a mesh prim's authored transform and extent into a
// target-frame index.Record and hands it to the writer. No bind-pose
// centering is applied here; the record carries no point data.
func (t *Traverser) emit(prim *usd.Prim, sourcePath string, world types.Mat4, hasSkeleton bool) {
	rec := index.Record{
		SourcePath:  sourcePath,
		MeshName:    prim.Name,
		MeshPath:    prim.Path,
		HasSkeleton: hasSkeleton,
	}

	// world is already in the target frame: every op folded into it by
	// LocalTransform converted its authored value on the way in, so
	// decomposing it here must not convert a second time.
	translation, rotation, scale := coord.Decompose(world)
	rec.Position = translation
	rec.Rotation = coord.QuatFromRotation(rotation)
	rec.Scale = scale

	extentMin, extentMax, hasExtent := extentOf(prim)
	if hasExtent {
		rec.HasExtent = true
		rec.ExtentMin, rec.ExtentMax = coord.Extent(extentMin, extentMax)
	}

	ok, err := t.writer.Add(rec)
	if err != nil {
		t.logger.Warningf("compose: failed to buffer mesh record for %s%s: %v", sourcePath, prim.Path, err)
	}
	if !ok {
		t.halted = true
		return
	}

	t.Stats.MeshesEmitted++
	t.sinceFlush++
	if t.cfg.FlushEveryNMeshes > 0 && t.sinceFlush >= t.cfg.FlushEveryNMeshes {
		t.sinceFlush = 0
		t.cache.trimToMostRecent(20)
	}
}

func extentOf(prim *usd.Prim) (min, max types.Vec3, ok bool) {
	arr, has := prim.Attributes["extent"].Vec3Array()
	if !has || len(arr) < 2 {
		return types.Vec3{}, types.Vec3{}, false
	}
	return arr[0], arr[1], true
}

// promotePending appends every deferred skinned mesh to the output
// using its accumulated world transform, flagged HasSkeleton.
func (t *Traverser) promotePending() {
	for _, p := range t.pending {
		if t.halted {
			return
		}
		t.emit(p.prim, p.sourcePath, p.world, true)
	}
}

// loadReference resolves one composition arc: strips a "./" prefix,
// rewrites a binary-form suffix to its textual counterpart, resolves
// relative to sourcePath's directory, enforces the skip-pattern filter
// and depth limit, loads the target stage through the cache, and
// processes either the named inner prim or every root prim.
func (t *Traverser) loadReference(arc usd.CompositionArc, parentTransform types.Mat4, sourcePath string, depth int) {
	if arc.Kind == usd.ArcInherit {
		return
	}
	if depth > t.cfg.MaxDepth {
		return
	}

	assetPath := strings.TrimPrefix(arc.AssetPath, "./")
	if assetPath == "" {
		return
	}
	assetPath = t.rewriteBinaryToText(assetPath)
	resolved := resolveRelative(filepath.Dir(sourcePath), assetPath)

	if shouldSkipPath(resolved) {
		return
	}

	stage, ok := t.loadStage(resolved)
	if !ok || stage == nil {
		return
	}
	// A path already on the active recursion path is a cycle: refuse to
	// re-enter it rather than relying on max_depth to eventually stop
	// the recursion.
	if !t.enterStage(resolved) {
		return
	}
	defer t.exitStage(resolved)

	skipLocal := isGeometryFile(resolved)

	if arc.PrimPath != "" {
		if prim, ok := stage.Prims[arc.PrimPath]; ok {
			t.processPrim(prim, parentTransform, resolved, depth, skipLocal)
		}
		return
	}
	for _, prim := range stage.RootPrims {
		if t.halted {
			return
		}
		t.processPrim(prim, parentTransform, resolved, depth, skipLocal)
	}
}

// rewriteBinaryToText rewrites a recognized binary-form suffix to its
// textual counterpart. Producing the rewritten file is the configured
// external tool's job, done out-of-band before this pipeline runs; this
// only computes the path the tool is expected to have already written.
func (t *Traverser) rewriteBinaryToText(assetPath string) string {
	ext := filepath.Ext(assetPath)
	textExt, isBinary := binaryExtensions[ext]
	if !isBinary {
		return assetPath
	}
	return strings.TrimSuffix(assetPath, ext) + textExt
}

// isGeometryFile reports whether path's base name matches the
// geometry-file pattern (suffix ".geo.<text>"): its root transform is
// an authoring-origin offset, not scene placement.
func isGeometryFile(path string) bool {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	withoutExt := strings.TrimSuffix(base, ext)
	return strings.HasSuffix(withoutExt, ".geo")
}

func resolveRelative(dir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(dir, path))
}

func sortedKeys(m map[string]*usd.VariantSet) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
