package compose

import "github.com/achilleasa/usdindex/usd"

// loadStage resolves path through the stage cache: an already-cached
// path is returned without re-parsing or re-counting against the
// file-count gates (cycles are refused separately, by enterStage). A
// path not yet seen is subject to the max_files cap (§4.4.3) before it
// is parsed; once the cap trips, every subsequent new path is refused
// without re-evaluating the arithmetic.
func (t *Traverser) loadStage(path string) (*usd.Stage, bool) {
	if stage, ok := t.cache.get(path); ok {
		return stage, true
	}
	if t.fileCapHit {
		return nil, false
	}

	prospective := len(t.discoveryOrder) + 1 - t.cfg.SkipFiles
	if prospective < 0 {
		prospective = 0
	}
	if prospective > t.cfg.MaxFiles {
		t.fileCapHit = true
		return nil, false
	}

	stage, err := usd.ParseFile(path)
	if err != nil {
		t.logger.Warningf("compose: failed to load stage %s: %v", path, err)
		return nil, false
	}

	idx := len(t.discoveryOrder) + 1
	t.discoveryOrder = append(t.discoveryOrder, path)
	t.discoveryIndex[path] = idx
	t.Stats.FilesDiscovered++
	t.cache.put(path, stage)

	return stage, true
}
