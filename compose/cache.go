package compose

import "github.com/achilleasa/usdindex/usd"

// stageCache memoizes parsed stages by absolute source path so a stage
// reached again is not re-parsed. It is not a re-entry guard: a cached
// stage can be walked again, and reference cycles are broken by the
// Traverser's openPaths set instead. recency tracks insertion/access
// order so the cache can be trimmed to its most-recent entries when the
// writer flushes, bounding the working set for very large scenes.
type stageCache struct {
	stages  map[string]*usd.Stage
	recency []string
}

func newStageCache() *stageCache {
	return &stageCache{stages: make(map[string]*usd.Stage)}
}

func (c *stageCache) get(path string) (*usd.Stage, bool) {
	s, ok := c.stages[path]
	if ok {
		c.touch(path)
	}
	return s, ok
}

func (c *stageCache) put(path string, stage *usd.Stage) {
	c.stages[path] = stage
	c.touch(path)
}

func (c *stageCache) touch(path string) {
	for i, p := range c.recency {
		if p == path {
			c.recency = append(c.recency[:i], c.recency[i+1:]...)
			break
		}
	}
	c.recency = append(c.recency, path)
}

// trimToMostRecent keeps only the n most recently touched entries,
// evicting the rest from both the stage map and the recency list.
func (c *stageCache) trimToMostRecent(n int) {
	if len(c.recency) <= n {
		return
	}
	cut := len(c.recency) - n
	evicted := c.recency[:cut]
	c.recency = c.recency[cut:]
	for _, path := range evicted {
		delete(c.stages, path)
	}
}

func (c *stageCache) size() int { return len(c.stages) }
