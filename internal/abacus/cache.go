package abacus

// AnalysisCache memoizes AnalyzeStep results keyed by (value, delta). It is
// owned by whoever constructs it; nothing in this package holds one. Callers
// that want isolation (parallel tests, multiple students) create one each.
type AnalysisCache struct {
	entries map[cacheKey]StepAnalysis
	hits    int
	misses  int
}

type cacheKey struct {
	value int
	delta int
}

// NewAnalysisCache returns an empty cache.
func NewAnalysisCache() *AnalysisCache {
	return &AnalysisCache{entries: make(map[cacheKey]StepAnalysis)}
}

// Analyze returns the memoized analysis for (current, delta), computing and
// storing it on a miss. A nil cache degrades to a plain AnalyzeStep call.
func (c *AnalysisCache) Analyze(current, delta int) StepAnalysis {
	if c == nil {
		return AnalyzeStep(current, delta)
	}
	key := cacheKey{value: current, delta: delta}
	if a, ok := c.entries[key]; ok {
		c.hits++
		return a
	}
	c.misses++
	a := AnalyzeStep(current, delta)
	c.entries[key] = a
	return a
}

// CacheStats reports cache effectiveness counters.
type CacheStats struct {
	Hits   int
	Misses int
	Size   int
}

// Stats returns the current counters.
func (c *AnalysisCache) Stats() CacheStats {
	if c == nil {
		return CacheStats{}
	}
	return CacheStats{Hits: c.hits, Misses: c.misses, Size: len(c.entries)}
}
