package semicrf

// alphaTable memoizes alpha(i,y) for i in [0,S) and y in labels, keyed by
// idx = i*numLabels + int(y). A slot's filled flag must be set only after
// its value is written, so readers never observe a half-initialized entry
// (spec §5), even though this package is single-threaded.
type alphaTable struct {
	filled []bool
	value  []float64
	labels int
}

func newAlphaTable(length, labels int) *alphaTable {
	capacity := length * labels
	return &alphaTable{
		filled: make([]bool, capacity),
		value:  make([]float64, capacity),
		labels: labels,
	}
}

func (t *alphaTable) index(i int, y Label) int { return i*t.labels + int(y) }

func (t *alphaTable) get(i int, y Label) (float64, bool) {
	idx := t.index(i, y)
	return t.value[idx], t.filled[idx]
}

func (t *alphaTable) set(i int, y Label, v float64) {
	idx := t.index(i, y)
	t.value[idx] = v
	t.filled[idx] = true
}

// etaTable memoizes the expected-feature-vector accumulator eta(i,y) as a
// shared dense vector per (i,y). Payloads are installed only once (on
// first fill) and are never mutated afterward nor aliased into the
// driver's scratch gradient buffer (spec §9).
type etaTable struct {
	filled []bool
	value  [][]float64
	labels int
}

func newEtaTable(length, labels, dim int) *etaTable {
	capacity := length * labels
	return &etaTable{
		filled: make([]bool, capacity),
		value:  make([][]float64, capacity),
		labels: labels,
	}
}

func (t *etaTable) index(i int, y Label) int { return i*t.labels + int(y) }

func (t *etaTable) get(i int, y Label) ([]float64, bool) {
	idx := t.index(i, y)
	return t.value[idx], t.filled[idx]
}

func (t *etaTable) set(i int, y Label, v []float64) {
	idx := t.index(i, y)
	t.value[idx] = v
	t.filled[idx] = true
}

// vTableEntry holds the Viterbi value and back-pointers for one (i,y).
type vTableEntry struct {
	value    float64
	argDur   int   // d* achieving the max
	argPrev  Label // y'* achieving the max
}

// vTable memoizes V(i,y) plus its argmax duration and previous label.
type vTable struct {
	filled []bool
	value  []vTableEntry
	labels int
}

func newVTable(length, labels int) *vTable {
	capacity := length * labels
	return &vTable{
		filled: make([]bool, capacity),
		value:  make([]vTableEntry, capacity),
		labels: labels,
	}
}

func (t *vTable) index(i int, y Label) int { return i*t.labels + int(y) }

func (t *vTable) get(i int, y Label) (vTableEntry, bool) {
	idx := t.index(i, y)
	return t.value[idx], t.filled[idx]
}

func (t *vTable) set(i int, y Label, e vTableEntry) {
	idx := t.index(i, y)
	t.value[idx] = e
	t.filled[idx] = true
}

// wgCacheEntry is one direct-mapped slot: a composite key plus the score
// and feature vector the feature function computed for it.
type wgCacheEntry struct {
	key    int64
	score  float64
	vector []float64
	valid  bool
}

// wgCache is a direct-mapped cache of feature-function calls keyed by
// (y, yPrev, i, d), per spec §4.2. Collisions silently evict; there is no
// chaining. It must be cleared (or keyed uniquely) between sequences.
type wgCache struct {
	entries  []wgCacheEntry
	capacity int
	hits     int
	misses   int
}

// newWGCache allocates a cache of the given capacity. A non-positive
// capacity (the zero CacheSize callers pass unless overridden) selects
// defaultWGCacheSize; any positive capacity is used as given.
func newWGCache(capacity int) *wgCache {
	if capacity <= 0 {
		capacity = defaultWGCacheSize
	}
	return &wgCache{entries: make([]wgCacheEntry, capacity), capacity: capacity}
}

// defaultWGCacheSize is the implementation-defined default capacity for the
// WG-cache (spec §9 leaves this a free tunable). Large enough that typical
// sequences (a few hundred tokens, a handful of labels, small maxLength)
// exceed a 50% hit rate.
const defaultWGCacheSize = 1 << 16

// wgKey composes a cache key from (y, yPrev, i, d), matching the original
// implementation's idx = y*l*s*maxLength + yd*s*maxLength + i*maxLength +
// (d-1) addressing (SemiCrf.cpp, Algorithm::computeWG), so that distinct
// (i,d) pairs within one sequence are distinguished by key comparison
// rather than colliding silently even when their slot numbers coincide.
func wgKey(y, yPrev Label, i, d, numLabels, seqLen, maxLength int) int64 {
	ls := int64(numLabels) * int64(seqLen) * int64(maxLength)
	return int64(y)*ls + int64(yPrev)*int64(seqLen)*int64(maxLength) + int64(i)*int64(maxLength) + int64(d-1)
}

func (c *wgCache) slot(key int64) int {
	m := key % int64(c.capacity)
	if m < 0 {
		m += int64(c.capacity)
	}
	return int(m)
}

func (c *wgCache) lookup(key int64) (score float64, vector []float64, ok bool) {
	e := &c.entries[c.slot(key)]
	if e.valid && e.key == key {
		c.hits++
		return e.score, e.vector, true
	}
	c.misses++
	return 0, nil, false
}

func (c *wgCache) install(key int64, score float64, vector []float64) {
	cp := make([]float64, len(vector))
	copy(cp, vector)
	c.entries[c.slot(key)] = wgCacheEntry{key: key, score: score, vector: cp, valid: true}
}

// hitRate returns the observed hit rate, for diagnostics only.
func (c *wgCache) hitRate() float64 {
	total := c.hits + c.misses
	if total == 0 {
		return 0
	}
	return float64(c.hits) / float64(total)
}
