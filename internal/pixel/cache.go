package pixel

import (
	"container/list"
	"sync"
	"sync/atomic"
	"time"
)

// Default cache configuration constants.
const (
	// DefaultMaxSizeMB is the default maximum cache size in megabytes.
	DefaultMaxSizeMB = 64
	bytesPerMB       = 1024 * 1024
	bytesPerPixel    = 4
)

// LayerCache is an LRU cache of layer images keyed by the layer's marker
// (its stable tree id). It backs AcceleratedBlender: while a layer's
// marker is Load-ed and not yet Clean-ed, its image is assumed unchanged
// and safe to reuse across repeated composites (e.g. every frame of a
// LayerMoveRelative drag).
type LayerCache struct {
	mu      sync.RWMutex
	entries map[uint64]*cacheEntry
	lru     *list.List
	size    int64
	maxSize int64

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type cacheEntry struct {
	marker   uint64
	img      *Image
	size     int64
	element  *list.Element
	lastUsed time.Time
}

// CacheStats reports cache effectiveness for diagnostics.
type CacheStats struct {
	Size      int64
	MaxSize   int64
	Entries   int
	Hits      uint64
	Misses    uint64
	HitRate   float64
	Evictions uint64
}

// NewLayerCache creates a cache with the given memory budget in megabytes.
func NewLayerCache(maxSizeMB int) *LayerCache {
	if maxSizeMB <= 0 {
		maxSizeMB = DefaultMaxSizeMB
	}
	return &LayerCache{
		entries: make(map[uint64]*cacheEntry),
		lru:     list.New(),
		maxSize: int64(maxSizeMB) * bytesPerMB,
	}
}

// Get retrieves a cached image by marker, moving it to the front of the LRU
// list on a hit.
func (c *LayerCache) Get(marker uint64) (*Image, bool) {
	c.mu.RLock()
	_, ok := c.entries[marker]
	c.mu.RUnlock()
	if !ok {
		c.misses.Add(1)
		return nil, false
	}

	c.mu.Lock()
	entry, ok := c.entries[marker]
	if !ok {
		c.mu.Unlock()
		c.misses.Add(1)
		return nil, false
	}
	c.lru.MoveToFront(entry.element)
	entry.lastUsed = time.Now()
	img := entry.img
	c.mu.Unlock()

	c.hits.Add(1)
	return img, true
}

// Put stores img under marker, evicting least-recently-used entries if the
// budget is exceeded.
func (c *LayerCache) Put(marker uint64, img *Image) {
	if img == nil {
		return
	}
	entrySize := imageSize(img)
	if entrySize <= 0 || entrySize > c.maxSize {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries[marker]; ok {
		c.size -= existing.size
		c.lru.Remove(existing.element)
	}
	c.evictUntilSize(c.maxSize - entrySize)

	entry := &cacheEntry{marker: marker, img: img, size: entrySize, lastUsed: time.Now()}
	entry.element = c.lru.PushFront(entry)
	c.entries[marker] = entry
	c.size += entrySize
}

// Invalidate removes a single marker's cached image.
func (c *LayerCache) Invalidate(marker uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.entries[marker]; ok {
		c.lru.Remove(entry.element)
		c.size -= entry.size
		delete(c.entries, marker)
		c.evictions.Add(1)
	}
}

// InvalidateAll clears the entire cache.
func (c *LayerCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	evicted := uint64(len(c.entries))
	c.entries = make(map[uint64]*cacheEntry)
	c.lru.Init()
	c.size = 0
	if evicted > 0 {
		c.evictions.Add(evicted)
	}
}

func (c *LayerCache) evictUntilSize(targetSize int64) {
	for c.size > targetSize && c.lru.Len() > 0 {
		elem := c.lru.Back()
		if elem == nil {
			break
		}
		entry := elem.Value.(*cacheEntry)
		c.lru.Remove(elem)
		c.size -= entry.size
		delete(c.entries, entry.marker)
		c.evictions.Add(1)
	}
}

// Stats returns current cache statistics.
func (c *LayerCache) Stats() CacheStats {
	c.mu.RLock()
	size, maxSize, entries := c.size, c.maxSize, len(c.entries)
	c.mu.RUnlock()

	hits, misses, evictions := c.hits.Load(), c.misses.Load(), c.evictions.Load()
	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}
	return CacheStats{Size: size, MaxSize: maxSize, Entries: entries, Hits: hits, Misses: misses, HitRate: hitRate, Evictions: evictions}
}

func imageSize(img *Image) int64 {
	if img == nil {
		return 0
	}
	return int64(img.Width()) * int64(img.Height()) * bytesPerPixel
}

// AcceleratedBlender wraps SoftwareBlender with a LayerCache: images handed
// to Load are assumed immutable until the next Clean and are stored by
// marker. Blend, BlendDamaged and BlendDamagedInto use the cached image in
// place of a Layer's own Img when its Marker has a cache entry; every
// composite is still computed by SoftwareBlender, results are not cached,
// and BlendAll does not consult the cache.
type AcceleratedBlender struct {
	soft  *SoftwareBlender
	cache *LayerCache
}

// NewAcceleratedBlender constructs an AcceleratedBlender with the given
// cache budget in megabytes (0 selects the default).
func NewAcceleratedBlender(maxSizeMB int) *AcceleratedBlender {
	return &AcceleratedBlender{soft: NewSoftwareBlender(), cache: NewLayerCache(maxSizeMB)}
}

func (b *AcceleratedBlender) Name() string { return "Accelerated" }

func (b *AcceleratedBlender) Load(marker uint64, img *Image) {
	if marker == 0 || img == nil {
		return
	}
	b.cache.Put(marker, img)
	logger().Debug("cached layer", "marker", marker)
}

func (b *AcceleratedBlender) Clean() {
	logger().Debug("clearing layer cache", "stats", b.cache.Stats())
	b.cache.InvalidateAll()
}

func (b *AcceleratedBlender) resolve(l Layer) Layer {
	if l.Marker == 0 {
		return l
	}
	if cached, ok := b.cache.Get(l.Marker); ok {
		l.Img = cached
	}
	return l
}

func (b *AcceleratedBlender) Blend(mode Mode, destination Rectangle, overlay, base Layer) *Image {
	return b.soft.Blend(mode, destination, b.resolve(overlay), b.resolve(base))
}

func (b *AcceleratedBlender) BlendDamagedInto(mode Mode, damage Rectangle, dest Positioned, overlay, base Layer) {
	b.soft.BlendDamagedInto(mode, damage, dest, b.resolve(overlay), b.resolve(base))
}

func (b *AcceleratedBlender) BlendDamaged(mode Mode, base, overlay Layer, damage Rectangle) {
	b.soft.BlendDamaged(mode, b.resolve(base), b.resolve(overlay), damage)
}

func (b *AcceleratedBlender) BlendAll(destination Rectangle, children []BlendChild) *Image {
	return b.soft.BlendAll(destination, children)
}
