package overlay

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/stromboli/pkg/stromboli/transition"
)

const defaultMaxCacheSize = 8

// resizeTolerance is how far, as a fraction of the cached raster size, the
// requested size may drift before the clone is rasterized again. A hero
// morph changes the drawn size every tick; re-rasterizing within the
// tolerance band would thrash, but stretching far past it turns the clone
// blurry.
const resizeTolerance = 0.25

type cachedClone struct {
	texture *sdl.Texture
	w, h    int
}

// cloneCache keeps rasterized clone textures alive across progress ticks,
// keyed by the owning item. A lookup misses when the requested raster size
// has drifted past resizeTolerance from the cached one, forcing a fresh
// rasterization at the current size. Evicted and replaced textures are
// destroyed.
type cloneCache struct {
	clones  map[transition.ItemKey]cachedClone
	order   []transition.ItemKey // LRU, least recent first
	maxSize int
	destroy func(*sdl.Texture)
}

func newCloneCache(maxSize int) *cloneCache {
	return &cloneCache{
		clones:  make(map[transition.ItemKey]cachedClone),
		order:   make([]transition.ItemKey, 0, maxSize),
		maxSize: maxSize,
		destroy: func(t *sdl.Texture) { t.Destroy() },
	}
}

// get returns the cached texture for key if it is still usable at the
// requested raster size, nil otherwise.
func (c *cloneCache) get(key transition.ItemKey, w, h int) *sdl.Texture {
	clone, exists := c.clones[key]
	if !exists {
		return nil
	}
	if !fits(clone.w, clone.h, w, h) {
		return nil
	}
	c.moveToEnd(key)
	return clone.texture
}

// set stores a texture rasterized at w x h for key. A texture already
// cached under the key is destroyed and replaced.
func (c *cloneCache) set(key transition.ItemKey, texture *sdl.Texture, w, h int) {
	if old, exists := c.clones[key]; exists {
		if old.texture != texture {
			c.destroy(old.texture)
		}
		c.clones[key] = cachedClone{texture: texture, w: w, h: h}
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.clones[key] = cachedClone{texture: texture, w: w, h: h}
	c.order = append(c.order, key)
}

// fits reports whether a texture rasterized at cw x ch may be stretched to
// w x h without leaving the tolerance band.
func fits(cw, ch, w, h int) bool {
	if cw <= 0 || ch <= 0 || w <= 0 || h <= 0 {
		return false
	}
	driftW := math.Abs(float64(w-cw)) / float64(cw)
	driftH := math.Abs(float64(h-ch)) / float64(ch)
	return driftW <= resizeTolerance && driftH <= resizeTolerance
}

func (c *cloneCache) moveToEnd(key transition.ItemKey) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *cloneCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if clone, exists := c.clones[oldest]; exists {
		c.destroy(clone.texture)
		delete(c.clones, oldest)
	}
}

func (c *cloneCache) destroyAll() {
	for _, clone := range c.clones {
		c.destroy(clone.texture)
	}
	c.clones = make(map[transition.ItemKey]cachedClone)
	c.order = c.order[:0]
}
