// Package overlay renders the floating clones of a shared-element
// transition: absolutely positioned duplicates layered above the screen
// stack, placed and faded according to the compiled clone style maps.
package overlay

import (
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/stromboli/pkg/stromboli/internal"
	"github.com/BrandonKowalski/stromboli/pkg/stromboli/transition"
)

// Renderer draws clone items onto a caller-owned SDL renderer. The host
// application owns the window and the frame loop; call Draw after the
// screens have been drawn so clones layer above them.
type Renderer struct {
	cache *cloneCache
}

// NewRenderer creates a renderer with the default texture cache size.
func NewRenderer() *Renderer {
	return NewRendererWithCacheSize(defaultMaxCacheSize)
}

// NewRendererWithCacheSize creates a renderer caching at most maxTextures
// rasterized clones.
func NewRendererWithCacheSize(maxTextures int) *Renderer {
	return &Renderer{cache: newCloneCache(maxTextures)}
}

// Draw renders every to-clone item at the given progress. Items without a
// clone style render at their measured geometry, unstyled. Items that are
// unmeasured and have no positional style cannot be placed and are skipped.
func (o *Renderer) Draw(r *sdl.Renderer, maps transition.StyleMaps, progress float64) {
	log := internal.GetLogger()
	for _, item := range maps.ToClone {
		var style transition.Style
		if byRoute, ok := maps.Clones[item.RouteName]; ok {
			style = byRoute[item.ID]
		}

		frame, opacity, ok := resolveFrame(item, style, progress)
		if !ok {
			log.Warn("Skipping unplaceable clone", "item", item.Key().String())
			continue
		}

		tex := o.texture(r, item, int(frame.W), int(frame.H))
		if tex == nil {
			continue
		}
		tex.SetAlphaMod(uint8(clamp01(opacity) * 255))
		if err := r.CopyF(tex, nil, &frame); err != nil {
			log.Warn("Failed to draw clone", "item", item.Key().String(), "error", err)
		}
	}
}

// Destroy releases all cached textures. Call before tearing down the SDL
// renderer.
func (o *Renderer) Destroy() {
	o.cache.destroyAll()
}

// resolveFrame computes the clone's destination rect and opacity: style
// properties evaluated at progress, falling back to the item's measured
// geometry for anything the style leaves alone.
func resolveFrame(item transition.Item, style transition.Style, progress float64) (sdl.FRect, float64, bool) {
	var base transition.Metrics
	if item.Measured() {
		base = *item.Metrics
	}

	vals := style.Eval(progress)
	pick := func(p transition.Prop, fallback float64) (float64, bool) {
		if v, ok := vals[p]; ok {
			return v, true
		}
		return fallback, item.Measured()
	}

	x, okX := pick(transition.PropX, base.X)
	y, okY := pick(transition.PropY, base.Y)
	w, okW := pick(transition.PropWidth, base.Width)
	h, okH := pick(transition.PropHeight, base.Height)
	if !(okX && okY && okW && okH) || w <= 0 || h <= 0 {
		return sdl.FRect{}, 0, false
	}

	opacity := 1.0
	if v, ok := vals[transition.PropOpacity]; ok {
		opacity = v
	}

	return sdl.FRect{
		X: float32(x),
		Y: float32(y),
		W: float32(w),
		H: float32(h),
	}, opacity, true
}

// texture returns a texture for the item rasterized near w x h, reusing the
// cached one while the morph stays within the cache's size tolerance.
func (o *Renderer) texture(r *sdl.Renderer, item transition.Item, w, h int) *sdl.Texture {
	key := item.Key()
	if tex := o.cache.get(key, w, h); tex != nil {
		return tex
	}

	log := internal.GetLogger()
	ras, ok := item.Renderable.(Rasterizer)
	if !ok {
		log.Warn("Clone renderable is not rasterizable", "item", key.String())
		return nil
	}
	img, err := ras.Rasterize(w, h)
	if err != nil {
		log.Warn("Failed to rasterize clone", "item", key.String(), "error", err)
		return nil
	}

	bounds := img.Bounds()
	tex, err := r.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STATIC,
		int32(bounds.Dx()), int32(bounds.Dy()))
	if err != nil {
		log.Warn("Failed to create clone texture", "item", key.String(), "error", err)
		return nil
	}
	if err := tex.Update(nil, unsafe.Pointer(&img.Pix[0]), img.Stride); err != nil {
		log.Warn("Failed to upload clone texture", "item", key.String(), "error", err)
		tex.Destroy()
		return nil
	}
	tex.SetBlendMode(sdl.BLENDMODE_BLEND)

	o.cache.set(key, tex, w, h)
	return tex
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
