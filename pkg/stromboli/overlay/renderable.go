package overlay

import (
	"fmt"
	"image"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Rasterizer turns an item's renderable payload into pixels for cloning.
// Items whose Renderable does not implement Rasterizer cannot be drawn as
// overlay clones and are skipped with a warning.
type Rasterizer interface {
	Rasterize(w, h int) (*image.RGBA, error)
}

// SVGRenderable rasterizes an SVG icon, the usual renderable on themed
// devices where screen assets ship as SVG.
type SVGRenderable struct {
	icon *oksvg.SvgIcon
}

// NewSVGRenderable parses SVG source from r.
func NewSVGRenderable(r io.Reader) (*SVGRenderable, error) {
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, err
	}
	return &SVGRenderable{icon: icon}, nil
}

// LoadSVGRenderable parses the SVG file at path.
func LoadSVGRenderable(path string) (*SVGRenderable, error) {
	icon, err := oksvg.ReadIcon(path)
	if err != nil {
		return nil, err
	}
	return &SVGRenderable{icon: icon}, nil
}

// Rasterize renders the icon at the given pixel size.
func (s *SVGRenderable) Rasterize(w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid raster size %dx%d", w, h)
	}
	s.icon.SetTarget(0, 0, float64(w), float64(h))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	s.icon.Draw(raster, 1.0)
	return img, nil
}

// ImageRenderable wraps an already-rasterized image. The renderer stretches
// it to the clone's animated size, so Rasterize ignores the requested size.
type ImageRenderable struct {
	Image *image.RGBA
}

func (i ImageRenderable) Rasterize(_, _ int) (*image.RGBA, error) {
	if i.Image == nil {
		return nil, fmt.Errorf("image renderable has no image")
	}
	return i.Image, nil
}
