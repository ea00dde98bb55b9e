package artgen

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"

	"github.com/gogpu/artgen/internal/glow"
)

// Glow is the halo applied to draws issued while it is set.
// A zero Radius disables it.
type Glow struct {
	Radius float64
	Color  gg.RGBA
}

// Surface is the fixed-size raster every pipeline stage paints into.
//
// It wraps a gg.Context and adds a settable glow: while a glow with a
// positive radius is set, Draw renders into a scratch layer which is then
// composited with a blurred halo underneath. A Surface is borrowed by one
// Render call at a time and is not safe for concurrent use.
type Surface struct {
	dc   *gg.Context
	glow Glow
}

// NewSurface allocates a transparent width x height surface.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Surface{dc: gg.NewContext(width, height)}, nil
}

// WrapContext paints into an existing gg context, for callers that own one.
func WrapContext(dc *gg.Context) (*Surface, error) {
	if dc == nil || dc.ResizeTarget() == nil {
		return nil, ErrSurfaceUnavailable
	}
	if dc.Width() <= 0 || dc.Height() <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, dc.Width(), dc.Height())
	}
	return &Surface{dc: dc}, nil
}

// Context returns the underlying gg drawing context.
func (s *Surface) Context() *gg.Context { return s.dc }

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.dc.Width() }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.dc.Height() }

// SetGlow sets the halo for subsequent Draw calls.
func (s *Surface) SetGlow(g Glow) { s.glow = g }

// ResetGlow restores the default of no glow.
func (s *Surface) ResetGlow() { s.glow = Glow{} }

// Glow returns the current glow setting.
func (s *Surface) Glow() Glow { return s.glow }

// Draw runs fn against a drawing context. fn builds and fills or strokes its
// own paths; when a glow is set, they land on a scratch layer that is
// composited onto the surface with the halo.
func (s *Surface) Draw(fn func(dc *gg.Context) error) error {
	if s.glow.Radius <= 0 {
		return fn(s.dc)
	}

	layer := gg.NewContext(s.Width(), s.Height())
	defer func() { _ = layer.Close() }()

	if err := fn(layer); err != nil {
		return err
	}
	glow.Composite(layer.ResizeTarget(), s.pixmap(), s.glow.Radius, s.glow.Color)
	return nil
}

// FillRect fills an axis-aligned rectangle with c.
func (s *Surface) FillRect(x, y, w, h float64, c gg.RGBA) error {
	return s.Draw(func(dc *gg.Context) error {
		dc.SetFillBrush(gg.Solid(c))
		dc.DrawRectangle(x, y, w, h)
		return dc.Fill()
	})
}

// pixmap returns the live pixel buffer of the current drawing target.
func (s *Surface) pixmap() *gg.Pixmap { return s.dc.ResizeTarget() }

// pixels returns an image view sharing the surface's pixel memory.
// gg stores premultiplied RGBA, which is exactly the image.RGBA layout.
func (s *Surface) pixels() *image.RGBA {
	pm := s.pixmap()
	return &image.RGBA{
		Pix:    pm.Data(),
		Stride: pm.Width() * 4,
		Rect:   image.Rect(0, 0, pm.Width(), pm.Height()),
	}
}

// At returns the non-premultiplied color of pixel (x, y).
func (s *Surface) At(x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(s.pixels().RGBAAt(x, y)).(color.NRGBA)
}

// Image returns a copy of the current raster.
func (s *Surface) Image() *image.RGBA {
	src := s.pixels()
	dst := image.NewRGBA(src.Rect)
	copy(dst.Pix, src.Pix)
	return dst
}

// EncodePNG writes the raster as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}
