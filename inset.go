package artgen

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// compositeInset draws img over everything else, uniformly scaled to fit the
// surface and centered. It is never subject to the exclusion zone.
//
// The inset is blitted opaque: translucent pixels are flattened over black, so
// nothing drawn by earlier stages shows through the inset rectangle.
func compositeInset(s *Surface, img image.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	dst := s.pixels()
	r := InsetRect(dst.Rect.Dx(), dst.Rect.Dy(), b.Dx(), b.Dy()).Pixels().Intersect(dst.Rect)
	if r.Empty() {
		return
	}

	// Premultiplied RGB with alpha forced to 255 is the image over black.
	flat := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	xdraw.BiLinear.Scale(flat, flat.Rect, img, b, xdraw.Src, nil)
	for i := 3; i < len(flat.Pix); i += 4 {
		flat.Pix[i] = 255
	}
	xdraw.Copy(dst, r.Min, flat, flat.Rect, xdraw.Src, nil)
}
