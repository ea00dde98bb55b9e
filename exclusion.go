package artgen

import (
	"image"
	"math"
)

// Rect is an axis-aligned rectangle in surface coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Pixels returns the smallest integer rectangle covering r.
func (r Rect) Pixels() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.W)), int(math.Ceil(r.Y+r.H)),
	)
}

// InsetRect returns where an imgW x imgH bitmap lands on a surfaceW x surfaceH
// surface: uniformly scaled by min(surfaceW/imgW, surfaceH/imgH) and centered.
func InsetRect(surfaceW, surfaceH, imgW, imgH int) Rect {
	scale := math.Min(float64(surfaceW)/float64(imgW), float64(surfaceH)/float64(imgH))
	w := float64(imgW) * scale
	h := float64(imgH) * scale
	return Rect{
		X: (float64(surfaceW) - w) / 2,
		Y: (float64(surfaceH) - h) / 2,
		W: w,
		H: h,
	}
}

// ExclusionZone suppresses shapes and particles anchored under the inset
// image, which is painted last and must stay unobstructed.
type ExclusionZone struct {
	rect   Rect
	active bool
}

// NewExclusionZone derives the zone for an optional inset on a surface of the given size.
func NewExclusionZone(inset image.Image, surfaceW, surfaceH int) ExclusionZone {
	if inset == nil {
		return ExclusionZone{}
	}
	b := inset.Bounds()
	return ExclusionZone{rect: InsetRect(surfaceW, surfaceH, b.Dx(), b.Dy()), active: true}
}

// Contains reports whether an anchor at (x, y) must be skipped.
func (z ExclusionZone) Contains(x, y float64) bool {
	return z.active && z.rect.Contains(x, y)
}

// Rect returns the excluded rectangle and whether the zone is active.
func (z ExclusionZone) Rect() (Rect, bool) {
	return z.rect, z.active
}
