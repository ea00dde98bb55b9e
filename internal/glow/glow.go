// Package glow draws a soft halo behind already-rasterized content.
//
// The halo follows the HTML canvas shadow model with zero offset: the
// coverage of the content is blurred with a Gaussian whose standard deviation
// is half the blur radius, tinted with the glow color, and painted under the
// content. Pixel data is premultiplied RGBA, as in gg.Pixmap.
package glow

import (
	"image"

	"github.com/gogpu/gg"
)

// Composite blends layer onto dst, painting a halo of the given blur radius
// and color underneath it. A radius of 0 or a transparent color composites
// layer without a halo. Both pixmaps must have the same dimensions.
func Composite(layer, dst *gg.Pixmap, radius float64, color gg.RGBA) {
	w, h := dst.Width(), dst.Height()
	if layer.Width() != w || layer.Height() != h {
		return
	}

	src := layer.Data()
	bounds := Coverage(layer)
	if bounds.Empty() {
		return
	}

	if radius > 0 && color.A > 0 {
		kernel := cachedKernel(radius / 2)
		area := bounds.Inset(-(len(kernel) / 2)).Intersect(image.Rect(0, 0, w, h))
		alpha := extractAlpha(src, w, area)
		blurred := blurAlpha(alpha, area.Dx(), area.Dy(), kernel)
		paintHalo(dst.Data(), w, area, blurred, color)
	}

	data := dst.Data()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			i := (y*w + x) * 4
			switch src[i+3] {
			case 0:
			case 255:
				copy(data[i:i+4], src[i:i+4])
			default:
				blendPremul(data[i:i+4], src[i:i+4])
			}
		}
	}
}

// Coverage returns the smallest rectangle holding every non-transparent pixel of pm.
func Coverage(pm *gg.Pixmap) image.Rectangle {
	w, h := pm.Width(), pm.Height()
	data := pm.Data()
	r := image.Rectangle{Min: image.Pt(w, h)}
	for y := range h {
		row := data[y*w*4 : (y+1)*w*4]
		for x := range w {
			if row[x*4+3] == 0 {
				continue
			}
			r.Min.X = min(r.Min.X, x)
			r.Min.Y = min(r.Min.Y, y)
			r.Max.X = max(r.Max.X, x+1)
			r.Max.Y = max(r.Max.Y, y+1)
		}
	}
	if r.Max.X == 0 {
		return image.Rectangle{}
	}
	return r
}

// extractAlpha copies the alpha channel of area into a [0,1] float buffer.
func extractAlpha(src []uint8, stride int, area image.Rectangle) []float32 {
	aw := area.Dx()
	alpha := make([]float32, aw*area.Dy())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			alpha[(y-area.Min.Y)*aw+(x-area.Min.X)] = float32(src[(y*stride+x)*4+3]) / 255
		}
	}
	return alpha
}

// blurAlpha runs a separable convolution. Taps outside the buffer read zero.
func blurAlpha(alpha []float32, w, h int, kernel []float32) []float32 {
	half := len(kernel) / 2
	temp := make([]float32, len(alpha))
	for y := range h {
		row := alpha[y*w : (y+1)*w]
		for x := range w {
			var sum float32
			for k, weight := range kernel {
				if kx := x + k - half; kx >= 0 && kx < w {
					sum += row[kx] * weight
				}
			}
			temp[y*w+x] = sum
		}
	}

	out := make([]float32, len(alpha))
	for y := range h {
		for x := range w {
			var sum float32
			for k, weight := range kernel {
				if ky := y + k - half; ky >= 0 && ky < h {
					sum += temp[ky*w+x] * weight
				}
			}
			out[y*w+x] = sum
		}
	}
	return out
}

func paintHalo(dst []uint8, stride int, area image.Rectangle, alpha []float32, color gg.RGBA) {
	r, g, b, base := float32(color.R), float32(color.G), float32(color.B), float32(color.A)
	aw := area.Dx()
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			a := alpha[(y-area.Min.Y)*aw+(x-area.Min.X)] * base
			if a <= 0 {
				continue
			}
			i := (y*stride + x) * 4
			blendOver(dst[i:i+4], r, g, b, a)
		}
	}
}

// blendOver composites a straight-alpha color onto one premultiplied pixel.
func blendOver(d []uint8, r, g, b, a float32) {
	if a <= 0 {
		return
	}
	a = min(a, 1)
	inv := 1 - a
	d[0] = toByte(r*a + float32(d[0])/255*inv)
	d[1] = toByte(g*a + float32(d[1])/255*inv)
	d[2] = toByte(b*a + float32(d[2])/255*inv)
	d[3] = toByte(a + float32(d[3])/255*inv)
}

// blendPremul composites premultiplied pixel s onto premultiplied pixel d.
func blendPremul(d, s []uint8) {
	inv := 255 - uint32(s[3])
	for c := range 4 {
		d[c] = uint8(min(uint32(s[c])+(uint32(d[c])*inv+127)/255, 255))
	}
}

func toByte(v float32) uint8 {
	v = v*255 + 0.5
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
