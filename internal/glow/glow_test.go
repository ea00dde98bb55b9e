package glow

import (
	"image"
	"testing"

	"github.com/gogpu/gg"
)

// squareLayer returns a transparent w x h pixmap with an opaque white square
// covering [x0, x1) x [y0, y1).
func squareLayer(w, h, x0, y0, x1, y1 int) *gg.Pixmap {
	pm := gg.NewPixmap(w, h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			pm.SetPixel(x, y, gg.White)
		}
	}
	return pm
}

func blackPixmap(w, h int) *gg.Pixmap {
	pm := gg.NewPixmap(w, h)
	pm.Clear(gg.Black)
	return pm
}

func TestCoverage(t *testing.T) {
	if r := Coverage(gg.NewPixmap(8, 8)); !r.Empty() {
		t.Errorf("Coverage(empty) = %v, want empty", r)
	}

	pm := squareLayer(32, 32, 10, 12, 20, 15)
	if got, want := Coverage(pm), image.Rect(10, 12, 20, 15); got != want {
		t.Errorf("Coverage() = %v, want %v", got, want)
	}
}

func TestComposite_NoRadius(t *testing.T) {
	layer := squareLayer(32, 32, 12, 12, 20, 20)
	dst := blackPixmap(32, 32)

	Composite(layer, dst, 0, gg.RGBA2(1, 1, 1, 0.5))

	if p := dst.GetPixel(15, 15); p.R != 1 || p.A != 1 {
		t.Errorf("inside pixel = %+v, want opaque white", p)
	}
	if p := dst.GetPixel(10, 15); p.R != 0 {
		t.Errorf("outside pixel = %+v, want untouched black", p)
	}
}

func TestComposite_Halo(t *testing.T) {
	layer := squareLayer(48, 48, 20, 20, 28, 28)
	dst := blackPixmap(48, 48)

	Composite(layer, dst, 8, gg.RGBA2(1, 1, 1, 0.5))

	if p := dst.GetPixel(24, 24); p.R != 1 {
		t.Errorf("content pixel = %+v, want white", p)
	}
	near := dst.GetPixel(18, 24)
	if near.R <= 0 || near.R >= 0.5 {
		t.Errorf("halo pixel next to content R = %v, want in (0, 0.5)", near.R)
	}
	far := dst.GetPixel(2, 2)
	if far.R > near.R {
		t.Errorf("halo should fade with distance: far R = %v > near R = %v", far.R, near.R)
	}
	if near.A != 1 {
		t.Errorf("halo over opaque dst must stay opaque, A = %v", near.A)
	}
}

func TestComposite_TransparentColorSkipsHalo(t *testing.T) {
	layer := squareLayer(32, 32, 12, 12, 20, 20)
	dst := blackPixmap(32, 32)

	Composite(layer, dst, 10, gg.Transparent)

	if p := dst.GetPixel(10, 15); p.R != 0 {
		t.Errorf("pixel next to content = %+v, want untouched black", p)
	}
}

func TestComposite_SizeMismatch(t *testing.T) {
	layer := squareLayer(16, 16, 0, 0, 16, 16)
	dst := blackPixmap(32, 32)

	Composite(layer, dst, 4, gg.White)

	if p := dst.GetPixel(0, 0); p.R != 0 {
		t.Errorf("mismatched layer must be ignored, got %+v", p)
	}
}

func TestBlendOver(t *testing.T) {
	d := []uint8{0, 0, 0, 255}
	blendOver(d, 1, 1, 1, 0.5)
	if d[0] < 126 || d[0] > 129 || d[3] != 255 {
		t.Errorf("blendOver half white on black = %v, want ~[128 128 128 255]", d)
	}

	d = []uint8{0, 0, 0, 0}
	blendOver(d, 1, 0, 0, 0.25)
	if d[0] < 63 || d[0] > 65 || d[1] != 0 || d[3] < 63 || d[3] > 65 {
		t.Errorf("blendOver onto transparent = %v, want premultiplied [~64 0 0 ~64]", d)
	}
}

func TestBlendPremul(t *testing.T) {
	tests := []struct {
		name string
		d, s []uint8
		want []uint8
	}{
		{"transparent source", []uint8{10, 20, 30, 255}, []uint8{0, 0, 0, 0}, []uint8{10, 20, 30, 255}},
		{"half white on black", []uint8{0, 0, 0, 255}, []uint8{128, 128, 128, 128}, []uint8{128, 128, 128, 255}},
		{"onto transparent", []uint8{0, 0, 0, 0}, []uint8{64, 0, 0, 64}, []uint8{64, 0, 0, 64}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := append([]uint8(nil), tt.d...)
			blendPremul(d, tt.s)
			for i := range d {
				if diff := int(d[i]) - int(tt.want[i]); diff < -1 || diff > 1 {
					t.Errorf("blendPremul() = %v, want %v", d, tt.want)
					break
				}
			}
		})
	}
}
