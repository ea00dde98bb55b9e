package artgen

import (
	"image"
	"testing"
)

func TestInsetRect(t *testing.T) {
	tests := []struct {
		name           string
		sw, sh, iw, ih int
		want           Rect
	}{
		{"same size", 100, 50, 100, 50, Rect{0, 0, 100, 50}},
		{"wide image", 800, 600, 400, 100, Rect{0, 200, 800, 200}},
		{"tall image", 800, 600, 100, 300, Rect{300, 0, 200, 600}},
		{"upscaled square", 80, 60, 10, 10, Rect{10, 0, 60, 60}},
		{"half size", 80, 60, 40, 30, Rect{0, 0, 80, 60}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InsetRect(tt.sw, tt.sh, tt.iw, tt.ih); got != tt.want {
				t.Errorf("InsetRect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectContainsEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 20, true},
		{40, 60, true},
		{25, 40, true},
		{9.999, 30, false},
		{40.001, 30, false},
		{20, 60.5, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectPixels(t *testing.T) {
	r := Rect{X: 1.5, Y: 2.25, W: 3, H: 4.5}
	if got, want := r.Pixels(), image.Rect(1, 2, 5, 7); got != want {
		t.Errorf("Pixels() = %v, want %v", got, want)
	}
}

func TestExclusionZone(t *testing.T) {
	none := NewExclusionZone(nil, 100, 100)
	if _, active := none.Rect(); active {
		t.Error("zone without inset should be inactive")
	}
	if none.Contains(50, 50) {
		t.Error("inactive zone must not contain anything")
	}

	z := NewExclusionZone(image.NewRGBA(image.Rect(0, 0, 10, 20)), 100, 100)
	r, active := z.Rect()
	if !active {
		t.Fatal("zone with inset should be active")
	}
	if want := (Rect{X: 25, Y: 0, W: 50, H: 100}); r != want {
		t.Errorf("Rect() = %+v, want %+v", r, want)
	}
	if !z.Contains(25, 0) || !z.Contains(75, 100) {
		t.Error("zone edges must be excluded")
	}
	if z.Contains(24, 50) || z.Contains(76, 50) {
		t.Error("points beside the inset must not be excluded")
	}
}
