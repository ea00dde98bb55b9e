package artgen

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/unicode/norm"
)

// glowColor is the halo tint: translucent white.
var glowColor = gg.RGBA2(1, 1, 1, 0.5)

var builtinFonts = map[FontStyle][]byte{
	FontNormal:     goregular.TTF,
	FontItalic:     goitalic.TTF,
	FontBold:       gobold.TTF,
	FontBoldItalic: gobolditalic.TTF,
}

// fontBook resolves a FontStyle to a parsed font, falling back to the Go
// font family for styles without an override.
type fontBook struct {
	mu      sync.Mutex
	sources map[FontStyle]*text.FontSource
}

func newFontBook(overrides map[FontStyle]*text.FontSource) *fontBook {
	b := &fontBook{sources: make(map[FontStyle]*text.FontSource, len(builtinFonts))}
	for style, src := range overrides {
		if src != nil {
			b.sources[style] = src
		}
	}
	return b
}

func (b *fontBook) source(style FontStyle) (*text.FontSource, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if src, ok := b.sources[style]; ok {
		return src, nil
	}
	data, ok := builtinFonts[style]
	if !ok {
		return nil, configErrorf("caption.style", "unknown value %d", int(style))
	}
	src, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("load %s font: %w", style, err)
	}
	b.sources[style] = src
	return src, nil
}

// applyTextAndGlow sets the glow for the caption draw and renders the caption
// centred horizontally with its baseline on the surface's vertical centre.
// The glow is cleared again before returning so later stages draw without it.
func applyTextAndGlow(s *Surface, glowIntensity float64, caption *Caption, fonts *fontBook) error {
	s.SetGlow(Glow{Radius: glowIntensity, Color: glowColor})
	defer s.ResetGlow()

	if caption == nil || caption.Text == "" {
		return nil
	}
	src, err := fonts.source(caption.Style)
	if err != nil {
		return err
	}
	face := src.Face(caption.FontSize)
	str := norm.NFC.String(caption.Text)
	cx, cy := float64(s.Width())/2, float64(s.Height())/2

	return s.Draw(func(dc *gg.Context) error {
		dc.SetFont(face)
		dc.SetFillBrush(gg.Solid(caption.Color))
		dc.DrawStringAnchored(str, cx, cy, 0.5, 0)
		return nil
	})
}
