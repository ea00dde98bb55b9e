package artgen

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/text/cases"
)

// Category selects the style of the auto-generated shapes.
type Category int

const (
	// CategoryGeometric draws axis-aligned squares.
	CategoryGeometric Category = iota

	// CategoryAbstract draws cubic bezier curves.
	CategoryAbstract

	// CategoryFuturistic draws circles.
	CategoryFuturistic

	// CategoryNature draws stylized trees (trunk plus round crown).
	CategoryNature

	// CategoryMinimalist draws single straight lines.
	CategoryMinimalist
)

var categoryNames = []string{"geometric", "abstract", "futuristic", "nature", "minimalist"}

func (c Category) String() string { return enumString("Category", categoryNames, int(c)) }

// ParseCategory parses a category name, ignoring case.
func ParseCategory(s string) (Category, error) {
	v, err := parseEnum("category", categoryNames, nil, s)
	return Category(v), err
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return marshalEnum("category", categoryNames, int(c))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(b []byte) error {
	v, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// BackgroundStyle selects the algorithm that paints the base layer.
type BackgroundStyle int

const (
	// BackgroundGradient is a two-stop diagonal linear gradient.
	BackgroundGradient BackgroundStyle = iota

	// BackgroundFractal is a Mandelbrot escape-time rendering.
	BackgroundFractal

	// BackgroundVoronoi is a nearest-seed partition of the plane.
	BackgroundVoronoi

	// BackgroundFlowField is a continuous sine/cosine vector-field shading.
	BackgroundFlowField
)

var backgroundNames = []string{"gradient", "fractal", "voronoi", "flow"}

var backgroundAliases = map[string]int{
	"flowfield":  int(BackgroundFlowField),
	"flow-field": int(BackgroundFlowField),
	"flow_field": int(BackgroundFlowField),
}

func (b BackgroundStyle) String() string {
	return enumString("BackgroundStyle", backgroundNames, int(b))
}

// ParseBackgroundStyle parses a background style name, ignoring case.
// "flow", "flowfield" and "flow-field" all name BackgroundFlowField.
func ParseBackgroundStyle(s string) (BackgroundStyle, error) {
	v, err := parseEnum("background style", backgroundNames, backgroundAliases, s)
	return BackgroundStyle(v), err
}

// MarshalText implements encoding.TextMarshaler.
func (b BackgroundStyle) MarshalText() ([]byte, error) {
	return marshalEnum("background style", backgroundNames, int(b))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *BackgroundStyle) UnmarshalText(text []byte) error {
	v, err := ParseBackgroundStyle(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// ParticleEffect selects the overlay of small scattered marks.
type ParticleEffect int

const (
	// ParticlesNone disables the overlay.
	ParticlesNone ParticleEffect = iota

	// ParticlesStardust scatters small white dots.
	ParticlesStardust

	// ParticlesFireflies scatters slightly larger yellow dots.
	ParticlesFireflies
)

var particleNames = []string{"none", "stardust", "fireflies"}

func (p ParticleEffect) String() string {
	return enumString("ParticleEffect", particleNames, int(p))
}

// ParseParticleEffect parses a particle effect name, ignoring case.
func ParseParticleEffect(s string) (ParticleEffect, error) {
	v, err := parseEnum("particle effect", particleNames, nil, s)
	return ParticleEffect(v), err
}

// MarshalText implements encoding.TextMarshaler.
func (p ParticleEffect) MarshalText() ([]byte, error) {
	return marshalEnum("particle effect", particleNames, int(p))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *ParticleEffect) UnmarshalText(text []byte) error {
	v, err := ParseParticleEffect(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ShapeKind is the geometry of a user-placed Shape.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeSquare
	ShapeTriangle
)

var shapeNames = []string{"circle", "square", "triangle"}

func (k ShapeKind) String() string { return enumString("ShapeKind", shapeNames, int(k)) }

// ParseShapeKind parses a shape kind name, ignoring case.
func ParseShapeKind(s string) (ShapeKind, error) {
	v, err := parseEnum("shape kind", shapeNames, nil, s)
	return ShapeKind(v), err
}

// MarshalText implements encoding.TextMarshaler.
func (k ShapeKind) MarshalText() ([]byte, error) {
	return marshalEnum("shape kind", shapeNames, int(k))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ShapeKind) UnmarshalText(text []byte) error {
	v, err := ParseShapeKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// FontStyle selects the caption face within the font family.
type FontStyle int

const (
	FontNormal FontStyle = iota
	FontItalic
	FontBold
	FontBoldItalic
)

var fontStyleNames = []string{"normal", "italic", "bold", "bold italic"}

var fontStyleAliases = map[string]int{
	"regular":     int(FontNormal),
	"bold-italic": int(FontBoldItalic),
	"bold_italic": int(FontBoldItalic),
	"bolditalic":  int(FontBoldItalic),
	"italic bold": int(FontBoldItalic),
}

func (f FontStyle) String() string { return enumString("FontStyle", fontStyleNames, int(f)) }

// ParseFontStyle parses a font style in CSS shorthand form ("bold italic"), ignoring case.
func ParseFontStyle(s string) (FontStyle, error) {
	v, err := parseEnum("font style", fontStyleNames, fontStyleAliases, s)
	return FontStyle(v), err
}

// MarshalText implements encoding.TextMarshaler.
func (f FontStyle) MarshalText() ([]byte, error) {
	return marshalEnum("font style", fontStyleNames, int(f))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *FontStyle) UnmarshalText(text []byte) error {
	v, err := ParseFontStyle(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func enumString(typ string, names []string, v int) string {
	if v < 0 || v >= len(names) {
		return fmt.Sprintf("%s(%d)", typ, v)
	}
	return names[v]
}

func marshalEnum(kind string, names []string, v int) ([]byte, error) {
	if v < 0 || v >= len(names) {
		return nil, configErrorf(kind, "unknown value %d", v)
	}
	return []byte(names[v]), nil
}

func parseEnum(kind string, names []string, aliases map[string]int, s string) (int, error) {
	folded := cases.Fold().String(strings.Join(strings.Fields(s), " "))
	for i, name := range names {
		if folded == name {
			return i, nil
		}
	}
	if v, ok := aliases[folded]; ok {
		return v, nil
	}
	return 0, configErrorf(kind, "unknown name %q", s)
}

// Shape is a user-placed mark. Size is the bounding dimension: the diameter
// of a circle, the side of a square, the width and height of a triangle.
// Color alpha is ignored; user shapes are always drawn opaque.
type Shape struct {
	Kind  ShapeKind
	X, Y  float64
	Size  float64
	Color gg.RGBA
}

// Caption is the text overlay drawn at the centre of the surface.
type Caption struct {
	Text     string
	FontSize float64 // pixels
	Style    FontStyle
	Color    gg.RGBA
}

// Caption font size limits in pixels.
const (
	MinFontSize = 10
	MaxFontSize = 100
)

// Parameter limits enforced by Validate.
const (
	MaxComplexity    = 100
	MaxGlowIntensity = 20
)

// GenerationConfig is the complete parameter snapshot for one render.
// The pipeline never modifies it.
type GenerationConfig struct {
	Category   Category
	Complexity int // [0, 100]
	Background BackgroundStyle
	Particles  ParticleEffect

	// GlowIntensity is the blur radius applied to the caption halo, [0, 20].
	GlowIntensity float64

	// AnimationPhase is the tint phase in radians; see PhaseAt.
	AnimationPhase float64

	// Caption is optional; nil or empty text draws nothing.
	Caption *Caption

	// Inset is an already decoded bitmap drawn last, centered and scaled to fit.
	Inset image.Image

	Shapes []Shape
}

// Validate reports the first problem found in c as a *ConfigError.
func (c *GenerationConfig) Validate() error {
	if c.Category < CategoryGeometric || c.Category > CategoryMinimalist {
		return configErrorf("category", "unknown value %d", int(c.Category))
	}
	if c.Complexity < 0 || c.Complexity > MaxComplexity {
		return configErrorf("complexity", "%d outside [0, %d]", c.Complexity, MaxComplexity)
	}
	if c.Background < BackgroundGradient || c.Background > BackgroundFlowField {
		return configErrorf("background", "unknown value %d", int(c.Background))
	}
	if c.Particles < ParticlesNone || c.Particles > ParticlesFireflies {
		return configErrorf("particles", "unknown value %d", int(c.Particles))
	}
	if math.IsNaN(c.GlowIntensity) || c.GlowIntensity < 0 || c.GlowIntensity > MaxGlowIntensity {
		return configErrorf("glow_intensity", "%v outside [0, %d]", c.GlowIntensity, MaxGlowIntensity)
	}
	if !isFinite(c.AnimationPhase) {
		return configErrorf("animation_phase", "%v is not finite", c.AnimationPhase)
	}
	if cp := c.Caption; cp != nil && cp.Text != "" {
		if math.IsNaN(cp.FontSize) || cp.FontSize < MinFontSize || cp.FontSize > MaxFontSize {
			return configErrorf("caption.font_size", "%v outside [%d, %d]", cp.FontSize, MinFontSize, MaxFontSize)
		}
		if cp.Style < FontNormal || cp.Style > FontBoldItalic {
			return configErrorf("caption.style", "unknown value %d", int(cp.Style))
		}
	}
	if c.Inset != nil && c.Inset.Bounds().Empty() {
		return configErrorf("inset", "image has empty bounds %v", c.Inset.Bounds())
	}
	for i, s := range c.Shapes {
		field := fmt.Sprintf("shapes[%d]", i)
		if s.Kind < ShapeCircle || s.Kind > ShapeTriangle {
			return configErrorf(field+".kind", "unknown value %d", int(s.Kind))
		}
		if !isFinite(s.Size) || s.Size <= 0 {
			return configErrorf(field+".size", "%v must be finite and > 0", s.Size)
		}
		if !isFinite(s.X) || !isFinite(s.Y) {
			return configErrorf(field, "position (%v, %v) is not finite", s.X, s.Y)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
