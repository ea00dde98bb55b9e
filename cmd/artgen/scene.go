package main

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"

	// Inset decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/artgen"
)

// scene is the YAML form of a render. Enum fields accept the names
// understood by the artgen Parse functions.
type scene struct {
	Category   artgen.Category        `yaml:"category"`
	Complexity int                    `yaml:"complexity"`
	Background artgen.BackgroundStyle `yaml:"background"`
	Particles  artgen.ParticleEffect  `yaml:"particles"`
	Glow       float64                `yaml:"glow"`
	Animation  animation              `yaml:"animation"`
	Caption    *caption               `yaml:"caption"`
	Inset      string                 `yaml:"inset"`
	Shapes     []shape                `yaml:"shapes"`
}

// animation picks one frame: a base phase advanced by elapsed time at speed.
type animation struct {
	Phase   float64       `yaml:"phase"`
	Elapsed time.Duration `yaml:"elapsed"`
	Speed   float64       `yaml:"speed"`
}

func (a animation) at(elapsed time.Duration) float64 {
	return a.Phase + artgen.PhaseAt(elapsed, a.Speed)
}

// caption leaves Color nil when the key is absent, so an explicit
// "#00000000" stays transparent.
type caption struct {
	Text  string           `yaml:"text"`
	Size  float64          `yaml:"size"`
	Style artgen.FontStyle `yaml:"style"`
	Color *hexColor        `yaml:"color"`
}

type shape struct {
	Kind  artgen.ShapeKind `yaml:"kind"`
	X     float64          `yaml:"x"`
	Y     float64          `yaml:"y"`
	Size  float64          `yaml:"size"`
	Color hexColor         `yaml:"color"`
}

// hexColor is a CSS-style #rgb, #rgba, #rrggbb or #rrggbbaa color.
type hexColor gg.RGBA

func (c *hexColor) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "#")
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return fmt.Errorf("color %q: want #rgb, #rgba, #rrggbb or #rrggbbaa", text)
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return fmt.Errorf("color %q: invalid hex digit %q", text, r)
		}
	}
	*c = hexColor(gg.Hex(s))
	return nil
}

const (
	defaultCaptionSize = 32
	maxAnimationSpeed  = 10
)

func defaultScene() scene {
	return scene{
		Category:   artgen.CategoryGeometric,
		Complexity: 50,
		Background: artgen.BackgroundGradient,
	}
}

// loadScene reads a YAML scene over the defaults.
func loadScene(r io.Reader) (scene, error) {
	sc := defaultScene()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil && err != io.EOF {
		return sc, fmt.Errorf("parse scene: %w", err)
	}
	return sc, nil
}

func loadSceneFile(path string) (scene, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return scene{}, err
	}
	defer func() { _ = f.Close() }()
	return loadScene(f)
}

// config converts the scene into a GenerationConfig, decoding the inset
// relative to dir.
func (sc scene) config(dir string) (artgen.GenerationConfig, error) {
	if v := sc.Animation.Speed; v < 0 || v > maxAnimationSpeed {
		return artgen.GenerationConfig{}, &artgen.ConfigError{
			Field:  "animation.speed",
			Reason: fmt.Sprintf("%v outside [0, %d]", v, maxAnimationSpeed),
		}
	}
	cfg := artgen.GenerationConfig{
		Category:       sc.Category,
		Complexity:     sc.Complexity,
		Background:     sc.Background,
		Particles:      sc.Particles,
		GlowIntensity:  sc.Glow,
		AnimationPhase: sc.Animation.at(sc.Animation.Elapsed),
	}
	if c := sc.Caption; c != nil {
		color := gg.White
		if c.Color != nil {
			color = gg.RGBA(*c.Color)
		}
		size := c.Size
		if size == 0 {
			size = defaultCaptionSize
		}
		cfg.Caption = &artgen.Caption{
			Text:     c.Text,
			FontSize: size,
			Style:    c.Style,
			Color:    color,
		}
	}
	for _, s := range sc.Shapes {
		cfg.Shapes = append(cfg.Shapes, artgen.Shape{
			Kind:  s.Kind,
			X:     s.X,
			Y:     s.Y,
			Size:  s.Size,
			Color: gg.RGBA(s.Color),
		})
	}
	if sc.Inset != "" {
		path := sc.Inset
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		img, err := decodeImage(path)
		if err != nil {
			return cfg, err
		}
		cfg.Inset = img
	}
	return cfg, nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode inset %s: %w", path, err)
	}
	logger.Debug("inset decoded", "path", path, "format", format, "bounds", img.Bounds())
	return img, nil
}
