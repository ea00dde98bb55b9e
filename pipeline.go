package artgen

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/gogpu/artgen/internal/parallel"
)

// Stats summarizes what a render drew.
type Stats struct {
	AutoShapes int // auto shapes drawn (anchors outside the exclusion zone)
	UserShapes int // user shapes drawn
	Particles  int // particles drawn
}

// Pipeline renders GenerationConfigs onto surfaces in a fixed stage order:
// background, auto shapes, user shapes, particles, caption with glow,
// animation tint, inset image. Later stages overwrite earlier pixels.
//
// A Pipeline holds no per-render state. It may be reused for any number of
// renders but must not run two renders at once.
type Pipeline struct {
	pool       *parallel.WorkerPool
	fonts      *fontBook
	background backgroundGenerator
}

// NewPipeline creates a pipeline. Call Close to release its workers.
func NewPipeline(opts ...PipelineOption) *Pipeline {
	o := defaultPipelineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	pool := parallel.NewWorkerPool(o.workers)
	return &Pipeline{
		pool:       pool,
		fonts:      newFontBook(o.fonts),
		background: backgroundGenerator{pool: pool},
	}
}

// Close stops the background workers. Close is idempotent.
func (p *Pipeline) Close() error {
	p.pool.Close()
	return nil
}

// Render validates cfg and paints it onto s, drawing all randomness from rng.
// A nil rng uses the process-wide generator and gives non-reproducible output.
//
// Validation completes before the first pixel is written. On error the
// surface content is undefined.
func (p *Pipeline) Render(cfg GenerationConfig, s *Surface, rng RandomSource) (Stats, error) {
	var stats Stats
	if s == nil || s.dc == nil {
		return stats, ErrSurfaceUnavailable
	}
	if s.Width() <= 0 || s.Height() <= 0 {
		return stats, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, s.Width(), s.Height())
	}

	log := Logger().With(slog.String("render_id", uuid.NewString()))
	if err := cfg.Validate(); err != nil {
		log.Warn("config rejected", slog.Any("error", err))
		return stats, err
	}
	if rng == nil {
		rng = globalSource{}
	}

	zone := NewExclusionZone(cfg.Inset, s.Width(), s.Height())
	s.ResetGlow()
	start := time.Now()

	stages := []struct {
		name string
		run  func() error
	}{
		{"background", func() error {
			return p.background.generate(cfg.Background, s, rng)
		}},
		{"auto_shapes", func() (err error) {
			stats.AutoShapes, err = drawAutoShapes(s, cfg.Category, cfg.Complexity, zone, rng)
			return err
		}},
		{"user_shapes", func() (err error) {
			stats.UserShapes, err = drawUserShapes(s, cfg.Shapes, zone)
			return err
		}},
		{"particles", func() (err error) {
			stats.Particles, err = scatterParticles(s, cfg.Particles, zone, rng)
			return err
		}},
		{"caption", func() error {
			return applyTextAndGlow(s, cfg.GlowIntensity, cfg.Caption, p.fonts)
		}},
		{"tint", func() error {
			return applyTint(s, cfg.AnimationPhase)
		}},
		{"inset", func() error {
			compositeInset(s, cfg.Inset)
			return nil
		}},
	}

	for _, st := range stages {
		t0 := time.Now()
		if err := st.run(); err != nil {
			log.Debug("stage failed", slog.String("stage", st.name), slog.Any("error", err))
			return stats, fmt.Errorf("%s stage: %w", st.name, err)
		}
		log.Debug("stage done", slog.String("stage", st.name), slog.Duration("elapsed", time.Since(t0)))
	}

	log.Info("render complete",
		slog.Int("width", s.Width()),
		slog.Int("height", s.Height()),
		slog.String("background", cfg.Background.String()),
		slog.String("category", cfg.Category.String()),
		slog.Int("auto_shapes", stats.AutoShapes),
		slog.Int("user_shapes", stats.UserShapes),
		slog.Int("particles", stats.Particles),
		slog.Duration("elapsed", time.Since(start)),
	)
	return stats, nil
}

// Render is a one-shot convenience around NewPipeline, Render and Close.
func Render(cfg GenerationConfig, s *Surface, rng RandomSource) (Stats, error) {
	p := NewPipeline()
	defer func() { _ = p.Close() }()
	return p.Render(cfg, s, rng)
}

// globalSource draws from the process-wide math/rand/v2 generator.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
