// Package artgen procedurally renders a composite raster from a small set of
// numeric and enum parameters.
//
// # Overview
//
// A render paints, in this fixed order, onto one Surface:
//
//  1. a background (gradient, Mandelbrot fractal, voronoi or flow field)
//  2. category-styled auto shapes, then the caller's own shapes
//  3. a particle overlay (stardust or fireflies)
//  4. a caption, drawn with an optional glow
//  5. a translucent animation tint for one frame
//  6. an optional inset bitmap, scaled to fit and centered
//
// Shapes and particles anchored under the inset are skipped so the inset,
// painted last, is never obstructed.
//
// # Quick Start
//
//	s, _ := artgen.NewSurface(800, 600)
//	cfg := artgen.GenerationConfig{
//	    Category:   artgen.CategoryFuturistic,
//	    Complexity: 60,
//	    Background: artgen.BackgroundVoronoi,
//	    Particles:  artgen.ParticlesStardust,
//	}
//	if _, err := artgen.Render(cfg, s, artgen.NewRandomSource(42)); err != nil {
//	    log.Fatal(err)
//	}
//	_ = s.Context().SavePNG("art.png")
//
// # Determinism
//
// All randomness comes from the RandomSource passed to Render and is drawn
// on the calling goroutine in stage order. Equal seeds, dimensions and
// configs give byte-identical rasters regardless of WithWorkers. The
// fractal and flow-field backgrounds use no randomness at all.
//
// # Drawing
//
// Surfaces are backed by a github.com/gogpu/gg Context using its software
// rasterizer; Surface.Context exposes it for callers that want to keep
// drawing after a render.
package artgen
