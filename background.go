package artgen

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/artgen/internal/parallel"
)

const (
	fractalMaxIterations  = 100
	fractalEscapeRadiusSq = 16

	voronoiSeedCount = 20

	flowFieldScale = 0.01
)

// hueColor is HSL(hue, 100%, 50%), the fill model of every background.
func hueColor(hue float64) gg.RGBA {
	return gg.HSL(hue, 1, 0.5)
}

// VoronoiSeed is one site of the voronoi background.
type VoronoiSeed struct {
	X, Y  float64
	Color gg.RGBA
}

// backgroundGenerator paints the base layer. It overwrites every pixel.
// Random draws happen on the calling goroutine before any row is dispatched,
// so the output does not depend on the number of workers.
type backgroundGenerator struct {
	pool *parallel.WorkerPool
}

func (g *backgroundGenerator) generate(style BackgroundStyle, s *Surface, rng RandomSource) error {
	w, h := s.Width(), s.Height()
	switch style {
	case BackgroundGradient:
		g.gradient(s, rng.Float64()*360, rng.Float64()*360)
	case BackgroundFractal:
		g.fill(s, func(x, y int) gg.RGBA { return hueColor(fractalHue(x, y, w, h)) })
	case BackgroundVoronoi:
		g.voronoi(s, voronoiSeeds(rng, voronoiSeedCount, w, h))
	case BackgroundFlowField:
		g.fill(s, func(x, y int) gg.RGBA { return hueColor(flowFieldHue(x, y)) })
	default:
		return configErrorf("background", "unknown value %d", int(style))
	}
	return nil
}

// fill sets every pixel to colorAt(x, y), row bands in parallel.
func (g *backgroundGenerator) fill(s *Surface, colorAt func(x, y int) gg.RGBA) {
	pm := s.pixmap()
	w := pm.Width()
	g.pool.ForEachRow(pm.Height(), func(y int) {
		for x := range w {
			pm.SetPixel(x, y, colorAt(x, y))
		}
	})
}

// gradient paints a diagonal two-stop gradient from the top-left corner
// (hue0) to the bottom-right corner (hue1).
func (g *backgroundGenerator) gradient(s *Surface, hue0, hue1 float64) {
	brush := gg.NewLinearGradientBrush(0, 0, float64(s.Width()), float64(s.Height())).
		AddColorStop(0, hueColor(hue0)).
		AddColorStop(1, hueColor(hue1))
	g.fill(s, func(x, y int) gg.RGBA {
		return brush.ColorAt(float64(x)+0.5, float64(y)+0.5)
	})
}

func (g *backgroundGenerator) voronoi(s *Surface, seeds []VoronoiSeed) {
	g.fill(s, func(x, y int) gg.RGBA {
		return seeds[nearestSeed(seeds, float64(x), float64(y))].Color
	})
}

// fractalHue maps pixel (px, py) into [-2, 2] x [-2, 2] and returns
// (iterations / 100) * 360, where iterations counts the z = z^2 + c steps
// taken before |z|^2 exceeds 16.
func fractalHue(px, py, w, h int) float64 {
	a0 := (float64(px) - float64(w)/2) * 4 / float64(w)
	b0 := (float64(py) - float64(h)/2) * 4 / float64(h)

	a, b := a0, b0
	n := 0
	for n < fractalMaxIterations {
		a, b = a*a-b*b+a0, 2*a*b+b0
		if a*a+b*b > fractalEscapeRadiusSq {
			break
		}
		n++
	}
	return float64(n) / fractalMaxIterations * 360
}

// flowFieldHue is a pure function of position; no randomness is involved.
func flowFieldHue(px, py int) float64 {
	angle := (math.Sin(float64(px)*flowFieldScale) + math.Cos(float64(py)*flowFieldScale)) * math.Pi
	return (angle + math.Pi) / (2 * math.Pi) * 360
}

// voronoiSeeds draws n seeds, each as x, y, hue in that order.
func voronoiSeeds(rng RandomSource, n, w, h int) []VoronoiSeed {
	seeds := make([]VoronoiSeed, n)
	for i := range seeds {
		x := rng.Float64() * float64(w)
		y := rng.Float64() * float64(h)
		seeds[i] = VoronoiSeed{X: x, Y: y, Color: hueColor(rng.Float64() * 360)}
	}
	return seeds
}

// nearestSeed returns the index of the seed closest to (x, y).
// Ties go to the earliest seed.
func nearestSeed(seeds []VoronoiSeed, x, y float64) int {
	best := 0
	bestDist := math.Inf(1)
	for i, s := range seeds {
		dx, dy := x-s.X, y-s.Y
		if d := dx*dx + dy*dy; d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
