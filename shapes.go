package artgen

import (
	"math"

	"github.com/gogpu/gg"
)

const (
	autoShapeBase    = 5
	autoShapeAlpha   = 0.5
	outlineLineWidth = 1

	squareMinSide   = 50
	squareMaxSide   = 150
	circleMinRadius = 10
	circleMaxRadius = 60
	trunkHeight     = 50
	crownRadius     = 20
)

// AutoShapeCount is the number of auto-shape anchors drawn for a complexity:
// floor(complexity/10) + 5.
func AutoShapeCount(complexity int) int {
	return complexity/10 + autoShapeBase
}

// pathFunc appends geometry to the current path of dc.
type pathFunc func(dc *gg.Context)

// drawAutoShapes draws AutoShapeCount(complexity) category-styled shapes at
// random anchors. Anchors inside zone are skipped without resampling and
// consume no further randomness. It returns the number of shapes drawn.
func drawAutoShapes(s *Surface, category Category, complexity int, zone ExclusionZone, rng RandomSource) (int, error) {
	w, h := float64(s.Width()), float64(s.Height())
	drawn := 0
	for range AutoShapeCount(complexity) {
		x := rng.Float64() * w
		y := rng.Float64() * h
		if zone.Contains(x, y) {
			continue
		}

		path, err := autoShapePath(category, x, y, w, h, rng)
		if err != nil {
			return drawn, err
		}
		fill := gg.RGBA2(rng.Float64(), rng.Float64(), rng.Float64(), autoShapeAlpha)
		if err := drawOutlined(s, path, fill); err != nil {
			return drawn, err
		}
		drawn++
	}
	return drawn, nil
}

// autoShapePath draws the category's random geometry parameters and returns
// the path anchored at (x, y).
func autoShapePath(category Category, x, y, w, h float64, rng RandomSource) (pathFunc, error) {
	switch category {
	case CategoryGeometric:
		side := between(rng, squareMinSide, squareMaxSide)
		return func(dc *gg.Context) { dc.DrawRectangle(x, y, side, side) }, nil

	case CategoryAbstract:
		c1x, c1y := rng.Float64()*w, rng.Float64()*h
		c2x, c2y := rng.Float64()*w, rng.Float64()*h
		ex, ey := rng.Float64()*w, rng.Float64()*h
		return func(dc *gg.Context) {
			dc.MoveTo(x, y)
			dc.CubicTo(c1x, c1y, c2x, c2y, ex, ey)
		}, nil

	case CategoryFuturistic:
		r := between(rng, circleMinRadius, circleMaxRadius)
		return func(dc *gg.Context) { dc.DrawCircle(x, y, r) }, nil

	case CategoryNature:
		// One subpath: the trunk runs into the crown's rightmost point, the
		// crown is a full turn from there, and filling closes back to (x, y).
		cy := y - trunkHeight - crownRadius
		return func(dc *gg.Context) {
			dc.MoveTo(x, y)
			dc.LineTo(x, y-trunkHeight)
			dc.LineTo(x+crownRadius, cy)
			dc.DrawArc(x, cy, crownRadius, 0, 2*math.Pi)
		}, nil

	case CategoryMinimalist:
		ex, ey := rng.Float64()*w, rng.Float64()*h
		return func(dc *gg.Context) {
			dc.MoveTo(x, y)
			dc.LineTo(ex, ey)
		}, nil
	}
	return nil, configErrorf("category", "unknown value %d", int(category))
}

// drawUserShapes draws the caller's shapes in order, skipping those anchored
// inside zone. It returns the number of shapes drawn.
func drawUserShapes(s *Surface, shapes []Shape, zone ExclusionZone) (int, error) {
	drawn := 0
	for _, sh := range shapes {
		if zone.Contains(sh.X, sh.Y) {
			continue
		}
		fill := sh.Color
		fill.A = 1
		if err := drawOutlined(s, userShapePath(sh), fill); err != nil {
			return drawn, err
		}
		drawn++
	}
	return drawn, nil
}

// userShapePath centres the shape's bounding square on (X, Y).
func userShapePath(sh Shape) pathFunc {
	half := sh.Size / 2
	switch sh.Kind {
	case ShapeSquare:
		return func(dc *gg.Context) { dc.DrawRectangle(sh.X-half, sh.Y-half, sh.Size, sh.Size) }
	case ShapeTriangle:
		return func(dc *gg.Context) {
			dc.MoveTo(sh.X, sh.Y-half)
			dc.LineTo(sh.X-half, sh.Y+half)
			dc.LineTo(sh.X+half, sh.Y+half)
			dc.ClosePath()
		}
	default:
		return func(dc *gg.Context) { dc.DrawCircle(sh.X, sh.Y, half) }
	}
}

// drawOutlined fills path with fill, then strokes it with a 1px black outline.
func drawOutlined(s *Surface, path pathFunc, fill gg.RGBA) error {
	return s.Draw(func(dc *gg.Context) error {
		dc.ClearPath()
		path(dc)
		dc.SetFillBrush(gg.Solid(fill))
		if err := dc.FillPreserve(); err != nil {
			return err
		}
		dc.SetStrokeBrush(gg.Solid(gg.Black))
		dc.SetLineWidth(outlineLineWidth)
		return dc.Stroke()
	})
}
