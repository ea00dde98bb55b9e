package artgen

import (
	"math"
	"time"

	"github.com/gogpu/gg"
)

// TintAlpha is the opacity of the animation wash at phase: sin(phase)*0.1 + 0.1,
// which stays within [0, 0.2] and is exactly 0.1 at phase 0.
func TintAlpha(phase float64) float64 {
	return math.Sin(phase)*0.1 + 0.1
}

// PhaseAt converts an elapsed animation time and a speed into a tint phase:
// elapsed milliseconds * speed / 1000. It does not range-check speed; the
// artgen command accepts speeds in [0, 10]. Callers running a live loop
// advance elapsed and render one frame per tick.
func PhaseAt(elapsed time.Duration, speed float64) float64 {
	return elapsed.Seconds() * speed
}

// applyTint washes the whole surface with translucent white.
func applyTint(s *Surface, phase float64) error {
	return s.FillRect(0, 0, float64(s.Width()), float64(s.Height()), gg.RGBA2(1, 1, 1, TintAlpha(phase)))
}
