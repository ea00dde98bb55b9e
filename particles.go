package artgen

import "github.com/gogpu/gg"

const particleCount = 100

// particleStyle is the look of one ParticleEffect.
type particleStyle struct {
	maxRadius float64
	r, g, b   float64
}

var particleStyles = map[ParticleEffect]particleStyle{
	ParticlesStardust:  {maxRadius: 2, r: 1, g: 1, b: 1},
	ParticlesFireflies: {maxRadius: 3, r: 1, g: 1, b: 0},
}

// scatterParticles draws up to 100 dots of the effect's style. Each candidate
// draws x, y and, unless it falls inside zone, radius in [0, maxRadius) and
// alpha in [0.5, 1). It returns the number of dots drawn.
func scatterParticles(s *Surface, effect ParticleEffect, zone ExclusionZone, rng RandomSource) (int, error) {
	if effect == ParticlesNone {
		return 0, nil
	}
	style, ok := particleStyles[effect]
	if !ok {
		return 0, configErrorf("particles", "unknown value %d", int(effect))
	}

	w, h := float64(s.Width()), float64(s.Height())
	drawn := 0
	for range particleCount {
		x := rng.Float64() * w
		y := rng.Float64() * h
		if zone.Contains(x, y) {
			continue
		}
		radius := rng.Float64() * style.maxRadius
		alpha := between(rng, 0.5, 1)

		err := s.Draw(func(dc *gg.Context) error {
			dc.ClearPath()
			dc.DrawCircle(x, y, radius)
			dc.SetFillBrush(gg.Solid(gg.RGBA2(style.r, style.g, style.b, alpha)))
			return dc.Fill()
		})
		if err != nil {
			return drawn, err
		}
		drawn++
	}
	return drawn, nil
}
