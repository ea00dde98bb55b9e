package artgen

import (
	"bytes"
	"testing"
)

func TestScatterParticlesNone(t *testing.T) {
	s := blackSurface(t, 50, 50)
	before := s.Image()
	rng := newCountingSource(1)

	n, err := scatterParticles(s, ParticlesNone, ExclusionZone{}, rng)
	if err != nil || n != 0 {
		t.Errorf("scatterParticles(None) = %d, %v, want 0, nil", n, err)
	}
	if rng.n != 0 {
		t.Errorf("ParticlesNone drew %d random values, want 0", rng.n)
	}
	if !bytes.Equal(before.Pix, s.Image().Pix) {
		t.Error("ParticlesNone changed the surface")
	}
}

func TestScatterParticles(t *testing.T) {
	for _, effect := range []ParticleEffect{ParticlesStardust, ParticlesFireflies} {
		t.Run(effect.String(), func(t *testing.T) {
			s := blackSurface(t, 200, 150)
			rng := newCountingSource(4)

			n, err := scatterParticles(s, effect, ExclusionZone{}, rng)
			if err != nil {
				t.Fatal(err)
			}
			if n != particleCount {
				t.Errorf("drawn = %d, want %d", n, particleCount)
			}
			if rng.n != 4*particleCount {
				t.Errorf("random draws = %d, want %d", rng.n, 4*particleCount)
			}

			lit := 0
			for y := range 150 {
				for x := range 200 {
					c := s.At(x, y)
					if c.R > 0 {
						lit++
					}
					if effect == ParticlesFireflies && c.B != 0 {
						t.Fatalf("firefly pixel (%d, %d) = %v has blue", x, y, c)
					}
				}
			}
			if lit == 0 {
				t.Error("no particle reached the surface")
			}
		})
	}
}

func TestScatterParticlesFullyExcluded(t *testing.T) {
	s := blackSurface(t, 60, 40)
	before := s.Image()
	rng := newCountingSource(2)

	n, err := scatterParticles(s, ParticlesFireflies, fullZone(60, 40), rng)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("drawn = %d, want 0", n)
	}
	if rng.n != 2*particleCount {
		t.Errorf("random draws = %d, want %d (anchors only)", rng.n, 2*particleCount)
	}
	if !bytes.Equal(before.Pix, s.Image().Pix) {
		t.Error("excluded particles changed the surface")
	}
}

func TestScatterParticlesUnknownEffect(t *testing.T) {
	s := blackSurface(t, 10, 10)
	if _, err := scatterParticles(s, ParticleEffect(5), ExclusionZone{}, NewRandomSource(1)); err == nil {
		t.Error("unknown effect should fail")
	}
}
