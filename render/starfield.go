package render

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/lixenwraith/particle-morph/parameter"
	"github.com/lixenwraith/particle-morph/vmath"
)

// Starfield is a static shell of background stars that twinkle with coherent noise
// Stars follow the camera orbit but not the particle spin
type Starfield struct {
	stars   []vmath.Vec3
	seeds   []float64
	noise   *perlin.Perlin
	visible bool
}

// NewStarfield scatters count stars uniformly on directions between StarRadius and StarRadius+StarDepth
func NewStarfield(count int, seed uint64) *Starfield {
	rng := vmath.NewFastRand(seed)
	s := &Starfield{
		stars:   make([]vmath.Vec3, count),
		seeds:   make([]float64, count),
		noise:   perlin.NewPerlin(2, 2, 3, int64(seed)),
		visible: true,
	}
	for i := range s.stars {
		r := parameter.StarRadius + rng.Float32()*parameter.StarDepth
		azimuth := rng.Float32() * 2 * math.Pi
		polar := float32(math.Acos(float64(2*rng.Float32() - 1)))
		s.stars[i] = vmath.V3FromSpherical(r, azimuth, polar)
		s.seeds[i] = float64(i) * 1.618
	}
	return s
}

// Toggle flips visibility
func (s *Starfield) Toggle() { s.visible = !s.visible }

func (s *Starfield) IsVisible() bool { return s.visible }

// Brightness of star i at time t, in [0.2, 1]
func (s *Starfield) Brightness(i int, t float32) float64 {
	n := s.noise.Noise2D(s.seeds[i], float64(t)*parameter.StarTwinkleSpeed)
	return 0.2 + 0.8*math.Max(0, math.Min(1, (n+1)/2))
}

func (s *Starfield) Render(ctx RenderContext, buf *RenderBuffer) {
	if ctx.Camera == nil {
		return
	}
	for i, star := range s.stars {
		p, ok := ctx.Camera.Project(star, 0)
		if !ok || p.X < 0 || p.Y < 0 || int(p.X) >= ctx.ScreenWidth || int(p.Y) >= ctx.ViewHeight {
			continue
		}
		b := s.Brightness(i, ctx.Elapsed)
		glyph := '.'
		if b > 0.85 {
			glyph = '+'
		}
		buf.SetFgOnly(int(p.X), int(p.Y), glyph, Scale(RgbStar, b), 0)
	}
}
