package render

import (
	"github.com/lixenwraith/particle-morph/engine"
	"github.com/lixenwraith/particle-morph/parameter"
	"github.com/lixenwraith/particle-morph/vmath"
)

// Density glyphs, sparse to solid
var particleGlyphs = [4]rune{'·', '•', '●', '█'}

// ParticleRenderer splats the live particle buffer into cells
// Each particle adds light to its cell, dense cells get heavier glyphs and wash toward white
type ParticleRenderer struct {
	world *engine.World

	// Scratch reused across frames, sized to the view
	counts []uint16
	energy []float32

	palette map[string]RGB
}

func NewParticleRenderer(world *engine.World) *ParticleRenderer {
	return &ParticleRenderer{world: world, palette: make(map[string]RGB)}
}

// baseColor caches parsed scene colors, an unparsable value falls back to the default
func (r *ParticleRenderer) baseColor(hex string) RGB {
	if c, ok := r.palette[hex]; ok {
		return c
	}
	c, err := ParseHex(hex)
	if err != nil {
		c = MustHex(parameter.DefaultColor)
	}
	r.palette[hex] = c
	return c
}

// Glyph picks the density glyph for a cell holding count particles
func Glyph(count int) rune {
	switch {
	case count >= parameter.ParticleDensityHigh:
		return particleGlyphs[3]
	case count >= parameter.ParticleDensityMid:
		return particleGlyphs[2]
	case count >= parameter.ParticleDensityLow:
		return particleGlyphs[1]
	default:
		return particleGlyphs[0]
	}
}

func (r *ParticleRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	w, h := ctx.ScreenWidth, ctx.ViewHeight
	if w <= 0 || h <= 0 || ctx.Camera == nil {
		return
	}
	size := w * h
	if cap(r.counts) < size {
		r.counts = make([]uint16, size)
		r.energy = make([]float32, size)
	}
	r.counts = r.counts[:size]
	r.energy = r.energy[:size]
	clear(r.counts)
	clear(r.energy)

	cam := ctx.Camera
	spin := r.world.Angle()
	nearest := cam.Distance - parameter.ParticleCloudExtent/2

	particles := r.world.Buffer()
	for i := 0; i < particles.Len(); i++ {
		p, ok := cam.Project(particles.At(i), spin)
		if !ok {
			continue
		}
		x, y := int(p.X), int(p.Y)
		if p.X < 0 || p.Y < 0 || x >= w || y >= h {
			continue
		}
		fade := vmath.Clamp01((p.Depth-nearest)/parameter.ParticleCloudExtent) * parameter.ParticleDepthFade
		idx := y*w + x
		if r.counts[idx] < 0xFFFF {
			r.counts[idx]++
		}
		r.energy[idx] += parameter.ParticleOpacity * (1 - fade)
	}

	base := r.baseColor(ctx.Scene.Color)
	for idx, n := range r.counts {
		if n == 0 {
			continue
		}
		e := float64(r.energy[idx])
		c := Lerp(RgbBackground, base, e)
		if e > 1 {
			// Saturated cells bloom toward white
			c = Screen(c, Scale(RGBWhite, min((e-1)*0.15, 0.6)))
		}
		buf.SetFgOnly(idx%w, idx/w, Glyph(int(n)), c, 0)
	}
}
