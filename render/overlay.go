package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/particle-morph/parameter"
)

// CelebrationOverlay tints the view pink and shows the banner while the celebration is active
type CelebrationOverlay struct{}

func (CelebrationOverlay) Render(ctx RenderContext, buf *RenderBuffer) {
	if !ctx.Scene.Celebration {
		return
	}
	for y := 0; y < ctx.ViewHeight; y++ {
		for x := 0; x < ctx.ScreenWidth; x++ {
			buf.Set(x, y, 0, RGBBlack, RgbCelebration, BlendAlphaBg, parameter.CelebrationTint, 0)
		}
	}

	// Slow pulse between accent pink and white
	pulse := 0.5 + 0.5*math.Sin(float64(ctx.Elapsed)*math.Pi)
	title := LerpLuv(RgbCelebration, RgbBannerText, pulse)

	cy := ctx.ViewHeight/2 - 1
	drawCentered(buf, ctx.ScreenWidth, cy, parameter.CelebrationTitle, title, tcell.AttrBold)
	drawCentered(buf, ctx.ScreenWidth, cy+1, parameter.CelebrationSubtitle, RgbBannerText, tcell.AttrDim)
}

func drawCentered(buf *RenderBuffer, width, y int, s string, fg RGB, attrs tcell.AttrMask) {
	x := (width - runewidth.StringWidth(s)) / 2
	buf.WriteString(max(x, 0), y, s, fg, attrs)
}
