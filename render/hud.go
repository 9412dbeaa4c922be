package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/particle-morph/feed"
	"github.com/lixenwraith/particle-morph/parameter"
	"github.com/lixenwraith/particle-morph/shape"
)

// HUD draws the shape selector, colour, openness meter and tracker status above the help line
type HUD struct {
	visible bool
}

func NewHUD() *HUD { return &HUD{visible: true} }

func (h *HUD) Toggle() { h.visible = !h.visible }

func (h *HUD) IsVisible() bool { return h.visible }

// TrackerText is the status indicator line for a tracker snapshot
func TrackerText(s feed.Status) (string, RGB) {
	switch s.Phase {
	case feed.PhaseLoading:
		return "Loading hand tracker…", RgbStatusWait
	case feed.PhaseActive:
		if !s.HandSeen {
			return "Hand Tracking Active (no hand)", RgbStatusOK
		}
		return "Hand Tracking Active", RgbStatusOK
	case feed.PhaseIdle:
		return "Tracker stream ended", RgbStatusWait
	case feed.PhaseUnavailable:
		msg := "unknown error"
		if s.Err != nil {
			msg = s.Err.Error()
		}
		return "Tracker unavailable: " + msg, RgbStatusError
	default:
		return "Tracker off", RgbHudDim
	}
}

// OpennessBar renders openness as filled and empty cells, width cells wide
func OpennessBar(openness float32, width int) (filled, empty string) {
	n := int(openness*float32(width) + 0.5)
	n = max(0, min(width, n))
	return strings.Repeat("█", n), strings.Repeat("░", width-n)
}

func (h *HUD) Render(ctx RenderContext, buf *RenderBuffer) {
	statusY := ctx.ScreenHeight - 2
	helpY := ctx.ScreenHeight - 1
	if statusY < 0 {
		return
	}

	x := 1
	for _, k := range shape.Kinds {
		label := fmt.Sprintf(" %d %s ", int(k)+1, k)
		if k == ctx.Scene.Shape {
			x = buf.WriteString(x, statusY, label, RgbHudSelected, tcell.AttrReverse)
		} else {
			x = buf.WriteString(x, statusY, label, RgbHudDim, 0)
		}
	}

	swatch, err := ParseHex(ctx.Scene.Color)
	if err != nil {
		swatch = RgbHudDim
	}
	x = buf.WriteString(x+2, statusY, "■ ", swatch, 0)
	x = buf.WriteString(x, statusY, ctx.Scene.Color, RgbHudText, 0)

	filled, empty := OpennessBar(ctx.Control.Openness, parameter.OpennessBarWidth)
	x = buf.WriteString(x+2, statusY, "open ", RgbHudDim, 0)
	x = buf.WriteString(x, statusY, filled, swatch, 0)
	x = buf.WriteString(x, statusY, empty, RgbHudBarEmpty, 0)
	x = buf.WriteString(x, statusY, fmt.Sprintf(" %.2f", ctx.Control.Openness), RgbHudText, 0)
	if ctx.Control.SpecialGesture {
		x = buf.WriteString(x+1, statusY, "♥", RgbCelebration, tcell.AttrBold)
	}

	var flags []string
	if ctx.IsPaused {
		flags = append(flags, "[PAUSED]")
	}
	if ctx.IsMuted {
		flags = append(flags, "[MUTED]")
	}
	if len(flags) > 0 {
		buf.WriteString(x+2, statusY, strings.Join(flags, " "), RgbPaused, 0)
	}

	// Tracker status right-aligned on the help line
	status, color := TrackerText(ctx.Tracker)
	sx := ctx.ScreenWidth - runewidth.StringWidth(status) - 1
	buf.WriteString(1, helpY, parameter.HelpText, RgbHudDim, 0)
	if sx > runewidth.StringWidth(parameter.HelpText)+2 {
		buf.WriteString(sx, helpY, status, color, 0)
	} else {
		// Narrow terminal, status wins over help
		for i := 0; i < ctx.ScreenWidth; i++ {
			buf.SetFgOnly(i, helpY, 0, RgbHudDim, 0)
		}
		buf.WriteString(1, helpY, status, color, 0)
	}
}
