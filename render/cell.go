package render

import "github.com/gdamore/tcell/v2"

// Cell is one composited terminal cell, Rune 0 renders as a space
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs tcell.AttrMask
}
