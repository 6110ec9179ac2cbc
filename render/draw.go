package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/hexworth/blockfolio/core"
)

// drawText writes a string starting at (x, y), clipped to screen width
// Advances by display width, so wide runes occupy their two cells
func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	w, h := s.Size()
	if y < 0 || y >= h {
		return
	}
	col := x
	for _, r := range text {
		if col >= w {
			return
		}
		if col >= 0 {
			s.SetContent(col, y, r, nil, style)
		}
		col += runewidth.RuneWidth(r)
	}
}

// drawTextCentered writes a string centered on the given row
func drawTextCentered(s tcell.Screen, y int, text string, style tcell.Style) {
	w, _ := s.Size()
	drawText(s, (w-runewidth.StringWidth(text))/2, y, text, style)
}

// fillArea paints a rectangular region with the given rune and style
func fillArea(s tcell.Screen, a core.Area, r rune, style tcell.Style) {
	for y := a.Y; y < a.Y+a.Height; y++ {
		for x := a.X; x < a.X+a.Width; x++ {
			s.SetContent(x, y, r, nil, style)
		}
	}
}

// drawBox draws a single-line border around the area and clears its inside
func drawBox(s tcell.Screen, a core.Area, style tcell.Style) {
	fillArea(s, core.Area{X: a.X + 1, Y: a.Y + 1, Width: a.Width - 2, Height: a.Height - 2}, ' ', style)

	for x := a.X; x < a.X+a.Width; x++ {
		s.SetContent(x, a.Y, '─', nil, style)
		s.SetContent(x, a.Y+a.Height-1, '─', nil, style)
	}
	for y := a.Y; y < a.Y+a.Height; y++ {
		s.SetContent(a.X, y, '│', nil, style)
		s.SetContent(a.X+a.Width-1, y, '│', nil, style)
	}
	s.SetContent(a.X, a.Y, '┌', nil, style)
	s.SetContent(a.X+a.Width-1, a.Y, '┐', nil, style)
	s.SetContent(a.X, a.Y+a.Height-1, '└', nil, style)
	s.SetContent(a.X+a.Width-1, a.Y+a.Height-1, '┘', nil, style)
}
