package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// toTcell converts a colorful color to a tcell RGB color
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Gradient blends between two hex anchors in Luv space, which keeps the
// perceived brightness ramp even across terminal rows
func Gradient(fromHex, toHex string, steps int) []tcell.Color {
	from, err1 := colorful.Hex(fromHex)
	to, err2 := colorful.Hex(toHex)
	if err1 != nil || err2 != nil || steps < 1 {
		return []tcell.Color{tcell.ColorDefault}
	}

	out := make([]tcell.Color, steps)
	for i := 0; i < steps; i++ {
		t := 0.0
		if steps > 1 {
			t = float64(i) / float64(steps-1)
		}
		out[i] = toTcell(from.BlendLuv(to, t).Clamped())
	}
	return out
}

// Dim scales a hex color toward black, used for the toast dismiss fade
func Dim(hex string, factor float64) tcell.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault
	}
	return toTcell(colorful.Color{R: c.R * factor, G: c.G * factor, B: c.B * factor}.Clamped())
}
