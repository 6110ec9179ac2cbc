package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/hexworth/blockfolio/biome"
	"github.com/hexworth/blockfolio/core"
	"github.com/hexworth/blockfolio/gallery"
	"github.com/hexworth/blockfolio/hotbar"
	"github.com/hexworth/blockfolio/parameter"
	"github.com/hexworth/blockfolio/parkour"
	"github.com/hexworth/blockfolio/progress"
	"github.com/hexworth/blockfolio/toast"
	"github.com/hexworth/blockfolio/trivia"
)

var titleArt = []string{
	`  _     _            _     __       _ _       `,
	` | |__ | | ___   ___| | __/ _| ___ | (_) ___  `,
	` | '_ \| |/ _ \ / __| |/ / |_ / _ \| | |/ _ \ `,
	` | |_) | | (_) | (__|   <|  _| (_) | | | (_) |`,
	` |_.__/|_|\___/ \___|_|\_\_|  \___/|_|_|\___/ `,
}

// DrawTitle renders the title screen
func DrawTitle(s tcell.Screen) {
	_, h := s.Size()
	top := h/2 - len(titleArt)
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for i, line := range titleArt {
		drawTextCentered(s, top+i, line, style)
	}
	drawTextCentered(s, top+len(titleArt)+2, "a portfolio, playable",
		tcell.StyleDefault.Foreground(tcell.ColorGray))
	drawTextCentered(s, top+len(titleArt)+4, "[ press Enter to spawn ]",
		tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
}

// DrawBiome renders one portfolio section as a gradient world area
func DrawBiome(s tcell.Screen, b biome.Biome) {
	w, h := s.Size()
	contentTop := 4

	sky := Gradient(b.SkyHex, b.GroundHex, h-parameter.HotbarRow-1)
	for y, c := range sky {
		fillArea(s, core.Area{X: 0, Y: y, Width: w, Height: 1}, ' ',
			tcell.StyleDefault.Background(c))
	}

	header := tcell.StyleDefault.Background(toTcellHex(b.SkyHex)).Bold(true)
	drawTextCentered(s, 1, b.Name, header)
	drawTextCentered(s, 2, "· "+b.Tagline+" ·", header.Bold(false).Dim(true))

	for i, line := range b.Lines {
		y := contentTop + i
		if y >= len(sky) {
			break
		}
		drawText(s, 4, y, line, tcell.StyleDefault.Background(sky[y]))
	}
}

func toTcellHex(hex string) tcell.Color {
	cs := Gradient(hex, hex, 1)
	return cs[0]
}

// DrawParkour renders the course: platforms, goal flag and the body
func DrawParkour(s tcell.Screen, loop *parkour.Loop) {
	level := loop.Level()
	body := loop.Body()

	platformStyle := tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown)
	for _, p := range level.Platforms {
		for dy := 0; dy < int(p.H); dy++ {
			for dx := 0; dx < int(p.W); dx++ {
				r := '█'
				if dy == 0 {
					r = '▀'
				}
				s.SetContent(int(p.X)+dx, int(p.Y)+dy, r, nil, platformStyle)
			}
		}
	}

	// Goal flag at the win threshold
	flagStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	s.SetContent(int(level.WinX), int(level.Platforms[len(level.Platforms)-1].Y)-1, '⚑', nil, flagStyle)

	bodyStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	for dy := 0; dy < int(body.H); dy++ {
		for dx := 0; dx < int(body.W); dx++ {
			s.SetContent(int(body.X)+dx, int(body.Y)+dy, '@', nil, bodyStyle)
		}
	}

	drawText(s, 2, 1, "PARKOUR  ←/→ move · space jump · esc leave",
		tcell.StyleDefault.Foreground(tcell.ColorGray))
	if loop.Done() {
		drawTextCentered(s, 3, "COURSE COMPLETE", tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	}
}

// DrawTrivia renders the block row with the selection cursor
func DrawTrivia(s tcell.Screen, f *trivia.Field) {
	drawText(s, 2, 1, "TRIVIA MINE  ←/→ select · enter break · esc leave",
		tcell.StyleDefault.Foreground(tcell.ColorGray))

	_, h := s.Size()
	row := h / 2
	x := 4
	for i, b := range f.Blocks() {
		w := len(b.Label) + 4
		area := core.Area{X: x, Y: row - 1, Width: w, Height: 3}

		style := tcell.StyleDefault.Foreground(tcell.ColorSandyBrown)
		label := b.Label
		if b.Broken {
			style = tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
			label = "✦"
		}
		if i == f.Cursor() {
			style = style.Reverse(true)
		}

		drawBox(s, area, style)
		drawText(s, x+2, row, label, style)
		x += w + 2
	}

	if f.Cleared() {
		drawTextCentered(s, row+4, "Every block mined. Nothing but facts down here.",
			tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}
}

// DrawGallery renders the project inventory list
func DrawGallery(s tcell.Screen, projects []gallery.Project, cursor int) {
	drawText(s, 2, 1, "INVENTORY  ↑/↓ browse · esc leave",
		tcell.StyleDefault.Foreground(tcell.ColorGray))

	top := 3
	for i, p := range projects {
		style := tcell.StyleDefault
		marker := "  "
		if i == cursor {
			style = style.Bold(true).Foreground(tcell.ColorYellow)
			marker = "▶ "
		}
		drawText(s, 4, top+i, fmt.Sprintf("%s%-14s %4d  %s", marker, p.Title, p.Year, p.Tagline), style)
	}

	if cursor >= 0 && cursor < len(projects) {
		p := projects[cursor]
		detailTop := top + len(projects) + 2
		drawText(s, 4, detailTop, p.Description, tcell.StyleDefault.Foreground(tcell.ColorGray))
		drawText(s, 4, detailTop+1, "tech: "+p.Tech, tcell.StyleDefault.Foreground(tcell.ColorTeal))
		drawText(s, 4, detailTop+2, p.URL, tcell.StyleDefault.Foreground(tcell.ColorBlue).Underline(true))
	}
}

// DrawHUD renders the hotbar, XP bar and mute indicator along the bottom
func DrawHUD(s tcell.Screen, h *hotbar.Hotbar, prog *progress.State, muted bool) {
	w, sh := s.Size()
	row := sh - parameter.HotbarRow

	x := 1
	for i, slot := range h.Slots() {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		if i == h.SelectedIndex() {
			style = style.Reverse(true).Bold(true)
		}
		label := fmt.Sprintf("[%d %s]", i+1, slot.Label)
		drawText(s, x, row, label, style)
		x += len(label) + 1
	}

	xpLabel := fmt.Sprintf("lv%d %d/%dxp", prog.Level(), prog.XP(), parameter.XPMax)
	if muted {
		xpLabel += " ♪✗"
	}
	drawText(s, w-len(xpLabel)-1, row, xpLabel, tcell.StyleDefault.Foreground(tcell.ColorTeal))
}

// DrawToast renders the visible toast in the top-right corner
// Dismissing toasts render dimmed as their exit animation
func DrawToast(s tcell.Screen, t toast.Toast, state toast.State) {
	w, _ := s.Size()
	area := core.Area{
		X:      w - parameter.ToastWidth - parameter.ToastMargin,
		Y:      parameter.ToastMargin,
		Width:  parameter.ToastWidth,
		Height: 4,
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	if state == toast.StateDismissing {
		style = tcell.StyleDefault.Foreground(Dim("#c8a400", 0.5)).Dim(true)
	}

	drawBox(s, area, style)
	drawText(s, area.X+2, area.Y+1, t.Title, style.Bold(state == toast.StateVisible))
	// Truncation is by display width over runes, never by byte
	desc := runewidth.Truncate(t.Description, area.Width-4, "...")
	drawText(s, area.X+2, area.Y+2, desc, style)
}
