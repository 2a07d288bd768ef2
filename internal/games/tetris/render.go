package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// Layout: a title row, then the framed well with the side panel to its right.
const (
	cellW      = 2 // screen columns per grid cell
	hudHeight  = 1
	panelGap   = 1
	panelW     = 12
	panelH     = 15
	previewDim = 4 // preview box interior, in cells
)

// Glyphs
const (
	blockChar = '█'
	ghostChar = '░'
)

func (g *Game) wellRect(ox, oy int) core.Rect {
	r := g.eng.Rules()
	return core.NewRect(ox, oy+hudHeight, r.Width*cellW+2, r.Height+2)
}

// layoutSize returns the screen size needed to draw the session.
func (g *Game) layoutSize() (int, int) {
	well := g.wellRect(0, 0)
	return well.W + panelGap + panelW, hudHeight + core.Max(well.H, panelH)
}

// tooSmall reports whether the known terminal size cannot fit the layout.
// An unknown (zero) size never counts as too small.
func (g *Game) tooSmall() bool {
	if g.eng == nil || (g.screenW == 0 && g.screenH == 0) {
		return false
	}
	w, h := g.layoutSize()
	return g.screenW < w || g.screenH < h
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		g.renderOverlay(dst, "Config error", g.err.Error())
		return
	}
	if g.eng == nil {
		return
	}

	w, h := g.layoutSize()
	if dst.Width() < w || dst.Height() < h {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	ox := (dst.Width() - w) / 2
	oy := (dst.Height() - h) / 2

	dst.DrawText(ox, oy, g.Title())

	well := g.wellRect(ox, oy)
	dst.DrawBox(well, g.theme.Frame)
	inner := well.Inner()

	for c, k := range g.state.Occupied {
		drawCell(dst, inner, c, blockChar, g.theme.PieceColor(k))
	}

	if g.state.Mode == engine.ModePlaying {
		for _, c := range g.eng.Ghost(g.state).Cells() {
			drawCell(dst, inner, c, ghostChar, g.theme.Ghost)
		}
		color := g.theme.PieceColor(g.state.Current.Kind)
		for _, c := range g.state.Current.Cells() {
			drawCell(dst, inner, c, blockChar, color)
		}
	}

	g.renderPanel(dst, well.Right()+panelGap, well.Y)

	// Draw overlays
	switch {
	case g.state.Mode == engine.ModeGameOver:
		g.renderOverlay(dst, "GAME OVER", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "PAUSED", "Press P to continue")
	}
}

// drawCell paints one grid cell. Cells above the well are not drawn.
func drawCell(dst *core.Screen, inner core.Rect, c engine.Cell, glyph rune, color core.Color) {
	if c.Y < 0 {
		return
	}
	x := inner.X + c.X*cellW
	y := inner.Y + c.Y
	for i := 0; i < cellW; i++ {
		dst.SetColored(x+i, y, glyph, color)
	}
}

// renderPanel draws the next-piece preview and the counters.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	dst.DrawText(x, y, "NEXT")
	box := core.NewRect(x, y+1, previewDim*cellW+2, previewDim+2)
	dst.DrawBox(box, g.theme.Frame)

	next := g.state.Next.Kind
	pad := (previewDim - engine.TemplateSize(next)) / 2
	color := g.theme.PieceColor(next)
	inner := box.Inner()
	for _, off := range engine.Offsets(next, 0) {
		drawCell(dst, inner, engine.Cell{X: off.X + pad, Y: off.Y + pad}, blockChar, color)
	}

	row := box.Bottom() + 1
	for _, stat := range []struct {
		label string
		value int
	}{
		{"SCORE", g.state.Score},
		{"LINES", g.state.Lines},
		{"PIECES", g.state.Pieces},
	} {
		dst.DrawText(x, row, stat.label)
		dst.DrawTextColored(x, row+1, fmt.Sprintf("%d", stat.value), core.ColorBrightWhite)
		row += 3
	}
}

// renderOverlay draws a framed two-line message in the middle of the screen.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxW := dst.Width() - 4
	line1 = truncate(line1, maxW)
	line2 = truncate(line2, maxW)

	textW := core.Max(len([]rune(line1)), len([]rune(line2)))
	box := core.NewRect((dst.Width()-textW-4)/2, (dst.Height()-5)/2, textW+4, 5)

	inner := box.Inner()
	for y := inner.Y; y < inner.Bottom(); y++ {
		for x := inner.X; x < inner.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, g.theme.Frame)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
