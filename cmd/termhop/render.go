package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/session"
)

// viewport maps screen pixels onto terminal cells, leaving the top row for
// the HUD.
type viewport struct {
	cols, rows int
	width      float64
	height     float64
}

func (v viewport) cell(x, y float64) (int, int) {
	cx := int(x / v.width * float64(v.cols))
	cy := 1 + int(y/v.height*float64(v.rows-1))
	return cx, cy
}

// span returns the cells covered by a box, always at least one cell.
func (v viewport) span(x, y, w, h float64) (x0, y0, x1, y1 int) {
	x0, y0 = v.cell(x, y)
	x1, y1 = v.cell(x+w, y+h)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

func styleFor(c common.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func fillBox(screen tcell.Screen, v viewport, x, y, w, h float64, r rune, style tcell.Style) {
	x0, y0, x1, y1 := v.span(x, y, w, h)
	for cy := max(y0, 1); cy < min(y1, v.rows); cy++ {
		for cx := max(x0, 0); cx < min(x1, v.cols); cx++ {
			screen.SetContent(cx, cy, r, nil, style)
		}
	}
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func drawSession(screen tcell.Screen, s *session.Session) {
	cfg := s.Config()
	cols, rows := screen.Size()
	v := viewport{cols: cols, rows: rows, width: float64(cfg.ScreenWidth), height: float64(cfg.ScreenHeight)}
	w := s.World()
	pal := cfg.Colors

	screen.Clear()

	ecs.ForEach2(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Platform, t *component.Transform) {
		style := styleFor(pal.Platform)
		if p.Moving() {
			style = styleFor(pal.MovingPlatform)
		}
		fillBox(screen, v, t.X, t.Y, p.Width, p.Height, '▀', style)
	})
	ecs.ForEach2(w, component.HazardComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, h *component.Hazard, t *component.Transform) {
		fillBox(screen, v, t.X, t.Y, h.Width, h.Height, '^', styleFor(pal.Hazard))
	})
	ecs.ForEach2(w, component.CoinComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, c *component.Coin, t *component.Transform) {
		x, y := v.cell(t.X+c.Size/2, t.Y+c.Size/2)
		screen.SetContent(x, max(y, 1), 'o', nil, styleFor(pal.Coin))
	})
	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(), func(_ ecs.Entity, p *component.Player, t *component.Transform, b *component.Body) {
		r := '█'
		if !p.OnGround {
			r = '▓'
		}
		fillBox(screen, v, t.X, t.Y, b.Width, b.Height, r, styleFor(pal.Player))
	})

	font := styleFor(pal.Font)
	drawText(screen, 0, 0, fmt.Sprintf("Score: %d", s.Score()), font)
	switch s.Phase() {
	case session.PhaseMenu:
		drawCentered(screen, cols, rows, cfg.Title, "Press Enter to start", font)
	case session.PhaseLost:
		drawCentered(screen, cols, rows, "Game Over", "Press R to restart", font)
	case session.PhaseWon:
		drawCentered(screen, cols, rows, "You Win!", "Press R to play again", font)
	}
	screen.Show()
}

func drawCentered(screen tcell.Screen, cols, rows int, title, hint string, style tcell.Style) {
	y := rows / 2
	drawText(screen, (cols-len([]rune(title)))/2, y-1, title, style.Bold(true))
	drawText(screen, (cols-len([]rune(hint)))/2, y+1, hint, style)
}
