package system

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

const hudMargin = 10

// HUDSystem draws the score in the top-left corner.
type HUDSystem struct {
	face  *text.GoTextFace
	color color.Color
	mode  string
}

func NewHUDSystem(cfg common.Config) *HUDSystem {
	h := &HUDSystem{color: cfg.Colors.Font.NRGBA, mode: cfg.ScoreMode}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("hud: load font: %v", err)
		return h
	}
	h.face = &text.GoTextFace{Source: src, Size: cfg.FontSize}
	return h
}

// ScoreText formats the HUD line for the round.
func ScoreText(w *ecs.World, mode string) string {
	round, ok := findRound(w)
	if !ok {
		return "Score: 0"
	}
	if mode == common.ScoreTicks {
		return fmt.Sprintf("Score: %d", round.Frames)
	}
	return fmt.Sprintf("Score: %d", round.Score)
}

func (h *HUDSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if h == nil || h.face == nil || w == nil || screen == nil {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(hudMargin, hudMargin)
	op.ColorScale.ScaleWithColor(h.color)
	text.Draw(screen, ScoreText(w, h.mode), h.face, op)
}
