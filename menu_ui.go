package main

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/platformer/session"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// menuState carries button clicks into the next session step and keeps the
// panel labels in line with the session phase.
type menuState struct {
	title    *widget.Text
	subtitle *widget.Text

	phase   session.Phase
	score   int
	start   bool
	restart bool
}

func (m *menuState) takeStart() bool {
	v := m.start
	m.start = false
	return v
}

func (m *menuState) takeRestart() bool {
	v := m.restart
	m.restart = false
	return v
}

func (m *menuState) sync(s *session.Session) {
	phase, score := s.Phase(), s.Score()
	if phase == m.phase && score == m.score {
		return
	}
	m.phase, m.score = phase, score

	switch phase {
	case session.PhaseMenu:
		m.title.Label = s.Config().Title
		m.subtitle.Label = "Press Enter to start"
	case session.PhaseLost:
		m.title.Label = "Game Over"
		m.subtitle.Label = fmt.Sprintf("Score: %d - press R to restart", score)
	case session.PhaseWon:
		m.title.Label = "You Win!"
		m.subtitle.Label = fmt.Sprintf("Score: %d - press R to play again", score)
	}
}

// NewMenuUI builds the centered panel shown at the start menu and when a
// round ends.
func NewMenuUI(g *Game) (*ebitenui.UI, *menuState) {
	state := &menuState{phase: -1}

	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	var small ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	var large ebtext.Face = small
	if src, err := ebtext.NewGoTextFaceSource(bytes.NewReader(goregular.TTF)); err != nil {
		log.Printf("menu: load font: %v", err)
	} else {
		large = &ebtext.GoTextFace{Source: src, Size: g.cfg.FontSize}
	}

	fontColor := g.cfg.Colors.Font.NRGBA
	btnTextColor := &widget.ButtonTextColor{Idle: fontColor}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	state.title = widget.NewText(
		widget.TextOpts.Text(g.cfg.Title, &large, fontColor),
		widget.TextOpts.WidgetOpts(center),
	)
	state.subtitle = widget.NewText(
		widget.TextOpts.Text("", &small, fontColor),
		widget.TextOpts.WidgetOpts(center),
	)

	playBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnImg}),
		widget.ButtonOpts.Text("Play", &small, btnTextColor),
		widget.ButtonOpts.WidgetOpts(center, widget.WidgetOpts.MinSize(120, 32)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if g.session.Phase() == session.PhaseMenu {
				state.start = true
				return
			}
			state.restart = true
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(14),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 36, Right: 36}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(g.cfg.ScreenWidth/2, g.cfg.ScreenHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(state.title)
	panel.AddChild(state.subtitle)
	panel.AddChild(playBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	state.sync(g.session)
	return &ebitenui.UI{Container: root}, state
}
