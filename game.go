package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/session"
)

type Game struct {
	cfg     common.Config
	session *session.Session
	input   *Input
	sounds  *assets.SoundBank
	reload  *configReloader

	render *system.RenderSystem
	hud    *system.HUDSystem

	menu      *ebitenui.UI
	menuState *menuState
}

// NewGame loads art and sounds and builds the first round. Missing
// configured assets are reported as errors.
func NewGame(cfg common.Config, lvl *levels.Level, debug bool) (*Game, error) {
	art, err := assets.LoadArt(cfg)
	if err != nil {
		return nil, fmt.Errorf("load art: %w", err)
	}

	opts := []session.Option{session.WithArt(art), session.WithDebug(debug)}
	var sounds *assets.SoundBank
	if cfg.Sound {
		clips, err := assets.LoadClips(cfg, assets.SampleRate)
		if err != nil {
			return nil, fmt.Errorf("load sounds: %w", err)
		}
		sounds = assets.NewSoundBank(clips, cfg.Volume)
		opts = append(opts, session.WithSound(sounds))
	}

	s, err := session.New(cfg, lvl, opts...)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		session: s,
		input:   NewInput(),
		sounds:  sounds,
		render:  system.NewRenderSystem(),
		hud:     system.NewHUDSystem(cfg),
	}
	g.menu, g.menuState = NewMenuUI(g)
	return g, nil
}

// WatchConfig stages config file edits for the next restart.
func (g *Game) WatchConfig(path string) error {
	if path == "" {
		path = prefabs.DefaultConfigFile
	}
	r, err := newConfigReloader(path)
	if err != nil {
		return err
	}
	g.reload = r
	return nil
}

func (g *Game) Close() {
	if g.reload != nil {
		g.reload.Close()
	}
	g.sounds.Close()
}

func (g *Game) Update() error {
	if g.input.Quit() {
		return ebiten.Termination
	}
	if g.reload != nil {
		if cfg, ok := g.reload.Poll(); ok {
			if err := g.session.SetConfig(cfg); err != nil {
				logReload(err)
			}
		}
	}

	if g.session.Phase() != session.PhasePlaying {
		g.menu.Update()
	}

	in := g.input.Poll()
	in.StartPressed = in.StartPressed || g.menuState.takeStart()
	in.RestartPressed = in.RestartPressed || g.menuState.takeRestart()
	g.session.Step(in)
	g.menuState.sync(g.session)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Colors.Background.NRGBA)
	g.render.Draw(g.session.World(), screen)
	g.hud.Draw(g.session.World(), screen)

	if g.session.Phase() != session.PhasePlaying {
		g.menu.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}
