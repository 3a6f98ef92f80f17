// Package session owns one round of play: the world, the per-tick system
// order and the menu / lost / won flow around it.
package session

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/levels"
)

type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseLost
	PhaseWon
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseLost:
		return "lost"
	case PhaseWon:
		return "won"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

type Option func(*Session)

// WithArt draws the round with art. Without it the world has no images.
func WithArt(art *assets.Art) Option {
	return func(s *Session) { s.art = art }
}

// WithSound routes requested sounds to player.
func WithSound(player system.SoundPlayer) Option {
	return func(s *Session) { s.sound = player }
}

// WithAnimationClock replaces the wall clock used by the animation gate.
func WithAnimationClock(now func() time.Time) Option {
	return func(s *Session) { s.clock = now }
}

// WithDebug logs every world event.
func WithDebug(debug bool) Option {
	return func(s *Session) { s.debug = debug }
}

type Session struct {
	cfg     common.Config
	pending *common.Config
	level   *levels.Level

	art   *assets.Art
	sound system.SoundPlayer
	clock func() time.Time
	debug bool

	world     *ecs.World
	scheduler *ecs.Scheduler
	input     component.Input
	player    ecs.Entity
	rng       *rand.Rand
	phase     Phase
	restarts  int
}

// New builds the first round. It starts at the menu when cfg.ShowMenu is set.
func New(cfg common.Config, lvl *levels.Level, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if lvl == nil {
		return nil, fmt.Errorf("session: level is required")
	}
	s := &Session{cfg: cfg, level: lvl, rng: rand.New(rand.NewSource(cfg.Seed))}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.build(); err != nil {
		return nil, err
	}
	s.phase = PhasePlaying
	if cfg.ShowMenu {
		s.phase = PhaseMenu
	}
	return s, nil
}

func (s *Session) build() error {
	w := ecs.NewWorld()
	player, err := entity.LoadLevelToWorld(w, s.level, s.cfg, s.art)
	if err != nil {
		return fmt.Errorf("session: build world: %w", err)
	}
	s.world = w
	s.player = player
	s.scheduler = s.newScheduler()
	return nil
}

func (s *Session) newScheduler() *ecs.Scheduler {
	cfg := s.cfg

	var placer system.CoinPlacer = system.NewUniformPlacer(s.rng)
	if cfg.CoinScript != "" {
		if scripted, err := system.NewScriptPlacer(cfg.CoinScript, s.rng); err != nil {
			log.Printf("session: coin script disabled: %v", err)
		} else {
			placer = system.WithFallback(scripted, placer, func(err error) {
				log.Printf("session: coin script failed, using uniform placement: %v", err)
			})
		}
	}

	sched := ecs.NewScheduler(
		system.NewInputSystem(system.InputFunc(func() component.Input { return s.input })),
		system.NewPlayerControllerSystem(),
		system.NewPhysicsSystem(cfg),
		system.NewPlatformMotionSystem(cfg.ScreenWidth),
		system.NewPlatformCollisionSystem(),
		system.NewHazardSystem(),
		system.NewCoinCollectSystem(placer, entity.CoinSpawner(cfg, s.art), entity.CoinArea(s.level, cfg), cfg.CoinSize, cfg.CoinRespawnCount),
		system.NewRoundSystem(cfg.WinScore),
		system.NewPlayerStateSystem(),
	)
	if cfg.Animation {
		anim := system.NewAnimationSystem(cfg.FrameDuration())
		if s.clock != nil {
			anim.SetClock(s.clock)
		}
		sched.Add(anim)
	}
	if cfg.Sound && s.sound != nil {
		sched.Add(system.NewAudioSystem(s.sound))
	}
	return sched
}

// Step advances the session by one tick with the frame's input.
func (s *Session) Step(in component.Input) {
	if s == nil {
		return
	}

	switch s.phase {
	case PhaseMenu:
		if in.StartPressed {
			s.phase = PhasePlaying
		}
		return
	case PhaseLost, PhaseWon:
		if in.RestartPressed {
			if err := s.Restart(); err != nil {
				log.Printf("session: restart: %v", err)
			}
		}
		return
	}

	s.input = in
	s.scheduler.Update(s.world)
	s.drainEvents()

	round, ok := s.Round()
	if !ok {
		return
	}
	switch {
	case round.Lost && s.cfg.RestartMode == common.RestartImmediate:
		if err := s.Restart(); err != nil {
			log.Printf("session: restart: %v", err)
		}
	case round.Lost:
		s.phase = PhaseLost
	case round.Won:
		s.phase = PhaseWon
	}
}

func (s *Session) drainEvents() {
	events := s.world.Events().Drain()
	if !s.debug {
		return
	}
	for _, evt := range events {
		log.Printf("session: event %s %+v", evt.Type, evt.Data)
	}
}

// Restart rebuilds every entity from the level, applying a staged config.
// The session resumes in the playing phase.
func (s *Session) Restart() error {
	if s.pending != nil {
		s.cfg = *s.pending
		s.pending = nil
	}
	if err := s.build(); err != nil {
		return err
	}
	s.restarts++
	s.phase = PhasePlaying
	return nil
}

// SetConfig stages cfg for the next restart.
func (s *Session) SetConfig(cfg common.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.pending = &cfg
	return nil
}

func (s *Session) Phase() Phase          { return s.phase }
func (s *Session) Config() common.Config { return s.cfg }
func (s *Session) World() *ecs.World     { return s.world }
func (s *Session) Player() ecs.Entity    { return s.player }
func (s *Session) Restarts() int         { return s.restarts }

func (s *Session) Round() (*component.Round, bool) {
	e, ok := ecs.First(s.world, component.RoundComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(s.world, e, component.RoundComponent.Kind())
}

// Score is the value shown on the HUD for the configured score mode.
func (s *Session) Score() int {
	round, ok := s.Round()
	if !ok {
		return 0
	}
	if s.cfg.ScoreMode == common.ScoreTicks {
		return round.Frames
	}
	return round.Score
}
