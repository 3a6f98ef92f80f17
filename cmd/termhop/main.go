// Command termhop plays the platformer in a terminal.
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/session"
)

func main() {
	if err := common.LoadEnv(); err != nil {
		log.Fatalf("load .env: %v", err)
	}
	seed, err := common.EnvInt64(common.EnvSeed, 0)
	if err != nil {
		log.Fatalf("environment: %v", err)
	}

	configPath := flag.String("config", common.EnvString(common.EnvConfig, ""), "YAML or TOML config file (embedded game.yaml when empty)")
	assetDir := flag.String("assets", common.EnvString(common.EnvAssets, ""), "directory with coin.wav and jump.wav")
	seedFlag := flag.Int64("seed", seed, "seed for coin placement")
	levelName := flag.String("level", "", "level file in levels/ (overrides the config)")
	mute := flag.Bool("mute", false, "disable sound")
	logFile := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	cfg, err := prefabs.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *assetDir != "" {
		cfg.AssetDir = *assetDir
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *levelName != "" {
		cfg.Level = *levelName
	}
	// Cells carry no sprites.
	cfg.Animation = false
	if *mute {
		cfg.Sound = false
	}

	lvl, err := levels.LoadLevelFromFS(cfg.Level)
	if err != nil {
		log.Fatalf("load level %s: %v", cfg.Level, err)
	}

	var opts []session.Option
	var sounds *speakerBank
	if cfg.Sound {
		sounds, err = newSpeakerBank(cfg.AssetDir, cfg.Volume)
		switch {
		case err == nil:
			defer sounds.Close()
			opts = append(opts, session.WithSound(sounds))
		case cfg.AssetDir != "":
			log.Fatalf("sound: %v", err)
		default:
			log.Printf("sound disabled: %v", err)
		}
	}

	s, err := session.New(cfg, lvl, opts...)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()

	// The screen owns stderr from here on.
	log.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err == nil {
			defer f.Close()
			log.SetOutput(f)
		}
	}

	run(screen, s, cfg.TPS)
}

func run(screen tcell.Screen, s *session.Session, tps int) {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(max(tps, 1)))
	defer ticker.Stop()

	var keys keyState
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				keys.handle(ev, time.Now())
				if keys.quit {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			s.Step(keys.input(now))
			drawSession(screen, s)
		}
	}
}
