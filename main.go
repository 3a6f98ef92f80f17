package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
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
	assetDir := flag.String("assets", common.EnvString(common.EnvAssets, ""), "directory with background.png, character.png, coin.png, coin.wav and jump.wav")
	seedFlag := flag.Int64("seed", seed, "seed for coin placement and background stars")
	levelName := flag.String("level", "", "level file in levels/ (overrides the config)")
	watch := flag.Bool("watch", false, "reload the config file on change; applied on restart")
	debug := flag.Bool("debug", false, "log world events")
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

	lvl, err := levels.LoadLevelFromFS(cfg.Level)
	if err != nil {
		log.Fatalf("load level %s: %v", cfg.Level, err)
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TPS)

	game, err := NewGame(cfg, lvl, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if *watch {
		if err := game.WatchConfig(*configPath); err != nil {
			log.Printf("config watch disabled: %v", err)
		}
	}

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
