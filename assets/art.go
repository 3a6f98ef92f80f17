package assets

import (
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/common"
)

// Art holds every image a round is drawn with.
type Art struct {
	Background *ebiten.Image
	Character  *ebiten.Image
	Coin       *ebiten.Image

	blocks map[blockKey]*ebiten.Image
}

type blockKey struct {
	w, h int
	c    color.NRGBA
}

// Block returns a cached solid block image. A nil Art returns nil so headless
// worlds can be built without a graphics context.
func (a *Art) Block(w, h int, c color.NRGBA) *ebiten.Image {
	if a == nil {
		return nil
	}
	key := blockKey{w: w, h: h, c: c}
	if img, ok := a.blocks[key]; ok {
		return img
	}
	if a.blocks == nil {
		a.blocks = make(map[blockKey]*ebiten.Image)
	}
	img := ebiten.NewImageFromImage(BlockImage(w, h, c))
	a.blocks[key] = img
	return img
}

// LoadArt loads art from cfg.AssetDir, or generates it when no directory is
// configured.
func LoadArt(cfg common.Config) (*Art, error) {
	if cfg.AssetDir == "" {
		return ProceduralArt(cfg), nil
	}
	return LoadArtFS(os.DirFS(cfg.AssetDir))
}

// LoadArtFS loads the background, character sheet and coin images. Any missing
// file is an error.
func LoadArtFS(fsys fs.FS) (*Art, error) {
	bg, err := LoadImage(fsys, BackgroundFile)
	if err != nil {
		return nil, err
	}
	sheet, err := LoadSheet(fsys, CharacterFile)
	if err != nil {
		return nil, err
	}
	coin, err := LoadImage(fsys, CoinFile)
	if err != nil {
		return nil, err
	}
	return &Art{
		Background: ebiten.NewImageFromImage(bg),
		Character:  ebiten.NewImageFromImage(sheet),
		Coin:       ebiten.NewImageFromImage(coin),
	}, nil
}

func ProceduralArt(cfg common.Config) *Art {
	return &Art{
		Background: ebiten.NewImageFromImage(BackgroundImage(cfg.ScreenWidth, cfg.ScreenHeight, cfg.Colors, cfg.Seed)),
		Character:  ebiten.NewImageFromImage(CharacterSheet(cfg.Colors)),
		Coin:       ebiten.NewImageFromImage(CoinImage(int(cfg.CoinSize), cfg.Colors)),
	}
}

// SheetFrame returns the frame size of a 4x4 character sheet with bounds b.
func SheetFrame(b image.Rectangle) (int, int, error) {
	if b.Dx() == 0 || b.Dy() == 0 || b.Dx()%SheetGrid != 0 || b.Dy()%SheetGrid != 0 {
		return 0, 0, fmt.Errorf("assets: sheet %dx%d is not a %dx%d grid", b.Dx(), b.Dy(), SheetGrid, SheetGrid)
	}
	return b.Dx() / SheetGrid, b.Dy() / SheetGrid, nil
}
