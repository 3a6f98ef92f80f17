package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/common"
	"golang.org/x/image/font/basicfont"
)

const previewSize = 512

var rowNames = []string{"still", "walk", "jump", "fall"}

type demoGame struct {
	rows    [][]*ebiten.Image
	row     int
	current int
	frame   time.Duration
	last    time.Time
	face    ebtext.Face
}

func (g *demoGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for i, k := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4} {
		if inpututil.IsKeyJustPressed(k) && i < len(g.rows) {
			g.row = i
			g.current = 0
		}
	}

	frames := g.rows[g.row]
	if len(frames) <= 1 {
		return nil
	}
	now := time.Now()
	if now.Sub(g.last) >= g.frame {
		g.last = now
		g.current = (g.current + 1) % len(frames)
	}
	return nil
}

func (g *demoGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	frames := g.rows[g.row]
	if len(frames) == 0 {
		return
	}
	img := frames[g.current]
	fw, fh := img.Bounds().Dx(), img.Bounds().Dy()
	scale := float64(previewSize/2) / float64(max(fw, fh))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((previewSize-float64(fw)*scale)/2, (previewSize-float64(fh)*scale)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)

	label := fmt.Sprintf("row %d (%s) frame %d/%d - keys 1-4 switch rows", g.row, rowNames[g.row], g.current+1, len(frames))
	top := &ebtext.DrawOptions{}
	top.GeoM.Translate(8, 8)
	ebtext.Draw(screen, label, g.face, top)
}

func (g *demoGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize, previewSize
}

// splitSheet cuts a 4x4 sheet into one slice of frames per row.
func splitSheet(img image.Image) ([][]*ebiten.Image, error) {
	fw, fh, err := assets.SheetFrame(img.Bounds())
	if err != nil {
		return nil, err
	}
	sheet := ebiten.NewImageFromImage(img)
	rows := make([][]*ebiten.Image, assets.SheetGrid)
	for row := range rows {
		rows[row] = make([]*ebiten.Image, assets.SheetGrid)
		for col := range rows[row] {
			r := image.Rect(col*fw, row*fh, col*fw+fw, row*fh+fh)
			rows[row][col] = sheet.SubImage(r).(*ebiten.Image)
		}
	}
	return rows, nil
}

func main() {
	sheetPath := flag.String("sheet", "", "character sheet png (procedural sheet when empty)")
	frameMS := flag.Int("frame-ms", common.DefaultConfig().AnimationFrameMS, "milliseconds per frame")
	flag.Parse()

	var img image.Image = assets.CharacterSheet(common.DefaultConfig().Colors)
	if *sheetPath != "" {
		loaded, err := assets.LoadSheet(os.DirFS(filepath.Dir(*sheetPath)), filepath.Base(*sheetPath))
		if err != nil {
			log.Fatal(err)
		}
		img = loaded
	}

	rows, err := splitSheet(img)
	if err != nil {
		log.Fatal(err)
	}

	g := &demoGame{
		rows:  rows,
		frame: time.Duration(*frameMS) * time.Millisecond,
		face:  ebtext.NewGoXFace(basicfont.Face7x13),
	}
	ebiten.SetWindowSize(previewSize, previewSize)
	ebiten.SetWindowTitle("Character Sheet Preview")
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
