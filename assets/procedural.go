package assets

import (
	"image"
	"image/color"
	"image/draw"
	"math/rand"

	"github.com/milk9111/platformer/common"
	"golang.org/x/image/colornames"
)

// FrameSize is the edge length of one generated character frame.
const FrameSize = 32

// Sheet rows.
const (
	RowStill = iota
	RowWalk
	RowJump
	RowFall
)

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r.Intersect(img.Bounds()), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func shade(c color.NRGBA, f float64) color.NRGBA {
	scale := func(v uint8) uint8 {
		return uint8(common.Clamp(float64(v)*f, 0, 255))
	}
	return color.NRGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

// BlockImage is a solid rectangle with a darker one pixel outline.
func BlockImage(w, h int, c color.NRGBA) *image.RGBA {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(img, img.Bounds(), shade(c, 0.6))
	if w > 2 && h > 2 {
		fill(img, image.Rect(1, 1, w-1, h-1), c)
	}
	return img
}

// BackgroundImage fills the screen with the background colour and scatters
// a seeded star field over it.
func BackgroundImage(w, h int, palette common.Palette, seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(img, img.Bounds(), palette.Background.NRGBA)

	rng := rand.New(rand.NewSource(seed))
	stars := []color.RGBA{colornames.White, colornames.Lightsteelblue, colornames.Lightyellow}
	for i := 0; i < w*h/4000; i++ {
		x, y := rng.Intn(w), rng.Intn(h)
		c := color.NRGBAModel.Convert(stars[rng.Intn(len(stars))]).(color.NRGBA)
		c.A = uint8(96 + rng.Intn(160))
		img.Set(x, y, c)
	}
	return img
}

// CoinImage is a filled disc with a highlight.
func CoinImage(size int, palette common.Palette) *image.RGBA {
	if size < 2 {
		size = 2
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	rim := colornames.Goldenrod
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)+0.5-r, float64(y)+0.5-r
			d := dx*dx + dy*dy
			switch {
			case d <= (r-2)*(r-2):
				img.Set(x, y, palette.Coin.NRGBA)
			case d <= r*r:
				img.Set(x, y, rim)
			}
		}
	}
	hl := size / 4
	fill(img, image.Rect(hl, hl, hl+max(size/8, 1), hl+max(size/4, 1)), colornames.Lightyellow)
	return img
}

// CharacterSheet draws a 4x4 grid of FrameSize frames. Rows follow RowStill,
// RowWalk, RowJump and RowFall.
func CharacterSheet(palette common.Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, FrameSize*SheetGrid, FrameSize*SheetGrid))
	for row := 0; row < SheetGrid; row++ {
		for col := 0; col < SheetGrid; col++ {
			drawFrame(img, image.Pt(col*FrameSize, row*FrameSize), row, col, palette.Player.NRGBA)
		}
	}
	return img
}

func drawFrame(img *image.RGBA, at image.Point, row, col int, body color.NRGBA) {
	rect := func(x0, y0, x1, y1 int) image.Rectangle {
		return image.Rect(at.X+x0, at.Y+y0, at.X+x1, at.Y+y1)
	}
	legs := shade(body, 0.55)

	bob := 0
	legL, legR := 0, 0
	armY := 14
	switch row {
	case RowStill:
		bob = col % 2
	case RowWalk:
		stride := []int{-3, 0, 3, 0}[col]
		legL, legR = stride, -stride
		bob = col % 2
	case RowJump:
		legL, legR = -2, 2
		armY = 8 - col
		bob = -col / 2
	case RowFall:
		legL, legR = 2, -2
		armY = 18
	}

	top := 6 + bob
	fill(img, rect(9, top, 23, top+18), body)
	fill(img, rect(18, top+4, 21, top+7), colornames.White)
	fill(img, rect(19, top+5, 21, top+7), colornames.Black)
	fill(img, rect(6, armY+bob, 9, armY+bob+6), legs)
	fill(img, rect(23, armY+bob, 26, armY+bob+6), legs)
	fill(img, rect(10+legL, top+18, 15+legL, 31), legs)
	fill(img, rect(17+legR, top+18, 22+legR, 31), legs)
}
