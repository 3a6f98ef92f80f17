package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

var ErrMissingAsset = errors.New("assets: missing asset")

const (
	BackgroundFile = "background.png"
	CharacterFile  = "character.png"
	CoinFile       = "coin.png"
	CoinSoundFile  = "coin.wav"
	JumpSoundFile  = "jump.wav"
)

// SheetGrid is the number of rows and columns of the character sheet.
const SheetGrid = 4

// LoadFile reads an asset by asset-relative path.
func LoadFile(fsys fs.FS, path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	b, err := fs.ReadFile(fsys, clean)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingAsset, clean)
	}
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", clean, err)
	}
	return b, nil
}

// LoadImage reads and decodes an image.
func LoadImage(fsys fs.FS, path string) (image.Image, error) {
	b, err := LoadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

// LoadSheet reads a character sheet and checks it splits into a 4x4 grid.
func LoadSheet(fsys fs.FS, path string) (image.Image, error) {
	img, err := LoadImage(fsys, path)
	if err != nil {
		return nil, err
	}
	if _, _, err := SheetFrame(img.Bounds()); err != nil {
		return nil, fmt.Errorf("assets: %s: %w", path, err)
	}
	return img, nil
}

// LoadPCM decodes a WAV file to 16-bit little-endian stereo PCM at rate.
func LoadPCM(fsys fs.FS, path string, rate int) ([]byte, error) {
	b, err := LoadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(strings.ToLower(path), ".wav") {
		return nil, fmt.Errorf("assets: %s: unsupported audio format", path)
	}
	stream, err := wav.DecodeWithSampleRate(rate, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode wav %q: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("assets: read wav %q: %w", path, err)
	}
	return pcm, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if filepath.IsAbs(path) {
		return filepath.Base(path)
	}
	return strings.TrimPrefix(s, "assets/")
}
