package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/ecs/component"
)

// Input polls the keyboard once per tick.
type Input struct {
	left    []ebiten.Key
	right   []ebiten.Key
	jump    []ebiten.Key
	restart []ebiten.Key
	start   []ebiten.Key
}

func NewInput() *Input {
	return &Input{
		left:    []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		right:   []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		jump:    []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
		restart: []ebiten.Key{ebiten.KeyR},
		start:   []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (i *Input) Poll() component.Input {
	moveX := 0.0
	if anyPressed(i.left) {
		moveX -= 1
	}
	if anyPressed(i.right) {
		moveX += 1
	}
	return component.Input{
		MoveX:          moveX,
		JumpPressed:    anyJustPressed(i.jump),
		RestartPressed: anyJustPressed(i.restart),
		StartPressed:   anyJustPressed(i.start),
	}
}

func (i *Input) Quit() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
