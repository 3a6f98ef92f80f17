package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/platformer/ecs/component"
)

// Terminals report key repeats rather than key state, so a direction counts
// as held for holdWindow after its last event.
const holdWindow = 150 * time.Millisecond

type keyState struct {
	leftAt  time.Time
	rightAt time.Time
	jump    bool
	restart bool
	start   bool
	quit    bool
}

func (k *keyState) handle(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.quit = true
	case tcell.KeyLeft:
		k.leftAt, k.rightAt = now, time.Time{}
	case tcell.KeyRight:
		k.rightAt, k.leftAt = now, time.Time{}
	case tcell.KeyUp:
		k.jump = true
	case tcell.KeyEnter:
		k.start = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			k.leftAt, k.rightAt = now, time.Time{}
		case 'd', 'D':
			k.rightAt, k.leftAt = now, time.Time{}
		case ' ', 'w', 'W':
			k.jump = true
		case 'r', 'R':
			k.restart = true
		case 'q', 'Q':
			k.quit = true
		}
	}
}

// input returns the frame's input and clears the edge-triggered keys.
func (k *keyState) input(now time.Time) component.Input {
	in := component.Input{
		JumpPressed:    k.jump,
		RestartPressed: k.restart,
		StartPressed:   k.start,
	}
	if !k.leftAt.IsZero() && now.Sub(k.leftAt) < holdWindow {
		in.MoveX -= 1
	}
	if !k.rightAt.IsZero() && now.Sub(k.rightAt) < holdWindow {
		in.MoveX += 1
	}
	k.jump, k.restart, k.start = false, false, false
	return in
}
