package system

import "github.com/milk9111/platformer/ecs"

// RoundSystem counts simulated ticks and checks the win condition.
type RoundSystem struct {
	winScore int
}

func NewRoundSystem(winScore int) *RoundSystem {
	return &RoundSystem{winScore: winScore}
}

func (r *RoundSystem) Update(w *ecs.World) {
	if r == nil || w == nil {
		return
	}
	round, ok := findRound(w)
	if !ok {
		return
	}
	round.Frames++
	if r.winScore > 0 && !round.Lost && round.Score >= r.winScore {
		round.Won = true
	}
}
