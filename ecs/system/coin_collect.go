package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

const coinSound = "coin"

// CoinSpawner creates a coin entity with its top-left corner at (x, y).
type CoinSpawner func(w *ecs.World, x, y float64) (ecs.Entity, error)

// CoinCollectSystem removes coins the player touches and refills the screen
// once every coin is gone.
type CoinCollectSystem struct {
	placer  CoinPlacer
	spawn   CoinSpawner
	area    cp.BB
	size    float64
	respawn int
}

func NewCoinCollectSystem(placer CoinPlacer, spawn CoinSpawner, area cp.BB, size float64, respawn int) *CoinCollectSystem {
	return &CoinCollectSystem{
		placer:  placer,
		spawn:   spawn,
		area:    area,
		size:    size,
		respawn: respawn,
	}
}

func (s *CoinCollectSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	refs, ok := findPlayer(w)
	if !ok {
		return
	}
	round, ok := findRound(w)
	if !ok {
		return
	}
	if ecs.Count(w, component.CoinComponent.Kind()) == 0 {
		return
	}

	collected := 0
	ecs.ForEach2(w, component.CoinComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, coin *component.Coin, t *component.Transform) {
		if !common.Overlaps(refs.bounds(), common.Bounds(t.X, t.Y, coin.Size, coin.Size)) {
			return
		}
		ecs.DestroyEntity(w, e)
		collected++
		round.Score++
		w.Events().Push(ecs.Event{Type: ecs.EventCoinCollected, Data: ecs.CoinCollected{Coin: e, Score: round.Score}})
	})
	if collected == 0 {
		return
	}
	requestSound(w, refs.entity, coinSound)

	if ecs.Count(w, component.CoinComponent.Kind()) == 0 {
		s.replenish(w, round)
	}
}

func (s *CoinCollectSystem) replenish(w *ecs.World, round *component.Round) {
	if s.placer == nil || s.spawn == nil || s.respawn <= 0 {
		return
	}

	positions, err := s.placer.Place(s.respawn, s.area, s.size)
	if err != nil {
		log.Printf("coins: place %d coins: %v", s.respawn, err)
		return
	}
	for _, p := range positions {
		if _, err := s.spawn(w, p.X, p.Y); err != nil {
			log.Printf("coins: spawn at (%.0f, %.0f): %v", p.X, p.Y, err)
		}
	}
	round.Replenished++
	w.Events().Push(ecs.Event{Type: ecs.EventCoinsRespawned, Data: len(positions)})
}
