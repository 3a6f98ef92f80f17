package component

// Oscillation makes a platform translate horizontally and reverse at the
// screen edges.
type Oscillation struct {
	Direction float64 // +1 right, -1 left
	Speed     float64
	// LastDX is the displacement applied during the current tick.
	LastDX float64
}

// Step is the signed displacement for one tick.
func (o *Oscillation) Step() float64 {
	return o.Speed * o.Direction
}

// Platform is a solid box the player can land on. A nil Oscillation means the
// platform is static.
type Platform struct {
	Width       float64
	Height      float64
	Oscillation *Oscillation
}

func (p *Platform) Moving() bool {
	return p.Oscillation != nil
}

var PlatformComponent = NewComponent[Platform]()
