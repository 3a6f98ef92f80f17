package component

// Player holds movement tuning and per-round jump bookkeeping.
type Player struct {
	MoveSpeed    float64
	JumpStrength float64
	MaxJumps     int

	JumpsLeft  int
	OnGround   bool
	FacingLeft bool
	// Jumped is set for the tick in which a jump impulse was applied.
	Jumped bool
}

// Land marks ground contact and restores the jump budget.
func (p *Player) Land() {
	p.OnGround = true
	p.JumpsLeft = p.MaxJumps
}

var PlayerComponent = NewComponent[Player]()
