package component

// Round is the singleton scoreboard of the current round.
type Round struct {
	Score  int
	Frames int
	Lost   bool
	Won    bool
	// Replenished counts how many times the coin set was refilled.
	Replenished int
}

// Over reports whether the round has ended.
func (r *Round) Over() bool {
	return r.Lost || r.Won
}

var RoundComponent = NewComponent[Round]()
