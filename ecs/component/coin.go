package component

// Coin is collected on contact with the player.
type Coin struct {
	Size float64
}

var CoinComponent = NewComponent[Coin]()
