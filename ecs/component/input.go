package component

// Input stores the frame's input state. Pressed fields are key-down edges.
type Input struct {
	MoveX          float64
	JumpPressed    bool
	RestartPressed bool
	StartPressed   bool
}

var InputComponent = NewComponent[Input]()
