package component

// Audio lists the named sounds an entity can trigger. Systems set Play[i] and
// the audio system clears it once the sound has been started.
type Audio struct {
	Names  []string
	Volume []float64
	Play   []bool
}

// Request flags the named sound for playback. Unknown names are ignored.
func (a *Audio) Request(name string) bool {
	for i, n := range a.Names {
		if n != name {
			continue
		}
		if i < len(a.Play) {
			a.Play[i] = true
			return true
		}
		return false
	}
	return false
}

var AudioComponent = NewComponent[Audio]()
