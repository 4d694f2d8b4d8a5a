package component

// Waves tracks the wave director.
type Waves struct {
	// Current is the wave being fought, or Max+1 once the last is cleared.
	Current    int
	InProgress bool
	// PriorTotal is the size of the previous wave, the base for the next.
	PriorTotal int
	// Intermission counts frames until the next wave spawns.
	Intermission int
	Spawned      int
}

// Outcome is the run state after a frame.
type Outcome uint8

const (
	Running Outcome = iota
	Victory
	Defeat
)

func (o Outcome) String() string {
	switch o {
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	}
	return "running"
}

func (o Outcome) Terminal() bool {
	return o != Running
}
