package component

// Point is a grid cell.
type Point struct {
	X, Y int
}

// Attack is the player's swing. Only one exists per run; activating a new
// swing overwrites it.
type Attack struct {
	Active          bool
	Direction       Direction
	X, Y            int
	FramesRemaining int
	// Cooldown blocks new swings in StyleCooldown, independent of Active.
	Cooldown int
}

// Cells lists the three cells the swing covers, starting at the anchor.
func (a *Attack) Cells() [3]Point {
	var cells [3]Point
	for i := range cells {
		if a.Direction.Horizontal() {
			cells[i] = Point{X: a.X + i, Y: a.Y}
		} else {
			cells[i] = Point{X: a.X, Y: a.Y + i}
		}
	}
	return cells
}
