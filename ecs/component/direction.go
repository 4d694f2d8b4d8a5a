package component

// Direction is one of the four attack directions.
type Direction uint8

const (
	DirUp Direction = iota
	DirLeft
	DirDown
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	case DirRight:
		return "right"
	}
	return "unknown"
}

// Anchor returns the first attack cell for a player standing at (x, y).
func (d Direction) Anchor(x, y int) (int, int) {
	switch d {
	case DirUp:
		return x - 1, y - 2
	case DirLeft:
		return x - 2, y - 1
	case DirDown:
		return x - 1, y + 1
	default:
		return x + 1, y - 1
	}
}

// Horizontal reports whether the hitbox runs along a row (up/down swings).
func (d Direction) Horizontal() bool {
	return d == DirUp || d == DirDown
}

// Glyphs are the slash characters drawn over the three attack cells.
func (d Direction) Glyphs() [3]rune {
	switch d {
	case DirUp:
		return [3]rune{'/', '-', '\\'}
	case DirLeft:
		return [3]rune{'/', '|', '\\'}
	case DirDown:
		return [3]rune{'\\', '_', '/'}
	default:
		return [3]rune{'\\', '|', '/'}
	}
}
