package component

import "github.com/jakecoffman/cp"

// Boxes are closed integer ranges stored in cp.BB, so Intersects and
// ContainsVect give exact cell overlap on the grid.

func cellBox(x, y int) cp.BB {
	fx, fy := float64(x), float64(y)
	return cp.BB{L: fx, B: fy, R: fx, T: fy}
}

// SquareBox covers the cells within r of (x, y) on both axes.
func SquareBox(x, y, r int) cp.BB {
	fx, fy, fr := float64(x), float64(y), float64(r)
	return cp.BB{L: fx - fr, B: fy - fr, R: fx + fr, T: fy + fr}
}

// EnemyBox is the enemy's hitbox: one cell, or 3x3 centred on the boss.
func EnemyBox(e *Enemy) cp.BB {
	if e.Kind() == Boss {
		return SquareBox(e.X, e.Y, 1)
	}
	return cellBox(e.X, e.Y)
}

// IsHitBy reports whether any active attack cell overlaps the enemy.
func IsHitBy(a *Attack, e *Enemy) bool {
	if a == nil || !a.Active {
		return false
	}
	box := EnemyBox(e)
	for _, c := range a.Cells() {
		if box.Intersects(cellBox(c.X, c.Y)) {
			return true
		}
	}
	return false
}

// Touches reports whether the cell (x, y) lies inside the enemy's hitbox.
func Touches(e *Enemy, x, y int) bool {
	return EnemyBox(e).ContainsVect(cp.Vector{X: float64(x), Y: float64(y)})
}
