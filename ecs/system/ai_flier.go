package system

import (
	"github.com/milk9111/asciiknight/common"
	"github.com/milk9111/asciiknight/ecs"
	"github.com/milk9111/asciiknight/ecs/component"
)

const flierProbeDepth = 3

func updateFlier(w *ecs.World, i int, e *component.Enemy, st *component.FlierState) {
	a := w.Arena
	next := e.X + e.VelocityX

	switch {
	case next < 1 || next >= a.Width()-1:
		e.VelocityX = -e.VelocityX
	case a.IsSolid(next, e.Y) || w.Enemies.OccupiedBy(next, e.Y, i) >= 0:
		dodge(w, e)
	default:
		e.X = next
	}

	st.Timer++
	if st.Timer >= w.Tuning.Enemy.FlierInterval {
		st.Timer = 0
		correctAltitude(w, e)
	}
}

// dodge steps around an obstacle vertically, toward whichever side has
// fewer solid cells within the probe depth. With no room it turns back.
func dodge(w *ecs.World, e *component.Enemy) {
	a := w.Arena
	above, below := 0, 0
	for dy := 1; dy <= flierProbeDepth; dy++ {
		if a.IsSolid(e.X, e.Y-dy) {
			above++
		}
		if a.IsSolid(e.X, e.Y+dy) {
			below++
		}
	}

	if above < below {
		if e.Y > 1 && !a.IsSolid(e.X, e.Y-1) {
			e.Y--
			return
		}
	} else if e.Y < a.Height()-2 && !a.IsSolid(e.X, e.Y+1) {
		e.Y++
		return
	}
	e.VelocityX = -e.VelocityX
}

// correctAltitude moves the flier up to FlierShift cells toward the
// player's row, stopping at the first solid cell.
func correctAltitude(w *ecs.World, e *component.Enemy) {
	a := w.Arena
	step := common.Sign(w.Player.Y - e.Y)
	if step == 0 {
		return
	}
	for n := 0; n < w.Tuning.Enemy.FlierShift; n++ {
		if a.IsSolid(e.X, e.Y+step) {
			return
		}
		e.Y += step
	}
}
