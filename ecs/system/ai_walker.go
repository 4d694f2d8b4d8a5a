package system

import (
	"github.com/milk9111/asciiknight/common"
	"github.com/milk9111/asciiknight/ecs"
	"github.com/milk9111/asciiknight/ecs/component"
)

// withinRange reports whether the player is strictly closer than r on
// both axes.
func withinRange(w *ecs.World, e *component.Enemy, r int) bool {
	p := &w.Player
	return common.Abs(p.X-e.X) < r && common.Abs(p.Y-e.Y) < r
}

func updateWalker(w *ecs.World, e *component.Enemy) {
	chase(w, e)
	patrol(w, e)
}

func updateJumper(w *ecs.World, e *component.Enemy) {
	if e.Grounded && withinRange(w, e, w.Tuning.Enemy.JumpRange) {
		e.VelocityY = w.Tuning.Physics.JumpVelocity
		e.Grounded = false
	}
	chase(w, e)
	patrol(w, e)
}

// chase turns the enemy toward the player when it is inside the chase
// radius. Directly above or below leaves the direction unchanged.
func chase(w *ecs.World, e *component.Enemy) {
	if !withinRange(w, e, w.Tuning.Enemy.ChaseRange) {
		return
	}
	if dir := common.Sign(w.Player.X - e.X); dir != 0 {
		e.VelocityX = dir
	}
}

// patrol steps one cell ahead, reversing at walls, the arena edge and
// ledges.
func patrol(w *ecs.World, e *component.Enemy) {
	a := w.Arena
	next := e.X + e.VelocityX
	if next < 1 || next >= a.Width()-1 || a.IsSolid(next, e.Y) || !a.IsSolid(next, e.Y+1) {
		e.VelocityX = -e.VelocityX
		return
	}
	e.X = next
}
