package system

import (
	"github.com/milk9111/asciiknight/arena"
	"github.com/milk9111/asciiknight/common"
	"github.com/milk9111/asciiknight/ecs"
	"github.com/milk9111/asciiknight/ecs/component"
)

// PlayerPhysicsSystem integrates gravity for the player and sweeps the
// vertical motion one cell at a time so thin platforms are never skipped.
// Rising motion passes through platforms and stops only at walls.
type PlayerPhysicsSystem struct{}

func NewPlayerPhysicsSystem() *PlayerPhysicsSystem {
	return &PlayerPhysicsSystem{}
}

func (s *PlayerPhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	p := &w.Player
	a := w.Arena
	phys := w.Tuning.Physics
	p.VelocityY = common.Clamp(p.VelocityY+phys.Gravity, phys.JumpVelocity, phys.MaxFallSpeed)

	switch {
	case p.VelocityY > 0:
		steps := p.VelocityY
		for i := 0; i < steps; i++ {
			if a.IsSolid(p.X, p.Y+1) {
				p.VelocityY = 0
				p.Grounded = true
				p.CanDoubleJump = false
				break
			}
			p.Y++
			p.Grounded = false
		}
	case p.VelocityY < 0:
		steps := -p.VelocityY
		for i := 0; i < steps; i++ {
			next := p.Y - 1
			if next < 0 || a.IsWall(p.X, next) {
				p.VelocityY = 0
				break
			}
			p.Y = next
			p.Grounded = false
		}
	default:
		if !a.IsSolid(p.X, p.Y+1) {
			p.Grounded = false
		}
	}
}

// EnemyPhysicsSystem runs the same sweep for every active enemy that obeys
// gravity. Each sub-step is tested against the active attack so a swing
// can catch an enemy mid-fall.
type EnemyPhysicsSystem struct{}

func NewEnemyPhysicsSystem() *EnemyPhysicsSystem {
	return &EnemyPhysicsSystem{}
}

func (s *EnemyPhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for i := 0; i < w.Enemies.Len(); i++ {
		e := w.Enemies.At(i)
		if !e.Active || !e.Kind().UsesGravity() {
			continue
		}
		applyEnemyGravity(w, i)
	}
}

func applyEnemyGravity(w *ecs.World, i int) {
	e := w.Enemies.At(i)
	a := w.Arena
	phys := w.Tuning.Physics
	e.VelocityY = common.Clamp(e.VelocityY+phys.Gravity, phys.JumpVelocity, phys.MaxFallSpeed)

	switch {
	case e.VelocityY > 0:
		steps := e.VelocityY
		for s := 0; s < steps; s++ {
			next := e.Y + 1
			if landsAt(a, e, next) {
				e.VelocityY = 0
				e.Grounded = true
				break
			}
			e.Y = next
			e.Grounded = false
			if sweepHit(w, i) {
				break
			}
		}
	case e.VelocityY < 0:
		steps := -e.VelocityY
		for s := 0; s < steps; s++ {
			next := e.Y - 1
			if blockedAt(a, e, next) {
				e.VelocityY = 0
				break
			}
			e.Y = next
			e.Grounded = false
			if sweepHit(w, i) {
				break
			}
		}
	default:
		if !supported(a, e) {
			e.Grounded = false
		}
	}
}

// landsAt reports whether an enemy moving down to row y would overlap
// solid ground. The boss probes all three columns under its footprint.
func landsAt(a *arena.Arena, e *component.Enemy, y int) bool {
	if e.Kind() != component.Boss {
		return a.IsSolid(e.X, y)
	}
	for dx := -1; dx <= 1; dx++ {
		if a.IsSolid(e.X+dx, y+1) {
			return true
		}
	}
	return false
}

// blockedAt reports whether an enemy rising to row y would hit a wall or
// leave the arena. Platforms never block upward motion.
func blockedAt(a *arena.Arena, e *component.Enemy, y int) bool {
	if e.Kind() != component.Boss {
		return y < 0 || a.IsWall(e.X, y)
	}
	top := y - 1
	if top < 0 {
		return true
	}
	for dx := -1; dx <= 1; dx++ {
		if a.IsWall(e.X+dx, top) {
			return true
		}
	}
	return false
}

func supported(a *arena.Arena, e *component.Enemy) bool {
	if e.Kind() != component.Boss {
		return a.IsSolid(e.X, e.Y+1)
	}
	for dx := -1; dx <= 1; dx++ {
		if a.IsSolid(e.X+dx, e.Y+2) {
			return true
		}
	}
	return false
}

// sweepHit applies the active attack to enemy i at its current sub-step
// position. It reports whether the enemy died.
func sweepHit(w *ecs.World, i int) bool {
	e := w.Enemies.At(i)
	if !component.IsHitBy(&w.Attack, e) {
		return false
	}
	w.HitEnemy(i)
	return !e.Active
}
