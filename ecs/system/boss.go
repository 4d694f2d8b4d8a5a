package system

import (
	"github.com/milk9111/asciiknight/common"
	"github.com/milk9111/asciiknight/ecs"
	"github.com/milk9111/asciiknight/ecs/component"
)

func updateBoss(w *ecs.World, e *component.Enemy, st *component.BossState) {
	tuning := w.Tuning.Boss

	switch st.Phase {
	case component.BossPatrol:
		st.Timer++
		if st.Timer >= tuning.AttackInterval {
			st.Phase = component.BossWindup
			st.Windup = tuning.WindupFrames
			st.Timer = 0
			w.Emit(ecs.EventBossWindup, ecs.EnemyEvent{Kind: component.Boss, X: e.X, Y: e.Y, HP: e.HP})
			return
		}
		patrolBoss(w, e)
	case component.BossWindup:
		st.Windup--
		if st.Windup <= 0 {
			st.Windup = 0
			st.Phase = component.BossStrike
		}
	case component.BossStrike:
		hit := InStrikeRange(w, e)
		w.Emit(ecs.EventBossStrike, ecs.StrikeEvent{X: e.X, Y: e.Y, Range: tuning.AOERange, Hit: hit})
		if hit {
			w.DamagePlayer(component.Boss, tuning.Damage)
		}
		st.Phase = component.BossPatrol
		st.Timer = 0
	}
}

// InStrikeRange reports whether the player stands inside the boss's area
// attack, measured independently on each axis.
func InStrikeRange(w *ecs.World, e *component.Enemy) bool {
	r := w.Tuning.Boss.AOERange
	return common.WithinBox(e.X, e.Y, w.Player.X, w.Player.Y, r)
}

// patrolBoss walks the 3x3 boss one cell, turning back when the footprint
// would enter a solid cell or leave the arena, or when any of its three
// bottom columns would lose floor support.
func patrolBoss(w *ecs.World, e *component.Enemy) {
	a := w.Arena
	next := e.X + e.VelocityX
	if next-1 < 1 || next+1 >= a.Width()-1 {
		e.VelocityX = -e.VelocityX
		return
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if a.IsSolid(next+dx, e.Y+dy) {
				e.VelocityX = -e.VelocityX
				return
			}
		}
	}
	for dx := -1; dx <= 1; dx++ {
		if !a.IsSolid(next+dx, e.Y+2) {
			e.VelocityX = -e.VelocityX
			return
		}
	}
	e.X = next
}
