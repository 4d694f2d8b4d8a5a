package system

import (
	"github.com/milk9111/asciiknight/ecs"
	"github.com/milk9111/asciiknight/ecs/component"
)

// CombatSystem resolves the attack against enemies, then enemy contact
// against the player.
type CombatSystem struct{}

func NewCombatSystem() *CombatSystem { return &CombatSystem{} }

func (s *CombatSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ResolveAttackHits(w)
	ResolveContacts(w)
}

// ResolveAttackHits damages the first active enemy, in collection order,
// that the active attack overlaps. The attack ends on that hit, so a swing
// never damages two enemies. Dead enemies are compacted out afterwards.
func ResolveAttackHits(w *ecs.World) {
	if w.Attack.Active {
		for i := 0; i < w.Enemies.Len(); i++ {
			e := w.Enemies.At(i)
			if !e.Active || !component.IsHitBy(&w.Attack, e) {
				continue
			}
			w.HitEnemy(i)
			break
		}
	}
	w.Enemies.RemoveInactive()
}

// ResolveContacts damages the player once for every enemy touching it.
// Regular enemies are destroyed by the contact; the boss survives it.
func ResolveContacts(w *ecs.World) {
	p := &w.Player
	for i := 0; i < w.Enemies.Len(); i++ {
		e := w.Enemies.At(i)
		if !e.Active || !component.Touches(e, p.X, p.Y) {
			continue
		}

		kind := e.Kind()
		w.DamagePlayer(kind, 1)
		if kind == component.Boss {
			continue
		}
		e.Active = false
		w.Emit(ecs.EventEnemyKilled, ecs.EnemyEvent{Kind: kind, X: e.X, Y: e.Y, HP: e.HP})
		w.Enemies.RemoveAt(i)
		i--
	}
}
