package system

import (
	"github.com/milk9111/asciiknight/ecs"
	"github.com/milk9111/asciiknight/ecs/component"
)

// AttackSystem counts down the active swing and, in the cooldown style, the
// swing cooldown.
type AttackSystem struct{}

func NewAttackSystem() *AttackSystem {
	return &AttackSystem{}
}

func (s *AttackSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	a := &w.Attack
	if a.Active {
		a.FramesRemaining--
		if a.FramesRemaining <= 0 {
			a.FramesRemaining = 0
			a.Active = false
		}
	}
	if w.Style == component.StyleCooldown && a.Cooldown > 0 {
		a.Cooldown--
	}
}

// ActivateAttack starts a swing in dir anchored on the player's current
// cell. In the cooldown style it is refused while a swing is running or
// the cooldown has not expired; in the spam style it always replaces the
// current swing.
func ActivateAttack(w *ecs.World, dir component.Direction) bool {
	a := &w.Attack
	c := w.Tuning.Combat

	var duration, cooldown int
	switch w.Style {
	case component.StyleSpam:
		duration = c.ShortDurationFrames
	default:
		if a.Active || a.Cooldown > 0 {
			return false
		}
		duration = c.LongDurationFrames
		cooldown = c.CooldownFrames
	}

	x, y := dir.Anchor(w.Player.X, w.Player.Y)
	*a = component.Attack{
		Active:          true,
		Direction:       dir,
		X:               x,
		Y:               y,
		FramesRemaining: duration,
		Cooldown:        cooldown,
	}
	w.Emit(ecs.EventAttack, dir)
	return true
}
