package system

import (
	"github.com/milk9111/asciiknight/ecs"
	"github.com/milk9111/asciiknight/ecs/component"
)

// PlayerControllerSystem applies the frame's input action to the player.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	p := &w.Player
	switch w.Input {
	case component.ActionNone:
	case component.ActionQuit:
		p.HP = 0
		w.Emit(ecs.EventQuit, nil)
	case component.ActionMoveLeft:
		if p.X > 1 {
			p.X--
		}
	case component.ActionMoveRight:
		if p.X < w.Arena.Width()-2 {
			p.X++
		}
	case component.ActionJump:
		Jump(w)
	default:
		if dir, ok := w.Input.AttackDirection(); ok {
			ActivateAttack(w, dir)
		}
	}
}

// Jump launches the player from the ground, or once more in mid-air after
// a grounded jump. It reports whether a jump happened.
func Jump(w *ecs.World) bool {
	p := &w.Player
	switch {
	case p.Grounded:
		p.Grounded = false
		p.CanDoubleJump = true
	case p.CanDoubleJump:
		p.CanDoubleJump = false
	default:
		return false
	}
	p.VelocityY = w.Tuning.Physics.JumpVelocity
	w.Emit(ecs.EventJump, nil)
	return true
}
