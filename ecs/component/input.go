package component

// Action is the single raw input event consumed by one simulation frame.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionAttackUp
	ActionAttackLeft
	ActionAttackDown
	ActionAttackRight
	ActionQuit
)

// AttackDirection maps an attack action to its direction.
func (a Action) AttackDirection() (Direction, bool) {
	switch a {
	case ActionAttackUp:
		return DirUp, true
	case ActionAttackLeft:
		return DirLeft, true
	case ActionAttackDown:
		return DirDown, true
	case ActionAttackRight:
		return DirRight, true
	}
	return 0, false
}

func (a Action) String() string {
	switch a {
	case ActionMoveLeft:
		return "move_left"
	case ActionMoveRight:
		return "move_right"
	case ActionJump:
		return "jump"
	case ActionAttackUp:
		return "attack_up"
	case ActionAttackLeft:
		return "attack_left"
	case ActionAttackDown:
		return "attack_down"
	case ActionAttackRight:
		return "attack_right"
	case ActionQuit:
		return "quit"
	}
	return "none"
}
