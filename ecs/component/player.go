package component

// Player is the single player character.
type Player struct {
	X, Y          int
	HP            int
	MaxHP         int
	VelocityY     int
	Grounded      bool
	CanDoubleJump bool
}

func NewPlayer(x, y, maxHP int) Player {
	return Player{X: x, Y: y, HP: maxHP, MaxHP: maxHP}
}

func (p *Player) Alive() bool {
	return p.HP > 0
}

// Damage lowers HP by amount, never below zero.
func (p *Player) Damage(amount int) {
	p.HP -= amount
	if p.HP < 0 {
		p.HP = 0
	}
}
