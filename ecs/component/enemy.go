package component

// EnemyKind names the five enemy behaviours.
type EnemyKind uint8

const (
	Walker EnemyKind = iota
	Jumper
	Flier
	Crawler
	Boss
)

// RegularKinds are the kinds drawn for intermediate waves.
var RegularKinds = [...]EnemyKind{Walker, Jumper, Flier, Crawler}

func (k EnemyKind) String() string {
	switch k {
	case Walker:
		return "walker"
	case Jumper:
		return "jumper"
	case Flier:
		return "flier"
	case Crawler:
		return "crawler"
	case Boss:
		return "boss"
	}
	return "unknown"
}

// Glyph is the character a text renderer draws for the kind.
func (k EnemyKind) Glyph() rune {
	switch k {
	case Walker:
		return 'E'
	case Jumper:
		return 'J'
	case Flier:
		return 'F'
	case Crawler:
		return 'C'
	case Boss:
		return 'B'
	}
	return '?'
}

// ParseEnemyKind maps a kind name back to its value.
func ParseEnemyKind(s string) (EnemyKind, bool) {
	for _, k := range [...]EnemyKind{Walker, Jumper, Flier, Crawler, Boss} {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// UsesGravity reports whether the shared gravity sweep moves this kind.
// Fliers and crawlers place themselves vertically from their AI.
func (k EnemyKind) UsesGravity() bool {
	return k != Flier && k != Crawler
}

// Variant is the behaviour-specific payload of an enemy. Exactly one
// implementation exists per kind.
type Variant interface {
	Kind() EnemyKind
}

type WalkerState struct{}

type JumperState struct{}

// FlierState counts frames toward the next altitude correction.
type FlierState struct {
	Timer int
}

// Surface is the side of a tile a crawler is attached to.
type Surface uint8

const (
	SurfaceFloor Surface = iota
	SurfaceRightWall
	SurfaceLeftWall
	SurfaceCeiling
)

func (s Surface) String() string {
	switch s {
	case SurfaceFloor:
		return "floor"
	case SurfaceRightWall:
		return "right_wall"
	case SurfaceLeftWall:
		return "left_wall"
	case SurfaceCeiling:
		return "ceiling"
	}
	return "unknown"
}

// CrawlerState is the surface machine. WrapStep is 0 when idle, 1-4 while
// wrapping from a floor edge to the ceiling below it and 5-8 while wrapping
// from a ceiling edge to the floor above it.
type CrawlerState struct {
	Surface  Surface
	WrapStep int
}

// Wrapping reports whether an edge wrap is in progress.
func (c *CrawlerState) Wrapping() bool {
	return c.WrapStep > 0
}

// BossPhase is the boss attack machine state.
type BossPhase uint8

const (
	BossPatrol BossPhase = iota
	BossWindup
	BossStrike
)

func (p BossPhase) String() string {
	switch p {
	case BossPatrol:
		return "patrol"
	case BossWindup:
		return "windup"
	case BossStrike:
		return "strike"
	}
	return "unknown"
}

type BossState struct {
	Phase  BossPhase
	Timer  int
	Windup int
}

func (*WalkerState) Kind() EnemyKind  { return Walker }
func (*JumperState) Kind() EnemyKind  { return Jumper }
func (*FlierState) Kind() EnemyKind   { return Flier }
func (*CrawlerState) Kind() EnemyKind { return Crawler }
func (*BossState) Kind() EnemyKind    { return Boss }

// NewVariant returns the zero payload for kind.
func NewVariant(kind EnemyKind) Variant {
	switch kind {
	case Jumper:
		return &JumperState{}
	case Flier:
		return &FlierState{}
	case Crawler:
		return &CrawlerState{Surface: SurfaceFloor}
	case Boss:
		return &BossState{Phase: BossPatrol}
	default:
		return &WalkerState{}
	}
}

// Enemy is the shared header plus its variant payload.
type Enemy struct {
	X, Y      int
	VelocityX int
	VelocityY int
	HP        int
	Active    bool
	Grounded  bool
	Variant   Variant
}

// NewEnemy returns an active enemy facing dir (+1 right, -1 left).
func NewEnemy(kind EnemyKind, x, y, dir, hp int) Enemy {
	return Enemy{
		X:         x,
		Y:         y,
		VelocityX: dir,
		HP:        hp,
		Active:    true,
		Variant:   NewVariant(kind),
	}
}

func (e *Enemy) Kind() EnemyKind {
	if e.Variant == nil {
		return Walker
	}
	return e.Variant.Kind()
}

// TakeHit removes one hit point and deactivates the enemy at zero. It
// reports whether the hit was lethal.
func (e *Enemy) TakeHit() bool {
	e.HP--
	if e.HP <= 0 {
		e.HP = 0
		e.Active = false
		return true
	}
	return false
}
