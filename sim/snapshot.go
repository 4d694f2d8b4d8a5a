package sim

import (
	"github.com/milk9111/asciiknight/ecs/component"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Frame         int
	Width, Height int

	Player  PlayerView
	Attack  *AttackView
	Enemies []EnemyView

	// Wave is the wave being fought, capped at MaxWaves once all are cleared.
	Wave       int
	MaxWaves   int
	EnemyCount int
	// Intermission counts frames until the next wave spawns.
	Intermission int

	Style   component.CombatStyle
	Outcome component.Outcome
}

type PlayerView struct {
	X, Y          int
	HP, MaxHP     int
	Grounded      bool
	CanDoubleJump bool
}

// AttackView lists the three swing cells with the glyph drawn on each.
type AttackView struct {
	Direction       component.Direction
	Cells           [3]component.Point
	Glyphs          [3]rune
	FramesRemaining int
	Cooldown        int
}

type EnemyView struct {
	Kind  component.EnemyKind
	X, Y  int
	HP    int
	Glyph rune

	// Boss only. Warning is the telegraphed strike radius while winding up,
	// zero otherwise.
	Phase   component.BossPhase
	Warning int
}

// Snapshot captures the current frame.
func (s *Simulation) Snapshot() Snapshot {
	w := s.world
	p := w.Player

	snap := Snapshot{
		Frame:  w.Frame,
		Width:  w.Arena.Width(),
		Height: w.Arena.Height(),
		Player: PlayerView{
			X:             p.X,
			Y:             p.Y,
			HP:            p.HP,
			MaxHP:         p.MaxHP,
			Grounded:      p.Grounded,
			CanDoubleJump: p.CanDoubleJump,
		},
		Wave:         min(w.Waves.Current, w.Tuning.Waves.Max),
		MaxWaves:     w.Tuning.Waves.Max,
		EnemyCount:   w.Enemies.ActiveCount(),
		Intermission: w.Waves.Intermission,
		Style:        w.Style,
		Outcome:      s.outcome,
	}

	if a := w.Attack; a.Active {
		snap.Attack = &AttackView{
			Direction:       a.Direction,
			Cells:           a.Cells(),
			Glyphs:          a.Direction.Glyphs(),
			FramesRemaining: a.FramesRemaining,
			Cooldown:        a.Cooldown,
		}
	}

	items := w.Enemies.Items()
	snap.Enemies = make([]EnemyView, 0, len(items))
	for i := range items {
		e := &items[i]
		if !e.Active {
			continue
		}
		view := EnemyView{
			Kind:  e.Kind(),
			X:     e.X,
			Y:     e.Y,
			HP:    e.HP,
			Glyph: e.Kind().Glyph(),
		}
		if st, ok := e.Variant.(*component.BossState); ok {
			view.Phase = st.Phase
			if st.Phase == component.BossWindup {
				view.Warning = w.Tuning.Boss.AOERange
			}
		}
		snap.Enemies = append(snap.Enemies, view)
	}
	return snap
}
