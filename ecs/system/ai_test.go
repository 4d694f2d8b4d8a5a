package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/asciiknight/ecs"
	"github.com/milk9111/asciiknight/ecs/component"
)

func TestWalkerTurnsAtLedge(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown, platform(10, 5, 15))
	movePlayerAway(w)
	e := spawn(w, component.Walker, 14, 9, 1)

	NewAISystem().Update(w)

	assert.Equal(t, 14, e.X)
	assert.Equal(t, -1, e.VelocityX)
}

func TestWalkerTurnsAtBorder(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown)
	movePlayerAway(w)
	e := spawn(w, component.Walker, 1, 18, -1)

	NewAISystem().Update(w)

	assert.Equal(t, 1, e.X)
	assert.Equal(t, 1, e.VelocityX)
}

func TestWalkerChasesPlayer(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown)
	w.Player.X, w.Player.Y = 15, 18
	e := spawn(w, component.Walker, 10, 18, -1)

	NewAISystem().Update(w)

	assert.Equal(t, 1, e.VelocityX)
	assert.Equal(t, 11, e.X)
}

func TestWalkerIgnoresPlayerOutsideChaseRange(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown)
	w.Player.X, w.Player.Y = 30, 18
	e := spawn(w, component.Walker, 20, 18, -1)

	NewAISystem().Update(w)

	assert.Equal(t, -1, e.VelocityX, "distance equal to the chase range does not count")
	assert.Equal(t, 19, e.X)
}

func TestJumperHopsWhenGrounded(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown)
	w.Player.X, w.Player.Y = 30, 18
	e := spawn(w, component.Jumper, 10, 18, 1)
	e.Grounded = true

	NewAISystem().Update(w)

	assert.Equal(t, w.Tuning.Physics.JumpVelocity, e.VelocityY)
	assert.False(t, e.Grounded)
	assert.Equal(t, 11, e.X)
}

func TestJumperStaysDownInAir(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown)
	w.Player.X, w.Player.Y = 30, 18
	e := spawn(w, component.Jumper, 10, 18, 1)

	NewAISystem().Update(w)

	assert.Equal(t, 0, e.VelocityY)
}

func flierState(t *testing.T, e *component.Enemy) *component.FlierState {
	t.Helper()
	st, ok := e.Variant.(*component.FlierState)
	require.True(t, ok)
	return st
}

func TestFlierAltitudeCorrection(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown)
	w.Player.X, w.Player.Y = 20, 18
	e := spawn(w, component.Flier, 10, 5, 1)
	st := flierState(t, e)
	st.Timer = w.Tuning.Enemy.FlierInterval - 1

	NewAISystem().Update(w)

	assert.Equal(t, 11, e.X)
	assert.Equal(t, 5+w.Tuning.Enemy.FlierShift, e.Y)
	assert.Equal(t, 0, st.Timer)
}

func TestFlierAltitudeCorrectionStopsAtSolid(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown, platform(7, 11, 12))
	w.Player.X, w.Player.Y = 20, 18
	e := spawn(w, component.Flier, 10, 5, 1)
	flierState(t, e).Timer = w.Tuning.Enemy.FlierInterval - 1

	NewAISystem().Update(w)

	assert.Equal(t, 11, e.X)
	assert.Equal(t, 6, e.Y)
}

func TestFlierDodgesEnemyAhead(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown, platform(10, 5, 15))
	movePlayerAway(w)
	f := spawn(w, component.Flier, 10, 9, 1)
	spawn(w, component.Walker, 11, 9, 1)

	updateFlier(w, 0, w.Enemies.At(0), flierState(t, f))
	f = w.Enemies.At(0)

	assert.Equal(t, 10, f.X)
	assert.Equal(t, 8, f.Y, "fewer obstacles above, so it rises")
	assert.Equal(t, 1, f.VelocityX)
}

func TestFlierReversesWhenBoxedIn(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown, platform(4, 5, 15), platform(6, 5, 15))
	movePlayerAway(w)
	f := spawn(w, component.Flier, 10, 5, 1)
	spawn(w, component.Walker, 11, 5, 1)

	updateFlier(w, 0, w.Enemies.At(0), flierState(t, f))
	f = w.Enemies.At(0)

	assert.Equal(t, 10, f.X)
	assert.Equal(t, 5, f.Y)
	assert.Equal(t, -1, f.VelocityX)
}

func TestFlierReversesAtBorder(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown)
	movePlayerAway(w)
	e := spawn(w, component.Flier, w.Arena.Width()-2, 5, 1)

	NewAISystem().Update(w)

	assert.Equal(t, w.Arena.Width()-2, e.X)
	assert.Equal(t, -1, e.VelocityX)
}

// touchesSurface reports whether any of the eight cells around (x, y) is solid.
func touchesSurface(w *ecs.World, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if (dx != 0 || dy != 0) && w.Arena.IsSolid(x+dx, y+dy) {
				return true
			}
		}
	}
	return false
}

func TestCrawlerWrapsAroundFloatingPlatform(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown, platform(10, 10, 13))
	movePlayerAway(w)
	e := spawn(w, component.Crawler, 10, 9, 1)
	st, ok := e.Variant.(*component.CrawlerState)
	require.True(t, ok)

	ai := NewAISystem()
	for frame := 1; frame <= 14; frame++ {
		ai.Update(w)
		require.True(t, touchesSurface(w, e.X, e.Y), "frame %d: crawler at (%d,%d) lost contact", frame, e.X, e.Y)
		require.False(t, w.Arena.IsSolid(e.X, e.Y), "frame %d: crawler inside a tile", frame)

		switch frame {
		case 3:
			assert.Equal(t, 1, st.WrapStep)
		case 7:
			assert.Equal(t, component.SurfaceCeiling, st.Surface)
			assert.Equal(t, [2]int{12, 11}, [2]int{e.X, e.Y})
			assert.Equal(t, -1, e.VelocityX)
			assert.False(t, st.Wrapping())
		case 10:
			assert.Equal(t, 5, st.WrapStep)
		}
	}

	assert.Equal(t, component.SurfaceFloor, st.Surface)
	assert.Equal(t, [2]int{10, 9}, [2]int{e.X, e.Y})
	assert.Equal(t, 1, e.VelocityX)
}

func TestCrawlerClimbsBorderWall(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown)
	movePlayerAway(w)
	e := spawn(w, component.Crawler, 37, 18, 1)
	st := e.Variant.(*component.CrawlerState)

	ai := NewAISystem()
	ai.Update(w)
	ai.Update(w)
	require.Equal(t, component.SurfaceRightWall, st.Surface)
	assert.Equal(t, -1, e.VelocityY)

	for i := 0; i < 40 && st.Surface != component.SurfaceCeiling; i++ {
		ai.Update(w)
	}
	assert.Equal(t, component.SurfaceCeiling, st.Surface)
	assert.Equal(t, [2]int{38, 1}, [2]int{e.X, e.Y})
	assert.Equal(t, -1, e.VelocityX)
}

func TestBossWindupAndStrike(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown)
	w.Player.X, w.Player.Y = 22, 18
	boss := spawn(w, component.Boss, 20, 17, 1)
	st := boss.Variant.(*component.BossState)
	tuning := w.Tuning.Boss
	st.Timer = tuning.AttackInterval - 1

	updateBoss(w, boss, st)
	require.Equal(t, component.BossWindup, st.Phase)
	assert.Equal(t, tuning.WindupFrames, st.Windup)
	assert.Equal(t, 0, st.Timer)

	for i := 0; i < tuning.WindupFrames; i++ {
		updateBoss(w, boss, st)
	}
	require.Equal(t, component.BossStrike, st.Phase)
	assert.Equal(t, 20, boss.X, "boss holds still while winding up")

	updateBoss(w, boss, st)
	assert.Equal(t, component.BossPatrol, st.Phase)
	assert.Equal(t, w.Tuning.Player.MaxHP-tuning.Damage, w.Player.HP)
	assert.Equal(t, []ecs.EventType{ecs.EventBossWindup, ecs.EventBossStrike, ecs.EventPlayerDamaged}, eventTypes(w))
}

func TestBossStrikeMissesOutOfRange(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown)
	w.Player.X, w.Player.Y = 26, 18
	boss := spawn(w, component.Boss, 20, 17, 1)
	st := boss.Variant.(*component.BossState)
	st.Phase = component.BossStrike

	updateBoss(w, boss, st)

	assert.Equal(t, w.Tuning.Player.MaxHP, w.Player.HP)
	evts := w.Events().Drain()
	require.Len(t, evts, 1)
	assert.Equal(t, ecs.StrikeEvent{X: 20, Y: 17, Range: w.Tuning.Boss.AOERange}, evts[0].Data)
}

func TestBossTurnsWithoutFullSupport(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown, platform(15, 10, 20))
	movePlayerAway(w)
	boss := spawn(w, component.Boss, 18, 13, 1)
	st := boss.Variant.(*component.BossState)

	updateBoss(w, boss, st)
	assert.Equal(t, 18, boss.X)
	assert.Equal(t, -1, boss.VelocityX)

	boss.X = 12
	updateBoss(w, boss, st)
	assert.Equal(t, 11, boss.X)
	updateBoss(w, boss, st)
	assert.Equal(t, 11, boss.X)
	assert.Equal(t, 1, boss.VelocityX)
}

func TestBossTurnsAtBorder(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown)
	movePlayerAway(w)
	boss := spawn(w, component.Boss, 2, 17, -1)

	updateBoss(w, boss, boss.Variant.(*component.BossState))

	assert.Equal(t, 2, boss.X)
	assert.Equal(t, 1, boss.VelocityX)
}
