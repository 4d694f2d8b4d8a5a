package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/asciiknight/ecs"
	"github.com/milk9111/asciiknight/ecs/component"
)

func TestPlayerLandsOnThinPlatform(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown, platform(10, 5, 15))
	w.Player.X, w.Player.Y = 8, 2
	w.Player.VelocityY = 4

	phys := NewPlayerPhysicsSystem()
	for i := 0; i < 10 && !w.Player.Grounded; i++ {
		phys.Update(w)
		require.Less(t, w.Player.Y, 10, "player tunnelled into the platform")
	}

	assert.True(t, w.Player.Grounded)
	assert.Equal(t, 9, w.Player.Y)
	assert.Equal(t, 0, w.Player.VelocityY)
	assert.False(t, w.Player.CanDoubleJump)
}

func TestPlayerRisesThroughPlatform(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown, platform(10, 5, 15))
	w.Player.X, w.Player.Y = 8, 11
	w.Player.VelocityY = -4

	NewPlayerPhysicsSystem().Update(w)

	assert.Equal(t, 8, w.Player.Y)
	assert.Equal(t, -3, w.Player.VelocityY)
}

func TestPlayerRiseStopsAtWall(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown)
	w.Player.X, w.Player.Y = 8, 2
	w.Player.VelocityY = -4

	NewPlayerPhysicsSystem().Update(w)

	assert.Equal(t, 1, w.Player.Y)
	assert.Equal(t, 0, w.Player.VelocityY)
}

func TestPlayerWalksOffLedge(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown, platform(10, 5, 15))
	w.Player.X, w.Player.Y = 14, 9
	w.Player.Grounded = true

	w.Input = component.ActionMoveRight
	NewPlayerControllerSystem().Update(w)
	NewPlayerPhysicsSystem().Update(w)

	assert.Equal(t, 15, w.Player.X)
	assert.Equal(t, 10, w.Player.Y)
	assert.False(t, w.Player.Grounded)
}

func TestPlayerVelocityStaysClamped(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown)
	w.Player.Y = 1
	ctrl := NewPlayerControllerSystem()
	phys := NewPlayerPhysicsSystem()
	tuning := w.Tuning.Physics

	for i := 0; i < 200; i++ {
		w.Input = component.ActionNone
		if i%7 == 0 {
			w.Input = component.ActionJump
		}
		ctrl.Update(w)
		phys.Update(w)
		require.GreaterOrEqual(t, w.Player.VelocityY, tuning.JumpVelocity)
		require.LessOrEqual(t, w.Player.VelocityY, tuning.MaxFallSpeed)
	}
}

func TestJumpAndDoubleJump(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown)
	w.Player.Grounded = true

	require.True(t, Jump(w))
	assert.False(t, w.Player.Grounded)
	assert.True(t, w.Player.CanDoubleJump)
	assert.Equal(t, w.Tuning.Physics.JumpVelocity, w.Player.VelocityY)

	w.Player.VelocityY = 2
	require.True(t, Jump(w))
	assert.False(t, w.Player.CanDoubleJump)
	assert.Equal(t, w.Tuning.Physics.JumpVelocity, w.Player.VelocityY)

	assert.False(t, Jump(w))
	assert.Equal(t, []ecs.EventType{ecs.EventJump, ecs.EventJump}, eventTypes(w))
}

func TestMovementClampsToInterior(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown)
	ctrl := NewPlayerControllerSystem()

	w.Player.X = 1
	w.Input = component.ActionMoveLeft
	ctrl.Update(w)
	assert.Equal(t, 1, w.Player.X)

	w.Player.X = w.Arena.Width() - 2
	w.Input = component.ActionMoveRight
	ctrl.Update(w)
	assert.Equal(t, w.Arena.Width()-2, w.Player.X)
}

func TestQuitEndsRun(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown)
	w.Input = component.ActionQuit
	NewPlayerControllerSystem().Update(w)

	assert.Equal(t, 0, w.Player.HP)
	assert.Equal(t, component.Defeat, w.Outcome())
	assert.Equal(t, []ecs.EventType{ecs.EventQuit}, eventTypes(w))
}

func TestEnemyLandsOnGround(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown)
	e := spawn(w, component.Walker, 10, 3, 1)

	phys := NewEnemyPhysicsSystem()
	for i := 0; i < 20; i++ {
		phys.Update(w)
	}

	assert.Equal(t, 18, e.Y)
	assert.True(t, e.Grounded)
	assert.Equal(t, 0, e.VelocityY)
}

func TestBossLandsOnFootprint(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown, platform(12, 19, 20))
	boss := spawn(w, component.Boss, 20, 3, 1)

	phys := NewEnemyPhysicsSystem()
	for i := 0; i < 20; i++ {
		phys.Update(w)
	}

	// Only the left bottom column rests on the platform tile.
	assert.Equal(t, 10, boss.Y)
	assert.True(t, boss.Grounded)
}

func TestFliersAndCrawlersIgnoreGravity(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown)
	f := spawn(w, component.Flier, 10, 5, 1)
	c := spawn(w, component.Crawler, 12, 5, 1)

	NewEnemyPhysicsSystem().Update(w)

	assert.Equal(t, 5, f.Y)
	assert.Equal(t, 5, c.Y)
}

func TestAttackCatchesEnemyMidFall(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown)
	e := spawn(w, component.Walker, 10, 2, 1)
	e.VelocityY = 4

	w.Player.X, w.Player.Y = 11, 4
	require.True(t, ActivateAttack(w, component.DirDown))
	w.Events().Drain()

	NewEnemyPhysicsSystem().Update(w)

	assert.False(t, e.Active)
	assert.Equal(t, 5, e.Y, "enemy should stop on the sub-step it was hit")
	assert.False(t, w.Attack.Active)
	assert.Equal(t, []ecs.EventType{ecs.EventEnemyKilled}, eventTypes(w))
}
