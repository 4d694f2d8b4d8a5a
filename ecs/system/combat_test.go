package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/asciiknight/ecs"
	"github.com/milk9111/asciiknight/ecs/component"
)

func TestAttackHitsOnlyFirstEnemy(t *testing.T) {
	w := newTestWorld(t, component.StyleSpam)
	w.Player.X, w.Player.Y = 10, 10
	spawn(w, component.Walker, 11, 10, 1)
	spawn(w, component.Walker, 11, 11, 1)
	require.True(t, ActivateAttack(w, component.DirRight))

	ResolveAttackHits(w)

	require.Equal(t, 1, w.Enemies.Len())
	assert.Equal(t, 11, w.Enemies.At(0).Y)
	assert.False(t, w.Attack.Active)
}

func TestAttackDamagesBossWithoutKilling(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown)
	w.Player.X, w.Player.Y = 10, 10
	spawn(w, component.Boss, 12, 10, 1)
	require.True(t, ActivateAttack(w, component.DirRight))
	w.Events().Drain()

	ResolveAttackHits(w)

	require.Equal(t, 1, w.Enemies.Len())
	assert.Equal(t, w.Tuning.Boss.MaxHP-1, w.Enemies.At(0).HP)
	assert.False(t, w.Attack.Active)
	assert.Equal(t, []ecs.EventType{ecs.EventEnemyHit}, eventTypes(w))
}

func TestResolveAttackHitsCompactsWithoutSwing(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown)
	spawn(w, component.Walker, 5, 18, 1)
	spawn(w, component.Walker, 6, 18, 1)
	w.Enemies.At(0).Active = false

	ResolveAttackHits(w)

	require.Equal(t, 1, w.Enemies.Len())
	assert.Equal(t, 6, w.Enemies.At(0).X)
}

func TestContactDamagesAndDestroys(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown)
	w.Player.X, w.Player.Y = 10, 10
	spawn(w, component.Walker, 10, 10, 1)
	spawn(w, component.Flier, 10, 10, 1)
	spawn(w, component.Walker, 11, 10, 1)

	ResolveContacts(w)

	assert.Equal(t, w.Tuning.Player.MaxHP-2, w.Player.HP)
	require.Equal(t, 1, w.Enemies.Len())
	assert.Equal(t, 11, w.Enemies.At(0).X)
	assert.Equal(t, []ecs.EventType{
		ecs.EventPlayerDamaged, ecs.EventEnemyKilled,
		ecs.EventPlayerDamaged, ecs.EventEnemyKilled,
	}, eventTypes(w))
}

func TestBossSurvivesContact(t *testing.T) {
	w := newTestWorld(t, component.StyleCooldown)
	w.Player.X, w.Player.Y = 10, 10
	spawn(w, component.Boss, 11, 11, 1)

	ResolveContacts(w)

	assert.Equal(t, w.Tuning.Player.MaxHP-1, w.Player.HP)
	require.Equal(t, 1, w.Enemies.Len())
	assert.True(t, w.Enemies.At(0).Active)
}

func TestFrameSchedulerOrder(t *testing.T) {
	sched := NewFrameScheduler()
	systems := sched.Systems()
	require.Len(t, systems, 6)

	assert.IsType(t, &PlayerControllerSystem{}, systems[0])
	assert.IsType(t, &PlayerPhysicsSystem{}, systems[1])
	assert.IsType(t, &AttackSystem{}, systems[2])
	assert.IsType(t, &EnemyPhysicsSystem{}, systems[3])
	assert.IsType(t, &AISystem{}, systems[4])
	assert.IsType(t, &CombatSystem{}, systems[5])
}

func TestFrameUpSwingKillsWalker(t *testing.T) {
	for _, dir := range []int{-1, 1} {
		w := newTestWorld(t, component.StyleCooldown, platform(17, 15, 26))
		spawn(w, component.Walker, 20, 16, dir)
		w.Input = component.ActionAttackUp

		NewFrameScheduler().Update(w)

		assert.Zero(t, w.Enemies.Len(), "dir %d", dir)
		assert.False(t, w.Attack.Active)
		assert.Equal(t, w.Tuning.Combat.LongDurationFrames-1, w.Attack.FramesRemaining)
		assert.Positive(t, w.Attack.FramesRemaining)
		assert.Equal(t, w.Tuning.Player.MaxHP, w.Player.HP)
		assert.Equal(t, []ecs.EventType{ecs.EventAttack, ecs.EventEnemyKilled}, eventTypes(w))
	}
}

func TestFrameContactWalkerVersusBoss(t *testing.T) {
	t.Run("walker", func(t *testing.T) {
		w := newTestWorld(t, component.StyleCooldown)
		spawn(w, component.Walker, 21, 18, 1)

		NewFrameScheduler().Update(w)

		assert.Zero(t, w.Enemies.Len())
		assert.Equal(t, w.Tuning.Player.MaxHP-1, w.Player.HP)
		assert.False(t, w.Attack.Active)
		assert.Equal(t, []ecs.EventType{ecs.EventPlayerDamaged, ecs.EventEnemyKilled}, eventTypes(w))
	})

	t.Run("boss", func(t *testing.T) {
		w := newTestWorld(t, component.StyleCooldown)
		spawn(w, component.Boss, 22, 17, -1)

		NewFrameScheduler().Update(w)

		require.Equal(t, 1, w.Enemies.Len())
		boss := w.Enemies.At(0)
		assert.True(t, boss.Active)
		assert.Equal(t, w.Tuning.Boss.MaxHP, boss.HP)
		assert.Equal(t, 21, boss.X)
		assert.Equal(t, w.Tuning.Player.MaxHP-1, w.Player.HP)
		assert.Equal(t, []ecs.EventType{ecs.EventPlayerDamaged}, eventTypes(w))
	})
}
