package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttackCells(t *testing.T) {
	cases := []struct {
		dir  Direction
		want [3]Point
	}{
		{DirUp, [3]Point{{9, 8}, {10, 8}, {11, 8}}},
		{DirLeft, [3]Point{{8, 9}, {8, 10}, {8, 11}}},
		{DirDown, [3]Point{{9, 11}, {10, 11}, {11, 11}}},
		{DirRight, [3]Point{{11, 9}, {11, 10}, {11, 11}}},
	}
	for _, c := range cases {
		t.Run(c.dir.String(), func(t *testing.T) {
			x, y := c.dir.Anchor(10, 10)
			a := Attack{Active: true, Direction: c.dir, X: x, Y: y}
			assert.Equal(t, c.want, a.Cells())
		})
	}
}

func TestIsHitBy(t *testing.T) {
	up := Attack{Active: true, Direction: DirUp, X: 9, Y: 8}

	cases := []struct {
		name  string
		enemy Enemy
		want  bool
	}{
		{"walker_on_middle_cell", NewEnemy(Walker, 10, 8, 1, 1), true},
		{"walker_on_last_cell", NewEnemy(Walker, 11, 8, 1, 1), true},
		{"walker_next_to_swing", NewEnemy(Walker, 12, 8, 1, 1), false},
		{"walker_below_swing", NewEnemy(Walker, 10, 9, 1, 1), false},
		{"boss_edge_overlaps", NewEnemy(Boss, 12, 7, 1, 5), true},
		{"boss_just_outside", NewEnemy(Boss, 12, 5, 1, 5), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, IsHitBy(&up, &c.enemy))
		})
	}

	inactive := up
	inactive.Active = false
	w := NewEnemy(Walker, 10, 8, 1, 1)
	assert.False(t, IsHitBy(&inactive, &w))
	assert.False(t, IsHitBy(nil, &w))
}

func TestTouches(t *testing.T) {
	w := NewEnemy(Walker, 5, 5, 1, 1)
	assert.True(t, Touches(&w, 5, 5))
	assert.False(t, Touches(&w, 6, 5))

	b := NewEnemy(Boss, 5, 5, 1, 5)
	assert.True(t, Touches(&b, 4, 6))
	assert.True(t, Touches(&b, 6, 4))
	assert.False(t, Touches(&b, 7, 5))
	assert.False(t, Touches(&b, 5, 3))
}

func TestEnemyVariants(t *testing.T) {
	for _, k := range []EnemyKind{Walker, Jumper, Flier, Crawler, Boss} {
		e := NewEnemy(k, 1, 1, -1, 1)
		assert.Equal(t, k, e.Kind())
		parsed, ok := ParseEnemyKind(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, parsed)
	}
	assert.False(t, Flier.UsesGravity())
	assert.False(t, Crawler.UsesGravity())
	assert.True(t, Boss.UsesGravity())

	e := NewEnemy(Boss, 1, 1, 1, 2)
	assert.False(t, e.TakeHit())
	assert.True(t, e.TakeHit())
	assert.False(t, e.Active)
}

func TestPlayerDamageFloorsAtZero(t *testing.T) {
	p := NewPlayer(1, 1, 5)
	p.Damage(3)
	assert.Equal(t, 2, p.HP)
	p.Damage(3)
	assert.Equal(t, 0, p.HP)
	assert.False(t, p.Alive())
}

func TestParseCombatStyle(t *testing.T) {
	s, err := ParseCombatStyle("1")
	assert.NoError(t, err)
	assert.Equal(t, StyleCooldown, s)
	s, err = ParseCombatStyle("Spam")
	assert.NoError(t, err)
	assert.Equal(t, StyleSpam, s)
	_, err = ParseCombatStyle("3")
	assert.Error(t, err)
}
