package ecs

import (
	"math/rand"

	"github.com/milk9111/asciiknight/arena"
	"github.com/milk9111/asciiknight/ecs/component"
	"github.com/milk9111/asciiknight/prefabs"
)

// World is the whole simulation context. Systems receive it explicitly;
// nothing about a run lives in package state.
type World struct {
	Arena  *arena.Arena
	Tuning prefabs.TuningSpec
	Style  component.CombatStyle
	Rand   *rand.Rand

	Player  component.Player
	Attack  component.Attack
	Enemies EnemyList
	Waves   component.Waves

	// Input is the action consumed by the current frame.
	Input component.Action
	Frame int

	events EventQueue
}

// NewWorld places the player on the arena spawn with full health.
func NewWorld(a *arena.Arena, tuning prefabs.TuningSpec, style component.CombatStyle, rng *rand.Rand) *World {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	x, y := a.Spawn()
	return &World{
		Arena:  a,
		Tuning: tuning,
		Style:  style,
		Rand:   rng,
		Player: component.NewPlayer(x, y, tuning.Player.MaxHP),
		Waves:  component.Waves{Current: 1},
	}
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Emit queues an event stamped with the current frame.
func (w *World) Emit(t EventType, data any) {
	w.events.Push(Event{Type: t, Frame: w.Frame, Data: data})
}

// Outcome reports defeat once the player has no health left and victory
// once every wave has been cleared.
func (w *World) Outcome() component.Outcome {
	if !w.Player.Alive() {
		return component.Defeat
	}
	if w.Waves.Current > w.Tuning.Waves.Max && w.Enemies.Len() == 0 {
		return component.Victory
	}
	return component.Running
}

// SpawnEnemy adds an enemy of kind at (x, y) with the tuned hit points.
func (w *World) SpawnEnemy(kind component.EnemyKind, x, y, dir int) {
	hp := w.Tuning.Enemy.HP
	if kind == component.Boss {
		hp = w.Tuning.Boss.MaxHP
	}
	w.Enemies.Add(component.NewEnemy(kind, x, y, dir, hp))
}

// HitEnemy applies one point of attack damage to enemy i and ends the swing.
func (w *World) HitEnemy(i int) {
	e := w.Enemies.At(i)
	killed := e.TakeHit()
	w.Attack.Active = false
	data := EnemyEvent{Kind: e.Kind(), X: e.X, Y: e.Y, HP: e.HP}
	if killed {
		w.Emit(EventEnemyKilled, data)
		return
	}
	w.Emit(EventEnemyHit, data)
}

// DamagePlayer applies damage from an enemy of kind source.
func (w *World) DamagePlayer(source component.EnemyKind, amount int) {
	w.Player.Damage(amount)
	w.Emit(EventPlayerDamaged, DamageEvent{Source: source, Amount: amount, HP: w.Player.HP})
}
