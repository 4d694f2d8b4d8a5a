package ecs

import "github.com/milk9111/asciiknight/ecs/component"

// EventType identifies a gameplay event.
type EventType string

const (
	EventEnemyHit      EventType = "enemy_hit"
	EventEnemyKilled   EventType = "enemy_killed"
	EventPlayerDamaged EventType = "player_damaged"
	EventAttack        EventType = "attack"
	EventJump          EventType = "jump"
	EventBossWindup    EventType = "boss_windup"
	EventBossStrike    EventType = "boss_strike"
	EventWaveStarted   EventType = "wave_started"
	EventWaveCleared   EventType = "wave_cleared"
	EventQuit          EventType = "quit"
)

// Event is emitted by systems for shells to log, play sounds for or flash.
type Event struct {
	Type  EventType
	Frame int
	Data  any
}

// EnemyEvent describes the enemy involved in a hit or kill.
type EnemyEvent struct {
	Kind component.EnemyKind
	X, Y int
	HP   int
}

// DamageEvent describes damage dealt to the player.
type DamageEvent struct {
	Source component.EnemyKind
	Amount int
	HP     int
}

// StrikeEvent describes a boss area attack centred on (X, Y).
type StrikeEvent struct {
	X, Y  int
	Range int
	Hit   bool
}

// WaveEvent describes a wave transition.
type WaveEvent struct {
	Wave  int
	Count int
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
