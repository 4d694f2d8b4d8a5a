package ecs

import "github.com/milk9111/asciiknight/ecs/component"

// EnemyList keeps enemies in spawn order. Removal shifts later enemies left,
// so an index is only valid until the next removal.
type EnemyList struct {
	items []component.Enemy
}

// Add appends an enemy, growing storage as needed.
func (l *EnemyList) Add(e component.Enemy) {
	l.items = append(l.items, e)
}

func (l *EnemyList) Len() int {
	return len(l.items)
}

// At returns a pointer into the list, valid until the next removal.
func (l *EnemyList) At(i int) *component.Enemy {
	return &l.items[i]
}

// Items exposes the backing slice for read-only iteration.
func (l *EnemyList) Items() []component.Enemy {
	return l.items
}

// RemoveAt drops the enemy at i and shifts the rest left.
func (l *EnemyList) RemoveAt(i int) {
	if i < 0 || i >= len(l.items) {
		return
	}
	copy(l.items[i:], l.items[i+1:])
	l.items[len(l.items)-1] = component.Enemy{}
	l.items = l.items[:len(l.items)-1]
}

// RemoveInactive compacts the list in place, keeping the order of the
// survivors. It returns how many enemies were removed.
func (l *EnemyList) RemoveInactive() int {
	kept := l.items[:0]
	for _, e := range l.items {
		if e.Active {
			kept = append(kept, e)
		}
	}
	removed := len(l.items) - len(kept)
	for i := len(kept); i < len(l.items); i++ {
		l.items[i] = component.Enemy{}
	}
	l.items = kept
	return removed
}

// ActiveCount counts enemies still in play.
func (l *EnemyList) ActiveCount() int {
	n := 0
	for i := range l.items {
		if l.items[i].Active {
			n++
		}
	}
	return n
}

// OccupiedBy returns the index of an active enemy other than skip whose
// hitbox covers (x, y), or -1.
func (l *EnemyList) OccupiedBy(x, y, skip int) int {
	for i := range l.items {
		if i == skip || !l.items[i].Active {
			continue
		}
		if component.Touches(&l.items[i], x, y) {
			return i
		}
	}
	return -1
}

// Reset drops every enemy.
func (l *EnemyList) Reset() {
	l.items = l.items[:0]
}
