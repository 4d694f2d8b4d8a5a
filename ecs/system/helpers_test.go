package system

import (
	"math/rand"
	"testing"

	"github.com/milk9111/asciiknight/arena"
	"github.com/milk9111/asciiknight/ecs"
	"github.com/milk9111/asciiknight/ecs/component"
	"github.com/milk9111/asciiknight/levels"
	"github.com/milk9111/asciiknight/prefabs"
)

// newTestWorld builds a 40x20 walled arena holding platforms, with a seeded
// random source. The player stands on the ground at (20, 18).
func newTestWorld(t *testing.T, style component.CombatStyle, platforms ...levels.Platform) *ecs.World {
	t.Helper()
	return ecs.NewWorld(arena.New(40, 20, platforms...), prefabs.DefaultTuning(), style, rand.New(rand.NewSource(7)))
}

func platform(row, from, to int) levels.Platform {
	return levels.Platform{Row: row, From: from, To: to}
}

// movePlayerAway parks the player in a corner, out of every chase radius
// used by the tests.
func movePlayerAway(w *ecs.World) {
	w.Player.X, w.Player.Y = 1, 1
}

func spawn(w *ecs.World, kind component.EnemyKind, x, y, dir int) *component.Enemy {
	w.SpawnEnemy(kind, x, y, dir)
	return w.Enemies.At(w.Enemies.Len() - 1)
}

func eventTypes(w *ecs.World) []ecs.EventType {
	var out []ecs.EventType
	for _, evt := range w.Events().Drain() {
		out = append(out, evt.Type)
	}
	return out
}
