package system

import (
	"github.com/milk9111/asciiknight/common"
	"github.com/milk9111/asciiknight/ecs"
	"github.com/milk9111/asciiknight/ecs/component"
)

// flierSpawnAttempts bounds the search for an empty airborne cell.
const flierSpawnAttempts = 16

// WaveSystem is the wave director. It runs once between frames: it
// notices a cleared wave, waits out the intermission and spawns the next.
type WaveSystem struct {
	// Script optionally chooses the kinds of intermediate waves.
	Script *WaveScript
	// OnScriptError is told when the script fails and the built-in uniform
	// draw is used instead.
	OnScriptError func(error)
}

func NewWaveSystem() *WaveSystem {
	return &WaveSystem{}
}

func (s *WaveSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	wv := &w.Waves
	if wv.InProgress {
		if w.Enemies.Len() > 0 {
			return
		}
		wv.InProgress = false
		w.Emit(ecs.EventWaveCleared, ecs.WaveEvent{Wave: wv.Current, Count: wv.Spawned})
		wv.Current++
		wv.Intermission = w.Tuning.WaveDelayFrames()
	}

	if wv.Current > w.Tuning.Waves.Max {
		return
	}
	if wv.Intermission > 0 {
		wv.Intermission--
		return
	}
	s.SpawnWave(w, wv.Current)
}

// SpawnWave spawns wave n and marks it in progress. Wave 1 is the opening
// walkers, the last wave is the boss alone, and every wave in between is
// the previous wave's size plus a random increment.
func (s *WaveSystem) SpawnWave(w *ecs.World, n int) int {
	a := w.Arena
	waves := w.Tuning.Waves
	wv := &w.Waves

	count := 0
	switch {
	case n <= 1:
		for _, col := range waves.OpeningColumns {
			x := common.Clamp(col, 1, a.Width()-2)
			w.SpawnEnemy(component.Walker, x, a.Height()-2, randomDirection(w))
			count++
		}
	case n >= waves.Max:
		w.SpawnEnemy(component.Boss, a.Width()/2, a.Height()-3, randomDirection(w))
		count = 1
	default:
		count = wv.PriorTotal + waves.IncrementMin + w.Rand.Intn(waves.IncrementMax-waves.IncrementMin+1)
		for _, kind := range s.plan(w, n, count) {
			x, y := spawnPoint(w, kind)
			w.SpawnEnemy(kind, x, y, randomDirection(w))
		}
	}

	wv.PriorTotal = count
	wv.Spawned = count
	wv.InProgress = true
	w.Emit(ecs.EventWaveStarted, ecs.WaveEvent{Wave: n, Count: count})
	return count
}

func (s *WaveSystem) plan(w *ecs.World, wave, count int) []component.EnemyKind {
	if s.Script != nil {
		kinds, err := s.Script.Plan(wave, count, w.Rand)
		if err == nil {
			return kinds
		}
		if s.OnScriptError != nil {
			s.OnScriptError(err)
		}
	}

	kinds := make([]component.EnemyKind, count)
	for i := range kinds {
		kinds[i] = component.RegularKinds[w.Rand.Intn(len(component.RegularKinds))]
	}
	return kinds
}

func randomDirection(w *ecs.World) int {
	if w.Rand.Intn(2) == 0 {
		return -1
	}
	return 1
}

// spawnPoint places fliers on an empty cell in the upper half of the arena,
// scanning row by row when random samples keep landing on solid cells, and
// everything else on the ground row or on top of a random platform.
func spawnPoint(w *ecs.World, kind component.EnemyKind) (int, int) {
	a := w.Arena
	if kind == component.Flier {
		top, bottom := 2, min(1+a.Height()/2, a.Height()-2)
		for attempt := 0; attempt < flierSpawnAttempts; attempt++ {
			x := 1 + w.Rand.Intn(a.Width()-2)
			y := top + w.Rand.Intn(bottom-top+1)
			if !a.IsSolid(x, y) {
				return x, y
			}
		}
		for y := top; y <= bottom; y++ {
			for x := 1; x < a.Width()-1; x++ {
				if !a.IsSolid(x, y) {
					return x, y
				}
			}
		}
		return a.Width() / 2, top
	}

	groundX := 1 + w.Rand.Intn(a.Width()-2)
	groundY := a.Height() - 2
	if w.Rand.Intn(2) == 0 {
		return groundX, groundY
	}

	rows := a.PlatformRows()
	if len(rows) == 0 {
		return groundX, groundY
	}
	row := rows[w.Rand.Intn(len(rows))]
	cols := a.PlatformColumns(row)
	if len(cols) == 0 {
		return groundX, groundY
	}
	return cols[w.Rand.Intn(len(cols))], row - 1
}
