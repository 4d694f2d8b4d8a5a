package sim

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/milk9111/asciiknight/arena"
	"github.com/milk9111/asciiknight/ecs/component"
	"github.com/milk9111/asciiknight/ecs/system"
	"github.com/milk9111/asciiknight/prefabs"
)

type config struct {
	arena     *arena.Arena
	tuning    prefabs.TuningSpec
	style     component.CombatStyle
	rng       *rand.Rand
	logger    zerolog.Logger
	script    *system.WaveScript
	scriptSet bool
}

// Option configures a Simulation.
type Option func(*config)

// WithArena replaces the default arena layout.
func WithArena(a *arena.Arena) Option {
	return func(c *config) { c.arena = a }
}

func WithTuning(t prefabs.TuningSpec) Option {
	return func(c *config) { c.tuning = t }
}

func WithStyle(s component.CombatStyle) Option {
	return func(c *config) { c.style = s }
}

// WithSeed seeds the simulation's random source. Two simulations built with
// the same seed and fed the same actions play out identically.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

func WithRand(r *rand.Rand) Option {
	return func(c *config) { c.rng = r }
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithWaveScript sets the wave composition script, overriding the one named
// in the tuning. A nil script forces the built-in uniform draw.
func WithWaveScript(ws *system.WaveScript) Option {
	return func(c *config) {
		c.script = ws
		c.scriptSet = true
	}
}
