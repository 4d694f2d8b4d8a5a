// Package sim is the external face of the simulation: build one with New,
// feed it one action per frame with Step and read back a Snapshot.
package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/milk9111/asciiknight/arena"
	"github.com/milk9111/asciiknight/ecs"
	"github.com/milk9111/asciiknight/ecs/component"
	"github.com/milk9111/asciiknight/ecs/system"
	"github.com/milk9111/asciiknight/levels"
	"github.com/milk9111/asciiknight/prefabs"
)

type Simulation struct {
	world   *ecs.World
	frame   *ecs.Scheduler
	waves   *system.WaveSystem
	log     zerolog.Logger
	events  []ecs.Event
	outcome component.Outcome

	// tuningMod is the modification time of the last tuning file reloaded.
	tuningMod time.Time
}

// New builds a run and spawns the first wave.
func New(opts ...Option) (*Simulation, error) {
	cfg := config{
		tuning: prefabs.DefaultTuning(),
		style:  component.StyleCooldown,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := cfg.tuning.Validate(); err != nil {
		return nil, fmt.Errorf("sim: tuning: %w", err)
	}
	if cfg.style != component.StyleCooldown && cfg.style != component.StyleSpam {
		return nil, fmt.Errorf("sim: unknown combat style %d", cfg.style)
	}
	if cfg.arena == nil {
		a, err := arena.Load(levels.DefaultLevel)
		if err != nil {
			return nil, fmt.Errorf("sim: %w", err)
		}
		cfg.arena = a
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Simulation{
		world: ecs.NewWorld(cfg.arena, cfg.tuning, cfg.style, cfg.rng),
		frame: system.NewFrameScheduler(),
		waves: system.NewWaveSystem(),
		log:   cfg.logger,
	}
	s.waves.OnScriptError = func(err error) {
		s.log.Warn().Err(err).Msg("wave script failed, using uniform draw")
	}
	if cfg.scriptSet {
		s.waves.Script = cfg.script
	} else {
		s.loadScript(cfg.tuning.Waves.Script)
	}

	s.log.Info().
		Str("arena", cfg.arena.Name()).
		Str("style", cfg.style.String()).
		Int("waves", cfg.tuning.Waves.Max).
		Msg("run started")

	s.waves.Update(s.world)
	s.collect()
	return s, nil
}

func (s *Simulation) loadScript(name string) {
	s.waves.Script = nil
	if name == "" {
		return
	}
	ws, err := system.LoadWaveScript(name)
	if err != nil {
		s.log.Warn().Err(err).Str("script", name).Msg("wave script not loaded")
		return
	}
	s.waves.Script = ws
}

// Step consumes one input action and advances the run by exactly one frame.
// Once the run is over it does nothing and keeps reporting the outcome.
func (s *Simulation) Step(action component.Action) component.Outcome {
	if s.outcome.Terminal() {
		s.events = nil
		return s.outcome
	}

	w := s.world
	w.Input = action
	s.frame.Update(w)
	w.Input = component.ActionNone
	s.waves.Update(w)
	w.Frame++

	s.collect()
	return s.outcome
}

func (s *Simulation) collect() {
	s.events = s.world.Events().Drain()
	s.logEvents(s.events)

	prev := s.outcome
	s.outcome = s.world.Outcome()
	if s.outcome != prev && s.outcome.Terminal() {
		s.log.Info().
			Str("outcome", s.outcome.String()).
			Int("frame", s.world.Frame).
			Int("wave", s.world.Waves.Current).
			Int("hp", s.world.Player.HP).
			Msg("run over")
	}
}

func (s *Simulation) logEvents(events []ecs.Event) {
	for _, evt := range events {
		switch data := evt.Data.(type) {
		case ecs.WaveEvent:
			s.log.Info().Str("event", string(evt.Type)).Int("frame", evt.Frame).
				Int("wave", data.Wave).Int("count", data.Count).Msg("wave")
		case ecs.EnemyEvent:
			s.log.Debug().Str("event", string(evt.Type)).Int("frame", evt.Frame).
				Str("kind", data.Kind.String()).Int("x", data.X).Int("y", data.Y).Int("hp", data.HP).Msg("enemy")
		case ecs.DamageEvent:
			s.log.Debug().Str("event", string(evt.Type)).Int("frame", evt.Frame).
				Str("kind", data.Source.String()).Int("amount", data.Amount).Int("hp", data.HP).Msg("player damaged")
		case ecs.StrikeEvent:
			s.log.Debug().Str("event", string(evt.Type)).Int("frame", evt.Frame).
				Int("x", data.X).Int("y", data.Y).Bool("hit", data.Hit).Msg("boss strike")
		default:
			s.log.Debug().Str("event", string(evt.Type)).Int("frame", evt.Frame).Msg("event")
		}
	}
}

// Events returns the events emitted by the last Step.
func (s *Simulation) Events() []ecs.Event {
	return s.events
}

func (s *Simulation) Outcome() component.Outcome {
	return s.outcome
}

// Frame is the number of frames stepped so far.
func (s *Simulation) Frame() int {
	return s.world.Frame
}

// Tuning returns the tuning in effect.
func (s *Simulation) Tuning() prefabs.TuningSpec {
	return s.world.Tuning
}

// SetTuning swaps the tuning between frames. Player health is capped to the
// new maximum. A changed wave script name reloads the script.
func (s *Simulation) SetTuning(t prefabs.TuningSpec) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("sim: tuning: %w", err)
	}

	w := s.world
	prevScript := w.Tuning.Waves.Script
	w.Tuning = t
	w.Player.MaxHP = t.Player.MaxHP
	if w.Player.HP > w.Player.MaxHP {
		w.Player.HP = w.Player.MaxHP
	}
	if t.Waves.Script != prevScript {
		s.loadScript(t.Waves.Script)
	}

	s.log.Info().Int("frame", w.Frame).Msg("tuning reloaded")
	return nil
}

// SetWaveScript replaces the wave composition script. Nil restores the
// uniform draw.
func (s *Simulation) SetWaveScript(ws *system.WaveScript) {
	s.waves.Script = ws
}

// World exposes the underlying simulation context.
func (s *Simulation) World() *ecs.World {
	return s.world
}
