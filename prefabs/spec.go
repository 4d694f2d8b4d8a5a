package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// TuningFile is the spec holding every gameplay constant.
const TuningFile = "tuning.yaml"

// LoadSpec decodes a YAML spec on top of base, so keys missing from the
// file keep base's value.
func LoadSpec[T any](filename string, base T) (T, error) {
	data, err := Load(filename)
	if err != nil {
		return base, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	spec := base
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return base, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PhysicsSpec struct {
	Gravity      int `yaml:"gravity"`
	MaxFallSpeed int `yaml:"max_fall_speed"`
	JumpVelocity int `yaml:"jump_velocity"`
}

type PlayerSpec struct {
	MaxHP int `yaml:"max_hp"`
}

type CombatSpec struct {
	CooldownFrames      int `yaml:"cooldown_frames"`
	LongDurationFrames  int `yaml:"long_duration_frames"`
	ShortDurationFrames int `yaml:"short_duration_frames"`
}

type EnemySpec struct {
	HP            int `yaml:"hp"`
	ChaseRange    int `yaml:"chase_range"`
	JumpRange     int `yaml:"jump_range"`
	FlierInterval int `yaml:"flier_interval"`
	FlierShift    int `yaml:"flier_shift"`
}

type BossSpec struct {
	MaxHP          int `yaml:"max_hp"`
	AttackInterval int `yaml:"attack_interval"`
	WindupFrames   int `yaml:"windup_frames"`
	AOERange       int `yaml:"aoe_range"`
	Damage         int `yaml:"damage"`
}

type WaveSpec struct {
	Max            int    `yaml:"max"`
	DelayMS        int    `yaml:"delay_ms"`
	IncrementMin   int    `yaml:"increment_min"`
	IncrementMax   int    `yaml:"increment_max"`
	OpeningColumns []int  `yaml:"opening_columns"`
	Script         string `yaml:"script"`
}

// TuningSpec groups the constants the simulation reads each frame.
type TuningSpec struct {
	FrameDelayMS int         `yaml:"frame_delay_ms"`
	Physics      PhysicsSpec `yaml:"physics"`
	Player       PlayerSpec  `yaml:"player"`
	Combat       CombatSpec  `yaml:"combat"`
	Enemy        EnemySpec   `yaml:"enemy"`
	Boss         BossSpec    `yaml:"boss"`
	Waves        WaveSpec    `yaml:"waves"`
}

// DefaultTuning mirrors the embedded tuning.yaml.
func DefaultTuning() TuningSpec {
	return TuningSpec{
		FrameDelayMS: 16,
		Physics:      PhysicsSpec{Gravity: 1, MaxFallSpeed: 5, JumpVelocity: -4},
		Player:       PlayerSpec{MaxHP: 5},
		Combat:       CombatSpec{CooldownFrames: 10, LongDurationFrames: 20, ShortDurationFrames: 2},
		Enemy:        EnemySpec{HP: 1, ChaseRange: 10, JumpRange: 25, FlierInterval: 180, FlierShift: 3},
		Boss:         BossSpec{MaxHP: 5, AttackInterval: 30, WindupFrames: 10, AOERange: 5, Damage: 3},
		Waves: WaveSpec{
			Max:            5,
			DelayMS:        2000,
			IncrementMin:   2,
			IncrementMax:   4,
			OpeningColumns: []int{20, 100},
		},
	}
}

// LoadTuningSpec reads tuning.yaml on top of DefaultTuning, so keys missing
// from the file keep their default value.
func LoadTuningSpec() (TuningSpec, error) {
	return LoadTuningFrom(TuningFile)
}

func LoadTuningFrom(name string) (TuningSpec, error) {
	spec, err := LoadSpec(name, DefaultTuning())
	if err != nil {
		return spec, err
	}
	if err := spec.Validate(); err != nil {
		return spec, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return spec, nil
}

// WaveDelayFrames converts the inter-wave delay into simulation frames.
func (t TuningSpec) WaveDelayFrames() int {
	if t.FrameDelayMS <= 0 {
		return 0
	}
	return t.Waves.DelayMS / t.FrameDelayMS
}

func (t TuningSpec) Validate() error {
	var errs []error
	positive := []struct {
		name string
		v    int
	}{
		{"frame_delay_ms", t.FrameDelayMS},
		{"physics.gravity", t.Physics.Gravity},
		{"physics.max_fall_speed", t.Physics.MaxFallSpeed},
		{"player.max_hp", t.Player.MaxHP},
		{"combat.long_duration_frames", t.Combat.LongDurationFrames},
		{"combat.short_duration_frames", t.Combat.ShortDurationFrames},
		{"enemy.hp", t.Enemy.HP},
		{"enemy.flier_interval", t.Enemy.FlierInterval},
		{"boss.max_hp", t.Boss.MaxHP},
		{"boss.attack_interval", t.Boss.AttackInterval},
		{"boss.windup_frames", t.Boss.WindupFrames},
	}
	for _, p := range positive {
		if p.v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", p.name, p.v))
		}
	}
	if t.Physics.JumpVelocity >= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_velocity must be negative, got %d", t.Physics.JumpVelocity))
	}
	if t.Combat.CooldownFrames < 0 {
		errs = append(errs, fmt.Errorf("combat.cooldown_frames must not be negative, got %d", t.Combat.CooldownFrames))
	}
	if t.Boss.MaxHP <= t.Enemy.HP {
		errs = append(errs, fmt.Errorf("boss.max_hp (%d) must exceed enemy.hp (%d)", t.Boss.MaxHP, t.Enemy.HP))
	}
	if t.Waves.Max < 2 {
		errs = append(errs, fmt.Errorf("waves.max must be at least 2, got %d", t.Waves.Max))
	}
	if t.Waves.IncrementMin < 0 || t.Waves.IncrementMin > t.Waves.IncrementMax {
		errs = append(errs, fmt.Errorf("waves increment range [%d,%d] is invalid", t.Waves.IncrementMin, t.Waves.IncrementMax))
	}
	if len(t.Waves.OpeningColumns) == 0 {
		errs = append(errs, errors.New("waves.opening_columns must not be empty"))
	}
	return errors.Join(errs...)
}
