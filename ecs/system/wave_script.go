package system

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/asciiknight/ecs/component"
	"github.com/milk9111/asciiknight/prefabs"
)

// WaveScript is a compiled tengo program that chooses the enemy kinds of
// an intermediate wave. The script sees `wave`, `count`, `kinds` and a
// `roll(n)` function backed by the world's random source, and must leave
// an array of `count` kind names in `plan`.
type WaveScript struct {
	name     string
	compiled *tengo.Compiled
	rng      *rand.Rand
}

// LoadWaveScript compiles a script from the prefab script directory.
func LoadWaveScript(name string) (*WaveScript, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("wave script %s: %w", name, err)
	}
	return NewWaveScript(name, src)
}

// NewWaveScript compiles src.
func NewWaveScript(name string, src []byte) (*WaveScript, error) {
	ws := &WaveScript{name: name}

	kinds := make([]any, 0, len(component.RegularKinds))
	for _, k := range component.RegularKinds {
		kinds = append(kinds, k.String())
	}

	script := tengo.NewScript(src)
	_ = script.Add("wave", 0)
	_ = script.Add("count", 0)
	_ = script.Add("kinds", kinds)
	_ = script.Add("roll", &tengo.UserFunction{Name: "roll", Value: ws.roll})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("wave script %s: %w", name, err)
	}
	ws.compiled = compiled
	return ws, nil
}

func (ws *WaveScript) Name() string {
	if ws == nil {
		return ""
	}
	return ws.name
}

func (ws *WaveScript) roll(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 1 {
		return nil, tengo.ErrWrongNumArguments
	}
	n, ok := tengo.ToInt(args[0])
	if !ok || n <= 0 || ws.rng == nil {
		return &tengo.Int{Value: 0}, nil
	}
	return &tengo.Int{Value: int64(ws.rng.Intn(n))}, nil
}

// Plan runs the script for wave and returns exactly count regular kinds.
func (ws *WaveScript) Plan(wave, count int, rng *rand.Rand) ([]component.EnemyKind, error) {
	if ws == nil || ws.compiled == nil {
		return nil, fmt.Errorf("nil wave script")
	}

	ws.rng = rng
	defer func() { ws.rng = nil }()

	if err := ws.compiled.Set("wave", wave); err != nil {
		return nil, err
	}
	if err := ws.compiled.Set("count", count); err != nil {
		return nil, err
	}
	if err := ws.compiled.Run(); err != nil {
		return nil, fmt.Errorf("wave script %s: %w", ws.name, err)
	}
	if !ws.compiled.IsDefined("plan") {
		return nil, fmt.Errorf("wave script %s: plan not defined", ws.name)
	}

	raw := ws.compiled.Get("plan").Array()
	if len(raw) != count {
		return nil, fmt.Errorf("wave script %s: plan has %d entries, want %d", ws.name, len(raw), count)
	}

	kinds := make([]component.EnemyKind, 0, count)
	for i, v := range raw {
		s, _ := v.(string)
		k, ok := component.ParseEnemyKind(strings.TrimSpace(s))
		if !ok || k == component.Boss {
			return nil, fmt.Errorf("wave script %s: plan[%d] %q is not a regular enemy kind", ws.name, i, s)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
