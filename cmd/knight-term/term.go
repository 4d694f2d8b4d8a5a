package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/milk9111/asciiknight/arena"
	"github.com/milk9111/asciiknight/ecs"
	"github.com/milk9111/asciiknight/ecs/component"
	"github.com/milk9111/asciiknight/prefabs"
	"github.com/milk9111/asciiknight/sim"
)

const sampleRate = beep.SampleRate(44100)

// Term owns the tcell screen and the speaker for one session.
type Term struct {
	screen  tcell.Screen
	events  chan tcell.Event
	log     zerolog.Logger
	audio   bool
	watcher *prefabs.Watcher
}

func NewTerm(logger zerolog.Logger, sound bool) (*Term, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	t := &Term{
		screen: screen,
		events: make(chan tcell.Event, 100),
		log:    logger,
	}
	if sound {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
			logger.Warn().Err(err).Msg("audio disabled")
		} else {
			t.audio = true
		}
	}

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			t.events <- ev
		}
	}()
	return t, nil
}

func (t *Term) Close() {
	if t.audio {
		speaker.Close()
	}
	t.screen.Fini()
}

func (t *Term) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

var menuLines = []string{
	"=================================",
	"       ASCII KNIGHT GAME",
	"=================================",
	"",
	"Select Combat Style:",
	"",
	"1. Cooldown-based",
	"   - Attacks require cooldown between uses",
	"   - Strategic timing required",
	"",
	"2. Duration-based spam",
	"   - Attacks last for a short time",
	"   - Can be spammed rapidly",
	"",
	"Enter your choice (1 or 2), Esc to quit",
}

// ChooseStyle shows the combat style menu until 1 or 2 is pressed. It
// returns false if the player quits instead.
func (t *Term) ChooseStyle() (component.CombatStyle, bool) {
	for {
		t.screen.Clear()
		for i, line := range menuLines {
			t.text(8, 2+i, line, tcell.StyleDefault)
		}
		t.screen.Show()

		switch ev := (<-t.events).(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return 0, false
			}
			if ev.Key() == tcell.KeyRune {
				if style, err := component.ParseCombatStyle(string(ev.Rune())); err == nil {
					return style, true
				}
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// Play runs one game at the tuned frame rate until it is won or lost.
func (t *Term) Play(a *arena.Arena, tuning prefabs.TuningSpec, style component.CombatStyle, seed int64) error {
	s, err := sim.New(
		sim.WithArena(a),
		sim.WithTuning(tuning),
		sim.WithStyle(style),
		sim.WithSeed(seed),
		sim.WithLogger(t.log),
	)
	if err != nil {
		return err
	}

	frame := time.Duration(tuning.FrameDelayMS) * time.Millisecond
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	pending := component.ActionNone
	t.draw(s)
	for {
		select {
		case ev := <-t.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if action := keyAction(ev); action != component.ActionNone && pending != component.ActionQuit {
					pending = action
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}

		case <-ticker.C:
			t.pollWatcher(s, ticker)
			outcome := s.Step(pending)
			pending = component.ActionNone
			t.playEvents(s.Events())
			t.draw(s)
			if outcome.Terminal() {
				t.waitKey()
				return nil
			}
		}
	}
}

func (t *Term) pollWatcher(s *sim.Simulation, ticker *time.Ticker) {
	if t.watcher == nil {
		return
	}
	for {
		name, ok := t.watcher.Poll()
		if !ok {
			return
		}
		if err := s.Reload(name); err != nil {
			t.log.Warn().Err(err).Str("file", name).Msg("reload failed")
			continue
		}
		ticker.Reset(time.Duration(s.Tuning().FrameDelayMS) * time.Millisecond)
	}
}

func (t *Term) waitKey() {
	for ev := range t.events {
		if _, ok := ev.(*tcell.EventKey); ok {
			return
		}
	}
}

// keyAction maps a key to its game action: A/D move, W jumps, I/J/K/L
// attack up/left/down/right and Escape quits.
func keyAction(ev *tcell.EventKey) component.Action {
	switch ev.Key() {
	case tcell.KeyEscape:
		return component.ActionQuit
	case tcell.KeyLeft:
		return component.ActionMoveLeft
	case tcell.KeyRight:
		return component.ActionMoveRight
	case tcell.KeyUp:
		return component.ActionJump
	case tcell.KeyRune:
	default:
		return component.ActionNone
	}

	switch ev.Rune() {
	case 'a', 'A':
		return component.ActionMoveLeft
	case 'd', 'D':
		return component.ActionMoveRight
	case 'w', 'W', ' ':
		return component.ActionJump
	case 'i', 'I':
		return component.ActionAttackUp
	case 'j', 'J':
		return component.ActionAttackLeft
	case 'k', 'K':
		return component.ActionAttackDown
	case 'l', 'L':
		return component.ActionAttackRight
	}
	return component.ActionNone
}

var tintStyles = map[sim.Tint]tcell.Style{
	sim.TintTerrain: tcell.StyleDefault,
	sim.TintPlayer:  tcell.StyleDefault.Bold(true),
	sim.TintAttack:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
	sim.TintWarning: tcell.StyleDefault.Foreground(tcell.ColorRed),
	sim.TintWalker:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
	sim.TintJumper:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
	sim.TintFlier:   tcell.StyleDefault.Foreground(tcell.ColorAqua),
	sim.TintCrawler: tcell.StyleDefault.Foreground(tcell.ColorFuchsia),
	sim.TintBoss:    tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
}

func hudLine(snap sim.Snapshot) string {
	line := fmt.Sprintf("HP: %d | Wave: %d/%d | Enemies: %d | Style: %s",
		snap.Player.HP, snap.Wave, snap.MaxWaves, snap.EnemyCount, snap.Style)
	if snap.Intermission > 0 {
		line += fmt.Sprintf(" | Next wave in %d", snap.Intermission)
	}
	return line
}

func (t *Term) draw(s *sim.Simulation) {
	t.screen.Clear()
	snap := s.Snapshot()
	t.text(0, 0, hudLine(snap), tcell.StyleDefault)

	r := s.Raster()
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			c := r.At(x, y)
			t.screen.SetContent(x, y+1, c.Glyph, nil, tintStyles[c.Tint])
		}
	}

	switch snap.Outcome {
	case component.Victory:
		t.text(8, 3, "  YOU WIN!  Press any key to exit...  ", tcell.StyleDefault.Reverse(true))
	case component.Defeat:
		t.text(8, 3, " GAME OVER! Press any key to exit... ", tcell.StyleDefault.Reverse(true))
	}
	t.screen.Show()
}

type tone struct {
	freq float64
	dur  time.Duration
}

// toneFor picks the sound for a gameplay event, if it has one.
func toneFor(evt ecs.Event) (tone, bool) {
	switch evt.Type {
	case ecs.EventEnemyHit:
		return tone{freq: 660, dur: 40 * time.Millisecond}, true
	case ecs.EventEnemyKilled:
		return tone{freq: 880, dur: 50 * time.Millisecond}, true
	case ecs.EventPlayerDamaged:
		return tone{freq: 220, dur: 120 * time.Millisecond}, true
	case ecs.EventBossWindup:
		return tone{freq: 330, dur: 80 * time.Millisecond}, true
	case ecs.EventBossStrike:
		return tone{freq: 110, dur: 200 * time.Millisecond}, true
	case ecs.EventWaveStarted:
		return tone{freq: 523, dur: 150 * time.Millisecond}, true
	}
	return tone{}, false
}

func (t *Term) playEvents(events []ecs.Event) {
	if !t.audio {
		return
	}
	for _, evt := range events {
		tn, ok := toneFor(evt)
		if !ok {
			continue
		}
		sine, err := generators.SineTone(sampleRate, tn.freq)
		if err != nil {
			t.log.Debug().Err(err).Msg("tone")
			continue
		}
		speaker.Play(beep.Take(sampleRate.N(tn.dur), sine))
	}
}
