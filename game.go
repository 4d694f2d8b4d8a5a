package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/asciiknight/arena"
	"github.com/milk9111/asciiknight/ecs/component"
	"github.com/milk9111/asciiknight/prefabs"
	"github.com/milk9111/asciiknight/sim"
)

const (
	cellWidth  = 8
	cellHeight = 14
	hudHeight  = 2 * cellHeight
)

type Config struct {
	Arena  *arena.Arena
	Tuning prefabs.TuningSpec
	// Style is zero when the player should pick it from the menu.
	Style component.CombatStyle
	Seed  int64
	Debug bool
}

type Game struct {
	cfg Config
	log zerolog.Logger

	sim     *sim.Simulation
	menu    *ebitenui.UI
	picked  component.CombatStyle
	input   *Input
	watcher *prefabs.Watcher
	face    ebtext.Face

	width, height float64
	err           error
}

func NewGame(cfg Config, logger zerolog.Logger) *Game {
	g := &Game{
		cfg:    cfg,
		log:    logger,
		input:  NewInput(),
		face:   ebtext.NewGoXFace(basicfont.Face7x13),
		width:  float64(cfg.Arena.Width() * cellWidth),
		height: float64(cfg.Arena.Height()*cellHeight + hudHeight),
	}
	if cfg.Style != 0 {
		g.err = g.start(cfg.Style)
	} else {
		g.menu = NewStyleMenu(g)
	}
	return g
}

func (g *Game) start(style component.CombatStyle) error {
	s, err := sim.New(
		sim.WithArena(g.cfg.Arena),
		sim.WithTuning(g.cfg.Tuning),
		sim.WithStyle(style),
		sim.WithSeed(g.cfg.Seed),
		sim.WithLogger(g.log),
	)
	if err != nil {
		return fmt.Errorf("start run: %w", err)
	}
	g.sim = s
	g.menu = nil
	return nil
}

// pick is called by the style menu.
func (g *Game) pick(style component.CombatStyle) {
	g.picked = style
}

func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}

	if g.sim == nil {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.Key1):
			g.pick(component.StyleCooldown)
		case inpututil.IsKeyJustPressed(ebiten.Key2):
			g.pick(component.StyleSpam)
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			return ebiten.Termination
		}
		if g.menu != nil {
			g.menu.Update()
		}
		if g.picked != 0 {
			return g.start(g.picked)
		}
		return nil
	}

	g.pollWatcher()

	if g.sim.Outcome().Terminal() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		return nil
	}

	g.sim.Step(g.input.Poll())
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		name, ok := g.watcher.Poll()
		if !ok {
			break
		}
		if err := g.sim.Reload(name); err != nil {
			g.log.Warn().Err(err).Str("file", name).Msg("reload failed")
		}
	}
	select {
	case err := <-g.watcher.Errors:
		g.log.Warn().Err(err).Msg("watcher")
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.sim == nil {
		if g.menu != nil {
			g.menu.Draw(screen)
		}
		return
	}

	drawRaster(screen, g.sim.Raster(), g.face, hudHeight)
	drawHUD(screen, g.sim.Snapshot(), g.face)

	if g.cfg.Debug {
		snap := g.sim.Snapshot()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("frame %d  tps %.1f  vy %d", snap.Frame, ebiten.ActualTPS(), g.sim.World().Player.VelocityY), int(g.width)-220, 0)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.width, g.height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
