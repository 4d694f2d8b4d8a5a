package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/asciiknight/ecs/component"
	"github.com/milk9111/asciiknight/sim"
)

var tintColors = map[sim.Tint]color.Color{
	sim.TintTerrain: colornames.Lightgrey,
	sim.TintPlayer:  colornames.White,
	sim.TintAttack:  colornames.Orange,
	sim.TintWarning: colornames.Red,
	sim.TintWalker:  colornames.Limegreen,
	sim.TintJumper:  colornames.Yellow,
	sim.TintFlier:   colornames.Cyan,
	sim.TintCrawler: colornames.Magenta,
	sim.TintBoss:    colornames.Red,
}

var (
	wallFill     = color.RGBA{R: 0x30, G: 0x30, B: 0x38, A: 0xff}
	platformFill = color.RGBA{R: 0x50, G: 0x40, B: 0x28, A: 0xff}
)

func drawRaster(screen *ebiten.Image, r *sim.Raster, face ebtext.Face, top int) {
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			c := r.At(x, y)
			px := float32(x * cellWidth)
			py := float32(top + y*cellHeight)

			if c.Tint == sim.TintTerrain {
				switch c.Glyph {
				case '#':
					vector.FillRect(screen, px, py, cellWidth, cellHeight, wallFill, false)
				case '=':
					vector.FillRect(screen, px, py, cellWidth, cellHeight/3, platformFill, false)
				}
				continue
			}
			drawGlyph(screen, face, c.Glyph, float64(px), float64(py), tintColors[c.Tint])
		}
	}
}

func drawGlyph(screen *ebiten.Image, face ebtext.Face, glyph rune, x, y float64, clr color.Color) {
	if glyph == ' ' {
		return
	}
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(screen, string(glyph), face, op)
}

func hudLine(snap sim.Snapshot) string {
	line := fmt.Sprintf("HP: %d/%d | Wave: %d/%d | Enemies: %d | Style: %s",
		snap.Player.HP, snap.Player.MaxHP, snap.Wave, snap.MaxWaves, snap.EnemyCount, snap.Style)
	if snap.Intermission > 0 {
		line += fmt.Sprintf(" | Next wave in %d", snap.Intermission)
	}
	return line
}

func drawHUD(screen *ebiten.Image, snap sim.Snapshot, face ebtext.Face) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(4, 2)
	op.ColorScale.ScaleWithColor(colornames.White)
	ebtext.Draw(screen, hudLine(snap), face, op)

	if !snap.Outcome.Terminal() {
		return
	}
	msg := "GAME OVER! Press Enter to exit"
	if snap.Outcome == component.Victory {
		msg = "YOU WIN! Press Enter to exit"
	}
	op = &ebtext.DrawOptions{}
	op.GeoM.Translate(4, cellHeight+2)
	op.ColorScale.ScaleWithColor(colornames.Yellow)
	ebtext.Draw(screen, msg, face, op)
}
