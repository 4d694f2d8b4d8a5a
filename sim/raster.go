package sim

import (
	"github.com/milk9111/asciiknight/arena"
	"github.com/milk9111/asciiknight/ecs/component"
)

// Tint tells a renderer how to colour a raster cell.
type Tint uint8

const (
	TintTerrain Tint = iota
	TintPlayer
	TintAttack
	TintWarning
	TintWalker
	TintJumper
	TintFlier
	TintCrawler
	TintBoss
)

// EnemyTint is the tint an enemy of kind is drawn with.
func EnemyTint(kind component.EnemyKind) Tint {
	switch kind {
	case component.Jumper:
		return TintJumper
	case component.Flier:
		return TintFlier
	case component.Crawler:
		return TintCrawler
	case component.Boss:
		return TintBoss
	default:
		return TintWalker
	}
}

type RasterCell struct {
	Glyph rune
	Tint  Tint
}

// Raster is the frame composed into a character grid. Layers from top to
// bottom: attack, enemies and boss warnings, player, terrain.
type Raster struct {
	Width, Height int
	Cells         []RasterCell
}

func (r *Raster) At(x, y int) RasterCell {
	if x < 0 || y < 0 || x >= r.Width || y >= r.Height {
		return RasterCell{Glyph: ' '}
	}
	return r.Cells[y*r.Width+x]
}

// Row returns line y as a string.
func (r *Raster) Row(y int) string {
	line := make([]rune, r.Width)
	for x := range line {
		line[x] = r.At(x, y).Glyph
	}
	return string(line)
}

func (r *Raster) set(x, y int, c RasterCell) {
	if x < 0 || y < 0 || x >= r.Width || y >= r.Height {
		return
	}
	r.Cells[y*r.Width+x] = c
}

// Raster composes the current frame.
func (s *Simulation) Raster() *Raster {
	a := s.world.Arena
	snap := s.Snapshot()
	r := &Raster{
		Width:  a.Width(),
		Height: a.Height(),
		Cells:  make([]RasterCell, a.Width()*a.Height()),
	}

	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			r.set(x, y, RasterCell{Glyph: a.CellAt(x, y).Glyph(), Tint: TintTerrain})
		}
	}

	p := snap.Player
	r.set(p.X, p.Y, RasterCell{Glyph: '@', Tint: TintPlayer})

	for _, e := range snap.Enemies {
		if e.Warning > 0 {
			drawWarning(r, a, e, p)
		}
	}
	for _, e := range snap.Enemies {
		tint := EnemyTint(e.Kind)
		if e.Kind != component.Boss {
			r.set(e.X, e.Y, RasterCell{Glyph: e.Glyph, Tint: tint})
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				r.set(e.X+dx, e.Y+dy, RasterCell{Glyph: e.Glyph, Tint: tint})
			}
		}
	}

	if atk := snap.Attack; atk != nil {
		for i, c := range atk.Cells {
			r.set(c.X, c.Y, RasterCell{Glyph: atk.Glyphs[i], Tint: TintAttack})
		}
	}
	return r
}

// drawWarning marks the empty cells of the boss's strike area, leaving its
// body and the player visible.
func drawWarning(r *Raster, a *arena.Arena, e EnemyView, p PlayerView) {
	for y := e.Y - e.Warning; y <= e.Y+e.Warning; y++ {
		for x := e.X - e.Warning; x <= e.X+e.Warning; x++ {
			if !a.InBounds(x, y) || a.CellAt(x, y) != arena.Empty {
				continue
			}
			if (x == p.X && y == p.Y) || (x >= e.X-1 && x <= e.X+1 && y >= e.Y-1 && y <= e.Y+1) {
				continue
			}
			r.set(x, y, RasterCell{Glyph: '*', Tint: TintWarning})
		}
	}
}
