// Package arena holds the static tile grid every physics and AI routine
// queries. An Arena is immutable once built.
package arena

import (
	"fmt"

	"github.com/milk9111/asciiknight/levels"
)

// Cell is the kind of a single grid tile.
type Cell uint8

const (
	Empty Cell = iota
	Wall
	Platform
)

// Glyph is the character a text renderer uses for the cell.
func (c Cell) Glyph() rune {
	switch c {
	case Wall:
		return '#'
	case Platform:
		return '='
	}
	return ' '
}

func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Platform:
		return "platform"
	}
	return "empty"
}

// Arena is a fixed-size grid with a wall border.
type Arena struct {
	name   string
	width  int
	height int
	cells  []Cell

	platformRows []int
	spawnX       int
	spawnY       int
}

// New returns an arena of the given size with wall borders, the listed
// platforms and the player spawn on the floor in the middle. The grid does
// not change afterwards.
func New(width, height int, platforms ...levels.Platform) *Arena {
	a := &Arena{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		spawnX: width / 2,
		spawnY: height - 2,
	}
	for x := 0; x < width; x++ {
		a.cells[x] = Wall
		a.cells[(height-1)*width+x] = Wall
	}
	for y := 0; y < height; y++ {
		a.cells[y*width] = Wall
		a.cells[y*width+width-1] = Wall
	}
	for _, p := range platforms {
		a.addPlatform(p.Row, p.From, p.To)
	}
	return a
}

// addPlatform lays a platform on row over columns [from, to). The span is
// clipped to the interior so the border stays wall.
func (a *Arena) addPlatform(row, from, to int) {
	if row <= 0 || row >= a.height-1 {
		return
	}
	if from < 1 {
		from = 1
	}
	if to > a.width-1 {
		to = a.width - 1
	}
	if from >= to {
		return
	}
	for x := from; x < to; x++ {
		a.cells[row*a.width+x] = Platform
	}
	for _, r := range a.platformRows {
		if r == row {
			return
		}
	}
	a.platformRows = append(a.platformRows, row)
}

// FromLevel builds an arena from a level description.
func FromLevel(l *levels.Level) (*Arena, error) {
	if l == nil {
		return nil, fmt.Errorf("arena: nil level")
	}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("arena: %w", err)
	}
	a := New(l.Width, l.Height, l.Platforms...)
	a.name = l.Name
	a.spawnX, a.spawnY = l.SpawnX, l.SpawnY
	return a, nil
}

// Load builds the arena for an embedded level file.
func Load(name string) (*Arena, error) {
	lvl, err := levels.LoadLevelFromFS(name)
	if err != nil {
		return nil, fmt.Errorf("arena: load %s: %w", name, err)
	}
	return FromLevel(lvl)
}

// Default returns the standard 120x30 arena.
func Default() *Arena {
	a, err := Load(levels.DefaultLevel)
	if err != nil {
		panic(err)
	}
	return a
}

func (a *Arena) Name() string { return a.name }
func (a *Arena) Width() int   { return a.width }
func (a *Arena) Height() int  { return a.height }

// Spawn is the player start position.
func (a *Arena) Spawn() (x, y int) { return a.spawnX, a.spawnY }

// InBounds reports whether (x, y) lies on the grid.
func (a *Arena) InBounds(x, y int) bool {
	return x >= 0 && x < a.width && y >= 0 && y < a.height
}

// CellAt returns the tile at (x, y). Off-grid coordinates read as Wall.
func (a *Arena) CellAt(x, y int) Cell {
	if !a.InBounds(x, y) {
		return Wall
	}
	return a.cells[y*a.width+x]
}

// IsSolid is the shared collision query: walls, platforms and anything off
// the grid block movement.
func (a *Arena) IsSolid(x, y int) bool {
	return a.CellAt(x, y) != Empty
}

// IsWall reports whether (x, y) blocks upward movement. Platforms do not,
// which lets jumps pass through them from below.
func (a *Arena) IsWall(x, y int) bool {
	return a.CellAt(x, y) == Wall
}

// PlatformRows lists the rows carrying platforms in the order they were laid.
func (a *Arena) PlatformRows() []int {
	return append([]int(nil), a.platformRows...)
}

// PlatformColumns lists interior columns on row that hold a platform tile.
func (a *Arena) PlatformColumns(row int) []int {
	if row <= 0 || row >= a.height-1 {
		return nil
	}
	var cols []int
	for x := 1; x < a.width-1; x++ {
		if a.cells[row*a.width+x] == Platform {
			cols = append(cols, x)
		}
	}
	return cols
}
