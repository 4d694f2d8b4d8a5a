package system

import (
	"github.com/milk9111/asciiknight/ecs"
	"github.com/milk9111/asciiknight/ecs/component"
)

// Wrap sequences. Steps 1-4 carry a crawler from a floor edge around to
// the underside of the same tile, steps 5-8 from a ceiling edge to its top.
const (
	wrapToCeiling = 1
	wrapToFloor   = 5
)

func updateCrawler(w *ecs.World, e *component.Enemy, st *component.CrawlerState) {
	if st.Wrapping() {
		stepWrap(e, st)
		return
	}

	switch st.Surface {
	case component.SurfaceFloor:
		crawlFlat(w, e, st, 1)
	case component.SurfaceCeiling:
		crawlFlat(w, e, st, -1)
	case component.SurfaceRightWall:
		crawlWall(w, e, st, 1)
	case component.SurfaceLeftWall:
		crawlWall(w, e, st, -1)
	}
}

// crawlFlat moves along a floor (side 1, surface below) or a ceiling
// (side -1, surface above).
func crawlFlat(w *ecs.World, e *component.Enemy, st *component.CrawlerState, side int) {
	a := w.Arena
	next := e.X + e.VelocityX

	switch {
	case next <= 0 || next >= a.Width()-1 || a.IsSolid(next, e.Y):
		mountWall(e, st, side)
	case a.IsSolid(next, e.Y+side):
		e.X = next
	case a.IsSolid(next+e.VelocityX, e.Y):
		mountWall(e, st, side)
	case side > 0:
		st.WrapStep = wrapToCeiling
	default:
		st.WrapStep = wrapToFloor
	}
}

// mountWall switches onto the wall ahead. From a floor the crawler climbs,
// from a ceiling it descends.
func mountWall(e *component.Enemy, st *component.CrawlerState, side int) {
	if e.VelocityX > 0 {
		st.Surface = component.SurfaceRightWall
	} else {
		st.Surface = component.SurfaceLeftWall
	}
	e.VelocityX = 0
	e.VelocityY = -side
}

// crawlWall moves along a wall on the right (side 1) or left (side -1).
func crawlWall(w *ecs.World, e *component.Enemy, st *component.CrawlerState, side int) {
	a := w.Arena
	next := e.Y + e.VelocityY
	inside := next > 0 && next < a.Height()-1

	switch {
	case inside && a.IsSolid(e.X, next):
		e.VelocityY = -e.VelocityY
	case inside && a.IsSolid(e.X+side, next):
		e.Y = next
	case e.VelocityY < 0 && a.IsSolid(e.X, e.Y-1):
		st.Surface = component.SurfaceCeiling
		e.VelocityX = -side
		e.VelocityY = 0
	case e.VelocityY > 0 && a.IsSolid(e.X, e.Y+1):
		st.Surface = component.SurfaceFloor
		e.VelocityX = -side
		e.VelocityY = 0
	default:
		e.VelocityY = -e.VelocityY
	}
}

// stepWrap performs one frame of an edge wrap: out past the edge, two
// cells around it, then back under (or over) the tile facing the other way.
func stepWrap(e *component.Enemy, st *component.CrawlerState) {
	vertical := 1
	if st.WrapStep >= wrapToFloor {
		vertical = -1
	}

	switch st.WrapStep - wrapBase(st.WrapStep) {
	case 0:
		e.X += e.VelocityX
	case 1, 2:
		e.Y += vertical
	case 3:
		e.X -= e.VelocityX
		e.VelocityX = -e.VelocityX
		if vertical > 0 {
			st.Surface = component.SurfaceCeiling
		} else {
			st.Surface = component.SurfaceFloor
		}
		st.WrapStep = 0
		return
	}
	st.WrapStep++
}

func wrapBase(step int) int {
	if step >= wrapToFloor {
		return wrapToFloor
	}
	return wrapToCeiling
}
