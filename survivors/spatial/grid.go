// Package spatial provides a fixed-capacity uniform grid for
// neighborhood queries over enemies. It allocates once and is rebuilt
// every frame from current positions, so no remove path exists.
package spatial

import (
	"math"

	"github.com/yohamta/donburi"
)

// entriesPerCell bounds each cell. Inserts into a full cell are
// dropped; with 64-unit cells and enemy sizes this only happens in
// pathological stacks, where missing a neighbor is harmless.
const entriesPerCell = 32

type entry struct {
	Ent  donburi.Entity
	X, Y float64
}

type cell struct {
	Count   uint8
	Entries [entriesPerCell]entry
}

// Grid is a dense 2D bucket grid stored as one flat slice,
// index = cy*cols + cx. Positions are snapshotted at insert time so
// queries see one consistent frame.
type Grid struct {
	cols, rows int
	cellSize   float64
	cells      []cell
}

// NewGrid sizes the grid to cover a world of w by h units.
func NewGrid(w, h, cellSize float64) *Grid {
	cols := int(math.Ceil(w / cellSize))
	rows := int(math.Ceil(h / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Grid{
		cols:     cols,
		rows:     rows,
		cellSize: cellSize,
		cells:    make([]cell, cols*rows),
	}
}

// Reset empties every cell without freeing them.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].Count = 0
	}
}

func (g *Grid) clampCell(v, max int) int {
	if v < 0 {
		return 0
	}
	if v >= max {
		return max - 1
	}
	return v
}

// Insert files an entity under its position. Out-of-world positions
// clamp to the border cells; a full cell drops the insert.
func (g *Grid) Insert(ent donburi.Entity, x, y float64) bool {
	cx := g.clampCell(int(x/g.cellSize), g.cols)
	cy := g.clampCell(int(y/g.cellSize), g.rows)
	c := &g.cells[cy*g.cols+cx]
	if int(c.Count) >= entriesPerCell {
		return false
	}
	c.Entries[c.Count] = entry{Ent: ent, X: x, Y: y}
	c.Count++
	return true
}

// ForEachNeighbor visits every entity whose snapshot lies within
// radius of (x, y). The callback may not call back into the grid.
func (g *Grid) ForEachNeighbor(x, y, radius float64, fn func(ent donburi.Entity, ex, ey float64)) {
	minCX := g.clampCell(int((x-radius)/g.cellSize), g.cols)
	maxCX := g.clampCell(int((x+radius)/g.cellSize), g.cols)
	minCY := g.clampCell(int((y-radius)/g.cellSize), g.rows)
	maxCY := g.clampCell(int((y+radius)/g.cellSize), g.rows)
	r2 := radius * radius
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			c := &g.cells[cy*g.cols+cx]
			for i := uint8(0); i < c.Count; i++ {
				e := &c.Entries[i]
				dx, dy := e.X-x, e.Y-y
				if dx*dx+dy*dy <= r2 {
					fn(e.Ent, e.X, e.Y)
				}
			}
		}
	}
}

// Nearest returns the closest entity within maxR of (x, y). skip, when
// non-nil, excludes entities from consideration.
func (g *Grid) Nearest(x, y, maxR float64, skip func(donburi.Entity) bool) (donburi.Entity, float64, float64, bool) {
	var best entry
	found := false
	bestD2 := maxR * maxR
	minCX := g.clampCell(int((x-maxR)/g.cellSize), g.cols)
	maxCX := g.clampCell(int((x+maxR)/g.cellSize), g.cols)
	minCY := g.clampCell(int((y-maxR)/g.cellSize), g.rows)
	maxCY := g.clampCell(int((y+maxR)/g.cellSize), g.rows)
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			c := &g.cells[cy*g.cols+cx]
			for i := uint8(0); i < c.Count; i++ {
				e := &c.Entries[i]
				if skip != nil && skip(e.Ent) {
					continue
				}
				dx, dy := e.X-x, e.Y-y
				d2 := dx*dx + dy*dy
				if d2 <= bestD2 {
					bestD2 = d2
					best = *e
					found = true
				}
			}
		}
	}
	return best.Ent, best.X, best.Y, found
}

// Count reports live entries, for tests and debug overlays.
func (g *Grid) Count() int {
	n := 0
	for i := range g.cells {
		n += int(g.cells[i].Count)
	}
	return n
}
