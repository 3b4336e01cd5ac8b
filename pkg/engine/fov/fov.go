// Package fov implements eight-octant recursive shadow-casting field of
// view with an optional symmetry condition.
//
// Grounded on the lifecycle naming of
// jamesread-TheDarkStation's pkg/engine/world/fov.go CalculateFOV /
// RevealFOV (origin cell, radius, reset-then-recompute), but the
// underlying scan replaces the teacher's Chebyshev-radius +
// Bresenham-line-of-sight approach with true recursive shadow-casting,
// which handles corridors and corners precisely instead of by raw
// distance.
package fov

// State is a cell's visibility state in a Visibility Grid.
type State byte

const (
	CannotSee State = iota
	Visible
	Seen
)

// Grid is a Visibility Grid parallel in shape to a Tile Grid.
type Grid struct {
	Width, Height int
	cells         []State
}

// NewGrid creates a w*h visibility grid, every cell CannotSee.
func NewGrid(w, h int) *Grid {
	return &Grid{Width: w, Height: h, cells: make([]State, w*h)}
}

func (vg *Grid) index(x, y int) int { return x + y*vg.Width }

// At returns the visibility state at (x,y), or CannotSee out of bounds.
func (vg *Grid) At(x, y int) State {
	if x < 0 || x >= vg.Width || y < 0 || y >= vg.Height {
		return CannotSee
	}
	return vg.cells[vg.index(x, y)]
}

func (vg *Grid) set(x, y int, s State) {
	if x < 0 || x >= vg.Width || y < 0 || y >= vg.Height {
		return
	}
	vg.cells[vg.index(x, y)] = s
}

// beginUpdate demotes every currently Visible cell to Seen. Called at
// the start of every recalculation, per the Visibility Grid invariant.
func (vg *Grid) beginUpdate() {
	for i, s := range vg.cells {
		if s == Visible {
			vg.cells[i] = Seen
		}
	}
}

const maxRecursion = 100

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// octant multipliers: xx,xy,yx,yy transform (col,row) column-space
// coordinates into the actual dx,dy for each of the 8 symmetric sectors.
var octants = [8][4]int{
	{1, 0, 0, 1}, {0, 1, 1, 0},
	{0, -1, 1, 0}, {-1, 0, 0, 1},
	{-1, 0, 0, -1}, {0, -1, -1, 0},
	{0, 1, -1, 0}, {1, 0, 0, -1},
}

// Calculate recomputes visibility from origin (ox,oy) out to radius (a
// negative radius means unbounded, limited in practice by maxRecursion).
// isOpaque is a caller capability; the range test is built internally as
// a Chebyshev-distance check against radius and cannot be supplied by the
// caller. symmetric toggles the top/bottom boundary symmetry condition.
// The origin is always Visible.
func Calculate(vg *Grid, ox, oy, radius int, isOpaque func(x, y int) bool, symmetric bool) {
	vg.beginUpdate()
	vg.set(ox, oy, Visible)
	inRange := func(x, y int) bool {
		if radius < 0 {
			return true
		}
		dx, dy := abs(x-ox), abs(y-oy)
		if dx > dy {
			return dx <= radius
		}
		return dy <= radius
	}
	for _, oct := range octants {
		castLight(vg, ox, oy, 1, 1.0, 0.0, oct[0], oct[1], oct[2], oct[3], isOpaque, inRange, symmetric, 0)
	}
}

// castLight scans outward column by column within one octant's wedge,
// bounded by slopeStart (top) and slopeEnd (bottom). row is the starting
// column (distance from the origin). On a clear->opaque transition it
// recurses into the next column with the bottom vector raised to the
// opaque tile's edge, per the shadow-casting algorithm; on opaque->clear
// it narrows the current wedge's top and continues the same column.
func castLight(vg *Grid, ox, oy, row int, slopeStart, slopeEnd float64, xx, xy, yx, yy int, isOpaque func(int, int) bool, inRange func(int, int) bool, symmetric bool, depth int) {
	if slopeStart < slopeEnd || depth > maxRecursion {
		return
	}
	for j := row; j <= maxRecursion; j++ {
		dx, dy := -j-1, -j
		blocked := false
		for dx <= 0 {
			dx++
			mapX := ox + dx*xx + dy*xy
			mapY := oy + dx*yx + dy*yy
			leftSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rightSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if slopeStart < rightSlope {
				continue
			}
			if slopeEnd > leftSlope {
				break
			}

			if inRange(mapX, mapY) && visibleAtBoundary(dx, dy, slopeStart, slopeEnd, symmetric) {
				vg.set(mapX, mapY, Visible)
			}

			opaque := isOpaque(mapX, mapY)
			switch {
			case blocked:
				if opaque {
					continue
				}
				blocked = false
				slopeStart = rightSlope
			case opaque && j < maxRecursion:
				blocked = true
				castLight(vg, ox, oy, j+1, slopeStart, leftSlope, xx, xy, yx, yy, isOpaque, inRange, symmetric, depth+1)
				slopeStart = rightSlope
			}
		}
		if blocked {
			break
		}
	}
}

// visibleAtBoundary applies the symmetry condition at the wedge's top
// and bottom edges: a cell exactly on the boundary is visible only if
// the opposite-corner inequality holds, per §4.11. Interior cells are
// always visible; when symmetric is off the boundary cells are too.
func visibleAtBoundary(dx, dy int, slopeStart, slopeEnd float64, symmetric bool) bool {
	if !symmetric {
		return true
	}
	rightSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)
	leftSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
	onTop := rightSlope == slopeStart
	onBottom := leftSlope == slopeEnd
	if onTop && slopeEnd*float64(dx) > slopeStart*float64(dy) {
		return false
	}
	if onBottom && slopeStart*float64(dx) < slopeEnd*float64(dy) {
		return false
	}
	return true
}
