// Package maze implements the perfect-maze generator: a randomised
// wall-knocking walk over the odd-parity cell lattice that leaves
// exactly one path between any two corridor cells.
//
// Grounded on the BFS queue idiom of jamesread-TheDarkStation's
// pkg/game/generator/bsp.go (findFurthestCell), with the frontier kept as
// a slice used as a FIFO, and on spec.md §4.10's randomised-BFS
// wall-knocking description.
package maze

import (
	"fmt"

	"roguemap/pkg/engine/grid"
	"roguemap/pkg/engine/rng"
	"roguemap/pkg/mapgen/mapgenerr"
)

// Config holds the maze generator's tunables, the Go-native form of
// spec.md §6's maze configuration.
type Config struct {
	FillBorder bool
}

// DefaultConfig fills the outer ring with Rock, the conventional maze
// presentation.
func DefaultConfig() Config {
	return Config{FillBorder: true}
}

// Generate produces a w*h perfect maze: every interior odd-parity cell
// (1,1), (1,3), (3,1), ... is carved Corridor, and exactly one path
// connects any two of them. w and h must each be at least 3, since the
// lattice needs a one-cell border plus at least one interior cell.
func Generate(w, h int, cfg Config, r *rng.RNG) (*grid.Grid, error) {
	if r == nil {
		return nil, mapgenerr.ErrNullParameter
	}
	if w < 3 || h < 3 {
		return nil, fmt.Errorf("maze: dimensions must be at least 3x3: %w", mapgenerr.ErrInvalidConfig)
	}

	g := grid.New(w, h)

	startX := 1 + 2*r.IntRange(0, (w-3)/2)
	startY := 1 + 2*r.IntRange(0, (h-3)/2)
	g.SetTile(startX, startY, grid.Corridor)

	frontier := []grid.Point{{X: float64(startX), Y: float64(startY)}}

	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]

		cx, cy := int(cur.X), int(cur.Y)
		var candidates []cellOffset
		for _, nb := range shuffledTwoStepNeighbours(cx, cy, r) {
			interior := nb.x >= 1 && nb.x <= w-2 && nb.y >= 1 && nb.y <= h-2
			if interior && g.TileIs(nb.x, nb.y, grid.Rock) {
				candidates = append(candidates, nb)
			}
		}
		if len(candidates) == 0 {
			continue
		}

		chosen := candidates[r.IntRange(0, len(candidates)-1)]
		wallX, wallY := (cx+chosen.x)/2, (cy+chosen.y)/2
		g.SetTile(wallX, wallY, grid.Corridor)
		g.SetTile(chosen.x, chosen.y, grid.Corridor)

		// Push both cells: the newly carved cell, so its own unvisited
		// two-step neighbours get a turn, and the current cell again if it
		// still has other candidates remaining to explore.
		frontier = append(frontier, grid.Point{X: float64(chosen.x), Y: float64(chosen.y)})
		if len(candidates) > 1 {
			frontier = append(frontier, cur)
		}
	}

	if cfg.FillBorder {
		fillBorder(g)
	}

	return g, nil
}

type cellOffset struct{ x, y int }

// twoStepOffsets are the four lattice directions, two cells away, that
// wall-knocking considers from a given corridor cell.
var twoStepOffsets = [4]cellOffset{{0, -2}, {2, 0}, {0, 2}, {-2, 0}}

// shuffledTwoStepNeighbours returns the four candidate cells two steps
// from (x,y) in a randomised order, via a Fisher-Yates shuffle.
func shuffledTwoStepNeighbours(x, y int, r *rng.RNG) []cellOffset {
	order := [4]cellOffset{}
	for i, off := range twoStepOffsets {
		order[i] = cellOffset{x: x + off.x, y: y + off.y}
	}
	for i := len(order) - 1; i > 0; i-- {
		j := r.IntRange(0, i)
		order[i], order[j] = order[j], order[i]
	}
	return order[:]
}

// fillBorder stamps Rock around the four edges of the region.
func fillBorder(g *grid.Grid) {
	for x := 0; x < g.Width; x++ {
		g.SetTile(x, 0, grid.Rock)
		g.SetTile(x, g.Height-1, grid.Rock)
	}
	for y := 0; y < g.Height; y++ {
		g.SetTile(0, y, grid.Rock)
		g.SetTile(g.Width-1, y, grid.Rock)
	}
}
