// Package flood finds connected regions of passable cells via repeated
// Dijkstra runs, the same technique the generators use to guarantee
// full connectivity after carving.
//
// Grounded on the BFS reachability helper in jamesread-TheDarkStation's
// pkg/game/generator/bsp_test.go (countReachableRoomCells) and the
// other_examples fa09d8ba_opd-ai-violence floodFill helper, generalized
// to share this module's Dijkstra scorer instead of a bespoke BFS queue.
// Visited-set bookkeeping uses the same zyedidia/generic/mapset the
// teacher uses for connectivity checks in
// pkg/game/setup/room_connectivity.go.
package flood

import (
	"math"

	"roguemap/pkg/engine/graph"
	"roguemap/pkg/engine/grid"

	"github.com/zyedidia/generic/mapset"
)

// Region is one connected component of passable cells.
type Region struct {
	Cells []grid.Point
}

// Regions returns every connected region of passable cells in g, largest
// first. Connectivity allows diagonal movement, matching the 8-neighbour
// graph the rest of the library scores over.
func Regions(g *grid.Grid) []Region {
	gr := graph.Build(g.Width, g.Height, func(x, y int) bool { return g.IsPassable(x, y) }, true)
	visited := mapset.New[*graph.Node]()
	var regions []Region

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.IsPassable(x, y) {
				continue
			}
			seed := gr.At(x, y)
			if visited.Has(seed) {
				continue
			}
			gr.DijkstraScore(seed, nil)
			var cells []grid.Point
			for ny := 0; ny < g.Height; ny++ {
				for nx := 0; nx < g.Width; nx++ {
					n := gr.At(nx, ny)
					if n == nil || visited.Has(n) {
						continue
					}
					if !isScored(n) {
						continue
					}
					visited.Put(n)
					cells = append(cells, n.Point)
				}
			}
			if len(cells) > 0 {
				regions = append(regions, Region{Cells: cells})
			}
		}
	}

	sortRegionsDescending(regions)
	return regions
}

// isScored reports whether n was reached by the most recent Dijkstra run
// (a finite score, since unreached nodes stay at +Inf).
func isScored(n *graph.Node) bool {
	return !math.IsInf(n.Score, 1)
}

func sortRegionsDescending(regions []Region) {
	for i := 1; i < len(regions); i++ {
		j := i
		for j > 0 && len(regions[j-1].Cells) < len(regions[j].Cells) {
			regions[j-1], regions[j] = regions[j], regions[j-1]
			j--
		}
	}
}

// Largest returns the largest connected region of passable cells in g,
// or a zero Region with ok=false if the map has no passable cells.
func Largest(g *grid.Grid) (Region, bool) {
	regions := Regions(g)
	if len(regions) == 0 {
		return Region{}, false
	}
	return regions[0], true
}

// CullToLargest demotes every passable cell outside the largest
// connected region back to Rock, guaranteeing the invariant that the
// largest connected area equals the total passable cell count.
func CullToLargest(g *grid.Grid) {
	largest, ok := Largest(g)
	if !ok {
		return
	}
	keep := make(map[grid.Point]bool, len(largest.Cells))
	for _, c := range largest.Cells {
		keep[c] = true
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.IsPassable(x, y) {
				continue
			}
			p := grid.Point{X: float64(x), Y: float64(y)}
			if !keep[p] {
				g.SetTile(x, y, grid.Rock)
			}
		}
	}
}
