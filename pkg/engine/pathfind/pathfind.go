// Package pathfind builds a neighbour graph from a tile grid and
// produces linked-list paths along a descending Dijkstra-score walk.
//
// Grounded on the A* wrapper idiom in denialofself-Gearworld's
// systems/ai_pathfinding_system.go, reworked onto this module's shared
// graph.Graph/rlpath.Path types instead of a bespoke heap+Item pair.
package pathfind

import (
	"roguemap/pkg/engine/graph"
	"roguemap/pkg/engine/grid"
	"roguemap/pkg/engine/rlpath"
)

// Pathfinder owns a neighbour graph built from a tile grid's passable
// cells, scored fresh on each Walk call.
type Pathfinder struct {
	g    *grid.Grid
	gr   *graph.Graph
	dist graph.DistanceFunc
}

// Create builds a pathfinder over g using dist as the distance function
// (nil selects graph.Simple). Diagonal movement is allowed.
func Create(g *grid.Grid, dist graph.DistanceFunc) *Pathfinder {
	gr := graph.Build(g.Width, g.Height, func(x, y int) bool { return g.IsPassable(x, y) }, true)
	return &Pathfinder{g: g, gr: gr, dist: dist}
}

// Walk computes a Dijkstra score from end and descends from start,
// returning a Path that begins at start and ends at end. If start or end
// is not passable, or no path exists, the returned path contains only
// the start point (per the "unreachable path" error semantics — no
// failure code, just a minimal path).
func (pf *Pathfinder) Walk(start, end grid.Point) *rlpath.Path {
	sx, sy := int(start.X), int(start.Y)
	ex, ey := int(end.X), int(end.Y)
	endNode := pf.gr.At(ex, ey)
	startNode := pf.gr.At(sx, sy)
	if endNode == nil || startNode == nil || !pf.g.IsPassable(sx, sy) || !pf.g.IsPassable(ex, ey) {
		return rlpath.New([]grid.Point{start})
	}

	pf.gr.DijkstraScore(endNode, pf.dist)

	if startNode == endNode {
		return rlpath.New([]grid.Point{start})
	}

	points := []grid.Point{startNode.Point}
	cur := startNode
	for cur.Score > 0 {
		next := graph.LowestScoredNeighbour(cur)
		if next == nil {
			// Unreachable: no failure code, just the accumulated partial path.
			break
		}
		points = append(points, next.Point)
		cur = next
	}
	return rlpath.New(points)
}

// Destroy releases the pathfinder's graph. Go's garbage collector does
// the actual reclamation; this exists so callers that mirror the
// create/destroy lifecycle from the spec have an explicit symmetric call.
func (pf *Pathfinder) Destroy() {
	pf.gr = nil
}
