// Package graph implements the neighbour graph and Dijkstra scorer
// shared by pathfinding, flood-fill, and corridor carving. Grounded on
// the Chebyshev-distance + neighbour-expansion idiom in
// jamesread-TheDarkStation's pkg/engine/world/fov.go, generalized from a
// fixed-radius FOV scan into a general-purpose scored graph.
package graph

import (
	"math"

	"roguemap/pkg/engine/grid"
	"roguemap/pkg/engine/pqueue"
)

const maxNeighbours = 8

// Node is one cell's entry in a Graph: its score (distance from the
// most recent Dijkstra seed), its point, and up to 8 neighbour
// references into the same Graph's node array.
type Node struct {
	Point      grid.Point
	Score      float64
	Neighbours [maxNeighbours]*Node
	numNbrs    int
}

func (n *Node) neighbourSlice() []*Node { return n.Neighbours[:n.numNbrs] }

// Passable is a capability object: it reports whether (x,y) may be
// entered. A nil Passable treats every in-bounds cell as passable.
type Passable func(x, y int) bool

// Graph is a length plus a contiguous sequence of Nodes indexed by
// x + y*width. Neighbour pointers are interior references invalidated
// once the Graph is discarded.
type Graph struct {
	Width, Height int
	nodes         []Node
}

var diagonalOffsets = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}
var orthogonalOffsets = [4][2]int{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
}

// Build constructs a Graph over a w*h rectangle. passable filters
// candidate neighbours (nil admits every in-bounds cell); allowDiagonal
// includes the four diagonal adjacencies in addition to the orthogonal
// four.
func Build(w, h int, passable Passable, allowDiagonal bool) *Graph {
	g := &Graph{Width: w, Height: h, nodes: make([]Node, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := g.at(x, y)
			n.Point = grid.Point{X: float64(x), Y: float64(y)}
			n.Score = math.Inf(1)
		}
	}
	var all [][2]int
	if allowDiagonal {
		for _, o := range diagonalOffsets {
			all = append(all, o)
		}
	} else {
		for _, o := range orthogonalOffsets {
			all = append(all, o)
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := g.at(x, y)
			for _, off := range all {
				nx, ny := x+off[0], y+off[1]
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				if passable != nil && !passable(nx, ny) {
					continue
				}
				if n.numNbrs >= maxNeighbours {
					break
				}
				n.Neighbours[n.numNbrs] = g.at(nx, ny)
				n.numNbrs++
			}
		}
	}
	return g
}

func (g *Graph) index(x, y int) int { return x + y*g.Width }

// At returns the node at (x,y), or nil if out of bounds.
func (g *Graph) At(x, y int) *Node {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return nil
	}
	return &g.nodes[g.index(x, y)]
}

func (g *Graph) at(x, y int) *Node { return &g.nodes[g.index(x, y)] }

// DistanceFunc scores the straight-line cost between two points.
type DistanceFunc func(a, b grid.Point) float64

// EdgeCostFunc computes the cost to move from current to neighbour,
// incorporating current's own score. Used for corridor-biased scoring
// where the cost function itself carries aesthetic policy (see
// pkg/mapgen/bspgen).
type EdgeCostFunc func(current, neighbour *Node) float64

// Manhattan is |dx|+|dy|.
func Manhattan(a, b grid.Point) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

// Euclidean is sqrt(dx^2+dy^2).
func Euclidean(a, b grid.Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Chebyshev is max(|dx|,|dy|).
func Chebyshev(a, b grid.Point) float64 {
	return math.Max(math.Abs(a.X-b.X), math.Abs(a.Y-b.Y))
}

// Simple is 0 if the points are equal, 1 if orthogonally adjacent, else
// 1.4. Used when the caller supplies no distance function.
func Simple(a, b grid.Point) float64 {
	dx, dy := math.Abs(a.X-b.X), math.Abs(a.Y-b.Y)
	switch {
	case dx == 0 && dy == 0:
		return 0
	case dx == 0 || dy == 0:
		return 1
	default:
		return 1.4
	}
}

// resetScores reinitialises every node's score to +Inf before a fresh
// Dijkstra run.
func (g *Graph) resetScores() {
	for i := range g.nodes {
		g.nodes[i].Score = math.Inf(1)
	}
}

// DijkstraScore scores every reachable node in g from seed using dist
// wrapped as an edge cost (current.Score + dist(current, neighbour)). A
// nil dist uses Simple.
func (g *Graph) DijkstraScore(seed *Node, dist DistanceFunc) {
	if dist == nil {
		dist = Simple
	}
	g.DijkstraScoreCustom(seed, func(current, neighbour *Node) float64 {
		return current.Score + dist(current.Point, neighbour.Point)
	})
}

// DijkstraScoreCustom scores every reachable node from seed using a
// fully custom edge-cost function, which must itself incorporate the
// current node's score. This is the form corridor carving uses to bias
// costs by wall proximity (see pkg/mapgen/bspgen).
func (g *Graph) DijkstraScoreCustom(seed *Node, cost EdgeCostFunc) {
	g.resetScores()
	seed.Score = 0
	inHeap := make(map[*Node]bool, len(g.nodes))
	q := pqueue.New(func(a, b *Node) bool { return a.Score < b.Score })
	q.Insert(seed)
	inHeap[seed] = true
	for q.Length() > 0 {
		current, _ := q.Pop()
		for _, nbr := range current.neighbourSlice() {
			c := cost(current, nbr)
			if c < nbr.Score {
				nbr.Score = c
				if !inHeap[nbr] {
					q.Insert(nbr)
					inHeap[nbr] = true
				}
			}
		}
	}
}

// LowestScoredNeighbour returns the neighbour of n with the minimum
// score, or nil if that minimum is +Inf (n is isolated from any scored
// seed).
func LowestScoredNeighbour(n *Node) *Node {
	var best *Node
	for _, nbr := range n.neighbourSlice() {
		if best == nil || nbr.Score < best.Score {
			best = nbr
		}
	}
	if best == nil || math.IsInf(best.Score, 1) {
		return nil
	}
	return best
}
