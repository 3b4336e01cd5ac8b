// Package bspgen implements the BSP dungeon generator: recursive split,
// room placement, and three corridor-connection strategies.
//
// Grounded directly on jamesread-TheDarkStation's
// pkg/game/generator/bsp.go pipeline (splitBSP/createRooms/carveRooms/
// connectRooms), generalized from its fixed "always 3-wide, always
// random-pick-one-room-per-subtree" policy into the three named
// strategies (Simple, BSP, Randomly), room-wall-aware door placement,
// and the Dijkstra-biased carve from spec.md §4.8.
package bspgen

import (
	"fmt"

	"roguemap/pkg/engine/bsp"
	"roguemap/pkg/engine/flood"
	"roguemap/pkg/engine/graph"
	"roguemap/pkg/engine/grid"
	"roguemap/pkg/engine/rng"
	"roguemap/pkg/mapgen/mapgenerr"
)

// CorridorStrategy selects how rooms are stitched together.
type CorridorStrategy int

const (
	// None carves no corridors; rooms are placed but left disconnected.
	None CorridorStrategy = iota
	// Simple descends the BSP tree, picking a random leaf from each
	// subtree of every internal node and carving a straight L-shaped
	// corridor between their rooms, without pathfinding.
	Simple
	// BSP is like Simple, but each carve is a Dijkstra walk using the
	// corridor-biased edge cost, so the path prefers doors and avoids
	// cutting through corners or running parallel to existing walls.
	BSP
	// Randomly walks every leaf in the whole tree, carving a biased
	// Dijkstra corridor to another random leaf anywhere in the tree, then
	// culls everything outside the largest connected region.
	Randomly
)

// Config holds the BSP generator's tunables, the Go-native form of
// spec.md §6's BSP configuration struct.
type Config struct {
	RoomMinW, RoomMaxW int
	RoomMinH, RoomMaxH int
	RoomPadding        int
	DrawCorridors      CorridorStrategy
	DrawDoors          bool
	MaxSplits          int
}

// DefaultConfig starts from the teacher's minRoomSize=4, scaled into
// explicit min/max fields (4..6), with a room padding of 1.
func DefaultConfig() Config {
	return Config{
		RoomMinW: 4, RoomMaxW: 6,
		RoomMinH: 4, RoomMaxH: 6,
		RoomPadding:   1,
		DrawCorridors: Randomly,
		DrawDoors:     true,
		MaxSplits:     100,
	}
}

func (c Config) validate() error {
	if c.RoomMinW <= 0 || c.RoomMinH <= 0 {
		return fmt.Errorf("bspgen: room_min must be positive: %w", mapgenerr.ErrInvalidConfig)
	}
	if c.RoomMinW > c.RoomMaxW || c.RoomMinH > c.RoomMaxH {
		return fmt.Errorf("bspgen: room_min must not exceed room_max: %w", mapgenerr.ErrInvalidConfig)
	}
	if c.RoomPadding < 0 {
		return fmt.Errorf("bspgen: room_padding must be non-negative: %w", mapgenerr.ErrInvalidConfig)
	}
	return nil
}

type room struct {
	x, y, w, h int
}

func (r room) center() grid.Point {
	return grid.Point{X: float64(r.x + r.w/2), Y: float64(r.y + r.h/2)}
}

// Generate produces a w*h dungeon grid according to cfg, drawing
// randomness exclusively from r (the core never seeds its own source).
func Generate(w, h int, cfg Config, r *rng.RNG) (*grid.Grid, error) {
	if r == nil {
		return nil, mapgenerr.ErrNullParameter
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("bspgen: grid dimensions must be positive: %w", mapgenerr.ErrInvalidConfig)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	g := grid.New(w, h)
	root := bsp.New(w, h)

	minNodeW := cfg.RoomMaxW + cfg.RoomPadding*2
	minNodeH := cfg.RoomMaxH + cfg.RoomPadding*2
	bsp.RecursiveSplit(root, minNodeW, minNodeH, cfg.MaxSplits, r)

	rooms := make(map[*bsp.Node]room)
	generateRooms(root, rooms, cfg, r)

	for _, rm := range rooms {
		carveRoom(g, rm)
	}

	switch cfg.DrawCorridors {
	case Simple:
		connectBySubtree(g, root, rooms, r, false, cfg.DrawDoors)
	case BSP:
		connectBySubtree(g, root, rooms, r, true, cfg.DrawDoors)
	case Randomly:
		connectRandomly(g, root, rooms, r, cfg.DrawDoors)
		flood.CullToLargest(g)
	case None:
	}

	return g, nil
}

// placeRoom sizes and positions a room inside a leaf, clamped to the
// leaf's dimensions, mirroring the teacher's createRooms sizing logic
// (random size within [min,max], random offset within the remaining
// space after padding). The room is also kept at least one cell away
// from every edge of the leaf — even with RoomPadding=0 — so that two
// rooms placed in sibling leaves never abut without an intervening
// Rock wall.
func placeRoom(leaf *bsp.Node, cfg Config, r *rng.RNG) room {
	margin := cfg.RoomPadding
	if margin < 1 {
		margin = 1
	}
	maxW := leaf.W - margin*2
	maxH := leaf.H - margin*2
	w := clampedRandSize(cfg.RoomMinW, cfg.RoomMaxW, maxW, r)
	h := clampedRandSize(cfg.RoomMinH, cfg.RoomMaxH, maxH, r)

	freeW := leaf.W - margin*2 - w
	freeH := leaf.H - margin*2 - h
	x := leaf.X + margin
	if freeW > 0 {
		x += r.IntRange(0, freeW)
	}
	y := leaf.Y + margin
	if freeH > 0 {
		y += r.IntRange(0, freeH)
	}
	return room{x: x, y: y, w: w, h: h}
}

// generateRooms walks the tree stamping a room for each leaf whose
// parent is an internal node, checking the left and right children
// independently rather than gating both on one child's leaf-ness (per
// §9's resolution of the source's apparent typo). A single-leaf tree
// (the root itself, with no parent to drive a stamp) carves no rooms,
// matching §8's max_splits=0 boundary.
func generateRooms(n *bsp.Node, rooms map[*bsp.Node]room, cfg Config, r *rng.RNG) {
	if n.IsLeaf() {
		return
	}
	if n.Left.IsLeaf() {
		rooms[n.Left] = placeRoom(n.Left, cfg, r)
	} else {
		generateRooms(n.Left, rooms, cfg, r)
	}
	if n.Right.IsLeaf() {
		rooms[n.Right] = placeRoom(n.Right, cfg, r)
	} else {
		generateRooms(n.Right, rooms, cfg, r)
	}
}

func clampedRandSize(min, max, cap int, r *rng.RNG) int {
	if cap < min {
		cap = min
	}
	hi := max
	if hi > cap {
		hi = cap
	}
	if hi < min {
		hi = min
	}
	return r.IntRange(min, hi)
}

func carveRoom(g *grid.Grid, rm room) {
	for y := rm.y; y < rm.y+rm.h; y++ {
		for x := rm.x; x < rm.x+rm.w; x++ {
			g.SetTile(x, y, grid.Room)
		}
	}
}

// randomRoomInSubtree picks a uniformly random room among the leaves
// that have one anywhere under n (not just one fixed representative per
// branch), per §9's resolution that `BSP`/`Simple` connect a random leaf
// in each subtree, not the leftmost one.
func randomRoomInSubtree(n *bsp.Node, rooms map[*bsp.Node]room, r *rng.RNG) (room, bool) {
	var withRoom []*bsp.Node
	for _, leaf := range bsp.Leaves(n) {
		if _, ok := rooms[leaf]; ok {
			withRoom = append(withRoom, leaf)
		}
	}
	if len(withRoom) == 0 {
		return room{}, false
	}
	leaf := withRoom[r.IntRange(0, len(withRoom)-1)]
	return rooms[leaf], true
}

// connectBySubtree implements the Simple and BSP strategies: at each
// internal node, connect a randomly-picked room from the left subtree to
// a randomly-picked room from the right subtree, optionally via a biased
// Dijkstra carve.
func connectBySubtree(g *grid.Grid, n *bsp.Node, rooms map[*bsp.Node]room, r *rng.RNG, useDijkstra, doors bool) {
	if n.IsLeaf() {
		return
	}
	leftRoom, leftOK := randomRoomInSubtree(n.Left, rooms, r)
	rightRoom, rightOK := randomRoomInSubtree(n.Right, rooms, r)
	if leftOK && rightOK {
		carveCorridor(g, leftRoom.center(), rightRoom.center(), r, useDijkstra, doors)
	}
	connectBySubtree(g, n.Left, rooms, r, useDijkstra, doors)
	connectBySubtree(g, n.Right, rooms, r, useDijkstra, doors)
}

// connectRandomly implements the Randomly strategy: every leaf in the
// whole tree picks another random leaf anywhere in the tree and carves a
// biased Dijkstra corridor to it.
func connectRandomly(g *grid.Grid, root *bsp.Node, rooms map[*bsp.Node]room, r *rng.RNG, doors bool) {
	leaves := bsp.Leaves(root)
	for _, leaf := range leaves {
		rm, ok := rooms[leaf]
		if !ok {
			continue
		}
		other, ok := randomRoomInSubtree(root, rooms, r)
		if !ok {
			continue
		}
		carveCorridor(g, rm.center(), other.center(), r, true, doors)
	}
}

// carveCorridor connects from to to, either with a straight L-shaped
// carve (useDijkstra=false) or a corridor-biased Dijkstra walk.
func carveCorridor(g *grid.Grid, from, to grid.Point, r *rng.RNG, useDijkstra, doors bool) {
	if useDijkstra {
		carveDijkstraCorridor(g, from, to, doors)
		return
	}
	carveStraightCorridor(g, from, to, r, doors)
}

// carveStraightCorridor carves an L-shaped corridor choosing the longer
// axis first, as the teacher's connectRooms does, but only a single-cell
// width (corridor width is a rendering concern left to callers; the core
// spec fixes no corridor width beyond "double-wide" avoidance).
func carveStraightCorridor(g *grid.Grid, from, to grid.Point, r *rng.RNG, doors bool) {
	fx, fy := int(from.X), int(from.Y)
	tx, ty := int(to.X), int(to.Y)

	longerAxisIsX := abs(tx-fx) >= abs(ty-fy)
	if longerAxisIsX {
		carveHorizontal(g, fy, fx, tx, doors)
		carveVertical(g, tx, fy, ty, doors)
	} else {
		carveVertical(g, fx, fy, ty, doors)
		carveHorizontal(g, ty, fx, tx, doors)
	}
}

func carveHorizontal(g *grid.Grid, y, x0, x1 int, doors bool) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		placeCorridorTile(g, x, y, doors)
	}
}

func carveVertical(g *grid.Grid, x, y0, y1 int, doors bool) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		placeCorridorTile(g, x, y, doors)
	}
}

// placeCorridorTile writes a Door (if the target touches a Room and
// doors are enabled) or a Corridor tile, never overwriting an existing
// Room.
func placeCorridorTile(g *grid.Grid, x, y int, doors bool) {
	if g.TileIs(x, y, grid.Room) {
		return
	}
	if doors && g.IsRoomWall(x, y) {
		g.SetTile(x, y, grid.Door)
		return
	}
	g.SetTile(x, y, grid.Corridor)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// carveDijkstraCorridor builds a neighbour graph over the whole grid
// (every cell, passable or not — the corridor must be able to cut
// through Rock), scores it from to using the corridor-biased edge cost,
// and writes Corridor/Door tiles along the descent from from.
//
// This is spec.md §4.8's key design decision: the Dijkstra cost function
// itself carries the aesthetic policy (reuse doors, avoid corners,
// discourage double-wide corridors) instead of a separate heuristic pass.
func carveDijkstraCorridor(g *grid.Grid, from, to grid.Point, doors bool) {
	gr := graph.Build(g.Width, g.Height, nil, false)
	toNode := gr.At(int(to.X), int(to.Y))
	fromNode := gr.At(int(from.X), int(from.Y))
	if toNode == nil || fromNode == nil {
		return
	}

	gr.DijkstraScoreCustom(toNode, func(current, neighbour *graph.Node) float64 {
		return corridorEdgeCost(g, current, neighbour)
	})

	cur := fromNode
	for cur != toNode {
		x, y := int(cur.Point.X), int(cur.Point.Y)
		placeCorridorTile(g, x, y, doors)
		next := graph.LowestScoredNeighbour(cur)
		if next == nil {
			break
		}
		cur = next
	}
}

// corridorEdgeCost implements spec.md §4.8's corridor-biased cost:
// reusing doors is free, corners are heavily discouraged, and any other
// wall cell is moderately discouraged to keep corridors single-wide.
func corridorEdgeCost(g *grid.Grid, current, neighbour *graph.Node) float64 {
	base := current.Score + graph.Manhattan(current.Point, neighbour.Point)
	nx, ny := int(neighbour.Point.X), int(neighbour.Point.Y)
	switch {
	case g.TileIs(nx, ny, grid.Door):
		return base
	case g.IsCornerWall(nx, ny):
		return base + 99
	case g.IsWall(nx, ny):
		return base + 9
	default:
		return base
	}
}
