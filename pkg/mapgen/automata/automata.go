// Package automata implements the cellular-automata cave generator:
// random fill, birth/survival iteration, optional corridor-connectivity
// pass, optional border fill, and optional culling to the largest
// connected region.
//
// Grounded on denialofself-Gearworld's generation/cellular_automata_dungeon.go
// (countAdjacentWalls, the random-fill-then-iterate pipeline,
// cleanupIsolatedTiles), generalized to use the shared Dijkstra-backed
// flood-fill (pkg/engine/flood) instead of Gearworld's bespoke recursive
// floodFill, and to use the shared corridor-biased carve from bspgen's
// grounding instead of Gearworld's straight createHorizontalCorridor.
package automata

import (
	"fmt"

	"roguemap/pkg/engine/flood"
	"roguemap/pkg/engine/graph"
	"roguemap/pkg/engine/grid"
	"roguemap/pkg/engine/rng"
	"roguemap/pkg/mapgen/mapgenerr"
)

// Config holds the automata generator's tunables, the Go-native form of
// spec.md §6's Automata configuration struct.
type Config struct {
	ChanceCellInitialized int // 1..100, percent chance a cell starts as Rock
	BirthThreshold        int
	SurvivalThreshold     int
	MaxIterations         int
	DrawCorridors         bool // run the connectivity pass
	CullUnconnected       bool
	FillBorder            bool
}

// DefaultConfig mirrors Gearworld's generateCellularDungeon constants
// (45% initial wall chance, 4 iterations), translated into the spec's
// named threshold fields: a Room cell turns to Rock with 5 or more Rock
// neighbours, and a Rock cell survives with 4 or more.
func DefaultConfig() Config {
	return Config{
		ChanceCellInitialized: 45,
		BirthThreshold:        5,
		SurvivalThreshold:     4,
		MaxIterations:         4,
		DrawCorridors:         true,
		CullUnconnected:       true,
		FillBorder:            true,
	}
}

func (c Config) validate() error {
	if c.ChanceCellInitialized < 1 || c.ChanceCellInitialized > 100 {
		return fmt.Errorf("automata: chance_cell_initialized must be 1..100: %w", mapgenerr.ErrInvalidConfig)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("automata: max_iterations must be non-negative: %w", mapgenerr.ErrInvalidConfig)
	}
	return nil
}

// Generate produces a w*h cave according to cfg, drawing randomness
// exclusively from r.
func Generate(w, h int, cfg Config, r *rng.RNG) (*grid.Grid, error) {
	if r == nil {
		return nil, mapgenerr.ErrNullParameter
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("automata: grid dimensions must be positive: %w", mapgenerr.ErrInvalidConfig)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	g := grid.New(w, h)
	randomFill(g, cfg, r)

	for i := 0; i < cfg.MaxIterations; i++ {
		step(g, cfg)
	}

	if cfg.DrawCorridors {
		connectRegions(g)
	}
	if cfg.CullUnconnected {
		flood.CullToLargest(g)
	}
	if cfg.FillBorder {
		fillBorder(g)
	}

	return g, nil
}

// randomFill seeds every cell Rock with probability
// chance_cell_initialized/100, else Room.
func randomFill(g *grid.Grid, cfg Config, r *rng.RNG) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if r.IntRange(1, 100) <= cfg.ChanceCellInitialized {
				g.SetTile(x, y, grid.Rock)
			} else {
				g.SetTile(x, y, grid.Room)
			}
		}
	}
}

// aliveNeighbours counts Rock (or out-of-bounds) cells in the 8-ring
// around (x,y); out-of-bounds counts as alive per spec.md §4.9.
func aliveNeighbours(g *grid.Grid, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !g.InBounds(nx, ny) {
				count++
				continue
			}
			if g.TileIs(nx, ny, grid.Rock) {
				count++
			}
		}
	}
	return count
}

// step applies one birth/survival iteration over the whole grid.
func step(g *grid.Grid, cfg Config) {
	next := make([]grid.Tile, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			alive := aliveNeighbours(g, x, y)
			wasAlive := g.TileIs(x, y, grid.Rock)
			var becomes grid.Tile
			switch {
			case !wasAlive && alive >= cfg.BirthThreshold:
				becomes = grid.Rock
			case wasAlive && alive >= cfg.SurvivalThreshold:
				becomes = grid.Rock
			default:
				becomes = grid.Room
			}
			next[x+y*g.Width] = becomes
		}
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.SetTile(x, y, next[x+y*g.Width])
		}
	}
}

// connectRegions gathers every distinct connected passable region and,
// while more than one remains, carves a corridor between a passable cell
// from the largest-so-far region and the next one, using the same
// corridor-biased Dijkstra cost as the BSP generator.
func connectRegions(g *grid.Grid) {
	regions := flood.Regions(g)
	if len(regions) <= 1 {
		return
	}
	base := regions[0]
	for _, other := range regions[1:] {
		if len(other.Cells) == 0 {
			continue
		}
		from := base.Cells[0]
		to := other.Cells[0]
		carveBiasedCorridor(g, from, to)
	}
}

// carveBiasedCorridor is automata's own use of the corridor-biased
// Dijkstra cost from spec.md §4.8, since the automata connectivity pass
// needs the same aesthetic policy (reuse doors, avoid corners, avoid
// double-wide corridors) as the BSP generator's corridor strategies.
func carveBiasedCorridor(g *grid.Grid, from, to grid.Point) {
	gr := graph.Build(g.Width, g.Height, nil, false)
	toNode := gr.At(int(to.X), int(to.Y))
	fromNode := gr.At(int(from.X), int(from.Y))
	if toNode == nil || fromNode == nil {
		return
	}
	gr.DijkstraScoreCustom(toNode, func(current, neighbour *graph.Node) float64 {
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
	})

	cur := fromNode
	for cur != toNode {
		x, y := int(cur.Point.X), int(cur.Point.Y)
		if !g.TileIs(x, y, grid.Room) {
			g.SetTile(x, y, grid.Corridor)
		}
		next := graph.LowestScoredNeighbour(cur)
		if next == nil {
			break
		}
		cur = next
	}
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
