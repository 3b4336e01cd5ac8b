package bspgen

import (
	"testing"

	"roguemap/pkg/engine/bsp"
	"roguemap/pkg/engine/flood"
	"roguemap/pkg/engine/grid"
	"roguemap/pkg/engine/rng"
)

func TestGenerateDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	g1, err := Generate(40, 30, cfg, rng.NewRNG(1))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	g2, err := Generate(40, 30, cfg, rng.NewRNG(1))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if g1.String() != g2.String() {
		t.Error("same seed and config should reproduce identical output")
	}
}

func TestGenerateDifferentSeedsDiffer(t *testing.T) {
	cfg := DefaultConfig()
	g1, _ := Generate(40, 30, cfg, rng.NewRNG(1))
	g2, _ := Generate(40, 30, cfg, rng.NewRNG(2))
	if g1.String() == g2.String() {
		t.Error("different seeds produced identical output (suspiciously deterministic)")
	}
}

func TestGenerateHasRoomsCorridorsDoors(t *testing.T) {
	cfg := DefaultConfig()
	g, err := Generate(80, 25, cfg, rng.NewRNG(1))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	rooms, corridors, doors := 0, 0, 0
	g.ForEach(func(x, y int, tl grid.Tile) {
		switch tl {
		case grid.Room:
			rooms++
		case grid.Corridor:
			corridors++
		case grid.Door:
			doors++
		}
	})
	if rooms < 2 {
		t.Errorf("room cell count = %d, want >= 2", rooms)
	}
	if corridors < 1 {
		t.Errorf("corridor cell count = %d, want >= 1", corridors)
	}
	if doors < 1 {
		t.Errorf("door cell count = %d, want >= 1", doors)
	}
}

func TestGenerateRandomlyFullyConnected(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DrawCorridors = Randomly
	g, err := Generate(80, 25, cfg, rng.NewRNG(1))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	total := g.CountPassable()
	largest, ok := flood.Largest(g)
	if !ok {
		t.Fatal("expected a connected region")
	}
	if len(largest.Cells) != total {
		t.Errorf("largest connected area = %d, want all %d passable cells", len(largest.Cells), total)
	}
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RoomMinW = 10
	cfg.RoomMaxW = 4
	if _, err := Generate(40, 20, cfg, rng.NewRNG(1)); err == nil {
		t.Error("expected an error for room_min > room_max")
	}
}

func TestGenerateRejectsNilRNG(t *testing.T) {
	if _, err := Generate(40, 20, DefaultConfig(), nil); err == nil {
		t.Error("expected an error for a nil RNG source")
	}
}

func TestGenerateRejectsNonPositiveDimensions(t *testing.T) {
	if _, err := Generate(0, 20, DefaultConfig(), rng.NewRNG(1)); err == nil {
		t.Error("expected an error for zero width")
	}
}

func TestMaxSplitsZeroCarvesNoRooms(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSplits = 0
	g, err := Generate(40, 20, cfg, rng.NewRNG(1))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if g.CountPassable() != 0 {
		t.Errorf("a single-leaf tree (max_splits=0) should carve no rooms, got %d passable cells", g.CountPassable())
	}
}

func TestPlaceRoomKeepsMarginEvenWithZeroPadding(t *testing.T) {
	leaf := bsp.New(10, 10)
	cfg := DefaultConfig()
	cfg.RoomPadding = 0
	r := rng.NewRNG(7)
	for i := 0; i < 50; i++ {
		rm := placeRoom(leaf, cfg, r)
		if rm.x < leaf.X+1 || rm.y < leaf.Y+1 {
			t.Fatalf("room %+v should leave at least a 1-cell margin at the leaf's top/left edge", rm)
		}
		if rm.x+rm.w > leaf.X+leaf.W-1 || rm.y+rm.h > leaf.Y+leaf.H-1 {
			t.Fatalf("room %+v should leave at least a 1-cell margin at the leaf's bottom/right edge", rm)
		}
	}
}

// buildFourLeafTree returns a root split into exactly four equal leaves,
// with a distinct room placed in each, used to test that a random-leaf
// pick (not a fixed representative) is made within a subtree.
func buildFourLeafTree() (*bsp.Node, map[*bsp.Node]room) {
	root := bsp.New(20, 20)
	root.Split(10, bsp.Horizontal)
	root.Left.Split(10, bsp.Vertical)
	root.Right.Split(10, bsp.Vertical)

	rooms := map[*bsp.Node]room{
		root.Left.Left:   {x: 1, y: 1, w: 2, h: 2},
		root.Left.Right:  {x: 1, y: 11, w: 2, h: 2},
		root.Right.Left:  {x: 11, y: 1, w: 2, h: 2},
		root.Right.Right: {x: 11, y: 11, w: 2, h: 2},
	}
	return root, rooms
}

func TestRandomRoomInSubtreePicksDifferentLeaves(t *testing.T) {
	root, rooms := buildFourLeafTree()
	seen := map[room]bool{}
	for seed := int64(0); seed < 30; seed++ {
		rm, ok := randomRoomInSubtree(root, rooms, rng.NewRNG(seed))
		if !ok {
			t.Fatal("expected a room to be found")
		}
		seen[rm] = true
	}
	if len(seen) < 2 {
		t.Errorf("randomRoomInSubtree should vary its pick across seeds, got only %d distinct room(s)", len(seen))
	}
}

func TestConnectBySubtreeLeftPickVariesAcrossSeeds(t *testing.T) {
	leftCenters := map[grid.Point]bool{}
	for seed := int64(0); seed < 20; seed++ {
		root, rooms := buildFourLeafTree()
		leftRoom, ok := randomRoomInSubtree(root.Left, rooms, rng.NewRNG(seed))
		if !ok {
			t.Fatal("expected a left-subtree room to be found")
		}
		leftCenters[leftRoom.center()] = true
	}
	if len(leftCenters) < 2 {
		t.Error("connectBySubtree's left-subtree pick should vary across seeds, not stay pinned to one leaf")
	}
}

func BenchmarkGenerate(b *testing.B) {
	cfg := DefaultConfig()
	for i := 0; i < b.N; i++ {
		r := rng.NewRNG(12345)
		Generate(80, 25, cfg, r)
	}
}
