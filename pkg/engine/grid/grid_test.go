package grid

import "testing"

func TestNewPanicsOnNonPositiveDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non-positive dimensions")
		}
	}()
	New(0, 5)
}

func TestInBoundsAndDefaultTile(t *testing.T) {
	g := New(3, 3)
	if !g.InBounds(0, 0) || !g.InBounds(2, 2) {
		t.Error("corners should be in bounds")
	}
	if g.InBounds(3, 0) || g.InBounds(-1, 0) {
		t.Error("out-of-range coordinates reported in bounds")
	}
	if g.TileAt(0, 0) != Rock {
		t.Errorf("new grid should default to Rock, got %q", g.TileAt(0, 0))
	}
	if g.TileAt(-1, -1) != Rock {
		t.Error("out-of-bounds read should return Rock safe default")
	}
}

func TestPassableAndOpaque(t *testing.T) {
	g := New(3, 3)
	g.SetTile(1, 1, Room)
	g.SetTile(1, 0, Door)
	if !g.IsPassable(1, 1) {
		t.Error("Room should be passable")
	}
	if !g.IsPassable(1, 0) {
		t.Error("Door should be passable")
	}
	if !g.IsOpaque(1, 0) {
		t.Error("closed Door should be opaque")
	}
	g.SetTile(1, 0, DoorOpen)
	if g.IsOpaque(1, 0) {
		t.Error("open Door should not be opaque")
	}
	if !g.IsOpaque(0, 0) {
		t.Error("Rock should be opaque")
	}
}

func TestOneByOneGridBoundary(t *testing.T) {
	g := New(1, 1)
	if !g.InBounds(0, 0) {
		t.Error("origin must be in bounds")
	}
	for _, off := range neighbourOffsets {
		if g.InBounds(off[0], off[1]) {
			t.Errorf("neighbour offset %v should be out of bounds on a 1x1 grid", off)
		}
	}
	if g.WallMask(0, 0) != 0 {
		t.Errorf("1x1 grid origin wall mask should be 0 (not a wall), got %v", g.WallMask(0, 0))
	}
}

func TestWallMaskZeroIffNotWall(t *testing.T) {
	g := New(5, 5)
	for y := 1; y < 4; y++ {
		for x := 1; x < 4; x++ {
			g.SetTile(x, y, Room)
		}
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			mask := g.WallMask(x, y)
			if (mask == 0) != !g.IsWall(x, y) {
				t.Errorf("(%d,%d): WallMask=%v IsWall=%v, expected mask==0 iff not wall", x, y, mask, g.IsWall(x, y))
			}
		}
	}
}

func TestIsolatedWallReportsOther(t *testing.T) {
	g := New(5, 1)
	g.SetTile(2, 0, Room)
	// (1,0) touches the lone Room cell so it is a wall, but neither of
	// its own cardinal neighbours ((0,0) and (2,0)) is itself a wall:
	// (0,0) has no passable neighbour and (2,0) is passable, not a wall.
	if !g.IsWall(1, 0) {
		t.Fatal("(1,0) should be a wall, touching the Room cell at (2,0)")
	}
	if g.WallMask(1, 0) != MaskOther {
		t.Errorf("isolated wall with no connecting cardinal wall neighbour should be MaskOther, got %v", g.WallMask(1, 0))
	}
}

func TestRoomWallRequiresRoomNeighbour(t *testing.T) {
	g := New(5, 5)
	g.SetTile(2, 2, Corridor)
	if g.IsRoomWall(2, 1) {
		t.Error("wall touching only a Corridor should not be a room wall")
	}
	g.SetTile(2, 2, Room)
	if !g.IsRoomWall(2, 1) {
		t.Error("wall touching a Room tile should be a room wall")
	}
}

func TestIsConnectingRequiresBothPassable(t *testing.T) {
	g := New(3, 1)
	g.SetTile(0, 0, Room)
	g.SetTile(2, 0, Room)
	from := Point{X: 0, Y: 0}
	rock := Point{X: 1, Y: 0}
	if g.IsConnecting(from, rock) {
		t.Error("a Rock cell should not connect")
	}
	g.SetTile(1, 0, Corridor)
	if !g.IsConnecting(from, Point{X: 1, Y: 0}) {
		t.Error("two adjacent passable non-Door cells should connect")
	}
}

func TestIsConnectingRejectsClosedDoorButAllowsOpen(t *testing.T) {
	g := New(2, 1)
	g.SetTile(0, 0, Room)
	g.SetTile(1, 0, Door)
	if g.IsConnecting(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}) {
		t.Error("a closed Door endpoint should not connect")
	}
	g.SetTile(1, 0, DoorOpen)
	if !g.IsConnecting(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}) {
		t.Error("an open Door endpoint should connect")
	}
}
