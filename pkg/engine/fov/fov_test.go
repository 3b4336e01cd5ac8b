package fov

import "testing"

func noOpaque(x, y int) bool { return false }

func TestOriginAlwaysVisible(t *testing.T) {
	vg := NewGrid(9, 9)
	Calculate(vg, 4, 4, 3, noOpaque, true)
	if vg.At(4, 4) != Visible {
		t.Error("origin should always be Visible")
	}
}

func TestAllRoomGridWithinChebyshevRadiusVisible(t *testing.T) {
	vg := NewGrid(5, 5)
	Calculate(vg, 2, 2, 2, noOpaque, true)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if vg.At(x, y) != Visible {
				t.Errorf("(%d,%d) should be Visible in an open 5x5 grid at radius 2, got %v", x, y, vg.At(x, y))
			}
		}
	}
}

func TestOutOfRangeCannotSee(t *testing.T) {
	vg := NewGrid(11, 11)
	Calculate(vg, 5, 5, 2, noOpaque, true)
	if vg.At(0, 0) == Visible {
		t.Error("(0,0) is outside radius 2 from (5,5) and should not be Visible")
	}
}

func TestPreviouslyVisibleDemotesToSeen(t *testing.T) {
	vg := NewGrid(7, 7)
	Calculate(vg, 3, 3, 3, noOpaque, true)
	if vg.At(3, 2) != Visible {
		t.Fatal("setup: expected (3,2) Visible after first calculation")
	}
	// Shrink the radius so a previously visible cell falls out of range.
	Calculate(vg, 3, 3, 0, noOpaque, true)
	if vg.At(3, 2) != Seen {
		t.Errorf("(3,2) should demote to Seen after a recalculation that no longer sees it, got %v", vg.At(3, 2))
	}
}

func TestOpaqueWallBlocksBehindIt(t *testing.T) {
	vg := NewGrid(7, 7)
	isOpaque := func(x, y int) bool { return x == 3 && y == 2 }
	Calculate(vg, 3, 5, 5, isOpaque, true)
	if vg.At(3, 0) == Visible {
		t.Error("cell directly behind an opaque wall should not be Visible")
	}
}
