// Package grid provides the rectangular tile grid shared by every
// generator, pathfinder, and FOV pass in roguemap: coordinate and
// in-bounds queries, passability/opacity predicates, and the wall
// classification used by renderers to pick line-drawing glyphs.
package grid

// Tile is a single-byte tile code. Values are printable ASCII so a Grid
// can be written directly to a text stream without translation; this
// mapping is a stability contract and must not change.
type Tile byte

const (
	Rock     Tile = ' '
	Room     Tile = '.'
	Corridor Tile = '#'
	Door     Tile = '+'
	DoorOpen Tile = '='
)

// Point is a pair of real-valued coordinates. Real-valued because the
// line rasteriser and distance functions share this type; integer grid
// indices are obtained by flooring.
type Point struct {
	X, Y float64
}

// WallMask bits identify which cardinal directions a wall cell connects
// to through other wall cells. MaskOther marks an isolated wall with no
// connecting neighbour.
type WallMask int

const (
	MaskWest WallMask = 1 << iota
	MaskEast
	MaskNorth
	MaskSouth
	MaskOther
)

// Grid owns a width*height row-major array of tile codes. It is created
// with an explicit width and height (storage filled with Rock) and is
// exclusively owned by its creator; there is no destroy step in Go, the
// garbage collector reclaims it when unreferenced.
type Grid struct {
	Width, Height int
	tiles         []Tile
}

// New creates a w*h grid filled with Rock. Both dimensions must be
// positive; this is a programmer error, mirrored on the teacher's own
// Grid.Build precondition panic.
func New(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic("grid: width and height must be positive")
	}
	tiles := make([]Tile, w*h)
	for i := range tiles {
		tiles[i] = Rock
	}
	return &Grid{Width: w, Height: h, tiles: tiles}
}

func (g *Grid) index(x, y int) int { return x + y*g.Width }

// InBounds reports whether (x,y) is a valid cell coordinate.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// TileAt returns the tile code at (x,y), or Rock if out of bounds (a
// safe default, never an error).
func (g *Grid) TileAt(x, y int) Tile {
	if !g.InBounds(x, y) {
		return Rock
	}
	return g.tiles[g.index(x, y)]
}

// SetTile writes a tile code at (x,y); out-of-bounds writes are ignored.
func (g *Grid) SetTile(x, y int, t Tile) {
	if !g.InBounds(x, y) {
		return
	}
	g.tiles[g.index(x, y)] = t
}

// TileIs reports whether the tile at (x,y) equals code.
func (g *Grid) TileIs(x, y int, code Tile) bool {
	return g.TileAt(x, y) == code
}

// IsPassable reports whether a cell may be occupied by an agent: Room,
// Corridor, Door, or DoorOpen.
func (g *Grid) IsPassable(x, y int) bool {
	switch g.TileAt(x, y) {
	case Room, Corridor, Door, DoorOpen:
		return true
	default:
		return false
	}
}

// IsOpaque reports whether a cell blocks sight: any non-passable tile,
// plus closed Doors.
func (g *Grid) IsOpaque(x, y int) bool {
	t := g.TileAt(x, y)
	if t == Door {
		return true
	}
	return !g.IsPassable(x, y)
}

// neighbourOffsets are the 8-ring offsets in a fixed order, used by both
// the wall predicate and wall-mask connectivity checks.
var neighbourOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// IsWall reports whether (x,y) is non-passable (or a closed Door) and at
// least one of its 8 neighbours is passable. This boundary definition
// lets walls be recognised without storing wall tiles explicitly.
// Out-of-bounds cells are never walls.
func (g *Grid) IsWall(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	nonPassableOrClosedDoor := !g.IsPassable(x, y) || g.TileAt(x, y) == Door
	if !nonPassableOrClosedDoor {
		return false
	}
	for _, off := range neighbourOffsets {
		if g.IsPassable(x+off[0], y+off[1]) {
			return true
		}
	}
	return false
}

var cardinalDirs = [4]struct {
	mask WallMask
	dx   int
	dy   int
}{
	{MaskWest, -1, 0},
	{MaskEast, 1, 0},
	{MaskNorth, 0, -1},
	{MaskSouth, 0, 1},
}

// WallMask returns the connectivity bitfield for the wall at (x,y). The
// bit for a direction is set iff the cell one step that way is also a
// wall AND the origin connects to it through a passable neighbour — some
// passable neighbour of the origin itself has the probed cell as one of
// its own neighbours. This keeps two unrelated wall strings separated by
// rock from being drawn as if joined. A wall with no set cardinal bit
// reports MaskOther.
func (g *Grid) WallMask(x, y int) WallMask {
	return g.wallMask(x, y, g.IsWall, g.passableForRoomWall(false))
}

// RoomWallMask is identical to WallMask, but the connectivity check looks
// specifically for Room tiles among the origin's passable neighbours,
// not any passable tile. Renderers use this to light room perimeters
// differently from corridor walls.
func (g *Grid) RoomWallMask(x, y int) WallMask {
	return g.wallMask(x, y, g.IsWall, g.passableForRoomWall(true))
}

// passableForRoomWall returns a neighbour predicate: when roomOnly is
// true it requires the Room tile code specifically, otherwise any
// passable tile.
func (g *Grid) passableForRoomWall(roomOnly bool) func(x, y int) bool {
	if roomOnly {
		return func(x, y int) bool { return g.TileIs(x, y, Room) }
	}
	return g.IsPassable
}

func (g *Grid) wallMask(x, y int, isWall func(int, int) bool, passable func(int, int) bool) WallMask {
	if !isWall(x, y) {
		return 0
	}
	var mask WallMask
	for _, d := range cardinalDirs {
		nx, ny := x+d.dx, y+d.dy
		if !isWall(nx, ny) {
			continue
		}
		if g.connectsThroughPassable(x, y, nx, ny, passable) {
			mask |= d.mask
		}
	}
	if mask == 0 {
		return MaskOther
	}
	return mask
}

// connectsThroughPassable reports whether some passable (per the given
// predicate) neighbour of (x,y) is itself a neighbour of (nx,ny).
func (g *Grid) connectsThroughPassable(x, y, nx, ny int, passable func(int, int) bool) bool {
	for _, off := range neighbourOffsets {
		px, py := x+off[0], y+off[1]
		if !passable(px, py) {
			continue
		}
		for _, off2 := range neighbourOffsets {
			if px+off2[0] == nx && py+off2[1] == ny {
				return true
			}
		}
		if px == nx && py == ny {
			return true
		}
	}
	return false
}

// IsCornerWall reports whether the wall at (x,y) has two perpendicular
// cardinal bits set (e.g. North+East).
func (g *Grid) IsCornerWall(x, y int) bool {
	m := g.WallMask(x, y)
	horiz := m&(MaskWest|MaskEast) != 0
	vert := m&(MaskNorth|MaskSouth) != 0
	return horiz && vert
}

// IsRoomWall reports whether (x,y) is a wall touching at least one Room
// tile among its 8 neighbours.
func (g *Grid) IsRoomWall(x, y int) bool {
	if !g.IsWall(x, y) {
		return false
	}
	for _, off := range neighbourOffsets {
		if g.TileIs(x+off[0], y+off[1], Room) {
			return true
		}
	}
	return false
}

// IsConnecting reports whether two adjacent cells are mutually traversable
// — both passable, and if either is a Door it must be open.
func (g *Grid) IsConnecting(from, to Point) bool {
	fx, fy := int(from.X), int(from.Y)
	tx, ty := int(to.X), int(to.Y)
	if !g.IsPassable(fx, fy) || !g.IsPassable(tx, ty) {
		return false
	}
	if g.TileAt(fx, fy) == Door || g.TileAt(tx, ty) == Door {
		return false
	}
	return true
}

// String renders the grid as newline-separated rows of its raw tile
// bytes, the same printable encoding the stability contract requires.
func (g *Grid) String() string {
	buf := make([]byte, 0, g.Width*g.Height+g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			buf = append(buf, byte(g.TileAt(x, y)))
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

// CountPassable returns the number of passable cells in the grid.
func (g *Grid) CountPassable() int {
	n := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.IsPassable(x, y) {
				n++
			}
		}
	}
	return n
}

// ForEach calls fn for every cell in row-major order.
func (g *Grid) ForEach(fn func(x, y int, t Tile)) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			fn(x, y, g.TileAt(x, y))
		}
	}
}
