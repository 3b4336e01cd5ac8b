// Package raster implements a Bresenham-variant line rasteriser between
// real-valued endpoints, producing a Path from start to end inclusive.
// The major axis always advances one whole cell per point; there is no
// fractional step option.
//
// Grounded on the Bresenham walk in
// jamesread-TheDarkStation's pkg/engine/world/fov.go hasLineOfSight,
// generalized from an early-exit boolean scan into a point-collecting
// rasteriser.
package raster

import (
	"math"

	"roguemap/pkg/engine/grid"
	"roguemap/pkg/engine/rlpath"
)

// Line rasterises the segment from start to end, advancing the major
// axis by one cell per point and the minor axis by one cell whenever the
// accumulated error exceeds 0.5. Both
// endpoints are included in the output, and the resulting points are
// strictly monotonic along the major axis.
func Line(start, end grid.Point) *rlpath.Path {
	dx := end.X - start.X
	dy := end.Y - start.Y

	if dx == 0 && dy == 0 {
		return rlpath.New([]grid.Point{start})
	}

	var points []grid.Point
	if math.Abs(dx) >= math.Abs(dy) {
		points = lineAlong(start, end, dx, dy, false)
	} else {
		points = lineAlong(start, end, dx, dy, true)
	}
	return rlpath.New(points)
}

// lineAlong walks along the major axis (x normally, y when swapped is
// true because |dy|>|dx|), stepping the minor axis once the error
// accumulator crosses 0.5.
func lineAlong(start, end grid.Point, dx, dy float64, swapped bool) []grid.Point {
	majorDx, minorDy := dx, dy
	if swapped {
		majorDx, minorDy = dy, dx
	}
	if majorDx == 0 {
		return []grid.Point{start, end}
	}
	slope := minorDy / majorDx
	steps := int(math.Round(math.Abs(majorDx)))
	majorStep := 1.0
	if majorDx < 0 {
		majorStep = -1.0
	}

	points := make([]grid.Point, 0, steps+1)
	major := 0.0
	minor := 0.0
	err := 0.0
	for i := 0; i <= steps; i++ {
		var p grid.Point
		if swapped {
			p = grid.Point{X: start.X + minor, Y: start.Y + major}
		} else {
			p = grid.Point{X: start.X + major, Y: start.Y + minor}
		}
		points = append(points, p)

		err += math.Abs(slope)
		if err > 0.5 {
			if minorDy < 0 {
				minor--
			} else {
				minor++
			}
			err -= 1
		}
		major += majorStep
	}
	points[len(points)-1] = end
	return points
}

