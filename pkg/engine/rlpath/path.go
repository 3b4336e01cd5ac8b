// Package rlpath provides the linked-list path type shared by the
// pathfinder and the line rasteriser. Grounded on the line-walk idiom in
// jamesread-TheDarkStation's pkg/engine/world/fov.go Bresenham scan,
// generalized into a standalone value type instead of an inline loop.
package rlpath

import "roguemap/pkg/engine/grid"

// Node is one point in a Path. Each node owns only itself.
type Node struct {
	Point grid.Point
	Next  *Node
}

// Path is a linked list of points, owned by the caller; no two paths
// share nodes.
type Path struct {
	Head *Node
}

// New builds a Path from an ordered slice of points.
func New(points []grid.Point) *Path {
	var head, tail *Node
	for _, p := range points {
		n := &Node{Point: p}
		if head == nil {
			head = n
			tail = n
		} else {
			tail.Next = n
			tail = n
		}
	}
	return &Path{Head: head}
}

// Walk frees the current head and returns the next node, or nil once
// the path is exhausted (all nodes consumed).
func (p *Path) Walk() *Node {
	if p.Head == nil {
		return nil
	}
	p.Head = p.Head.Next
	return p.Head
}

// Empty reports whether the path has no more nodes.
func (p *Path) Empty() bool { return p.Head == nil }

// Destroy walks the path to its end, discarding every remaining node.
func (p *Path) Destroy() {
	for !p.Empty() {
		p.Walk()
	}
}

// Points collects every remaining point in the path, in order, without
// consuming the path.
func (p *Path) Points() []grid.Point {
	var pts []grid.Point
	for n := p.Head; n != nil; n = n.Next {
		pts = append(pts, n.Point)
	}
	return pts
}

// Len returns the number of remaining nodes.
func (p *Path) Len() int {
	n := 0
	for cur := p.Head; cur != nil; cur = cur.Next {
		n++
	}
	return n
}
