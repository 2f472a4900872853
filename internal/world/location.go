package world

// Location is a tile coordinate on the map.
type Location struct {
	X, Y int32
}

// Dist returns the Chebyshev tile distance to o: the number of steps a
// unit needs when diagonal moves count as one.
func (l Location) Dist(o Location) uint32 {
	dx := l.X - o.X
	if dx < 0 {
		dx = -dx
	}
	dy := l.Y - o.Y
	if dy < 0 {
		dy = -dy
	}
	if dy > dx {
		dx = dy
	}
	return uint32(dx)
}

// Rect is an axis-aligned tile rectangle, inclusive on all edges.
type Rect struct {
	X1, Y1 int32 // top-left
	X2, Y2 int32 // bottom-right
}

// Normalized returns the rect with corners reordered so X1<=X2 and Y1<=Y2.
func (r Rect) Normalized() Rect {
	if r.X1 > r.X2 {
		r.X1, r.X2 = r.X2, r.X1
	}
	if r.Y1 > r.Y2 {
		r.Y1, r.Y2 = r.Y2, r.Y1
	}
	return r
}

// Contains reports whether the tile lies inside the rect (edges included).
func (r Rect) Contains(l Location) bool {
	return l.X >= r.X1 && l.X <= r.X2 && l.Y >= r.Y1 && l.Y <= r.Y2
}
