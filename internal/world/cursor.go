package world

import "sort"

// AreaCursor produces unit snapshots matching a spatial predicate, one per
// Next call. The scan runs over the directory's creation-order node slice,
// so results are deterministic but carry no geometric ordering. A cursor is
// valid only within the tick it was created in.
type AreaCursor struct {
	nodes []*Node
	pred  func(Unit) bool
	i     int
}

// Next returns the next matching unit, or ok=false when the scan is done.
// Calling Next after exhaustion keeps returning the zero Unit.
func (c *AreaCursor) Next() (Unit, bool) {
	for c.i < len(c.nodes) {
		u := c.nodes[c.i].unit
		c.i++
		if c.pred == nil || c.pred(u) {
			return u, true
		}
	}
	return Unit{}, false
}

// QueryInRange returns a cursor over all units within maxDist tiles
// (Chebyshev) of center.
func (d *Directory) QueryInRange(center Location, maxDist uint32) *AreaCursor {
	return &AreaCursor{
		nodes: d.nodes,
		pred:  func(u Unit) bool { return u.Loc.Dist(center) <= maxDist },
	}
}

// QueryInRect returns a cursor over all units inside the rect (inclusive).
func (d *Directory) QueryInRect(r Rect) *AreaCursor {
	r = r.Normalized()
	return &AreaCursor{
		nodes: d.nodes,
		pred:  func(u Unit) bool { return r.Contains(u.Loc) },
	}
}

// QueryAt returns a cursor over the units occupying one exact tile,
// resolved through the tile grid in ascending ID order.
func (d *Directory) QueryAt(loc Location) *AreaCursor {
	ids := d.grid.OccupantsAt(loc)
	nodes := make([]*Node, 0, len(ids))
	for _, id := range ids {
		if n, ok := d.byID[id]; ok {
			nodes = append(nodes, n)
		}
	}
	return &AreaCursor{nodes: nodes}
}

// ClosestCursor produces unit snapshots in non-decreasing distance from a
// reference point, each paired with its tile distance. Ties are broken by
// ascending unit ID. Valid only within the tick it was created in.
type ClosestCursor struct {
	ranked []rankedUnit
	i      int
}

type rankedUnit struct {
	unit Unit
	dist uint32
}

// Next returns the next-nearest unit and its distance, or ok=false when
// every unit has been produced.
func (c *ClosestCursor) Next() (Unit, uint32, bool) {
	if c.i >= len(c.ranked) {
		return Unit{}, 0, false
	}
	r := c.ranked[c.i]
	c.i++
	return r.unit, r.dist, true
}

// QueryClosest returns a cursor over all units ordered by distance to loc.
// The ranking is fixed when the cursor is created.
func (d *Directory) QueryClosest(loc Location) *ClosestCursor {
	ranked := make([]rankedUnit, 0, len(d.nodes))
	for _, n := range d.nodes {
		ranked = append(ranked, rankedUnit{unit: n.unit, dist: n.unit.Loc.Dist(loc)})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].dist != ranked[j].dist {
			return ranked[i].dist < ranked[j].dist
		}
		return ranked[i].unit.ID < ranked[j].unit.ID
	})
	return &ClosestCursor{ranked: ranked}
}
