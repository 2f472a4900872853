package enum

import "github.com/colonysim/server/internal/world"

// UnitDist pairs a unit with its tile distance to the query point.
type UnitDist struct {
	Unit world.Unit
	Dist uint32
}

// ClosestIterator yields every unit on the map in non-decreasing distance
// order from a reference point. The distance of successive results never
// decreases within one iterator; equal distances are ordered by unit ID.
// Primes on construction like the other spatial iterators.
type ClosestIterator struct {
	cursor *world.ClosestCursor
	cur    UnitDist
}

func newClosestIterator(cursor *world.ClosestCursor) ClosestIterator {
	it := ClosestIterator{cursor: cursor}
	it.Advance()
	return it
}

// HasCurrent reports whether the iterator holds a result.
func (it *ClosestIterator) HasCurrent() bool { return !it.cur.Unit.IsZero() }

// Advance produces the next-nearest unvisited unit. Advancing an exhausted
// iterator leaves it exhausted.
func (it *ClosestIterator) Advance() {
	if it.cursor == nil {
		return
	}
	u, dist, ok := it.cursor.Next()
	if !ok {
		it.cur = UnitDist{}
		return
	}
	it.cur = UnitDist{Unit: u, Dist: dist}
}

// Current returns the last produced unit/distance pair by value.
func (it *ClosestIterator) Current() UnitDist { return it.cur }

// Equal compares held results; exhausted iterators all compare equal.
func (it ClosestIterator) Equal(o ClosestIterator) bool { return it.cur == o.cur }

// ClosestEnumerator enumerates all units ordered by their distance to a
// reference point.
type ClosestEnumerator struct {
	dir *world.Directory
	loc world.Location
}

func NewClosestEnumerator(dir *world.Directory, loc world.Location) *ClosestEnumerator {
	return &ClosestEnumerator{dir: dir, loc: loc}
}

// Begin ranks the directory's current units and returns a primed iterator.
func (e *ClosestEnumerator) Begin() ClosestIterator {
	return newClosestIterator(e.dir.QueryClosest(e.loc))
}

// End returns the exhausted iterator.
func (e *ClosestEnumerator) End() ClosestIterator { return ClosestIterator{} }
