package enum

import "github.com/colonysim/server/internal/world"

// AreaIterator is the iterator shared by the spatial enumerators. It primes
// itself on construction, so a fresh iterator already holds its first
// result (or is exhausted when the query matched nothing). Current returns
// units by value — spatial queries produce snapshots, not list nodes, so no
// cache is involved.
//
// Results from range and rect queries come in the directory's internal scan
// order; callers must not read any geometric meaning into it.
type AreaIterator struct {
	cursor *world.AreaCursor
	cur    world.Unit
}

// The zero AreaIterator is the exhausted sentinel.
func newAreaIterator(cursor *world.AreaCursor) AreaIterator {
	it := AreaIterator{cursor: cursor}
	it.Advance()
	return it
}

// HasCurrent reports whether the iterator holds a result.
func (it *AreaIterator) HasCurrent() bool { return !it.cur.IsZero() }

// Advance produces the next match, or the exhausted state when the query
// has no more. Advancing an exhausted iterator leaves it exhausted.
func (it *AreaIterator) Advance() {
	if it.cursor == nil {
		return
	}
	u, ok := it.cursor.Next()
	if !ok {
		it.cur = world.Unit{}
		return
	}
	it.cur = u
}

// Current returns the last produced unit by value, or the zero Unit when
// exhausted.
func (it *AreaIterator) Current() world.Unit { return it.cur }

// Equal compares held results. Exhausted iterators hold the zero Unit and
// therefore all compare equal, which is how End is detected.
func (it AreaIterator) Equal(o AreaIterator) bool { return it.cur == o.cur }

// InRangeEnumerator enumerates all units within maxDist tiles of a point.
type InRangeEnumerator struct {
	dir     *world.Directory
	center  world.Location
	maxDist uint32
}

func NewInRangeEnumerator(dir *world.Directory, center world.Location, maxDist uint32) *InRangeEnumerator {
	return &InRangeEnumerator{dir: dir, center: center, maxDist: maxDist}
}

// Begin runs the query against the directory's current state.
func (e *InRangeEnumerator) Begin() AreaIterator {
	return newAreaIterator(e.dir.QueryInRange(e.center, e.maxDist))
}

// End returns the exhausted iterator.
func (e *InRangeEnumerator) End() AreaIterator { return AreaIterator{} }

// InRectEnumerator enumerates all units inside a tile rectangle.
type InRectEnumerator struct {
	dir  *world.Directory
	rect world.Rect
}

func NewInRectEnumerator(dir *world.Directory, rect world.Rect) *InRectEnumerator {
	return &InRectEnumerator{dir: dir, rect: rect}
}

func (e *InRectEnumerator) Begin() AreaIterator {
	return newAreaIterator(e.dir.QueryInRect(e.rect))
}

func (e *InRectEnumerator) End() AreaIterator { return AreaIterator{} }

// AtLocationEnumerator enumerates the units occupying one exact tile.
type AtLocationEnumerator struct {
	dir *world.Directory
	loc world.Location
}

func NewAtLocationEnumerator(dir *world.Directory, loc world.Location) *AtLocationEnumerator {
	return &AtLocationEnumerator{dir: dir, loc: loc}
}

func (e *AtLocationEnumerator) Begin() AreaIterator {
	return newAreaIterator(e.dir.QueryAt(e.loc))
}

func (e *AtLocationEnumerator) End() AreaIterator { return AreaIterator{} }
