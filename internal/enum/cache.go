package enum

import "github.com/colonysim/server/internal/world"

// UnitCache holds owned copies of units produced by list traversal, so a
// pointer handed to a caller stays valid after the iterator advances even
// though directory nodes are transient. Entries are only ever appended,
// never mutated. Each enumerator owns one cache; it is not shared.
type UnitCache struct {
	entries map[*world.Node]*world.Unit
}

func NewUnitCache() *UnitCache {
	return &UnitCache{entries: make(map[*world.Node]*world.Unit)}
}

// Insert stores a snapshot of the node on first sight and returns a pointer
// to the stored copy. Repeated calls for the same node return the same
// pointer, not a duplicate.
func (c *UnitCache) Insert(n *world.Node) *world.Unit {
	if u, ok := c.entries[n]; ok {
		return u
	}
	u := new(world.Unit)
	*u = n.Unit()
	c.entries[n] = u
	return u
}

// Len returns the number of cached units.
func (c *UnitCache) Len() int { return len(c.entries) }
