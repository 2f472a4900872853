// Package enum implements lazy unit enumeration for mission and AI logic:
// ownership-list traversal with type filtering, spatial queries (range,
// rect, point), and distance-ordered nearest search. All iterators share
// one shape — HasCurrent, Advance, Current, Equal — and absorb empty
// results into the exhausted state instead of returning errors.
//
// Iterators read live directory state and are valid only within the tick
// they were created in: consume or discard them before the simulation
// advances. Advancing an exhausted iterator is a no-op.
package enum

import "github.com/colonysim/server/internal/world"

// ListIterator walks one per-player category list a node at a time.
// Current values are returned through the owning enumerator's cache so
// they outlive the node being pointed at.
type ListIterator struct {
	node  *world.Node
	cat   world.Category
	cache *UnitCache
}

// NewListIterator starts a traversal at head. A nil head produces an
// iterator that is already exhausted.
func NewListIterator(head *world.Node, cat world.Category, cache *UnitCache) ListIterator {
	return ListIterator{node: head, cat: cat, cache: cache}
}

// HasCurrent reports whether the iterator references a live node.
func (it *ListIterator) HasCurrent() bool { return it.node != nil }

// Advance moves to the next node, or to the exhausted state at the tail.
// Advancing an exhausted iterator leaves it exhausted.
func (it *ListIterator) Advance() {
	if it.node != nil {
		it.node = it.node.Next(it.cat)
	}
}

// Current returns a durable pointer to the current unit, inserting it into
// the cache on first read. Returns nil when exhausted.
func (it *ListIterator) Current() *world.Unit {
	if it.node == nil {
		return nil
	}
	return it.cache.Insert(it.node)
}

// Equal reports whether both iterators reference the same node. All
// exhausted iterators compare equal to each other.
func (it ListIterator) Equal(o ListIterator) bool { return it.node == o.node }

// FilterIterator wraps a ListIterator and skips units whose type does not
// match the filter, so every produced unit satisfies it. AnyUnit disables
// filtering.
type FilterIterator struct {
	ListIterator
	filter world.UnitType
}

// NewFilterIterator starts a filtered traversal at head, skipping past a
// non-matching head immediately.
func NewFilterIterator(head *world.Node, cat world.Category, filter world.UnitType, cache *UnitCache) FilterIterator {
	it := FilterIterator{
		ListIterator: NewListIterator(head, cat, cache),
		filter:       filter,
	}
	it.skipMismatch()
	return it
}

// Advance moves past the current node and then past any non-matching ones.
func (it *FilterIterator) Advance() {
	it.ListIterator.Advance()
	it.skipMismatch()
}

func (it *FilterIterator) skipMismatch() {
	if it.filter == world.AnyUnit {
		return
	}
	for it.node != nil && it.node.Unit().Type != it.filter {
		it.ListIterator.Advance()
	}
}

// Equal reports whether both iterators reference the same node.
func (it FilterIterator) Equal(o FilterIterator) bool { return it.node == o.node }
