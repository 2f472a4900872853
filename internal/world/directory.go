package world

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Node is a live directory record: unit data plus intrusive links into the
// owning player's lists. Node pointers are transient — they are only valid
// within the tick they were obtained, since the directory relinks and
// releases nodes between ticks. A removed node keeps its forward links, so
// a traversal that outlives the record walks the old chain to exhaustion
// instead of faulting.
type Node struct {
	unit      Unit
	nextOwned *Node // next unit owned by the same player (all-units list)
	nextKind  *Node // next unit on the same vehicle/structure list
}

// Unit returns a value snapshot of the record.
func (n *Node) Unit() Unit { return n.unit }

// Next returns the following node on the given list, or nil at the tail.
func (n *Node) Next(cat Category) *Node {
	if cat == AllUnits {
		return n.nextOwned
	}
	return n.nextKind
}

// playerLists holds one player's unit list heads and tails, indexed by
// Category. Tails give O(1) append so list order is creation order.
type playerLists struct {
	defeated bool
	heads    [3]*Node
	tails    [3]*Node
}

// Directory is the authoritative store of live units: per-player category
// lists for ownership traversal, a tile grid for point queries, and an
// insertion-ordered node slice for area scans.
// Accessed only from the game loop goroutine — no locks.
type Directory struct {
	players []playerLists
	byID    map[int32]*Node
	nodes   []*Node // all live nodes in creation order
	grid    *TileGrid
	nextID  int32
	tick    int64
}

// NewDirectory creates an empty directory for the given player count.
func NewDirectory(numPlayers int) *Directory {
	if numPlayers < 0 {
		numPlayers = 0
	}
	return &Directory{
		players: make([]playerLists, numPlayers),
		byID:    make(map[int32]*Node),
		grid:    NewTileGrid(),
		nextID:  1,
	}
}

// PlayerCount returns the number of player slots.
func (d *Directory) PlayerCount() int { return len(d.players) }

// UnitCount returns the number of live units.
func (d *Directory) UnitCount() int { return len(d.byID) }

// Tick returns the current simulation tick.
func (d *Directory) Tick() int64 { return d.tick }

// AdvanceTick moves the simulation clock forward one tick. Iterators and
// node references obtained before this call must not be used after it.
func (d *Directory) AdvanceTick() { d.tick++ }

// kindList maps a unit type to its vehicle/structure list index, or -1 for
// types that only appear on the all-units list (projectiles).
func kindList(t UnitType) Category {
	switch {
	case t.IsVehicle():
		return Vehicles
	case t.IsStructure():
		return Structures
	}
	return -1
}

// AddUnit creates a unit and links it into the owner's lists and the tile
// grid. An out-of-range owner or the AnyUnit sentinel yields the zero Unit.
func (d *Directory) AddUnit(typ UnitType, owner int32, loc Location, hp int32) Unit {
	if typ == AnyUnit || owner < 0 || int(owner) >= len(d.players) {
		return Unit{}
	}
	n := &Node{unit: Unit{
		ID:    d.nextID,
		Type:  typ,
		Owner: owner,
		Loc:   loc,
		HP:    hp,
	}}
	d.nextID++

	p := &d.players[owner]
	d.appendNode(p, AllUnits, n)
	if kind := kindList(typ); kind >= 0 {
		d.appendNode(p, kind, n)
	}

	d.byID[n.unit.ID] = n
	d.nodes = append(d.nodes, n)
	d.grid.Occupy(loc, n.unit.ID)
	return n.unit
}

func (d *Directory) appendNode(p *playerLists, cat Category, n *Node) {
	if p.tails[cat] == nil {
		p.heads[cat] = n
		p.tails[cat] = n
		return
	}
	if cat == AllUnits {
		p.tails[cat].nextOwned = n
	} else {
		p.tails[cat].nextKind = n
	}
	p.tails[cat] = n
}

// RemoveUnit unlinks a unit from all indices and returns its last snapshot,
// or the zero Unit if the ID is unknown. The removed node keeps its own
// forward links (see Node).
func (d *Directory) RemoveUnit(id int32) Unit {
	n, ok := d.byID[id]
	if !ok {
		return Unit{}
	}
	p := &d.players[n.unit.Owner]
	d.unlinkNode(p, AllUnits, n)
	if kind := kindList(n.unit.Type); kind >= 0 {
		d.unlinkNode(p, kind, n)
	}

	delete(d.byID, id)
	for i, m := range d.nodes {
		if m == n {
			d.nodes = append(d.nodes[:i], d.nodes[i+1:]...)
			break
		}
	}
	d.grid.Vacate(n.unit.Loc, id)
	return n.unit
}

func (d *Directory) unlinkNode(p *playerLists, cat Category, n *Node) {
	var prev *Node
	for cur := p.heads[cat]; cur != nil; cur = cur.Next(cat) {
		if cur != n {
			prev = cur
			continue
		}
		if prev == nil {
			p.heads[cat] = n.Next(cat)
		} else if cat == AllUnits {
			prev.nextOwned = n.nextOwned
		} else {
			prev.nextKind = n.nextKind
		}
		if p.tails[cat] == n {
			p.tails[cat] = prev
		}
		return
	}
}

// MoveUnit updates a unit's tile and keeps the grid consistent. All unit
// position changes MUST go through this method.
func (d *Directory) MoveUnit(id int32, loc Location) {
	n, ok := d.byID[id]
	if !ok {
		return
	}
	old := n.unit.Loc
	n.unit.Loc = loc
	d.grid.Move(old, loc, id)
}

// Get returns a snapshot of the unit with the given ID.
func (d *Directory) Get(id int32) (Unit, bool) {
	n, ok := d.byID[id]
	if !ok {
		return Unit{}, false
	}
	return n.unit, true
}

// Defeat marks a player as defeated. Ownership traversal over a defeated
// player resolves to an empty list; the player's units stay on the map and
// remain visible to spatial queries.
func (d *Directory) Defeat(owner int32) {
	if owner < 0 || int(owner) >= len(d.players) {
		return
	}
	d.players[owner].defeated = true
}

// ListHead resolves a player's current list head for the given category.
// Out-of-range and defeated players resolve to nil — mission loops commonly
// enumerate player indices past the active count, and that must read as an
// empty list rather than a fault.
func (d *Directory) ListHead(owner int32, cat Category) *Node {
	if owner < 0 || int(owner) >= len(d.players) {
		return nil
	}
	p := &d.players[owner]
	if p.defeated {
		return nil
	}
	return p.heads[cat]
}

// Grid exposes the tile occupancy grid for host collision checks.
func (d *Directory) Grid() *TileGrid { return d.grid }

// Checksum digests all live units (ID, type, owner, position) in creation
// order. Two directories that applied the same mutation sequence produce
// the same checksum.
func (d *Directory) Checksum() uint64 {
	h := xxhash.New()
	var buf [20]byte
	for _, n := range d.nodes {
		binary.LittleEndian.PutUint32(buf[0:], uint32(n.unit.ID))
		binary.LittleEndian.PutUint32(buf[4:], uint32(n.unit.Type))
		binary.LittleEndian.PutUint32(buf[8:], uint32(n.unit.Owner))
		binary.LittleEndian.PutUint32(buf[12:], uint32(n.unit.Loc.X))
		binary.LittleEndian.PutUint32(buf[16:], uint32(n.unit.Loc.Y))
		h.Write(buf[:])
	}
	return h.Sum64()
}
