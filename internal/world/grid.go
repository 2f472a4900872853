package world

import "sort"

// TileGrid is a tile occupancy map for O(1) point queries.
// Supports multiple occupants per tile (projectiles pass over units).
// Accessed only from the game loop goroutine — no locks.
type TileGrid struct {
	tiles map[Location]map[int32]struct{}
}

func NewTileGrid() *TileGrid {
	return &TileGrid{tiles: make(map[Location]map[int32]struct{})}
}

// Occupy marks a unit as occupying a tile.
func (g *TileGrid) Occupy(loc Location, unitID int32) {
	cell := g.tiles[loc]
	if cell == nil {
		cell = make(map[int32]struct{}, 1)
		g.tiles[loc] = cell
	}
	cell[unitID] = struct{}{}
}

// Vacate removes a unit from a tile.
func (g *TileGrid) Vacate(loc Location, unitID int32) {
	cell := g.tiles[loc]
	if cell != nil {
		delete(cell, unitID)
		if len(cell) == 0 {
			delete(g.tiles, loc)
		}
	}
}

// Move atomically vacates the old tile and occupies the new one.
func (g *TileGrid) Move(old, new Location, unitID int32) {
	if old == new {
		return
	}
	g.Vacate(old, unitID)
	g.Occupy(new, unitID)
}

// IsOccupied returns true if any unit other than excludeID occupies the tile.
func (g *TileGrid) IsOccupied(loc Location, excludeID int32) bool {
	cell := g.tiles[loc]
	if len(cell) == 0 {
		return false
	}
	for id := range cell {
		if id != excludeID {
			return true
		}
	}
	return false
}

// OccupantsAt returns the unit IDs on a tile in ascending order.
// Sorted so that point queries enumerate deterministically.
func (g *TileGrid) OccupantsAt(loc Location) []int32 {
	cell := g.tiles[loc]
	if len(cell) == 0 {
		return nil
	}
	ids := make([]int32, 0, len(cell))
	for id := range cell {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
