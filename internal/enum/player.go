package enum

import "github.com/colonysim/server/internal/world"

// playerEnum is the shared core of the per-player category enumerators.
// Begin re-resolves the player's current list head on every call, so a
// second pass after mutation reflects the directory's new state. The unit
// cache lives here, not on the iterators, so units returned across several
// iterators of one enumeration session stay valid together.
type playerEnum struct {
	dir    *world.Directory
	player int32
	cat    world.Category
	filter world.UnitType
	cache  *UnitCache
}

func newPlayerEnum(dir *world.Directory, player int32, cat world.Category, filter world.UnitType) playerEnum {
	return playerEnum{
		dir:    dir,
		player: player,
		cat:    cat,
		filter: filter,
		cache:  NewUnitCache(),
	}
}

// Begin resolves the list head now and returns a filtered iterator over it.
// An out-of-range or defeated player resolves to an empty list, so Begin
// equals End rather than failing.
func (e *playerEnum) Begin() FilterIterator {
	return NewFilterIterator(e.dir.ListHead(e.player, e.cat), e.cat, e.filter, e.cache)
}

// End returns the exhausted iterator.
func (e *playerEnum) End() FilterIterator {
	return NewFilterIterator(nil, e.cat, e.filter, e.cache)
}

// PlayerVehicleEnum enumerates a player's vehicles, optionally restricted
// to one unit type.
type PlayerVehicleEnum struct{ playerEnum }

func NewPlayerVehicleEnum(dir *world.Directory, player int32, filter world.UnitType) *PlayerVehicleEnum {
	return &PlayerVehicleEnum{newPlayerEnum(dir, player, world.Vehicles, filter)}
}

// PlayerStructureEnum enumerates a player's structures, optionally
// restricted to one unit type.
type PlayerStructureEnum struct{ playerEnum }

func NewPlayerStructureEnum(dir *world.Directory, player int32, filter world.UnitType) *PlayerStructureEnum {
	return &PlayerStructureEnum{newPlayerEnum(dir, player, world.Structures, filter)}
}

// PlayerUnitEnum enumerates everything a player owns, optionally restricted
// to one unit type.
type PlayerUnitEnum struct{ playerEnum }

func NewPlayerUnitEnum(dir *world.Directory, player int32, filter world.UnitType) *PlayerUnitEnum {
	return &PlayerUnitEnum{newPlayerEnum(dir, player, world.AllUnits, filter)}
}
