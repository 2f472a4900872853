package scripting

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/colonysim/server/internal/enum"
	"github.com/colonysim/server/internal/world"
)

// registerAPI binds the unit enumeration surface into the VM as globals.
// Every query runs lazily through the enum package and materializes into a
// Lua array only at the script boundary.
func (e *Engine) registerAPI() {
	e.vm.SetGlobal("player_vehicles", e.vm.NewFunction(e.luaPlayerVehicles))
	e.vm.SetGlobal("player_structures", e.vm.NewFunction(e.luaPlayerStructures))
	e.vm.SetGlobal("player_units", e.vm.NewFunction(e.luaPlayerUnits))
	e.vm.SetGlobal("units_in_range", e.vm.NewFunction(e.luaUnitsInRange))
	e.vm.SetGlobal("units_in_rect", e.vm.NewFunction(e.luaUnitsInRect))
	e.vm.SetGlobal("units_at", e.vm.NewFunction(e.luaUnitsAt))
	e.vm.SetGlobal("closest_units", e.vm.NewFunction(e.luaClosestUnits))
	e.vm.SetGlobal("unit_info", e.vm.NewFunction(e.luaUnitInfo))
	e.vm.SetGlobal("unit_count", e.vm.NewFunction(e.luaUnitCount))
	e.vm.SetGlobal("tick", e.vm.NewFunction(e.luaTick))
}

// unitTable converts a unit snapshot into a Lua table.
func (e *Engine) unitTable(u world.Unit) *lua.LTable {
	t := e.vm.NewTable()
	t.RawSetString("id", lua.LNumber(u.ID))
	t.RawSetString("type", lua.LString(u.Type.String()))
	t.RawSetString("owner", lua.LNumber(u.Owner))
	t.RawSetString("x", lua.LNumber(u.Loc.X))
	t.RawSetString("y", lua.LNumber(u.Loc.Y))
	t.RawSetString("hp", lua.LNumber(u.HP))
	return t
}

// optFilter reads an optional unit type name argument.
func optFilter(L *lua.LState, pos int) world.UnitType {
	if L.GetTop() < pos {
		return world.AnyUnit
	}
	name := L.CheckString(pos)
	t, ok := world.UnitTypeByName(name)
	if !ok {
		L.ArgError(pos, "unknown unit type "+name)
	}
	return t
}

func (e *Engine) luaPlayerVehicles(L *lua.LState) int {
	player := int32(L.CheckInt(1))
	en := enum.NewPlayerVehicleEnum(e.dir, player, optFilter(L, 2))
	return e.pushListResults(L, en.Begin())
}

func (e *Engine) luaPlayerStructures(L *lua.LState) int {
	player := int32(L.CheckInt(1))
	en := enum.NewPlayerStructureEnum(e.dir, player, optFilter(L, 2))
	return e.pushListResults(L, en.Begin())
}

func (e *Engine) luaPlayerUnits(L *lua.LState) int {
	player := int32(L.CheckInt(1))
	en := enum.NewPlayerUnitEnum(e.dir, player, optFilter(L, 2))
	return e.pushListResults(L, en.Begin())
}

func (e *Engine) pushListResults(L *lua.LState, it enum.FilterIterator) int {
	out := L.NewTable()
	for ; it.HasCurrent(); it.Advance() {
		out.Append(e.unitTable(*it.Current()))
	}
	L.Push(out)
	return 1
}

func (e *Engine) luaUnitsInRange(L *lua.LState) int {
	center := world.Location{X: int32(L.CheckInt(1)), Y: int32(L.CheckInt(2))}
	dist := L.CheckInt(3)
	if dist < 0 {
		dist = 0
	}
	en := enum.NewInRangeEnumerator(e.dir, center, uint32(dist))
	return e.pushAreaResults(L, en.Begin())
}

func (e *Engine) luaUnitsInRect(L *lua.LState) int {
	rect := world.Rect{
		X1: int32(L.CheckInt(1)), Y1: int32(L.CheckInt(2)),
		X2: int32(L.CheckInt(3)), Y2: int32(L.CheckInt(4)),
	}
	en := enum.NewInRectEnumerator(e.dir, rect)
	return e.pushAreaResults(L, en.Begin())
}

func (e *Engine) luaUnitsAt(L *lua.LState) int {
	loc := world.Location{X: int32(L.CheckInt(1)), Y: int32(L.CheckInt(2))}
	en := enum.NewAtLocationEnumerator(e.dir, loc)
	return e.pushAreaResults(L, en.Begin())
}

func (e *Engine) pushAreaResults(L *lua.LState, it enum.AreaIterator) int {
	out := L.NewTable()
	for ; it.HasCurrent(); it.Advance() {
		out.Append(e.unitTable(it.Current()))
	}
	L.Push(out)
	return 1
}

// luaClosestUnits returns units ordered nearest-first, each table carrying
// a "dist" field. An optional third argument caps the result count.
func (e *Engine) luaClosestUnits(L *lua.LState) int {
	loc := world.Location{X: int32(L.CheckInt(1)), Y: int32(L.CheckInt(2))}
	max := -1
	if L.GetTop() >= 3 {
		max = L.CheckInt(3)
	}
	en := enum.NewClosestEnumerator(e.dir, loc)
	out := L.NewTable()
	n := 0
	for it := en.Begin(); it.HasCurrent(); it.Advance() {
		if max >= 0 && n >= max {
			break
		}
		cur := it.Current()
		t := e.unitTable(cur.Unit)
		t.RawSetString("dist", lua.LNumber(cur.Dist))
		out.Append(t)
		n++
	}
	L.Push(out)
	return 1
}

func (e *Engine) luaUnitInfo(L *lua.LState) int {
	id := int32(L.CheckInt(1))
	u, ok := e.dir.Get(id)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(e.unitTable(u))
	return 1
}

func (e *Engine) luaUnitCount(L *lua.LState) int {
	L.Push(lua.LNumber(e.dir.UnitCount()))
	return 1
}

func (e *Engine) luaTick(L *lua.LState) int {
	L.Push(lua.LNumber(e.dir.Tick()))
	return 1
}
