package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonysim/server/internal/world"
)

// testDirectory builds a 4-player world with a small mixed force for
// player 1: Tank, Silo, Tank in creation order, plus a scout for player 2.
func testDirectory(t *testing.T) (*world.Directory, []world.Unit) {
	t.Helper()
	d := world.NewDirectory(4)
	units := []world.Unit{
		d.AddUnit(world.Tank, 1, world.Location{X: 10, Y: 10}, 350),
		d.AddUnit(world.Silo, 1, world.Location{X: 12, Y: 10}, 400),
		d.AddUnit(world.Tank, 1, world.Location{X: 14, Y: 10}, 350),
		d.AddUnit(world.Scout, 2, world.Location{X: 50, Y: 50}, 100),
	}
	for _, u := range units {
		require.False(t, u.IsZero(), "fixture unit must spawn")
	}
	return d, units
}

func collect(it FilterIterator) []world.Unit {
	var out []world.Unit
	for ; it.HasCurrent(); it.Advance() {
		out = append(out, *it.Current())
	}
	return out
}

func collectArea(it AreaIterator) []world.Unit {
	var out []world.Unit
	for ; it.HasCurrent(); it.Advance() {
		out = append(out, it.Current())
	}
	return out
}

func TestFilterSkipsNonMatchingUnits(t *testing.T) {
	d, units := testDirectory(t)

	e := NewPlayerUnitEnum(d, 1, world.Tank)
	got := collect(e.Begin())

	require.Len(t, got, 2)
	assert.Equal(t, units[0].ID, got[0].ID, "first tank in list order")
	assert.Equal(t, units[2].ID, got[1].ID, "silo skipped, second tank next")
	for _, u := range got {
		assert.Equal(t, world.Tank, u.Type)
	}
}

func TestFilterSkipsNonMatchingHead(t *testing.T) {
	d, units := testDirectory(t)

	// Head of player 1's all-units list is a Tank; filtering for Silo must
	// skip it during construction, not just on Advance.
	e := NewPlayerUnitEnum(d, 1, world.Silo)
	it := e.Begin()
	require.True(t, it.HasCurrent())
	assert.Equal(t, units[1].ID, it.Current().ID)

	it.Advance()
	assert.False(t, it.HasCurrent())
}

func TestAnyUnitMatchesEverything(t *testing.T) {
	d, _ := testDirectory(t)

	e := NewPlayerUnitEnum(d, 1, world.AnyUnit)
	got := collect(e.Begin())
	assert.Len(t, got, 3)
}

func TestCategoryListsAreDisjoint(t *testing.T) {
	d, units := testDirectory(t)

	vehicles := collect(NewPlayerVehicleEnum(d, 1, world.AnyUnit).Begin())
	structures := collect(NewPlayerStructureEnum(d, 1, world.AnyUnit).Begin())

	require.Len(t, vehicles, 2)
	require.Len(t, structures, 1)
	assert.Equal(t, units[1].ID, structures[0].ID)
	for _, u := range vehicles {
		assert.True(t, u.Type.IsVehicle())
	}
}

func TestEmptyDirectoryAllEnumeratorsExhausted(t *testing.T) {
	d := world.NewDirectory(4)

	cat := NewPlayerUnitEnum(d, 0, world.AnyUnit)
	assert.True(t, cat.Begin().Equal(cat.End()), "category begin == end")

	rng := NewInRangeEnumerator(d, world.Location{X: 5, Y: 5}, 100)
	assert.True(t, rng.Begin().Equal(rng.End()), "range begin == end")

	rect := NewInRectEnumerator(d, world.Rect{X1: 0, Y1: 0, X2: 100, Y2: 100})
	assert.True(t, rect.Begin().Equal(rect.End()), "rect begin == end")

	at := NewAtLocationEnumerator(d, world.Location{X: 5, Y: 5})
	assert.True(t, at.Begin().Equal(at.End()), "point begin == end")

	closest := NewClosestEnumerator(d, world.Location{X: 5, Y: 5})
	assert.True(t, closest.Begin().Equal(closest.End()), "closest begin == end")
}

func TestInvalidPlayerScopeYieldsEmptySequence(t *testing.T) {
	d, _ := testDirectory(t)

	for _, player := range []int32{99, -1, 4} {
		e := NewPlayerUnitEnum(d, player, world.AnyUnit)
		it := e.Begin()
		assert.False(t, it.HasCurrent(), "player %d must read as empty", player)
		assert.True(t, it.Equal(e.End()))
	}
}

func TestDefeatedPlayerYieldsEmptySequence(t *testing.T) {
	d, _ := testDirectory(t)
	d.Defeat(1)

	e := NewPlayerUnitEnum(d, 1, world.AnyUnit)
	assert.True(t, e.Begin().Equal(e.End()))

	// Units of the defeated player stay visible to spatial queries.
	rng := NewInRangeEnumerator(d, world.Location{X: 12, Y: 10}, 5)
	assert.NotEmpty(t, collectArea(rng.Begin()))
}

func TestAdvanceOnExhaustedIsNoOp(t *testing.T) {
	d, _ := testDirectory(t)

	it := NewPlayerUnitEnum(d, 2, world.AnyUnit).Begin()
	it.Advance()
	require.False(t, it.HasCurrent())
	it.Advance()
	it.Advance()
	assert.False(t, it.HasCurrent(), "exhausted is absorbing")
	assert.Nil(t, it.Current())

	area := NewInRangeEnumerator(d, world.Location{X: 50, Y: 50}, 0).Begin()
	area.Advance()
	require.False(t, area.HasCurrent())
	area.Advance()
	assert.False(t, area.HasCurrent())
	assert.True(t, area.Current().IsZero())
}

func TestCurrentIsStableBetweenAdvances(t *testing.T) {
	d, _ := testDirectory(t)

	it := NewPlayerUnitEnum(d, 1, world.AnyUnit).Begin()
	first := it.Current()
	second := it.Current()
	assert.Same(t, first, second, "repeated Current without Advance")

	area := NewInRangeEnumerator(d, world.Location{X: 10, Y: 10}, 50).Begin()
	assert.Equal(t, area.Current(), area.Current())
}

func TestCacheKeepsReturnedUnitsValid(t *testing.T) {
	d, _ := testDirectory(t)

	e := NewPlayerUnitEnum(d, 1, world.AnyUnit)
	it := e.Begin()
	var seen []*world.Unit
	for ; it.HasCurrent(); it.Advance() {
		seen = append(seen, it.Current())
	}
	require.Len(t, seen, 3)

	// All pointers remain simultaneously valid after full traversal.
	assert.Equal(t, world.Tank, seen[0].Type)
	assert.Equal(t, world.Silo, seen[1].Type)
	assert.Equal(t, world.Tank, seen[2].Type)

	// A second pass hands back the same cached storage per node.
	it2 := e.Begin()
	assert.Same(t, seen[0], it2.Current())
}

func TestRestartabilityProducesIdenticalSequences(t *testing.T) {
	d, _ := testDirectory(t)

	e := NewPlayerVehicleEnum(d, 1, world.AnyUnit)
	first := collect(e.Begin())
	second := collect(e.Begin())
	assert.Equal(t, first, second)
}

func TestRestartReflectsDirectoryMutation(t *testing.T) {
	d, units := testDirectory(t)

	e := NewPlayerUnitEnum(d, 1, world.Tank)
	require.Len(t, collect(e.Begin()), 2)

	d.RemoveUnit(units[0].ID)
	got := collect(e.Begin())
	require.Len(t, got, 1, "begin re-resolves the list head")
	assert.Equal(t, units[2].ID, got[0].ID)
}

func TestInRangeMatchesChebyshevDistance(t *testing.T) {
	d := world.NewDirectory(2)
	in := d.AddUnit(world.Tank, 0, world.Location{X: 10, Y: 13}, 350)   // dist 3
	edge := d.AddUnit(world.Tank, 0, world.Location{X: 15, Y: 10}, 350) // dist 5
	d.AddUnit(world.Tank, 0, world.Location{X: 16, Y: 10}, 350)        // dist 6, out

	got := collectArea(NewInRangeEnumerator(d, world.Location{X: 10, Y: 10}, 5).Begin())
	require.Len(t, got, 2)
	ids := []int32{got[0].ID, got[1].ID}
	assert.Contains(t, ids, in.ID)
	assert.Contains(t, ids, edge.ID)
}

func TestInRectYieldsOnlyContainedUnits(t *testing.T) {
	d := world.NewDirectory(2)
	inside := d.AddUnit(world.Smelter, 0, world.Location{X: 5, Y: 5}, 900)
	d.AddUnit(world.Smelter, 0, world.Location{X: 30, Y: 30}, 900) // outside

	got := collectArea(NewInRectEnumerator(d, world.Rect{X1: 0, Y1: 0, X2: 10, Y2: 10}).Begin())
	require.Len(t, got, 1)
	assert.Equal(t, inside.ID, got[0].ID)
}

func TestInRectAcceptsSwappedCorners(t *testing.T) {
	d := world.NewDirectory(2)
	u := d.AddUnit(world.Tank, 0, world.Location{X: 5, Y: 5}, 350)

	got := collectArea(NewInRectEnumerator(d, world.Rect{X1: 10, Y1: 10, X2: 0, Y2: 0}).Begin())
	require.Len(t, got, 1)
	assert.Equal(t, u.ID, got[0].ID)
}

func TestAtLocationYieldsExactTileOnly(t *testing.T) {
	d := world.NewDirectory(2)
	a := d.AddUnit(world.Tank, 0, world.Location{X: 7, Y: 7}, 350)
	b := d.AddUnit(world.Projectile, 1, world.Location{X: 7, Y: 7}, 1)
	d.AddUnit(world.Tank, 0, world.Location{X: 7, Y: 8}, 350)

	got := collectArea(NewAtLocationEnumerator(d, world.Location{X: 7, Y: 7}).Begin())
	require.Len(t, got, 2)
	assert.Equal(t, a.ID, got[0].ID, "point results come in ascending ID order")
	assert.Equal(t, b.ID, got[1].ID)
}

func TestClosestYieldsNondecreasingDistance(t *testing.T) {
	d := world.NewDirectory(2)
	// Distances 5, 1, 3 from the reference point, created out of order.
	far := d.AddUnit(world.Tank, 0, world.Location{X: 15, Y: 10}, 350)
	near := d.AddUnit(world.Tank, 0, world.Location{X: 11, Y: 10}, 350)
	mid := d.AddUnit(world.Tank, 0, world.Location{X: 13, Y: 10}, 350)

	var got []UnitDist
	for it := NewClosestEnumerator(d, world.Location{X: 10, Y: 10}).Begin(); it.HasCurrent(); it.Advance() {
		got = append(got, it.Current())
	}

	require.Len(t, got, 3)
	assert.Equal(t, []int32{near.ID, mid.ID, far.ID}, []int32{got[0].Unit.ID, got[1].Unit.ID, got[2].Unit.ID})
	assert.Equal(t, []uint32{1, 3, 5}, []uint32{got[0].Dist, got[1].Dist, got[2].Dist})

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i].Dist, got[i-1].Dist)
	}
}

func TestClosestBreaksTiesByUnitID(t *testing.T) {
	d := world.NewDirectory(2)
	a := d.AddUnit(world.Tank, 0, world.Location{X: 12, Y: 10}, 350)
	b := d.AddUnit(world.Tank, 0, world.Location{X: 10, Y: 12}, 350) // same dist 2
	require.Less(t, a.ID, b.ID)

	it := NewClosestEnumerator(d, world.Location{X: 10, Y: 10}).Begin()
	assert.Equal(t, a.ID, it.Current().Unit.ID)
	it.Advance()
	assert.Equal(t, b.ID, it.Current().Unit.ID)
}

func TestAreaIteratorEqualityDetectsExhaustion(t *testing.T) {
	d, _ := testDirectory(t)

	e := NewInRangeEnumerator(d, world.Location{X: 10, Y: 10}, 50)
	it := e.Begin()
	assert.False(t, it.Equal(e.End()), "in-progress iterator differs from end")
	for it.HasCurrent() {
		it.Advance()
	}
	assert.True(t, it.Equal(e.End()))
}

func TestListIteratorEquality(t *testing.T) {
	d, _ := testDirectory(t)

	e := NewPlayerUnitEnum(d, 1, world.AnyUnit)
	a := e.Begin()
	b := e.Begin()
	assert.True(t, a.Equal(b), "both reference the head node")

	a.Advance()
	assert.False(t, a.Equal(b))

	for a.HasCurrent() {
		a.Advance()
	}
	assert.True(t, a.Equal(e.End()), "exhausted equals end")
}

func TestUnitCacheIdempotentPerNode(t *testing.T) {
	d, _ := testDirectory(t)

	cache := NewUnitCache()
	node := d.ListHead(1, world.AllUnits)
	require.NotNil(t, node)

	first := cache.Insert(node)
	second := cache.Insert(node)
	assert.Same(t, first, second)
	assert.Equal(t, 1, cache.Len())
}
