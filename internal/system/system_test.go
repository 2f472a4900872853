package system

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/colonysim/server/internal/data"
	"github.com/colonysim/server/internal/scripting"
	"github.com/colonysim/server/internal/world"
)

func TestMissionSystemFiresOnInterval(t *testing.T) {
	dir := world.NewDirectory(2)
	e, err := scripting.NewEngine(t.TempDir(), dir, zap.NewNop())
	require.NoError(t, err)
	defer e.Close()
	require.NoError(t, e.DoString(`calls = 0
function ai_proc() calls = calls + 1 end`))

	s := NewMissionSystem(e, 4)
	for i := 0; i < 8; i++ {
		s.Update(100 * time.Millisecond)
	}
	require.NoError(t, e.DoString(`assert(calls == 2)`))
}

func TestWanderSystemMovesOnlyMobileUnits(t *testing.T) {
	dir := world.NewDirectory(1)
	tank := dir.AddUnit(world.Tank, 0, world.Location{X: 50, Y: 50}, 350)
	smelter := dir.AddUnit(world.Smelter, 0, world.Location{X: 60, Y: 60}, 900)

	table := loadTestUnitTable(t)
	s := NewWanderSystem(dir, table)

	// Run enough gated ticks that a random walk almost surely steps.
	moved := false
	for i := 0; i < 500 && !moved; i++ {
		s.Update(100 * time.Millisecond)
		u, _ := dir.Get(tank.ID)
		moved = u.Loc != tank.Loc
	}
	assert.True(t, moved, "mobile vehicle eventually wanders")

	u, _ := dir.Get(smelter.ID)
	assert.Equal(t, smelter.Loc, u.Loc, "structures never move")
}

func loadTestUnitTable(t *testing.T) *data.UnitTable {
	t.Helper()
	path := filepath.Join(t.TempDir(), "unit_list.yaml")
	yaml := `
units:
  - { type: Tank, hp: 350, armor: 4, move_speed: 1, build_cost: 1000 }
  - { type: Smelter, hp: 900, armor: 4, move_speed: 0, build_cost: 1500 }
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	table, err := data.LoadUnitTable(path)
	require.NoError(t, err)
	return table
}
