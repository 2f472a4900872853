package system

import (
	"math/rand"
	"time"

	coresys "github.com/colonysim/server/internal/core/system"
	"github.com/colonysim/server/internal/data"
	"github.com/colonysim/server/internal/enum"
	"github.com/colonysim/server/internal/world"
)

// wanderInterval gates movement to every 5th tick so vehicles amble
// instead of vibrating.
const wanderInterval = 5

// WanderSystem random-walks idle vehicles one tile at a time. Phase 1
// (PostUpdate) — runs after mission logic so scripts observe positions
// from the start of the tick. Movement goes through Directory.MoveUnit to
// keep the tile grid consistent.
type WanderSystem struct {
	dir       *world.Directory
	units     *data.UnitTable
	tickCount int
}

func NewWanderSystem(dir *world.Directory, units *data.UnitTable) *WanderSystem {
	return &WanderSystem{dir: dir, units: units}
}

func (s *WanderSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *WanderSystem) Update(_ time.Duration) {
	s.tickCount++
	if s.tickCount%wanderInterval != 0 {
		return
	}
	for p := int32(0); p < int32(s.dir.PlayerCount()); p++ {
		vehicles := enum.NewPlayerVehicleEnum(s.dir, p, world.AnyUnit)
		for it := vehicles.Begin(); it.HasCurrent(); it.Advance() {
			u := it.Current()
			s.step(*u)
		}
	}
}

// step moves one vehicle a single tile in a random free direction.
func (s *WanderSystem) step(u world.Unit) {
	tpl := s.units.Get(u.Type.String())
	if tpl == nil || tpl.MoveSpeed <= 0 {
		return
	}
	dx := int32(rand.Intn(3) - 1)
	dy := int32(rand.Intn(3) - 1)
	if dx == 0 && dy == 0 {
		return
	}
	dest := world.Location{X: u.Loc.X + dx, Y: u.Loc.Y + dy}
	if dest.X < 0 || dest.Y < 0 {
		return
	}
	if s.dir.Grid().IsOccupied(dest, u.ID) {
		return
	}
	s.dir.MoveUnit(u.ID, dest)
}
