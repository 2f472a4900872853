package system

import (
	"time"

	coresys "github.com/colonysim/server/internal/core/system"
	"github.com/colonysim/server/internal/scripting"
)

// MissionSystem drives the mission script. Phase 0 (Update) — fires the
// Lua ai_proc callback every interval ticks, matching the classic mission
// cadence of one AI pass per 4 simulation ticks.
type MissionSystem struct {
	lua       *scripting.Engine
	interval  int
	tickCount int
}

func NewMissionSystem(lua *scripting.Engine, interval int) *MissionSystem {
	if interval < 1 {
		interval = 1
	}
	return &MissionSystem{lua: lua, interval: interval}
}

func (s *MissionSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *MissionSystem) Update(_ time.Duration) {
	s.tickCount++
	if s.tickCount%s.interval == 0 {
		s.lua.AIProc()
	}
}
