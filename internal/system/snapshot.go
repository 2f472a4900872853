package system

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	coresys "github.com/colonysim/server/internal/core/system"
	"github.com/colonysim/server/internal/persist"
	"github.com/colonysim/server/internal/world"
)

// SnapshotSystem records periodic observations of the run (tick, unit
// count, state checksum) for post-hoc comparison between runs. Phase 2
// (Persist). Inert when built with a nil repo (persistence disabled).
type SnapshotSystem struct {
	dir       *world.Directory
	repo      *persist.SnapshotRepo
	runID     uuid.UUID
	interval  int
	tickCount int
	log       *zap.Logger
}

func NewSnapshotSystem(dir *world.Directory, repo *persist.SnapshotRepo, runID uuid.UUID, interval int, log *zap.Logger) *SnapshotSystem {
	return &SnapshotSystem{dir: dir, repo: repo, runID: runID, interval: interval, log: log}
}

func (s *SnapshotSystem) Phase() coresys.Phase { return coresys.PhasePersist }

func (s *SnapshotSystem) Update(_ time.Duration) {
	if s.repo == nil || s.interval <= 0 {
		return
	}
	s.tickCount++
	if s.tickCount%s.interval != 0 {
		return
	}
	row := persist.SnapshotRow{
		RunID:     s.runID,
		Tick:      s.dir.Tick(),
		UnitCount: s.dir.UnitCount(),
		Checksum:  s.dir.Checksum(),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.repo.Insert(ctx, row); err != nil {
		s.log.Error("snapshot insert failed", zap.Error(err))
		return
	}
	s.log.Debug("snapshot recorded",
		zap.Int64("tick", row.Tick),
		zap.Int("units", row.UnitCount),
		zap.Uint64("checksum", row.Checksum))
}
