package persist

import (
	"context"

	"github.com/google/uuid"
)

// SnapshotRow represents a row in the sim_snapshots table: one periodic
// observation of a simulation run, identified by the run's UUID. The
// checksum column stores the directory digest reinterpreted as a signed
// 64-bit value (Postgres has no unsigned bigint).
type SnapshotRow struct {
	RunID     uuid.UUID
	Tick      int64
	UnitCount int
	Checksum  uint64
}

// SnapshotRepo handles simulation snapshot persistence.
type SnapshotRepo struct {
	db *DB
}

func NewSnapshotRepo(db *DB) *SnapshotRepo {
	return &SnapshotRepo{db: db}
}

// Insert writes one snapshot row.
func (r *SnapshotRepo) Insert(ctx context.Context, s SnapshotRow) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO sim_snapshots (run_id, tick, unit_count, checksum)
		 VALUES ($1, $2, $3, $4)`,
		s.RunID, s.Tick, s.UnitCount, int64(s.Checksum))
	return err
}

// CountForRun returns the number of snapshots recorded for one run.
func (r *SnapshotRepo) CountForRun(ctx context.Context, runID uuid.UUID) (int, error) {
	var n int
	err := r.db.Pool.QueryRow(ctx,
		`SELECT count(*) FROM sim_snapshots WHERE run_id = $1`, runID).Scan(&n)
	return n, err
}
