package system

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseUpdate     Phase = iota // 0: mission AI, unit logic
	PhasePostUpdate              // 1: movement, spatial index upkeep
	PhasePersist                 // 2: snapshot rows
)

// System is the interface every simulation system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
