package i

import (
	"github.com/beka-birhanu/rumba/simulation"
	"github.com/google/uuid"
)

// SimulationRequest describes one simulation to run.
type SimulationRequest struct {
	Params simulation.Params
	Seed   int64                   // 0 picks a time based seed
	Sink   simulation.SnapshotSink // optional
}

// SimulationResult is a finished simulation.
type SimulationResult struct {
	ID      uuid.UUID
	Seed    int64 // Seed actually used, for replays
	Outcome simulation.Outcome
}

// Simulator runs simulations to completion.
type Simulator interface {
	// Simulate runs the request on the caller's goroutine. Only invalid
	// parameters produce an error.
	Simulate(req SimulationRequest) (*SimulationResult, error)
}

// RunObserver is notified of every finished simulation.
type RunObserver interface {
	Observe(simulation.Outcome)
}
