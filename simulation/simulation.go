/*
Package simulation drives a cleaner over a generated house until the floor is
clean or the step budget runs out.

After every step the driver can push a read-only Snapshot to a SnapshotSink,
which is how renderers observe a run.
*/
package simulation

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/rumba/cleaner"
	"github.com/beka-birhanu/rumba/grid"
	"github.com/beka-birhanu/rumba/house"
)

var (
	ErrInvalidMaxSteps = errors.New("max steps must be positive")
)

// Params are the knobs of a single run.
type Params struct {
	Size      grid.Size // Floor dimensions
	DirtSpots int       // Requested number of dirt spots
	MaxSteps  int       // Step budget
}

// Validate checks the run parameters before anything is generated.
func (p Params) Validate() error {
	if err := p.Size.Validate(); err != nil {
		return err
	}
	if p.DirtSpots < 0 {
		return fmt.Errorf("%w: got %d", house.ErrNegativeDirt, p.DirtSpots)
	}
	if p.MaxSteps <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxSteps, p.MaxSteps)
	}
	return nil
}

// Snapshot is the state pushed to a sink after a step.
type Snapshot struct {
	Step     int             `json:"step"`
	Size     grid.Size       `json:"size"`
	Position grid.Position   `json:"position"`
	Dirt     []grid.Position `json:"dirt"`
	Cleaned  []grid.Position `json:"cleaned"`
}

// SnapshotSink receives snapshots between steps. It must not keep references
// into a snapshot that it later mutates.
type SnapshotSink interface {
	Push(Snapshot) error
}

// Outcome summarises a finished run.
type Outcome struct {
	Success     bool            `json:"success"`
	StepsTaken  int             `json:"steps_taken"`
	MaxSteps    int             `json:"max_steps"`
	InitialDirt int             `json:"initial_dirt"`
	Cleaned     []grid.Position `json:"cleaned"`
	Remaining   []grid.Position `json:"remaining"`
	SinkErr     error           `json:"-"` // First error returned by the sink, if any
}

// Report renders the outcome as a single line.
func (o Outcome) Report() string {
	if o.Success {
		return fmt.Sprintf("all spots cleaned in %d steps", o.StepsTaken)
	}
	return fmt.Sprintf("could not clean all spots within %d steps", o.MaxSteps)
}

// Run generates a house, places a cleaner on it and drives it. The only
// errors are invalid parameters; running out of steps is a normal outcome.
func Run(params Params, src grid.Source, sink SnapshotSink) (Outcome, error) {
	if err := params.Validate(); err != nil {
		return Outcome{}, err
	}

	h, err := house.New(params.Size, params.DirtSpots, src)
	if err != nil {
		return Outcome{}, fmt.Errorf("generating house: %w", err)
	}

	c, err := cleaner.New(h.Size(), h.TakeDirt(), src)
	if err != nil {
		return Outcome{}, fmt.Errorf("placing cleaner: %w", err)
	}

	return Drive(c, params.MaxSteps, sink), nil
}

// Drive steps c until it is clean or maxSteps steps were taken. A nil sink
// disables snapshots. The sink is dropped after its first error.
func Drive(c *cleaner.Cleaner, maxSteps int, sink SnapshotSink) Outcome {
	initial := c.Remaining() + c.CleanedCount()

	var sinkErr error
	steps := 0
	for !c.IsClean() && steps < maxSteps {
		c.Step()
		steps++

		if sink == nil {
			continue
		}
		if err := sink.Push(snapshot(c, steps)); err != nil {
			sinkErr = fmt.Errorf("pushing snapshot of step %d: %w", steps, err)
			sink = nil
		}
	}

	state := c.State()
	return Outcome{
		Success:     c.IsClean(),
		StepsTaken:  steps,
		MaxSteps:    maxSteps,
		InitialDirt: initial,
		Cleaned:     state.Cleaned,
		Remaining:   state.Dirt,
		SinkErr:     sinkErr,
	}
}

func snapshot(c *cleaner.Cleaner, step int) Snapshot {
	state := c.State()
	return Snapshot{
		Step:     step,
		Size:     c.Size(),
		Position: state.Position,
		Dirt:     state.Dirt,
		Cleaned:  state.Cleaned,
	}
}
