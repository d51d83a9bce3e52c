// Package render holds the snapshot sinks that visualize or export a run.
package render

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/beka-birhanu/rumba/grid"
	"github.com/beka-birhanu/rumba/simulation"
)

// Renderer is a snapshot sink that may buffer output until Flush.
type Renderer interface {
	simulation.SnapshotSink
	Flush() error
}

var (
	ErrUnknownFormat = errors.New("unknown render format")
)

// Recorder keeps every pushed snapshot in memory.
type Recorder struct {
	mu        sync.RWMutex
	snapshots []simulation.Snapshot
}

var _ Renderer = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{snapshots: make([]simulation.Snapshot, 0)}
}

func (r *Recorder) Push(s simulation.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshots = append(r.snapshots, cloneSnapshot(s))
	return nil
}

func (r *Recorder) Flush() error {
	return nil
}

// Snapshots returns copies of the recorded snapshots in push order.
func (r *Recorder) Snapshots() []simulation.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]simulation.Snapshot, len(r.snapshots))
	for i := range r.snapshots {
		out[i] = cloneSnapshot(r.snapshots[i])
	}
	return out
}

// Fanout pushes every snapshot to each of its renderers.
type Fanout []Renderer

var _ Renderer = Fanout(nil)

func (f Fanout) Push(s simulation.Snapshot) error {
	var errs []error
	for _, r := range f {
		if err := r.Push(s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f Fanout) Flush() error {
	var errs []error
	for _, r := range f {
		if err := r.Flush(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func cloneSnapshot(in simulation.Snapshot) simulation.Snapshot {
	out := in
	out.Dirt = slices.Clone(in.Dirt)
	out.Cleaned = slices.Clone(in.Cleaned)
	return out
}

func positionsToAny(ps []grid.Position) []any {
	out := make([]any, 0, len(ps))
	for _, p := range ps {
		out = append(out, map[string]any{"row": p.Row, "col": p.Col})
	}
	return out
}

func unknownFormat(format string) error {
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
