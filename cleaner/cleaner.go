// Package cleaner simulates a robot that random walks a floor and removes dirt.
package cleaner

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/rumba/grid"
)

var (
	ErrDirtOutOfBounds = errors.New("dirt spot is outside the floor")
)

// Cleaner owns the robot position, the remaining dirt and the cleaned spots.
// It is not safe for concurrent use; readers must call State between steps.
type Cleaner struct {
	size     grid.Size
	src      grid.Source
	position grid.Position
	dirt     *grid.PositionSet // remaining dirt, only ever shrinks
	cleaned  []grid.Position   // append only, in cleaning order
}

// State is a copy of the cleaner's state at one point in time.
type State struct {
	Position grid.Position   `json:"position"`
	Dirt     []grid.Position `json:"dirt"`
	Cleaned  []grid.Position `json:"cleaned"`
}

// New places a cleaner at a uniform random position and takes ownership of dirt.
// Spawning on a dirt spot does not clean it. A nil dirt set means a clean floor.
func New(size grid.Size, dirt *grid.PositionSet, src grid.Source) (*Cleaner, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, grid.ErrNilSource
	}
	if dirt == nil {
		dirt = grid.NewPositionSet()
	}
	for _, p := range dirt.Positions() {
		if !size.Contains(p) {
			return nil, fmt.Errorf("%w: %v on %v floor", ErrDirtOutOfBounds, p, size)
		}
	}

	return &Cleaner{
		size:     size,
		src:      src,
		position: size.RandomPosition(src),
		dirt:     dirt,
		cleaned:  make([]grid.Position, 0, dirt.Len()),
	}, nil
}

// Step moves one cell in a uniformly chosen direction and returns it.
func (c *Cleaner) Step() grid.Direction {
	d := grid.RandomDirection(c.src)
	c.Move(d)
	return d
}

// Move takes one step in direction d. A move into a wall leaves the robot on
// the boundary for that axis. It reports whether a dirt spot was cleaned.
func (c *Cleaner) Move(d grid.Direction) bool {
	c.position = c.size.Clamp(c.position.Add(d))

	if !c.dirt.Remove(c.position) {
		return false
	}
	c.cleaned = append(c.cleaned, c.position)
	return true
}

// IsClean reports whether no dirt remains.
func (c *Cleaner) IsClean() bool {
	return c.dirt.Len() == 0
}

// State returns a snapshot that shares no memory with the cleaner.
func (c *Cleaner) State() State {
	return State{
		Position: c.position,
		Dirt:     c.dirt.Positions(),
		Cleaned:  append([]grid.Position{}, c.cleaned...),
	}
}

// Position returns the current cell.
func (c *Cleaner) Position() grid.Position {
	return c.position
}

// Size returns the floor the cleaner walks on.
func (c *Cleaner) Size() grid.Size {
	return c.size
}

// Remaining returns the number of dirt spots left.
func (c *Cleaner) Remaining() int {
	return c.dirt.Len()
}

// CleanedCount returns the number of dirt spots removed so far.
func (c *Cleaner) CleanedCount() int {
	return len(c.cleaned)
}
