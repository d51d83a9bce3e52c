// Package gridtest provides deterministic randomness for simulation tests.
package gridtest

import (
	"fmt"

	"github.com/beka-birhanu/rumba/grid"
)

// ScriptedSource replays a fixed sequence of draws.
type ScriptedSource struct {
	index int
	draws []int
}

var _ grid.Source = (*ScriptedSource)(nil)

// NewScriptedSource returns a source that yields draws in order.
func NewScriptedSource(draws ...int) *ScriptedSource {
	cloned := make([]int, len(draws))
	copy(cloned, draws)
	return &ScriptedSource{draws: cloned}
}

// Intn returns the next scripted draw. It panics when the script is exhausted
// or the draw is outside [0, n).
func (s *ScriptedSource) Intn(n int) int {
	if s.index >= len(s.draws) {
		panic(fmt.Sprintf("script exhausted at draw %d", s.index+1))
	}
	v := s.draws[s.index]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("scripted draw %d out of range [0, %d)", v, n))
	}
	s.index++
	return v
}

// Remaining returns how many draws have not been consumed.
func (s *ScriptedSource) Remaining() int {
	return len(s.draws) - s.index
}

// DirectionIndex returns the draw that selects d from grid.Directions.
func DirectionIndex(d grid.Direction) int {
	for i, candidate := range grid.Directions {
		if candidate == d {
			return i
		}
	}
	panic(fmt.Sprintf("unknown direction %v", d))
}

// Steps converts a direction sequence into scripted draws.
func Steps(ds ...grid.Direction) []int {
	draws := make([]int, 0, len(ds))
	for _, d := range ds {
		draws = append(draws, DirectionIndex(d))
	}
	return draws
}
