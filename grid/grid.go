/*
Package grid provides the coordinate model shared by the house and the cleaner.

It defines the bounded `Size` of a rectangular floor, immutable `Position`
values, the four unit `Direction` vectors, and an insertion-ordered
`PositionSet` used for dirt bookkeeping.
*/
package grid

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var (
	ErrInvalidSize = errors.New("grid dimensions must be positive")
	ErrNilSource   = errors.New("random source is nil")
)

// Source is the randomness a simulation draws from.
// *rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
}

// NewSource returns a seeded source. A zero seed picks a time based one.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Size is the extent of the floor in rows and columns.
type Size struct {
	Rows int `json:"rows"` // Number of rows
	Cols int `json:"cols"` // Number of columns
}

// Validate reports ErrInvalidSize when either dimension is not positive.
func (s Size) Validate() error {
	if min(s.Rows, s.Cols) <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, s.Rows, s.Cols)
	}
	return nil
}

// Cells returns the number of cells on the floor.
func (s Size) Cells() int {
	return s.Rows * s.Cols
}

// Contains reports whether p lies on the floor.
func (s Size) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < s.Rows && p.Col >= 0 && p.Col < s.Cols
}

// Clamp pulls each coordinate of p independently into the floor.
func (s Size) Clamp(p Position) Position {
	return Position{
		Row: max(0, min(s.Rows-1, p.Row)),
		Col: max(0, min(s.Cols-1, p.Col)),
	}
}

// RandomPosition draws a uniform position on the floor.
func (s Size) RandomPosition(src Source) Position {
	return Position{Row: src.Intn(s.Rows), Col: src.Intn(s.Cols)}
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

// Position is a cell on the floor.
type Position struct {
	Row int `json:"row"` // Row index of the cell
	Col int `json:"col"` // Column index of the cell
}

// Add returns the position one step away in direction d, without bounds checks.
func (p Position) Add(d Direction) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
