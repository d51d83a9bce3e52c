/*
Package house generates the floor a cleaner works on.

A House scatters unique dirt spots uniformly over a rectangular grid. The
dirt is handed to a cleaner exactly once; after the handoff the house keeps
no reference to it.
*/
package house

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/rumba/grid"
)

const (
	// drawsPerSpot bounds the random draws spent per requested spot so that
	// generation ends even when the floor is nearly full.
	drawsPerSpot = 32
)

var (
	ErrNegativeDirt = errors.New("number of dirt spots must not be negative")
)

// House is a floor with dirt scattered on it.
type House struct {
	size grid.Size
	dirt *grid.PositionSet
}

// New validates the floor size and scatters up to requested dirt spots on it.
func New(size grid.Size, requested int, src grid.Source) (*House, error) {
	dirt, err := GenerateDirt(size, requested, src)
	if err != nil {
		return nil, err
	}

	return &House{
		size: size,
		dirt: dirt,
	}, nil
}

// Size returns the floor dimensions.
func (h *House) Size() grid.Size {
	return h.size
}

// DirtCount returns the number of spots still held by the house.
func (h *House) DirtCount() int {
	return h.dirt.Len()
}

// TakeDirt hands the dirt over to the caller. Later calls return an empty set.
func (h *House) TakeDirt() *grid.PositionSet {
	dirt := h.dirt
	h.dirt = grid.NewPositionSet()
	return dirt
}

// GenerateDirt draws uniform positions until min(requested, cells) unique
// spots are found or the draw budget runs out. Fewer spots than requested is
// not an error.
func GenerateDirt(size grid.Size, requested int, src grid.Source) (*grid.PositionSet, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}
	if requested < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeDirt, requested)
	}
	if src == nil {
		return nil, grid.ErrNilSource
	}

	target := min(requested, size.Cells())
	dirt := grid.NewPositionSet()
	for draws := 0; dirt.Len() < target && draws < target*drawsPerSpot; draws++ {
		dirt.Add(size.RandomPosition(src))
	}

	return dirt, nil
}
