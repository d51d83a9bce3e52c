package grid

import "slices"

// PositionSet is a duplicate free set of positions that remembers insertion order.
type PositionSet struct {
	order []Position
	index map[Position]struct{}
}

// NewPositionSet returns a set holding the unique elements of ps.
func NewPositionSet(ps ...Position) *PositionSet {
	s := &PositionSet{index: make(map[Position]struct{}, len(ps))}
	for _, p := range ps {
		s.Add(p)
	}
	return s
}

// Add inserts p and reports whether it was absent.
func (s *PositionSet) Add(p Position) bool {
	if s.Has(p) {
		return false
	}
	s.index[p] = struct{}{}
	s.order = append(s.order, p)
	return true
}

// Remove deletes p and reports whether it was present.
func (s *PositionSet) Remove(p Position) bool {
	if !s.Has(p) {
		return false
	}
	delete(s.index, p)
	s.order = slices.DeleteFunc(s.order, func(q Position) bool { return q == p })
	return true
}

// Has reports whether p is in the set.
func (s *PositionSet) Has(p Position) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[p]
	return ok
}

// Len returns the number of positions in the set.
func (s *PositionSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Positions returns a copy of the members in insertion order.
func (s *PositionSet) Positions() []Position {
	if s == nil {
		return []Position{}
	}
	return append([]Position{}, s.order...)
}
