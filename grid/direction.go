package grid

// Direction is a unit step on the floor.
type Direction struct {
	Name string
	Row  int
	Col  int
}

var (
	Up    = Direction{Name: "Up", Row: -1, Col: 0}
	Down  = Direction{Name: "Down", Row: 1, Col: 0}
	Left  = Direction{Name: "Left", Row: 0, Col: -1}
	Right = Direction{Name: "Right", Row: 0, Col: 1}

	// Directions is ordered so that a Source index maps to a fixed direction.
	Directions = [4]Direction{Up, Down, Left, Right}
)

// RandomDirection picks one of Directions uniformly.
func RandomDirection(src Source) Direction {
	return Directions[src.Intn(len(Directions))]
}

func (d Direction) String() string {
	return d.Name
}
