package bounce

// Direction is one of the eight compass headings a ball can travel in
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var directionNames = [...]string{
	North:     "N",
	NorthEast: "NE",
	East:      "E",
	SouthEast: "SE",
	South:     "S",
	SouthWest: "SW",
	West:      "W",
	NorthWest: "NW",
}

func (d Direction) String() string {
	if d < North || d > NorthWest {
		return "?"
	}
	return directionNames[d]
}

// Delta is the unit step for d in screen coordinates (y grows downward)
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case NorthEast:
		return 1, -1
	case East:
		return 1, 0
	case SouthEast:
		return 1, 1
	case South:
		return 0, 1
	case SouthWest:
		return -1, 1
	case West:
		return -1, 0
	case NorthWest:
		return -1, -1
	}
	return 0, 0
}

// Reverse points d the opposite way
func (d Direction) Reverse() Direction {
	return (d + 4) % 8
}

// flipVertical negates the vertical component (bounce off top or bottom)
func (d Direction) flipVertical() Direction {
	dx, dy := d.Delta()
	return fromDelta(dx, -dy)
}

// flipHorizontal negates the horizontal component (bounce off left or right)
func (d Direction) flipHorizontal() Direction {
	dx, dy := d.Delta()
	return fromDelta(-dx, dy)
}

func fromDelta(dx, dy int) Direction {
	for d := North; d <= NorthWest; d++ {
		if x, y := d.Delta(); x == dx && y == dy {
			return d
		}
	}
	return North
}
