package maze

// Direction is one of the four compass sides of a room
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns every direction in declaration order
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the lowercase name of the direction
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// IsValid returns true if d is one of the four compass directions
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the direction facing d
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}
