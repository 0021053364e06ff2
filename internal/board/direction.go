package board

// Direction is one of the eight ray directions, stored as its square-index delta.
type Direction int8

const (
	North     Direction = 8
	South     Direction = -8
	East      Direction = 1
	West      Direction = -1
	NorthEast Direction = 9
	NorthWest Direction = 7
	SouthEast Direction = -7
	SouthWest Direction = -9
)

// Orthogonal lists the rook directions.
var Orthogonal = [4]Direction{North, South, East, West}

// Diagonal lists the bishop directions.
var Diagonal = [4]Direction{NorthEast, NorthWest, SouthEast, SouthWest}

// Directions lists all eight directions.
var Directions = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// Opposite returns the geometric opposite of d.
func (d Direction) Opposite() Direction {
	return -d
}

// east reports whether d has an eastward component.
func (d Direction) east() bool {
	return d == East || d == NorthEast || d == SouthEast
}

// west reports whether d has a westward component.
func (d Direction) west() bool {
	return d == West || d == NorthWest || d == SouthWest
}

// Forward returns the direction pawns of color c advance in.
func Forward(c Color) Direction {
	if c == White {
		return North
	}
	return South
}

// String returns the compass name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	case NorthEast:
		return "NE"
	case NorthWest:
		return "NW"
	case SouthEast:
		return "SE"
	case SouthWest:
		return "SW"
	default:
		return "?"
	}
}
