package board

// Direction is one of the eight compass directions on the board.
// Ordered clockwise from North so that the opposite direction is four steps away.
type Direction uint8

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

var (
	orthogonalDirections = [4]Direction{North, East, South, West}
	diagonalDirections   = [4]Direction{NorthEast, SouthEast, SouthWest, NorthWest}
	allDirections        = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
)

// Orthogonal returns the four rook directions.
func Orthogonal() [4]Direction { return orthogonalDirections }

// Diagonal returns the four bishop directions.
func Diagonal() [4]Direction { return diagonalDirections }

// AllDirections returns all eight directions.
func AllDirections() [8]Direction { return allDirections }

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 4) & 7
}

// IsOrthogonal reports whether d is a rook direction.
func (d Direction) IsOrthogonal() bool {
	return d&1 == 0
}

// IsForward reports whether stepping in d increases the square index.
func (d Direction) IsForward() bool {
	switch d {
	case North, NorthEast, NorthWest, East:
		return true
	}
	return false
}

func (d Direction) delta() (df, dr int) {
	switch d {
	case North:
		return 0, 1
	case NorthEast:
		return 1, 1
	case East:
		return 1, 0
	case SouthEast:
		return 1, -1
	case South:
		return 0, -1
	case SouthWest:
		return -1, -1
	case West:
		return -1, 0
	case NorthWest:
		return -1, 1
	}
	panic("board: invalid direction")
}

func directionFromDelta(df, dr int) Direction {
	for _, d := range allDirections {
		if x, y := d.delta(); x == df && y == dr {
			return d
		}
	}
	panic("board: invalid direction delta")
}

// String returns the compass name of the direction.
func (d Direction) String() string {
	names := [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	if d > NorthWest {
		return "?"
	}
	return names[d]
}
