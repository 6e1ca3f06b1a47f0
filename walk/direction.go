package walk

// MovePattern selects the set of directions a walker may sample from.
type MovePattern int

const (
	// FourDirection restricts movement to the cardinal directions
	// (von Neumann neighborhood).
	FourDirection MovePattern = iota
	// EightDirection allows diagonals as well (Moore neighborhood).
	EightDirection
)

// String implements fmt.Stringer.
func (p MovePattern) String() string {
	switch p {
	case FourDirection:
		return "four-direction"
	case EightDirection:
		return "eight-direction"
	default:
		return "unknown"
	}
}

// Direction is one of the eight compass directions.
type Direction int

const (
	North Direction = iota
	Northeast
	East
	Southeast
	South
	Southwest
	West
	Northwest
)

// cardinals lists the directions eligible under FourDirection, in sampling
// order. Diagonals are structurally excluded, not merely improbable.
var cardinals = [4]Direction{North, East, South, West}

// offsets returns the unit step multipliers for each axis. Diagonal moves
// step both axes by the full amount, so their Euclidean length is
// speed*sqrt(2) rather than speed.
func (d Direction) offsets() (dx, dy float64) {
	switch d {
	case North:
		return 0, 1
	case Northeast:
		return 1, 1
	case East:
		return 1, 0
	case Southeast:
		return 1, -1
	case South:
		return 0, -1
	case Southwest:
		return -1, -1
	case West:
		return -1, 0
	case Northwest:
		return -1, 1
	default:
		return 0, 0
	}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case Northeast:
		return "NE"
	case East:
		return "E"
	case Southeast:
		return "SE"
	case South:
		return "S"
	case Southwest:
		return "SW"
	case West:
		return "W"
	case Northwest:
		return "NW"
	default:
		return "unknown"
	}
}
