package battleship

// Cell is the state of a single position on a board.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellShip
	CellMiss
	CellHit

	// Every cell of a sunk ship switches to this
	// state at the moment its last cell is hit
	CellDestroyed
)

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellShip:
		return "ship"
	case CellMiss:
		return "miss"
	case CellHit:
		return "hit"
	case CellDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// MarshalText lets grids be encoded as readable JSON.
func (c Cell) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ShotResult is the outcome of shooting at a board position.
type ShotResult uint8

const (
	ShotAlreadyShot ShotResult = iota
	ShotMiss
	ShotHit
	ShotDestroyed
)

func (r ShotResult) String() string {
	switch r {
	case ShotAlreadyShot:
		return "already_shot"
	case ShotMiss:
		return "miss"
	case ShotHit:
		return "hit"
	case ShotDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

func (r ShotResult) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// IsHit reports whether the shot landed on a ship.
func (r ShotResult) IsHit() bool {
	return r == ShotHit || r == ShotDestroyed
}

type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

func (c Coordinates) Add(d Coordinates) Coordinates {
	return Coordinates{X: c.X + d.X, Y: c.Y + d.Y}
}

func (c Coordinates) Neg() Coordinates {
	return Coordinates{X: -c.X, Y: -c.Y}
}

// Grid is a board sized matrix of cells indexed as grid[y][x].
type Grid [BoardSize][BoardSize]Cell

// axis unit vectors in the order the targeting search tries them
var axisDirections = [4]Coordinates{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// neighbours returns the in-bounds 8-neighbourhood of c, c included.
func neighbours(c Coordinates, size int) []Coordinates {
	out := make([]Coordinates, 0, 9)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			n := Coordinates{X: c.X + dx, Y: c.Y + dy}
			if n.X >= 0 && n.X < size && n.Y >= 0 && n.Y < size {
				out = append(out, n)
			}
		}
	}
	return out
}
