package battleship

const (
	MinShipSize = 1
	MaxShipSize = 4
)

// Ship is a straight line of cells starting at its origin.
// Occupied cells are recomputed whenever geometry changes.
type Ship struct {
	size       int
	origin     Coordinates
	horizontal bool
	health     int
	cells      []Coordinates
}

func NewShip(size, x, y int, horizontal bool) *Ship {
	sh := &Ship{
		size:       size,
		origin:     NewCoordinates(x, y),
		horizontal: horizontal,
		health:     size,
	}
	sh.updateCells()
	return sh
}

func (sh *Ship) updateCells() {
	sh.cells = make([]Coordinates, 0, sh.size)
	for i := 0; i < sh.size; i++ {
		if sh.horizontal {
			sh.cells = append(sh.cells, NewCoordinates(sh.origin.X+i, sh.origin.Y))
		} else {
			sh.cells = append(sh.cells, NewCoordinates(sh.origin.X, sh.origin.Y+i))
		}
	}
}

func (sh *Ship) Size() int {
	return sh.size
}

func (sh *Ship) Origin() Coordinates {
	return sh.origin
}

func (sh *Ship) IsHorizontal() bool {
	return sh.horizontal
}

func (sh *Ship) Health() int {
	return sh.health
}

// Returns a copy of the occupied cells
func (sh *Ship) Cells() []Coordinates {
	cells := make([]Coordinates, len(sh.cells))
	copy(cells, sh.cells)
	return cells
}

func (sh *Ship) Occupies(c Coordinates) bool {
	for _, cell := range sh.cells {
		if cell == c {
			return true
		}
	}
	return false
}

// MoveTo and Rotate only make sense for ships that are
// not committed to a board yet.
func (sh *Ship) MoveTo(x, y int) {
	sh.origin = NewCoordinates(x, y)
	sh.updateCells()
}

func (sh *Ship) Rotate() {
	sh.horizontal = !sh.horizontal
	sh.updateCells()
}

func (sh *Ship) GotHit() {
	sh.health--
}

func (sh *Ship) IsDestroyed() bool {
	return sh.health <= 0
}

func (sh *Ship) clone() *Ship {
	cp := *sh
	cp.cells = sh.Cells()
	return &cp
}
