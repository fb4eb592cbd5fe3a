package battleship

import (
	cerr "github.com/saeidalz13/seabattle/internal/error"
)

const (
	BoardSize = 10

	// Random attempts per ship before AutoPlace gives up
	MaxPlacementAttempts = 500
)

// Board owns its grid, its committed ships and the set of
// positions already shot at.
type Board struct {
	size  int
	grid  Grid
	ships []*Ship

	// every SHIP/HIT/DESTROYED cell of a committed ship points to it
	shipAt map[Coordinates]*Ship
	shots  map[Coordinates]struct{}
}

func NewBoard() *Board {
	return &Board{
		size:   BoardSize,
		ships:  make([]*Ship, 0, FleetShipCount),
		shipAt: make(map[Coordinates]*Ship, FleetCellCount),
		shots:  make(map[Coordinates]struct{}),
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.size && y >= 0 && y < b.size
}

// Cell returns the state at (x, y). Out of bounds reads as empty.
func (b *Board) Cell(x, y int) Cell {
	if !b.InBounds(x, y) {
		return CellEmpty
	}
	return b.grid[y][x]
}

// CanPlace checks that every cell of the ship is on the board and,
// unless ignoreShipCheck is set, that no cell or any of its eight
// neighbours already holds a ship.
func (b *Board) CanPlace(ship *Ship, ignoreShipCheck bool) bool {
	for _, c := range ship.cells {
		if !b.InBounds(c.X, c.Y) {
			return false
		}
		if ignoreShipCheck {
			continue
		}
		for _, n := range neighbours(c, b.size) {
			if b.grid[n.Y][n.X] == CellShip {
				return false
			}
		}
	}
	return true
}

// Place marks the ship's cells and commits the ship. With
// ignoreShipCheck the cells are only drawn, which is what
// placement previews on a cloned board use.
func (b *Board) Place(ship *Ship, ignoreShipCheck bool) bool {
	if !b.CanPlace(ship, ignoreShipCheck) {
		return false
	}

	for _, c := range ship.cells {
		b.grid[c.Y][c.X] = CellShip
	}
	if !ignoreShipCheck {
		b.ships = append(b.ships, ship)
		for _, c := range ship.cells {
			b.shipAt[c] = ship
		}
	}
	return true
}

// Remove takes a committed ship off the board. Ships that
// were never committed are ignored.
func (b *Board) Remove(ship *Ship) {
	idx := -1
	for i, sh := range b.ships {
		if sh == ship {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}

	for _, c := range ship.cells {
		b.grid[c.Y][c.X] = CellEmpty
		delete(b.shipAt, c)
	}
	b.ships = append(b.ships[:idx], b.ships[idx+1:]...)
}

func (b *Board) ShipAt(x, y int) (*Ship, bool) {
	ship, prs := b.shipAt[NewCoordinates(x, y)]
	return ship, prs
}

// Returns the committed ships. The slice is a copy, the ships are not.
func (b *Board) Ships() []*Ship {
	ships := make([]*Ship, len(b.ships))
	copy(ships, b.ships)
	return ships
}

// AutoPlace places the whole fleet at random positions. Each ship gets
// MaxPlacementAttempts in-bounds tries; on failure false is returned
// and the board is left partially populated.
func (b *Board) AutoPlace(rng Rand) bool {
	for _, entry := range Fleet {
		for i := 0; i < entry.Count; i++ {
			placed := false
			attempts := 0

			for !placed && attempts < MaxPlacementAttempts {
				x := rng.Intn(b.size)
				y := rng.Intn(b.size)
				horizontal := rng.Intn(2) == 0

				if horizontal && x+entry.Size > b.size {
					continue
				}
				if !horizontal && y+entry.Size > b.size {
					continue
				}

				placed = b.Place(NewShip(entry.Size, x, y, horizontal), false)
				attempts++
			}

			if !placed {
				return false
			}
		}
	}
	return true
}

// Shoot resolves a shot at (x, y). A position can only be
// resolved once; later shots return ShotAlreadyShot.
func (b *Board) Shoot(x, y int) (ShotResult, error) {
	if !b.InBounds(x, y) {
		return ShotAlreadyShot, cerr.ErrXorYOutOfGridBound(x, y)
	}

	c := NewCoordinates(x, y)
	if _, shot := b.shots[c]; shot {
		return ShotAlreadyShot, nil
	}
	b.shots[c] = struct{}{}

	if b.grid[y][x] != CellShip {
		b.grid[y][x] = CellMiss
		return ShotMiss, nil
	}

	b.grid[y][x] = CellHit
	ship, prs := b.shipAt[c]
	if !prs {
		return ShotHit, nil
	}

	ship.GotHit()
	if !ship.IsDestroyed() {
		return ShotHit, nil
	}

	for _, sc := range ship.cells {
		b.grid[sc.Y][sc.X] = CellDestroyed
	}
	return ShotDestroyed, nil
}

func (b *Board) IsShot(x, y int) bool {
	_, shot := b.shots[NewCoordinates(x, y)]
	return shot
}

func (b *Board) ShotCount() int {
	return len(b.shots)
}

func (b *Board) DestroyedShips() int {
	destroyed := 0
	for _, ship := range b.ships {
		if ship.IsDestroyed() {
			destroyed++
		}
	}
	return destroyed
}

func (b *Board) ShipsAlive() int {
	return len(b.ships) - b.DestroyedShips()
}

// Sum of the remaining health of every committed ship
func (b *Board) TotalHealth() int {
	total := 0
	for _, ship := range b.ships {
		total += ship.health
	}
	return total
}

// Clone returns a deep copy; ships are copied too so the clone
// can be mutated freely.
func (b *Board) Clone() *Board {
	cp := &Board{
		size:   b.size,
		grid:   b.grid,
		ships:  make([]*Ship, 0, len(b.ships)),
		shipAt: make(map[Coordinates]*Ship, len(b.shipAt)),
		shots:  make(map[Coordinates]struct{}, len(b.shots)),
	}

	for _, ship := range b.ships {
		sh := ship.clone()
		cp.ships = append(cp.ships, sh)
		for _, c := range sh.cells {
			cp.shipAt[c] = sh
		}
	}
	for c := range b.shots {
		cp.shots[c] = struct{}{}
	}
	return cp
}

// Snapshot returns the grid by value. hideShips masks intact
// ship cells as empty, the way an opponent sees the board.
func (b *Board) Snapshot(hideShips bool) Grid {
	grid := b.grid
	if !hideShips {
		return grid
	}

	for y := range grid {
		for x := range grid[y] {
			if grid[y][x] == CellShip {
				grid[y][x] = CellEmpty
			}
		}
	}
	return grid
}
