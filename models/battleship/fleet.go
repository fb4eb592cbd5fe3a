package battleship

import (
	"math/rand"
	"time"

	cerr "github.com/saeidalz13/seabattle/internal/error"
)

// FleetEntry is how many ships of a given size one side owns.
type FleetEntry struct {
	Size  int
	Count int
}

// Fleet is the composition of both sides. AutoPlace walks it in
// this order, largest ships first.
var Fleet = []FleetEntry{
	{Size: 4, Count: 1},
	{Size: 3, Count: 2},
	{Size: 2, Count: 3},
	{Size: 1, Count: 4},
}

const (
	FleetShipCount = 10
	FleetCellCount = 20

	// Number of fresh boards PlaceFleet tries before giving up
	fleetPlacementRetries = 25
)

// Returns the required count for a ship size, or false
// if the size is not part of the fleet.
func FleetCount(size int) (int, bool) {
	for _, entry := range Fleet {
		if entry.Size == size {
			return entry.Count, true
		}
	}
	return 0, false
}

// Rand is the only source of randomness in this package.
// *rand.Rand satisfies it; tests can plug in scripted sources.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a seeded source. A zero seed picks one from the clock.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// PlaceFleet builds a fresh board holding the whole fleet. A failed
// AutoPlace leaves a partial board behind, so every retry starts
// from an empty one.
func PlaceFleet(rng Rand) (*Board, error) {
	for i := 0; i < fleetPlacementRetries; i++ {
		board := NewBoard()
		if board.AutoPlace(rng) {
			return board, nil
		}
	}
	return nil, cerr.ErrAutoPlacementFailed()
}
