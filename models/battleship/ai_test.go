package battleship

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// orderedRand never reorders anything, so follow-up queues keep
// the axis order: down, right, up, left.
type orderedRand struct {
	shuffles []int
}

func (r *orderedRand) Intn(n int) int { return 0 }

func (r *orderedRand) Shuffle(n int, swap func(i, j int)) {
	r.shuffles = append(r.shuffles, n)
}

func fire(t *testing.T, ai *TargetingAI, board *Board) (Coordinates, ShotResult) {
	t.Helper()

	target, ok := ai.NextShot()
	require.True(t, ok)
	require.False(t, ai.HasShot(target), "AI picked %v twice", target)

	result, err := board.Shoot(target.X, target.Y)
	require.NoError(t, err)
	ai.RegisterShot(target.X, target.Y, result)
	return target, result
}

func TestHuntFirstShot(t *testing.T) {
	ai := NewTargetingAI(NewBoard(), &orderedRand{})

	// (4,4) and (5,5) both score 18; row-major scan reaches (4,4) first
	require.Equal(t, 18, ai.priority(NewCoordinates(4, 4)))
	require.Equal(t, 18, ai.priority(NewCoordinates(5, 5)))

	target, ok := ai.NextShot()
	require.True(t, ok)
	require.Equal(t, NewCoordinates(4, 4), target)
	require.Equal(t, ModeHunt, ai.Mode())
}

func TestHuntPriority(t *testing.T) {
	board := NewBoard()
	require.True(t, board.Place(NewShip(1, 5, 5, true), false))
	ai := NewTargetingAI(board, &orderedRand{})

	tests := []struct {
		name     string
		c        Coordinates
		expected int
	}{
		{name: "corner", c: NewCoordinates(0, 0), expected: 10 + 0 - 5},
		{name: "odd border", c: NewCoordinates(0, 5), expected: 0 + 4 - 5},
		{name: "odd centre", c: NewCoordinates(4, 5), expected: 0 + 8},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, ai.priority(test.c))
		})
	}

	// a miss next door costs 3, a hit next door (diagonals too) adds 15
	_, err := board.Shoot(3, 3)
	require.NoError(t, err)
	ai.RegisterShot(3, 3, ShotMiss)
	require.Equal(t, 0+7-3, ai.priority(NewCoordinates(3, 4)))

	_, err = board.Shoot(5, 5)
	require.NoError(t, err)
	ai.shots[NewCoordinates(5, 5)] = struct{}{}

	// (3,3) is only a diagonal neighbour of (4,4): no miss penalty
	require.Equal(t, 10+8+15, ai.priority(NewCoordinates(4, 4)))
	require.Equal(t, 0+8+15, ai.priority(NewCoordinates(4, 5)))
}

func TestHuntNeverRepeats(t *testing.T) {
	board := NewBoard()
	ai := NewTargetingAI(board, rand.New(rand.NewSource(3)))

	seen := make(map[Coordinates]bool)
	for i := 0; i < BoardSize*BoardSize; i++ {
		target, result := fire(t, ai, board)
		require.Equal(t, ShotMiss, result)
		require.False(t, seen[target])
		seen[target] = true
	}

	_, ok := ai.NextShot()
	require.False(t, ok)
}

func TestHitThenMissIsNotRetried(t *testing.T) {
	board := NewBoard()
	require.True(t, board.Place(NewShip(2, 4, 4, true), false))
	rng := &orderedRand{}
	ai := NewTargetingAI(board, rng)

	result, err := board.Shoot(4, 4)
	require.NoError(t, err)
	require.Equal(t, ShotHit, result)
	ai.RegisterShot(4, 4, result)

	require.Equal(t, ModeTarget, ai.Mode())
	require.Equal(t, []Coordinates{{4, 5}, {5, 4}, {4, 3}, {3, 4}}, ai.FollowUps())
	require.Equal(t, []int{4}, rng.shuffles)

	target, result := fire(t, ai, board)
	require.Equal(t, NewCoordinates(4, 5), target)
	require.Equal(t, ShotMiss, result)
	require.NotContains(t, ai.FollowUps(), NewCoordinates(4, 5))

	target, result = fire(t, ai, board)
	require.Equal(t, NewCoordinates(5, 4), target)
	require.Equal(t, ShotDestroyed, result)

	require.Equal(t, ModeHunt, ai.Mode())
	require.Empty(t, ai.FollowUps())
	_, locked := ai.Direction()
	require.False(t, locked)
	_, hasLastHit := ai.LastHit()
	require.False(t, hasLastHit)
}

func TestMarkAroundDestroyedStaysInAIRecord(t *testing.T) {
	board := NewBoard()
	require.True(t, board.Place(NewShip(2, 4, 4, true), false))
	ai := NewTargetingAI(board, &orderedRand{})

	for _, c := range []Coordinates{{4, 4}, {5, 4}} {
		result, err := board.Shoot(c.X, c.Y)
		require.NoError(t, err)
		ai.RegisterShot(c.X, c.Y, result)
	}

	for y := 3; y <= 5; y++ {
		for x := 3; x <= 6; x++ {
			require.True(t, ai.HasShot(NewCoordinates(x, y)), "(%d,%d)", x, y)
		}
	}
	require.False(t, ai.HasShot(NewCoordinates(7, 4)))

	require.False(t, board.IsShot(3, 3))
	require.Equal(t, CellEmpty, board.Cell(3, 3))
	require.Equal(t, 2, board.ShotCount())

	for i := 0; i < 20; i++ {
		target, _ := fire(t, ai, board)
		require.False(t, target.X >= 3 && target.X <= 6 && target.Y >= 3 && target.Y <= 5)
	}
}

func TestTargetWalksBackAlongHitRun(t *testing.T) {
	board := NewBoard()
	require.True(t, board.Place(NewShip(4, 4, 2, false), false))
	ai := NewTargetingAI(board, &orderedRand{})

	result, err := board.Shoot(4, 3)
	require.NoError(t, err)
	ai.RegisterShot(4, 3, result)

	expected := []struct {
		c      Coordinates
		result ShotResult
	}{
		{NewCoordinates(4, 4), ShotHit},
		{NewCoordinates(4, 5), ShotHit},
		{NewCoordinates(4, 6), ShotMiss},
		{NewCoordinates(5, 5), ShotMiss},
		{NewCoordinates(3, 5), ShotMiss},
		// queue exhausted: the vertical run is walked up past (4,4) and (4,3)
		{NewCoordinates(4, 2), ShotDestroyed},
	}

	for _, e := range expected {
		target, result := fire(t, ai, board)
		require.Equal(t, e.c, target)
		require.Equal(t, e.result, result)
	}
	require.Equal(t, ModeHunt, ai.Mode())
}

func TestLockedDirectionFlipsAtEdge(t *testing.T) {
	board := NewBoard()
	require.True(t, board.Place(NewShip(4, 6, 0, true), false))
	ai := NewTargetingAI(board, &orderedRand{})

	for _, c := range []Coordinates{{8, 0}, {9, 0}} {
		result, err := board.Shoot(c.X, c.Y)
		require.NoError(t, err)
		require.Equal(t, ShotHit, result)
		ai.shots[c] = struct{}{}
	}

	last := NewCoordinates(9, 0)
	right := NewCoordinates(1, 0)
	ai.mode = ModeTarget
	ai.lastHit = &last
	ai.direction = &right

	target, ok := ai.NextShot()
	require.True(t, ok)
	require.Equal(t, NewCoordinates(7, 0), target)

	dir, locked := ai.Direction()
	require.True(t, locked)
	require.Equal(t, NewCoordinates(-1, 0), dir)

	result, err := board.Shoot(target.X, target.Y)
	require.NoError(t, err)
	ai.RegisterShot(target.X, target.Y, result)
	require.Equal(t, ShotHit, result)
	require.Empty(t, ai.FollowUps())

	target, result = fire(t, ai, board)
	require.Equal(t, NewCoordinates(6, 0), target)
	require.Equal(t, ShotDestroyed, result)
}

func TestMissWithLockedDirectionRebuildsQueue(t *testing.T) {
	board := NewBoard()
	require.True(t, board.Place(NewShip(2, 2, 2, true), false))
	ai := NewTargetingAI(board, &orderedRand{})

	result, err := board.Shoot(2, 2)
	require.NoError(t, err)
	ai.shots[NewCoordinates(2, 2)] = struct{}{}
	require.Equal(t, ShotHit, result)

	last := NewCoordinates(2, 2)
	up := NewCoordinates(0, -1)
	ai.mode = ModeTarget
	ai.lastHit = &last
	ai.direction = &up

	_, err = board.Shoot(2, 1)
	require.NoError(t, err)
	ai.RegisterShot(2, 1, ShotMiss)

	_, locked := ai.Direction()
	require.False(t, locked)
	require.Equal(t, []Coordinates{{2, 3}, {3, 2}, {1, 2}}, ai.FollowUps())
	require.Equal(t, ModeTarget, ai.Mode())
}

func TestTargetFallsBackToHunt(t *testing.T) {
	board := NewBoard()
	ai := NewTargetingAI(board, &orderedRand{})

	last := NewCoordinates(0, 0)
	ai.mode = ModeTarget
	ai.lastHit = &last
	ai.shots[last] = struct{}{}

	// no other hit on either axis: nothing to extend
	target, ok := ai.NextShot()
	require.True(t, ok)
	require.Equal(t, ModeHunt, ai.Mode())
	_, hasLastHit := ai.LastHit()
	require.False(t, hasLastHit)
	require.Equal(t, NewCoordinates(4, 4), target)
}

func TestAISinksWholeFleet(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		board, err := PlaceFleet(rng)
		require.NoError(t, err)
		ai := NewTargetingAI(board, rng)

		shots := 0
		for board.ShipsAlive() > 0 {
			fire(t, ai, board)
			shots++
			require.LessOrEqual(t, shots, BoardSize*BoardSize)
		}
		require.Equal(t, FleetShipCount, board.DestroyedShips())
	}
}
