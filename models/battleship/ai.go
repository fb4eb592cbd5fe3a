package battleship

type TargetMode uint8

const (
	// No active target; shots are picked by scoring the whole board
	ModeHunt TargetMode = iota

	// A ship was hit and not sunk yet
	ModeTarget
)

func (m TargetMode) String() string {
	if m == ModeTarget {
		return "target"
	}
	return "hunt"
}

// BoardReader is the read-only view the AI has of the board it shoots at.
type BoardReader interface {
	Size() int
	Cell(x, y int) Cell
	IsShot(x, y int) bool
	ShipAt(x, y int) (*Ship, bool)
}

// TargetingAI picks the computer's shots. It keeps its own record of
// shot positions: besides real shots it also holds the water around
// sunk ships, which the adjacency rule proves empty. Those extra
// positions are never resolved against the board.
type TargetingAI struct {
	board     BoardReader
	rng       Rand
	shots     map[Coordinates]struct{}
	mode      TargetMode
	lastHit   *Coordinates
	direction *Coordinates
	followUps []Coordinates
}

func NewTargetingAI(board BoardReader, rng Rand) *TargetingAI {
	return &TargetingAI{
		board: board,
		rng:   rng,
		shots: make(map[Coordinates]struct{}, board.Size()*board.Size()),
		mode:  ModeHunt,
	}
}

func (ai *TargetingAI) Mode() TargetMode {
	return ai.mode
}

func (ai *TargetingAI) LastHit() (Coordinates, bool) {
	if ai.lastHit == nil {
		return Coordinates{}, false
	}
	return *ai.lastHit, true
}

func (ai *TargetingAI) Direction() (Coordinates, bool) {
	if ai.direction == nil {
		return Coordinates{}, false
	}
	return *ai.direction, true
}

// Returns a copy of the follow-up queue
func (ai *TargetingAI) FollowUps() []Coordinates {
	out := make([]Coordinates, len(ai.followUps))
	copy(out, ai.followUps)
	return out
}

func (ai *TargetingAI) HasShot(c Coordinates) bool {
	_, shot := ai.shots[c]
	return shot
}

func (ai *TargetingAI) isValidShot(c Coordinates) bool {
	size := ai.board.Size()
	if c.X < 0 || c.X >= size || c.Y < 0 || c.Y >= size {
		return false
	}
	return !ai.HasShot(c)
}

// NextShot returns the next position to shoot at. It returns false
// only when nothing on the board is left to shoot.
func (ai *TargetingAI) NextShot() (Coordinates, bool) {
	if ai.mode == ModeTarget {
		for len(ai.followUps) > 0 {
			next := ai.followUps[0]
			ai.followUps = ai.followUps[1:]
			if ai.isValidShot(next) {
				return next, true
			}
		}

		if ai.lastHit != nil {
			if next, ok := ai.findNextTarget(); ok {
				return next, true
			}
		}
	}

	return ai.huntShot()
}

// findNextTarget extends the line through the last hit. Without a
// locked direction it looks for an axis that already has other hits
// on it. Finding nothing drops the AI back to hunting.
func (ai *TargetingAI) findNextTarget() (Coordinates, bool) {
	from := *ai.lastHit

	if ai.direction != nil {
		dir := *ai.direction
		if next, ok := ai.extend(from, dir); ok {
			return next, true
		}

		flipped := dir.Neg()
		if next, ok := ai.extend(from, flipped); ok {
			ai.direction = &flipped
			return next, true
		}
	}

	for _, dir := range axisDirections {
		next, ok := ai.extend(from, dir)
		if !ok {
			continue
		}
		if ai.hasHitsInLine(from, dir) {
			d := dir
			ai.direction = &d
			return next, true
		}
	}

	ai.mode = ModeHunt
	ai.lastHit = nil
	ai.direction = nil
	return Coordinates{}, false
}

// extend steps from c along dir over cells of the current hit run
// and returns the first position that has not been shot yet.
func (ai *TargetingAI) extend(c Coordinates, dir Coordinates) (Coordinates, bool) {
	next := c.Add(dir)
	for {
		if ai.isValidShot(next) {
			return next, true
		}
		if !ai.HasShot(next) || ai.board.Cell(next.X, next.Y) != CellHit {
			return Coordinates{}, false
		}
		next = next.Add(dir)
	}
}

// hasHitsInLine scans both ways along the axis of dir, up to the
// board edge, for hit or destroyed cells the AI has shot.
func (ai *TargetingAI) hasHitsInLine(c Coordinates, dir Coordinates) bool {
	size := ai.board.Size()
	for _, d := range []Coordinates{dir, dir.Neg()} {
		for n := c.Add(d); n.X >= 0 && n.X < size && n.Y >= 0 && n.Y < size; n = n.Add(d) {
			if ai.HasShot(n) && ai.isHitCell(n) {
				return true
			}
		}
	}
	return false
}

func (ai *TargetingAI) isHitCell(c Coordinates) bool {
	cell := ai.board.Cell(c.X, c.Y)
	return cell == CellHit || cell == CellDestroyed
}

// huntShot scores every valid position and picks the highest,
// scanning rows top to bottom so the first maximum wins ties.
func (ai *TargetingAI) huntShot() (Coordinates, bool) {
	size := ai.board.Size()
	best := Coordinates{}
	bestPriority := 0
	found := false

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := NewCoordinates(x, y)
			if !ai.isValidShot(c) {
				continue
			}
			priority := ai.priority(c)
			if !found || priority > bestPriority {
				best, bestPriority, found = c, priority, true
			}
		}
	}
	if found {
		return best, true
	}

	// Everything is in the AI's own record; fall back to whatever
	// the board itself has not resolved.
	remaining := make([]Coordinates, 0, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !ai.board.IsShot(x, y) {
				remaining = append(remaining, NewCoordinates(x, y))
			}
		}
	}
	if len(remaining) == 0 {
		return Coordinates{}, false
	}
	return remaining[ai.rng.Intn(len(remaining))], true
}

// priority of a position in hunt mode:
//
//	+10 on the even checkerboard colour
//	+max(0, 9 - manhattan distance to the centre (4.5, 4.5))
//	-5 on the border
//	-3 per orthogonal neighbour that was a miss
//	+15 per neighbour (diagonals too) that was a hit
func (ai *TargetingAI) priority(c Coordinates) int {
	size := ai.board.Size()
	priority := 0

	if (c.X+c.Y)%2 == 0 {
		priority += 10
	}

	// |x-4.5| + |y-4.5| on doubled coordinates, always a whole number
	distance := (abs(2*c.X-(size-1)) + abs(2*c.Y-(size-1))) / 2
	if centre := 9 - distance; centre > 0 {
		priority += centre
	}

	if c.X == 0 || c.X == size-1 || c.Y == 0 || c.Y == size-1 {
		priority -= 5
	}

	for _, d := range axisDirections {
		n := c.Add(d)
		if ai.HasShot(n) && ai.board.Cell(n.X, n.Y) == CellMiss {
			priority -= 3
		}
	}

	for _, n := range neighbours(c, size) {
		if n == c {
			continue
		}
		if ai.HasShot(n) && ai.isHitCell(n) {
			priority += 15
		}
	}

	return priority
}

// RegisterShot feeds the outcome of a resolved shot back to the AI.
func (ai *TargetingAI) RegisterShot(x, y int, result ShotResult) {
	c := NewCoordinates(x, y)
	ai.shots[c] = struct{}{}

	if result.IsHit() {
		ai.mode = ModeTarget
		ai.lastHit = &c

		if result == ShotHit && ai.direction == nil {
			ai.buildFollowUps(c)
		}

		if result == ShotDestroyed {
			ai.mode = ModeHunt
			ai.lastHit = nil
			ai.direction = nil
			ai.followUps = nil
			ai.markAroundDestroyed(c)
		}
		return
	}

	if ai.mode != ModeTarget {
		return
	}

	for i, f := range ai.followUps {
		if f == c {
			ai.followUps = append(ai.followUps[:i], ai.followUps[i+1:]...)
			break
		}
	}

	if ai.lastHit != nil && ai.direction != nil {
		ai.direction = nil
		ai.buildFollowUps(*ai.lastHit)
	}
}

// buildFollowUps queues the valid orthogonal neighbours of c in random order.
func (ai *TargetingAI) buildFollowUps(c Coordinates) {
	ai.followUps = make([]Coordinates, 0, len(axisDirections))
	for _, d := range axisDirections {
		if n := c.Add(d); ai.isValidShot(n) {
			ai.followUps = append(ai.followUps, n)
		}
	}

	ai.rng.Shuffle(len(ai.followUps), func(i, j int) {
		ai.followUps[i], ai.followUps[j] = ai.followUps[j], ai.followUps[i]
	})
}

func (ai *TargetingAI) markAroundDestroyed(c Coordinates) {
	ship, prs := ai.board.ShipAt(c.X, c.Y)
	if !prs || !ship.IsDestroyed() {
		return
	}

	for _, sc := range ship.cells {
		for _, n := range neighbours(sc, ai.board.Size()) {
			ai.shots[n] = struct{}{}
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
