package battleship

import (
	"fmt"

	cerr "github.com/saeidalz13/seabattle/internal/error"
)

type Phase uint8

const (
	PhasePlacement Phase = iota
	PhaseBattle
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlacement:
		return "placement"
	case PhaseBattle:
		return "battle"
	default:
		return "game_over"
	}
}

type Side uint8

const (
	SideNone Side = iota
	SidePlayer
	SideComputer
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideComputer:
		return "computer"
	default:
		return "none"
	}
}

// ShipQuota is one line of the ships-to-place checklist.
type ShipQuota struct {
	Size     int `json:"size"`
	Required int `json:"required"`
	Placed   int `json:"placed"`
}

// ShotReport describes one computer shot.
type ShotReport struct {
	X       int
	Y       int
	Result  ShotResult
	Message string
}

type GameOverReport struct {
	Over          bool
	Winner        Side
	Surrendered   bool
	PlayerScore   int
	ComputerScore int
}

// Game is a single-player session: the player's board, the
// computer's board and the AI that shoots at the player.
// It is not safe for concurrent use.
type Game struct {
	uuid          string
	phase         Phase
	playerBoard   *Board
	computerBoard *Board
	quotas        []ShipQuota

	selectedSize int
	horizontal   bool

	playerTurn  bool
	winner      Side
	surrendered bool
	ai          *TargetingAI
	rng         Rand
}

func NewGame(uuid string, rng Rand) *Game {
	game := &Game{
		uuid:          uuid,
		phase:         PhasePlacement,
		playerBoard:   NewBoard(),
		computerBoard: NewBoard(),
		horizontal:    true,
		playerTurn:    true,
		rng:           rng,
	}
	game.resetQuotas()
	return game
}

func (g *Game) resetQuotas() {
	g.quotas = make([]ShipQuota, 0, len(Fleet))
	for _, entry := range Fleet {
		g.quotas = append(g.quotas, ShipQuota{Size: entry.Size, Required: entry.Count})
	}
}

func (g *Game) quota(size int) *ShipQuota {
	for i := range g.quotas {
		if g.quotas[i].Size == size {
			return &g.quotas[i]
		}
	}
	return nil
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) IsPlayerTurn() bool {
	return g.phase == PhaseBattle && g.playerTurn
}

func (g *Game) PlayerBoard() *Board {
	return g.playerBoard
}

func (g *Game) ComputerBoard() *Board {
	return g.computerBoard
}

// AI is nil until the battle starts
func (g *Game) AI() *TargetingAI {
	return g.ai
}

// Returns the selected ship size (0 when none) and its orientation
func (g *Game) Selection() (int, bool) {
	return g.selectedSize, g.horizontal
}

func (g *Game) ShipsToPlace() []ShipQuota {
	quotas := make([]ShipQuota, len(g.quotas))
	copy(quotas, g.quotas)
	return quotas
}

func (g *Game) PlacedTotal() int {
	total := 0
	for _, q := range g.quotas {
		total += q.Placed
	}
	return total
}

func orientationName(horizontal bool) string {
	if horizontal {
		return "horizontal"
	}
	return "vertical"
}

func (g *Game) SelectShip(size int) (string, error) {
	if g.phase != PhasePlacement {
		return "", cerr.ErrNotPlacementPhase()
	}

	q := g.quota(size)
	if q == nil {
		return "", cerr.ErrInvalidShipSize(size)
	}
	if q.Placed >= q.Required {
		return "", cerr.ErrShipQuotaReached(size)
	}

	g.selectedSize = size
	return fmt.Sprintf("%d-deck ship selected (%s)", size, orientationName(g.horizontal)), nil
}

func (g *Game) RotateSelection() string {
	if g.selectedSize == 0 {
		return cerr.ErrNoShipSelected().Error()
	}

	g.horizontal = !g.horizontal
	return fmt.Sprintf("ship rotated: %s", orientationName(g.horizontal))
}

// candidate builds the pending ship at (x, y), shifted back onto
// the board when it would overflow the far edge.
func (g *Game) candidate(x, y int) (*Ship, error) {
	if g.phase != PhasePlacement {
		return nil, cerr.ErrNotPlacementPhase()
	}
	if g.selectedSize == 0 {
		return nil, cerr.ErrNoShipSelected()
	}

	size := g.selectedSize
	if g.horizontal && x+size > BoardSize {
		x = BoardSize - size
	} else if !g.horizontal && y+size > BoardSize {
		y = BoardSize - size
	}

	ship := NewShip(size, x, y, g.horizontal)
	if !g.playerBoard.CanPlace(ship, true) {
		return nil, cerr.ErrPlacementOutOfBounds()
	}
	if !g.playerBoard.CanPlace(ship, false) {
		return nil, cerr.ErrPlacementBlocked(x, y)
	}

	q := g.quota(size)
	if q.Placed >= q.Required {
		return nil, cerr.ErrShipQuotaExceeded(size, q.Required)
	}
	return ship, nil
}

func (g *Game) PlaceShip(x, y int) (string, error) {
	ship, err := g.candidate(x, y)
	if err != nil {
		return "", err
	}

	if !g.playerBoard.Place(ship, false) {
		return "", cerr.ErrPlacementBlocked(ship.origin.X, ship.origin.Y)
	}
	q := g.quota(ship.size)
	q.Placed++

	placed := g.PlacedTotal()
	if placed < FleetShipCount {
		return fmt.Sprintf("ship placed, placed: %d/%d", placed, FleetShipCount), nil
	}
	return "all ships are placed, start the battle", nil
}

// PreviewPlacement validates the pending ship at (x, y) like
// PlaceShip and returns a copy of the player board with the ship
// drawn on it. The real board is never touched.
func (g *Game) PreviewPlacement(x, y int) (*Board, error) {
	ship, err := g.candidate(x, y)
	if err != nil {
		return nil, err
	}

	preview := g.playerBoard.Clone()
	preview.Place(ship, true)
	return preview, nil
}

func (g *Game) RemoveShip(x, y int) (string, error) {
	if g.phase != PhasePlacement {
		return "", cerr.ErrNotPlacementPhase()
	}

	ship, prs := g.playerBoard.ShipAt(x, y)
	if !prs {
		return "", cerr.ErrShipNotFound(x, y)
	}

	g.playerBoard.Remove(ship)
	if q := g.quota(ship.size); q != nil {
		q.Placed--
	}
	return fmt.Sprintf("ship removed, placed: %d/%d", g.PlacedTotal(), FleetShipCount), nil
}

// AutoPlaceAll replaces the player board with a randomly filled
// one. On failure the previous board and counters are kept.
func (g *Game) AutoPlaceAll() (string, error) {
	if g.phase != PhasePlacement {
		return "", cerr.ErrNotPlacementPhase()
	}

	board, err := PlaceFleet(g.rng)
	if err != nil {
		return "", err
	}

	g.playerBoard = board
	g.resetQuotas()
	for _, ship := range board.ships {
		if q := g.quota(ship.size); q != nil {
			q.Placed++
		}
	}
	return "all ships were placed automatically", nil
}

func (g *Game) ClearAll() (string, error) {
	if g.phase != PhasePlacement {
		return "", cerr.ErrNotPlacementPhase()
	}

	g.playerBoard = NewBoard()
	g.resetQuotas()
	return "board cleared, select your ships", nil
}

func (g *Game) StartBattle() (string, error) {
	if g.phase != PhasePlacement {
		return "", cerr.ErrNotPlacementPhase()
	}

	placed := g.PlacedTotal()
	if placed < FleetShipCount {
		return "", cerr.ErrFleetIncomplete(placed, FleetShipCount)
	}

	board, err := PlaceFleet(g.rng)
	if err != nil {
		return "", cerr.ErrComputerFleetFailed()
	}

	g.computerBoard = board
	g.phase = PhaseBattle
	g.playerTurn = true
	g.winner = SideNone
	g.selectedSize = 0
	g.ai = NewTargetingAI(g.playerBoard, g.rng)
	return "the battle has started", nil
}

// PlayerShoot fires at the computer board. A hit keeps the turn,
// a miss hands it to the computer, a repeated position is
// rejected without consuming the turn.
func (g *Game) PlayerShoot(x, y int) (ShotResult, string, error) {
	if !g.IsPlayerTurn() {
		return ShotAlreadyShot, "", cerr.ErrNotPlayerTurn()
	}

	result, err := g.computerBoard.Shoot(x, y)
	if err != nil {
		return ShotAlreadyShot, "", err
	}

	switch result {
	case ShotAlreadyShot:
		return result, "", cerr.ErrPositionAlreadyShot(x, y)

	case ShotMiss:
		g.playerTurn = false
		return result, "miss, the computer is shooting", nil

	case ShotHit:
		return result, "hit, shoot again", nil

	default:
		g.updateGameOver()
		return result, "enemy ship destroyed, shoot again", nil
	}
}

// ComputerShoot takes one computer shot. The caller keeps calling
// it while the computer holds the turn.
func (g *Game) ComputerShoot() (ShotReport, error) {
	if g.phase != PhaseBattle || g.playerTurn {
		return ShotReport{}, cerr.ErrNotComputerTurn()
	}

	target, ok := g.ai.NextShot()
	if !ok {
		return ShotReport{}, cerr.ErrNoShotsLeft()
	}

	result, err := g.playerBoard.Shoot(target.X, target.Y)
	if err != nil {
		return ShotReport{}, err
	}
	g.ai.RegisterShot(target.X, target.Y, result)

	report := ShotReport{X: target.X, Y: target.Y, Result: result}
	switch result {
	case ShotMiss:
		g.playerTurn = true
		report.Message = fmt.Sprintf("computer shot at (%d,%d): miss, your turn", target.X, target.Y)

	case ShotDestroyed:
		g.updateGameOver()
		report.Message = fmt.Sprintf("computer shot at (%d,%d): ship destroyed, computer shoots again", target.X, target.Y)

	default:
		report.Message = fmt.Sprintf("computer shot at (%d,%d): %s, computer shoots again", target.X, target.Y, result)
	}
	return report, nil
}

func (g *Game) Surrender() (string, error) {
	if g.phase != PhaseBattle {
		return "", cerr.ErrNotInBattle()
	}

	g.phase = PhaseGameOver
	g.winner = SideComputer
	g.surrendered = true
	return "you surrendered, the computer wins", nil
}

func (g *Game) updateGameOver() {
	if g.phase != PhaseBattle {
		return
	}

	switch {
	case g.playerBoard.ShipsAlive() == 0:
		g.winner = SideComputer
	case g.computerBoard.ShipsAlive() == 0:
		g.winner = SidePlayer
	default:
		return
	}
	g.phase = PhaseGameOver
}

// CheckGameOver reports whether a side has lost every ship. Scores
// are the number of enemy ships each side destroyed.
func (g *Game) CheckGameOver() GameOverReport {
	if g.phase == PhasePlacement {
		return GameOverReport{}
	}

	g.updateGameOver()
	if g.phase != PhaseGameOver {
		return GameOverReport{}
	}

	return GameOverReport{
		Over:          true,
		Winner:        g.winner,
		Surrendered:   g.surrendered,
		PlayerScore:   g.computerBoard.DestroyedShips(),
		ComputerScore: g.playerBoard.DestroyedShips(),
	}
}
