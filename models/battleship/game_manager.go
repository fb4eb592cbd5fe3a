package battleship

import (
	"sync"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/seabattle/internal/error"
)

type GameManager interface {
	CreateGame() *Game
	GetGame(gameUuid string) (*Game, error)
	NewGame(oldGameUuid string) *Game
	TerminateGame(gameUuid string)
}

// BattleshipGameManager keeps the games of the running process.
// Each game is driven by one caller at a time; the manager itself
// is safe for concurrent use.
type BattleshipGameManager struct {
	games   map[string]*Game
	newRand func() Rand
	mu      sync.RWMutex
}

var _ GameManager = (*BattleshipGameManager)(nil)

// newRand is called once per game; pass nil for clock seeded sources.
func NewBattleshipGameManager(newRand func() Rand) *BattleshipGameManager {
	if newRand == nil {
		newRand = func() Rand { return NewRand(0) }
	}

	return &BattleshipGameManager{
		games:   make(map[string]*Game, 10),
		newRand: newRand,
	}
}

func (bgm *BattleshipGameManager) CreateGame() *Game {
	bgm.mu.Lock()
	defer bgm.mu.Unlock()

	gameUuid := uuid.NewString()[:6]
	for _, prs := bgm.games[gameUuid]; prs; _, prs = bgm.games[gameUuid] {
		gameUuid = uuid.NewString()[:6]
	}

	game := NewGame(gameUuid, bgm.newRand())
	bgm.games[gameUuid] = game
	return game
}

func (bgm *BattleshipGameManager) GetGame(gameUuid string) (*Game, error) {
	bgm.mu.RLock()
	game, prs := bgm.games[gameUuid]
	bgm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrGameNotExists(gameUuid)
	}

	return game, nil
}

// NewGame drops the old game, if any, and starts a fresh one.
func (bgm *BattleshipGameManager) NewGame(oldGameUuid string) *Game {
	bgm.TerminateGame(oldGameUuid)
	return bgm.CreateGame()
}

func (bgm *BattleshipGameManager) TerminateGame(gameUuid string) {
	bgm.mu.Lock()
	delete(bgm.games, gameUuid)
	bgm.mu.Unlock()
}

func (bgm *BattleshipGameManager) GameCount() int {
	bgm.mu.RLock()
	defer bgm.mu.RUnlock()
	return len(bgm.games)
}
