package battleship

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func seededRands(seed int64) func() Rand {
	master := rand.New(rand.NewSource(seed))
	return func() Rand {
		return rand.New(rand.NewSource(master.Int63()))
	}
}

func TestGameManagerLifecycle(t *testing.T) {
	bgm := NewBattleshipGameManager(seededRands(1))

	game := bgm.CreateGame()
	require.Len(t, game.Uuid(), 6)
	require.Equal(t, PhasePlacement, game.Phase())

	got, err := bgm.GetGame(game.Uuid())
	require.NoError(t, err)
	require.Same(t, game, got)

	fresh := bgm.NewGame(game.Uuid())
	require.NotEqual(t, game.Uuid(), fresh.Uuid())
	require.Equal(t, 1, bgm.GameCount())

	_, err = bgm.GetGame(game.Uuid())
	require.EqualError(t, err, "game with this uuid does not exist, uuid: "+game.Uuid())

	bgm.TerminateGame(fresh.Uuid())
	require.Zero(t, bgm.GameCount())

	// unknown ids are ignored
	bgm.TerminateGame("nope")
	require.NotNil(t, bgm.NewGame("nope"))
}

func TestGameManagerDefaultRand(t *testing.T) {
	bgm := NewBattleshipGameManager(nil)
	game := bgm.CreateGame()

	_, err := game.AutoPlaceAll()
	require.NoError(t, err)
	require.Equal(t, FleetShipCount, game.PlacedTotal())
}

func TestGameManagerConcurrentCreate(t *testing.T) {
	bgm := NewBattleshipGameManager(nil)

	const workers = 8
	const perWorker = 25

	var wg sync.WaitGroup
	uuids := make(chan string, workers*perWorker)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				uuids <- bgm.CreateGame().Uuid()
			}
		}()
	}
	wg.Wait()
	close(uuids)

	seen := make(map[string]bool)
	for id := range uuids {
		require.False(t, seen[id], "duplicate uuid %s", id)
		seen[id] = true
	}
	require.Equal(t, workers*perWorker, bgm.GameCount())
}
