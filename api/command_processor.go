package api

import (
	"encoding/json"

	"github.com/charmbracelet/log"
	mb "github.com/saeidalz13/seabattle/models/battleship"
	mp "github.com/saeidalz13/seabattle/models/protocol"
)

// CommandProcessor drives one game on behalf of a front-end.
// Every call takes a JSON request and returns a protocol message;
// rejected commands come back with Message.Error set.
type CommandProcessor struct {
	gameManager mb.GameManager
	game        *mb.Game
	logger      *log.Logger
}

func NewCommandProcessor(gameManager mb.GameManager, logger *log.Logger) *CommandProcessor {
	if logger == nil {
		logger = log.Default()
	}

	cp := &CommandProcessor{
		gameManager: gameManager,
		game:        gameManager.CreateGame(),
		logger:      logger,
	}
	cp.logger.Info("game created", "game", cp.game.Uuid())
	return cp
}

func (cp *CommandProcessor) Game() *mb.Game {
	return cp.game
}

type failer interface {
	Failed() bool
}

func (cp *CommandProcessor) Process(payload []byte) any {
	var signal mp.Signal

	if err := json.Unmarshal(payload, &signal); err != nil {
		msg := mp.NewMessage[mp.NoPayload](mp.CodeSignalAbsent)
		msg.AddError(err.Error(), "incoming req payload must contain 'code' field")
		cp.logger.Warn("undecodable request", "err", err)
		return msg
	}

	resp := cp.dispatch(signal.Code, payload)
	if f, ok := resp.(failer); ok && f.Failed() {
		cp.logger.Warn("command rejected", "code", signal.Code, "game", cp.game.Uuid())
	} else {
		cp.logger.Debug("command handled", "code", signal.Code, "game", cp.game.Uuid(), "phase", cp.game.Phase())
	}
	return resp
}

func (cp *CommandProcessor) dispatch(code uint8, payload []byte) any {
	req := NewRequest(payload)

	switch code {
	case mp.CodeNewGame:
		oldGameUuid := cp.game.Uuid()
		game, resp := req.HandleNewGame(cp.gameManager, oldGameUuid)
		cp.game = game
		cp.logger.Info("game replaced", "old", oldGameUuid, "new", game.Uuid())
		return resp

	case mp.CodeSelectShip:
		return req.HandleSelectShip(cp.game)

	case mp.CodeRotateShip:
		return req.HandleRotateShip(cp.game)

	case mp.CodePlaceShip:
		return req.HandlePlaceShip(cp.game)

	case mp.CodePreviewShip:
		return req.HandlePreviewShip(cp.game)

	case mp.CodeRemoveShip:
		return req.HandleRemoveShip(cp.game)

	case mp.CodeAutoPlace:
		return req.HandleAutoPlace(cp.game)

	case mp.CodeClearShips:
		return req.HandleClearShips(cp.game)

	case mp.CodeShipsToPlace:
		return req.HandleShipsToPlace(cp.game)

	case mp.CodeStartBattle:
		resp := req.HandleStartBattle(cp.game)
		if resp.Error == nil {
			cp.logger.Info("battle started", "game", cp.game.Uuid())
		}
		return resp

	case mp.CodePlayerShoot:
		return cp.withGameOverLog(req.HandlePlayerShoot(cp.game))

	case mp.CodeComputerShoot:
		return cp.withGameOverLog(req.HandleComputerShoot(cp.game))

	case mp.CodeGameOver:
		return req.HandleGameOver(cp.game)

	case mp.CodeSurrender:
		return cp.withGameOverLog(req.HandleSurrender(cp.game))

	case mp.CodeBoards:
		return req.HandleBoards(cp.game)

	default:
		respInvalidSignal := mp.NewMessage[mp.NoPayload](mp.CodeInvalidSignal)
		respInvalidSignal.AddError("", "invalid code in the incoming payload")
		return respInvalidSignal
	}
}

func (cp *CommandProcessor) withGameOverLog(resp any) any {
	if f, ok := resp.(failer); ok && f.Failed() {
		return resp
	}

	if report := cp.game.CheckGameOver(); report.Over {
		cp.logger.Info("game over",
			"game", cp.game.Uuid(),
			"winner", report.Winner,
			"player_score", report.PlayerScore,
			"computer_score", report.ComputerScore,
		)
	}
	return resp
}
