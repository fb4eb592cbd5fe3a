package api

import (
	"encoding/json"

	mb "github.com/saeidalz13/seabattle/models/battleship"
	mp "github.com/saeidalz13/seabattle/models/protocol"
)

const invalidPayloadMsg = "invalid payload for this code"

// Every decoded command becomes a Request. The handlers
// translate between protocol messages and the game.
type Request struct {
	payload []byte
}

func NewRequest(payload ...[]byte) Request {
	if len(payload) == 0 {
		return Request{}
	}
	return Request{payload: payload[0]}
}

func statusMessage(code uint8, game *mb.Game, text string, err error) mp.Message[mp.RespStatus] {
	resp := mp.NewMessage[mp.RespStatus](code)
	if err != nil {
		resp.AddError("", err.Error())
		return resp
	}
	resp.AddPayload(mp.RespStatus{GameUuid: game.Uuid(), Phase: game.Phase().String(), Message: text})
	return resp
}

func (r Request) coordinates() (mp.ReqCoordinates, error) {
	var req mp.Message[mp.ReqCoordinates]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		return mp.ReqCoordinates{}, err
	}
	return req.Payload, nil
}

func (r Request) HandleNewGame(gameManager mb.GameManager, oldGameUuid string) (*mb.Game, mp.Message[mp.RespStatus]) {
	game := gameManager.NewGame(oldGameUuid)
	return game, statusMessage(mp.CodeNewGame, game, "new game, place your ships", nil)
}

func (r Request) HandleSelectShip(game *mb.Game) mp.Message[mp.RespStatus] {
	var req mp.Message[mp.ReqSelectShip]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp := mp.NewMessage[mp.RespStatus](mp.CodeSelectShip)
		resp.AddError(err.Error(), invalidPayloadMsg)
		return resp
	}

	text, err := game.SelectShip(req.Payload.Size)
	return statusMessage(mp.CodeSelectShip, game, text, err)
}

func (r Request) HandleRotateShip(game *mb.Game) mp.Message[mp.RespStatus] {
	return statusMessage(mp.CodeRotateShip, game, game.RotateSelection(), nil)
}

func (r Request) HandlePlaceShip(game *mb.Game) mp.Message[mp.RespStatus] {
	c, err := r.coordinates()
	if err != nil {
		resp := mp.NewMessage[mp.RespStatus](mp.CodePlaceShip)
		resp.AddError(err.Error(), invalidPayloadMsg)
		return resp
	}

	text, err := game.PlaceShip(c.X, c.Y)
	return statusMessage(mp.CodePlaceShip, game, text, err)
}

func (r Request) HandlePreviewShip(game *mb.Game) mp.Message[mp.RespPreview] {
	resp := mp.NewMessage[mp.RespPreview](mp.CodePreviewShip)

	c, err := r.coordinates()
	if err != nil {
		resp.AddError(err.Error(), invalidPayloadMsg)
		return resp
	}

	preview, err := game.PreviewPlacement(c.X, c.Y)
	if err != nil {
		resp.AddError("", err.Error())
		return resp
	}
	resp.AddPayload(mp.RespPreview{Board: preview.Snapshot(false)})
	return resp
}

func (r Request) HandleRemoveShip(game *mb.Game) mp.Message[mp.RespStatus] {
	c, err := r.coordinates()
	if err != nil {
		resp := mp.NewMessage[mp.RespStatus](mp.CodeRemoveShip)
		resp.AddError(err.Error(), invalidPayloadMsg)
		return resp
	}

	text, err := game.RemoveShip(c.X, c.Y)
	return statusMessage(mp.CodeRemoveShip, game, text, err)
}

func (r Request) HandleAutoPlace(game *mb.Game) mp.Message[mp.RespStatus] {
	text, err := game.AutoPlaceAll()
	return statusMessage(mp.CodeAutoPlace, game, text, err)
}

func (r Request) HandleClearShips(game *mb.Game) mp.Message[mp.RespStatus] {
	text, err := game.ClearAll()
	return statusMessage(mp.CodeClearShips, game, text, err)
}

func (r Request) HandleShipsToPlace(game *mb.Game) mp.Message[mp.RespShipsToPlace] {
	selected, horizontal := game.Selection()

	resp := mp.NewMessage[mp.RespShipsToPlace](mp.CodeShipsToPlace)
	resp.AddPayload(mp.RespShipsToPlace{
		Ships:       game.ShipsToPlace(),
		PlacedTotal: game.PlacedTotal(),
		Selected:    selected,
		Horizontal:  horizontal,
	})
	return resp
}

func (r Request) HandleStartBattle(game *mb.Game) mp.Message[mp.RespStatus] {
	text, err := game.StartBattle()
	return statusMessage(mp.CodeStartBattle, game, text, err)
}

func (r Request) HandlePlayerShoot(game *mb.Game) mp.Message[mp.RespShot] {
	resp := mp.NewMessage[mp.RespShot](mp.CodePlayerShoot)

	c, err := r.coordinates()
	if err != nil {
		resp.AddError(err.Error(), invalidPayloadMsg)
		return resp
	}

	result, text, err := game.PlayerShoot(c.X, c.Y)
	if err != nil {
		resp.AddError("", err.Error())
		return resp
	}

	resp.AddPayload(mp.RespShot{
		X:       c.X,
		Y:       c.Y,
		Result:  result,
		IsTurn:  game.IsPlayerTurn(),
		Message: text,
	})
	return resp
}

// The response is written from the player's point of view:
// IsTurn is true once the computer has missed.
func (r Request) HandleComputerShoot(game *mb.Game) mp.Message[mp.RespShot] {
	resp := mp.NewMessage[mp.RespShot](mp.CodeComputerShoot)

	report, err := game.ComputerShoot()
	if err != nil {
		resp.AddError("", err.Error())
		return resp
	}

	resp.AddPayload(mp.RespShot{
		X:       report.X,
		Y:       report.Y,
		Result:  report.Result,
		IsTurn:  game.IsPlayerTurn(),
		Message: report.Message,
	})
	return resp
}

func (r Request) HandleGameOver(game *mb.Game) mp.Message[mp.RespGameOver] {
	report := game.CheckGameOver()

	resp := mp.NewMessage[mp.RespGameOver](mp.CodeGameOver)
	payload := mp.RespGameOver{
		Over:          report.Over,
		Surrendered:   report.Surrendered,
		PlayerScore:   report.PlayerScore,
		ComputerScore: report.ComputerScore,
		FleetSize:     mb.FleetShipCount,
	}
	if report.Over {
		payload.Winner = report.Winner.String()
	}
	resp.AddPayload(payload)
	return resp
}

func (r Request) HandleSurrender(game *mb.Game) mp.Message[mp.RespStatus] {
	text, err := game.Surrender()
	return statusMessage(mp.CodeSurrender, game, text, err)
}

func (r Request) HandleBoards(game *mb.Game) mp.Message[mp.RespBoards] {
	resp := mp.NewMessage[mp.RespBoards](mp.CodeBoards)
	resp.AddPayload(mp.RespBoards{
		Phase:    game.Phase().String(),
		IsTurn:   game.IsPlayerTurn(),
		Player:   game.PlayerBoard().Snapshot(false),
		Computer: game.ComputerBoard().Snapshot(game.Phase() != mb.PhaseGameOver),
	})
	return resp
}
