package api

import (
	"encoding/json"
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/seabattle/internal/error"
	mp "github.com/saeidalz13/seabattle/models/protocol"
)

const CommandHelp = `commands (coordinates are 0-based "x y"):
  new               start a new game
  select SIZE       pick a ship size to place (1-4)
  rotate            toggle horizontal/vertical
  place X Y         place the selected ship
  preview X Y       show where the selected ship would go
  remove X Y        remove the ship covering X Y
  auto              place the whole fleet at random
  clear             remove every ship
  ships             ships left to place
  start             start the battle
  shoot X Y         fire at the computer board
  computer          let the computer take one shot
  status            game over check and score
  surrender         give up the battle
  boards            print both boards
  help              this text
  quit              leave`

var noPayloadCommands = map[string]uint8{
	"new":       mp.CodeNewGame,
	"rotate":    mp.CodeRotateShip,
	"auto":      mp.CodeAutoPlace,
	"clear":     mp.CodeClearShips,
	"ships":     mp.CodeShipsToPlace,
	"start":     mp.CodeStartBattle,
	"computer":  mp.CodeComputerShoot,
	"status":    mp.CodeGameOver,
	"surrender": mp.CodeSurrender,
	"boards":    mp.CodeBoards,
}

var coordinateCommands = map[string]uint8{
	"place":   mp.CodePlaceShip,
	"preview": mp.CodePreviewShip,
	"remove":  mp.CodeRemoveShip,
	"shoot":   mp.CodePlayerShoot,
}

// ParseCommand turns a text command into the JSON request the
// CommandProcessor understands.
func ParseCommand(line string) ([]byte, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil, cerr.ErrEmptyCommand()
	}
	name, args := fields[0], fields[1:]

	if code, prs := noPayloadCommands[name]; prs {
		if len(args) != 0 {
			return nil, cerr.ErrCommandArgs(name, 0, len(args))
		}
		return json.Marshal(mp.NewMessage[mp.NoPayload](code))
	}

	if code, prs := coordinateCommands[name]; prs {
		ints, err := parseInts(name, args, 2)
		if err != nil {
			return nil, err
		}
		msg := mp.NewMessage[mp.ReqCoordinates](code)
		msg.AddPayload(mp.ReqCoordinates{X: ints[0], Y: ints[1]})
		return json.Marshal(msg)
	}

	if name == "select" {
		ints, err := parseInts(name, args, 1)
		if err != nil {
			return nil, err
		}
		msg := mp.NewMessage[mp.ReqSelectShip](mp.CodeSelectShip)
		msg.AddPayload(mp.ReqSelectShip{Size: ints[0]})
		return json.Marshal(msg)
	}

	return nil, cerr.ErrUnknownCommand(name)
}

func parseInts(name string, args []string, want int) ([]int, error) {
	if len(args) != want {
		return nil, cerr.ErrCommandArgs(name, want, len(args))
	}

	ints := make([]int, want)
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, cerr.ErrValueNotInt(arg)
		}
		ints[i] = n
	}
	return ints, nil
}
