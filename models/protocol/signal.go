package protocol

const (
	// unknown code in the incoming request
	CodeInvalidSignal uint8 = iota

	// if the req msg does not contain "code" field
	CodeSignalAbsent

	// Placement phase
	CodeNewGame
	CodeSelectShip
	CodeRotateShip
	CodePlaceShip
	CodePreviewShip
	CodeRemoveShip
	CodeAutoPlace
	CodeClearShips
	CodeShipsToPlace
	CodeStartBattle

	// Battle phase
	CodePlayerShoot
	CodeComputerShoot
	CodeGameOver
	CodeSurrender

	// Both boards as the player sees them
	CodeBoards
)

type Signal struct {
	Code uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}
