package error

import "fmt"

const (
	ConstErrShotFailed = "shot could not be resolved"
)

func ErrGameNotExists(gameUuid string) error {
	return fmt.Errorf("game with this uuid does not exist, uuid: %s", gameUuid)
}

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("x or y is out of grid bound\tx: %d\ty: %d", x, y)
}

func ErrNotPlacementPhase() error {
	return fmt.Errorf("ships can only be arranged before the battle starts")
}

func ErrInvalidShipSize(size int) error {
	return fmt.Errorf("there is no ship of size %d in the fleet", size)
}

func ErrShipQuotaReached(size int) error {
	return fmt.Errorf("all %d-deck ships are already placed", size)
}

func ErrShipQuotaExceeded(size, count int) error {
	return fmt.Errorf("at most %d ships of size %d are allowed", count, size)
}

func ErrNoShipSelected() error {
	return fmt.Errorf("select a ship first")
}

func ErrPlacementOutOfBounds() error {
	return fmt.Errorf("the ship cannot be placed outside the board")
}

func ErrPlacementBlocked(x, y int) error {
	return fmt.Errorf("the ship cannot be placed here, it touches another ship\tx: %d\ty: %d", x, y)
}

func ErrShipNotFound(x, y int) error {
	return fmt.Errorf("there is no ship at this position\tx: %d\ty: %d", x, y)
}

func ErrAutoPlacementFailed() error {
	return fmt.Errorf("failed to place the fleet automatically")
}

func ErrFleetIncomplete(placed, total int) error {
	return fmt.Errorf("place all %d ships before starting the battle, placed: %d", total, placed)
}

func ErrComputerFleetFailed() error {
	return fmt.Errorf("failed to place the computer fleet")
}

func ErrNotPlayerTurn() error {
	return fmt.Errorf("it is not your turn or the game is over")
}

func ErrNotComputerTurn() error {
	return fmt.Errorf("it is the player's turn or the game is over")
}

func ErrPositionAlreadyShot(x, y int) error {
	return fmt.Errorf("this position was already shot\tx: %d\ty: %d", x, y)
}

func ErrNoShotsLeft() error {
	return fmt.Errorf("%s: no position left to shoot at", ConstErrShotFailed)
}

func ErrNotInBattle() error {
	return fmt.Errorf("the battle is not in progress")
}

func ErrEmptyCommand() error {
	return fmt.Errorf("empty command, type 'help' for the list of commands")
}

func ErrUnknownCommand(name string) error {
	return fmt.Errorf("unknown command: %s", name)
}

func ErrCommandArgs(name string, want, got int) error {
	return fmt.Errorf("command %s takes %d arguments, got %d", name, want, got)
}

func ErrValueNotInt(value interface{}) error {
	return fmt.Errorf("the value is not of type int:\t%v", value)
}

func ErrInvalidStage(stage string) error {
	return fmt.Errorf("stage must be either dev or prod, got: %s", stage)
}

func ErrInvalidOutput(output string) error {
	return fmt.Errorf("output must be either text or json, got: %s", output)
}
