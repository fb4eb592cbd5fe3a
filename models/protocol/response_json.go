package protocol

import (
	mb "github.com/saeidalz13/seabattle/models/battleship"
)

type RespStatus struct {
	GameUuid string `json:"game_uuid,omitempty"`
	Phase    string `json:"phase"`
	Message  string `json:"message"`
}

type RespShipsToPlace struct {
	Ships       []mb.ShipQuota `json:"ships"`
	PlacedTotal int            `json:"placed_total"`
	Selected    int            `json:"selected,omitempty"`
	Horizontal  bool           `json:"horizontal"`
}

type RespPreview struct {
	Board mb.Grid `json:"board"`
}

type RespShot struct {
	X       int           `json:"x"`
	Y       int           `json:"y"`
	Result  mb.ShotResult `json:"result"`
	IsTurn  bool          `json:"is_turn"`
	Message string        `json:"message"`
}

type RespGameOver struct {
	Over          bool   `json:"over"`
	Winner        string `json:"winner,omitempty"`
	Surrendered   bool   `json:"surrendered,omitempty"`
	PlayerScore   int    `json:"player_score"`
	ComputerScore int    `json:"computer_score"`
	FleetSize     int    `json:"fleet_size"`
}

// Boards as the player sees them: the computer's ships stay
// hidden until the game is over.
type RespBoards struct {
	Phase    string  `json:"phase"`
	IsTurn   bool    `json:"is_turn"`
	Player   mb.Grid `json:"player"`
	Computer mb.Grid `json:"computer"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
