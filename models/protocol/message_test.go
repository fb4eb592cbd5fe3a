package protocol

import (
	"encoding/json"
	"testing"

	mb "github.com/saeidalz13/seabattle/models/battleship"
	"github.com/stretchr/testify/require"
)

func TestMessageJSON(t *testing.T) {
	tests := []struct {
		name     string
		msg      any
		expected string
	}{
		{
			name:     "no payload",
			msg:      NewMessage[NoPayload](CodeStartBattle),
			expected: `{"code":11}`,
		},
		{
			name: "shot",
			msg: func() Message[RespShot] {
				m := NewMessage[RespShot](CodePlayerShoot)
				m.AddPayload(RespShot{X: 1, Y: 2, Result: mb.ShotDestroyed, IsTurn: true, Message: "sunk"})
				return m
			}(),
			expected: `{"code":12,"payload":{"x":1,"y":2,"result":"destroyed","is_turn":true,"message":"sunk"}}`,
		},
		{
			name: "error",
			msg: func() Message[RespStatus] {
				m := NewMessage[RespStatus](CodePlaceShip)
				m.AddError("", "select a ship first")
				return m
			}(),
			expected: `{"code":5,"payload":{"phase":"","message":""},"error":{"message":"select a ship first"}}`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := json.Marshal(test.msg)
			require.NoError(t, err)
			require.JSONEq(t, test.expected, string(b))
		})
	}
}

func TestGridEncodesCellNames(t *testing.T) {
	var grid mb.Grid
	grid[0][1] = mb.CellShip
	grid[2][0] = mb.CellMiss

	b, err := json.Marshal(RespPreview{Board: grid})
	require.NoError(t, err)

	var decoded struct {
		Board [][]string `json:"board"`
	}
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Len(t, decoded.Board, mb.BoardSize)
	require.Equal(t, "ship", decoded.Board[0][1])
	require.Equal(t, "miss", decoded.Board[2][0])
	require.Equal(t, "empty", decoded.Board[9][9])
}

func TestFailed(t *testing.T) {
	msg := NewMessage[RespShot](CodeComputerShoot)
	require.False(t, msg.Failed())

	msg.AddError("", "it is the player's turn or the game is over")
	require.True(t, msg.Failed())
}
