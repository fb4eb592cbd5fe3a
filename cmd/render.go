package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/saeidalz13/seabattle/internal/config"
	mb "github.com/saeidalz13/seabattle/models/battleship"
	mp "github.com/saeidalz13/seabattle/models/protocol"
)

var cellGlyphs = map[mb.Cell]byte{
	mb.CellEmpty:     '.',
	mb.CellShip:      '#',
	mb.CellMiss:      'o',
	mb.CellHit:       'x',
	mb.CellDestroyed: 'X',
}

type printer struct {
	w    io.Writer
	json bool
}

func newPrinter(w io.Writer, output string) printer {
	return printer{w: w, json: output == config.OutputJSON}
}

func (p printer) printErr(err error) {
	if p.json {
		msg := mp.NewMessage[mp.NoPayload](mp.CodeInvalidSignal)
		msg.AddError("", err.Error())
		p.print(msg)
		return
	}
	fmt.Fprintln(p.w, "error:", err)
}

func (p printer) print(resp any) {
	if p.json {
		b, err := json.Marshal(resp)
		if err != nil {
			fmt.Fprintln(p.w, "error:", err)
			return
		}
		fmt.Fprintln(p.w, string(b))
		return
	}

	switch r := resp.(type) {
	case mp.Message[mp.NoPayload]:
		p.printRespErr(r.Error)

	case mp.Message[mp.RespStatus]:
		if r.Error != nil {
			p.printRespErr(r.Error)
			return
		}
		fmt.Fprintf(p.w, "[%s] %s\n", r.Payload.Phase, r.Payload.Message)

	case mp.Message[mp.RespShipsToPlace]:
		for _, q := range r.Payload.Ships {
			fmt.Fprintf(p.w, "  %d-deck: %d/%d\n", q.Size, q.Placed, q.Required)
		}
		orientation := "horizontal"
		if !r.Payload.Horizontal {
			orientation = "vertical"
		}
		fmt.Fprintf(p.w, "placed %d/%d, selected: %d (%s)\n", r.Payload.PlacedTotal, mb.FleetShipCount, r.Payload.Selected, orientation)

	case mp.Message[mp.RespPreview]:
		if r.Error != nil {
			p.printRespErr(r.Error)
			return
		}
		p.printGrids([]string{"preview"}, r.Payload.Board)

	case mp.Message[mp.RespShot]:
		if r.Error != nil {
			p.printRespErr(r.Error)
			return
		}
		fmt.Fprintln(p.w, r.Payload.Message)

	case mp.Message[mp.RespGameOver]:
		if !r.Payload.Over {
			fmt.Fprintln(p.w, "the game is not over")
			return
		}
		p.printGameOver(mb.GameOverReport{
			Over:          true,
			Surrendered:   r.Payload.Surrendered,
			PlayerScore:   r.Payload.PlayerScore,
			ComputerScore: r.Payload.ComputerScore,
		}, r.Payload.Winner)

	case mp.Message[mp.RespBoards]:
		p.printGrids([]string{"you", "computer"}, r.Payload.Player, r.Payload.Computer)

	default:
		fmt.Fprintf(p.w, "%+v\n", resp)
	}
}

func (p printer) printRespErr(respErr *mp.RespErr) {
	if respErr == nil {
		return
	}
	if respErr.ErrorDetails != "" {
		fmt.Fprintf(p.w, "error: %s (%s)\n", respErr.Message, respErr.ErrorDetails)
		return
	}
	fmt.Fprintln(p.w, "error:", respErr.Message)
}

// winner overrides the report's side when it is only known by name.
func (p printer) printGameOver(report mb.GameOverReport, winner ...string) {
	if p.json {
		return
	}

	name := report.Winner.String()
	if len(winner) > 0 {
		name = winner[0]
	}
	if report.Surrendered {
		fmt.Fprintln(p.w, "you surrendered")
	}
	fmt.Fprintf(p.w, "GAME OVER, winner: %s\n", name)
	fmt.Fprintf(p.w, "ships destroyed: you %d/%d, computer %d/%d\n",
		report.PlayerScore, mb.FleetShipCount, report.ComputerScore, mb.FleetShipCount)
}

// printGrids prints the grids side by side under their titles.
func (p printer) printGrids(titles []string, grids ...mb.Grid) {
	const gap = "    "
	width := 2 + 2*mb.BoardSize

	var sb strings.Builder
	for i, title := range titles {
		if i > 0 {
			sb.WriteString(gap)
		}
		sb.WriteString(fmt.Sprintf("%-*s", width, title))
	}
	sb.WriteByte('\n')

	for i := range grids {
		if i > 0 {
			sb.WriteString(gap)
		}
		sb.WriteString("  ")
		for x := 0; x < mb.BoardSize; x++ {
			sb.WriteString(fmt.Sprintf("%d ", x))
		}
	}
	sb.WriteByte('\n')

	for y := 0; y < mb.BoardSize; y++ {
		for i, grid := range grids {
			if i > 0 {
				sb.WriteString(gap)
			}
			sb.WriteString(fmt.Sprintf("%d ", y))
			for x := 0; x < mb.BoardSize; x++ {
				sb.WriteByte(cellGlyphs[grid[y][x]])
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}

	fmt.Fprint(p.w, sb.String())
}
