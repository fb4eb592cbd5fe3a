package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/saeidalz13/seabattle/api"
	"github.com/saeidalz13/seabattle/internal/config"
	mb "github.com/saeidalz13/seabattle/models/battleship"
	mp "github.com/saeidalz13/seabattle/models/protocol"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           cfg.LogLevel,
		Prefix:          "seabattle",
		ReportTimestamp: cfg.Stage == config.StageDev,
	})
	logger.Info("starting", "stage", cfg.Stage, "seed", cfg.Seed, "computer_delay", cfg.ComputerDelay, "output", cfg.Output)

	gameManager := mb.NewBattleshipGameManager(gameRandFactory(cfg.Seed))
	cp := api.NewCommandProcessor(gameManager, logger)
	out := newPrinter(os.Stdout, cfg.Output)

	computerReq, err := json.Marshal(mp.NewMessage[mp.NoPayload](mp.CodeComputerShoot))
	if err != nil {
		log.Fatal(err)
	}
	boardsReq, err := json.Marshal(mp.NewMessage[mp.NoPayload](mp.CodeBoards))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(api.CommandHelp)
	scanner := bufio.NewScanner(os.Stdin)

	for prompt(); scanner.Scan(); prompt() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return
		case "help":
			fmt.Println(api.CommandHelp)
			continue
		}

		req, err := api.ParseCommand(line)
		if err != nil {
			out.printErr(err)
			continue
		}

		resp := cp.Process(req)
		out.print(resp)

		// The computer answers a player miss right away, one shot
		// at a time, until it misses or the game ends.
		shot, ok := resp.(mp.Message[mp.RespShot])
		if ok && shot.Error == nil && shot.Code == mp.CodePlayerShoot && !shot.Payload.IsTurn {
			for cp.Game().Phase() == mb.PhaseBattle && !cp.Game().IsPlayerTurn() {
				time.Sleep(cfg.ComputerDelay)
				computerResp := cp.Process(computerReq)
				out.print(computerResp)
				if f, ok := computerResp.(interface{ Failed() bool }); ok && f.Failed() {
					break
				}
			}
			out.print(cp.Process(boardsReq))
		}

		if cp.Game().Phase() == mb.PhaseGameOver && isShotOrSurrender(resp) {
			report := cp.Game().CheckGameOver()
			out.printGameOver(report)
		}
	}

	if err := scanner.Err(); err != nil {
		logger.Error("reading stdin", "err", err)
	}
}

func prompt() {
	fmt.Print("> ")
}

func isShotOrSurrender(resp any) bool {
	switch r := resp.(type) {
	case mp.Message[mp.RespShot]:
		return r.Error == nil
	case mp.Message[mp.RespStatus]:
		return r.Code == mp.CodeSurrender && r.Error == nil
	}
	return false
}

// Every game gets its own source. With a fixed seed the per-game
// seeds are drawn from one master source so runs are reproducible.
func gameRandFactory(seed int64) func() mb.Rand {
	if seed == 0 {
		return nil
	}

	master := rand.New(rand.NewSource(seed))
	return func() mb.Rand {
		return rand.New(rand.NewSource(master.Int63()))
	}
}
