package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play minesweeper in this terminal",
	Long: `Start a game on the configured board.

Controls:
  Arrows/WASD/hjkl  - Move cursor
  Space/Enter       - Reveal cell (or left click)
  F/X               - Toggle flag (or right click)
  P                 - Pause
  R                 - New game (after game over)
  Tab               - Best times (when over or paused)
  Ctrl+S            - Save screenshot
  Q/Ctrl+C          - Quit

Examples:
  mines play
  mines play --rows 16 --columns 16 --mines 40
  mines play --placement shuffle --seed 7
  mines play --config ./expert.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addBoardFlags(playCmd)
}

func runPlay(cmd *cobra.Command, _ []string) {
	boardCfg, err := loadBoardConfig(cmd)
	exitOnError("loading config", err)

	logger, closeLog, err := newLogger(io.Discard)
	exitOnError("creating logger", err)
	defer closeLog()

	game, err := minesweeper.New(boardCfg)
	exitOnError("creating game", err)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Continue without storage - game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		logger.Warn("results ledger disabled", "error", err)
		store = nil
	}

	logger.Info("starting", "board", boardCfg.Board.String(), "placement", boardCfg.Generator.Placement)
	runErr := tui.Run(game, store, logger, cfg)

	if store != nil {
		store.Close()
	}

	exitOnError("running game", runErr)
}
