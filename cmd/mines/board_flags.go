package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
)

var (
	flagConfig    string
	flagRows      int
	flagColumns   int
	flagMines     int
	flagPlacement string
)

// addBoardFlags registers the board selection flags on cmd.
func addBoardFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
	cmd.Flags().IntVar(&flagRows, "rows", 0, "Board rows (2-200)")
	cmd.Flags().IntVar(&flagColumns, "columns", 0, "Board columns (2-200)")
	cmd.Flags().IntVar(&flagMines, "mines", 0, "Number of mines")
	cmd.Flags().StringVar(&flagPlacement, "placement", "", "Mine placement: rejection, shuffle")
}

// loadBoardConfig loads the config file and applies flags that were set
// explicitly. Values outside the playable range are clamped with a warning.
func loadBoardConfig(cmd *cobra.Command) (config.MinesweeperConfig, error) {
	cfg, err := config.LoadMinesweeper(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Board.Rows = flagRows
	}
	if flags.Changed("columns") {
		cfg.Board.Columns = flagColumns
	}
	if flags.Changed("mines") {
		cfg.Board.Mines = flagMines
	}
	if flags.Changed("placement") {
		cfg.Generator.Placement = flagPlacement
	}

	for _, adj := range cfg.Normalize() {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", adj)
	}

	if _, err := cfg.Placement(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
